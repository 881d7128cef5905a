package properties

import (
	"database/sql"
	"net/http"

	"github.com/johnwards/hubspot-contacts/internal/store"
)

// RegisterRoutes registers the property and property group endpoints on mux.
func RegisterRoutes(mux *http.ServeMux, db *sql.DB) {
	h := &Handler{store: store.NewSQLitePropertyStore(db)}

	mux.HandleFunc("GET /properties", h.List)
	mux.HandleFunc("GET /properties/named/{propertyName}", h.Get)
	mux.HandleFunc("PUT /properties/{propertyName}", h.Create)

	mux.HandleFunc("GET /groups", h.ListGroups)
	mux.HandleFunc("PUT /groups/{groupName}", h.CreateGroup)
}

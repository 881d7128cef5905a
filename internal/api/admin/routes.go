package admin

import (
	"database/sql"
	"net/http"
)

// RegisterRoutes registers the admin endpoints on mux.
func RegisterRoutes(mux *http.ServeMux, db *sql.DB) {
	h := &Handler{db: db}

	mux.HandleFunc("POST /_fakeportal/reset", h.Reset)
	mux.HandleFunc("POST /_fakeportal/seed", h.SeedData)
}

// Package portal assembles the fake HubSpot portal served by cmd/fakeportal
// and used by the integration tests.
package portal

import (
	"database/sql"
	"fmt"
	"net/http"

	"github.com/johnwards/hubspot-contacts/internal/api"
	"github.com/johnwards/hubspot-contacts/internal/api/admin"
	"github.com/johnwards/hubspot-contacts/internal/api/properties"
)

// NewHandler returns the portal's routes wrapped in the middleware chain. An
// empty authToken disables authentication.
func NewHandler(db *sql.DB, authToken string) http.Handler {
	mux := http.NewServeMux()

	properties.RegisterRoutes(mux, db)
	admin.RegisterRoutes(mux, db)

	// Catch-all: return 404 in HubSpot error format.
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		api.WriteError(w, http.StatusNotFound, api.NewNotFoundError(
			fmt.Sprintf("No route found for %s %s", r.Method, r.URL.Path),
			api.CorrelationID(r.Context()),
		))
	})

	return api.Chain(mux,
		api.Recovery(),
		api.RequestID(),
		api.Auth(authToken),
		api.Logging(),
	)
}

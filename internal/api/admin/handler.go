// Package admin serves the fake portal's test-control endpoints.
package admin

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"

	"github.com/johnwards/hubspot-contacts/internal/api"
	"github.com/johnwards/hubspot-contacts/internal/seed"
	"github.com/johnwards/hubspot-contacts/internal/store"
)

// Handler serves the admin API at /_fakeportal/.
type Handler struct {
	db *sql.DB
}

// Reset drops every property and group and re-runs the seeds.
func (h *Handler) Reset(w http.ResponseWriter, r *http.Request) {
	if err := ResetData(r.Context(), h.db); err != nil {
		api.WriteError(w, http.StatusInternalServerError, api.NewInternalError(
			fmt.Sprintf("failed to reset: %s", err), api.CorrelationID(r.Context())))
		return
	}
	api.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// SeedData runs the seeds without dropping existing data first.
func (h *Handler) SeedData(w http.ResponseWriter, r *http.Request) {
	if err := seed.Seed(r.Context(), h.db); err != nil {
		api.WriteError(w, http.StatusInternalServerError, api.NewInternalError(
			fmt.Sprintf("failed to seed: %s", err), api.CorrelationID(r.Context())))
		return
	}
	api.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// ResetData clears the store and re-seeds it.
func ResetData(ctx context.Context, db *sql.DB) error {
	if err := store.NewSQLitePropertyStore(db).Reset(ctx); err != nil {
		return err
	}
	return seed.Seed(ctx, db)
}

package properties

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/johnwards/hubspot-contacts/internal/api"
	"github.com/johnwards/hubspot-contacts/internal/domain"
	"github.com/johnwards/hubspot-contacts/internal/store"
	hsproperties "github.com/johnwards/hubspot-contacts/properties"
)

// Handler serves the contact properties endpoints.
type Handler struct {
	store store.PropertyStore
}

// List returns every property definition as a bare array.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	props, err := h.store.List(r.Context())
	if err != nil {
		api.WriteError(w, http.StatusInternalServerError, api.NewInternalError(err.Error(), api.CorrelationID(r.Context())))
		return
	}
	api.WriteJSON(w, http.StatusOK, props)
}

// Get returns a single property by name.
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("propertyName")
	corrID := api.CorrelationID(r.Context())

	p, err := h.store.Get(r.Context(), name)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			api.WriteError(w, http.StatusNotFound, api.NewNotFoundError(
				fmt.Sprintf("Property named '%s' does not exist.", name), corrID))
			return
		}
		api.WriteError(w, http.StatusInternalServerError, api.NewInternalError(err.Error(), corrID))
		return
	}
	api.WriteJSON(w, http.StatusOK, p)
}

// Create stores the property named in the path and echoes the stored record.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("propertyName")
	corrID := api.CorrelationID(r.Context())

	var p domain.Property
	if err := api.DecodeJSON(r, &p); err != nil {
		api.WriteError(w, http.StatusBadRequest, api.NewValidationError("Invalid input JSON", corrID))
		return
	}
	if p.Name == "" {
		p.Name = name
	}
	if msg := checkProperty(name, &p); msg != "" {
		api.WriteError(w, http.StatusBadRequest, api.NewValidationError(msg, corrID))
		return
	}

	created, err := h.store.Create(r.Context(), &p)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrConflict):
			api.WriteError(w, http.StatusConflict, api.NewConflictError(
				fmt.Sprintf("The Property named '%s' already exists.", p.Name), corrID))
		case errors.Is(err, store.ErrGroupNotFound):
			api.WriteError(w, http.StatusBadRequest, api.NewValidationError(
				fmt.Sprintf("group '%s' does not exist.", p.GroupName), corrID))
		default:
			api.WriteError(w, http.StatusInternalServerError, api.NewInternalError(err.Error(), corrID))
		}
		return
	}

	api.WriteJSON(w, http.StatusOK, created)
}

// checkProperty returns a validation message, or "" when p can be stored.
func checkProperty(pathName string, p *domain.Property) string {
	if p.Name != pathName {
		return fmt.Sprintf("Property name '%s' does not match the URL ('%s').", p.Name, pathName)
	}
	if p.GroupName == "" {
		return "groupName is required"
	}
	typ, ok := hsproperties.ParseType(p.Type)
	if !ok {
		return fmt.Sprintf("Invalid property type: '%s'", p.Type)
	}
	if typ == hsproperties.TypeEnumeration {
		if len(p.Options) == 0 {
			return "Enumeration properties need at least one option"
		}
		return ""
	}
	if len(p.Options) > 0 {
		return fmt.Sprintf("Properties of type '%s' do not take options", p.Type)
	}
	return ""
}

// ListGroups returns every property group.
func (h *Handler) ListGroups(w http.ResponseWriter, r *http.Request) {
	groups, err := h.store.ListGroups(r.Context())
	if err != nil {
		api.WriteError(w, http.StatusInternalServerError, api.NewInternalError(err.Error(), api.CorrelationID(r.Context())))
		return
	}
	api.WriteJSON(w, http.StatusOK, groups)
}

// CreateGroup stores the group named in the path.
func (h *Handler) CreateGroup(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("groupName")
	corrID := api.CorrelationID(r.Context())

	var g domain.PropertyGroup
	if err := api.DecodeJSON(r, &g); err != nil {
		api.WriteError(w, http.StatusBadRequest, api.NewValidationError("Invalid input JSON", corrID))
		return
	}
	g.Name = name

	created, err := h.store.CreateGroup(r.Context(), &g)
	if err != nil {
		if errors.Is(err, store.ErrConflict) {
			api.WriteError(w, http.StatusConflict, api.NewConflictError(
				fmt.Sprintf("The Group named '%s' already exists.", name), corrID))
			return
		}
		api.WriteError(w, http.StatusInternalServerError, api.NewInternalError(err.Error(), corrID))
		return
	}
	api.WriteJSON(w, http.StatusOK, created)
}

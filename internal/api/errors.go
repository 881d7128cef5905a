package api

import "net/http"

// HubSpot error categories.
const (
	CategoryValidationError = "VALIDATION_ERROR"
	CategoryObjectNotFound  = "OBJECT_NOT_FOUND"
	CategoryConflict        = "CONFLICT"
	CategoryInternalError   = "INTERNAL_ERROR"
)

// Error is the body HubSpot sends with every error response.
type Error struct {
	Status        string `json:"status"`
	Message       string `json:"message"`
	CorrelationID string `json:"correlationId"`
	Category      string `json:"category"`
}

func newError(category, message, correlationID string) *Error {
	return &Error{
		Status:        "error",
		Message:       message,
		CorrelationID: correlationID,
		Category:      category,
	}
}

// NewNotFoundError creates an OBJECT_NOT_FOUND error.
func NewNotFoundError(message, correlationID string) *Error {
	return newError(CategoryObjectNotFound, message, correlationID)
}

// NewValidationError creates a VALIDATION_ERROR error.
func NewValidationError(message, correlationID string) *Error {
	return newError(CategoryValidationError, message, correlationID)
}

// NewConflictError creates a CONFLICT error.
func NewConflictError(message, correlationID string) *Error {
	return newError(CategoryConflict, message, correlationID)
}

// NewInternalError creates an INTERNAL_ERROR error.
func NewInternalError(message, correlationID string) *Error {
	return newError(CategoryInternalError, message, correlationID)
}

// WriteError writes apiErr as JSON with the given status code.
func WriteError(w http.ResponseWriter, statusCode int, apiErr *Error) {
	WriteJSON(w, statusCode, apiErr)
}

// Package connection defines the transport the API packages send their
// requests through, plus an HTTP implementation talking to a HubSpot portal.
package connection

import (
	"context"
	"fmt"
	"net/url"
)

// Connection sends one request to the portal and returns the JSON-decoded
// response body. Implementations return a *ClientError for any non-2xx
// response.
type Connection interface {
	SendRequest(ctx context.Context, method, path string, query url.Values, body any) (any, error)
}

// ClientError is returned when the portal rejects a request. Message is the
// text supplied by the server and is passed through untouched.
type ClientError struct {
	Message       string
	CorrelationID string
	StatusCode    int
}

func (e *ClientError) Error() string {
	if e.CorrelationID == "" {
		return e.Message
	}
	return fmt.Sprintf("%s (correlation id: %s)", e.Message, e.CorrelationID)
}

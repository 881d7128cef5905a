// Package connectiontest provides an in-memory connection.Connection for tests.
package connectiontest

import (
	"context"
	"fmt"
	"net/url"
	"sync"

	"github.com/goccy/go-json"
	"github.com/google/uuid"

	"github.com/johnwards/hubspot-contacts/connection"
)

// RequestData is what a MockPortalConnection saw for a single request. Body
// holds the request body after a JSON round trip, as the portal would decode
// it.
type RequestData struct {
	Method string
	Path   string
	Query  url.Values
	Body   any
}

// ResponseMaker builds the response for a request. Returning an error makes
// SendRequest fail with that error.
type ResponseMaker func(RequestData) (any, error)

// MockPortalConnection records every request and answers it with a
// ResponseMaker.
type MockPortalConnection struct {
	responseMaker ResponseMaker

	mu           sync.Mutex
	requestsData []RequestData
}

var _ connection.Connection = (*MockPortalConnection)(nil)

// NewMockPortalConnection returns a connection answering with responseMaker.
func NewMockPortalConnection(responseMaker ResponseMaker) *MockPortalConnection {
	return &MockPortalConnection{responseMaker: responseMaker}
}

// SendRequest implements connection.Connection.
func (c *MockPortalConnection) SendRequest(ctx context.Context, method, path string, query url.Values, body any) (any, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var decoded any
	if body != nil {
		var err error
		decoded, err = roundTrip(body)
		if err != nil {
			return nil, fmt.Errorf("encode request body: %w", err)
		}
	}

	rd := RequestData{Method: method, Path: path, Query: query, Body: decoded}
	c.mu.Lock()
	c.requestsData = append(c.requestsData, rd)
	c.mu.Unlock()

	resp, err := c.responseMaker(rd)
	if err != nil {
		return nil, err
	}
	if resp == nil {
		return nil, nil
	}
	return roundTrip(resp)
}

// RequestsData returns the requests seen so far, oldest first.
func (c *MockPortalConnection) RequestsData() []RequestData {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]RequestData, len(c.requestsData))
	copy(out, c.requestsData)
	return out
}

// NewClientError returns a *connection.ClientError with a fresh correlation id.
func NewClientError(format string, args ...any) *connection.ClientError {
	return &connection.ClientError{
		Message:       fmt.Sprintf(format, args...),
		CorrelationID: uuid.NewString(),
		StatusCode:    400,
	}
}

func roundTrip(v any) (any, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	var out any
	if err := json.Unmarshal(b, &out); err != nil {
		return nil, err
	}
	return out, nil
}

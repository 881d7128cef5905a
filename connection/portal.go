package connection

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/goccy/go-json"
)

// DefaultBaseURL is the root of the contacts API.
const DefaultBaseURL = "https://api.hubapi.com/contacts/v1"

// Config configures a PortalConnection.
type Config struct {
	BaseURL     string
	AccessToken string
	Timeout     time.Duration
	// HTTPClient overrides the client built from Timeout.
	HTTPClient *http.Client
}

// PortalConnection is a Connection backed by net/http.
type PortalConnection struct {
	baseURL *url.URL
	token   string
	client  *http.Client
}

// NewPortalConnection validates cfg and returns a ready connection.
func NewPortalConnection(cfg Config) (*PortalConnection, error) {
	raw := cfg.BaseURL
	if raw == "" {
		raw = DefaultBaseURL
	}
	u, err := url.Parse(strings.TrimSuffix(raw, "/"))
	if err != nil {
		return nil, fmt.Errorf("parse base url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("base url %q: unsupported scheme %q", raw, u.Scheme)
	}

	client := cfg.HTTPClient
	if client == nil {
		client = &http.Client{Timeout: cfg.Timeout}
	}

	return &PortalConnection{baseURL: u, token: cfg.AccessToken, client: client}, nil
}

// errorEnvelope is the body HubSpot sends with error responses.
type errorEnvelope struct {
	Status        string `json:"status"`
	Message       string `json:"message"`
	CorrelationID string `json:"correlationId"`
	Category      string `json:"category"`
}

// SendRequest implements Connection.
func (c *PortalConnection) SendRequest(ctx context.Context, method, path string, query url.Values, body any) (any, error) {
	// path arrives escaped; keep it that way on the wire.
	rawPath := c.baseURL.EscapedPath() + path
	unescaped, err := url.PathUnescape(rawPath)
	if err != nil {
		return nil, fmt.Errorf("invalid path %q: %w", path, err)
	}
	u := *c.baseURL
	u.Path = unescaped
	u.RawPath = rawPath
	if len(query) > 0 {
		u.RawQuery = query.Encode()
	}

	var bodyReader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encode request body: %w", err)
		}
		bodyReader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, u.String(), bodyReader)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	start := time.Now()
	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer func() { _ = resp.Body.Close() }()

	slog.Debug("hubspot request",
		"method", method,
		"path", path,
		"status", resp.StatusCode,
		"duration", time.Since(start).String(),
	)

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, newClientError(resp, raw)
	}

	if len(bytes.TrimSpace(raw)) == 0 {
		return nil, nil
	}
	var data any
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("decode response body: %w", err)
	}
	return data, nil
}

func newClientError(resp *http.Response, raw []byte) *ClientError {
	ce := &ClientError{
		StatusCode:    resp.StatusCode,
		CorrelationID: resp.Header.Get("X-Correlation-Id"),
	}

	var env errorEnvelope
	if err := json.Unmarshal(raw, &env); err == nil && env.Message != "" {
		ce.Message = env.Message
		if env.CorrelationID != "" {
			ce.CorrelationID = env.CorrelationID
		}
		return ce
	}

	ce.Message = strings.TrimSpace(string(raw))
	if ce.Message == "" {
		ce.Message = http.StatusText(resp.StatusCode)
	}
	return ce
}

// IsClientError reports whether err is, or wraps, a *ClientError.
func IsClientError(err error) bool {
	var ce *ClientError
	return errors.As(err, &ce)
}

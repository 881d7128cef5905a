package conformance_test

import (
	"bytes"
	"io"
	"net/http"
	"testing"

	"github.com/goccy/go-json"

	"github.com/johnwards/hubspot-contacts/connection"
)

// newConnection returns a client connection to the test server.
func newConnection(t *testing.T) *connection.PortalConnection {
	t.Helper()
	conn, err := connection.NewPortalConnection(connection.Config{
		BaseURL:     serverURL,
		AccessToken: authToken,
	})
	if err != nil {
		t.Fatalf("NewPortalConnection: %v", err)
	}
	return conn
}

// doRequest makes an HTTP request to the test server and returns the response.
// The caller is responsible for closing the response body.
func doRequest(t *testing.T, method, path string, body any) *http.Response {
	t.Helper()

	var bodyReader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal request body: %v", err)
		}
		bodyReader = bytes.NewReader(b)
	}

	req, err := http.NewRequest(method, serverURL+path, bodyReader)
	if err != nil {
		t.Fatalf("create request: %v", err)
	}
	req.Header.Set("Authorization", "Bearer "+authToken)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("%s %s: %v", method, path, err)
	}
	return resp
}

// readJSON reads the response body and unmarshals it into a map.
func readJSON(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()
	defer func() { _ = resp.Body.Close() }()

	b, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read response body: %v", err)
	}

	var result map[string]any
	if err := json.Unmarshal(b, &result); err != nil {
		t.Fatalf("unmarshal response (status %d): body=%s err=%v", resp.StatusCode, string(b), err)
	}
	return result
}

// mustStatus asserts the HTTP response has the expected status code.
func mustStatus(t *testing.T, resp *http.Response, expected int) {
	t.Helper()
	if resp.StatusCode != expected {
		b, _ := io.ReadAll(resp.Body)
		t.Fatalf("expected status %d, got %d; body=%s", expected, resp.StatusCode, string(b))
	}
}

// resetServer calls POST /_fakeportal/reset to return the server to its seeded state.
func resetServer(t *testing.T) {
	t.Helper()
	resp := doRequest(t, http.MethodPost, "/_fakeportal/reset", nil)
	defer func() { _ = resp.Body.Close() }()
	if resp.StatusCode != http.StatusOK {
		b, _ := io.ReadAll(resp.Body)
		t.Fatalf("reset server failed: status=%d body=%s", resp.StatusCode, string(b))
	}
}

// assertHubSpotError validates the response matches the HubSpot error envelope.
func assertHubSpotError(t *testing.T, body map[string]any, expectedCategory string) {
	t.Helper()
	assertStringField(t, body, "status", "error")
	for _, key := range []string{"message", "correlationId", "category"} {
		if s, ok := body[key].(string); !ok || s == "" {
			t.Errorf("expected non-empty string field %q, got %v", key, body[key])
		}
	}
	if expectedCategory != "" {
		assertStringField(t, body, "category", expectedCategory)
	}
}

// assertStringField asserts that m[key] is the string expected.
func assertStringField(t *testing.T, m map[string]any, key, expected string) {
	t.Helper()
	got, ok := m[key].(string)
	if !ok {
		t.Errorf("expected field %q to be a string, got %T", key, m[key])
		return
	}
	if got != expected {
		t.Errorf("field %q = %q, want %q", key, got, expected)
	}
}

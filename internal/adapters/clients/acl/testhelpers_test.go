package acl

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"sync"
	"testing"
	"time"

	"github.com/jsamuelsen11/go-powerbi/internal/platform/config"
	"github.com/jsamuelsen11/go-powerbi/internal/platform/httpclient"
)

// apiRoot is the path prefix every request carries under the test config.
const apiRoot = "/v1.0/myorg/"

// newTestClient creates an httpclient.Client pointing at the given test server
// with a single attempt per call and a bearer token of "test-token".
func newTestClient(t *testing.T, baseURL string) *httpclient.Client {
	t.Helper()

	cfg := &config.ClientConfig{
		BaseURL:    baseURL,
		APIVersion: "v1.0",
		Org:        "myorg",
		Timeout:    5 * time.Second,
		Retry: config.RetryConfig{
			MaxAttempts:     1,
			InitialInterval: 10 * time.Millisecond,
			MaxInterval:     10 * time.Millisecond,
			Multiplier:      1,
		},
		CircuitBreaker: config.CircuitBreakerConfig{
			MaxFailures:   5,
			Timeout:       30 * time.Second,
			HalfOpenLimit: 1,
		},
	}

	return httpclient.New(cfg, "powerbi-api-test", staticToken("test-token"), nil, slog.Default())
}

type staticToken string

func (s staticToken) Token(_ context.Context) (string, error) { return string(s), nil }

// writeJSON encodes v as JSON to the response writer, failing the test on error.
func writeJSON(t *testing.T, w http.ResponseWriter, v any) {
	t.Helper()

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		t.Fatalf("failed to encode response: %v", err)
	}
}

// decodeBody decodes a JSON request body into a generic map.
func decodeBody(t *testing.T, r *http.Request) map[string]any {
	t.Helper()

	var m map[string]any
	if err := json.NewDecoder(r.Body).Decode(&m); err != nil {
		t.Errorf("decoding request body: %v", err)
	}
	return m
}

// value wraps entries in the OData list envelope.
func value(entries ...map[string]any) map[string]any {
	if entries == nil {
		entries = []map[string]any{}
	}
	return map[string]any{"value": entries}
}

// callLog records "METHOD path" lines from a test server goroutine.
type callLog struct {
	mu    sync.Mutex
	calls []string
}

func (c *callLog) add(r *http.Request) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.calls = append(c.calls, r.Method+" "+r.URL.EscapedPath())
}

func (c *callLog) list() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]string(nil), c.calls...)
}

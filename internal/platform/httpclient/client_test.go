package httpclient_test

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/sony/gobreaker/v2"

	"github.com/jsamuelsen11/go-powerbi/internal/platform/config"
	"github.com/jsamuelsen11/go-powerbi/internal/platform/httpclient"
)

func testConfig(baseURL string) *config.ClientConfig {
	return &config.ClientConfig{
		BaseURL:    baseURL,
		APIVersion: "v1.0",
		Org:        "myorg",
		Timeout:    5 * time.Second,
		Retry: config.RetryConfig{
			MaxAttempts:     3,
			InitialInterval: 5 * time.Millisecond,
			MaxInterval:     20 * time.Millisecond,
			Multiplier:      2,
		},
		CircuitBreaker: config.CircuitBreakerConfig{
			MaxFailures:   3,
			Timeout:       time.Second,
			HalfOpenLimit: 1,
		},
	}
}

// scripted answers each call with the next status in statuses and 200 after
// they run out. It counts calls and keeps the request bodies.
type scripted struct {
	statuses []int
	calls    atomic.Int32
	bodies   chan string
}

func newScripted(t *testing.T, statuses ...int) (*scripted, *httptest.Server) {
	t.Helper()
	s := &scripted{statuses: statuses, bodies: make(chan string, 16)}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		b, _ := io.ReadAll(r.Body)
		s.bodies <- string(b)
		n := int(s.calls.Add(1))
		w.Header().Set("RequestId", "rid-"+r.Method)
		if n <= len(s.statuses) {
			w.WriteHeader(s.statuses[n-1])
			_, _ = io.WriteString(w, `{"error":{"code":"Failed"}}`)
			return
		}
		_, _ = io.WriteString(w, `{"value":[]}`)
	}))
	t.Cleanup(srv.Close)
	return s, srv
}

func do(t *testing.T, c *httpclient.Client, ctx context.Context, method, url, body string) (*http.Response, error) {
	t.Helper()
	var r io.Reader = http.NoBody
	if body != "" {
		r = strings.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, url, r)
	if err != nil {
		t.Fatalf("creating request: %v", err)
	}
	resp, err := c.Do(ctx, req)
	if resp != nil {
		t.Cleanup(func() { _ = resp.Body.Close() })
	}
	return resp, err
}

func TestDo_Success(t *testing.T) {
	t.Parallel()

	_, srv := newScripted(t)
	client := httpclient.New(testConfig(srv.URL), "powerbi-api", nil, nil, nil)

	resp, err := do(t, client, context.Background(), http.MethodGet, srv.URL+"/groups", "")
	if err != nil {
		t.Fatalf("Do() error = %v", err)
	}
	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK || string(body) != `{"value":[]}` {
		t.Errorf("Do() = %d %s, want 200 {\"value\":[]}", resp.StatusCode, body)
	}
}

func TestDo_Retries(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		method     string
		statuses   []int
		wantCalls  int32
		wantStatus int
		wantErr    bool
		throttled  bool
	}{
		{"GET 5xx until success", http.MethodGet, []int{500, 503}, 3, 200, false, false},
		{"GET 429 then success", http.MethodGet, []int{429}, 2, 200, false, false},
		{"GET 404 is final", http.MethodGet, []int{404}, 1, 404, false, false},
		{"DELETE 502 is retried", http.MethodDelete, []int{502}, 2, 200, false, false},
		{"POST 429 is retried", http.MethodPost, []int{429}, 2, 200, false, false},
		{"POST 500 is not retried", http.MethodPost, []int{500}, 1, 500, true, false},
		{"GET attempts exhausted", http.MethodGet, []int{503, 503, 503}, 3, 503, true, false},
		{"POST throttled to the end", http.MethodPost, []int{429, 429, 429}, 3, 429, true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			s, srv := newScripted(t, tt.statuses...)
			client := httpclient.New(testConfig(srv.URL), "powerbi-api", nil, nil, nil)

			resp, err := do(t, client, context.Background(), tt.method, srv.URL+"/reports/r1/clone", `{"name":"Sales"}`)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Do() error = %v, want error %v", err, tt.wantErr)
			}
			if got := errors.Is(err, httpclient.ErrThrottled); got != tt.throttled {
				t.Errorf("errors.Is(err, ErrThrottled) = %v, want %v", got, tt.throttled)
			}
			if resp == nil {
				t.Fatal("Do() resp = nil, want response")
			}
			if resp.StatusCode != tt.wantStatus {
				t.Errorf("status = %d, want %d", resp.StatusCode, tt.wantStatus)
			}
			if got := s.calls.Load(); got != tt.wantCalls {
				t.Errorf("calls = %d, want %d", got, tt.wantCalls)
			}
		})
	}
}

func TestDo_FinalErrorKeepsBody(t *testing.T) {
	t.Parallel()

	_, srv := newScripted(t, 503, 503, 503)
	client := httpclient.New(testConfig(srv.URL), "powerbi-api", nil, nil, nil)

	resp, err := do(t, client, context.Background(), http.MethodGet, srv.URL+"/groups", "")
	if err == nil || resp == nil {
		t.Fatalf("Do() = %v, %v, want response and error", resp, err)
	}
	body, _ := io.ReadAll(resp.Body)
	if !strings.Contains(string(body), `"Failed"`) {
		t.Errorf("body = %s, want Power BI error body", body)
	}
}

func TestDo_ReplaysBody(t *testing.T) {
	t.Parallel()

	s, srv := newScripted(t, 429)
	client := httpclient.New(testConfig(srv.URL), "powerbi-api", nil, nil, nil)

	if _, err := do(t, client, context.Background(), http.MethodPost, srv.URL+"/groups", `{"name":"Finance"}`); err != nil {
		t.Fatalf("Do() error = %v", err)
	}
	for i := range 2 {
		if got := <-s.bodies; got != `{"name":"Finance"}` {
			t.Errorf("attempt %d body = %q, want original body", i+1, got)
		}
	}
}

func TestDo_Headers(t *testing.T) {
	t.Parallel()

	var got http.Header
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Clone()
	}))
	t.Cleanup(srv.Close)

	tokens := tokenFunc(func(context.Context) (string, error) { return "abc.def.ghi", nil })
	client := httpclient.New(testConfig(srv.URL), "powerbi-api", tokens, nil, nil)

	t.Run("from context", func(t *testing.T) {
		ctx := httpclient.WithRequestID(context.Background(), "req-123")
		ctx = httpclient.WithCorrelationID(ctx, "corr-456")
		if _, err := do(t, client, ctx, http.MethodGet, srv.URL, ""); err != nil {
			t.Fatalf("Do() error = %v", err)
		}

		for name, want := range map[string]string{
			"Authorization":    "Bearer abc.def.ghi",
			"X-Request-ID":     "req-123",
			"X-Correlation-ID": "corr-456",
		} {
			if got.Get(name) != want {
				t.Errorf("%s = %q, want %q", name, got.Get(name), want)
			}
		}
	})

	t.Run("generated", func(t *testing.T) {
		if _, err := do(t, client, context.Background(), http.MethodGet, srv.URL, ""); err != nil {
			t.Fatalf("Do() error = %v", err)
		}
		if _, err := uuid.Parse(got.Get("X-Request-ID")); err != nil {
			t.Errorf("X-Request-ID = %q, want a UUID", got.Get("X-Request-ID"))
		}
		if got.Get("X-Correlation-ID") != "" {
			t.Errorf("X-Correlation-ID = %q, want empty", got.Get("X-Correlation-ID"))
		}
	})
}

type tokenFunc func(ctx context.Context) (string, error)

func (f tokenFunc) Token(ctx context.Context) (string, error) { return f(ctx) }

func TestDo_TokenErrorSkipsRequest(t *testing.T) {
	t.Parallel()

	s, srv := newScripted(t)
	errNoToken := errors.New("no token stored")
	tokens := tokenFunc(func(context.Context) (string, error) { return "", errNoToken })
	client := httpclient.New(testConfig(srv.URL), "powerbi-api", tokens, nil, nil)

	resp, err := do(t, client, context.Background(), http.MethodGet, srv.URL, "")
	if resp != nil || !errors.Is(err, errNoToken) {
		t.Fatalf("Do() = %v, %v, want nil, %v", resp, err, errNoToken)
	}
	if got := s.calls.Load(); got != 0 {
		t.Errorf("calls = %d, want 0", got)
	}
}

func TestDo_CanceledContext(t *testing.T) {
	t.Parallel()

	_, srv := newScripted(t, 500, 500, 500)
	client := httpclient.New(testConfig(srv.URL), "powerbi-api", nil, nil, nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := do(t, client, ctx, http.MethodGet, srv.URL, ""); !errors.Is(err, context.Canceled) {
		t.Errorf("Do() error = %v, want context.Canceled", err)
	}
	if err := client.HealthCheck(context.Background()); err != nil {
		t.Errorf("HealthCheck() = %v, want nil: cancellation must not trip the breaker", err)
	}
}

func TestDo_BreakerLifecycle(t *testing.T) {
	t.Parallel()

	var fail atomic.Bool
	fail.Store(true)
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		if fail.Load() {
			w.WriteHeader(http.StatusInternalServerError)
		}
	}))
	t.Cleanup(srv.Close)

	cfg := testConfig(srv.URL)
	cfg.CircuitBreaker.MaxFailures = 1
	cfg.CircuitBreaker.Timeout = 100 * time.Millisecond
	cfg.Retry.MaxAttempts = 1
	client := httpclient.New(cfg, "powerbi-api", nil, nil, nil)

	if err := client.HealthCheck(context.Background()); err != nil {
		t.Fatalf("fresh HealthCheck() = %v, want nil", err)
	}

	_, _ = do(t, client, context.Background(), http.MethodGet, srv.URL, "")

	before := calls.Load()
	if _, err := do(t, client, context.Background(), http.MethodGet, srv.URL, ""); !errors.Is(err, gobreaker.ErrOpenState) {
		t.Fatalf("Do() error = %v, want gobreaker.ErrOpenState", err)
	}
	if calls.Load() != before {
		t.Error("server was called while the breaker was open")
	}
	if err := client.HealthCheck(context.Background()); err == nil || !strings.Contains(err.Error(), "failing") {
		t.Errorf("open HealthCheck() = %v, want failing", err)
	}

	time.Sleep(150 * time.Millisecond)
	if err := client.HealthCheck(context.Background()); err == nil || !strings.Contains(err.Error(), "degraded") {
		t.Errorf("half-open HealthCheck() = %v, want degraded", err)
	}

	fail.Store(false)
	resp, err := do(t, client, context.Background(), http.MethodGet, srv.URL, "")
	if err != nil || resp.StatusCode != http.StatusOK {
		t.Fatalf("half-open Do() = %v, %v, want 200", resp, err)
	}
	if err := client.HealthCheck(context.Background()); err != nil {
		t.Errorf("recovered HealthCheck() = %v, want nil", err)
	}
}

func TestDo_BreakerDisabled(t *testing.T) {
	t.Parallel()

	statuses := make([]int, 10)
	for i := range statuses {
		statuses[i] = http.StatusInternalServerError
	}
	s, srv := newScripted(t, statuses...)

	cfg := testConfig(srv.URL)
	cfg.CircuitBreaker.MaxFailures = 0
	cfg.Retry.MaxAttempts = 1
	client := httpclient.New(cfg, "powerbi-api", nil, nil, nil)

	for i := range statuses {
		resp, err := do(t, client, context.Background(), http.MethodGet, srv.URL, "")
		if err == nil || resp == nil || resp.StatusCode != http.StatusInternalServerError {
			t.Fatalf("call %d: Do() = %v, %v, want 500 response and error", i+1, resp, err)
		}
	}
	if got := int(s.calls.Load()); got != len(statuses) {
		t.Errorf("server calls = %d, want %d", got, len(statuses))
	}
	if err := client.HealthCheck(context.Background()); err != nil {
		t.Errorf("HealthCheck() = %v, want nil without a breaker", err)
	}
}

func TestDo_ThrottlingDoesNotTripBreaker(t *testing.T) {
	t.Parallel()

	_, srv := newScripted(t, 429, 429, 429)
	cfg := testConfig(srv.URL)
	cfg.CircuitBreaker.MaxFailures = 1
	cfg.Retry.MaxAttempts = 1
	client := httpclient.New(cfg, "powerbi-api", nil, nil, nil)

	for range 3 {
		if _, err := do(t, client, context.Background(), http.MethodGet, srv.URL, ""); !errors.Is(err, httpclient.ErrThrottled) {
			t.Fatalf("Do() error = %v, want ErrThrottled", err)
		}
	}
	if err := client.HealthCheck(context.Background()); err != nil {
		t.Errorf("HealthCheck() = %v, want nil", err)
	}
}

func TestClient_Accessors(t *testing.T) {
	t.Parallel()

	client := httpclient.New(testConfig("https://api.powerbi.com/"), "powerbi-api", nil, nil, nil)

	if got, want := client.BaseURL(), "https://api.powerbi.com/v1.0/myorg"; got != want {
		t.Errorf("BaseURL() = %q, want %q", got, want)
	}
	if got := client.Name(); got != "powerbi-api-breaker" {
		t.Errorf("Name() = %q, want %q", got, "powerbi-api-breaker")
	}
}

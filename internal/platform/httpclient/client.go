// Package httpclient sends requests to the Power BI REST API. Every call goes
// through the same pipeline:
//
//	circuit breaker → rate limiter → bearer token and ids → span → attempts
//
// Throttling and canceled calls do not count toward opening the breaker.
//
//	client := httpclient.New(&cfg.Client, "powerbi-api", tokens, metrics, logger)
//	req, _ := http.NewRequestWithContext(ctx, http.MethodGet, client.BaseURL()+"/groups", http.NoBody)
//	resp, err := client.Do(ctx, req)
//
// A context may carry the X-Request-ID and X-Correlation-ID to send; without
// one each request gets a fresh UUID.
package httpclient

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/sony/gobreaker/v2"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/time/rate"

	"github.com/jsamuelsen11/go-powerbi/internal/platform/config"
	"github.com/jsamuelsen11/go-powerbi/internal/platform/logging"
	"github.com/jsamuelsen11/go-powerbi/internal/platform/telemetry"
	"github.com/jsamuelsen11/go-powerbi/internal/ports"
)

// ErrThrottled is wrapped by the error Do returns when Power BI still
// answers 429 Too Many Requests after the last attempt.
var ErrThrottled = errors.New("throttled by Power BI")

// Headers stamped on every request, and the id Power BI returns.
const (
	HeaderRequestID     = "X-Request-ID"
	HeaderCorrelationID = "X-Correlation-ID"
	HeaderPowerBIID     = "RequestId"
)

type (
	requestIDKey     struct{}
	correlationIDKey struct{}
)

// WithRequestID sets the X-Request-ID sent by requests made with ctx.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, id)
}

// WithCorrelationID sets the X-Correlation-ID sent by requests made with ctx.
func WithCorrelationID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, correlationIDKey{}, id)
}

// Client is safe for concurrent use.
type Client struct {
	httpClient  *http.Client
	baseURL     string
	tokens      ports.TokenSource
	serviceName string
	breaker     *gobreaker.CircuitBreaker[*http.Response] // nil when disabled
	limiter     *rate.Limiter // nil without a configured rate
	retry       retryPolicy
	metrics     *telemetry.Metrics
	logger      *slog.Logger
}

// New returns a client for the API root in cfg. serviceName names the peer
// in spans, metrics and doctor output. Requests carry a bearer token from
// tokens unless it is nil. metrics and logger may be nil.
func New(
	cfg *config.ClientConfig,
	serviceName string,
	tokens ports.TokenSource,
	metrics *telemetry.Metrics,
	logger *slog.Logger,
) *Client {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	c := &Client{
		httpClient:  &http.Client{Timeout: cfg.Timeout},
		baseURL:     cfg.APIRoot(),
		tokens:      tokens,
		serviceName: serviceName,
		retry:       newRetryPolicy(cfg.Retry),
		metrics:     metrics,
		logger:      logger,
	}

	if cfg.CircuitBreaker.MaxFailures > 0 {
		c.breaker = newBreaker(serviceName, cfg.CircuitBreaker, logger)
	}
	if cfg.RateLimit.RequestsPerSecond > 0 {
		c.limiter = rate.NewLimiter(rate.Limit(cfg.RateLimit.RequestsPerSecond), cfg.RateLimit.BurstSize)
	}
	return c
}

func newBreaker(service string, cfg config.CircuitBreakerConfig, logger *slog.Logger) *gobreaker.CircuitBreaker[*http.Response] {
	return gobreaker.NewCircuitBreaker[*http.Response](gobreaker.Settings{
		Name:        service,
		MaxRequests: toUint32(cfg.HalfOpenLimit),
		Timeout:     cfg.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return int(counts.ConsecutiveFailures) >= cfg.MaxFailures
		},
		IsExcluded: func(err error) bool {
			return errors.Is(err, ErrThrottled) ||
				errors.Is(err, context.Canceled) ||
				errors.Is(err, context.DeadlineExceeded)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn("circuit breaker state change",
				slog.String("breaker", name),
				slog.String("from", from.String()),
				slog.String("to", to.String()),
			)
		},
	})
}

// Do sends req, through the breaker when one is configured. The response
// body is open whenever resp is non-nil and the caller closes it. That
// includes a final 5xx or 429 answer: both resp and an error come back so
// the caller can read Power BI's error body. A rejected breaker, a missing
// token and a transport failure return only an error.
func (c *Client) Do(ctx context.Context, req *http.Request) (*http.Response, error) {
	start := time.Now()

	attempt := func() (*http.Response, error) {
		if c.limiter != nil {
			if err := c.limiter.Wait(ctx); err != nil {
				return nil, err
			}
		}
		if err := c.stamp(ctx, req); err != nil {
			return nil, err
		}

		spanCtx, span := c.startSpan(ctx, req)
		defer span.End()

		c.logger.DebugContext(spanCtx, "sending request",
			slog.String("method", req.Method),
			slog.String("url", req.URL.String()),
			logging.RedactHeaders("headers", req.Header),
		)

		resp, err := c.send(spanCtx, req.WithContext(spanCtx))
		endSpan(span, resp, err)
		return resp, err
	}

	var (
		resp *http.Response
		err  error
	)
	if c.breaker != nil {
		resp, err = c.breaker.Execute(attempt)
	} else {
		resp, err = attempt()
	}

	c.record(ctx, req.Method, start, resp, err)
	return resp, err
}

// BaseURL returns the API root paths are appended to, e.g.
// https://api.powerbi.com/v1.0/myorg.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Name returns the doctor check name, the peer service name with a
// "-breaker" suffix.
func (c *Client) Name() string {
	return c.serviceName + "-breaker"
}

// HealthCheck maps the breaker state to doctor output without calling the
// API: closed is healthy, half-open is degraded and open is failing. A
// disabled breaker is always healthy.
func (c *Client) HealthCheck(context.Context) error {
	if c.breaker == nil {
		return nil
	}
	switch state := c.breaker.State(); state {
	case gobreaker.StateClosed:
		return nil
	case gobreaker.StateHalfOpen:
		return fmt.Errorf("%s: degraded (circuit breaker half-open)", c.serviceName)
	case gobreaker.StateOpen:
		return fmt.Errorf("%s: failing (circuit breaker open)", c.serviceName)
	default:
		return fmt.Errorf("%s: unknown circuit breaker state %v", c.serviceName, state)
	}
}

// stamp sets the Authorization, X-Request-ID and X-Correlation-ID headers.
func (c *Client) stamp(ctx context.Context, req *http.Request) error {
	if c.tokens != nil {
		token, err := c.tokens.Token(ctx)
		if err != nil {
			return fmt.Errorf("getting access token: %w", err)
		}
		req.Header.Set("Authorization", "Bearer "+token)
	}

	id, _ := ctx.Value(requestIDKey{}).(string)
	if id == "" {
		id = uuid.NewString()
	}
	req.Header.Set(HeaderRequestID, id)

	if corr, _ := ctx.Value(correlationIDKey{}).(string); corr != "" {
		req.Header.Set(HeaderCorrelationID, corr)
	}
	return nil
}

// startSpan opens a client span and injects W3C trace context into req.
func (c *Client) startSpan(ctx context.Context, req *http.Request) (context.Context, trace.Span) {
	ctx, span := otel.Tracer("httpclient").Start(ctx, "HTTP "+req.Method+" "+c.serviceName,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("http.method", req.Method),
			attribute.String("http.url", req.URL.String()),
			attribute.String("peer.service", c.serviceName),
			attribute.String("http.request_id", req.Header.Get(HeaderRequestID)),
		),
	)
	otel.GetTextMapPropagator().Inject(ctx, propagation.HeaderCarrier(req.Header))
	return ctx, span
}

// endSpan records the status and Power BI's RequestId, which support needs
// to trace a failed call.
func endSpan(span trace.Span, resp *http.Response, err error) {
	if resp != nil {
		span.SetAttributes(attribute.Int("http.status_code", resp.StatusCode))
		if id := resp.Header.Get(HeaderPowerBIID); id != "" {
			span.SetAttributes(attribute.String("powerbi.request_id", id))
		}
	}
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
}

// record counts the call outside the breaker so rejected calls show up.
func (c *Client) record(ctx context.Context, method string, start time.Time, resp *http.Response, err error) {
	status := 0
	if resp != nil {
		status = resp.StatusCode
	}
	c.metrics.RecordRequest(ctx, method, c.serviceName, status, outcome(status, err), time.Since(start))
}

// outcome labels a call for the result metric attribute.
func outcome(status int, err error) string {
	switch {
	case errors.Is(err, gobreaker.ErrOpenState), errors.Is(err, gobreaker.ErrTooManyRequests):
		return "circuit_open"
	case status == http.StatusTooManyRequests:
		return "throttled"
	case status != 0 && status < http.StatusBadRequest:
		return "success"
	default:
		return "error"
	}
}

func toUint32(v int) uint32 {
	if v <= 0 {
		return 0
	}
	return uint32(min(v, math.MaxUint32)) //nolint:gosec // clamped above
}

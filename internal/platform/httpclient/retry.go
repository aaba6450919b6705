package httpclient

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"math/rand/v2"
	"net/http"
	"strconv"
	"time"

	"github.com/jsamuelsen11/go-powerbi/internal/platform/config"
	"github.com/jsamuelsen11/go-powerbi/internal/platform/logging"
)

// jitterFraction spreads each backoff over ±25% of its nominal value.
const jitterFraction = 0.25

// retryPolicy decides whether a failed attempt is repeated and how long to
// wait first.
type retryPolicy struct {
	attempts   int
	initial    time.Duration
	max        time.Duration
	multiplier float64
}

func newRetryPolicy(cfg config.RetryConfig) retryPolicy {
	return retryPolicy{
		attempts:   max(cfg.MaxAttempts, 1),
		initial:    cfg.InitialInterval,
		max:        cfg.MaxInterval,
		multiplier: cfg.Multiplier,
	}
}

// retryable reports whether an attempt may be repeated. status is 0 when
// the attempt failed in transport. A 429 is always retried because Power BI
// rejected the call without running it. Anything else is retried only for
// idempotent methods, so a clone or an added user is never sent twice.
func (p retryPolicy) retryable(method string, status int, err error) bool {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}
	if status == http.StatusTooManyRequests {
		return true
	}
	if !idempotent(method) {
		return false
	}
	return err != nil || status >= http.StatusInternalServerError
}

// delay returns the wait before retry n, where 1 is the first retry:
// exponential backoff capped at p.max with jitter, or the server's
// Retry-After when that is longer.
func (p retryPolicy) delay(n int, retryAfter time.Duration) time.Duration {
	d := float64(p.initial) * math.Pow(p.multiplier, float64(n-1))
	d = min(d, float64(p.max))
	d += d * jitterFraction * (2*rand.Float64() - 1) //nolint:gosec // jitter needs no crypto source
	return max(time.Duration(d), retryAfter, 0)
}

func idempotent(method string) bool {
	switch method {
	case http.MethodGet, http.MethodHead, http.MethodOptions, http.MethodPut, http.MethodDelete:
		return true
	default:
		return false
	}
}

// send runs the attempts for req. A final 5xx or 429 answer comes back as
// both the response (body open, for the caller to read and close) and an
// error.
func (c *Client) send(ctx context.Context, req *http.Request) (*http.Response, error) {
	if err := makeReplayable(req); err != nil {
		return nil, err
	}

	for attempt := 1; ; attempt++ {
		if attempt > 1 {
			if err := rewind(req); err != nil {
				return nil, err
			}
		}

		var retryAfter time.Duration
		resp, err := c.httpClient.Do(req)
		if err != nil {
			if attempt == c.retry.attempts || !c.retry.retryable(req.Method, 0, err) {
				return nil, err
			}
		} else {
			if !failed(resp.StatusCode) {
				return resp, nil
			}
			err = statusError(c.serviceName, resp.StatusCode)
			if attempt == c.retry.attempts || !c.retry.retryable(req.Method, resp.StatusCode, nil) {
				return resp, err
			}
			retryAfter = parseRetryAfter(resp.Header.Get("Retry-After"), time.Now())
			discard(resp)
		}

		if err := c.pause(ctx, req, attempt, err, retryAfter); err != nil {
			return nil, err
		}
	}
}

func failed(status int) bool {
	return status == http.StatusTooManyRequests || status >= http.StatusInternalServerError
}

// statusError describes a 5xx or 429 answer.
func statusError(service string, status int) error {
	if status == http.StatusTooManyRequests {
		return fmt.Errorf("%s: %w", service, ErrThrottled)
	}
	return fmt.Errorf("%s answered %d %s", service, status, http.StatusText(status))
}

// pause logs the upcoming retry and sleeps until it is due.
func (c *Client) pause(ctx context.Context, req *http.Request, attempt int, cause error, retryAfter time.Duration) error {
	wait := c.retry.delay(attempt, retryAfter)

	logging.FromContext(ctx).WarnContext(ctx, "retrying Power BI request",
		slog.String("method", req.Method),
		slog.String("url", req.URL.String()),
		slog.String("peer_service", c.serviceName),
		slog.Int("attempt", attempt+1),
		slog.Int("max_attempts", c.retry.attempts),
		slog.Duration("wait", wait),
		slog.Any("error", cause),
	)

	timer := time.NewTimer(wait)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// makeReplayable makes sure req.GetBody can produce the body again.
// Requests built over bytes or strings already can; other bodies are read
// into memory once.
func makeReplayable(req *http.Request) error {
	if req.Body == nil || req.Body == http.NoBody || req.GetBody != nil {
		return nil
	}
	b, err := io.ReadAll(req.Body)
	_ = req.Body.Close()
	if err != nil {
		return fmt.Errorf("reading request body: %w", err)
	}
	req.GetBody = func() (io.ReadCloser, error) {
		return io.NopCloser(bytes.NewReader(b)), nil
	}
	req.Body, _ = req.GetBody()
	req.ContentLength = int64(len(b))
	return nil
}

func rewind(req *http.Request) error {
	if req.GetBody == nil {
		return nil
	}
	body, err := req.GetBody()
	if err != nil {
		return fmt.Errorf("rewinding request body: %w", err)
	}
	req.Body = body
	return nil
}

// discard drains and closes a response so the connection can be reused.
func discard(resp *http.Response) {
	_, _ = io.Copy(io.Discard, resp.Body)
	_ = resp.Body.Close()
}

// parseRetryAfter reads a Retry-After value given in seconds or as an HTTP
// date. Missing, invalid and past values are zero.
func parseRetryAfter(v string, now time.Time) time.Duration {
	if v == "" {
		return 0
	}
	if secs, err := strconv.Atoi(v); err == nil {
		return max(time.Duration(secs)*time.Second, 0)
	}
	if at, err := http.ParseTime(v); err == nil && at.After(now) {
		return at.Sub(now)
	}
	return 0
}

package acl

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/jsamuelsen11/go-powerbi/internal/platform/httpclient"
)

// Requester centralizes the HTTP request lifecycle for the Power BI clients:
// URL assembly, JSON marshaling, execution via httpclient.Client, response
// body cleanup, status code validation, error translation, and JSON
// decoding.
type Requester struct {
	client *httpclient.Client
	logger *slog.Logger
}

// NewRequester creates a Requester backed by the given HTTP client and logger.
func NewRequester(client *httpclient.Client, logger *slog.Logger) *Requester {
	return &Requester{client: client, logger: logger}
}

// Do executes one request against the API root.
//
// path is relative to the root and may carry an encoded query string
// ("admin/groups?$top=5000"). op names the call in error messages
// ("Get Groups"). reqBody is marshaled to JSON when non-nil. When the
// status matches wantStatus the body is decoded into respBody (if non-nil);
// any other status yields a *domain.HTTPError.
func (r *Requester) Do(ctx context.Context, op, method, path string, wantStatus int, reqBody, respBody any) error {
	req, err := r.newRequest(ctx, method, path, reqBody)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	resp, err := r.send(req, op, wantStatus)
	if err != nil {
		return err
	}
	defer r.closeBody(ctx, resp)

	if respBody == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(respBody); err != nil {
		return fmt.Errorf("decoding %s response from %s %s: %w", op, req.Method, req.URL.Path, err)
	}
	return nil
}

// Stream issues a GET and, on 200, returns the open response body. The
// caller must close it.
func (r *Requester) Stream(ctx context.Context, op, path string) (io.ReadCloser, error) {
	req, err := r.newRequest(ctx, http.MethodGet, path, nil)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	resp, err := r.send(req, op, http.StatusOK)
	if err != nil {
		return nil, err
	}
	return resp.Body, nil
}

// BaseURL returns the API root from the underlying HTTP client.
func (r *Requester) BaseURL() string {
	return r.client.BaseURL()
}

func (r *Requester) newRequest(ctx context.Context, method, path string, reqBody any) (*http.Request, error) {
	url := r.client.BaseURL() + "/" + path

	body := io.Reader(http.NoBody)
	if reqBody != nil {
		b, err := json.Marshal(reqBody)
		if err != nil {
			return nil, fmt.Errorf("marshaling %s body for %s: %w", method, path, err)
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return nil, fmt.Errorf("creating %s request for %s: %w", method, path, err)
	}
	if reqBody != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")
	return req, nil
}

// send executes req and returns the response only when its status is
// wantStatus. On any other outcome the body is closed.
func (r *Requester) send(req *http.Request, op string, wantStatus int) (*http.Response, error) {
	ctx := req.Context()

	resp, err := r.client.Do(ctx, req)
	if err != nil && resp == nil {
		r.logger.ErrorContext(ctx, "request failed",
			slog.String("operation", op),
			slog.String("method", req.Method),
			slog.String("url", req.URL.String()),
			slog.Any("error", err),
		)
		return nil, fmt.Errorf("%s %s %s: %w", op, req.Method, req.URL.Path, err)
	}

	// httpclient.Do returns both resp and err once retries are exhausted on
	// a retryable status; the response is translated like any other.
	if resp.StatusCode != wantStatus {
		defer r.closeBody(ctx, resp)

		herr := TranslateHTTPError(op, resp)
		r.logger.ErrorContext(ctx, "unexpected status",
			slog.String("operation", op),
			slog.String("method", req.Method),
			slog.String("url", req.URL.String()),
			slog.Int("status", resp.StatusCode),
			slog.Int("want_status", wantStatus),
			slog.String("request_id", herr.RequestID),
		)
		return nil, herr
	}
	return resp, nil
}

// closeBody closes an HTTP response body and logs on failure.
func (r *Requester) closeBody(ctx context.Context, resp *http.Response) {
	if err := resp.Body.Close(); err != nil {
		r.logger.WarnContext(ctx, "failed to close response body",
			slog.String("error", err.Error()),
		)
	}
}

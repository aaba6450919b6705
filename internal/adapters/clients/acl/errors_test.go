package acl

import (
	"errors"
	"io"
	"net/http"
	"net/url"
	"strings"
	"testing"

	"github.com/jsamuelsen11/go-powerbi/internal/domain"
)

func TestTranslateHTTPError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		statusCode  int
		body        string
		wantCode    string
		wantMessage string
	}{
		{
			name:        "power bi error envelope",
			statusCode:  http.StatusNotFound,
			body:        `{"error":{"code":"ItemNotFound","message":"Couldn't find report"}}`,
			wantCode:    "ItemNotFound",
			wantMessage: "Couldn't find report",
		},
		{
			name:        "bare message",
			statusCode:  http.StatusUnauthorized,
			body:        `{"Message":"Authorization has been denied for this request."}`,
			wantMessage: "Authorization has been denied for this request.",
		},
		{
			name:       "code without message",
			statusCode: http.StatusForbidden,
			body:       `{"error":{"code":"PowerBINotAuthorizedException","pbi.error":{}}}`,
			wantCode:   "PowerBINotAuthorizedException",
		},
		{
			name:       "non-json body",
			statusCode: http.StatusBadGateway,
			body:       "<html>bad gateway</html>",
		},
		{
			name:       "empty body",
			statusCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			resp := &http.Response{
				StatusCode: tt.statusCode,
				Header:     http.Header{"Requestid": []string{"rid-1"}},
				Body:       io.NopCloser(strings.NewReader(tt.body)),
				Request: &http.Request{
					Method: http.MethodGet,
					URL:    &url.URL{Scheme: "https", Host: "api.powerbi.com", Path: "/v1.0/myorg/reports"},
				},
			}

			got := TranslateHTTPError("Get Reports", resp)

			if !errors.Is(got, domain.ErrUnexpectedStatus) {
				t.Errorf("errors.Is(ErrUnexpectedStatus) = false for %v", got)
			}
			if got.StatusCode != tt.statusCode {
				t.Errorf("StatusCode = %d, want %d", got.StatusCode, tt.statusCode)
			}
			if got.Code != tt.wantCode {
				t.Errorf("Code = %q, want %q", got.Code, tt.wantCode)
			}
			if got.Message != tt.wantMessage {
				t.Errorf("Message = %q, want %q", got.Message, tt.wantMessage)
			}
			if got.RequestID != "rid-1" {
				t.Errorf("RequestID = %q, want %q", got.RequestID, "rid-1")
			}
			if got.Method != http.MethodGet || got.URL != "https://api.powerbi.com/v1.0/myorg/reports" {
				t.Errorf("Method/URL = %s %s, want GET .../reports", got.Method, got.URL)
			}
			if string(got.Body) != tt.body {
				t.Errorf("Body = %q, want %q", got.Body, tt.body)
			}
			if !strings.HasPrefix(got.Error(), "Get Reports request returned http error") {
				t.Errorf("Error() = %q, want operation prefix", got.Error())
			}
		})
	}
}

func TestTranslateHTTPError_BodyCapped(t *testing.T) {
	t.Parallel()

	resp := &http.Response{
		StatusCode: http.StatusInternalServerError,
		Header:     http.Header{},
		Body:       io.NopCloser(strings.NewReader(strings.Repeat("x", maxErrorBodySize+100))),
	}

	got := TranslateHTTPError("Get Groups", resp)
	if len(got.Body) != maxErrorBodySize {
		t.Errorf("len(Body) = %d, want %d", len(got.Body), maxErrorBodySize)
	}
}

func TestTranslateHTTPError_NilBody(t *testing.T) {
	t.Parallel()

	got := TranslateHTTPError("Delete report", &http.Response{StatusCode: http.StatusNotFound, Header: http.Header{}})
	if got.Body != nil {
		t.Errorf("Body = %q, want nil", got.Body)
	}
}

// Package acl implements the Anti-Corruption Layer between the Power BI REST
// API and the domain records. Per-resource envelopes and translators live in
// subpackages (acl/reports, acl/datasets, acl/groups, acl/activityevents);
// shared request handling and error mapping live here.
package acl

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/jsamuelsen11/go-powerbi/internal/domain"
)

// maxErrorBodySize limits how much of an error response body we read.
const maxErrorBodySize = 1 << 20 // 1 MB

// errorEnvelope is the {"error":{"code","message"}} body Power BI returns on
// failures. Some gateways answer with a bare {"Message"} instead.
type errorEnvelope struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
	Message string `json:"Message"`
}

// TranslateHTTPError builds the *domain.HTTPError for a response whose
// status is not the one op expects. It reads at most 1 MB of the body.
func TranslateHTTPError(op string, resp *http.Response) *domain.HTTPError {
	herr := &domain.HTTPError{
		Operation:  op,
		StatusCode: resp.StatusCode,
		RequestID:  resp.Header.Get("RequestId"),
	}
	if resp.Request != nil {
		herr.Method = resp.Request.Method
		herr.URL = resp.Request.URL.String()
	}

	if resp.Body == nil {
		return herr
	}
	body, err := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodySize))
	if err != nil || len(body) == 0 {
		return herr
	}
	herr.Body = body

	var env errorEnvelope
	if err := json.Unmarshal(body, &env); err != nil {
		return herr
	}
	herr.Code = env.Error.Code
	herr.Message = env.Error.Message
	if herr.Message == "" {
		herr.Message = env.Message
	}
	return herr
}

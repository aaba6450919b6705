package domain

import (
	"errors"
	"fmt"
	"net/http"
	"sort"
	"strings"
)

// Sentinel errors for errors.Is() checking.
var (
	ErrValidation       = errors.New("validation error")
	ErrUnexpectedStatus = errors.New("unexpected status")
)

// Field-level validation messages shared by record decoders.
const (
	MsgRequired = "is required"
)

// ValidationError provides programmatic access to field-level validation failures.
// Use errors.Is(err, ErrValidation) for simple checks, or errors.As(err, &verr) to
// access verr.Fields for per-field error details.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for field, msg := range e.Fields {
		parts = append(parts, field+": "+msg)
	}
	sort.Strings(parts)
	return fmt.Sprintf("%s: %s", ErrValidation.Error(), strings.Join(parts, "; "))
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// HTTPError is the single error kind returned when the Power BI API answers
// with anything other than the status an operation expects. It carries the
// raw response so callers can inspect the service's own diagnostics.
//
// Use errors.Is(err, ErrUnexpectedStatus) for simple checks, or
// errors.As(err, &herr) to read the status code and body.
type HTTPError struct {
	// Operation is a short description of the call, e.g. "Get Groups".
	Operation  string
	Method     string
	URL        string
	StatusCode int

	// Code and Message come from the {"error":{"code","message"}} envelope
	// when the body has one.
	Code    string
	Message string

	// RequestID is the RequestId response header Power BI attaches for
	// support tickets.
	RequestID string
	Body      []byte
}

func (e *HTTPError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s request returned http error: %d %s", e.Operation, e.StatusCode, http.StatusText(e.StatusCode))
	if e.Code != "" {
		fmt.Fprintf(&b, " [%s]", e.Code)
	}
	if e.Message != "" {
		b.WriteString(": ")
		b.WriteString(e.Message)
	} else if len(e.Body) > 0 {
		b.WriteString(": ")
		b.Write(e.Body)
	}
	return b.String()
}

func (e *HTTPError) Unwrap() error {
	return ErrUnexpectedStatus
}

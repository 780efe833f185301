// Package apierror provides the error envelope and error-kind taxonomy for
// the API. Services translate storage failures into one of the kinds below;
// handlers map kinds to HTTP statuses. Raw storage errors never reach clients.
package apierror

import (
	"errors"
	"net/http"
)

// APIError is the canonical error envelope for all 4xx/5xx HTTP responses.
type APIError struct {
	Error string `json:"error"`
}

func New(msg string) *APIError {
	return &APIError{Error: msg}
}

// ValidationError wraps multiple field errors from request binding.
type ValidationError struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields"`
}

func NewValidation(fields map[string]string) *ValidationError {
	return &ValidationError{Error: "validation failed", Fields: fields}
}

// Kind classifies a service-layer failure.
type Kind int

const (
	KindInternal     Kind = iota
	KindValidation        // missing/invalid input → 400
	KindUnauthorized      // bad credentials, bad/expired token → 401
	KindConflict          // duplicate name, delete blocked by dependents → 409
	KindNotFound          // referenced record does not exist → 404
)

// Error is a classified service error with a client-safe message. Err holds
// the internal cause (never serialized) so handlers can log it.
type Error struct {
	Kind Kind
	Msg  string
	Err  error
}

func (e *Error) Error() string { return e.Msg }
func (e *Error) Unwrap() error { return e.Err }

func Validationf(msg string) *Error   { return &Error{Kind: KindValidation, Msg: msg} }
func Unauthorizedf(msg string) *Error { return &Error{Kind: KindUnauthorized, Msg: msg} }
func Conflictf(msg string) *Error     { return &Error{Kind: KindConflict, Msg: msg} }
func NotFoundf(msg string) *Error     { return &Error{Kind: KindNotFound, Msg: msg} }

// Internal classifies err as an internal failure. The client sees a generic
// message; err itself is only logged.
func Internal(err error) *Error {
	return &Error{Kind: KindInternal, Msg: "internal server error", Err: err}
}

// Status returns the HTTP status for err. Unclassified errors are treated as
// internal so nothing leaks by default.
func Status(err error) int {
	var e *Error
	if !errors.As(err, &e) {
		return http.StatusInternalServerError
	}
	switch e.Kind {
	case KindValidation:
		return http.StatusBadRequest
	case KindUnauthorized:
		return http.StatusUnauthorized
	case KindConflict:
		return http.StatusConflict
	case KindNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// Message returns the client-safe message for err. Unclassified errors get a
// generic message; the real cause is logged server-side only.
func Message(err error) string {
	var e *Error
	if errors.As(err, &e) && e.Kind != KindInternal {
		return e.Msg
	}
	return "internal server error"
}

// Package errs defines the domain error taxonomy shared by the service layers.
// Handlers map Kind to an HTTP status; use cases attach the quote status code
// describing the actual current state so clients can branch on it.
package errs

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies a domain error
type Kind int

const (
	// InvalidInput covers missing or malformed required fields
	InvalidInput Kind = iota + 1
	// NotFound covers quote, user or vehicle-registration lookup failures
	NotFound
	// InvalidState covers operations attempted against a quote whose state forbids them
	InvalidState
	// QuotaExhausted means the user has no vehicle lookups remaining
	QuotaExhausted
	// UpstreamUnavailable covers vehicle API failures not attributable to a bad registration
	UpstreamUnavailable
	// Internal covers unexpected storage or infrastructure failures
	Internal
)

// Error is a classified domain error. StateCode carries the contract status
// string for conflict responses; empty otherwise.
type Error struct {
	Kind      Kind
	Message   string
	StateCode string
	Err       error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// New creates a classified error with a human-readable message
func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// Newf creates a classified error with a formatted message
func Newf(kind Kind, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// Wrap classifies an underlying error
func Wrap(kind Kind, message string, err error) *Error {
	return &Error{Kind: kind, Message: message, Err: err}
}

// Conflict creates an InvalidState error carrying the status code that
// describes the quote's actual current state
func Conflict(stateCode, message string) *Error {
	return &Error{Kind: InvalidState, Message: message, StateCode: stateCode}
}

// KindOf extracts the Kind from an error chain; Internal when unclassified
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return Internal
}

// StateCodeOf extracts the conflict state code from an error chain, if any
func StateCodeOf(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.StateCode
	}
	return ""
}

// HTTPStatus maps an error chain to the HTTP status code surfaced to callers
func HTTPStatus(err error) int {
	switch KindOf(err) {
	case InvalidInput:
		return http.StatusBadRequest
	case NotFound:
		return http.StatusNotFound
	case InvalidState:
		return http.StatusConflict
	case QuotaExhausted:
		return http.StatusForbidden
	case UpstreamUnavailable:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// IsKind reports whether the error chain carries the given kind
func IsKind(err error, kind Kind) bool {
	return KindOf(err) == kind
}

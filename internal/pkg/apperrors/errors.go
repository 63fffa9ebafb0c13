package apperrors

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies an error into the taxonomy the HTTP layer maps to status
// codes. Business-rule violations carry a specific kind; anything
// unclassified is treated as Internal.
type Kind int

const (
	KindUnknown Kind = iota
	KindInvalidArgument
	KindUnauthorized
	KindForbidden
	KindNotFound
	KindConflict
	KindInternal
)

// Error is a kind-tagged error. Message is safe to return to clients; the
// wrapped error keeps full detail for server-side logs.
type Error struct {
	Kind    Kind
	Message string
	Err     error
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

// New creates a kind-tagged error with a client-safe message
func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// Wrap tags an underlying error with a kind and a client-safe message
func Wrap(kind Kind, message string, err error) *Error {
	return &Error{Kind: kind, Message: message, Err: err}
}

// InvalidArgument marks malformed or missing input
func InvalidArgument(message string) *Error {
	return New(KindInvalidArgument, message)
}

// Unauthorized marks missing, invalid or expired credentials
func Unauthorized(message string) *Error {
	return New(KindUnauthorized, message)
}

// Forbidden marks an authenticated caller not entitled to the resource
func Forbidden(message string) *Error {
	return New(KindForbidden, message)
}

// NotFound marks a missing resource
func NotFound(message string) *Error {
	return New(KindNotFound, message)
}

// Conflict marks a uniqueness violation or duplicate submission
func Conflict(message string) *Error {
	return New(KindConflict, message)
}

// Internal wraps an unexpected storage or signing failure. The client sees
// only the generic message.
func Internal(message string, err error) *Error {
	return Wrap(KindInternal, message, err)
}

// KindOf extracts the kind from an error chain, defaulting to Internal
func KindOf(err error) Kind {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindInternal
}

// MessageOf extracts the client-safe message from an error chain. Untagged
// errors get a generic message so storage detail never leaks.
func MessageOf(err error) string {
	var appErr *Error
	if errors.As(err, &appErr) && appErr.Kind != KindInternal {
		return appErr.Message
	}
	return "internal server error"
}

// HTTPStatus maps an error chain to its HTTP status code
func HTTPStatus(err error) int {
	switch KindOf(err) {
	case KindInvalidArgument:
		return http.StatusBadRequest
	case KindUnauthorized:
		return http.StatusUnauthorized
	case KindForbidden:
		return http.StatusForbidden
	case KindNotFound:
		return http.StatusNotFound
	case KindConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

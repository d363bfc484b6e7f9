package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// Error is a typed domain error carrying the caller-visible class and the
// HTTP status it maps to. The wrapped cause is logged server-side but never
// serialized to callers.
type Error struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Status  int    `json:"status"`
	Err     error  `json:"-"`
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the wrapped cause.
func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// New creates a new Error instance.
func New(code string, status int, message string) *Error {
	return &Error{Code: code, Status: status, Message: message}
}

// Wrap attaches a cause to a new Error.
func Wrap(err error, code string, status int, message string) *Error {
	return &Error{Code: code, Status: status, Message: message, Err: err}
}

// The two caller-visible failure classes: malformed input and everything
// else. Raw internal error text is not part of the caller contract.
var (
	ErrInvalidArgument = New("INVALID_ARGUMENT", http.StatusBadRequest, "malformed request")
	ErrInternal        = New("INTERNAL", http.StatusInternalServerError, "an internal error occurred")
)

// InvalidArgument builds an INVALID_ARGUMENT error with a message naming
// the offending field or shape.
func InvalidArgument(message string) *Error {
	return New(ErrInvalidArgument.Code, ErrInvalidArgument.Status, message)
}

// Internal wraps a cause as an INTERNAL error.
func Internal(err error, message string) *Error {
	return Wrap(err, ErrInternal.Code, ErrInternal.Status, message)
}

// FromError normalises any error into an *Error; unrecognized errors are
// classified as internal.
func FromError(err error) *Error {
	if err == nil {
		return nil
	}
	var e *Error
	if errors.As(err, &e) {
		return e
	}
	return Internal(err, ErrInternal.Message)
}

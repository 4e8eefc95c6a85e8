package apperrors

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind tags an error with its place in the failure taxonomy. Controllers map
// kinds to HTTP status codes exactly once, at the response boundary.
type Kind int

const (
	KindInternal Kind = iota
	KindValidation
	KindAuth
	KindNotFound
	KindInsufficientStock
	KindEmptySelection
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindAuth:
		return "auth"
	case KindNotFound:
		return "not_found"
	case KindInsufficientStock:
		return "insufficient_stock"
	case KindEmptySelection:
		return "empty_selection"
	default:
		return "internal"
	}
}

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

func (e *Error) Unwrap() error { return e.Err }

// Is lets errors.Is match two *Error values by kind, so services can return
// wrapped causes without callers caring about them.
func (e *Error) Is(target error) bool {
	var t *Error
	if errors.As(target, &t) {
		return e.Kind == t.Kind
	}
	return false
}

func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

func Wrap(kind Kind, message string, err error) *Error {
	return &Error{Kind: kind, Message: message, Err: err}
}

func Validation(message string) *Error        { return New(KindValidation, message) }
func Auth(message string) *Error              { return New(KindAuth, message) }
func NotFound(message string) *Error          { return New(KindNotFound, message) }
func InsufficientStock(message string) *Error { return New(KindInsufficientStock, message) }
func EmptySelection(message string) *Error    { return New(KindEmptySelection, message) }
func Internal(message string, err error) *Error {
	return Wrap(KindInternal, message, err)
}

// StatusCode returns the HTTP status for any error. Unknown errors are
// treated as internal.
func StatusCode(err error) int {
	var appErr *Error
	if !errors.As(err, &appErr) {
		return http.StatusInternalServerError
	}
	switch appErr.Kind {
	case KindValidation, KindInsufficientStock, KindEmptySelection:
		return http.StatusBadRequest
	case KindAuth:
		return http.StatusUnauthorized
	case KindNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// KindOf extracts the kind from an error, defaulting to internal.
func KindOf(err error) Kind {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindInternal
}

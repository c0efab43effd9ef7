package common

import "errors"

// Kind classifies every error the application layer can surface.
// The set is closed: handlers and services only ever observe these four.
type Kind string

const (
	KindValidation    Kind = "VALIDATION"
	KindNotFound      Kind = "NOT_FOUND"
	KindAuthorization Kind = "AUTHORIZATION"
	KindDatabase      Kind = "DATABASE_ERROR"
)

// Error is a typed application error carrying a kind and a status hint
// for the transport layer.
type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

// StatusHint maps the error kind to its HTTP status code
func (e *Error) StatusHint() int {
	switch e.Kind {
	case KindValidation:
		return 400
	case KindNotFound:
		return 404
	case KindAuthorization:
		return 403
	default:
		return 500
	}
}

// NewValidationError creates a VALIDATION error
func NewValidationError(message string) *Error {
	return &Error{Kind: KindValidation, Message: message}
}

// NewNotFoundError creates a NOT_FOUND error
func NewNotFoundError(message string) *Error {
	return &Error{Kind: KindNotFound, Message: message}
}

// NewAuthorizationError creates an AUTHORIZATION error
func NewAuthorizationError(message string) *Error {
	return &Error{Kind: KindAuthorization, Message: message}
}

// NewDatabaseError creates a DATABASE_ERROR
func NewDatabaseError(message string) *Error {
	return &Error{Kind: KindDatabase, Message: message}
}

// AsError extracts a typed *Error from err, if it is one
func AsError(err error) (*Error, bool) {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

// WrapDatabase passes typed errors through unchanged and wraps anything
// else as a DATABASE_ERROR with the given message. The underlying detail
// is dropped from the returned error; callers log it before wrapping.
func WrapDatabase(err error, message string) error {
	if appErr, ok := AsError(err); ok {
		return appErr
	}
	return NewDatabaseError(message)
}

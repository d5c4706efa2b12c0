package auth

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrorKind classifies token failures. The set is closed: every failure the
// codec or the gate can produce maps to exactly one of these values.
type ErrorKind int

const (
	// KindExpired means the token was well-formed and correctly signed but is
	// past its expiry.
	KindExpired ErrorKind = iota
	// KindInvalid means the token was malformed, carried a bad signature, or
	// had an unusable subject.
	KindInvalid
	// KindRefreshInvalid means a refresh token presented to the refresh flow
	// failed validation.
	KindRefreshInvalid
	// KindUnknown covers any failure that could not be classified.
	KindUnknown
)

// HTTPMapping returns the status and stable error code surfaced to the
// caller. Token failures are always 401, never 403 or 500.
func (k ErrorKind) HTTPMapping() (int, string) {
	switch k {
	case KindExpired:
		return http.StatusUnauthorized, "TOKEN_EXPIRED"
	case KindInvalid:
		return http.StatusUnauthorized, "TOKEN_INVALID"
	case KindRefreshInvalid:
		return http.StatusUnauthorized, "TOKEN_INVALID"
	case KindUnknown:
		return http.StatusUnauthorized, "TOKEN_INVALID"
	}
	return http.StatusUnauthorized, "TOKEN_INVALID"
}

// Error is a classified token failure.
type Error struct {
	Kind    ErrorKind
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

// NewError constructs a classified token error.
func NewError(kind ErrorKind, message string, err error) *Error {
	return &Error{Kind: kind, Message: message, Err: err}
}

// AsError extracts the classified error, wrapping unclassified errors as
// KindUnknown so the caller never sees internal error text.
func AsError(err error) *Error {
	var authErr *Error
	if errors.As(err, &authErr) {
		return authErr
	}
	return &Error{Kind: KindUnknown, Message: "authentication failed", Err: err}
}

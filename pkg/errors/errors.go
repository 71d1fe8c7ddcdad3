package errors

import (
	"fmt"
	"net/http"
)

var (
	// tokens
	ErrInvalidSigningMethod = fmt.Errorf("invalid token signing method")
	ErrInvalidToken         = fmt.Errorf("invalid token")
	ErrTokenExpired         = fmt.Errorf("token has expired")
	ErrTokenNotYetValid     = fmt.Errorf("token is not active yet")

	// authorization
	ErrEmptyAuthHeader   = fmt.Errorf("authorization header is missing")
	ErrInvalidAuthHeader = fmt.Errorf("authorization header has invalid format")
	ErrUnauthorized      = fmt.Errorf("unauthorized")
	ErrForbidden         = fmt.Errorf("access denied")

	// context
	ErrUserIDNotFoundInContext = fmt.Errorf("user id not found in request context")
	ErrUserNotFound            = fmt.Errorf("user not found")

	// common
	ErrNotFound   = fmt.Errorf("record not found")
	ErrBadRequest = fmt.Errorf("bad request")
)

// HttpError carries the status code and the user-facing message. The wrapped
// error keeps driver detail for logs only.
type HttpError struct {
	Code    int
	Message string
	Err     error
}

func (e *HttpError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *HttpError) Unwrap() error { return e.Err }

func NewHttpError(code int, message string, err error) *HttpError {
	return &HttpError{Code: code, Message: message, Err: err}
}

func NewInternalError(message string) *HttpError {
	return &HttpError{Code: http.StatusInternalServerError, Message: message}
}

func NewBadRequestError(format string, args ...interface{}) *HttpError {
	return &HttpError{Code: http.StatusBadRequest, Message: fmt.Sprintf(format, args...)}
}

// StatusFor maps known sentinel errors to HTTP status codes. Anything
// unrecognized is a 500.
func StatusFor(err error) int {
	if httpErr, ok := err.(*HttpError); ok {
		return httpErr.Code
	}
	switch err {
	case ErrNotFound, ErrUserNotFound:
		return http.StatusNotFound
	case ErrBadRequest:
		return http.StatusBadRequest
	case ErrEmptyAuthHeader, ErrInvalidAuthHeader, ErrInvalidToken, ErrTokenExpired,
		ErrTokenNotYetValid, ErrUnauthorized, ErrInvalidSigningMethod:
		return http.StatusUnauthorized
	case ErrForbidden:
		return http.StatusForbidden
	}
	return http.StatusInternalServerError
}

package errors

import (
	"errors"
	"net/http"
)

var (
	// ErrInvalidCredentials is returned for any failed login attempt. It is
	// deliberately uniform: an unknown username and a wrong password are
	// indistinguishable to the caller.
	ErrInvalidCredentials = errors.New("invalid username or password")
	// ErrMissingUsername is returned when a cart or checkout operation lacks a username.
	ErrMissingUsername = errors.New("username is required")
	// ErrMissingVariant is returned when a cart add lacks part of the variant identity.
	ErrMissingVariant = errors.New("model, size, color and gender are required")
	// ErrInvalidQuantity is returned when a cart add quantity is zero or negative.
	ErrInvalidQuantity = errors.New("quantity must be greater than zero")
	// ErrNegativeQuantity is returned when a cart update quantity is negative;
	// updating to zero is legal.
	ErrNegativeQuantity = errors.New("quantity must not be negative")
	// ErrInvalidSequence is returned when a cart sequence is not a positive integer.
	ErrInvalidSequence = errors.New("sequence must be a positive integer")
)

// ErrorResponse represents a standardized error response.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// HTTPError represents an HTTP error with status code.
type HTTPError struct {
	StatusCode int
	Message    string
	Code       string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTP error.
func NewHTTPError(statusCode int, message, code string) *HTTPError {
	return &HTTPError{
		StatusCode: statusCode,
		Message:    message,
		Code:       code,
	}
}

// ToErrorResponse converts an HTTPError to ErrorResponse.
func (e *HTTPError) ToErrorResponse() ErrorResponse {
	return ErrorResponse{
		Error: e.Message,
		Code:  e.Code,
	}
}

// MapErrorToHTTP maps domain errors to HTTP errors. Anything not in the
// taxonomy is an internal error; the original message never reaches the
// client.
func MapErrorToHTTP(err error) *HTTPError {
	switch {
	case errors.Is(err, ErrInvalidCredentials):
		return NewHTTPError(http.StatusUnauthorized, err.Error(), "INVALID_CREDENTIALS")
	case errors.Is(err, ErrMissingUsername):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "MISSING_USERNAME")
	case errors.Is(err, ErrMissingVariant):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "MISSING_VARIANT")
	case errors.Is(err, ErrInvalidQuantity):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "INVALID_QUANTITY")
	case errors.Is(err, ErrNegativeQuantity):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "NEGATIVE_QUANTITY")
	case errors.Is(err, ErrInvalidSequence):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "INVALID_SEQUENCE")
	default:
		return NewHTTPError(http.StatusInternalServerError, "internal server error", "INTERNAL_ERROR")
	}
}

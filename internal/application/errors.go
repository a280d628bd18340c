package application

import (
	"errors"
	"fmt"
	"net/http"
)

// APPLICATION-LEVEL ERRORS (Orchestration)

type ServiceError struct {
	Code       string
	Message    string
	HTTPStatus int
	Err        error
}

func (e *ServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *ServiceError) Unwrap() error {
	return e.Err
}

const (
	ErrCodeInvalidInput        = "INVALID_INPUT"
	ErrCodeNotFound            = "NOT_FOUND"
	ErrCodeUpstreamRejected    = "UPSTREAM_REJECTED"
	ErrCodeUpstreamUnavailable = "UPSTREAM_UNAVAILABLE"
	ErrCodeTimeout             = "TIMEOUT"
	ErrCodeInternal            = "INTERNAL_ERROR"
)

func NewInvalidInputError(err error) *ServiceError {
	return &ServiceError{
		Code:       ErrCodeInvalidInput,
		Message:    "Invalid input",
		HTTPStatus: http.StatusBadRequest,
		Err:        err,
	}
}

func NewNotFoundError(what string) *ServiceError {
	return &ServiceError{
		Code:       ErrCodeNotFound,
		Message:    fmt.Sprintf("%s not found", what),
		HTTPStatus: http.StatusNotFound,
	}
}

// NewUpstreamRejectedError carries the status the payments platform
// answered with, so the caller sees the original rejection.
func NewUpstreamRejectedError(status int, err error) *ServiceError {
	return &ServiceError{
		Code:       ErrCodeUpstreamRejected,
		Message:    "Payment platform rejected the request",
		HTTPStatus: status,
		Err:        err,
	}
}

func NewUpstreamUnavailableError(err error) *ServiceError {
	return &ServiceError{
		Code:       ErrCodeUpstreamUnavailable,
		Message:    "Payment platform unavailable",
		HTTPStatus: http.StatusBadGateway,
		Err:        err,
	}
}

func NewTimeoutError(err error) *ServiceError {
	return &ServiceError{
		Code:       ErrCodeTimeout,
		Message:    "Request timed out waiting for the payment platform",
		HTTPStatus: http.StatusRequestTimeout,
		Err:        err,
	}
}

func NewInternalError(err error) *ServiceError {
	return &ServiceError{
		Code:       ErrCodeInternal,
		Message:    "An internal error occurred",
		HTTPStatus: http.StatusInternalServerError,
		Err:        err,
	}
}

func IsServiceError(err error) (*ServiceError, bool) {
	var svcErr *ServiceError
	ok := errors.As(err, &svcErr)
	return svcErr, ok
}

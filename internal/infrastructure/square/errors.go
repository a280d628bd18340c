package square

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrorDetail is one entry of the errors array Square attaches to a
// rejected request.
type ErrorDetail struct {
	Category string `json:"category"`
	Code     string `json:"code"`
	Detail   string `json:"detail,omitempty"`
	Field    string `json:"field,omitempty"`
}

// APIError is a structured rejection from Square. Rejections below 500
// (other than 429) mean the request itself was refused and retrying it
// is pointless.
type APIError struct {
	StatusCode int
	Errors     []ErrorDetail
}

type apiErrorResponse struct {
	Errors []ErrorDetail `json:"errors"`
}

func (e *APIError) Error() string {
	if len(e.Errors) > 0 {
		return fmt.Sprintf("square error [%s]: %s (status: %d)", e.Errors[0].Code, e.Errors[0].Detail, e.StatusCode)
	}
	return fmt.Sprintf("square error (status: %d)", e.StatusCode)
}

func (e *APIError) IsRetryable() bool {
	return e.StatusCode >= 500 || e.StatusCode == http.StatusTooManyRequests
}

func IsAPIError(err error) (*APIError, bool) {
	var apiErr *APIError
	ok := errors.As(err, &apiErr)
	return apiErr, ok
}

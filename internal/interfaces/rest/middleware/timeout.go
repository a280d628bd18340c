package middleware

import (
	"net/http"
	"time"
)

// Timeout bounds each request with http.TimeoutHandler, which cancels the
// request context and answers 503 with the supplied body once the limit
// passes. The body is rendered by the caller so this package stays out of
// the response-envelope business.
func Timeout(timeout time.Duration, body string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.TimeoutHandler(next, timeout, body)
	}
}

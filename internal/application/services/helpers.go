package services

import (
	"context"
	"errors"

	"github.com/tundeajayi/checkout-gateway/internal/application"
	"github.com/tundeajayi/checkout-gateway/internal/infrastructure/square"
)

// classifyUpstreamError turns a terminal client error into the service
// error taxonomy. Structured rejections keep the status Square answered
// with; anything else is the platform being unreachable.
func classifyUpstreamError(err error) error {
	if apiErr, ok := square.IsAPIError(err); ok {
		return application.NewUpstreamRejectedError(apiErr.StatusCode, err)
	}

	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return application.NewTimeoutError(err)
	}

	return application.NewUpstreamUnavailableError(err)
}

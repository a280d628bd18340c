package square

import (
	"context"
	"log/slog"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/tundeajayi/checkout-gateway/internal/application"
	"github.com/tundeajayi/checkout-gateway/internal/config"
)

const (
	defaultMaxAttempts     = 3
	defaultInitialInterval = 500 * time.Millisecond
	defaultMaxElapsedTime  = 30 * time.Second
)

// RetryClient decorates a PaymentsClient with exponential backoff.
// Structured rejections from Square are permanent: retrying a refused
// request cannot succeed and risks duplicate side effects upstream.
// The idempotency key is part of the request, so every attempt of one
// logical call carries the same key.
type RetryClient struct {
	inner           application.PaymentsClient
	maxAttempts     int
	initialInterval time.Duration
	maxElapsedTime  time.Duration
	logger          *slog.Logger
}

func NewRetryClient(inner application.PaymentsClient, cfg config.RetryConfig, logger *slog.Logger) application.PaymentsClient {
	maxAttempts := cfg.MaxAttempts
	if maxAttempts < 1 {
		maxAttempts = defaultMaxAttempts
	}
	initialInterval := cfg.InitialInterval
	if initialInterval <= 0 {
		initialInterval = defaultInitialInterval
	}
	maxElapsedTime := cfg.MaxElapsedTime
	if maxElapsedTime <= 0 {
		maxElapsedTime = defaultMaxElapsedTime
	}

	return &RetryClient{
		inner:           inner,
		maxAttempts:     maxAttempts,
		initialInterval: initialInterval,
		maxElapsedTime:  maxElapsedTime,
		logger:          logger,
	}
}

func (r *RetryClient) CreatePayment(ctx context.Context, req application.CreatePaymentRequest) (*application.CreatePaymentResponse, error) {
	return retry(r, ctx, "CreatePayment",
		func(ctx context.Context) (*application.CreatePaymentResponse, error) {
			return r.inner.CreatePayment(ctx, req)
		},
	)
}

func (r *RetryClient) CreateCard(ctx context.Context, req application.CreateCardRequest) (*application.CreateCardResponse, error) {
	return retry(r, ctx, "CreateCard",
		func(ctx context.Context) (*application.CreateCardResponse, error) {
			return r.inner.CreateCard(ctx, req)
		},
	)
}

func (r *RetryClient) ListCards(ctx context.Context, customerID string) (*application.ListCardsResponse, error) {
	return retry(r, ctx, "ListCards",
		func(ctx context.Context) (*application.ListCardsResponse, error) {
			return r.inner.ListCards(ctx, customerID)
		},
	)
}

func (r *RetryClient) SearchCustomers(ctx context.Context, req application.SearchCustomersRequest) (*application.SearchCustomersResponse, error) {
	return retry(r, ctx, "SearchCustomers",
		func(ctx context.Context) (*application.SearchCustomersResponse, error) {
			return r.inner.SearchCustomers(ctx, req)
		},
	)
}

// Generic retry helper
func retry[T any](r *RetryClient, ctx context.Context, opName string, operation func(ctx context.Context) (*T, error)) (*T, error) {
	var result *T
	attempt := 0

	call := func() error {
		attempt++
		resp, err := operation(ctx)
		if err != nil {
			if !isRetryable(err) {
				r.logger.Error("square rejected request",
					"operation", opName,
					"attempt", attempt,
					"error", err,
				)
				return backoff.Permanent(err)
			}
			r.logger.Warn("square call failed",
				"operation", opName,
				"attempt", attempt,
				"error", err,
			)
			return err
		}
		result = resp
		return nil
	}

	if err := backoff.Retry(call, r.newBackOff(ctx)); err != nil {
		return nil, err
	}
	return result, nil
}

// Helper: to check retryable errors
func isRetryable(err error) bool {
	if apiErr, ok := IsAPIError(err); ok {
		return apiErr.IsRetryable()
	}

	return true
}

func (r *RetryClient) newBackOff(ctx context.Context) backoff.BackOffContext {
	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = r.initialInterval
	bo.MaxElapsedTime = r.maxElapsedTime

	return backoff.WithContext(backoff.WithMaxRetries(bo, uint64(r.maxAttempts-1)), ctx)
}

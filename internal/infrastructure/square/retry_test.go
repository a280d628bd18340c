package square_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tundeajayi/checkout-gateway/internal/application"
	"github.com/tundeajayi/checkout-gateway/internal/config"
	"github.com/tundeajayi/checkout-gateway/internal/infrastructure/square"
)

func newRetryClient(inner application.PaymentsClient, maxAttempts int) application.PaymentsClient {
	return square.NewRetryClient(inner, config.RetryConfig{
		MaxAttempts:     maxAttempts,
		InitialInterval: time.Millisecond,
		MaxElapsedTime:  time.Second,
	}, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func transientError() *square.APIError {
	return &square.APIError{
		StatusCode: http.StatusInternalServerError,
		Errors: []square.ErrorDetail{
			{Category: "API_ERROR", Code: "INTERNAL_SERVER_ERROR"},
		},
	}
}

func TestRetryClient_CreatePayment_Success(t *testing.T) {
	mockClient := &application.MockPaymentsClient{}
	retryClient := newRetryClient(mockClient, 3)

	req := application.CreatePaymentRequest{
		SourceID:       "src-1",
		IdempotencyKey: "idem-key",
		LocationID:     "loc-1",
		AmountMoney:    application.Money{Amount: 100, Currency: "USD"},
	}

	resp, err := retryClient.CreatePayment(context.Background(), req)

	require.NoError(t, err)
	assert.Equal(t, "pay-123", resp.Payment.ID)
	assert.Equal(t, 1, mockClient.Calls("CreatePayment"))
}

func TestRetryClient_CreatePayment_RetriesOn5xx(t *testing.T) {
	attempts := 0
	mockClient := &application.MockPaymentsClient{
		CreatePaymentFn: func(ctx context.Context, req application.CreatePaymentRequest) (*application.CreatePaymentResponse, error) {
			attempts++
			if attempts < 3 {
				return nil, transientError()
			}
			return &application.CreatePaymentResponse{
				Payment:    application.Payment{ID: "pay-123", Status: "COMPLETED"},
				StatusCode: http.StatusOK,
			}, nil
		},
	}
	retryClient := newRetryClient(mockClient, 3)

	resp, err := retryClient.CreatePayment(context.Background(), application.CreatePaymentRequest{})

	require.NoError(t, err)
	assert.Equal(t, "pay-123", resp.Payment.ID)
	assert.Equal(t, 3, mockClient.Calls("CreatePayment"))
}

func TestRetryClient_CreatePayment_RetriesOn429(t *testing.T) {
	attempts := 0
	mockClient := &application.MockPaymentsClient{
		CreatePaymentFn: func(ctx context.Context, req application.CreatePaymentRequest) (*application.CreatePaymentResponse, error) {
			attempts++
			if attempts == 1 {
				return nil, &square.APIError{
					StatusCode: http.StatusTooManyRequests,
					Errors:     []square.ErrorDetail{{Category: "RATE_LIMIT_ERROR", Code: "RATE_LIMITED"}},
				}
			}
			return &application.CreatePaymentResponse{StatusCode: http.StatusOK}, nil
		},
	}
	retryClient := newRetryClient(mockClient, 3)

	_, err := retryClient.CreatePayment(context.Background(), application.CreatePaymentRequest{})

	require.NoError(t, err)
	assert.Equal(t, 2, mockClient.Calls("CreatePayment"))
}

func TestRetryClient_CreatePayment_BailsOn4xx(t *testing.T) {
	expectedErr := &square.APIError{
		StatusCode: http.StatusBadRequest,
		Errors: []square.ErrorDetail{
			{Category: "INVALID_REQUEST_ERROR", Code: "INVALID_CARD_DATA", Detail: "Invalid card data"},
		},
	}
	mockClient := &application.MockPaymentsClient{
		CreatePaymentFn: func(ctx context.Context, req application.CreatePaymentRequest) (*application.CreatePaymentResponse, error) {
			return nil, expectedErr
		},
	}
	retryClient := newRetryClient(mockClient, 3)

	resp, err := retryClient.CreatePayment(context.Background(), application.CreatePaymentRequest{})

	require.Error(t, err)
	assert.Nil(t, resp)
	assert.Equal(t, 1, mockClient.Calls("CreatePayment"))

	apiErr, ok := square.IsAPIError(err)
	require.True(t, ok)
	assert.Equal(t, "INVALID_CARD_DATA", apiErr.Errors[0].Code)
}

func TestRetryClient_CreatePayment_ExhaustsRetries(t *testing.T) {
	mockClient := &application.MockPaymentsClient{
		CreatePaymentFn: func(ctx context.Context, req application.CreatePaymentRequest) (*application.CreatePaymentResponse, error) {
			return nil, transientError()
		},
	}
	retryClient := newRetryClient(mockClient, 3)

	resp, err := retryClient.CreatePayment(context.Background(), application.CreatePaymentRequest{})

	require.Error(t, err)
	assert.Nil(t, resp)
	assert.Equal(t, 3, mockClient.Calls("CreatePayment"))

	apiErr, ok := square.IsAPIError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusInternalServerError, apiErr.StatusCode)
}

func TestRetryClient_ListCards_BailsOnNotFound(t *testing.T) {
	mockClient := &application.MockPaymentsClient{
		ListCardsFn: func(ctx context.Context, customerID string) (*application.ListCardsResponse, error) {
			return nil, &square.APIError{
				StatusCode: http.StatusNotFound,
				Errors:     []square.ErrorDetail{{Category: "INVALID_REQUEST_ERROR", Code: "NOT_FOUND"}},
			}
		},
	}
	retryClient := newRetryClient(mockClient, 5)

	_, err := retryClient.ListCards(context.Background(), "cust-404")

	require.Error(t, err)
	assert.Equal(t, 1, mockClient.Calls("ListCards"))
}

func TestRetryClient_RetriesPlainNetworkError(t *testing.T) {
	attempts := 0
	mockClient := &application.MockPaymentsClient{
		SearchCustomersFn: func(ctx context.Context, req application.SearchCustomersRequest) (*application.SearchCustomersResponse, error) {
			attempts++
			if attempts == 1 {
				return nil, errors.New("connection reset by peer")
			}
			return &application.SearchCustomersResponse{StatusCode: http.StatusOK}, nil
		},
	}
	retryClient := newRetryClient(mockClient, 3)

	_, err := retryClient.SearchCustomers(context.Background(), application.SearchCustomersRequest{})

	require.NoError(t, err)
	assert.Equal(t, 2, mockClient.Calls("SearchCustomers"))
}

func TestRetryClient_RespectsContextCancellation(t *testing.T) {
	mockClient := &application.MockPaymentsClient{
		CreatePaymentFn: func(ctx context.Context, req application.CreatePaymentRequest) (*application.CreatePaymentResponse, error) {
			return nil, transientError()
		},
	}
	retryClient := square.NewRetryClient(mockClient, config.RetryConfig{
		MaxAttempts:     10,
		InitialInterval: 200 * time.Millisecond,
		MaxElapsedTime:  time.Minute,
	}, slog.New(slog.NewTextHandler(io.Discard, nil)))

	ctx, cancel := context.WithCancel(context.Background())

	// Cancel while the client waits out the first backoff
	go func() {
		time.Sleep(10 * time.Millisecond)
		cancel()
	}()

	resp, err := retryClient.CreatePayment(ctx, application.CreatePaymentRequest{})

	require.Error(t, err)
	assert.Nil(t, resp)
	assert.ErrorIs(t, err, context.Canceled)
}

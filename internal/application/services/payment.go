package services

import (
	"context"

	"github.com/google/uuid"
	"github.com/tundeajayi/checkout-gateway/internal/application"
)

// The charge amount is fixed server-side. Client-submitted amounts are
// validated at the edge but never forwarded to payment creation.
const (
	paymentAmount   = 100
	paymentCurrency = "USD"
)

type CreatePaymentCommand struct {
	SourceID          string
	LocationID        string
	IdempotencyKey    string
	VerificationToken string
}

type PaymentResult struct {
	ID         string
	Status     string
	ReceiptURL string
	OrderID    string
	StatusCode int
}

type PaymentService struct {
	client application.PaymentsClient
}

func NewPaymentService(client application.PaymentsClient) *PaymentService {
	return &PaymentService{client: client}
}

func (s *PaymentService) CreatePayment(ctx context.Context, cmd CreatePaymentCommand) (*PaymentResult, error) {
	// Computed once per logical request, before the retry loop, so every
	// attempt deduplicates to the same upstream operation.
	idempotencyKey := cmd.IdempotencyKey
	if idempotencyKey == "" {
		idempotencyKey = uuid.New().String()
	}

	req := application.CreatePaymentRequest{
		SourceID:       cmd.SourceID,
		IdempotencyKey: idempotencyKey,
		AmountMoney: application.Money{
			Amount:   paymentAmount,
			Currency: paymentCurrency,
		},
		LocationID:        cmd.LocationID,
		VerificationToken: cmd.VerificationToken,
	}

	resp, err := s.client.CreatePayment(ctx, req)
	if err != nil {
		return nil, classifyUpstreamError(err)
	}

	return &PaymentResult{
		ID:         resp.Payment.ID,
		Status:     resp.Payment.Status,
		ReceiptURL: resp.Payment.ReceiptURL,
		OrderID:    resp.Payment.OrderID,
		StatusCode: resp.StatusCode,
	}, nil
}

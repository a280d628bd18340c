package services

import (
	"context"

	"github.com/google/uuid"
	"github.com/tundeajayi/checkout-gateway/internal/application"
)

type CreateCardCommand struct {
	CardholderName    string
	CustomerID        string
	ExpMonth          int64
	ExpYear           int64
	SourceID          string
	IdempotencyKey    string
	VerificationToken string
}

type CardResult struct {
	ID         string
	StatusCode int
}

type CardService struct {
	client application.PaymentsClient
}

func NewCardService(client application.PaymentsClient) *CardService {
	return &CardService{client: client}
}

// CreateCard stores a card on file for the customer.
func (s *CardService) CreateCard(ctx context.Context, cmd CreateCardCommand) (*CardResult, error) {
	idempotencyKey := cmd.IdempotencyKey
	if idempotencyKey == "" {
		idempotencyKey = uuid.New().String()
	}

	req := application.CreateCardRequest{
		IdempotencyKey:    idempotencyKey,
		SourceID:          cmd.SourceID,
		VerificationToken: cmd.VerificationToken,
		Card: application.CardDetails{
			CardholderName: cmd.CardholderName,
			CustomerID:     cmd.CustomerID,
			ExpMonth:       cmd.ExpMonth,
			ExpYear:        cmd.ExpYear,
		},
	}

	resp, err := s.client.CreateCard(ctx, req)
	if err != nil {
		return nil, classifyUpstreamError(err)
	}

	return &CardResult{
		ID:         resp.Card.ID,
		StatusCode: resp.StatusCode,
	}, nil
}

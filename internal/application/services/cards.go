package services

import (
	"context"

	"github.com/tundeajayi/checkout-gateway/internal/application"
)

type CardSummary struct {
	ID         string
	CardBrand  string
	Last4      string
	StatusCode int
}

type CardQueryService struct {
	client application.PaymentsClient
}

func NewCardQueryService(client application.PaymentsClient) *CardQueryService {
	return &CardQueryService{client: client}
}

// GetCustomerCard returns the first card Square lists for the customer,
// in upstream order. Customers are expected to have a single stored card;
// extra cards are ignored.
func (s *CardQueryService) GetCustomerCard(ctx context.Context, customerID string) (*CardSummary, error) {
	resp, err := s.client.ListCards(ctx, customerID)
	if err != nil {
		return nil, classifyUpstreamError(err)
	}

	if len(resp.Cards) == 0 {
		return nil, application.NewNotFoundError("card")
	}

	card := resp.Cards[0]
	return &CardSummary{
		ID:         card.ID,
		CardBrand:  card.CardBrand,
		Last4:      card.Last4,
		StatusCode: resp.StatusCode,
	}, nil
}

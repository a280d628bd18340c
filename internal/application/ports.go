package application

import "context"

// PaymentsClient is the port for the external payments platform.
type PaymentsClient interface {
	CreatePayment(ctx context.Context, req CreatePaymentRequest) (*CreatePaymentResponse, error)
	CreateCard(ctx context.Context, req CreateCardRequest) (*CreateCardResponse, error)
	ListCards(ctx context.Context, customerID string) (*ListCardsResponse, error)
	SearchCustomers(ctx context.Context, req SearchCustomersRequest) (*SearchCustomersResponse, error)
}

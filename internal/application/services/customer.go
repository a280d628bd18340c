package services

import (
	"context"

	"github.com/tundeajayi/checkout-gateway/internal/application"
)

type CustomerResult struct {
	ID         string
	GivenName  string
	FamilyName string
	StatusCode int
}

type CustomerService struct {
	client application.PaymentsClient
}

func NewCustomerService(client application.PaymentsClient) *CustomerService {
	return &CustomerService{client: client}
}

// SearchByEmail looks a customer up by exact email address and returns
// the first match in upstream order.
func (s *CustomerService) SearchByEmail(ctx context.Context, emailAddress string) (*CustomerResult, error) {
	req := application.SearchCustomersRequest{
		Query: application.CustomerQuery{
			Filter: application.CustomerFilter{
				EmailAddress: application.EmailFilter{Exact: emailAddress},
			},
		},
	}

	resp, err := s.client.SearchCustomers(ctx, req)
	if err != nil {
		return nil, classifyUpstreamError(err)
	}

	if len(resp.Customers) == 0 {
		return nil, application.NewNotFoundError("customer")
	}

	customer := resp.Customers[0]
	return &CustomerResult{
		ID:         customer.ID,
		GivenName:  customer.GivenName,
		FamilyName: customer.FamilyName,
		StatusCode: resp.StatusCode,
	}, nil
}

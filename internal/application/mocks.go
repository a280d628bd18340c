package application

import (
	"context"
	"net/http"
	"sync"
)

// MockPaymentsClient is a hand-rolled test double for the PaymentsClient
// port. Behavior is overridden per test via the Fn fields; unset fields
// return canned successes. Call counts are tracked per method so tests can
// assert how many upstream attempts happened.
type MockPaymentsClient struct {
	mu    sync.Mutex
	calls map[string]int

	CreatePaymentFn   func(ctx context.Context, req CreatePaymentRequest) (*CreatePaymentResponse, error)
	CreateCardFn      func(ctx context.Context, req CreateCardRequest) (*CreateCardResponse, error)
	ListCardsFn       func(ctx context.Context, customerID string) (*ListCardsResponse, error)
	SearchCustomersFn func(ctx context.Context, req SearchCustomersRequest) (*SearchCustomersResponse, error)
}

func (m *MockPaymentsClient) inc(method string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.calls == nil {
		m.calls = make(map[string]int)
	}
	m.calls[method]++
}

func (m *MockPaymentsClient) Calls(method string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls[method]
}

func (m *MockPaymentsClient) TotalCalls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	total := 0
	for _, n := range m.calls {
		total += n
	}
	return total
}

func (m *MockPaymentsClient) CreatePayment(ctx context.Context, req CreatePaymentRequest) (*CreatePaymentResponse, error) {
	m.inc("CreatePayment")
	if m.CreatePaymentFn != nil {
		return m.CreatePaymentFn(ctx, req)
	}
	return &CreatePaymentResponse{
		Payment: Payment{
			ID:         "pay-123",
			Status:     "COMPLETED",
			ReceiptURL: "https://squareup.com/receipt/preview/pay-123",
			OrderID:    "order-123",
		},
		StatusCode: http.StatusOK,
	}, nil
}

func (m *MockPaymentsClient) CreateCard(ctx context.Context, req CreateCardRequest) (*CreateCardResponse, error) {
	m.inc("CreateCard")
	if m.CreateCardFn != nil {
		return m.CreateCardFn(ctx, req)
	}
	return &CreateCardResponse{
		Card:       Card{ID: "card-123", CardBrand: "VISA", Last4: "1111"},
		StatusCode: http.StatusOK,
	}, nil
}

func (m *MockPaymentsClient) ListCards(ctx context.Context, customerID string) (*ListCardsResponse, error) {
	m.inc("ListCards")
	if m.ListCardsFn != nil {
		return m.ListCardsFn(ctx, customerID)
	}
	return &ListCardsResponse{
		Cards:      []Card{{ID: "card-123", CardBrand: "VISA", Last4: "1111"}},
		StatusCode: http.StatusOK,
	}, nil
}

func (m *MockPaymentsClient) SearchCustomers(ctx context.Context, req SearchCustomersRequest) (*SearchCustomersResponse, error) {
	m.inc("SearchCustomers")
	if m.SearchCustomersFn != nil {
		return m.SearchCustomersFn(ctx, req)
	}
	return &SearchCustomersResponse{
		Customers:  []Customer{{ID: "cust-123", GivenName: "Ada", FamilyName: "Lovelace"}},
		StatusCode: http.StatusOK,
	}, nil
}

package application

// Wire types for the Square Connect v2 endpoints the gateway calls.
// StatusCode carries the upstream transport status so handlers can
// forward it; it is never part of the request or response body.

type Money struct {
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
}

type CreatePaymentRequest struct {
	SourceID          string `json:"source_id"`
	IdempotencyKey    string `json:"idempotency_key"`
	AmountMoney       Money  `json:"amount_money"`
	LocationID        string `json:"location_id"`
	VerificationToken string `json:"verification_token,omitempty"`
}

type Payment struct {
	ID         string `json:"id"`
	Status     string `json:"status"`
	ReceiptURL string `json:"receipt_url"`
	OrderID    string `json:"order_id"`
}

type CreatePaymentResponse struct {
	Payment    Payment `json:"payment"`
	StatusCode int     `json:"-"`
}

type CardDetails struct {
	CardholderName string `json:"cardholder_name"`
	CustomerID     string `json:"customer_id"`
	ExpMonth       int64  `json:"exp_month"`
	ExpYear        int64  `json:"exp_year"`
}

type CreateCardRequest struct {
	IdempotencyKey    string      `json:"idempotency_key"`
	SourceID          string      `json:"source_id"`
	VerificationToken string      `json:"verification_token,omitempty"`
	Card              CardDetails `json:"card"`
}

type Card struct {
	ID        string `json:"id"`
	CardBrand string `json:"card_brand"`
	Last4     string `json:"last_4"`
}

type CreateCardResponse struct {
	Card       Card `json:"card"`
	StatusCode int  `json:"-"`
}

type ListCardsResponse struct {
	Cards      []Card `json:"cards"`
	Cursor     string `json:"cursor,omitempty"`
	StatusCode int    `json:"-"`
}

type SearchCustomersRequest struct {
	Query CustomerQuery `json:"query"`
}

type CustomerQuery struct {
	Filter CustomerFilter `json:"filter"`
}

type CustomerFilter struct {
	EmailAddress EmailFilter `json:"email_address"`
}

type EmailFilter struct {
	Exact string `json:"exact"`
}

type Customer struct {
	ID         string `json:"id"`
	GivenName  string `json:"given_name"`
	FamilyName string `json:"family_name"`
}

type SearchCustomersResponse struct {
	Customers  []Customer `json:"customers"`
	StatusCode int        `json:"-"`
}

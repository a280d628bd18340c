package square

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/tundeajayi/checkout-gateway/internal/application"
	"github.com/tundeajayi/checkout-gateway/internal/config"
)

type HTTPClient struct {
	baseURL     string
	accessToken string
	version     string
	httpClient  *http.Client
}

func NewClient(cfg config.SquareConfig) application.PaymentsClient {
	return &HTTPClient{
		baseURL:     cfg.BaseURL,
		accessToken: cfg.AccessToken,
		version:     cfg.Version,
		httpClient: &http.Client{
			Timeout: cfg.ConnTimeout,
		},
	}
}

func (c *HTTPClient) CreatePayment(ctx context.Context, req application.CreatePaymentRequest) (*application.CreatePaymentResponse, error) {
	endpoint := fmt.Sprintf("%s/v2/payments", c.baseURL)
	resp, status, err := sendRequest[application.CreatePaymentRequest, application.CreatePaymentResponse](c, ctx, http.MethodPost, endpoint, &req)
	if err != nil {
		return nil, err
	}
	resp.StatusCode = status
	return resp, nil
}

func (c *HTTPClient) CreateCard(ctx context.Context, req application.CreateCardRequest) (*application.CreateCardResponse, error) {
	endpoint := fmt.Sprintf("%s/v2/cards", c.baseURL)
	resp, status, err := sendRequest[application.CreateCardRequest, application.CreateCardResponse](c, ctx, http.MethodPost, endpoint, &req)
	if err != nil {
		return nil, err
	}
	resp.StatusCode = status
	return resp, nil
}

func (c *HTTPClient) ListCards(ctx context.Context, customerID string) (*application.ListCardsResponse, error) {
	endpoint := fmt.Sprintf("%s/v2/cards?customer_id=%s", c.baseURL, url.QueryEscape(customerID))
	resp, status, err := sendRequest[any, application.ListCardsResponse](c, ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	resp.StatusCode = status
	return resp, nil
}

func (c *HTTPClient) SearchCustomers(ctx context.Context, req application.SearchCustomersRequest) (*application.SearchCustomersResponse, error) {
	endpoint := fmt.Sprintf("%s/v2/customers/search", c.baseURL)
	resp, status, err := sendRequest[application.SearchCustomersRequest, application.SearchCustomersResponse](c, ctx, http.MethodPost, endpoint, &req)
	if err != nil {
		return nil, err
	}
	resp.StatusCode = status
	return resp, nil
}

func sendRequest[Req any, Resp any](c *HTTPClient, ctx context.Context, method, endpoint string, reqBody *Req) (*Resp, int, error) {
	var bodyReader io.Reader
	if reqBody != nil {
		jsonData, err := json.Marshal(reqBody)
		if err != nil {
			return nil, 0, fmt.Errorf("error marshalling json: %w", err)
		}
		bodyReader = bytes.NewReader(jsonData)
	}

	httpReq, err := http.NewRequestWithContext(ctx, method, endpoint, bodyReader)
	if err != nil {
		return nil, 0, fmt.Errorf("error creating request: %w", err)
	}

	httpReq.Header.Set("Authorization", "Bearer "+c.accessToken)
	httpReq.Header.Set("Square-Version", c.version)
	if reqBody != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, 0, fmt.Errorf("error making request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode/100 != 2 {
		body, _ := io.ReadAll(resp.Body)
		var errResp apiErrorResponse
		if err := json.Unmarshal(body, &errResp); err != nil || len(errResp.Errors) == 0 {
			return nil, 0, fmt.Errorf("square returned status %d: %s", resp.StatusCode, string(body))
		}
		return nil, 0, &APIError{
			StatusCode: resp.StatusCode,
			Errors:     errResp.Errors,
		}
	}

	var squareResp Resp
	if err := json.NewDecoder(resp.Body).Decode(&squareResp); err != nil {
		return nil, 0, fmt.Errorf("error decoding json response: %w", err)
	}

	return &squareResp, resp.StatusCode, nil
}

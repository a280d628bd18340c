package handlers

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/tundeajayi/checkout-gateway/internal/application/services"
)

type PaymentRequest struct {
	SourceID          string `json:"sourceId" validate:"required"`
	LocationID        string `json:"locationId" validate:"required"`
	Amount            *int64 `json:"amount" validate:"omitempty,gte=0,lte=100000000"`
	IdempotencyKey    string `json:"idempotencyKey"`
	VerificationToken string `json:"verificationToken"`
}

type paymentResponse struct {
	Success bool        `json:"success"`
	Payment paymentData `json:"payment"`
}

type paymentData struct {
	ID         string `json:"id"`
	Status     string `json:"status"`
	ReceiptURL string `json:"receiptUrl"`
	OrderID    string `json:"orderId"`
}

// HandleCreatePayment charges the submitted payment source. The amount is
// fixed server-side; the optional client amount field is validated and
// then discarded.
func (h *Handlers) HandleCreatePayment(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		respondWithValidationError(w, h.logger, err)
		return
	}

	var req PaymentRequest
	if err := json.Unmarshal(body, &req); err != nil {
		respondWithValidationError(w, h.logger, err)
		return
	}

	if err := h.validate.Struct(req); err != nil {
		respondWithValidationError(w, h.logger, err)
		return
	}

	result, err := h.paymentService.CreatePayment(r.Context(), services.CreatePaymentCommand{
		SourceID:          req.SourceID,
		LocationID:        req.LocationID,
		IdempotencyKey:    req.IdempotencyKey,
		VerificationToken: req.VerificationToken,
	})
	if err != nil {
		respondWithError(w, h.logger, err)
		return
	}

	respondWithJSON(w, result.StatusCode, paymentResponse{
		Success: true,
		Payment: paymentData{
			ID:         result.ID,
			Status:     result.Status,
			ReceiptURL: result.ReceiptURL,
			OrderID:    result.OrderID,
		},
	})
}

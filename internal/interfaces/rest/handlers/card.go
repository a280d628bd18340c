package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/tundeajayi/checkout-gateway/internal/application/services"
)

type CardRequest struct {
	ExpMonth          int64  `json:"expMonth" validate:"required,min=1,max=12"`
	ExpYear           int64  `json:"expYear" validate:"required,gte=1,lte=9999"`
	CardHolderName    string `json:"cardHolderName" validate:"required"`
	CustomerID        string `json:"customerId" validate:"required"`
	SourceID          string `json:"sourceId" validate:"required"`
	IdempotencyKey    string `json:"idempotencyKey"`
	VerificationToken string `json:"verificationToken"`
}

var errCardExpired = errors.New("card expiry lies in the past")

// cardExpired reports whether the expiry lies before the current month.
// A card stays valid through the end of its expiry month.
func cardExpired(expMonth, expYear int64, now time.Time) bool {
	if expYear != int64(now.Year()) {
		return expYear < int64(now.Year())
	}
	return expMonth < int64(now.Month())
}

type cardCreatedResponse struct {
	Success bool            `json:"success"`
	Card    cardCreatedData `json:"card"`
}

type cardCreatedData struct {
	ID string `json:"id"`
}

// HandleCreateCard stores a card on file against an existing customer.
func (h *Handlers) HandleCreateCard(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		respondWithValidationError(w, h.logger, err)
		return
	}

	var req CardRequest
	if err := json.Unmarshal(body, &req); err != nil {
		respondWithValidationError(w, h.logger, err)
		return
	}

	if err := h.validate.Struct(req); err != nil {
		respondWithValidationError(w, h.logger, err)
		return
	}

	if cardExpired(req.ExpMonth, req.ExpYear, time.Now()) {
		respondWithValidationError(w, h.logger, errCardExpired)
		return
	}

	result, err := h.cardService.CreateCard(r.Context(), services.CreateCardCommand{
		CardholderName:    req.CardHolderName,
		CustomerID:        req.CustomerID,
		ExpMonth:          req.ExpMonth,
		ExpYear:           req.ExpYear,
		SourceID:          req.SourceID,
		IdempotencyKey:    req.IdempotencyKey,
		VerificationToken: req.VerificationToken,
	})
	if err != nil {
		respondWithError(w, h.logger, err)
		return
	}

	respondWithJSON(w, result.StatusCode, cardCreatedResponse{
		Success: true,
		Card:    cardCreatedData{ID: result.ID},
	})
}

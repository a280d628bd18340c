package handlers

import (
	"net/http"
)

type ListCardsRequest struct {
	CustomerID string `validate:"required"`
}

type cardSummaryResponse struct {
	Success bool            `json:"success"`
	Card    cardSummaryData `json:"card"`
}

type cardSummaryData struct {
	ID        string `json:"id"`
	CardBrand string `json:"card_brand"`
	Last4     string `json:"last4"`
}

// HandleGetCustomerCard returns the customer's stored card.
func (h *Handlers) HandleGetCustomerCard(w http.ResponseWriter, r *http.Request) {
	req := ListCardsRequest{
		CustomerID: r.URL.Query().Get("customerId"),
	}

	if err := h.validate.Struct(req); err != nil {
		respondWithValidationError(w, h.logger, err)
		return
	}

	result, err := h.cardQuery.GetCustomerCard(r.Context(), req.CustomerID)
	if err != nil {
		respondWithError(w, h.logger, err)
		return
	}

	respondWithJSON(w, result.StatusCode, cardSummaryResponse{
		Success: true,
		Card: cardSummaryData{
			ID:        result.ID,
			CardBrand: result.CardBrand,
			Last4:     result.Last4,
		},
	})
}

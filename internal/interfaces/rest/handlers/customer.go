package handlers

import (
	"encoding/json"
	"io"
	"net/http"
)

type SearchCustomerRequest struct {
	EmailAddress string `json:"emailAddress" validate:"required,email"`
}

type customerResponse struct {
	Success  bool         `json:"success"`
	Customer customerData `json:"customer"`
}

type customerData struct {
	ID         string `json:"id"`
	GivenName  string `json:"given_name"`
	FamilyName string `json:"family_name"`
}

// HandleSearchCustomer looks a customer up by exact email address.
func (h *Handlers) HandleSearchCustomer(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		respondWithValidationError(w, h.logger, err)
		return
	}

	var req SearchCustomerRequest
	if err := json.Unmarshal(body, &req); err != nil {
		respondWithValidationError(w, h.logger, err)
		return
	}

	if err := h.validate.Struct(req); err != nil {
		respondWithValidationError(w, h.logger, err)
		return
	}

	result, err := h.customerService.SearchByEmail(r.Context(), req.EmailAddress)
	if err != nil {
		respondWithError(w, h.logger, err)
		return
	}

	respondWithJSON(w, result.StatusCode, customerResponse{
		Success: true,
		Customer: customerData{
			ID:         result.ID,
			GivenName:  result.GivenName,
			FamilyName: result.FamilyName,
		},
	})
}

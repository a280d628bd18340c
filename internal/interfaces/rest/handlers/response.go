package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/tundeajayi/checkout-gateway/internal/application"
)

type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type errorResponse struct {
	Success bool      `json:"success"`
	Error   *APIError `json:"error"`
}

func respondWithJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func respondWithError(w http.ResponseWriter, logger *slog.Logger, err error) {
	code := application.ErrCodeInternal
	message := "An internal error occurred"
	status := http.StatusInternalServerError

	if svcErr, ok := application.IsServiceError(err); ok {
		code = svcErr.Code
		message = svcErr.Message
		status = svcErr.HTTPStatus
	}

	logger.Error("request failed", "code", code, "status", status, "error", err)

	respondWithJSON(w, status, errorResponse{
		Success: false,
		Error: &APIError{
			Code:    code,
			Message: message,
		},
	})
}

// ErrorBody renders the error envelope as a raw JSON string, for callers
// like http.TimeoutHandler that need a pre-rendered body.
func ErrorBody(code, message string) string {
	b, _ := json.Marshal(errorResponse{
		Success: false,
		Error: &APIError{
			Code:    code,
			Message: message,
		},
	})
	return string(b)
}

// respondWithValidationError keeps the body generic: field-level detail
// goes to the log, not to the caller.
func respondWithValidationError(w http.ResponseWriter, logger *slog.Logger, err error) {
	logger.Warn("request validation failed", "error", err)

	respondWithJSON(w, http.StatusBadRequest, errorResponse{
		Success: false,
		Error: &APIError{
			Code:    "VALIDATION_ERROR",
			Message: "Invalid request body",
		},
	})
}

package handlers

import (
	"log/slog"
	"net/http"

	"github.com/go-playground/validator"
	"github.com/tundeajayi/checkout-gateway/internal/application/services"
)

type Handlers struct {
	paymentService  *services.PaymentService
	cardService     *services.CardService
	cardQuery       *services.CardQueryService
	customerService *services.CustomerService
	validate        *validator.Validate
	logger          *slog.Logger
}

func NewHandlers(
	paymentService *services.PaymentService,
	cardService *services.CardService,
	cardQuery *services.CardQueryService,
	customerService *services.CustomerService,
	logger *slog.Logger,
) *Handlers {
	return &Handlers{
		paymentService:  paymentService,
		cardService:     cardService,
		cardQuery:       cardQuery,
		customerService: customerService,
		validate:        validator.New(),
		logger:          logger,
	}
}

func (h *Handlers) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("POST /payment", h.HandleCreatePayment)
	mux.HandleFunc("POST /cof", h.HandleCreateCard)
	mux.HandleFunc("POST /searchCustomer", h.HandleSearchCustomer)
	mux.HandleFunc("GET /cards", h.HandleGetCustomerCard)
}

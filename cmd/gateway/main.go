package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/tundeajayi/checkout-gateway/internal/application"
	"github.com/tundeajayi/checkout-gateway/internal/application/services"
	"github.com/tundeajayi/checkout-gateway/internal/config"
	"github.com/tundeajayi/checkout-gateway/internal/infrastructure/square"
	"github.com/tundeajayi/checkout-gateway/internal/interfaces/rest/handlers"
	"github.com/tundeajayi/checkout-gateway/internal/interfaces/rest/middleware"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	logger := cfg.Logger.NewLogger()
	slog.SetDefault(logger)

	logger.Info("starting checkout gateway",
		"port", cfg.Server.Port,
		"log_level", cfg.Logger.Level,
	)

	squareClient := square.NewClient(cfg.Square)
	retrySquareClient := square.NewRetryClient(squareClient, cfg.Retry, logger)

	paymentService := services.NewPaymentService(retrySquareClient)
	cardService := services.NewCardService(retrySquareClient)
	cardQueryService := services.NewCardQueryService(retrySquareClient)
	customerService := services.NewCustomerService(retrySquareClient)

	h := handlers.NewHandlers(
		paymentService,
		cardService,
		cardQueryService,
		customerService,
		logger,
	)

	mux := http.NewServeMux()
	h.RegisterRoutes(mux)
	mux.Handle("GET /", http.FileServer(http.Dir(cfg.Server.StaticDir)))

	handler := middleware.Recovery(logger)(mux)
	handler = middleware.Logging(logger)(handler)
	timeoutBody := handlers.ErrorBody(application.ErrCodeTimeout, "Request timed out")
	handler = middleware.Timeout(cfg.Server.ReadTimeout, timeoutBody)(handler)

	server := &http.Server{
		Addr:         "0.0.0.0:" + cfg.Server.Port,
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	go func() {
		logger.Info("server starting", "addr", server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
	}

	logger.Info("server exited")
}

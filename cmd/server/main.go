package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"payment-bridge/internal/config"
	"payment-bridge/internal/metrics"
	"payment-bridge/internal/payment"
	"payment-bridge/internal/payment/handlers"
	"payment-bridge/internal/tracing"
	"syscall"

	"github.com/NYTimes/gziphandler"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	// Graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg := config.Load()

	shutdownTracing, err := tracing.Init(ctx, "payment-bridge", cfg.OTLPEndpoint)
	if err != nil {
		slog.Error("failed to initialise tracing", "error", err)
	}

	service := payment.NewPaymentService()

	server := &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: gziphandler.GzipHandler(recoverMiddleware(newRouter(cfg, service))),
	}

	go func() {
		slog.Info("server started", "addr", cfg.HTTPAddr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("failed to start server", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	stop()
	slog.Info("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("server shutdown", "error", err)
	}
	if shutdownTracing != nil {
		if err := shutdownTracing(shutdownCtx); err != nil {
			slog.Error("tracing shutdown", "error", err)
		}
	}
}

func newRouter(cfg *config.Config, service *payment.Service) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Use(tracing.Middleware, metrics.Middleware)

	createPaymentHandler := handlers.NewCreatePaymentHandler(service)
	rebindPaymentHandler := handlers.NewRebindPaymentHandler(service)
	getDemoHandler := handlers.NewGetDemoHandler(cfg.DemoAmount)

	e.POST("/payments", createPaymentHandler.Handle)
	e.POST("/payments/rebind", rebindPaymentHandler.Handle)
	e.GET("/demos/:variant", getDemoHandler.Handle)

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	return e
}

func recoverMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				slog.Error("panic recovered", "error", rec)
				http.Error(w, "internal server error", http.StatusInternalServerError)
			}
		}()
		next.ServeHTTP(w, r)
	})
}

package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"payment-bridge/internal/payment"
	"payment-bridge/internal/payment/entities"

	"github.com/labstack/echo/v4"
)

type CreatePaymentHandler struct {
	paymentService *payment.Service
}

func NewCreatePaymentHandler(s *payment.Service) *CreatePaymentHandler {
	return &CreatePaymentHandler{paymentService: s}
}

func (h *CreatePaymentHandler) Handle(c echo.Context) error {
	var charge entities.Charge
	if err := c.Bind(&charge); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request"})
	}

	transcript, err := h.paymentService.ProcessPayment(c.Request().Context(), charge)
	if err != nil {
		return badCharge(c, err)
	}

	return c.JSON(http.StatusOK, transcript)
}

type RebindPaymentHandler struct {
	paymentService *payment.Service
}

func NewRebindPaymentHandler(s *payment.Service) *RebindPaymentHandler {
	return &RebindPaymentHandler{paymentService: s}
}

func (h *RebindPaymentHandler) Handle(c echo.Context) error {
	var req entities.Rebind
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request"})
	}

	transcript, err := h.paymentService.Rebind(c.Request().Context(), req)
	if err != nil {
		return badCharge(c, err)
	}

	return c.JSON(http.StatusOK, transcript)
}

func badCharge(c echo.Context, err error) error {
	if errors.Is(err, entities.ErrUnknownGateway) || errors.Is(err, entities.ErrUnknownMethod) {
		slog.Warn("rejected charge", "error", err)
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}
	return err
}

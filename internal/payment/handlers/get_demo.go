package handlers

import (
	"bytes"
	"net/http"
	"payment-bridge/internal/bridge"
	"payment-bridge/internal/payment/entities"
	"payment-bridge/internal/procedural"

	"github.com/labstack/echo/v4"
)

const (
	ClassicVariant    = "classic"
	ProceduralVariant = "procedural"
)

type GetDemoHandler struct {
	classicAmount int
}

// NewGetDemoHandler serves the demonstration transcripts. classicAmount
// replaces the cross-product amount; the procedural table keeps its own.
func NewGetDemoHandler(classicAmount int) *GetDemoHandler {
	return &GetDemoHandler{classicAmount: classicAmount}
}

func (h *GetDemoHandler) Handle(c echo.Context) error {
	variant := c.Param("variant")

	var buf bytes.Buffer
	switch variant {
	case ClassicVariant:
		bridge.HandleAmount(&buf, h.classicAmount)
	case ProceduralVariant:
		procedural.Handle(&buf)
	default:
		return c.JSON(http.StatusNotFound, map[string]string{"error": "unknown demo variant"})
	}

	return c.JSON(http.StatusOK, entities.NewTranscript(variant, buf.String()))
}

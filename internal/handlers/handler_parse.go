package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/centsworth/monetize_app/internal/apperrors"
	portssvc "github.com/centsworth/monetize_app/internal/core/ports/services"
	"github.com/centsworth/monetize_app/internal/dto"
	"github.com/centsworth/monetize_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// parseHandler handles HTTP requests for amount parsing.
type parseHandler struct {
	parserService portssvc.AmountParserSvc
}

func newParseHandler(ps portssvc.AmountParserSvc) *parseHandler {
	return &parseHandler{parserService: ps}
}

// registerParseRoutes registers the amount parsing route, rate limited by the
// provided middleware chain.
func registerParseRoutes(rg *gin.RouterGroup, parserService portssvc.AmountParserSvc, extra ...gin.HandlerFunc) {
	h := newParseHandler(parserService)

	chain := append([]gin.HandlerFunc{}, extra...)
	chain = append(chain, h.parseAmount)
	rg.POST("/parse", chain...)
}

// parseAmount converts a free-form monetary value into a subunit count plus
// the resolved currency code.
func (h *parseHandler) parseAmount(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.ParseAmountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for ParseAmount", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	res, err := h.parserService.ParseAmount(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrInvalidAmount):
			logger.Warn("Invalid amount", slog.String("error", err.Error()))
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		case errors.Is(err, apperrors.ErrUnsupportedValueType):
			logger.Warn("Unsupported amount type", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, apperrors.ErrNotFound):
			logger.Warn("Unknown currency", slog.String("error", err.Error()))
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		default:
			logger.Error("Failed to parse amount", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to parse amount"})
		}
		return
	}

	logger.Info("Amount parsed",
		slog.String("currency_code", res.CurrencyCode),
		slog.String("subunits", res.Subunits),
	)
	c.JSON(http.StatusOK, res)
}

package http

import (
	"errors"
	"net/http"

	"golang-mockdata-provider/internal/provider/service"
	"golang-mockdata-provider/pkg/logger"
	"golang-mockdata-provider/pkg/utils"

	"github.com/labstack/echo/v4"
)

// HedgeFundHandler handles HTTP requests for the hedge fund filings dataset.
type HedgeFundHandler struct {
	hedgeFundService service.HedgeFundService
	logger           *logger.Logger
}

// NewHedgeFundHandler creates a new HedgeFundHandler.
func NewHedgeFundHandler(hedgeFundService service.HedgeFundService, logger *logger.Logger) *HedgeFundHandler {
	return &HedgeFundHandler{hedgeFundService: hedgeFundService, logger: logger}
}

// RegisterRoutes registers the hedge fund routes to the Echo group.
func (h *HedgeFundHandler) RegisterRoutes(g *echo.Group) {
	g.GET("", h.GetFilings)
}

// GetFilings godoc
// @Summary Query quarterly filings for a time range
// @Description Returns all filings with start <= filing_date <= end, generating and persisting any missing fund-quarter records
// @Tags hedgefunds
// @Produce json
// @Param start query string true "Range start (ISO 8601)"
// @Param end query string true "Range end (ISO 8601, inclusive)"
// @Success 200 {object} dto.HedgeFundRangeResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /hedgefunds [get]
func (h *HedgeFundHandler) GetFilings(c echo.Context) error {
	startParam := c.QueryParam("start")
	endParam := c.QueryParam("end")
	if startParam == "" || endParam == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "start and end query params required"})
	}

	start, err := utils.ParseTimestamp(startParam)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid start/end timestamp"})
	}
	end, err := utils.ParseTimestamp(endParam)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid start/end timestamp"})
	}

	resp, err := h.hedgeFundService.GetRange(c.Request().Context(), start, end)
	if err != nil {
		if errors.Is(err, service.ErrInvalidRange) {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "end must be > start"})
		}
		h.logger.Error("Failed to serve hedge fund range", logger.ErrorField(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to serve hedge fund range"})
	}

	return c.JSON(http.StatusOK, resp)
}

package http

import (
	"errors"
	"net/http"

	"golang-mockdata-provider/internal/provider/service"
	"golang-mockdata-provider/pkg/logger"
	"golang-mockdata-provider/pkg/utils"

	"github.com/labstack/echo/v4"
)

// NewsHandler handles HTTP requests for the news dataset.
type NewsHandler struct {
	newsService service.NewsService
	logger      *logger.Logger
}

// NewNewsHandler creates a new NewsHandler.
func NewNewsHandler(newsService service.NewsService, logger *logger.Logger) *NewsHandler {
	return &NewsHandler{newsService: newsService, logger: logger}
}

// RegisterRoutes registers the news routes to the Echo group.
func (h *NewsHandler) RegisterRoutes(g *echo.Group) {
	g.GET("", h.GetNews)
}

// GetNews godoc
// @Summary Query articles for a time range
// @Description Returns all articles with start <= published_at < end, generating and persisting any missing ones
// @Tags news
// @Produce json
// @Param start query string true "Range start (ISO 8601)"
// @Param end query string true "Range end (ISO 8601, exclusive)"
// @Success 200 {object} dto.NewsRangeResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /news [get]
func (h *NewsHandler) GetNews(c echo.Context) error {
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

	resp, err := h.newsService.GetRange(c.Request().Context(), start, end)
	if err != nil {
		if errors.Is(err, service.ErrInvalidRange) {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "end must be > start"})
		}
		h.logger.Error("Failed to serve news range", logger.ErrorField(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to serve news range"})
	}

	return c.JSON(http.StatusOK, resp)
}

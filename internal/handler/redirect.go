package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"shortwave/internal/service"
)

// RedirectHandler handles short link redirection
type RedirectHandler struct {
	shortLinkService service.ShortLinkServiceInterface
	analyticsService service.AnalyticsServiceInterface
}

// NewRedirectHandler creates a new RedirectHandler
func NewRedirectHandler(
	shortLinkService service.ShortLinkServiceInterface,
	analyticsService service.AnalyticsServiceInterface,
) *RedirectHandler {
	return &RedirectHandler{
		shortLinkService: shortLinkService,
		analyticsService: analyticsService,
	}
}

// Redirect handles GET /:shortCode
// @Summary Redirect to original URL
// @Description Redirects to the original URL for the given short code
// @Tags shortlink
// @Param shortCode path string true "Short code"
// @Success 302
// @Router /:shortCode [get]
func (h *RedirectHandler) Redirect(c *gin.Context) {
	shortCode := c.Param("shortCode")

	link, err := h.shortLinkService.Resolve(shortCode)
	if err != nil {
		c.JSON(http.StatusNotFound, ErrorResponse{
			Code:    http.StatusNotFound,
			Message: "Short link not found",
		})
		return
	}

	// Recorded before the redirect is written so stats queries issued
	// right after the response already see this click.
	if err := h.analyticsService.Record(service.CollectionURLs, shortCode, c.ClientIP(), c.Request.UserAgent()); err != nil {
		log.Error().Err(err).Str("short_code", shortCode).Msg("Failed to record click")
	}

	c.Redirect(http.StatusFound, link.OriginalURL)
}

package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"shortwave/internal/model"
	"shortwave/internal/service"
)

// GenerateHandler handles short link generation
type GenerateHandler struct {
	service service.ShortLinkServiceInterface
}

// NewGenerateHandler creates a new GenerateHandler
func NewGenerateHandler(service service.ShortLinkServiceInterface) *GenerateHandler {
	return &GenerateHandler{service: service}
}

// Generate handles POST /api/v1/shortlink/generate
// @Summary Generate a short link
// @Description Generates a short link for the given URL
// @Tags shortlink
// @Accept json
// @Produce json
// @Param request body model.GenerateRequest true "Generate request"
// @Success 200 {object} Response{data=model.GenerateResponse}
// @Router /api/v1/shortlink/generate [post]
func (h *GenerateHandler) Generate(c *gin.Context) {
	var req model.GenerateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid request: " + err.Error(),
		})
		return
	}

	resp, err := h.service.Generate(&req)
	if err != nil {
		if errors.Is(err, service.ErrInvalidURL) {
			c.JSON(http.StatusBadRequest, ErrorResponse{
				Code:    http.StatusBadRequest,
				Message: "Invalid URL",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Code:    http.StatusInternalServerError,
			Message: "Failed to generate short link: " + err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, Response{
		Code:    0,
		Message: "success",
		Data:    resp,
	})
}

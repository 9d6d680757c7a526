package handler

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"shortwave/internal/model"
	"shortwave/internal/service"
)

// AdminHandler handles the authenticated admin surface
type AdminHandler struct {
	adminService service.AdminServiceInterface
	rateLimiter  service.RateLimiterInterface
	bulkService  service.BulkServiceInterface
}

// NewAdminHandler creates a new AdminHandler
func NewAdminHandler(
	adminService service.AdminServiceInterface,
	rateLimiter service.RateLimiterInterface,
	bulkService service.BulkServiceInterface,
) *AdminHandler {
	return &AdminHandler{
		adminService: adminService,
		rateLimiter:  rateLimiter,
		bulkService:  bulkService,
	}
}

// bearerToken extracts the credential from the Authorization header
func bearerToken(c *gin.Context) string {
	auth := c.GetHeader("Authorization")
	if after, ok := strings.CutPrefix(auth, "Bearer "); ok {
		return after
	}
	return auth
}

// authorize runs the admin gate and writes the error response on
// failure. Returns false when the request has been rejected.
func (h *AdminHandler) authorize(c *gin.Context) bool {
	if err := h.adminService.Authorize(bearerToken(c), c.ClientIP()); err != nil {
		if errors.Is(err, service.ErrEmergencyStop) {
			c.JSON(http.StatusServiceUnavailable, ErrorResponse{
				Code:    http.StatusServiceUnavailable,
				Message: "Service temporarily disabled",
			})
			return false
		}
		c.JSON(http.StatusUnauthorized, ErrorResponse{
			Code:    http.StatusUnauthorized,
			Message: "Unauthorized",
		})
		return false
	}
	return true
}

// checkRate runs the rate limiter and writes the 429 response on
// rejection. Returns false when the request has been rejected.
func (h *AdminHandler) checkRate(c *gin.Context, op service.OperationType) bool {
	result := h.rateLimiter.Check(c.ClientIP(), op)
	if result.Allowed {
		return true
	}
	if result.RetryAfterSeconds > 0 {
		c.Header("Retry-After", strconv.FormatInt(result.RetryAfterSeconds, 10))
	}
	c.JSON(http.StatusTooManyRequests, ErrorResponse{
		Code:    http.StatusTooManyRequests,
		Message: "Rate limit exceeded: " + result.Reason,
	})
	return false
}

// BulkShortLinks handles POST /api/v1/admin/bulk/shortlinks
// @Summary Bulk-generate short links
// @Description Generates short links for a batch of URLs with progressive pacing between items
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body model.BulkGenerateRequest true "Bulk request"
// @Success 200 {object} Response{data=model.BulkGenerateResponse}
// @Router /api/v1/admin/bulk/shortlinks [post]
func (h *AdminHandler) BulkShortLinks(c *gin.Context) {
	if !h.authorize(c) {
		return
	}

	var req model.BulkGenerateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid request: " + err.Error(),
		})
		return
	}

	if !h.checkRate(c, service.OpBulk) {
		return
	}

	resp, err := h.bulkService.CreateShortLinks(c.Request.Context(), c.ClientIP(), req.URLs)
	if err != nil {
		log.Error().Err(err).Int("urls", len(req.URLs)).Msg("Bulk generation aborted")
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Code:    http.StatusInternalServerError,
			Message: "Bulk generation aborted: " + err.Error(),
		})
		return
	}

	h.adminService.LogOperation("bulk_shortlinks", c.ClientIP(), strconv.Itoa(len(req.URLs))+" urls")

	c.JSON(http.StatusOK, Response{
		Code:    0,
		Message: "success",
		Data:    resp,
	})
}

// Operations handles GET /api/v1/admin/operations
// @Summary Recent admin operations
// @Description Returns the most recent operation log entries, newest first
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param limit query int false "Maximum entries to return" default(50)
// @Success 200 {object} Response{data=[]model.OperationLogEntry}
// @Router /api/v1/admin/operations [get]
func (h *AdminHandler) Operations(c *gin.Context) {
	if !h.authorize(c) {
		return
	}
	if !h.checkRate(c, service.OpNormal) {
		return
	}

	limit := 50
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			c.JSON(http.StatusBadRequest, ErrorResponse{
				Code:    http.StatusBadRequest,
				Message: "Invalid limit",
			})
			return
		}
		limit = parsed
	}

	c.JSON(http.StatusOK, Response{
		Code:    0,
		Message: "success",
		Data:    h.adminService.Operations(limit),
	})
}

// EmergencyStop handles POST /api/v1/admin/emergency-stop
// @Summary Toggle the emergency stop flag
// @Description Enables or disables the process-wide emergency stop. Clearing the flag requires only a valid credential.
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body model.EmergencyStopRequest true "Stop request"
// @Success 200 {object} Response
// @Router /api/v1/admin/emergency-stop [post]
func (h *AdminHandler) EmergencyStop(c *gin.Context) {
	// Credential check only: going through the full gate would make an
	// engaged stop impossible to clear.
	if err := h.adminService.ValidateCredential(bearerToken(c)); err != nil {
		c.JSON(http.StatusUnauthorized, ErrorResponse{
			Code:    http.StatusUnauthorized,
			Message: "Unauthorized",
		})
		return
	}

	var req model.EmergencyStopRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid request: " + err.Error(),
		})
		return
	}

	h.adminService.SetEmergencyStop(*req.Enabled, c.ClientIP())

	c.JSON(http.StatusOK, Response{
		Code:    0,
		Message: "success",
		Data:    gin.H{"enabled": *req.Enabled},
	})
}

// RateLimitStatus handles GET /api/v1/admin/ratelimit/:identity
// @Summary Rate limit status for an identity
// @Description Returns the current window counters and cooldown for one client identity
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param identity path string true "Client identity"
// @Success 200 {object} Response{data=model.RateLimitStatus}
// @Router /api/v1/admin/ratelimit/{identity} [get]
func (h *AdminHandler) RateLimitStatus(c *gin.Context) {
	if !h.authorize(c) {
		return
	}
	if !h.checkRate(c, service.OpNormal) {
		return
	}

	c.JSON(http.StatusOK, Response{
		Code:    0,
		Message: "success",
		Data:    h.rateLimiter.Status(c.Param("identity")),
	})
}

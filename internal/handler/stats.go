package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"shortwave/internal/service"
)

// StatsHandler serves aggregate and per-key analytics
type StatsHandler struct {
	analyticsService service.AnalyticsServiceInterface
}

// NewStatsHandler creates a new StatsHandler
func NewStatsHandler(analyticsService service.AnalyticsServiceInterface) *StatsHandler {
	return &StatsHandler{analyticsService: analyticsService}
}

// URLStats handles GET /api/v1/analytics/urls
// @Summary Aggregate click statistics
// @Description Returns total/average/min/max/recent click statistics across all short links
// @Tags analytics
// @Produce json
// @Success 200 {object} Response{data=model.AggregateStats}
// @Router /api/v1/analytics/urls [get]
func (h *StatsHandler) URLStats(c *gin.Context) {
	h.aggregate(c, service.CollectionURLs)
}

// PostStats handles GET /api/v1/analytics/posts
// @Summary Aggregate view statistics
// @Description Returns total/average/min/max/recent view statistics across all blog posts
// @Tags analytics
// @Produce json
// @Success 200 {object} Response{data=model.AggregateStats}
// @Router /api/v1/analytics/posts [get]
func (h *StatsHandler) PostStats(c *gin.Context) {
	h.aggregate(c, service.CollectionPosts)
}

// URLRecord handles GET /api/v1/analytics/urls/:shortCode
// @Summary Per-link analytics record
// @Description Returns the cumulative count and bounded history for one short link
// @Tags analytics
// @Param shortCode path string true "Short code"
// @Produce json
// @Success 200 {object} Response{data=model.AnalyticsRecord}
// @Router /api/v1/analytics/urls/:shortCode [get]
func (h *StatsHandler) URLRecord(c *gin.Context) {
	h.record(c, service.CollectionURLs, c.Param("shortCode"))
}

// PostRecord handles GET /api/v1/analytics/posts/:slug
// @Summary Per-post analytics record
// @Description Returns the cumulative count and bounded history for one blog post
// @Tags analytics
// @Param slug path string true "Post slug"
// @Produce json
// @Success 200 {object} Response{data=model.AnalyticsRecord}
// @Router /api/v1/analytics/posts/:slug [get]
func (h *StatsHandler) PostRecord(c *gin.Context) {
	h.record(c, service.CollectionPosts, c.Param("slug"))
}

func (h *StatsHandler) aggregate(c *gin.Context, collection string) {
	stats, err := h.analyticsService.Stats(collection, true)
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Code:    http.StatusInternalServerError,
			Message: "Failed to compute statistics",
		})
		return
	}

	c.JSON(http.StatusOK, Response{
		Code:    0,
		Message: "success",
		Data:    stats,
	})
}

func (h *StatsHandler) record(c *gin.Context, collection, key string) {
	rec, err := h.analyticsService.GetRecord(collection, key)
	if err != nil {
		if errors.Is(err, service.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{
				Code:    http.StatusNotFound,
				Message: "No analytics recorded for this key",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Code:    http.StatusInternalServerError,
			Message: "Failed to load analytics record",
		})
		return
	}

	c.JSON(http.StatusOK, Response{
		Code:    0,
		Message: "success",
		Data:    rec,
	})
}

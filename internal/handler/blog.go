package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"shortwave/internal/model"
	"shortwave/internal/service"
)

// BlogHandler handles blog post endpoints
type BlogHandler struct {
	blogService      service.BlogServiceInterface
	analyticsService service.AnalyticsServiceInterface
}

// NewBlogHandler creates a new BlogHandler
func NewBlogHandler(
	blogService service.BlogServiceInterface,
	analyticsService service.AnalyticsServiceInterface,
) *BlogHandler {
	return &BlogHandler{
		blogService:      blogService,
		analyticsService: analyticsService,
	}
}

// Create handles POST /api/v1/posts
// @Summary Create a blog post
// @Description Creates a blog post under a unique slug derived from its title
// @Tags blog
// @Accept json
// @Produce json
// @Param request body model.CreatePostRequest true "Create request"
// @Success 200 {object} Response{data=model.BlogPost}
// @Router /api/v1/posts [post]
func (h *BlogHandler) Create(c *gin.Context) {
	var req model.CreatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid request: " + err.Error(),
		})
		return
	}

	post, err := h.blogService.Create(&req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Code:    http.StatusInternalServerError,
			Message: "Failed to create post: " + err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, Response{
		Code:    0,
		Message: "success",
		Data:    post,
	})
}

// List handles GET /api/v1/posts
// @Summary List blog posts
// @Tags blog
// @Produce json
// @Success 200 {object} Response{data=[]model.BlogPost}
// @Router /api/v1/posts [get]
func (h *BlogHandler) List(c *gin.Context) {
	c.JSON(http.StatusOK, Response{
		Code:    0,
		Message: "success",
		Data:    h.blogService.List(),
	})
}

// Get handles GET /api/v1/posts/:slug
// @Summary Read a blog post
// @Description Returns one post and records a view event
// @Tags blog
// @Param slug path string true "Post slug"
// @Produce json
// @Success 200 {object} Response{data=model.BlogPost}
// @Router /api/v1/posts/:slug [get]
func (h *BlogHandler) Get(c *gin.Context) {
	slug := c.Param("slug")

	post, err := h.blogService.Get(slug)
	if err != nil {
		if errors.Is(err, service.ErrPostNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{
				Code:    http.StatusNotFound,
				Message: "Post not found",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Code:    http.StatusInternalServerError,
			Message: "Failed to load post",
		})
		return
	}

	if err := h.analyticsService.Record(service.CollectionPosts, slug, c.ClientIP(), c.Request.UserAgent()); err != nil {
		log.Error().Err(err).Str("slug", slug).Msg("Failed to record view")
	}

	c.JSON(http.StatusOK, Response{
		Code:    0,
		Message: "success",
		Data:    post,
	})
}

package model

import (
	"time"
)

// ShortLink represents a short link entity
type ShortLink struct {
	ShortCode   string    `json:"short_code"`
	OriginalURL string    `json:"original_url"`
	CreatedAt   time.Time `json:"created_at"`
}

// GenerateRequest represents the request to generate a short link
type GenerateRequest struct {
	URL string `json:"url" binding:"required,url"`
}

// GenerateResponse represents the response of short link generation
type GenerateResponse struct {
	ShortLink   string `json:"short_link"`
	ShortCode   string `json:"short_code"`
	OriginalURL string `json:"original_url"`
}

// BulkGenerateRequest represents an admin bulk short link creation request
type BulkGenerateRequest struct {
	URLs []string `json:"urls" binding:"required,min=1,dive,url"`
}

// BulkItemResult represents the outcome of one item in a bulk operation
type BulkItemResult struct {
	OriginalURL string `json:"original_url"`
	ShortCode   string `json:"short_code,omitempty"`
	Error       string `json:"error,omitempty"`
}

// BulkGenerateResponse represents the response of a bulk creation
type BulkGenerateResponse struct {
	Results      []BulkItemResult `json:"results"`
	PacingMillis int64            `json:"pacing_ms"`
}

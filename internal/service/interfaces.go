package service

import (
	"context"
	"time"

	"shortwave/internal/model"
)

// ShortLinkServiceInterface defines the interface for short link operations
type ShortLinkServiceInterface interface {
	Generate(req *model.GenerateRequest) (*model.GenerateResponse, error)
	Resolve(shortCode string) (model.ShortLink, error)
}

// BlogServiceInterface defines the interface for blog post operations
type BlogServiceInterface interface {
	Create(req *model.CreatePostRequest) (model.BlogPost, error)
	Get(slug string) (model.BlogPost, error)
	List() []model.BlogPost
}

// AnalyticsServiceInterface defines the interface for analytics operations
type AnalyticsServiceInterface interface {
	Record(collection, key, clientIP, userAgent string) error
	Stats(collection string, useCache bool) (model.AggregateStats, error)
	GetRecord(collection, key string) (model.AnalyticsRecord, error)
}

// RateLimiterInterface defines the interface for rate limit checks
type RateLimiterInterface interface {
	Check(clientIP string, op OperationType) model.RateLimitResult
	ProgressiveDelay(clientIP string, base time.Duration) time.Duration
	Status(clientIP string) model.RateLimitStatus
}

// AdminServiceInterface defines the interface for the admin gate
type AdminServiceInterface interface {
	Authorize(credential, clientIP string) error
	ValidateCredential(credential string) error
	LogOperation(operation, clientIP, details string)
	SetEmergencyStop(enabled bool, clientIP string)
	EmergencyStopped() bool
	Operations(limit int) []model.OperationLogEntry
}

// BulkServiceInterface defines the interface for bulk automation
type BulkServiceInterface interface {
	CreateShortLinks(ctx context.Context, clientIP string, urls []string) (*model.BulkGenerateResponse, error)
}

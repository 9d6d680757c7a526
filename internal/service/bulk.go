package service

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"shortwave/internal/model"
)

// DelayFunc waits for d or until ctx is done. Injected so tests pace
// bulk runs with a virtual clock instead of wall-clock sleeps.
type DelayFunc func(ctx context.Context, d time.Duration) error

// WaitDelay is the default DelayFunc, backed by a cancellable timer
func WaitDelay(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// BulkService runs bulk short link creation, pacing items with the
// rate limiter's progressive delay
type BulkService struct {
	shortLinks ShortLinkServiceInterface
	limiter    RateLimiterInterface
	baseDelay  time.Duration
	delay      DelayFunc
}

// NewBulkService creates a new Bulk Service
func NewBulkService(shortLinks ShortLinkServiceInterface, limiter RateLimiterInterface, baseDelay time.Duration) *BulkService {
	return &BulkService{
		shortLinks: shortLinks,
		limiter:    limiter,
		baseDelay:  baseDelay,
		delay:      WaitDelay,
	}
}

// CreateShortLinks creates one short link per URL, waiting the pacing
// delay between items. Per-item failures are reported in the result,
// not returned; only cancellation aborts the run.
func (s *BulkService) CreateShortLinks(ctx context.Context, clientIP string, urls []string) (*model.BulkGenerateResponse, error) {
	pacing := s.limiter.ProgressiveDelay(clientIP, s.baseDelay)

	resp := &model.BulkGenerateResponse{
		Results:      make([]model.BulkItemResult, 0, len(urls)),
		PacingMillis: pacing.Milliseconds(),
	}

	for i, u := range urls {
		if i > 0 {
			if err := s.delay(ctx, pacing); err != nil {
				return resp, err
			}
		}

		item := model.BulkItemResult{OriginalURL: u}
		gen, err := s.shortLinks.Generate(&model.GenerateRequest{URL: u})
		if err != nil {
			log.Warn().Err(err).Str("url", u).Msg("Bulk item failed")
			item.Error = err.Error()
		} else {
			item.ShortCode = gen.ShortCode
		}
		resp.Results = append(resp.Results, item)
	}

	return resp, nil
}

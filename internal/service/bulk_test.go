package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shortwave/internal/config"
	"shortwave/internal/model"
	"shortwave/internal/store"
)

type stubLimiter struct {
	pacing time.Duration
}

func (s *stubLimiter) Check(string, OperationType) model.RateLimitResult {
	return model.RateLimitResult{Allowed: true}
}

func (s *stubLimiter) ProgressiveDelay(string, time.Duration) time.Duration {
	return s.pacing
}

func (s *stubLimiter) Status(clientIP string) model.RateLimitStatus {
	return model.RateLimitStatus{ClientIP: clientIP}
}

func newTestBulk(pacing time.Duration) (*BulkService, *[]time.Duration) {
	shortLinks := NewShortLinkService(store.NewLinkStore(), "http://localhost:8080", config.ShortenerConfig{
		KeyLength:   6,
		MaxAttempts: 10,
	})
	bulk := NewBulkService(shortLinks, &stubLimiter{pacing: pacing}, 100*time.Millisecond)

	var delays []time.Duration
	bulk.delay = func(_ context.Context, d time.Duration) error {
		delays = append(delays, d)
		return nil
	}
	return bulk, &delays
}

func TestBulkService_CreateShortLinks(t *testing.T) {
	bulk, delays := newTestBulk(250 * time.Millisecond)

	resp, err := bulk.CreateShortLinks(context.Background(), "10.0.0.1", []string{
		"https://a.example.com",
		"https://b.example.com",
		"https://c.example.com",
	})
	require.NoError(t, err)

	require.Len(t, resp.Results, 3)
	for _, item := range resp.Results {
		assert.Empty(t, item.Error)
		assert.Len(t, item.ShortCode, 6)
	}
	assert.Equal(t, int64(250), resp.PacingMillis)

	// The delay runs between items, not before the first one.
	require.Len(t, *delays, 2)
	assert.Equal(t, 250*time.Millisecond, (*delays)[0])
}

func TestBulkService_PartialFailure(t *testing.T) {
	bulk, _ := newTestBulk(0)

	resp, err := bulk.CreateShortLinks(context.Background(), "10.0.0.1", []string{
		"https://ok.example.com",
		"not-a-url",
		"https://also-ok.example.com",
	})
	require.NoError(t, err)

	require.Len(t, resp.Results, 3)
	assert.Empty(t, resp.Results[0].Error)
	assert.NotEmpty(t, resp.Results[1].Error)
	assert.Empty(t, resp.Results[1].ShortCode)
	assert.Empty(t, resp.Results[2].Error)
}

func TestBulkService_Cancellation(t *testing.T) {
	bulk, _ := newTestBulk(time.Second)
	bulk.delay = WaitDelay

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	resp, err := bulk.CreateShortLinks(ctx, "10.0.0.1", []string{
		"https://a.example.com",
		"https://b.example.com",
	})
	assert.ErrorIs(t, err, context.Canceled)
	// The first item was created before the cancelled delay.
	assert.Len(t, resp.Results, 1)
}

func TestWaitDelay(t *testing.T) {
	t.Run("zero delay returns immediately", func(t *testing.T) {
		assert.NoError(t, WaitDelay(context.Background(), 0))
	})

	t.Run("short delay elapses", func(t *testing.T) {
		assert.NoError(t, WaitDelay(context.Background(), time.Millisecond))
	})

	t.Run("cancelled context aborts", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		assert.ErrorIs(t, WaitDelay(ctx, time.Minute), context.Canceled)
	})
}

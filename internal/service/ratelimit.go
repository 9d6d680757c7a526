package service

import (
	"math"
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"shortwave/internal/config"
	"shortwave/internal/model"
)

// OperationType classifies an operation for rate limiting
type OperationType string

const (
	// OpNormal is a regular admin operation, counted against the hourly window
	OpNormal OperationType = "normal"
	// OpBulk is a bulk automation operation, additionally subject to the
	// daily cap and the cooldown between successive bulk runs
	OpBulk OperationType = "bulk"
)

// Rejection reasons surfaced to callers
const (
	ReasonCooldown       = "cooldown active"
	ReasonDailyBulkLimit = "daily bulk limit reached"
	ReasonHourlyLimit    = "hourly limit reached"
)

const (
	hourWindow    = time.Hour
	dayWindow     = 24 * time.Hour
	sweepInterval = time.Hour
)

// tracker holds the sliding-window state for one client identity
type tracker struct {
	hourly    []time.Time
	dailyBulk []time.Time
	lastBulk  time.Time
	warnings  int
	lastSeen  time.Time
}

// RateLimiter gates operations per client identity using sliding time
// windows. Admission is a single atomic decision: a rejected operation
// commits nothing except the warning counter, and an admitted bulk
// operation consumes both the daily bulk and the hourly quota.
type RateLimiter struct {
	mu       sync.Mutex
	cfg      config.RateLimitConfig
	trackers map[string]*tracker
	now      func() time.Time
}

// NewRateLimiter creates a RateLimiter and starts a background sweep
// that drops trackers idle for longer than the daily window.
func NewRateLimiter(cfg config.RateLimitConfig) *RateLimiter {
	rl := &RateLimiter{
		cfg:      cfg,
		trackers: make(map[string]*tracker),
		now:      time.Now,
	}
	go rl.sweepLoop()
	return rl
}

// Check decides whether clientIP may perform one operation of the given
// type, recording it if admitted. It never returns an error.
func (rl *RateLimiter) Check(clientIP string, op OperationType) model.RateLimitResult {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.now()
	tr, ok := rl.trackers[clientIP]
	if !ok {
		tr = &tracker{}
		rl.trackers[clientIP] = tr
	}
	tr.lastSeen = now
	tr.hourly = pruneWindow(tr.hourly, now.Add(-hourWindow))
	tr.dailyBulk = pruneWindow(tr.dailyBulk, now.Add(-dayWindow))

	if op == OpBulk {
		if !tr.lastBulk.IsZero() {
			if remaining := rl.cfg.BulkCooldown - now.Sub(tr.lastBulk); remaining > 0 {
				return model.RateLimitResult{
					Allowed:           false,
					Reason:            ReasonCooldown,
					RetryAfterSeconds: ceilSeconds(remaining),
				}
			}
		}
		if len(tr.dailyBulk) >= rl.cfg.MaxBulkPerDay {
			return model.RateLimitResult{Allowed: false, Reason: ReasonDailyBulkLimit}
		}
	}

	if len(tr.hourly) >= rl.cfg.MaxPerHour {
		tr.warnings++
		log.Warn().
			Str("client_ip", clientIP).
			Int("warnings", tr.warnings).
			Msg("Hourly operation limit exceeded")
		return model.RateLimitResult{Allowed: false, Reason: ReasonHourlyLimit}
	}

	// Admitted: commit all window state at once.
	if op == OpBulk {
		tr.dailyBulk = append(tr.dailyBulk, now)
		tr.lastBulk = now
	}
	tr.hourly = append(tr.hourly, now)
	return model.RateLimitResult{Allowed: true}
}

// ProgressiveDelay returns a pacing delay that grows with the client's
// recent operation count: base * factor^(ops/10), capped at cap*base.
// Advisory only; callers apply it between automated operations.
func (rl *RateLimiter) ProgressiveDelay(clientIP string, base time.Duration) time.Duration {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	tr, ok := rl.trackers[clientIP]
	if !ok {
		return base
	}
	tr.hourly = pruneWindow(tr.hourly, rl.now().Add(-hourWindow))

	mult := math.Pow(rl.cfg.ProgressiveFactor, float64(len(tr.hourly)/10))
	if mult > rl.cfg.ProgressiveCap {
		mult = rl.cfg.ProgressiveCap
	}
	return time.Duration(float64(base) * mult)
}

// Status returns a snapshot of one client's tracker
func (rl *RateLimiter) Status(clientIP string) model.RateLimitStatus {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	status := model.RateLimitStatus{ClientIP: clientIP}
	tr, ok := rl.trackers[clientIP]
	if !ok {
		return status
	}

	now := rl.now()
	tr.hourly = pruneWindow(tr.hourly, now.Add(-hourWindow))
	tr.dailyBulk = pruneWindow(tr.dailyBulk, now.Add(-dayWindow))

	status.OperationsLastHour = len(tr.hourly)
	status.BulkOperationsLastDay = len(tr.dailyBulk)
	status.WarningCount = tr.warnings
	if !tr.lastBulk.IsZero() {
		if remaining := rl.cfg.BulkCooldown - now.Sub(tr.lastBulk); remaining > 0 {
			status.CooldownRemainingSeconds = ceilSeconds(remaining)
		}
	}
	return status
}

func (rl *RateLimiter) sweepLoop() {
	ticker := time.NewTicker(sweepInterval)
	for range ticker.C {
		rl.sweep(rl.now().Add(-dayWindow))
	}
}

// sweep drops trackers not seen since cutoff. Without it the tracker
// map grows with every distinct client identity for process lifetime.
func (rl *RateLimiter) sweep(cutoff time.Time) {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	for ip, tr := range rl.trackers {
		if tr.lastSeen.Before(cutoff) {
			delete(rl.trackers, ip)
		}
	}
}

// pruneWindow keeps timestamps at or after cutoff, preserving order
func pruneWindow(ts []time.Time, cutoff time.Time) []time.Time {
	kept := ts[:0]
	for _, t := range ts {
		if !t.Before(cutoff) {
			kept = append(kept, t)
		}
	}
	return kept
}

func ceilSeconds(d time.Duration) int64 {
	return int64(math.Ceil(d.Seconds()))
}

package service

import (
	"errors"
	"time"

	gocache "github.com/patrickmn/go-cache"
	"github.com/rs/zerolog/log"

	"shortwave/internal/model"
	"shortwave/internal/store"
)

// Collection identifiers for the two tracked event streams
const (
	CollectionURLs  = "urls"
	CollectionPosts = "posts"
)

var (
	// ErrUnknownCollection is returned for an unregistered collection id
	ErrUnknownCollection = errors.New("unknown collection")
	// ErrRecordNotFound is returned when no events exist for a key
	ErrRecordNotFound = errors.New("analytics record not found")
)

// AnalyticsService aggregates event records per collection with a
// time-bounded cache. Every recorded event flushes the whole cache, so
// cached aggregates are never older than the last mutation.
type AnalyticsService struct {
	stores       map[string]*store.EventStore
	cache        *gocache.Cache
	recentWindow time.Duration
	now          func() time.Time
}

// NewAnalyticsService creates an AnalyticsService over the given event
// stores and wires their invalidation hooks to the aggregate cache.
func NewAnalyticsService(cacheTTL, recentWindow time.Duration, stores map[string]*store.EventStore) *AnalyticsService {
	svc := &AnalyticsService{
		stores:       stores,
		cache:        gocache.New(cacheTTL, 2*cacheTTL),
		recentWindow: recentWindow,
		now:          time.Now,
	}
	for _, st := range stores {
		st.OnRecord(svc.invalidate)
	}
	return svc
}

// Record registers one event for a key in a collection
func (s *AnalyticsService) Record(collection, key, clientIP, userAgent string) error {
	st, ok := s.stores[collection]
	if !ok {
		return ErrUnknownCollection
	}

	st.Record(key, clientIP, userAgent)
	log.Debug().
		Str("collection", collection).
		Str("key", key).
		Str("client_ip", clientIP).
		Msg("Event recorded")
	return nil
}

// GetRecord returns the analytics record for a key
func (s *AnalyticsService) GetRecord(collection, key string) (model.AnalyticsRecord, error) {
	st, ok := s.stores[collection]
	if !ok {
		return model.AnalyticsRecord{}, ErrUnknownCollection
	}

	rec, ok := st.Get(key)
	if !ok {
		return model.AnalyticsRecord{}, ErrRecordNotFound
	}
	return rec, nil
}

// Stats returns aggregate statistics for a collection. With useCache,
// a result computed within the cache TTL is returned unchanged.
func (s *AnalyticsService) Stats(collection string, useCache bool) (model.AggregateStats, error) {
	st, ok := s.stores[collection]
	if !ok {
		return model.AggregateStats{}, ErrUnknownCollection
	}

	if useCache {
		if cached, ok := s.cache.Get(collection); ok {
			return cached.(model.AggregateStats), nil
		}
	}

	stats := s.compute(st.Snapshot())
	if useCache {
		s.cache.SetDefault(collection, stats)
	}
	return stats, nil
}

// compute runs a single pass over all records. An empty collection
// short-circuits to all-zero stats before min/max seeding.
func (s *AnalyticsService) compute(records []model.AnalyticsRecord) model.AggregateStats {
	if len(records) == 0 {
		return model.AggregateStats{}
	}

	cutoff := s.now().Add(-s.recentWindow)
	stats := model.AggregateStats{
		Count: len(records),
		Min:   records[0].Count,
		Max:   records[0].Count,
	}

	for _, rec := range records {
		stats.Total += rec.Count
		if rec.Count > stats.Max {
			stats.Max = rec.Count
		}
		if rec.Count < stats.Min {
			stats.Min = rec.Count
		}
		stats.RecentCount += countRecent(rec.History, cutoff)
	}

	stats.Average = float64(stats.Total) / float64(len(records))
	return stats
}

// countRecent counts history entries at or after cutoff. History is
// chronologically ordered, so the scan starts at the newest end and
// stops at the first entry older than the cutoff.
func countRecent(history []model.EventRecord, cutoff time.Time) int64 {
	var n int64
	for i := len(history) - 1; i >= 0; i-- {
		if history[i].Timestamp.Before(cutoff) {
			break
		}
		n++
	}
	return n
}

// invalidate drops all cached aggregates. Coarse on purpose: any event
// anywhere invalidates every collection's stats.
func (s *AnalyticsService) invalidate() {
	s.cache.Flush()
}

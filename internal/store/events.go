package store

import (
	"sync"
	"time"

	"shortwave/internal/model"
)

// DefaultHistoryLimit is the default bounded history length per key
const DefaultHistoryLimit = 100

// EventStore records click or view events per key with bounded memory.
// Count is cumulative; History keeps only the most recent entries, in
// chronological order, evicting the oldest one entry at a time.
type EventStore struct {
	mu       sync.Mutex
	limit    int
	records  map[string]*model.AnalyticsRecord
	onRecord func()
	now      func() time.Time
}

// NewEventStore creates an EventStore with the given history limit
func NewEventStore(limit int) *EventStore {
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}
	return &EventStore{
		limit:   limit,
		records: make(map[string]*model.AnalyticsRecord),
		now:     time.Now,
	}
}

// OnRecord registers a hook invoked synchronously after every recorded
// event. Used to invalidate cached aggregates.
func (s *EventStore) OnRecord(fn func()) {
	s.mu.Lock()
	s.onRecord = fn
	s.mu.Unlock()
}

// Record appends one event for key, creating the record lazily
func (s *EventStore) Record(key, clientIP, userAgent string) {
	s.mu.Lock()

	rec, ok := s.records[key]
	if !ok {
		rec = &model.AnalyticsRecord{Key: key}
		s.records[key] = rec
	}

	now := s.now()
	rec.Count++
	if rec.FirstEventAt == nil {
		first := now
		rec.FirstEventAt = &first
	}
	last := now
	rec.LastEventAt = &last

	rec.History = append(rec.History, model.EventRecord{
		Timestamp: now,
		ClientIP:  clientIP,
		UserAgent: userAgent,
	})
	if len(rec.History) > s.limit {
		rec.History = rec.History[1:]
	}

	hook := s.onRecord
	s.mu.Unlock()

	if hook != nil {
		hook()
	}
}

// Get returns a copy of the record for key
func (s *EventStore) Get(key string) (model.AnalyticsRecord, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.records[key]
	if !ok {
		return model.AnalyticsRecord{}, false
	}
	return copyRecord(rec), true
}

// Snapshot returns copies of all records for aggregation. Taken under
// the store lock so one pass never sees a half-applied mutation.
func (s *EventStore) Snapshot() []model.AnalyticsRecord {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]model.AnalyticsRecord, 0, len(s.records))
	for _, rec := range s.records {
		out = append(out, copyRecord(rec))
	}
	return out
}

// Len returns the number of tracked keys
func (s *EventStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.records)
}

func copyRecord(rec *model.AnalyticsRecord) model.AnalyticsRecord {
	out := *rec
	out.History = make([]model.EventRecord, len(rec.History))
	copy(out.History, rec.History)
	return out
}

package model

import (
	"time"
)

// EventRecord is a single click or view event in a record's history
type EventRecord struct {
	Timestamp time.Time `json:"timestamp"`
	ClientIP  string    `json:"client_ip"`
	UserAgent string    `json:"user_agent"`
}

// AnalyticsRecord tracks cumulative and recent activity for one key.
// Count is cumulative; History is a bounded window of the most recent
// events, so len(History) <= min(Count, history limit).
type AnalyticsRecord struct {
	Key          string        `json:"key"`
	Count        int64         `json:"count"`
	FirstEventAt *time.Time    `json:"first_event_at,omitempty"`
	LastEventAt  *time.Time    `json:"last_event_at,omitempty"`
	History      []EventRecord `json:"history"`
}

// AggregateStats holds summary statistics across all records of a collection
type AggregateStats struct {
	Total       int64   `json:"total"`
	Average     float64 `json:"average"`
	Max         int64   `json:"max"`
	Min         int64   `json:"min"`
	RecentCount int64   `json:"recent_count"`
	Count       int     `json:"count"`
}

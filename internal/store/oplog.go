package store

import (
	"sync"
	"time"

	"shortwave/internal/model"
	"shortwave/pkg/util"
)

// DefaultOperationLogLimit is the default bounded operation log length
const DefaultOperationLogLimit = 1000

// OperationLog is a bounded in-memory log of admin-gated operations.
// When full, the oldest entries are evicted first.
type OperationLog struct {
	mu      sync.Mutex
	limit   int
	entries []model.OperationLogEntry
	now     func() time.Time
}

// NewOperationLog creates an OperationLog with the given capacity
func NewOperationLog(limit int) *OperationLog {
	if limit <= 0 {
		limit = DefaultOperationLogLimit
	}
	return &OperationLog{
		limit: limit,
		now:   time.Now,
	}
}

// Append records one operation and returns the stored entry
func (l *OperationLog) Append(operation, clientIP, details string) model.OperationLogEntry {
	entry := model.OperationLogEntry{
		ID:        util.GenerateUUID(),
		Operation: operation,
		ClientIP:  clientIP,
		Details:   details,
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	entry.Timestamp = l.now()
	l.entries = append(l.entries, entry)
	if len(l.entries) > l.limit {
		l.entries = l.entries[len(l.entries)-l.limit:]
	}
	return entry
}

// Recent returns up to limit entries, newest first
func (l *OperationLog) Recent(limit int) []model.OperationLogEntry {
	l.mu.Lock()
	defer l.mu.Unlock()

	n := len(l.entries)
	if limit <= 0 || limit > n {
		limit = n
	}

	out := make([]model.OperationLogEntry, 0, limit)
	for i := n - 1; i >= n-limit; i-- {
		out = append(out, l.entries[i])
	}
	return out
}

// Len returns the number of stored entries
func (l *OperationLog) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.entries)
}

package model

import (
	"time"
)

// OperationLogEntry records one admin-gated operation attempt
type OperationLogEntry struct {
	ID        string    `json:"id"`
	Timestamp time.Time `json:"timestamp"`
	Operation string    `json:"operation"`
	ClientIP  string    `json:"client_ip"`
	Details   string    `json:"details"`
}

// RateLimitResult is the admission decision for one operation
type RateLimitResult struct {
	Allowed           bool   `json:"allowed"`
	Reason            string `json:"reason,omitempty"`
	RetryAfterSeconds int64  `json:"retry_after_seconds,omitempty"`
}

// RateLimitStatus is a point-in-time snapshot of one client's tracker
type RateLimitStatus struct {
	ClientIP                 string `json:"client_ip"`
	OperationsLastHour       int    `json:"operations_last_hour"`
	BulkOperationsLastDay    int    `json:"bulk_operations_last_day"`
	WarningCount             int    `json:"warning_count"`
	CooldownRemainingSeconds int64  `json:"cooldown_remaining_seconds"`
}

// EmergencyStopRequest toggles the process-wide emergency stop flag
type EmergencyStopRequest struct {
	Enabled *bool `json:"enabled" binding:"required"`
}

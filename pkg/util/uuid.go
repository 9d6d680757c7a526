package util

import (
	"github.com/google/uuid"
)

// GenerateUUID returns a random UUID string, used as operation log entry IDs
func GenerateUUID() string {
	return uuid.NewString()
}

package service

import (
	"crypto/subtle"
	"errors"
	"fmt"
	"sync/atomic"

	"github.com/rs/zerolog/log"

	"shortwave/internal/model"
	"shortwave/internal/store"
)

var (
	// ErrUnauthorized is returned when the presented credential does not match
	ErrUnauthorized = errors.New("unauthorized")
	// ErrEmergencyStop is returned while the emergency stop flag is set
	ErrEmergencyStop = errors.New("emergency stop engaged")
)

// AdminService gates sensitive operations: emergency stop first, then
// the shared-secret check, then an operation log entry. Rate limiting
// is the caller's next explicit step, not bundled here.
type AdminService struct {
	token   string
	oplog   *store.OperationLog
	stopped atomic.Bool
}

// NewAdminService creates an AdminService with the given shared secret
func NewAdminService(token string, oplog *store.OperationLog) *AdminService {
	return &AdminService{token: token, oplog: oplog}
}

// Authorize checks the emergency stop flag, then the credential, and
// logs the successful check. The emergency stop rejects before any
// other state is consulted or written.
func (s *AdminService) Authorize(credential, clientIP string) error {
	if s.stopped.Load() {
		return ErrEmergencyStop
	}
	if err := s.ValidateCredential(credential); err != nil {
		log.Warn().Str("client_ip", clientIP).Msg("Admin authorization rejected")
		return err
	}
	s.oplog.Append("auth_check", clientIP, "credential accepted")
	return nil
}

// ValidateCredential checks only the shared secret, ignoring the
// emergency stop flag. Used by the endpoint that clears the flag,
// which would otherwise lock itself out.
func (s *AdminService) ValidateCredential(credential string) error {
	// An unset token keeps the gate closed rather than open.
	if s.token == "" {
		return ErrUnauthorized
	}
	if subtle.ConstantTimeCompare([]byte(credential), []byte(s.token)) != 1 {
		return ErrUnauthorized
	}
	return nil
}

// LogOperation appends an entry to the bounded operation log
func (s *AdminService) LogOperation(operation, clientIP, details string) {
	s.oplog.Append(operation, clientIP, details)
}

// SetEmergencyStop toggles the process-wide emergency stop flag
func (s *AdminService) SetEmergencyStop(enabled bool, clientIP string) {
	s.stopped.Store(enabled)
	s.oplog.Append("emergency_stop", clientIP, fmt.Sprintf("enabled=%t", enabled))
	log.Warn().Bool("enabled", enabled).Str("client_ip", clientIP).Msg("Emergency stop toggled")
}

// EmergencyStopped reports the current flag state
func (s *AdminService) EmergencyStopped() bool {
	return s.stopped.Load()
}

// Operations returns up to limit operation log entries, newest first
func (s *AdminService) Operations(limit int) []model.OperationLogEntry {
	return s.oplog.Recent(limit)
}

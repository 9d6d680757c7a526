package store

import (
	"errors"
	"sync"

	"shortwave/internal/model"
)

var (
	// ErrDuplicateCode is returned when saving a short code that already exists
	ErrDuplicateCode = errors.New("short code already exists")
	// ErrNotFound is returned when a requested entity does not exist
	ErrNotFound = errors.New("not found")
)

// LinkStore is an in-memory store of short links keyed by short code
type LinkStore struct {
	mu    sync.RWMutex
	links map[string]model.ShortLink
}

// NewLinkStore creates an empty LinkStore
func NewLinkStore() *LinkStore {
	return &LinkStore{links: make(map[string]model.ShortLink)}
}

// Save stores a new short link; the short code must be unused
func (s *LinkStore) Save(link model.ShortLink) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.links[link.ShortCode]; ok {
		return ErrDuplicateCode
	}
	s.links[link.ShortCode] = link
	return nil
}

// Get returns the short link for a code
func (s *LinkStore) Get(shortCode string) (model.ShortLink, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	link, ok := s.links[shortCode]
	if !ok {
		return model.ShortLink{}, ErrNotFound
	}
	return link, nil
}

// Exists reports whether a short code is taken
func (s *LinkStore) Exists(shortCode string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.links[shortCode]
	return ok
}

// Count returns the number of stored links
func (s *LinkStore) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.links)
}

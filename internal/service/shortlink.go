package service

import (
	"errors"
	"fmt"
	"net/url"
	"time"

	"github.com/rs/zerolog/log"

	"shortwave/internal/config"
	"shortwave/internal/keygen"
	"shortwave/internal/model"
	"shortwave/internal/store"
)

var (
	// ErrInvalidURL is returned when the URL is invalid
	ErrInvalidURL = errors.New("invalid URL")
	// ErrShortLinkNotFound is returned when the short link is not found
	ErrShortLinkNotFound = errors.New("short link not found")
)

// ShortLinkService handles short link operations
type ShortLinkService struct {
	links       *store.LinkStore
	domain      string
	keyLength   int
	maxAttempts int
	now         func() time.Time
}

// NewShortLinkService creates a new ShortLink Service
func NewShortLinkService(links *store.LinkStore, domain string, cfg config.ShortenerConfig) *ShortLinkService {
	return &ShortLinkService{
		links:       links,
		domain:      domain,
		keyLength:   cfg.KeyLength,
		maxAttempts: cfg.MaxAttempts,
		now:         time.Now,
	}
}

// Generate creates a short link with a fresh unique code
func (s *ShortLinkService) Generate(req *model.GenerateRequest) (*model.GenerateResponse, error) {
	if req.URL == "" {
		return nil, ErrInvalidURL
	}
	if u, err := url.Parse(req.URL); err != nil || u.Scheme == "" || u.Host == "" {
		return nil, ErrInvalidURL
	}

	code, err := keygen.UniqueKey(s.links.Exists, s.keyLength, s.maxAttempts)
	if err != nil {
		return nil, fmt.Errorf("generate short code: %w", err)
	}

	link := model.ShortLink{
		ShortCode:   code,
		OriginalURL: req.URL,
		CreatedAt:   s.now(),
	}
	if err := s.links.Save(link); err != nil {
		log.Error().Err(err).Str("short_code", code).Msg("Failed to save short link")
		return nil, fmt.Errorf("save short link: %w", err)
	}

	return &model.GenerateResponse{
		ShortLink:   fmt.Sprintf("%s/%s", s.domain, code),
		ShortCode:   code,
		OriginalURL: req.URL,
	}, nil
}

// Resolve returns the short link for a code
func (s *ShortLinkService) Resolve(shortCode string) (model.ShortLink, error) {
	link, err := s.links.Get(shortCode)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return model.ShortLink{}, ErrShortLinkNotFound
		}
		return model.ShortLink{}, err
	}
	return link, nil
}

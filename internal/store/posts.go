package store

import (
	"sync"

	"shortwave/internal/model"
)

// PostStore is an in-memory store of blog posts keyed by slug,
// preserving insertion order for listing
type PostStore struct {
	mu    sync.RWMutex
	posts map[string]model.BlogPost
	order []string
}

// NewPostStore creates an empty PostStore
func NewPostStore() *PostStore {
	return &PostStore{posts: make(map[string]model.BlogPost)}
}

// Save stores a new post; the slug must be unused
func (s *PostStore) Save(post model.BlogPost) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.posts[post.Slug]; ok {
		return ErrDuplicateCode
	}
	s.posts[post.Slug] = post
	s.order = append(s.order, post.Slug)
	return nil
}

// Get returns the post for a slug
func (s *PostStore) Get(slug string) (model.BlogPost, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	post, ok := s.posts[slug]
	if !ok {
		return model.BlogPost{}, ErrNotFound
	}
	return post, nil
}

// Exists reports whether a slug is taken
func (s *PostStore) Exists(slug string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.posts[slug]
	return ok
}

// List returns all posts in insertion order
func (s *PostStore) List() []model.BlogPost {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]model.BlogPost, 0, len(s.order))
	for _, slug := range s.order {
		out = append(out, s.posts[slug])
	}
	return out
}

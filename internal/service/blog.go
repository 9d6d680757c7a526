package service

import (
	"errors"
	"fmt"
	"time"

	"shortwave/internal/keygen"
	"shortwave/internal/model"
	"shortwave/internal/store"
)

// ErrPostNotFound is returned when the blog post is not found
var ErrPostNotFound = errors.New("post not found")

// BlogService handles blog post operations
type BlogService struct {
	posts *store.PostStore
	now   func() time.Time
}

// NewBlogService creates a new Blog Service
func NewBlogService(posts *store.PostStore) *BlogService {
	return &BlogService{posts: posts, now: time.Now}
}

// Create stores a new post under a unique slug derived from its title
func (s *BlogService) Create(req *model.CreatePostRequest) (model.BlogPost, error) {
	post := model.BlogPost{
		Slug:      keygen.UniqueSlug(req.Title, s.posts.Exists),
		Title:     req.Title,
		Content:   req.Content,
		CreatedAt: s.now(),
	}
	if err := s.posts.Save(post); err != nil {
		return model.BlogPost{}, fmt.Errorf("save post: %w", err)
	}
	return post, nil
}

// Get returns the post for a slug
func (s *BlogService) Get(slug string) (model.BlogPost, error) {
	post, err := s.posts.Get(slug)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return model.BlogPost{}, ErrPostNotFound
		}
		return model.BlogPost{}, err
	}
	return post, nil
}

// List returns all posts in creation order
func (s *BlogService) List() []model.BlogPost {
	return s.posts.List()
}

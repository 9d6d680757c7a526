package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shortwave/internal/model"
)

func TestLinkStore_SaveAndGet(t *testing.T) {
	s := NewLinkStore()

	link := model.ShortLink{
		ShortCode:   "abc123",
		OriginalURL: "https://example.com",
		CreatedAt:   time.Now(),
	}
	require.NoError(t, s.Save(link))

	got, err := s.Get("abc123")
	require.NoError(t, err)
	assert.Equal(t, link, got)
	assert.True(t, s.Exists("abc123"))
	assert.Equal(t, 1, s.Count())
}

func TestLinkStore_DuplicateCode(t *testing.T) {
	s := NewLinkStore()
	require.NoError(t, s.Save(model.ShortLink{ShortCode: "abc123", OriginalURL: "https://a.com"}))

	err := s.Save(model.ShortLink{ShortCode: "abc123", OriginalURL: "https://b.com"})
	assert.ErrorIs(t, err, ErrDuplicateCode)

	got, _ := s.Get("abc123")
	assert.Equal(t, "https://a.com", got.OriginalURL)
}

func TestLinkStore_NotFound(t *testing.T) {
	s := NewLinkStore()

	_, err := s.Get("missing")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.False(t, s.Exists("missing"))
}

func TestPostStore_SaveAndList(t *testing.T) {
	s := NewPostStore()

	require.NoError(t, s.Save(model.BlogPost{Slug: "first-post", Title: "First Post"}))
	require.NoError(t, s.Save(model.BlogPost{Slug: "second-post", Title: "Second Post"}))

	got, err := s.Get("first-post")
	require.NoError(t, err)
	assert.Equal(t, "First Post", got.Title)

	posts := s.List()
	require.Len(t, posts, 2)
	assert.Equal(t, "first-post", posts[0].Slug)
	assert.Equal(t, "second-post", posts[1].Slug)
}

func TestPostStore_DuplicateSlug(t *testing.T) {
	s := NewPostStore()
	require.NoError(t, s.Save(model.BlogPost{Slug: "post"}))

	assert.ErrorIs(t, s.Save(model.BlogPost{Slug: "post"}), ErrDuplicateCode)
	assert.Len(t, s.List(), 1)
}

func TestPostStore_NotFound(t *testing.T) {
	s := NewPostStore()

	_, err := s.Get("missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shortwave/internal/model"
	"shortwave/internal/store"
)

func TestBlogService_Create(t *testing.T) {
	svc := NewBlogService(store.NewPostStore())

	post, err := svc.Create(&model.CreatePostRequest{Title: "Hello World!", Content: "body"})
	require.NoError(t, err)

	assert.Equal(t, "hello-world", post.Slug)
	assert.Equal(t, "Hello World!", post.Title)
	assert.False(t, post.CreatedAt.IsZero())
}

func TestBlogService_DuplicateTitlesGetSuffixes(t *testing.T) {
	svc := NewBlogService(store.NewPostStore())

	first, err := svc.Create(&model.CreatePostRequest{Title: "My Post"})
	require.NoError(t, err)
	second, err := svc.Create(&model.CreatePostRequest{Title: "My Post"})
	require.NoError(t, err)
	third, err := svc.Create(&model.CreatePostRequest{Title: "My Post"})
	require.NoError(t, err)

	assert.Equal(t, "my-post", first.Slug)
	assert.Equal(t, "my-post-2", second.Slug)
	assert.Equal(t, "my-post-3", third.Slug)
}

func TestBlogService_GetAndList(t *testing.T) {
	svc := NewBlogService(store.NewPostStore())

	created, err := svc.Create(&model.CreatePostRequest{Title: "First"})
	require.NoError(t, err)
	_, err = svc.Create(&model.CreatePostRequest{Title: "Second"})
	require.NoError(t, err)

	post, err := svc.Get(created.Slug)
	require.NoError(t, err)
	assert.Equal(t, "First", post.Title)

	_, err = svc.Get("missing")
	assert.ErrorIs(t, err, ErrPostNotFound)

	posts := svc.List()
	require.Len(t, posts, 2)
	assert.Equal(t, "first", posts[0].Slug)
	assert.Equal(t, "second", posts[1].Slug)
}

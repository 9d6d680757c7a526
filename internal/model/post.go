package model

import (
	"time"
)

// BlogPost represents a blog post entity, identified by its slug
type BlogPost struct {
	Slug      string    `json:"slug"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

// CreatePostRequest represents the request to create a blog post
type CreatePostRequest struct {
	Title   string `json:"title" binding:"required"`
	Content string `json:"content"`
}

package models

import "time"

// Post represents a blog post moving through the editorial lifecycle.
// Body accumulates through AddText and is only exposed to readers once
// the post is published; see Content.
type Post struct {
	ID        int       `json:"id" validate:"gte=0"`
	Title     string    `json:"title" validate:"required,min=3,max=200"`
	Body      string    `json:"body"`
	State     State     `json:"state"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Revision records a single append against a post's body.
type Revision struct {
	ID        string    `json:"id" validate:"required,uuid4"`
	PostID    int       `json:"post_id" validate:"required,gte=1"`
	Text      string    `json:"text"`
	Digest    string    `json:"digest" validate:"required,len=64,hexadecimal"`
	CreatedAt time.Time `json:"created_at"`
}

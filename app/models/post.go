package models

import (
	"errors"
	"time"
)

// NewPost returns a draft post with an empty body.
func NewPost(title string) *Post {
	return &Post{
		Title: title,
		State: StateDraft,
	}
}

// AddText appends text to the post body. Any edit invalidates a
// pending review or an earlier publication, so the state always
// drops back to draft.
func (p *Post) AddText(text string) {
	p.Body += text
	p.State = StateDraft
}

// RequestReview submits the post for editorial review.
func (p *Post) RequestReview() {
	p.State = p.State.ReviewRequested()
}

// Approve publishes a post that is pending review.
func (p *Post) Approve() {
	p.State = p.State.Approved()
}

// Content returns the body once the post is published and the empty
// string in every other state.
func (p *Post) Content() string {
	if p.State == StatePublished {
		return p.Body
	}
	return ""
}

// Validate checks if the post meets all validation requirements
func (p *Post) Validate() error {
	if err := validate.Struct(p); err != nil {
		return err
	}

	if !p.State.Valid() {
		return errors.New("unknown state: " + string(p.State))
	}

	return nil
}

// BeforeCreate sets up any necessary fields before creation
func (p *Post) BeforeCreate() {
	if p.State == "" {
		p.State = StateDraft
	}
	if p.CreatedAt.IsZero() {
		p.CreatedAt = time.Now()
	}
	if p.UpdatedAt.IsZero() {
		p.UpdatedAt = p.CreatedAt
	}
}

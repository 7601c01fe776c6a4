package models

import (
	"encoding/hex"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/blake2b"
)

// NewRevision records one append against a post. The digest covers the
// full body after the append, so the revision chain can be checked
// against the stored post.
func NewRevision(postID int, text, body string) *Revision {
	sum := blake2b.Sum256([]byte(body))
	return &Revision{
		ID:        uuid.NewString(),
		PostID:    postID,
		Text:      text,
		Digest:    hex.EncodeToString(sum[:]),
		CreatedAt: time.Now(),
	}
}

// Validate checks if the revision meets all validation requirements
func (r *Revision) Validate() error {
	return validate.Struct(r)
}

package models

// State is the editorial lifecycle state of a post.
type State string

const (
	StateDraft         State = "draft"
	StatePendingReview State = "pending_review"
	StatePublished     State = "published"
)

// Valid reports whether s is one of the known lifecycle states.
func (s State) Valid() bool {
	switch s {
	case StateDraft, StatePendingReview, StatePublished:
		return true
	}
	return false
}

// ReviewRequested returns the state after a review request. A draft
// moves into pending review, and a published post goes back into
// pending review; a post already pending review stays where it is.
func (s State) ReviewRequested() State {
	switch s {
	case StateDraft, StatePublished:
		return StatePendingReview
	default:
		return s
	}
}

// Approved returns the state after an approval. Only a post pending
// review can become published; every other state is unchanged.
func (s State) Approved() State {
	if s == StatePendingReview {
		return StatePublished
	}
	return s
}

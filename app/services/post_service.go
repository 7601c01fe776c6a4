package services

import (
	"fmt"
	"time"

	"pressroom/app/models"
	"pressroom/app/repositories"
)

// PostService handles the editorial workflow for blog posts
type PostService struct {
	postRepo     repositories.PostRepository
	revisionRepo repositories.RevisionRepository
}

// NewPostService creates a new PostService
func NewPostService(postRepo repositories.PostRepository, revisionRepo repositories.RevisionRepository) *PostService {
	return &PostService{
		postRepo:     postRepo,
		revisionRepo: revisionRepo,
	}
}

// CreateDraft creates a new post in draft state with an empty body
func (s *PostService) CreateDraft(post *models.Post) error {
	// A post always starts its life as an empty draft, whatever the
	// caller put in the struct.
	post.State = models.StateDraft
	post.Body = ""
	post.BeforeCreate()

	if err := post.Validate(); err != nil {
		return fmt.Errorf("invalid post: %v", err)
	}

	return s.postRepo.Create(post)
}

// AddText appends text to a post's body. The post drops back to draft
// and a revision is recorded with the digest of the new body.
func (s *PostService) AddText(id int, text string) (*models.Post, error) {
	post, err := s.postRepo.GetByID(id)
	if err != nil {
		return nil, err
	}

	post.AddText(text)
	post.UpdatedAt = time.Now()

	if err := s.postRepo.Update(post); err != nil {
		return nil, err
	}

	revision := models.NewRevision(post.ID, text, post.Body)
	if err := s.revisionRepo.Create(revision); err != nil {
		return nil, fmt.Errorf("failed to record revision: %v", err)
	}

	return post, nil
}

// RequestReview submits a post for editorial review
func (s *PostService) RequestReview(id int) (*models.Post, error) {
	return s.transition(id, (*models.Post).RequestReview)
}

// Approve publishes a post that is pending review
func (s *PostService) Approve(id int) (*models.Post, error) {
	return s.transition(id, (*models.Post).Approve)
}

// transition loads a post, applies a state transition and persists the result
func (s *PostService) transition(id int, apply func(*models.Post)) (*models.Post, error) {
	post, err := s.postRepo.GetByID(id)
	if err != nil {
		return nil, err
	}

	apply(post)
	post.UpdatedAt = time.Now()

	if err := s.postRepo.Update(post); err != nil {
		return nil, err
	}
	return post, nil
}

// Content returns the visible content of a post: the body once
// published, the empty string otherwise
func (s *PostService) Content(id int) (string, error) {
	post, err := s.postRepo.GetByID(id)
	if err != nil {
		return "", err
	}
	return post.Content(), nil
}

// GetPost retrieves a post by ID
func (s *PostService) GetPost(id int) (*models.Post, error) {
	return s.postRepo.GetByID(id)
}

// ListPosts retrieves a paginated list of posts
func (s *PostService) ListPosts(page, perPage int) ([]*models.Post, error) {
	if page < 1 {
		page = 1
	}
	if perPage < 1 {
		perPage = 10
	}

	offset := (page - 1) * perPage
	return s.postRepo.List(perPage, offset)
}

// ListRevisions retrieves the revision history of a post, oldest first
func (s *PostService) ListRevisions(postID int) ([]*models.Revision, error) {
	// Verify the post exists so a missing post and a post without
	// revisions are distinguishable.
	if _, err := s.postRepo.GetByID(postID); err != nil {
		return nil, err
	}
	return s.revisionRepo.ListByPost(postID)
}

// DeletePost deletes a post and its revision history
func (s *PostService) DeletePost(id int) error {
	if err := s.revisionRepo.DeleteByPost(id); err != nil {
		return fmt.Errorf("failed to delete revisions: %v", err)
	}
	return s.postRepo.Delete(id)
}

package repositories

import "pressroom/app/models"

// PostRepository defines the interface for post data access
type PostRepository interface {
	Create(post *models.Post) error
	GetByID(id int) (*models.Post, error)
	List(limit, offset int) ([]*models.Post, error)
	Update(post *models.Post) error
	Delete(id int) error
}

// RevisionRepository defines the interface for revision data access
type RevisionRepository interface {
	Create(revision *models.Revision) error
	ListByPost(postID int) ([]*models.Revision, error)
	DeleteByPost(postID int) error
}

package mock

import (
	"sort"
	"sync"

	"pressroom/app/models"
	"pressroom/app/repositories"
)

type PostRepository struct {
	posts  map[int]*models.Post
	nextID int
	mutex  sync.RWMutex
}

type RevisionRepository struct {
	revisions map[string]*models.Revision
	mutex     sync.RWMutex
}

func NewPostRepository() *PostRepository {
	return &PostRepository{
		posts:  make(map[int]*models.Post),
		nextID: 1,
	}
}

func NewRevisionRepository() *RevisionRepository {
	return &RevisionRepository{
		revisions: make(map[string]*models.Revision),
	}
}

func (m *PostRepository) Clear() {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	m.posts = make(map[int]*models.Post)
	m.nextID = 1
}

// PostRepository implementation
func (m *PostRepository) Create(post *models.Post) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	post.ID = m.nextID
	m.nextID++
	post.BeforeCreate()
	m.posts[post.ID] = post
	return nil
}

func (m *PostRepository) GetByID(id int) (*models.Post, error) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	post, exists := m.posts[id]
	if !exists {
		return nil, repositories.ErrNotFound
	}
	return post, nil
}

func (m *PostRepository) Update(post *models.Post) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	if _, exists := m.posts[post.ID]; !exists {
		return repositories.ErrNotFound
	}
	m.posts[post.ID] = post
	return nil
}

func (m *PostRepository) Delete(id int) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	if _, exists := m.posts[id]; !exists {
		return repositories.ErrNotFound
	}
	delete(m.posts, id)
	return nil
}

func (m *PostRepository) List(limit, offset int) ([]*models.Post, error) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	var posts []*models.Post
	count := 0
	for id := 1; id <= m.nextID-1; id++ {
		if post, exists := m.posts[id]; exists {
			if count >= offset && len(posts) < limit {
				posts = append(posts, post)
			}
			count++
		}
	}
	return posts, nil
}

// RevisionRepository implementation
func (m *RevisionRepository) Create(revision *models.Revision) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	m.revisions[revision.ID] = revision
	return nil
}

func (m *RevisionRepository) ListByPost(postID int) ([]*models.Revision, error) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	var revisions []*models.Revision
	for _, revision := range m.revisions {
		if revision.PostID == postID {
			revisions = append(revisions, revision)
		}
	}
	sort.Slice(revisions, func(i, j int) bool {
		if revisions[i].CreatedAt.Equal(revisions[j].CreatedAt) {
			return revisions[i].ID < revisions[j].ID
		}
		return revisions[i].CreatedAt.Before(revisions[j].CreatedAt)
	})
	return revisions, nil
}

func (m *RevisionRepository) DeleteByPost(postID int) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	for id, revision := range m.revisions {
		if revision.PostID == postID {
			delete(m.revisions, id)
		}
	}
	return nil
}

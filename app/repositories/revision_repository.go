package repositories

import (
	"sort"

	"pressroom/app/models"

	"github.com/dgraph-io/badger/v4"
)

// BadgerRevisionRepository implements RevisionRepository using BadgerDB
type BadgerRevisionRepository struct {
	db *badger.DB
}

// NewBadgerRevisionRepository creates a new BadgerRevisionRepository
func NewBadgerRevisionRepository(db *badger.DB) *BadgerRevisionRepository {
	return &BadgerRevisionRepository{db: db}
}

// Create stores a revision under its post's key prefix
func (r *BadgerRevisionRepository) Create(revision *models.Revision) error {
	return r.db.Update(func(txn *badger.Txn) error {
		data, err := marshalEntity(revision)
		if err != nil {
			return err
		}
		return txn.Set(revisionKey(revision.PostID, revision.ID), data)
	})
}

// ListByPost retrieves all revisions of a post, oldest first
func (r *BadgerRevisionRepository) ListByPost(postID int) ([]*models.Revision, error) {
	var revisions []*models.Revision

	err := r.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		it := txn.NewIterator(opts)
		defer it.Close()

		prefix := revisionPrefix(postID)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			item := it.Item()
			var revision models.Revision
			err := item.Value(func(val []byte) error {
				return unmarshalEntity(val, &revision)
			})
			if err != nil {
				return err
			}
			revisions = append(revisions, &revision)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	// Keys are ordered by revision UUID, not by time of creation.
	sort.Slice(revisions, func(i, j int) bool {
		if revisions[i].CreatedAt.Equal(revisions[j].CreatedAt) {
			return revisions[i].ID < revisions[j].ID
		}
		return revisions[i].CreatedAt.Before(revisions[j].CreatedAt)
	})

	return revisions, nil
}

// DeleteByPost removes all revisions of a post
func (r *BadgerRevisionRepository) DeleteByPost(postID int) error {
	return r.db.Update(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false
		it := txn.NewIterator(opts)

		prefix := revisionPrefix(postID)
		var keys [][]byte
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			keys = append(keys, it.Item().KeyCopy(nil))
		}
		it.Close()

		for _, key := range keys {
			if err := txn.Delete(key); err != nil {
				return err
			}
		}
		return nil
	})
}

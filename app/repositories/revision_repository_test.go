package repositories

import (
	"testing"
	"time"

	"pressroom/app/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBadgerRevisionRepository(t *testing.T) {
	db := setupTestDB(t)
	repo := NewBadgerRevisionRepository(db)

	t.Run("list empty", func(t *testing.T) {
		revisions, err := repo.ListByPost(1)
		require.NoError(t, err)
		assert.Empty(t, revisions)
	})

	t.Run("create and list oldest first", func(t *testing.T) {
		first := models.NewRevision(1, "A", "A")
		second := models.NewRevision(1, " B", "A B")
		second.CreatedAt = first.CreatedAt.Add(time.Second)
		other := models.NewRevision(2, "X", "X")

		require.NoError(t, repo.Create(first))
		require.NoError(t, repo.Create(second))
		require.NoError(t, repo.Create(other))

		revisions, err := repo.ListByPost(1)
		require.NoError(t, err)
		require.Len(t, revisions, 2)
		assert.Equal(t, first.ID, revisions[0].ID)
		assert.Equal(t, second.ID, revisions[1].ID)
		assert.Equal(t, "A", revisions[0].Text)
		assert.Equal(t, " B", revisions[1].Text)
	})

	t.Run("delete by post leaves other posts alone", func(t *testing.T) {
		require.NoError(t, repo.DeleteByPost(1))

		revisions, err := repo.ListByPost(1)
		require.NoError(t, err)
		assert.Empty(t, revisions)

		revisions, err = repo.ListByPost(2)
		require.NoError(t, err)
		assert.Len(t, revisions, 1)
	})
}

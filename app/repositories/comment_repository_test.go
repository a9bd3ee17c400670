package repositories

import (
	"testing"
	"time"

	"inkwell/app/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBadgerCommentRepository(t *testing.T) {
	db := setupTestDB(t)
	repo := NewBadgerCommentRepository(db)

	base := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	comment := func(postID int, name string, at time.Time) *models.Comment {
		return &models.Comment{PostID: postID, Name: name, Text: "text", DatePublished: at}
	}

	first := comment(1, "Alice", base)
	second := comment(1, "Bob", base.Add(time.Hour))
	other := comment(2, "Carol", base.Add(2*time.Hour))

	require.NoError(t, repo.Create(first))
	require.NoError(t, repo.Create(second))
	require.NoError(t, repo.Create(other))

	t.Run("create assigns sequential IDs", func(t *testing.T) {
		assert.Equal(t, 1, first.ID)
		assert.Equal(t, 2, second.ID)
		assert.Equal(t, 3, other.ID)
	})

	t.Run("get by id", func(t *testing.T) {
		got, err := repo.GetByID(first.ID)
		require.NoError(t, err)
		assert.Equal(t, "Alice", got.Name)

		_, err = repo.GetByID(999)
		assert.Equal(t, ErrNotFound, err)
	})

	t.Run("list by post is newest first", func(t *testing.T) {
		comments, err := repo.ListByPost(1)
		require.NoError(t, err)
		require.Len(t, comments, 2)
		assert.Equal(t, "Bob", comments[0].Name)
		assert.Equal(t, "Alice", comments[1].Name)
	})

	t.Run("list all is newest first", func(t *testing.T) {
		comments, err := repo.ListAll()
		require.NoError(t, err)
		require.Len(t, comments, 3)
		assert.Equal(t, "Carol", comments[0].Name)
	})

	t.Run("delete by post removes only that post's comments", func(t *testing.T) {
		require.NoError(t, repo.DeleteByPost(1))

		comments, err := repo.ListByPost(1)
		require.NoError(t, err)
		assert.Empty(t, comments)

		remaining, err := repo.ListByPost(2)
		require.NoError(t, err)
		assert.Len(t, remaining, 1)
	})

	t.Run("delete missing comment", func(t *testing.T) {
		assert.Equal(t, ErrNotFound, repo.Delete(999))
	})
}

package repositories

import (
	"testing"

	"inkwell/app/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBadgerUserRepository(t *testing.T) {
	db := setupTestDB(t)
	repo := NewBadgerUserRepository(db)

	alice := &models.User{Username: "alice", PasswordHash: "hash-a"}
	bob := &models.User{Username: "bob", PasswordHash: "hash-b"}

	require.NoError(t, repo.Create(alice))
	require.NoError(t, repo.Create(bob))

	t.Run("get by id", func(t *testing.T) {
		got, err := repo.GetByID(alice.ID)
		require.NoError(t, err)
		assert.Equal(t, "alice", got.Username)
	})

	t.Run("get by username", func(t *testing.T) {
		got, err := repo.GetByUsername("bob")
		require.NoError(t, err)
		assert.Equal(t, bob.ID, got.ID)

		_, err = repo.GetByUsername("nobody")
		assert.Equal(t, ErrNotFound, err)
	})

	t.Run("delete", func(t *testing.T) {
		require.NoError(t, repo.Delete(bob.ID))
		_, err := repo.GetByID(bob.ID)
		assert.Equal(t, ErrNotFound, err)

		assert.Equal(t, ErrNotFound, repo.Delete(bob.ID))
	})
}

func TestBadgerSessionRepository(t *testing.T) {
	db := setupTestDB(t)
	repo := NewBadgerSessionRepository(db)

	require.NoError(t, repo.Create("token-1", 42))

	t.Run("get", func(t *testing.T) {
		userID, err := repo.Get("token-1")
		require.NoError(t, err)
		assert.Equal(t, 42, userID)
	})

	t.Run("get missing token", func(t *testing.T) {
		_, err := repo.Get("stale")
		assert.Equal(t, ErrNotFound, err)
	})

	t.Run("delete", func(t *testing.T) {
		require.NoError(t, repo.Delete("token-1"))
		_, err := repo.Get("token-1")
		assert.Equal(t, ErrNotFound, err)
	})
}

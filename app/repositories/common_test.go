package repositories

import (
	"testing"
	"time"

	"inkwell/app/models"

	"github.com/dgraph-io/badger/v4"
	"github.com/stretchr/testify/require"
)

func setupTestDB(t *testing.T) *badger.DB {
	opts := badger.DefaultOptions("").WithInMemory(true).WithLogger(nil)
	db, err := badger.Open(opts)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func draftPost(authorID int, title string, edited time.Time) *models.Post {
	return &models.Post{
		AuthorID:   authorID,
		Status:     models.StatusDraft,
		Title:      title,
		Text:       "body",
		DateEdited: edited,
	}
}

func publishedPost(authorID int, title string, published time.Time) *models.Post {
	return &models.Post{
		AuthorID:      authorID,
		Status:        models.StatusPublished,
		Title:         title,
		Text:          "body",
		DatePublished: &published,
		DateEdited:    published,
	}
}

package models

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPostLifecycle(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	t.Run("publish from draft", func(t *testing.T) {
		post := &Post{ID: 1, Status: StatusDraft, Title: "T", Text: "B"}

		err := post.Publish(now)
		require.NoError(t, err)
		assert.Equal(t, StatusPublished, post.Status)
		require.NotNil(t, post.DatePublished)
		assert.Equal(t, now, *post.DatePublished)
	})

	t.Run("archive from published", func(t *testing.T) {
		post := &Post{ID: 1, Status: StatusPublished, Title: "T", Text: "B", DatePublished: &now}

		err := post.Archive()
		require.NoError(t, err)
		assert.Equal(t, StatusArchived, post.Status)
		assert.Equal(t, now, *post.DatePublished)
	})

	t.Run("republish keeps original publication date", func(t *testing.T) {
		post := &Post{ID: 1, Status: StatusArchived, Title: "T", Text: "B", DatePublished: &now}

		err := post.Republish()
		require.NoError(t, err)
		assert.Equal(t, StatusPublished, post.Status)
		assert.Equal(t, now, *post.DatePublished)
	})

	t.Run("invalid transitions", func(t *testing.T) {
		tests := []struct {
			name string
			from Status
			call func(*Post) error
		}{
			{"publish from published", StatusPublished, func(p *Post) error { return p.Publish(now) }},
			{"publish from archived", StatusArchived, func(p *Post) error { return p.Publish(now) }},
			{"archive from draft", StatusDraft, func(p *Post) error { return p.Archive() }},
			{"archive from archived", StatusArchived, func(p *Post) error { return p.Archive() }},
			{"republish from draft", StatusDraft, func(p *Post) error { return p.Republish() }},
			{"republish from published", StatusPublished, func(p *Post) error { return p.Republish() }},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				post := &Post{ID: 1, Status: tt.from, Title: "T", Text: "B"}
				err := tt.call(post)
				assert.ErrorIs(t, err, ErrInvalidTransition)
				assert.Equal(t, tt.from, post.Status)
			})
		}
	})

	t.Run("full round trip", func(t *testing.T) {
		post := &Post{ID: 1, Status: StatusDraft, Title: "T", Text: "B"}

		require.NoError(t, post.Publish(now))
		require.NoError(t, post.Archive())
		require.NoError(t, post.Republish())

		assert.Equal(t, StatusPublished, post.Status)
		assert.Equal(t, now, *post.DatePublished)
	})
}

func TestPostValidation(t *testing.T) {
	now := time.Now()

	tests := []struct {
		name    string
		post    *Post
		wantErr bool
	}{
		{
			name:    "valid draft",
			post:    &Post{ID: 1, Status: StatusDraft, Title: "A title", Text: "Body"},
			wantErr: false,
		},
		{
			name:    "valid published post",
			post:    &Post{ID: 1, Status: StatusPublished, Title: "A title", Text: "Body", DatePublished: &now},
			wantErr: false,
		},
		{
			name:    "empty title",
			post:    &Post{ID: 1, Status: StatusDraft, Title: "", Text: "Body"},
			wantErr: true,
		},
		{
			name:    "title too long",
			post:    &Post{ID: 1, Status: StatusDraft, Title: strings.Repeat("a", 161), Text: "Body"},
			wantErr: true,
		},
		{
			name:    "title at limit",
			post:    &Post{ID: 1, Status: StatusDraft, Title: strings.Repeat("a", 160), Text: "Body"},
			wantErr: false,
		},
		{
			name:    "empty text",
			post:    &Post{ID: 1, Status: StatusDraft, Title: "A title", Text: ""},
			wantErr: true,
		},
		{
			name:    "draft with publication date",
			post:    &Post{ID: 1, Status: StatusDraft, Title: "A title", Text: "Body", DatePublished: &now},
			wantErr: true,
		},
		{
			name:    "published without publication date",
			post:    &Post{ID: 1, Status: StatusPublished, Title: "A title", Text: "Body"},
			wantErr: true,
		},
		{
			name:    "archived without publication date",
			post:    &Post{ID: 1, Status: StatusArchived, Title: "A title", Text: "Body"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.post.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestPostCanonicalURL(t *testing.T) {
	now := time.Now()

	assert.Equal(t, "/post/7/manage",
		(&Post{ID: 7, Status: StatusDraft}).CanonicalURL())
	assert.Equal(t, "/archive/7",
		(&Post{ID: 7, Status: StatusArchived, DatePublished: &now}).CanonicalURL())
	assert.Equal(t, "/post/7",
		(&Post{ID: 7, Status: StatusPublished, DatePublished: &now}).CanonicalURL())
}

func TestPostOwnership(t *testing.T) {
	post := &Post{ID: 1, AuthorID: 3}

	assert.True(t, post.IsOwnedBy(&User{ID: 3}))
	assert.False(t, post.IsOwnedBy(&User{ID: 4}))
	assert.False(t, post.IsOwnedBy(nil))

	orphan := &Post{ID: 2, AuthorID: 0}
	assert.False(t, orphan.IsOwnedBy(&User{ID: 0}))
}

func TestPostTouch(t *testing.T) {
	post := &Post{ID: 1}
	stamp := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	post.Touch(stamp)
	assert.Equal(t, stamp, post.DateEdited)
}

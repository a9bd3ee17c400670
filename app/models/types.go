package models

import (
	"time"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// Post represents a blog post moving through the draft/published/archived
// lifecycle. AuthorID is 0 when the post has no author (the account that
// wrote it was deleted; the post survives).
type Post struct {
	ID            int        `validate:"gte=0"`
	AuthorID      int        `validate:"gte=0"`
	Status        Status     `validate:"gte=0,lte=2"`
	Title         string     `validate:"required,max=160"`
	Text          string     `validate:"required"`
	DatePublished *time.Time `validate:"-"`
	DateEdited    time.Time  `validate:"-"`
	Comments      []*Comment `validate:"-"`
}

// Comment represents a reader comment on a published post. Comments are
// created once and never updated; they disappear only when their post is
// deleted.
type Comment struct {
	ID            int       `validate:"gte=0"`
	PostID        int       `validate:"gte=0"`
	Name          string    `validate:"required,max=30"`
	Text          string    `validate:"required,max=250"`
	DatePublished time.Time `validate:"-"`
}

// User is an author account. It doubles as the acting principal: handlers
// resolve the session to a *User and pass it explicitly into the services
// (nil means anonymous).
type User struct {
	ID           int       `validate:"gte=0"`
	Username     string    `validate:"required,min=3,max=50"`
	PasswordHash string    `json:"-" validate:"required"`
	CreatedAt    time.Time `validate:"-"`
}

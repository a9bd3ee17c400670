package models

import (
	"errors"
	"fmt"
	"time"
)

// Validate checks if the post meets all validation requirements
func (p *Post) Validate() error {
	if err := validate.Struct(p); err != nil {
		return err
	}

	// DatePublished is absent exactly while the post is a draft.
	if p.Status == StatusDraft && p.DatePublished != nil {
		return errors.New("draft cannot have a publication date")
	}
	if p.Status != StatusDraft && p.DatePublished == nil {
		return errors.New("non-draft must have a publication date")
	}

	return nil
}

// Publish moves a draft to Published and stamps its publication date.
func (p *Post) Publish(now time.Time) error {
	if p.Status != StatusDraft {
		return fmt.Errorf("%w: publish requires Draft, post %d is %s",
			ErrInvalidTransition, p.ID, p.Status)
	}
	p.Status = StatusPublished
	p.DatePublished = &now
	return nil
}

// Archive moves a published post to Archived.
func (p *Post) Archive() error {
	if p.Status != StatusPublished {
		return fmt.Errorf("%w: archive requires Published, post %d is %s",
			ErrInvalidTransition, p.ID, p.Status)
	}
	p.Status = StatusArchived
	return nil
}

// Republish moves an archived post back to Published. The original
// publication date is kept.
func (p *Post) Republish() error {
	if p.Status != StatusArchived {
		return fmt.Errorf("%w: republish requires Archived, post %d is %s",
			ErrInvalidTransition, p.ID, p.Status)
	}
	p.Status = StatusPublished
	return nil
}

// Touch refreshes the last-edited stamp. Called on every mutation of the
// post record.
func (p *Post) Touch(now time.Time) {
	p.DateEdited = now
}

// IsOwnedBy reports whether the given principal is the post's author.
// A nil principal (anonymous) owns nothing, as does a post without an author.
func (p *Post) IsOwnedBy(principal *User) bool {
	return principal != nil && p.AuthorID != 0 && p.AuthorID == principal.ID
}

// CanonicalURL returns the lifecycle-dependent read location for the post:
// drafts resolve to their management view, archived posts to the archive
// detail view, everything else to the public detail view.
func (p *Post) CanonicalURL() string {
	switch p.Status {
	case StatusDraft:
		return fmt.Sprintf("/post/%d/manage", p.ID)
	case StatusArchived:
		return fmt.Sprintf("/archive/%d", p.ID)
	default:
		return fmt.Sprintf("/post/%d", p.ID)
	}
}

// AddComment attaches a comment to the post's loaded comment list.
func (p *Post) AddComment(comment *Comment) error {
	if comment == nil {
		return errors.New("comment cannot be nil")
	}

	comment.PostID = p.ID
	p.Comments = append(p.Comments, comment)
	return nil
}

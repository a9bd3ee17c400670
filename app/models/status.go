package models

import (
	"errors"
	"fmt"
)

// Status is the lifecycle state of a Post.
type Status int

const (
	StatusDraft Status = iota
	StatusPublished
	StatusArchived
)

var (
	ErrInvalidTransition = errors.New("invalid lifecycle transition")
	ErrUnknownAction     = errors.New("unknown action")
)

// Label returns the display string for the status.
func (s Status) Label() string {
	switch s {
	case StatusDraft:
		return "Draft"
	case StatusPublished:
		return "Published"
	case StatusArchived:
		return "Archived"
	}
	return fmt.Sprintf("Status(%d)", int(s))
}

func (s Status) String() string { return s.Label() }

// ParseStatus maps the lowercase status names used in URLs to a Status.
func ParseStatus(name string) (Status, error) {
	switch name {
	case "draft":
		return StatusDraft, nil
	case "published":
		return StatusPublished, nil
	case "archived":
		return StatusArchived, nil
	}
	return 0, fmt.Errorf("unknown status %q", name)
}

// Action is a lifecycle command on a post.
type Action int

const (
	ActionPublish Action = iota
	ActionArchive
	ActionRepublish
	ActionDelete
)

// ParseAction converts the action name arriving at the boundary into an
// Action. Five names are recognized: "archivate" is the legacy spelling of
// "archive" and is kept so old management links stay valid.
func ParseAction(name string) (Action, error) {
	switch name {
	case "publish":
		return ActionPublish, nil
	case "archive", "archivate":
		return ActionArchive, nil
	case "republish":
		return ActionRepublish, nil
	case "delete":
		return ActionDelete, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownAction, name)
}

func (a Action) String() string {
	switch a {
	case ActionPublish:
		return "publish"
	case ActionArchive:
		return "archive"
	case ActionRepublish:
		return "republish"
	case ActionDelete:
		return "delete"
	}
	return fmt.Sprintf("Action(%d)", int(a))
}

package services

import "errors"

var (
	// ErrForbidden means the requester is authenticated but not allowed to
	// act on a post they can see.
	ErrForbidden = errors.New("forbidden")

	// ErrValidation wraps field-constraint violations.
	ErrValidation = errors.New("validation failed")
)

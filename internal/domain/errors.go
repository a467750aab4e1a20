package domain

import "errors"

// Workflow error kinds. Services wrap these so the API layer can map each
// failure to a distinct status instead of collapsing everything into one
// generic notice.
var (
	ErrValidation  = errors.New("validation failed")
	ErrNotFound    = errors.New("not found")
	ErrConflict    = errors.New("conflict")
	ErrUnavailable = errors.New("backend unavailable")
)

package repository

import "errors"

// Sentinel kinds for catalog errors.
var (
	ErrNotFound      = errors.New("college not found")
	ErrInvalidLimit  = errors.New("invalid top limit")
	ErrInvalidRecord = errors.New("invalid college record")
	ErrDuplicateID   = errors.New("duplicate college id")
)

package db

import "errors"

// Domain-level database error sentinels.
var (
	// Word lookup errors
	ErrUnknownOutcome = errors.New("unknown lookup outcome")
	ErrEmptyWord      = errors.New("word is empty")
	ErrInvalidLimit   = errors.New("limit must be positive")
)

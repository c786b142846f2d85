package gallery

import "errors"

// Domain errors
var (
	// ErrUnknownCategory - category is not one of the curated sets
	ErrUnknownCategory = errors.New("gallery: unknown category")
)

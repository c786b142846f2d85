package repository

import "errors"

var (
	// ErrCacheMiss - no cached result for the key
	ErrCacheMiss = errors.New("gallery repository: cache miss")

	// ErrNoResults - the catalog has nothing for the category
	ErrNoResults = errors.New("gallery repository: no results")
)

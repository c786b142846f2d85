package minio

import "time"

const (
	maxIdleConns        = 100
	maxIdleConnsPerHost = 10
	idleConnTimeout     = 90 * time.Second

	// DefaultMaxKeys bounds a listing when the caller does not set MaxKeys.
	DefaultMaxKeys = 100
)

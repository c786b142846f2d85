package redis

import "time"

const (
	// DefaultConnectTimeout bounds the initial connection check.
	DefaultConnectTimeout = 5 * time.Second
)

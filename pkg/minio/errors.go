package minio

import "errors"

var (
	ErrEndpointRequired    = errors.New("minio: endpoint is required")
	ErrCredentialsRequired = errors.New("minio: access key and secret key are required")
	ErrBucketRequired      = errors.New("minio: bucket is required")
	ErrNotConnected        = errors.New("minio: not connected")
)

func validateConfig(cfg *Config) error {
	if cfg == nil || cfg.Endpoint == "" {
		return ErrEndpointRequired
	}
	if cfg.AccessKey == "" || cfg.SecretKey == "" {
		return ErrCredentialsRequired
	}
	if cfg.Bucket == "" {
		return ErrBucketRequired
	}
	return nil
}

package minio

import (
	"sync"
	"time"

	"github.com/minio/minio-go/v7"
)

// Config is the configuration for the MinIO client.
type Config struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	UseSSL    bool
	Region    string
	Bucket    string
}

// implMinIO implements MinIO.
type implMinIO struct {
	minioClient *minio.Client
	config      *Config
	mu          sync.RWMutex
	connected   bool
}

// ListRequest describes an object listing.
type ListRequest struct {
	Prefix    string
	Recursive bool
	MaxKeys   int
}

// ObjectInfo describes a single stored object.
type ObjectInfo struct {
	Name         string
	Size         int64
	ContentType  string
	LastModified time.Time
}

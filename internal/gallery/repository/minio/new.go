package minio

import (
	"sayyes-srv/internal/gallery/repository"
	"sayyes-srv/pkg/log"
	pkgMinio "sayyes-srv/pkg/minio"
)

type implCatalog struct {
	storage pkgMinio.MinIO
	l       log.Logger
}

// New - Factory function
func New(storage pkgMinio.MinIO, l log.Logger) repository.Catalog {
	return &implCatalog{
		storage: storage,
		l:       l,
	}
}

package postgre

import (
	"database/sql"

	"sayyes-srv/internal/gallery/repository"
	"sayyes-srv/pkg/log"
)

type implCatalog struct {
	db *sql.DB
	l  log.Logger
}

// New - Factory function
func New(db *sql.DB, l log.Logger) repository.Catalog {
	return &implCatalog{
		db: db,
		l:  l,
	}
}

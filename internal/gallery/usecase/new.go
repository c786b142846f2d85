package usecase

import (
	"sayyes-srv/internal/gallery"
	"sayyes-srv/internal/gallery/repository"
	"sayyes-srv/pkg/log"
)

type implUseCase struct {
	catalogs []repository.Catalog
	cache    repository.CurateCache
	l        log.Logger
}

// New - Factory function. Catalogs are tried in order and the compiled-in
// sample sets are the final fallback. Cache may be nil.
func New(l log.Logger, cache repository.CurateCache, catalogs ...repository.Catalog) gallery.UseCase {
	return &implUseCase{
		catalogs: catalogs,
		cache:    cache,
		l:        l,
	}
}

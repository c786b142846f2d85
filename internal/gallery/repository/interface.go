package repository

import (
	"context"

	"sayyes-srv/internal/gallery"
	"sayyes-srv/internal/model"
)

// Catalog supplies raw media listings per category. Implementations may
// return an empty slice or an error; the curator treats both as "try the
// next source".
type Catalog interface {
	ListByCategory(ctx context.Context, category model.Category) ([]model.MediaItem, error)
}

// CurateCache caches finished curation results per (category, style,
// location). Misses are reported with ErrCacheMiss.
type CurateCache interface {
	Get(ctx context.Context, input gallery.CurateInput) (gallery.CurateOutput, error)
	Save(ctx context.Context, input gallery.CurateInput, out gallery.CurateOutput) error
}

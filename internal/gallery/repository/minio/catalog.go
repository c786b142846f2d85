package minio

import (
	"context"
	"fmt"

	"sayyes-srv/internal/model"
	pkgMinio "sayyes-srv/pkg/minio"
	"sayyes-srv/pkg/util"
)

// Bucket folder per category. Object names under each folder become items,
// metadata defaults filled from the category.
var categoryFolders = map[model.Category]string{
	model.CategoryVenues:     "wedding venues",
	model.CategoryDresses:    "wedding dresses",
	model.CategoryHairstyles: "wedding hairstyles",
	model.CategoryCakes:      "wedding cakes",
}

var categoryDefaults = map[model.Category]model.MediaItem{
	model.CategoryVenues: {
		Description: "Elegant wedding venue in Austin",
		Location:    "Austin, TX",
		Price:       "$$",
		Tags:        []string{"Garden", "Outdoor"},
	},
	model.CategoryDresses: {
		Description: "Beautiful wedding dress",
		Designer:    "Designer Collection",
		Price:       "$$$",
		Tags:        []string{"Dress", "Wedding"},
	},
	model.CategoryHairstyles: {
		Description: "Stunning wedding hairstyle",
		Tags:        []string{"Hairstyle", "Wedding"},
	},
	model.CategoryCakes: {
		Description: "Delicious wedding cake",
		Price:       "$$$",
		Tags:        []string{"Cake", "Wedding"},
	},
}

// ListByCategory lists the category folder and derives item metadata from
// object names.
func (r *implCatalog) ListByCategory(ctx context.Context, category model.Category) ([]model.MediaItem, error) {
	folder, ok := categoryFolders[category]
	if !ok {
		return nil, fmt.Errorf("ListByCategory: no folder for category %q", category)
	}

	objects, err := r.storage.ListObjects(ctx, &pkgMinio.ListRequest{
		Prefix:    folder + "/",
		Recursive: false,
		MaxKeys:   10,
	})
	if err != nil {
		return nil, fmt.Errorf("ListByCategory: %w", err)
	}

	defaults := categoryDefaults[category]

	items := make([]model.MediaItem, 0, len(objects))
	for _, obj := range objects {
		item := defaults
		item.Tags = append([]string(nil), defaults.Tags...)
		item.Image = r.storage.ObjectURL(obj.Name)
		item.Title = util.CleanTitle(obj.Name)
		items = append(items, item)
	}

	return items, nil
}

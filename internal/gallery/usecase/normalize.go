package usecase

import (
	"fmt"
	"strings"

	"sayyes-srv/internal/gallery"
	"sayyes-srv/internal/model"
	"sayyes-srv/pkg/util"
)

// Field defaults applied when a source leaves something blank.
var normalizeDefaults = map[model.Category]model.MediaItem{
	model.CategoryVenues: {
		Title:       "Wedding Venue",
		Description: "Beautiful wedding venue",
		Tags:        []string{"Venue", "Wedding"},
	},
	model.CategoryDresses: {
		Title:       "Wedding Dress",
		Description: "Beautiful wedding dress",
		Tags:        []string{"Dress", "Wedding"},
	},
	model.CategoryHairstyles: {
		Title:       "Wedding Hairstyle",
		Description: "Stunning wedding hairstyle",
		Tags:        []string{"Hairstyle", "Wedding"},
	},
	model.CategoryCakes: {
		Title:       "Wedding Cake",
		Description: "Delicious wedding cake",
		Tags:        []string{"Cake", "Wedding"},
	},
}

// normalizeItems enforces the item contract regardless of source: image,
// title, description and tags present, default buttons, trimmed single-line
// description and a share URL.
func normalizeItems(category model.Category, items []model.MediaItem) []model.MediaItem {
	if len(items) > gallery.MaxItemsPerCarousel {
		items = items[:gallery.MaxItemsPerCarousel]
	}

	defaults := normalizeDefaults[category]

	out := make([]model.MediaItem, 0, len(items))
	for _, item := range items {
		if item.Image == "" {
			item.Image = fmt.Sprintf("https://example.com/%s.jpg", category)
		}
		if item.Title == "" {
			item.Title = defaults.Title
		}
		item.Description = normalizeDescription(item.Description)
		if item.Description == "" {
			item.Description = defaults.Description
		}
		if len(item.Tags) == 0 {
			item.Tags = append([]string(nil), defaults.Tags...)
		}
		if len(item.Buttons) == 0 {
			item.Buttons = append([]string(nil), gallery.DefaultButtons...)
		}
		if item.ShareURL == "" {
			item.ShareURL = fmt.Sprintf("https://sayyes.ai/share/%s/%s", category, util.Slugify(item.Title))
		}
		out = append(out, item)
	}
	return out
}

// normalizeDescription keeps only the text before the first newline or
// semicolon, trimmed. Sources sometimes duplicate the description after a
// separator.
func normalizeDescription(description string) string {
	description = strings.TrimSpace(description)
	if i := strings.Index(description, "\n"); i >= 0 {
		description = description[:i]
	}
	if i := strings.Index(description, ";"); i >= 0 {
		description = description[:i]
	}
	return strings.TrimSpace(description)
}

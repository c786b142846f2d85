package usecase

import (
	"context"
	"fmt"
	"strings"

	"sayyes-srv/internal/gallery"
	"sayyes-srv/internal/gallery/repository"
	"sayyes-srv/internal/model"
	"sayyes-srv/pkg/util"
)

// Curate builds the enriched media list for a category. Catalog failures and
// unknown categories degrade to an apologetic result; the error return is
// always nil and exists to satisfy future sources that cannot degrade.
func (uc *implUseCase) Curate(ctx context.Context, input gallery.CurateInput) (gallery.CurateOutput, error) {
	if !model.KnownCategory(input.Category) {
		uc.l.Warnf(ctx, "gallery.usecase.Curate: unknown category %q", input.Category)
		return gallery.CurateOutput{
			IntroText: fmt.Sprintf("I couldn't find any images for the category: %s", input.Category),
			Title:     collectionTitle(input.Category),
			Items:     []model.MediaItem{},
		}, nil
	}

	if uc.cache != nil {
		out, err := uc.cache.Get(ctx, input)
		if err == nil {
			return out, nil
		}
		if err != repository.ErrCacheMiss {
			uc.l.Warnf(ctx, "gallery.usecase.Curate: cache get failed: %v", err)
		}
	}

	items := uc.lookupMedia(ctx, input.Category)
	items = filterByStyle(items, input.Style)
	if input.Category == model.CategoryVenues {
		items = filterByLocation(items, input.Location)
	}
	items = normalizeItems(input.Category, items)

	out := gallery.CurateOutput{
		IntroText: introText(input),
		Title:     collectionTitle(input.Category),
		Items:     items,
	}

	if uc.cache != nil {
		if err := uc.cache.Save(ctx, input, out); err != nil {
			uc.l.Warnf(ctx, "gallery.usecase.Curate: cache save failed: %v", err)
		}
	}

	return out, nil
}

// lookupMedia walks the catalog chain. An error or empty result moves on to
// the next source; the sample sets guarantee a non-empty final answer for
// every known category.
func (uc *implUseCase) lookupMedia(ctx context.Context, category model.Category) []model.MediaItem {
	for _, catalog := range uc.catalogs {
		items, err := catalog.ListByCategory(ctx, category)
		if err != nil {
			uc.l.Warnf(ctx, "gallery.usecase.lookupMedia: catalog failed for %s: %v", category, err)
			continue
		}
		if len(items) > 0 {
			return items
		}
	}
	return sampleItems(category)
}

// filterByStyle keeps items whose tags contain the style, case-insensitive.
// An empty filtered set reverts to the unfiltered list.
func filterByStyle(items []model.MediaItem, style string) []model.MediaItem {
	if style == "" {
		return items
	}
	style = strings.ToLower(style)

	var filtered []model.MediaItem
	for _, item := range items {
		for _, tag := range item.Tags {
			if strings.ToLower(tag) == style {
				filtered = append(filtered, item)
				break
			}
		}
	}
	if len(filtered) == 0 {
		return items
	}
	return filtered
}

// filterByLocation keeps items whose location contains the requested
// location as a substring, with the same revert-on-empty rule.
func filterByLocation(items []model.MediaItem, location string) []model.MediaItem {
	if location == "" {
		return items
	}
	location = strings.ToLower(location)

	var filtered []model.MediaItem
	for _, item := range items {
		if strings.Contains(strings.ToLower(item.Location), location) {
			filtered = append(filtered, item)
		}
	}
	if len(filtered) == 0 {
		return items
	}
	return filtered
}

func introText(input gallery.CurateInput) string {
	parts := []string{"Here are some"}
	if input.Style != "" {
		parts = append(parts, strings.ToLower(input.Style))
	}
	parts = append(parts, string(input.Category))
	if input.Location != "" && input.Category == model.CategoryVenues {
		parts = append(parts, "in "+input.Location)
	}
	return strings.Join(parts, " ") + "!"
}

func collectionTitle(category model.Category) string {
	return util.CleanTitle(string(category)) + " Collection"
}

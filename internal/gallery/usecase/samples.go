package usecase

import "sayyes-srv/internal/model"

// Compiled-in sample sets, the last resort of the catalog chain. Returned
// fresh on every call so callers can mutate their copy.
func sampleItems(category model.Category) []model.MediaItem {
	switch category {
	case model.CategoryVenues:
		return []model.MediaItem{
			{
				Image:       "https://example.com/venue1.jpg",
				Title:       "The Grand Hall",
				Description: "Beautiful elegant wedding venue",
				Tags:        []string{"Elegant", "Ballroom"},
				Location:    "Austin, TX",
				Price:       "$$",
			},
			{
				Image:       "https://example.com/venue2.jpg",
				Title:       "Riverside Gardens",
				Description: "Stunning modern wedding space",
				Tags:        []string{"Modern", "Outdoor"},
				Location:    "Austin, TX",
				Price:       "$$",
			},
			{
				Image:       "https://example.com/venue3.jpg",
				Title:       "Hillside Vineyard",
				Description: "Charming rustic wedding location",
				Tags:        []string{"Rustic", "Outdoor"},
				Location:    "Napa, CA",
				Price:       "$$$",
			},
		}
	case model.CategoryDresses:
		return []model.MediaItem{
			{
				Image:       "https://example.com/dress1.jpg",
				Title:       "Lace A-Line Gown",
				Description: "Elegant wedding dress with lace details",
				Tags:        []string{"Elegant", "Lace"},
				Designer:    "Vera Wang",
				Price:       "$$$",
			},
			{
				Image:       "https://example.com/dress2.jpg",
				Title:       "Long Train Gown",
				Description: "Classic wedding gown with long train",
				Tags:        []string{"Classic", "Train"},
				Designer:    "Pronovias",
				Price:       "$$$",
			},
			{
				Image:       "https://example.com/dress3.jpg",
				Title:       "Minimalist Sheath",
				Description: "Modern minimalist wedding dress",
				Tags:        []string{"Modern", "Minimalist"},
				Designer:    "Stella McCartney",
				Price:       "$$$",
			},
		}
	case model.CategoryHairstyles:
		return []model.MediaItem{
			{
				Image:       "https://example.com/hair1.jpg",
				Title:       "Floral Updo",
				Description: "Elegant updo with floral accents",
				Tags:        []string{"Elegant", "Updo"},
			},
			{
				Image:       "https://example.com/hair2.jpg",
				Title:       "Loose Waves",
				Description: "Romantic loose waves with side braid",
				Tags:        []string{"Romantic", "Waves"},
			},
			{
				Image:       "https://example.com/hair3.jpg",
				Title:       "Sleek Chignon",
				Description: "Classic sleek chignon with veil",
				Tags:        []string{"Classic", "Chignon"},
			},
		}
	case model.CategoryCakes:
		return []model.MediaItem{
			{
				Image:       "https://example.com/cake1.jpg",
				Title:       "Three Tier Classic",
				Description: "Elegant three-tier wedding cake",
				Tags:        []string{"Elegant", "Tiered"},
				Price:       "$$$",
			},
			{
				Image:       "https://example.com/cake2.jpg",
				Title:       "Geometric Modern",
				Description: "Modern geometric design cake",
				Tags:        []string{"Modern", "Geometric"},
				Price:       "$$$",
			},
			{
				Image:       "https://example.com/cake3.jpg",
				Title:       "Naked Cake",
				Description: "Rustic naked cake with fresh flowers",
				Tags:        []string{"Rustic", "Floral"},
				Price:       "$$",
			},
		}
	}
	return nil
}

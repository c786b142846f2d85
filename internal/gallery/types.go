package gallery

import "sayyes-srv/internal/model"

const (
	// MaxItemsPerCarousel caps how many items one curation returns.
	MaxItemsPerCarousel = 10
)

// DefaultButtons are attached to every item missing its own button set.
var DefaultButtons = []string{"Love it", "Share", "Save"}

type CurateInput struct {
	Category model.Category
	Style    string
	Location string
}

// CurateOutput is what the curator hands back. Items is never nil and every
// item has image, title, description and tags filled in.
type CurateOutput struct {
	IntroText string            `json:"intro_text"`
	Title     string            `json:"title"`
	Items     []model.MediaItem `json:"items"`
}

// Carousel converts the output to the carousel shape used in turn responses.
func (o CurateOutput) Carousel() model.Carousel {
	return model.Carousel{Title: o.Title, Items: o.Items}
}

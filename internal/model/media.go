package model

// MediaItem is one curated entry in a carousel. Image, Title, Description
// and Tags are always populated before an item reaches a caller.
type MediaItem struct {
	Image       string   `json:"image"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Tags        []string `json:"tags"`
	Location    string   `json:"location,omitempty"`
	Price       string   `json:"price,omitempty"`
	Designer    string   `json:"designer,omitempty"`
	Buttons     []string `json:"buttons"`
	ShareURL    string   `json:"share_url"`
}

// Carousel is a titled, ordered list of media items.
type Carousel struct {
	Title string      `json:"title"`
	Items []MediaItem `json:"items"`
}

package http

import (
	"sayyes-srv/internal/gallery"
	"sayyes-srv/internal/model"
)

type galleryReq struct {
	Category string
	Style    string
	Location string
}

func (r galleryReq) toInput() gallery.CurateInput {
	return gallery.CurateInput{
		Category: model.Category(r.Category),
		Style:    r.Style,
		Location: r.Location,
	}
}

type galleryResp struct {
	Text     string         `json:"text"`
	Carousel model.Carousel `json:"carousel"`
}

func (h *handler) newGalleryResp(o gallery.CurateOutput) galleryResp {
	return galleryResp{
		Text:     o.IntroText,
		Carousel: o.Carousel(),
	}
}

package http

import "github.com/gin-gonic/gin"

func (h *handler) processGalleryRequest(c *gin.Context) (galleryReq, error) {
	req := galleryReq{
		Category: c.Query("category"),
		Style:    c.Query("style"),
		Location: c.Query("location"),
	}

	if req.Category == "" {
		return req, errCategoryRequired
	}
	return req, nil
}

package http

import (
	"sayyes-srv/pkg/response"

	"github.com/gin-gonic/gin"
)

// @Summary Curated wedding media by category
// @Description Return the enriched media list for a category with optional style and location filters
// @Tags Gallery
// @Produce json
// @Param category query string true "Category (venues, dresses, hairstyles, cakes)"
// @Param style query string false "Style filter (rustic, modern, bohemian, ...)"
// @Param location query string false "Location filter (venues only)"
// @Success 200 {object} galleryResp
// @Failure 400 {object} response.Resp
// @Failure 500 {object} response.Resp
// @Router /api/gallery [get]
func (h *handler) Gallery(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processGalleryRequest(c)
	if err != nil {
		h.l.Errorf(ctx, "gallery.delivery.http.Gallery: processGalleryRequest failed: %v", err)
		response.Error(c, err, h.discord)
		return
	}

	o, err := h.uc.Curate(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "gallery.delivery.http.Gallery: usecase Curate failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, h.newGalleryResp(o))
}

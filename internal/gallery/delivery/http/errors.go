package http

import (
	"errors"

	"sayyes-srv/internal/gallery"
	pkgErrors "sayyes-srv/pkg/errors"
)

var (
	errCategoryRequired = pkgErrors.NewHTTPError(400, "Category is required")
	errUnknownCategory  = pkgErrors.NewHTTPError(400, "Unknown category")
)

func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, gallery.ErrUnknownCategory):
		return errUnknownCategory
	default:
		return err
	}
}

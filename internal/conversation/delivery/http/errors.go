package http

import (
	"errors"

	"sayyes-srv/internal/conversation"
	pkgErrors "sayyes-srv/pkg/errors"
)

var (
	errMalformedBody   = pkgErrors.NewHTTPError(400, "Malformed request body")
	errMessageRequired = pkgErrors.NewHTTPError(400, "Missing message parameter or no valid user message in messages array")
)

func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, conversation.ErrMissingMessage):
		return errMessageRequired
	default:
		return err
	}
}

package http

import (
	"errors"
	"net/http"

	pkgErrors "conversational-assistant/pkg/errors"
)

var errMessageTooLong = errors.New("message is too long")

// mapError translates request errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, errMessageTooLong):
		return pkgErrors.NewHTTPError(http.StatusRequestEntityTooLarge, err.Error())
	default:
		return pkgErrors.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
}

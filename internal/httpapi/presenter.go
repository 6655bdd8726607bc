// Package httpapi exposes the shop services as a JSON API over Fiber.
package httpapi

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"shopManagement/internal/errs"
)

// ErrorResponse is the JSON body of every failed request.
type ErrorResponse struct {
	Message string `json:"message"`
}

func respond(c *fiber.Ctx, status int, v any) error {
	return c.Status(status).JSON(v)
}

func respondError(c *fiber.Ctx, status int, message string) error {
	return respond(c, status, ErrorResponse{Message: message})
}

// respondErr maps the failure taxonomy onto HTTP statuses. Anything outside
// the taxonomy is a 500 with a generic body.
func respondErr(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, errs.ErrInvalidInput):
		return respondError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, errs.ErrAuthenticationFailed):
		return respondError(c, http.StatusUnauthorized, err.Error())
	case errors.Is(err, errs.ErrPermissionDenied):
		return respondError(c, http.StatusForbidden, err.Error())
	case errors.Is(err, errs.ErrNotFound):
		return respondError(c, http.StatusNotFound, err.Error())
	case errors.Is(err, errs.ErrDuplicateUsername):
		return respondError(c, http.StatusConflict, err.Error())
	case errors.Is(err, errs.ErrEmptyCart):
		return respondError(c, http.StatusUnprocessableEntity, err.Error())
	default:
		return respondError(c, http.StatusInternalServerError, "internal error")
	}
}

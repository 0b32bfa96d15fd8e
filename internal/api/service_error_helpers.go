package api

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/brygady/internal/services"
)

// resolveServiceError maps service sentinels to a status and public message.
func resolveServiceError(err error) (int, string, bool) {
	switch {
	case errors.Is(err, services.ErrWorkerNotFound):
		return fiber.StatusNotFound, "worker not found", true
	case errors.Is(err, services.ErrForbidden),
		errors.Is(err, services.ErrNoBrigade),
		errors.Is(err, services.ErrUnknownRole):
		return fiber.StatusForbidden, "forbidden", true
	default:
		return fiber.StatusInternalServerError, "internal server error", false
	}
}

func (handler *Handler) respondServiceError(c *fiber.Ctx, err error) error {
	status, message, known := resolveServiceError(err)
	if !known {
		handler.log.Error().
			Err(err).
			Str("method", c.Method()).
			Str("path", c.Path()).
			Msg("request failed")
	}
	return apiError(c, status, message)
}

package api

import (
	"errors"
	"fmt"
	"html/template"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
)

// NewErrorHandler returns the fiber.ErrorHandler for errors that escape a
// handler: fiber errors keep their code, service sentinels are mapped, and
// anything else is logged and reported as a generic 500.
func NewErrorHandler(log zerolog.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		status, message := resolveError(err, log, c)
		if isHTMX(c) {
			c.Type("html", "utf-8")
			return c.Status(status).SendString(fmt.Sprintf("<div class=\"status-error\">%s</div>", template.HTMLEscapeString(message)))
		}
		return c.Status(status).JSON(fiber.Map{"error": message})
	}
}

func resolveError(err error, log zerolog.Logger, c *fiber.Ctx) (int, string) {
	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		return fiberErr.Code, fiberErr.Message
	}

	if status, message, known := resolveServiceError(err); known {
		return status, message
	}

	log.Error().
		Err(err).
		Str("method", c.Method()).
		Str("path", c.Path()).
		Msg("unhandled error")
	return fiber.StatusInternalServerError, "internal server error"
}

package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/brygady/internal/models"
)

func (handler *Handler) AuthRequired(c *fiber.Ctx) error {
	user, err := handler.authenticateRequest(c)
	if err != nil {
		if isHTMX(c) {
			c.Set("HX-Redirect", "/login")
			return c.SendStatus(fiber.StatusUnauthorized)
		}
		return c.Redirect("/login", fiber.StatusSeeOther)
	}

	c.Locals(contextUserKey, user)
	return c.Next()
}

// SzefOnly must run after AuthRequired.
func (handler *Handler) SzefOnly(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok || user.Role != models.RoleSzef {
		return apiError(c, fiber.StatusForbidden, "forbidden")
	}
	return c.Next()
}

package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/brygady/internal/models"
	"github.com/terraincognita07/brygady/internal/services"
)

const (
	authCookieName     = "brygady_auth"
	languageCookieName = "brygady_lang"
	flashCookieName    = "brygady_flash"
	contextUserKey     = "current_user"
	contextLanguageKey = "current_language"
	contextMessagesKey = "current_messages"
)

func currentUser(c *fiber.Ctx) (*models.User, bool) {
	user, ok := c.Locals(contextUserKey).(*models.User)
	return user, ok
}

// currentViewer resolves the authenticated user into the identity services
// act on.
func currentViewer(c *fiber.Ctx) (services.Viewer, error) {
	user, ok := currentUser(c)
	if !ok {
		return services.Viewer{}, services.ErrForbidden
	}
	return services.ResolveViewer(user)
}

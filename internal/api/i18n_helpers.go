package api

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

var errorMessageKeys = map[string]string{
	"invalid input":           "error.invalid_input",
	"invalid credentials":     "auth.error.invalid_credentials",
	"too many login attempts": "auth.error.too_many_login_attempts",
	"forbidden":               "error.forbidden",
	"worker not found":        "error.worker_not_found",
	"invalid date":            "error.invalid_date",
	"method not allowed":      "error.method_not_allowed",
	"htmx post required":      "error.htmx_post_required",
	"not found":               "not_found.title",
	"internal server error":   "error.internal",
}

func translateMessage(messages map[string]string, key string) string {
	if key == "" {
		return ""
	}
	if messages != nil {
		if value, ok := messages[key]; ok && strings.TrimSpace(value) != "" {
			return value
		}
	}
	return key
}

func errorTranslationKey(message string) string {
	key, ok := errorMessageKeys[strings.ToLower(strings.TrimSpace(message))]
	if !ok {
		return ""
	}
	return key
}

func currentLanguage(c *fiber.Ctx) string {
	language, ok := c.Locals(contextLanguageKey).(string)
	if !ok || strings.TrimSpace(language) == "" {
		return ""
	}
	return language
}

func currentMessages(c *fiber.Ctx) map[string]string {
	messages, ok := c.Locals(contextMessagesKey).(map[string]string)
	if !ok || messages == nil {
		return map[string]string{}
	}
	return messages
}

func (handler *Handler) requestLanguage(c *fiber.Ctx) string {
	language := currentLanguage(c)
	if language == "" {
		return handler.i18n.DefaultLanguage()
	}
	return language
}

func (handler *Handler) withTemplateDefaults(c *fiber.Ctx, data fiber.Map) fiber.Map {
	if data == nil {
		data = fiber.Map{}
	}

	if _, ok := data["Messages"]; !ok {
		data["Messages"] = currentMessages(c)
	}
	if _, ok := data["Lang"]; !ok {
		data["Lang"] = handler.requestLanguage(c)
	}
	if _, ok := data["Languages"]; !ok {
		data["Languages"] = handler.i18n.SupportedLanguages()
	}
	if _, ok := data["CurrentPath"]; !ok {
		data["CurrentPath"] = currentPathWithQuery(c)
	}
	if _, ok := data["CSRFToken"]; !ok {
		data["CSRFToken"] = csrfToken(c)
	}
	if _, ok := data["CurrentUser"]; !ok {
		if user, ok := currentUser(c); ok {
			data["CurrentUser"] = user
		}
	}

	return data
}

func currentPathWithQuery(c *fiber.Ctx) string {
	path := string(c.Request().URI().RequestURI())
	if path == "" {
		return c.Path()
	}
	return path
}

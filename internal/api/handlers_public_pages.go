package api

import (
	"net/url"

	"github.com/gofiber/fiber/v2"
)

// SetLanguage stores the chosen language and returns to the referring page.
func (handler *Handler) SetLanguage(c *fiber.Ctx) error {
	language := handler.i18n.NormalizeLanguage(c.Params("lang"))
	handler.setLanguageCookie(c, language)

	next := sanitizeRedirectPath(c.Query("next"), "")
	if next == "" {
		next = sanitizeRedirectPath(refererPath(c), "/")
	}
	return redirectOrHX(c, next)
}

// refererPath keeps only the path and query of a same-host referer.
func refererPath(c *fiber.Ctx) string {
	referer := c.Get(fiber.HeaderReferer)
	if referer == "" {
		return ""
	}
	parsed, err := url.Parse(referer)
	if err != nil || (parsed.Host != "" && parsed.Host != c.Hostname()) {
		return ""
	}
	return parsed.RequestURI()
}

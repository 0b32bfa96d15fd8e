package api

import (
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/brygady/internal/metrics"
	"github.com/terraincognita07/brygady/internal/services"
)

type credentialsInput struct {
	Username string `json:"username" form:"username"`
	Password string `json:"password" form:"password"`
}

// Root sends signed-in users to the dashboard and everyone else to login.
func (handler *Handler) Root(c *fiber.Ctx) error {
	if handler.optionalAuthenticatedUser(c) != nil {
		return c.Redirect("/dashboard/", fiber.StatusSeeOther)
	}
	return c.Redirect("/login", fiber.StatusSeeOther)
}

func (handler *Handler) ShowLoginPage(c *fiber.Ctx) error {
	if handler.optionalAuthenticatedUser(c) != nil {
		return c.Redirect("/dashboard/", fiber.StatusSeeOther)
	}
	return handler.renderLoginPage(c, handler.popFlashCookie(c))
}

func (handler *Handler) renderLoginPage(c *fiber.Ctx, flash FlashPayload) error {
	messages := currentMessages(c)
	return handler.render(c, "login", fiber.Map{
		"Title":         localizedPageTitle(messages, "meta.title.login", "Brygady | Logowanie"),
		"ErrorKey":      errorTranslationKey(flash.AuthError),
		"LoginUsername": flash.LoginUsername,
	})
}

func (handler *Handler) Login(c *fiber.Ctx) error {
	input := credentialsInput{}
	if err := c.BodyParser(&input); err != nil {
		return handler.respondLoginError(c, fiber.StatusBadRequest, "invalid input", "")
	}
	input.Username = services.NormalizeUsername(input.Username)

	limiterKey := requestLimiterKey(c)
	now := time.Now()
	if handler.loginLimiter.blocked(limiterKey, now) {
		return handler.respondLoginError(c, fiber.StatusTooManyRequests, "too many login attempts", input.Username)
	}

	handler.ensureDependencies()
	user, err := handler.authService.Authenticate(input.Username, input.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			handler.loginLimiter.recordFailure(limiterKey, now)
			metrics.LoginFailuresTotal.Inc()
			handler.log.Info().Str("username", input.Username).Str("ip", limiterKey).Msg("login rejected")
			return handler.respondLoginError(c, fiber.StatusUnauthorized, "invalid credentials", input.Username)
		}
		handler.log.Error().Err(err).Msg("login lookup failed")
		return apiError(c, fiber.StatusInternalServerError, "internal server error")
	}

	handler.loginLimiter.reset(limiterKey)
	if err := handler.setAuthCookie(c, &user); err != nil {
		handler.log.Error().Err(err).Msg("sign session token failed")
		return apiError(c, fiber.StatusInternalServerError, "internal server error")
	}
	return redirectOrHX(c, sanitizeRedirectPath(c.FormValue("next"), "/dashboard/"))
}

func (handler *Handler) Logout(c *fiber.Ctx) error {
	handler.clearAuthCookie(c)
	return redirectOrHX(c, "/login")
}

func (handler *Handler) respondLoginError(c *fiber.Ctx, status int, message string, username string) error {
	if acceptsJSON(c) || isHTMX(c) {
		return apiError(c, status, message)
	}
	flash := FlashPayload{AuthError: message, LoginUsername: strings.TrimSpace(username)}
	if status == fiber.StatusTooManyRequests {
		c.Set(fiber.HeaderRetryAfter, strconv.Itoa(int(loginAttemptsWindow.Seconds())))
		c.Status(status)
		return handler.renderLoginPage(c, normalizeFlashPayload(flash))
	}
	handler.setFlashCookie(c, flash)
	return c.Redirect("/login", fiber.StatusSeeOther)
}

package api

import (
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"github.com/terraincognita07/brygady/internal/i18n"
	"gorm.io/gorm"
)

func NewHandler(database *gorm.DB, secret string, templateDir string, location *time.Location, i18nManager *i18n.Manager, cookieSecure bool, log zerolog.Logger) (*Handler, error) {
	if location == nil {
		location = time.Local
	}
	if i18nManager == nil {
		return nil, errors.New("i18n manager is required")
	}

	funcMap := buildTemplateFuncMap()
	templates, err := parsePageTemplates(templateDir, funcMap, pageTemplates, partialTemplateFiles)
	if err != nil {
		return nil, err
	}
	partials, err := parsePartialTemplates(templateDir, funcMap, partialTemplateFiles)
	if err != nil {
		return nil, fmt.Errorf("parse partials: %w", err)
	}

	handler := &Handler{
		db:           database,
		secretKey:    []byte(secret),
		location:     location,
		cookieSecure: cookieSecure,
		i18n:         i18nManager,
		log:          log.With().Str("component", "http").Logger(),
		templates:    templates,
		partials:     partials,
		loginLimiter: newAttemptLimiter(loginAttemptsLimit, loginAttemptsWindow),
	}
	return handler.withDependencies(database), nil
}

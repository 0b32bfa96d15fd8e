package api

import (
	"html/template"
	"time"

	"github.com/rs/zerolog"
	"github.com/terraincognita07/brygady/internal/db"
	"github.com/terraincognita07/brygady/internal/i18n"
	"github.com/terraincognita07/brygady/internal/services"
	"gorm.io/gorm"
)

type Handler struct {
	db           *gorm.DB
	secretKey    []byte
	location     *time.Location
	cookieSecure bool
	i18n         *i18n.Manager
	log          zerolog.Logger
	templates    map[string]*template.Template
	partials     *template.Template
	loginLimiter *attemptLimiter

	repositories     *db.Repositories
	authService      *services.AuthService
	timesheetService *services.TimesheetService
	dashboardService *services.DashboardService
}

type FlashPayload struct {
	AuthError     string `json:"auth_error,omitempty"`
	LoginUsername string `json:"login_username,omitempty"`
}

const authTokenTTL = 12 * time.Hour

const (
	loginAttemptsLimit  = 8
	loginAttemptsWindow = 15 * time.Minute
)

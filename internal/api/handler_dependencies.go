package api

import (
	"github.com/terraincognita07/brygady/internal/db"
	"github.com/terraincognita07/brygady/internal/services"
	"gorm.io/gorm"
)

func (handler *Handler) withDependencies(database *gorm.DB) *Handler {
	handler.repositories = db.NewRepositories(database)
	handler.authService = services.NewAuthService(handler.repositories.Users)
	handler.timesheetService = services.NewTimesheetService(handler.repositories.Brigades, handler.repositories.TimeSheets)
	handler.dashboardService = services.NewDashboardService(handler.repositories.Brigades, handler.timesheetService)
	return handler
}

func (handler *Handler) ensureDependencies() {
	if handler.repositories == nil {
		if handler.db == nil {
			return
		}
		handler.repositories = db.NewRepositories(handler.db)
	}

	if handler.authService == nil {
		handler.authService = services.NewAuthService(handler.repositories.Users)
	}
	if handler.timesheetService == nil {
		handler.timesheetService = services.NewTimesheetService(handler.repositories.Brigades, handler.repositories.TimeSheets)
	}
	if handler.dashboardService == nil {
		handler.dashboardService = services.NewDashboardService(handler.repositories.Brigades, handler.timesheetService)
	}
}

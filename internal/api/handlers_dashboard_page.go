package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/brygady/internal/services"
)

// ShowDashboard swaps only the grid for HTMX callers. Other variants have no
// fragment, so HTMX callers are sent to a full page load instead.
func (handler *Handler) ShowDashboard(c *fiber.Ctx) error {
	viewer, err := currentViewer(c)
	if err != nil {
		return handler.respondServiceError(c, err)
	}

	handler.ensureDependencies()
	month := handler.requestedMonth(c)
	language := handler.requestLanguage(c)
	view, err := handler.dashboardService.Build(viewer, month, handler.i18n.MonthNames(language))
	if err != nil {
		return handler.respondServiceError(c, err)
	}

	messages := currentMessages(c)
	title := localizedPageTitle(messages, "meta.title.dashboard", "Brygady | Pulpit")

	switch dashboard := view.(type) {
	case services.SzefDashboard:
		if isHTMX(c) {
			return redirectOrHX(c, c.OriginalURL())
		}
		return handler.render(c, "dashboard_szef", fiber.Map{
			"Title":    title,
			"Brigades": dashboard.Brigades,
		})
	case services.ForemanDashboard:
		data := fiber.Map{
			"Title":   title,
			"Brigade": dashboard.Brigade,
			"Grid":    buildTimesheetGridView(dashboard.Grid, 0),
		}
		if isHTMX(c) {
			return handler.renderPartial(c, "timesheet_grid", data)
		}
		return handler.render(c, "dashboard", data)
	case services.UnassignedForemanDashboard:
		if isHTMX(c) {
			return redirectOrHX(c, c.OriginalURL())
		}
		return handler.render(c, "dashboard_unassigned", fiber.Map{
			"Title": title,
		})
	default:
		handler.log.Error().Str("view", "unknown").Msg("unhandled dashboard variant")
		return apiError(c, fiber.StatusInternalServerError, "internal server error")
	}
}

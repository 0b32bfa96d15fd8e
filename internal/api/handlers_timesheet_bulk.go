package api

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/brygady/internal/metrics"
	"github.com/terraincognita07/brygady/internal/services"
)

func (handler *Handler) GetBulkEditForm(c *fiber.Ctx) error {
	viewer, err := currentViewer(c)
	if err != nil {
		return handler.respondServiceError(c, err)
	}
	if _, err := viewer.ForemanBrigade(); err != nil {
		return handler.respondServiceError(c, err)
	}
	day, ok := routeCalendarDate(c)
	if !ok {
		return apiError(c, fiber.StatusBadRequest, "invalid date")
	}

	return handler.renderPartial(c, "timesheet_bulk_form", fiber.Map{
		"Year":      day.Year(),
		"Month":     int(day.Month()),
		"Day":       day.Day(),
		"FieldName": "hours_" + strconv.Itoa(day.Day()),
	})
}

// BulkSaveHours fills one day for every brigade worker that has no entry
// yet and answers with the re-rendered grid. Unparseable month, day or
// hours change nothing.
func (handler *Handler) BulkSaveHours(c *fiber.Ctx) error {
	if c.Method() != fiber.MethodPost || !isHTMX(c) {
		return apiError(c, fiber.StatusBadRequest, "htmx post required")
	}

	viewer, err := currentViewer(c)
	if err != nil {
		return handler.respondServiceError(c, err)
	}
	if _, err := viewer.ForemanBrigade(); err != nil {
		return handler.respondServiceError(c, err)
	}

	handler.ensureDependencies()
	month := handler.requestedMonth(c)
	target, targetOK := routeMonth(c)
	highlightDay := 0
	if dayNumber, ok := parseIntValue(c.FormValue("day")); ok && targetOK {
		if day, valid := services.CalendarDate(target.Year, target.Month, dayNumber); valid {
			inserted, err := handler.timesheetService.BulkFillDay(viewer, day, c.FormValue("hours_"+strconv.Itoa(dayNumber)))
			if err != nil {
				return handler.respondServiceError(c, err)
			}
			metrics.BulkFillRowsTotal.Add(float64(inserted))
			handler.log.Debug().
				Uint("user_id", viewer.UserID).
				Str("day", services.FormatISODate(day)).
				Int64("inserted", inserted).
				Msg("bulk fill applied")
			highlightDay = dayNumber
		}
	}

	grid, err := handler.timesheetService.LoadMonth(viewer, month, handler.i18n.MonthNames(handler.requestLanguage(c)))
	if err != nil {
		return handler.respondServiceError(c, err)
	}
	return handler.renderPartial(c, "timesheet_grid", fiber.Map{
		"Brigade": *viewer.Brigade,
		"Grid":    buildTimesheetGridView(grid, highlightDay),
	})
}

package api

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/brygady/internal/metrics"
	"github.com/terraincognita07/brygady/internal/services"
)

func (handler *Handler) GetEditForm(c *fiber.Ctx) error {
	viewer, err := currentViewer(c)
	if err != nil {
		return handler.respondServiceError(c, err)
	}
	workerID, ok := parseUintParam(c, "worker")
	if !ok {
		return apiError(c, fiber.StatusNotFound, "worker not found")
	}
	day, ok := routeCalendarDate(c)
	if !ok {
		return apiError(c, fiber.StatusBadRequest, "invalid date")
	}

	handler.ensureDependencies()
	cell, err := handler.timesheetService.LoadCell(viewer, workerID, day)
	if err != nil {
		return handler.respondServiceError(c, err)
	}
	return handler.renderPartial(c, "timesheet_edit_form", fiber.Map{
		"Cell":  cellViewFromState(cell),
		"Value": editFormValue(cell),
	})
}

// SaveHours is mounted for every verb so that anything but POST gets 405.
func (handler *Handler) SaveHours(c *fiber.Ctx) error {
	if c.Method() != fiber.MethodPost {
		c.Set(fiber.HeaderAllow, fiber.MethodPost)
		return apiError(c, fiber.StatusMethodNotAllowed, "method not allowed")
	}

	viewer, err := currentViewer(c)
	if err != nil {
		return handler.respondServiceError(c, err)
	}
	workerID, ok := parseUintParam(c, "worker")
	if !ok {
		return apiError(c, fiber.StatusNotFound, "worker not found")
	}

	handler.ensureDependencies()
	if _, err := handler.timesheetService.FindBrigadeWorker(viewer, workerID); err != nil {
		return handler.respondServiceError(c, err)
	}

	day, ok := services.ParseISODate(strings.TrimSpace(c.FormValue("date")))
	if !ok {
		metrics.TimesheetWritesTotal.WithLabelValues(metrics.OperationNoop).Inc()
		return c.SendStatus(fiber.StatusNoContent)
	}

	cell, outcome, err := handler.timesheetService.SaveHours(viewer, workerID, day, c.FormValue("hours"))
	if err != nil {
		return handler.respondServiceError(c, err)
	}
	metrics.TimesheetWritesTotal.WithLabelValues(saveOutcomeMetricLabel(outcome)).Inc()

	return handler.renderPartial(c, "timesheet_cell", fiber.Map{
		"Cell": cellViewFromState(cell),
	})
}

func saveOutcomeMetricLabel(outcome services.SaveOutcome) string {
	switch outcome {
	case services.SaveOutcomeUpserted:
		return metrics.OperationUpsert
	case services.SaveOutcomeDeleted:
		return metrics.OperationDelete
	default:
		return metrics.OperationNoop
	}
}

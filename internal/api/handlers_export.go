package api

import (
	"bytes"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/brygady/internal/services"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

func (handler *Handler) ExportMonth(c *fiber.Ctx) error {
	viewer, err := currentViewer(c)
	if err != nil {
		return handler.respondServiceError(c, err)
	}
	brigade, err := viewer.ForemanBrigade()
	if err != nil {
		return handler.respondServiceError(c, err)
	}

	handler.ensureDependencies()
	month := handler.requestedMonth(c)
	language := handler.requestLanguage(c)
	grid, err := handler.timesheetService.LoadMonth(viewer, month, handler.i18n.MonthNames(language))
	if err != nil {
		return handler.respondServiceError(c, err)
	}

	messages := currentMessages(c)
	labels := services.WorkbookLabels{
		Worker: localizedPageTitle(messages, "export.column.worker", "Worker"),
		Total:  localizedPageTitle(messages, "export.column.total", "Total"),
		Pay:    localizedPageTitle(messages, "export.column.pay", "Pay"),
	}

	var output bytes.Buffer
	if err := services.WriteTimesheetWorkbook(&output, brigade.Name, grid, labels); err != nil {
		return handler.respondServiceError(c, fmt.Errorf("build workbook: %w", err))
	}

	c.Set(fiber.HeaderContentType, xlsxContentType)
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="brygady-%d-%04d-%02d.xlsx"`, brigade.ID, month.Year, month.Month))
	return c.Send(output.Bytes())
}

package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/brygady/internal/services"
)

// Szef screens below the hub render fixture data only.

func (handler *Handler) ShowSzefHub(c *fiber.Ctx) error {
	return handler.renderSzefPage(c, "szef_hub", "meta.title.szef_hub", fiber.Map{})
}

func (handler *Handler) ShowSzefWorkers(c *fiber.Ctx) error {
	return handler.renderSzefPage(c, "szef_workers", "meta.title.szef_workers", fiber.Map{
		"Workers": services.PlaceholderWorkers(),
	})
}

func (handler *Handler) ShowSzefForemen(c *fiber.Ctx) error {
	handler.ensureDependencies()
	foremen, err := handler.repositories.Users.ListForemen()
	if err != nil {
		return handler.respondServiceError(c, err)
	}
	return handler.renderSzefPage(c, "szef_foremen", "meta.title.szef_foremen", fiber.Map{
		"Foremen": foremen,
	})
}

func (handler *Handler) ShowSzefBrigades(c *fiber.Ctx) error {
	handler.ensureDependencies()
	brigades, err := handler.repositories.Brigades.ListSummaries()
	if err != nil {
		return handler.respondServiceError(c, err)
	}
	return handler.renderSzefPage(c, "szef_brigades", "meta.title.szef_brigades", fiber.Map{
		"Brigades": brigades,
	})
}

func (handler *Handler) ShowSzefFinances(c *fiber.Ctx) error {
	return handler.renderSzefPage(c, "szef_finances", "meta.title.szef_finances", fiber.Map{
		"Ledger": services.PlaceholderLedger(),
	})
}

func (handler *Handler) ShowSzefHoursReport(c *fiber.Ctx) error {
	return handler.renderSzefPage(c, "szef_report_hours", "meta.title.szef_report_hours", fiber.Map{
		"Rows": services.PlaceholderHoursReport(),
	})
}

func (handler *Handler) ShowSzefPayrollReport(c *fiber.Ctx) error {
	return handler.renderSzefPage(c, "szef_report_payroll", "meta.title.szef_report_payroll", fiber.Map{
		"Rows": services.PlaceholderPayrollReport(),
	})
}

func (handler *Handler) renderSzefPage(c *fiber.Ctx, page string, titleKey string, data fiber.Map) error {
	data["Title"] = localizedPageTitle(currentMessages(c), titleKey, "Brygady")
	return handler.render(c, page, data)
}

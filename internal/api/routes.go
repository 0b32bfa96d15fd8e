package api

import "github.com/gofiber/fiber/v2"

func RegisterRoutes(app *fiber.App, handler *Handler) {
	app.Get("/healthz", handler.Health)
	app.Get("/lang/:lang", handler.SetLanguage)

	app.Get("/", handler.Root)
	app.Get("/login", handler.ShowLoginPage)
	app.Post("/login", handler.Login)
	app.Post("/logout", handler.Logout)

	registerForemanRoutes(app, handler)
	registerSzefRoutes(app, handler)
}

func registerForemanRoutes(app *fiber.App, handler *Handler) {
	app.Get("/dashboard", handler.AuthRequired, handler.ShowDashboard)
	app.Get("/dashboard/:year/:month", handler.AuthRequired, handler.ShowDashboard)

	app.Get("/get-edit-form/:worker/:year/:month/:day", handler.AuthRequired, handler.GetEditForm)
	app.All("/save-hours/:worker", handler.AuthRequired, handler.SaveHours)

	app.Get("/get-bulk-edit-form/:year/:month/:day", handler.AuthRequired, handler.GetBulkEditForm)
	app.All("/bulk-save-hours/:year/:month", handler.AuthRequired, handler.BulkSaveHours)

	app.Get("/export/:year/:month", handler.AuthRequired, handler.ExportMonth)
}

func registerSzefRoutes(app *fiber.App, handler *Handler) {
	szef := app.Group("/szef", handler.AuthRequired, handler.SzefOnly)
	szef.Get("/", handler.ShowSzefHub)
	szef.Get("/workers", handler.ShowSzefWorkers)
	szef.Get("/foremen", handler.ShowSzefForemen)
	szef.Get("/brigades", handler.ShowSzefBrigades)
	szef.Get("/finances", handler.ShowSzefFinances)
	szef.Get("/reports/hours", handler.ShowSzefHoursReport)
	szef.Get("/reports/payroll", handler.ShowSzefPayrollReport)
}

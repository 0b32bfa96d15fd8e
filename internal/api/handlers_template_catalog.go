package api

var pageTemplates = []string{
	"login",
	"dashboard",
	"dashboard_szef",
	"dashboard_unassigned",
	"szef_hub",
	"szef_workers",
	"szef_foremen",
	"szef_brigades",
	"szef_finances",
	"szef_report_hours",
	"szef_report_payroll",
	"not_found",
}

var partialTemplateFiles = []string{
	"timesheet_grid_partial.html",
	"timesheet_cell_partial.html",
	"timesheet_edit_form_partial.html",
	"timesheet_bulk_form_partial.html",
}

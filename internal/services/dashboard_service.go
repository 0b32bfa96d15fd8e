package services

import (
	"errors"

	"github.com/terraincognita07/brygady/internal/models"
)

var ErrBrigadeListFailed = errors.New("load brigades failed")

// DashboardView is implemented only by the variants below; callers switch
// on the concrete type.
type DashboardView interface {
	dashboardView()
}

type SzefDashboard struct {
	Brigades []models.BrigadeSummary
}

type ForemanDashboard struct {
	Brigade models.Brigade
	Grid    TimesheetMonth
}

type UnassignedForemanDashboard struct {
	Month MonthRef
}

func (SzefDashboard) dashboardView()              {}
func (ForemanDashboard) dashboardView()           {}
func (UnassignedForemanDashboard) dashboardView() {}

type DashboardBrigadeRepository interface {
	ListSummaries() ([]models.BrigadeSummary, error)
}

type DashboardService struct {
	brigades   DashboardBrigadeRepository
	timesheets *TimesheetService
}

func NewDashboardService(brigades DashboardBrigadeRepository, timesheets *TimesheetService) *DashboardService {
	return &DashboardService{
		brigades:   brigades,
		timesheets: timesheets,
	}
}

func (service *DashboardService) Build(viewer Viewer, month MonthRef, monthNames []string) (DashboardView, error) {
	switch viewer.Role {
	case models.RoleSzef:
		summaries, err := service.brigades.ListSummaries()
		if err != nil {
			return nil, ErrBrigadeListFailed
		}
		return SzefDashboard{Brigades: summaries}, nil
	case models.RoleBrygadzista:
		if viewer.Brigade == nil {
			return UnassignedForemanDashboard{Month: month}, nil
		}
		grid, err := service.timesheets.LoadMonth(viewer, month, monthNames)
		if err != nil {
			return nil, err
		}
		return ForemanDashboard{Brigade: *viewer.Brigade, Grid: grid}, nil
	default:
		return nil, ErrUnknownRole
	}
}

package api

import (
	"fmt"
	"strconv"
	"time"

	"github.com/terraincognita07/brygady/internal/models"
	"github.com/terraincognita07/brygady/internal/services"
)

type timesheetGridView struct {
	Year         int
	Month        int
	MonthName    string
	MonthOptions []monthOption
	Days         []timesheetDayHeader
	Rows         []timesheetRowView
	HighlightDay int
	PreviousPath string
	NextPath     string
	ExportPath   string
}

type monthOption struct {
	Number   int
	Name     string
	Selected bool
}

type timesheetDayHeader struct {
	Day          int
	Weekend      bool
	Highlighted  bool
	BulkFormPath string
}

type timesheetRowView struct {
	Worker models.Worker
	Cells  []timesheetCellView
	Total  int
}

type timesheetCellView struct {
	WorkerID    uint
	Day         int
	Date        string
	Label       string
	Highlighted bool
	EditPath    string
}

func dashboardMonthPath(month services.MonthRef) string {
	return fmt.Sprintf("/dashboard/%d/%d/", month.Year, month.Month)
}

func buildTimesheetGridView(grid services.TimesheetMonth, highlightDay int) timesheetGridView {
	month := grid.Month
	view := timesheetGridView{
		Year:         month.Year,
		Month:        month.Month,
		MonthName:    grid.MonthName,
		HighlightDay: highlightDay,
		PreviousPath: dashboardMonthPath(grid.Previous),
		NextPath:     dashboardMonthPath(grid.Next),
		ExportPath:   fmt.Sprintf("/export/%d/%d/", month.Year, month.Month),
	}

	for index, name := range grid.MonthNames {
		view.MonthOptions = append(view.MonthOptions, monthOption{
			Number:   index + 1,
			Name:     name,
			Selected: index+1 == month.Month,
		})
	}

	view.Days = make([]timesheetDayHeader, 0, len(grid.Days))
	for _, day := range grid.Days {
		weekday := time.Date(month.Year, time.Month(month.Month), day, 0, 0, 0, 0, time.UTC).Weekday()
		view.Days = append(view.Days, timesheetDayHeader{
			Day:          day,
			Weekend:      weekday == time.Saturday || weekday == time.Sunday,
			Highlighted:  day == highlightDay,
			BulkFormPath: fmt.Sprintf("/get-bulk-edit-form/%d/%d/%d/", month.Year, month.Month, day),
		})
	}

	view.Rows = make([]timesheetRowView, 0, len(grid.Workers))
	for _, worker := range grid.Workers {
		row := timesheetRowView{
			Worker: worker,
			Cells:  make([]timesheetCellView, 0, len(grid.Days)),
			Total:  grid.WorkerTotal(worker.ID),
		}
		for _, day := range grid.Days {
			hours, found := grid.HoursFor(worker.ID, day)
			cell := newTimesheetCellView(worker.ID, services.StorageDay(month.Year, time.Month(month.Month), day), hours, found)
			cell.Highlighted = day == highlightDay
			row.Cells = append(row.Cells, cell)
		}
		view.Rows = append(view.Rows, row)
	}
	return view
}

func newTimesheetCellView(workerID uint, day time.Time, hours int, found bool) timesheetCellView {
	return timesheetCellView{
		WorkerID: workerID,
		Day:      day.Day(),
		Date:     services.FormatISODate(day),
		Label:    services.HoursLabel(hours, found),
		EditPath: fmt.Sprintf("/get-edit-form/%d/%d/%d/%d/", workerID, day.Year(), int(day.Month()), day.Day()),
	}
}

func cellViewFromState(cell services.CellState) timesheetCellView {
	return newTimesheetCellView(cell.Worker.ID, cell.Day, cell.Hours, cell.Found)
}

// editFormValue is the pre-filled input value: blank when nothing is stored.
func editFormValue(cell services.CellState) string {
	if !cell.Found {
		return ""
	}
	return strconv.Itoa(cell.Hours)
}

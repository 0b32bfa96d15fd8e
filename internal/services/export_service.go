package services

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"
)

// WriteTimesheetWorkbook writes grid as an XLSX workbook: one row per
// worker, one column per day, then total hours and estimated pay.
func WriteTimesheetWorkbook(w io.Writer, brigadeName string, grid TimesheetMonth, labels WorkbookLabels) error {
	file := excelize.NewFile()
	defer file.Close()

	sheetName := fmt.Sprintf("%04d-%02d", grid.Month.Year, grid.Month.Month)
	index, err := file.NewSheet(sheetName)
	if err != nil {
		return fmt.Errorf("create sheet: %w", err)
	}
	file.SetActiveSheet(index)
	if err := file.DeleteSheet("Sheet1"); err != nil {
		return fmt.Errorf("drop default sheet: %w", err)
	}

	title := fmt.Sprintf("%s - %s %d", brigadeName, grid.MonthName, grid.Month.Year)
	if err := file.SetCellValue(sheetName, "A1", title); err != nil {
		return err
	}

	headers := make([]any, 0, len(grid.Days)+3)
	headers = append(headers, labels.Worker)
	for _, day := range grid.Days {
		headers = append(headers, day)
	}
	headers = append(headers, labels.Total, labels.Pay)
	if err := file.SetSheetRow(sheetName, "A3", &headers); err != nil {
		return fmt.Errorf("write header row: %w", err)
	}

	for rowIndex, worker := range grid.Workers {
		row := make([]any, 0, len(grid.Days)+3)
		row = append(row, worker.LastName+" "+worker.FirstName)
		for _, day := range grid.Days {
			if hours, ok := grid.HoursFor(worker.ID, day); ok {
				row = append(row, hours)
			} else {
				row = append(row, nil)
			}
		}
		total := grid.WorkerTotal(worker.ID)
		row = append(row, total, uint(total)*worker.HourlyRate)

		cell, err := excelize.CoordinatesToCellName(1, rowIndex+4)
		if err != nil {
			return err
		}
		if err := file.SetSheetRow(sheetName, cell, &row); err != nil {
			return fmt.Errorf("write worker row: %w", err)
		}
	}

	if err := file.SetColWidth(sheetName, "A", "A", 28); err != nil {
		return err
	}
	return file.Write(w)
}

type WorkbookLabels struct {
	Worker string
	Total  string
	Pay    string
}

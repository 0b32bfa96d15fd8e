package services

import (
	"errors"
	"time"

	"github.com/terraincognita07/brygady/internal/models"
)

var (
	ErrWorkerNotFound       = errors.New("worker not found")
	ErrTimesheetLoadFailed  = errors.New("load timesheet failed")
	ErrTimesheetSaveFailed  = errors.New("save timesheet failed")
	ErrBulkFillFailed       = errors.New("bulk fill failed")
	ErrBrigadeWorkersFailed = errors.New("load brigade workers failed")
)

type TimesheetBrigadeRepository interface {
	ListWorkers(brigadeID uint) ([]models.Worker, error)
	FindWorker(brigadeID uint, workerID uint) (models.Worker, bool, error)
}

type TimesheetEntryRepository interface {
	ListByWorkersInRange(workerIDs []uint, fromStart time.Time, toEnd time.Time) ([]models.TimeSheet, error)
	FindByWorkerAndDayRange(workerID uint, dayStart time.Time, dayEnd time.Time) (models.TimeSheet, bool, error)
	UpsertHours(workerID uint, day time.Time, hours int) (models.TimeSheet, error)
	DeleteByWorkerAndDayRange(workerID uint, dayStart time.Time, dayEnd time.Time) (int64, error)
	ListBrigadeWorkersMissingDay(brigadeID uint, dayStart time.Time, dayEnd time.Time) ([]uint, error)
	InsertIgnoringConflicts(entries []models.TimeSheet) (int64, error)
}

// SaveOutcome says what a single-cell save did to storage.
type SaveOutcome string

const (
	SaveOutcomeUpserted SaveOutcome = "upsert"
	SaveOutcomeDeleted  SaveOutcome = "delete"
	SaveOutcomeIgnored  SaveOutcome = "noop"
)

// CellState is the value a calendar cell shows after a read or write.
type CellState struct {
	Worker models.Worker
	Day    time.Time
	Hours  int
	Found  bool
}

func (cell CellState) Label() string {
	return HoursLabel(cell.Hours, cell.Found)
}

type TimesheetService struct {
	brigades TimesheetBrigadeRepository
	entries  TimesheetEntryRepository
}

func NewTimesheetService(brigades TimesheetBrigadeRepository, entries TimesheetEntryRepository) *TimesheetService {
	return &TimesheetService{
		brigades: brigades,
		entries:  entries,
	}
}

// LoadMonth builds the viewer's brigade grid for month.
func (service *TimesheetService) LoadMonth(viewer Viewer, month MonthRef, monthNames []string) (TimesheetMonth, error) {
	brigade, err := viewer.ForemanBrigade()
	if err != nil {
		return TimesheetMonth{}, err
	}
	return service.LoadBrigadeMonth(brigade.ID, month, monthNames)
}

func (service *TimesheetService) LoadBrigadeMonth(brigadeID uint, month MonthRef, monthNames []string) (TimesheetMonth, error) {
	workers, err := service.brigades.ListWorkers(brigadeID)
	if err != nil {
		return TimesheetMonth{}, ErrBrigadeWorkersFailed
	}

	workerIDs := make([]uint, 0, len(workers))
	for _, worker := range workers {
		workerIDs = append(workerIDs, worker.ID)
	}

	monthStart := month.Start()
	entries, err := service.entries.ListByWorkersInRange(workerIDs, monthStart, monthStart.AddDate(0, 0, month.DaysInMonth()))
	if err != nil {
		return TimesheetMonth{}, ErrTimesheetLoadFailed
	}

	return BuildTimesheetMonth(month, workers, entries, monthNames), nil
}

// FindBrigadeWorker resolves workerID within the viewer's brigade.
func (service *TimesheetService) FindBrigadeWorker(viewer Viewer, workerID uint) (models.Worker, error) {
	brigade, err := viewer.ForemanBrigade()
	if err != nil {
		return models.Worker{}, err
	}
	worker, found, err := service.brigades.FindWorker(brigade.ID, workerID)
	if err != nil {
		return models.Worker{}, ErrTimesheetLoadFailed
	}
	if !found {
		return models.Worker{}, ErrWorkerNotFound
	}
	return worker, nil
}

func (service *TimesheetService) LoadCell(viewer Viewer, workerID uint, day time.Time) (CellState, error) {
	worker, err := service.FindBrigadeWorker(viewer, workerID)
	if err != nil {
		return CellState{}, err
	}
	return service.loadCell(worker, day)
}

func (service *TimesheetService) loadCell(worker models.Worker, day time.Time) (CellState, error) {
	dayStart, dayEnd := DayRange(day)
	entry, found, err := service.entries.FindByWorkerAndDayRange(worker.ID, dayStart, dayEnd)
	if err != nil {
		return CellState{}, ErrTimesheetLoadFailed
	}
	return CellState{
		Worker: worker,
		Day:    dayStart,
		Hours:  entry.HoursWorked,
		Found:  found,
	}, nil
}

// SaveHours applies a single-cell edit. Blank input clears the cell; input
// that is not a non-negative integer leaves storage untouched and the
// returned cell reflects what is stored.
func (service *TimesheetService) SaveHours(viewer Viewer, workerID uint, day time.Time, rawHours string) (CellState, SaveOutcome, error) {
	worker, err := service.FindBrigadeWorker(viewer, workerID)
	if err != nil {
		return CellState{}, SaveOutcomeIgnored, err
	}

	dayStart, dayEnd := DayRange(day)
	if IsBlankHours(rawHours) {
		if _, err := service.entries.DeleteByWorkerAndDayRange(worker.ID, dayStart, dayEnd); err != nil {
			return CellState{}, SaveOutcomeIgnored, ErrTimesheetSaveFailed
		}
		return CellState{Worker: worker, Day: dayStart}, SaveOutcomeDeleted, nil
	}

	hours, ok := ParseHours(rawHours)
	if !ok {
		cell, err := service.loadCell(worker, dayStart)
		return cell, SaveOutcomeIgnored, err
	}

	entry, err := service.entries.UpsertHours(worker.ID, dayStart, hours)
	if err != nil {
		return CellState{}, SaveOutcomeIgnored, ErrTimesheetSaveFailed
	}
	return CellState{
		Worker: worker,
		Day:    dayStart,
		Hours:  entry.HoursWorked,
		Found:  true,
	}, SaveOutcomeUpserted, nil
}

// BulkFillDay gives every brigade worker without a row on day a new row with
// rawHours. Existing rows are never changed. Unparseable hours insert nothing.
func (service *TimesheetService) BulkFillDay(viewer Viewer, day time.Time, rawHours string) (int64, error) {
	brigade, err := viewer.ForemanBrigade()
	if err != nil {
		return 0, err
	}

	hours, ok := ParseHours(rawHours)
	if !ok {
		return 0, nil
	}

	dayStart, dayEnd := DayRange(day)
	missing, err := service.entries.ListBrigadeWorkersMissingDay(brigade.ID, dayStart, dayEnd)
	if err != nil {
		return 0, ErrBulkFillFailed
	}

	now := time.Now().UTC()
	entries := make([]models.TimeSheet, 0, len(missing))
	for _, workerID := range missing {
		entries = append(entries, models.TimeSheet{
			WorkerID:    workerID,
			Date:        dayStart,
			HoursWorked: hours,
			CreatedAt:   now,
			UpdatedAt:   now,
		})
	}

	inserted, err := service.entries.InsertIgnoringConflicts(entries)
	if err != nil {
		return 0, ErrBulkFillFailed
	}
	return inserted, nil
}

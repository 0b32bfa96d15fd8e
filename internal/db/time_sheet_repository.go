package db

import (
	"time"

	"github.com/terraincognita07/brygady/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type TimeSheetRepository struct {
	database *gorm.DB
}

func NewTimeSheetRepository(database *gorm.DB) *TimeSheetRepository {
	return &TimeSheetRepository{database: database}
}

func (repo *TimeSheetRepository) ListByWorkersInRange(workerIDs []uint, fromStart time.Time, toEnd time.Time) ([]models.TimeSheet, error) {
	entries := make([]models.TimeSheet, 0)
	if len(workerIDs) == 0 {
		return entries, nil
	}
	if err := repo.database.
		Where("worker_id IN ? AND date >= ? AND date < ?", workerIDs, fromStart, toEnd).
		Order("date ASC, worker_id ASC").
		Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

func (repo *TimeSheetRepository) FindByWorkerAndDayRange(workerID uint, dayStart time.Time, dayEnd time.Time) (models.TimeSheet, bool, error) {
	entry := models.TimeSheet{}
	result := repo.database.
		Where("worker_id = ? AND date >= ? AND date < ?", workerID, dayStart, dayEnd).
		Order("date DESC, id DESC").
		Limit(1).
		Find(&entry)
	if result.Error != nil {
		return models.TimeSheet{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return models.TimeSheet{}, false, nil
	}
	return entry, true, nil
}

// UpsertHours creates the (worker, day) row or overwrites its hours.
func (repo *TimeSheetRepository) UpsertHours(workerID uint, day time.Time, hours int) (models.TimeSheet, error) {
	now := time.Now().UTC()
	entry := models.TimeSheet{
		WorkerID:    workerID,
		Date:        day,
		HoursWorked: hours,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	err := repo.database.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "worker_id"}, {Name: "date"}},
		DoUpdates: clause.Assignments(map[string]any{
			"hours_worked": hours,
			"updated_at":   now,
		}),
	}).Create(&entry).Error
	if err != nil {
		return models.TimeSheet{}, err
	}
	return entry, nil
}

func (repo *TimeSheetRepository) DeleteByWorkerAndDayRange(workerID uint, dayStart time.Time, dayEnd time.Time) (int64, error) {
	result := repo.database.
		Where("worker_id = ? AND date >= ? AND date < ?", workerID, dayStart, dayEnd).
		Delete(&models.TimeSheet{})
	return result.RowsAffected, result.Error
}

// ListBrigadeWorkersMissingDay returns ids of brigade workers without a row
// in [dayStart, dayEnd).
func (repo *TimeSheetRepository) ListBrigadeWorkersMissingDay(brigadeID uint, dayStart time.Time, dayEnd time.Time) ([]uint, error) {
	workerIDs := make([]uint, 0)
	err := repo.database.
		Table("brigade_workers").
		Where("brigade_workers.brigade_id = ?", brigadeID).
		Where(`NOT EXISTS (
			SELECT 1 FROM time_sheets
			WHERE time_sheets.worker_id = brigade_workers.worker_id
			AND time_sheets.date >= ? AND time_sheets.date < ?)`, dayStart, dayEnd).
		Order("brigade_workers.worker_id ASC").
		Pluck("brigade_workers.worker_id", &workerIDs).Error
	if err != nil {
		return nil, err
	}
	return workerIDs, nil
}

// InsertIgnoringConflicts inserts entries as one batch; rows that collide
// with an existing (worker, date) are dropped. Returns the inserted count.
func (repo *TimeSheetRepository) InsertIgnoringConflicts(entries []models.TimeSheet) (int64, error) {
	if len(entries) == 0 {
		return 0, nil
	}
	result := repo.database.Clauses(clause.OnConflict{DoNothing: true}).Create(&entries)
	return result.RowsAffected, result.Error
}

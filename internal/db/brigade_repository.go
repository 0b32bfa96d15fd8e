package db

import (
	"errors"
	"time"

	"github.com/terraincognita07/brygady/internal/models"
	"gorm.io/gorm"
)

type BrigadeRepository struct {
	database *gorm.DB
}

func NewBrigadeRepository(database *gorm.DB) *BrigadeRepository {
	return &BrigadeRepository{database: database}
}

func (repo *BrigadeRepository) FindByName(name string) (models.Brigade, bool, error) {
	brigade := models.Brigade{}
	result := repo.database.Where("name = ?", name).Limit(1).Find(&brigade)
	if result.Error != nil {
		return models.Brigade{}, false, result.Error
	}
	return brigade, result.RowsAffected > 0, nil
}

func (repo *BrigadeRepository) FindOrCreateByName(name string) (models.Brigade, error) {
	brigade, found, err := repo.FindByName(name)
	if err != nil {
		return models.Brigade{}, err
	}
	if found {
		return brigade, nil
	}

	brigade = models.Brigade{Name: name, CreatedAt: time.Now().UTC()}
	if err := repo.database.Create(&brigade).Error; err != nil {
		return models.Brigade{}, err
	}
	return brigade, nil
}

func (repo *BrigadeRepository) ListSummaries() ([]models.BrigadeSummary, error) {
	summaries := make([]models.BrigadeSummary, 0)
	err := repo.database.
		Table("brigades").
		Select(`brigades.id AS id,
			brigades.name AS name,
			COUNT(brigade_workers.worker_id) AS worker_count,
			COALESCE((SELECT users.username FROM users
				WHERE users.brigade_id = brigades.id AND users.role = ?
				ORDER BY users.id LIMIT 1), '') AS foreman_username`, string(models.RoleBrygadzista)).
		Joins("LEFT JOIN brigade_workers ON brigade_workers.brigade_id = brigades.id").
		Group("brigades.id").
		Order("brigades.name ASC").
		Scan(&summaries).Error
	if err != nil {
		return nil, err
	}
	return summaries, nil
}

// ListWorkers returns the brigade's workers ordered by last name, first name.
func (repo *BrigadeRepository) ListWorkers(brigadeID uint) ([]models.Worker, error) {
	workers := make([]models.Worker, 0)
	if err := repo.database.
		Joins("JOIN brigade_workers ON brigade_workers.worker_id = workers.id").
		Where("brigade_workers.brigade_id = ?", brigadeID).
		Order("workers.last_name ASC, workers.first_name ASC, workers.id ASC").
		Find(&workers).Error; err != nil {
		return nil, err
	}
	return workers, nil
}

func (repo *BrigadeRepository) FindWorker(brigadeID uint, workerID uint) (models.Worker, bool, error) {
	worker := models.Worker{}
	result := repo.database.
		Joins("JOIN brigade_workers ON brigade_workers.worker_id = workers.id").
		Where("brigade_workers.brigade_id = ? AND workers.id = ?", brigadeID, workerID).
		Limit(1).
		Find(&worker)
	if result.Error != nil {
		return models.Worker{}, false, result.Error
	}
	return worker, result.RowsAffected > 0, nil
}

// AddWorker creates worker and links it to the brigade in one transaction.
func (repo *BrigadeRepository) AddWorker(brigadeID uint, worker *models.Worker) error {
	if worker == nil {
		return errors.New("worker is required")
	}
	return repo.database.Transaction(func(tx *gorm.DB) error {
		if worker.CreatedAt.IsZero() {
			worker.CreatedAt = time.Now().UTC()
		}
		if err := tx.Omit("Brigades").Create(worker).Error; err != nil {
			return err
		}
		return tx.Exec(
			`INSERT INTO brigade_workers(brigade_id, worker_id) VALUES (?, ?) ON CONFLICT DO NOTHING`,
			brigadeID,
			worker.ID,
		).Error
	})
}

package models

import (
	"strings"
	"time"
)

type Brigade struct {
	ID        uint      `gorm:"primaryKey"`
	Name      string    `gorm:"uniqueIndex;not null"`
	Workers   []Worker  `gorm:"many2many:brigade_workers;"`
	CreatedAt time.Time `gorm:"not null"`
}

type Worker struct {
	ID         uint      `gorm:"primaryKey"`
	FirstName  string    `gorm:"not null"`
	LastName   string    `gorm:"not null"`
	HourlyRate uint      `gorm:"not null;default:0"`
	Brigades   []Brigade `gorm:"many2many:brigade_workers;"`
	CreatedAt  time.Time `gorm:"not null"`
}

func (worker Worker) FullName() string {
	return strings.TrimSpace(worker.FirstName + " " + worker.LastName)
}

// BrigadeSummary is a read model for brigade listings.
type BrigadeSummary struct {
	ID              uint
	Name            string
	WorkerCount     int64
	ForemanUsername string
}

package models

import "time"

// TimeSheet is the hours fact for one worker on one calendar day.
// Date is always stored as UTC midnight so (worker_id, date) stays unique.
type TimeSheet struct {
	ID          uint      `gorm:"primaryKey"`
	WorkerID    uint      `gorm:"not null;uniqueIndex:uidx_worker_date"`
	Date        time.Time `gorm:"type:date;not null;uniqueIndex:uidx_worker_date"`
	HoursWorked int       `gorm:"not null;default:0"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

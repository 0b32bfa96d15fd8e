package db

import "gorm.io/gorm"

type Repositories struct {
	Users      *UserRepository
	Brigades   *BrigadeRepository
	TimeSheets *TimeSheetRepository
}

func NewRepositories(database *gorm.DB) *Repositories {
	return &Repositories{
		Users:      NewUserRepository(database),
		Brigades:   NewBrigadeRepository(database),
		TimeSheets: NewTimeSheetRepository(database),
	}
}

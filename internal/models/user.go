package models

import "time"

type Role string

const (
	RoleSzef        Role = "SZEF"
	RoleBrygadzista Role = "BRYGADZISTA"
)

func ParseRole(raw string) (Role, bool) {
	switch Role(raw) {
	case RoleSzef:
		return RoleSzef, true
	case RoleBrygadzista:
		return RoleBrygadzista, true
	default:
		return "", false
	}
}

type User struct {
	ID                 uint      `gorm:"primaryKey"`
	Username           string    `gorm:"uniqueIndex;not null"`
	PasswordHash       string    `gorm:"not null"`
	Role               Role      `gorm:"not null;default:BRYGADZISTA"`
	BrigadeID          *uint     `gorm:"index"`
	Brigade            *Brigade  `gorm:"foreignKey:BrigadeID"`
	MustChangePassword bool      `gorm:"not null;default:false"`
	CreatedAt          time.Time `gorm:"not null"`
}

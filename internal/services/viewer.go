package services

import (
	"errors"

	"github.com/terraincognita07/brygady/internal/models"
)

var (
	ErrForbidden   = errors.New("forbidden")
	ErrNoBrigade   = errors.New("foreman has no brigade")
	ErrUnknownRole = errors.New("unknown role")
)

// Viewer is the resolved identity a request acts as. Brigade is set only for
// foremen with an assigned brigade.
type Viewer struct {
	UserID   uint
	Username string
	Role     models.Role
	Brigade  *models.Brigade
}

func ResolveViewer(user *models.User) (Viewer, error) {
	if user == nil {
		return Viewer{}, ErrForbidden
	}

	viewer := Viewer{
		UserID:   user.ID,
		Username: user.Username,
		Role:     user.Role,
	}
	switch user.Role {
	case models.RoleSzef:
		return viewer, nil
	case models.RoleBrygadzista:
		if user.Brigade != nil && user.Brigade.ID != 0 {
			brigade := *user.Brigade
			viewer.Brigade = &brigade
		}
		return viewer, nil
	default:
		return Viewer{}, ErrUnknownRole
	}
}

func (viewer Viewer) IsSzef() bool {
	return viewer.Role == models.RoleSzef
}

// ForemanBrigade returns the brigade a foreman may write to.
func (viewer Viewer) ForemanBrigade() (models.Brigade, error) {
	switch viewer.Role {
	case models.RoleBrygadzista:
		if viewer.Brigade == nil {
			return models.Brigade{}, ErrNoBrigade
		}
		return *viewer.Brigade, nil
	case models.RoleSzef:
		return models.Brigade{}, ErrForbidden
	default:
		return models.Brigade{}, ErrUnknownRole
	}
}

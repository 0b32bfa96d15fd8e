package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/terraincognita07/brygady/internal/models"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrUsernameTaken = errors.New("username already exists")
	ErrUserNotFound  = errors.New("user not found")
)

type AdminUserRepository interface {
	ExistsByUsername(username string) (bool, error)
	FindByUsername(username string) (models.User, error)
	Create(user *models.User) error
	UpdatePassword(userID uint, passwordHash string, mustChangePassword bool) error
}

type AdminBrigadeRepository interface {
	FindOrCreateByName(name string) (models.Brigade, error)
	AddWorker(brigadeID uint, worker *models.Worker) error
}

type CreateUserInput struct {
	Username string `validate:"required,min=3,max=150,alphanumunicode"`
	Password string `validate:"required,min=8"`
	Role     string `validate:"required,oneof=SZEF BRYGADZISTA"`
	Brigade  string `validate:"omitempty,max=100"`
}

type AddWorkerInput struct {
	FirstName  string `validate:"required,max=100"`
	LastName   string `validate:"required,max=100"`
	HourlyRate int    `validate:"gte=0"`
	Brigade    string `validate:"required,max=100"`
}

// AdminService backs the command-line administration tool.
type AdminService struct {
	users    AdminUserRepository
	brigades AdminBrigadeRepository
	validate *validator.Validate
}

func NewAdminService(users AdminUserRepository, brigades AdminBrigadeRepository) *AdminService {
	return &AdminService{
		users:    users,
		brigades: brigades,
		validate: validator.New(),
	}
}

func (service *AdminService) CreateUser(input CreateUserInput) (models.User, error) {
	input.Username = NormalizeUsername(input.Username)
	input.Role = strings.ToUpper(strings.TrimSpace(input.Role))
	input.Brigade = strings.TrimSpace(input.Brigade)
	if err := service.validateInput(input); err != nil {
		return models.User{}, err
	}
	role, _ := models.ParseRole(input.Role)

	exists, err := service.users.ExistsByUsername(input.Username)
	if err != nil {
		return models.User{}, fmt.Errorf("check username: %w", err)
	}
	if exists {
		return models.User{}, ErrUsernameTaken
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return models.User{}, fmt.Errorf("hash password: %w", err)
	}

	user := models.User{
		Username:     input.Username,
		PasswordHash: string(passwordHash),
		Role:         role,
		CreatedAt:    time.Now().UTC(),
	}
	if role == models.RoleBrygadzista && input.Brigade != "" {
		brigade, err := service.brigades.FindOrCreateByName(input.Brigade)
		if err != nil {
			return models.User{}, fmt.Errorf("resolve brigade: %w", err)
		}
		user.BrigadeID = &brigade.ID
		user.Brigade = &brigade
	}

	if err := service.users.Create(&user); err != nil {
		return models.User{}, fmt.Errorf("create user: %w", err)
	}
	return user, nil
}

func (service *AdminService) AddWorker(input AddWorkerInput) (models.Worker, error) {
	input.FirstName = strings.TrimSpace(input.FirstName)
	input.LastName = strings.TrimSpace(input.LastName)
	input.Brigade = strings.TrimSpace(input.Brigade)
	if err := service.validateInput(input); err != nil {
		return models.Worker{}, err
	}

	brigade, err := service.brigades.FindOrCreateByName(input.Brigade)
	if err != nil {
		return models.Worker{}, fmt.Errorf("resolve brigade: %w", err)
	}

	worker := models.Worker{
		FirstName:  input.FirstName,
		LastName:   input.LastName,
		HourlyRate: uint(input.HourlyRate),
	}
	if err := service.brigades.AddWorker(brigade.ID, &worker); err != nil {
		return models.Worker{}, fmt.Errorf("add worker: %w", err)
	}
	return worker, nil
}

// ResetPassword stores passwordHash and flags the account for a password change.
func (service *AdminService) ResetPassword(username string, password string) (models.User, error) {
	user, err := service.users.FindByUsername(NormalizeUsername(username))
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.User{}, ErrUserNotFound
	}
	if err != nil {
		return models.User{}, fmt.Errorf("load user: %w", err)
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return models.User{}, fmt.Errorf("hash password: %w", err)
	}
	if err := service.users.UpdatePassword(user.ID, string(passwordHash), true); err != nil {
		return models.User{}, fmt.Errorf("update password: %w", err)
	}
	user.PasswordHash = string(passwordHash)
	user.MustChangePassword = true
	return user, nil
}

func (service *AdminService) validateInput(input any) error {
	if err := service.validate.Struct(input); err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			messages := make([]string, 0, len(validationErrors))
			for _, fieldErr := range validationErrors {
				messages = append(messages, validationMessage(fieldErr))
			}
			return fmt.Errorf("invalid input: %s", strings.Join(messages, "; "))
		}
		return err
	}
	return nil
}

func validationMessage(fieldErr validator.FieldError) string {
	field := strings.ToLower(fieldErr.Field())
	switch fieldErr.Tag() {
	case "required":
		return field + " is required"
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", field, fieldErr.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", field, fieldErr.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, fieldErr.Param())
	case "gte":
		return fmt.Sprintf("%s must be at least %s", field, fieldErr.Param())
	default:
		return fmt.Sprintf("%s failed validation (%s)", field, fieldErr.Tag())
	}
}

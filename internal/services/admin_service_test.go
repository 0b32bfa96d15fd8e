package services

import (
	"errors"
	"strings"
	"testing"

	"github.com/terraincognita07/brygady/internal/models"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type adminUserRepositoryStub struct {
	users  map[string]models.User
	nextID uint
}

func newAdminUserRepositoryStub() *adminUserRepositoryStub {
	return &adminUserRepositoryStub{users: make(map[string]models.User), nextID: 1}
}

func (stub *adminUserRepositoryStub) ExistsByUsername(username string) (bool, error) {
	_, ok := stub.users[username]
	return ok, nil
}

func (stub *adminUserRepositoryStub) FindByUsername(username string) (models.User, error) {
	user, ok := stub.users[username]
	if !ok {
		return models.User{}, gorm.ErrRecordNotFound
	}
	return user, nil
}

func (stub *adminUserRepositoryStub) FindByID(userID uint) (models.User, error) {
	for _, user := range stub.users {
		if user.ID == userID {
			return user, nil
		}
	}
	return models.User{}, gorm.ErrRecordNotFound
}

func (stub *adminUserRepositoryStub) Create(user *models.User) error {
	user.ID = stub.nextID
	stub.nextID++
	stub.users[user.Username] = *user
	return nil
}

func (stub *adminUserRepositoryStub) UpdatePassword(userID uint, passwordHash string, mustChangePassword bool) error {
	for username, user := range stub.users {
		if user.ID == userID {
			user.PasswordHash = passwordHash
			user.MustChangePassword = mustChangePassword
			stub.users[username] = user
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

type adminBrigadeRepositoryStub struct {
	brigades map[string]models.Brigade
	workers  map[uint][]models.Worker
}

func newAdminBrigadeRepositoryStub() *adminBrigadeRepositoryStub {
	return &adminBrigadeRepositoryStub{
		brigades: make(map[string]models.Brigade),
		workers:  make(map[uint][]models.Worker),
	}
}

func (stub *adminBrigadeRepositoryStub) FindOrCreateByName(name string) (models.Brigade, error) {
	if brigade, ok := stub.brigades[name]; ok {
		return brigade, nil
	}
	brigade := models.Brigade{ID: uint(len(stub.brigades) + 1), Name: name}
	stub.brigades[name] = brigade
	return brigade, nil
}

func (stub *adminBrigadeRepositoryStub) AddWorker(brigadeID uint, worker *models.Worker) error {
	worker.ID = uint(len(stub.workers[brigadeID]) + 100)
	stub.workers[brigadeID] = append(stub.workers[brigadeID], *worker)
	return nil
}

func TestAdminCreateUserAssignsForemanBrigade(t *testing.T) {
	users := newAdminUserRepositoryStub()
	brigades := newAdminBrigadeRepositoryStub()
	service := NewAdminService(users, brigades)

	user, err := service.CreateUser(CreateUserInput{
		Username: " Adam ",
		Password: "Secret123",
		Role:     "brygadzista",
		Brigade:  "Brygada A",
	})
	if err != nil {
		t.Fatalf("CreateUser() unexpected error: %v", err)
	}
	if user.Username != "adam" || user.Role != models.RoleBrygadzista {
		t.Fatalf("unexpected user: %+v", user)
	}
	if user.BrigadeID == nil || *user.BrigadeID != brigades.brigades["Brygada A"].ID {
		t.Fatalf("expected brigade assignment, got %v", user.BrigadeID)
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("Secret123")) != nil {
		t.Fatal("expected stored bcrypt hash to match password")
	}

	_, err = service.CreateUser(CreateUserInput{Username: "adam", Password: "Secret123", Role: "SZEF"})
	if !errors.Is(err, ErrUsernameTaken) {
		t.Fatalf("expected ErrUsernameTaken, got %v", err)
	}
}

func TestAdminCreateUserValidation(t *testing.T) {
	service := NewAdminService(newAdminUserRepositoryStub(), newAdminBrigadeRepositoryStub())

	tests := []struct {
		name    string
		input   CreateUserInput
		message string
	}{
		{name: "short username", input: CreateUserInput{Username: "ab", Password: "Secret123", Role: "SZEF"}, message: "username must be at least 3"},
		{name: "short password", input: CreateUserInput{Username: "boss", Password: "short", Role: "SZEF"}, message: "password must be at least 8"},
		{name: "unknown role", input: CreateUserInput{Username: "boss", Password: "Secret123", Role: "ADMIN"}, message: "role must be one of"},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			_, err := service.CreateUser(testCase.input)
			if err == nil || !strings.Contains(err.Error(), testCase.message) {
				t.Fatalf("expected error containing %q, got %v", testCase.message, err)
			}
		})
	}
}

func TestAdminAddWorker(t *testing.T) {
	brigades := newAdminBrigadeRepositoryStub()
	service := NewAdminService(newAdminUserRepositoryStub(), brigades)

	worker, err := service.AddWorker(AddWorkerInput{FirstName: " Jan ", LastName: "Kowalski", HourlyRate: 35, Brigade: "Brygada A"})
	if err != nil {
		t.Fatalf("AddWorker() unexpected error: %v", err)
	}
	if worker.FullName() != "Jan Kowalski" || worker.HourlyRate != 35 {
		t.Fatalf("unexpected worker: %+v", worker)
	}
	if len(brigades.workers[brigades.brigades["Brygada A"].ID]) != 1 {
		t.Fatal("expected worker to join the brigade")
	}

	if _, err := service.AddWorker(AddWorkerInput{FirstName: "Jan", LastName: "Kowalski", HourlyRate: -1, Brigade: "Brygada A"}); err == nil {
		t.Fatal("expected negative hourly rate to be rejected")
	}
}

func TestAdminResetPasswordFlagsAccount(t *testing.T) {
	users := newAdminUserRepositoryStub()
	service := NewAdminService(users, newAdminBrigadeRepositoryStub())
	if _, err := service.CreateUser(CreateUserInput{Username: "boss", Password: "Secret123", Role: "SZEF"}); err != nil {
		t.Fatalf("CreateUser() unexpected error: %v", err)
	}

	user, err := service.ResetPassword("BOSS", "Temporary99")
	if err != nil {
		t.Fatalf("ResetPassword() unexpected error: %v", err)
	}
	if !user.MustChangePassword || !users.users["boss"].MustChangePassword {
		t.Fatal("expected must_change_password flag")
	}

	auth := NewAuthService(users)
	if _, err := auth.Authenticate("boss", "Temporary99"); err != nil {
		t.Fatalf("expected new password to authenticate, got %v", err)
	}
	if _, err := auth.Authenticate("boss", "Secret123"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected old password to fail, got %v", err)
	}

	if _, err := service.ResetPassword("nobody", "Temporary99"); !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestAuthenticateUnknownUser(t *testing.T) {
	auth := NewAuthService(newAdminUserRepositoryStub())
	if _, err := auth.Authenticate("ghost", "whatever1"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
	if _, err := auth.Authenticate("  ", "whatever1"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for blank username, got %v", err)
	}
}

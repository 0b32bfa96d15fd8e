// Package cli implements the administrative subcommands of the brygady
// binary.
package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/terraincognita07/brygady/internal/db"
	"github.com/terraincognita07/brygady/internal/services"
)

var ErrUnknownCommand = errors.New("unknown command")

// Env carries what admin commands take from the process.
type Env struct {
	DBPath string
	Stdin  *os.File
	Stdout io.Writer
	Log    zerolog.Logger
}

// Commands lists the admin subcommands in help order.
var Commands = []string{"create-user", "add-worker", "reset-password"}

func Run(env Env, command string, args []string) error {
	switch command {
	case "create-user":
		return RunCreateUserCommand(env, args)
	case "add-worker":
		return RunAddWorkerCommand(env, args)
	case "reset-password":
		return RunResetPasswordCommand(env, args)
	default:
		return fmt.Errorf("%w: %s", ErrUnknownCommand, command)
	}
}

func openAdminService(env Env) (*services.AdminService, func(), error) {
	database, err := db.OpenSQLite(env.DBPath, env.Log)
	if err != nil {
		return nil, nil, fmt.Errorf("database init failed: %w", err)
	}
	sqlDB, err := database.DB()
	if err != nil {
		return nil, nil, fmt.Errorf("database handle: %w", err)
	}

	repositories := db.NewRepositories(database)
	service := services.NewAdminService(repositories.Users, repositories.Brigades)
	return service, func() { _ = sqlDB.Close() }, nil
}

func (env Env) stdout() io.Writer {
	if env.Stdout == nil {
		return os.Stdout
	}
	return env.Stdout
}

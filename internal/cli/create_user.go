package cli

import (
	"errors"
	"flag"
	"fmt"
	"strings"

	"github.com/terraincognita07/brygady/internal/services"
)

// RunCreateUserCommand creates a login account. The password is read from
// stdin without echo when stdin is a terminal.
func RunCreateUserCommand(env Env, args []string) error {
	flags := flag.NewFlagSet("create-user", flag.ContinueOnError)
	flags.SetOutput(env.stdout())
	username := flags.String("username", "", "login name")
	role := flags.String("role", "BRYGADZISTA", "SZEF or BRYGADZISTA")
	brigade := flags.String("brigade", "", "brigade managed by a BRYGADZISTA (created if missing)")
	if err := flags.Parse(args); err != nil {
		return err
	}

	if strings.TrimSpace(*username) == "" {
		return errors.New("username is required")
	}

	password, err := promptPassword(env, fmt.Sprintf("Password for %s: ", strings.TrimSpace(*username)))
	if err != nil {
		return err
	}

	service, closeDB, err := openAdminService(env)
	if err != nil {
		return err
	}
	defer closeDB()

	user, err := service.CreateUser(services.CreateUserInput{
		Username: *username,
		Password: password,
		Role:     *role,
		Brigade:  *brigade,
	})
	if err != nil {
		return err
	}

	env.Log.Info().Uint("user_id", user.ID).Str("username", user.Username).Str("role", string(user.Role)).Msg("user created")
	if user.Brigade != nil {
		fmt.Fprintf(env.stdout(), "Created %s %s (brigade %s)\n", user.Role, user.Username, user.Brigade.Name)
		return nil
	}
	fmt.Fprintf(env.stdout(), "Created %s %s\n", user.Role, user.Username)
	return nil
}

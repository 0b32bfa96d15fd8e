package cli

import (
	"errors"
	"flag"
	"fmt"
	"strings"

	"github.com/terraincognita07/brygady/internal/security"
)

func RunResetPasswordCommand(env Env, args []string) error {
	flags := flag.NewFlagSet("reset-password", flag.ContinueOnError)
	flags.SetOutput(env.stdout())
	username := flags.String("username", "", "login name")
	if err := flags.Parse(args); err != nil {
		return err
	}
	if strings.TrimSpace(*username) == "" {
		return errors.New("username is required")
	}

	temporaryPassword, err := security.TemporaryPassword(12)
	if err != nil {
		return fmt.Errorf("generate temporary password: %w", err)
	}

	service, closeDB, err := openAdminService(env)
	if err != nil {
		return err
	}
	defer closeDB()

	user, err := service.ResetPassword(*username, temporaryPassword)
	if err != nil {
		return err
	}

	env.Log.Info().Uint("user_id", user.ID).Msg("password reset")
	out := env.stdout()
	fmt.Fprintln(out, "Password reset successful")
	fmt.Fprintf(out, "Temporary password: %s\n", temporaryPassword)
	fmt.Fprintln(out, "User must change password on next login.")
	return nil
}

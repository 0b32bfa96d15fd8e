package cli

import (
	"flag"
	"fmt"

	"github.com/terraincognita07/brygady/internal/services"
)

func RunAddWorkerCommand(env Env, args []string) error {
	flags := flag.NewFlagSet("add-worker", flag.ContinueOnError)
	flags.SetOutput(env.stdout())
	first := flags.String("first", "", "first name")
	last := flags.String("last", "", "last name")
	rate := flags.Int("rate", 0, "hourly rate in whole currency units")
	brigade := flags.String("brigade", "", "brigade name (created if missing)")
	if err := flags.Parse(args); err != nil {
		return err
	}

	service, closeDB, err := openAdminService(env)
	if err != nil {
		return err
	}
	defer closeDB()

	worker, err := service.AddWorker(services.AddWorkerInput{
		FirstName:  *first,
		LastName:   *last,
		HourlyRate: *rate,
		Brigade:    *brigade,
	})
	if err != nil {
		return err
	}

	env.Log.Info().Uint("worker_id", worker.ID).Str("brigade", *brigade).Msg("worker added")
	fmt.Fprintf(env.stdout(), "Added worker %s %s (id %d)\n", worker.FirstName, worker.LastName, worker.ID)
	return nil
}

package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/csrf"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"github.com/terraincognita07/brygady/internal/api"
	"github.com/terraincognita07/brygady/internal/cli"
	"github.com/terraincognita07/brygady/internal/config"
	"github.com/terraincognita07/brygady/internal/db"
	"github.com/terraincognita07/brygady/internal/i18n"
	"github.com/terraincognita07/brygady/internal/logger"
	"github.com/terraincognita07/brygady/internal/metrics"
)

const shutdownTimeout = 10 * time.Second

func main() {
	command, args := splitCommand(os.Args[1:])
	if command == "serve" {
		if err := serve(); err != nil {
			log := logger.Get()
			log.Fatal().Err(err).Msg("server exited")
		}
		return
	}

	cfg, err := config.LoadForCLI(context.Background())
	if err != nil {
		fmt.Fprintf(os.Stderr, "configuration: %v\n", err)
		os.Exit(1)
	}
	log := logger.Init(logger.Options{Level: cfg.Log.Level, Pretty: true, Output: os.Stderr})

	env := cli.Env{DBPath: cfg.DBPath, Stdin: os.Stdin, Stdout: os.Stdout, Log: log}
	if err := cli.Run(env, command, args); err != nil {
		if errors.Is(err, cli.ErrUnknownCommand) {
			fmt.Fprintf(os.Stderr, "usage: brygady [serve|%s] [flags]\n", strings.Join(cli.Commands, "|"))
		}
		log.Error().Err(err).Str("command", command).Msg("command failed")
		os.Exit(1)
	}
}

// splitCommand treats a missing or flag-like first argument as serve.
func splitCommand(args []string) (string, []string) {
	if len(args) == 0 || strings.HasPrefix(args[0], "-") {
		return "serve", args
	}
	return args[0], args[1:]
}

func serve() error {
	cfg, err := config.Load(context.Background())
	if err != nil {
		return fmt.Errorf("configuration: %w", err)
	}

	log := logger.Init(logger.Options{Level: cfg.Log.Level, Pretty: cfg.Log.Pretty})
	location, ok := cfg.Location()
	if !ok {
		log.Warn().Str("tz", cfg.TimeZone).Msg("invalid TZ, falling back to UTC")
	}
	time.Local = location

	database, err := db.OpenSQLite(cfg.DBPath, log)
	if err != nil {
		return fmt.Errorf("database init failed: %w", err)
	}

	i18nManager, err := i18n.NewManager(cfg.DefaultLanguage, cfg.Paths.Locales)
	if err != nil {
		return fmt.Errorf("i18n init failed: %w", err)
	}

	handler, err := api.NewHandler(database, cfg.SecretKey, cfg.Paths.Templates, location, i18nManager, cfg.CookieSecure, log)
	if err != nil {
		return fmt.Errorf("handler init failed: %w", err)
	}

	app := newApp(handler, cfg, log)

	sigCtx, stopSignals := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	go func() {
		<-sigCtx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := app.ShutdownWithContext(shutdownCtx); err != nil {
			log.Error().Err(err).Msg("server shutdown failed")
		}
	}()

	log.Info().
		Str("addr", "0.0.0.0:"+cfg.Port).
		Str("db", cfg.DBPath).
		Str("tz", location.String()).
		Msg("brygady listening")
	return app.Listen(":" + cfg.Port)
}

func newApp(handler *api.Handler, cfg *config.Config, log zerolog.Logger) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:               "Brygady",
		DisableStartupMessage: true,
		ErrorHandler:          api.NewErrorHandler(log),
	})

	app.Use(recover.New())
	app.Use(metrics.Middleware)
	app.Use(api.RequestLogger(log.With().Str("component", "access").Logger()))
	app.Use(compress.New())
	app.Use(handler.LanguageMiddleware)
	app.Use(csrf.New(csrfMiddlewareConfig(cfg.CookieSecure)))

	app.Static("/static", cfg.Paths.Static)
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))
	api.RegisterRoutes(app, handler)
	app.Use(handler.NotFound)
	return app
}

func csrfMiddlewareConfig(cookieSecure bool) csrf.Config {
	return csrf.Config{
		KeyLookup:      "form:csrf_token",
		CookieName:     "brygady_csrf",
		CookieSameSite: "Lax",
		CookieHTTPOnly: true,
		CookieSecure:   cookieSecure,
		Expiration:     12 * time.Hour,
		ContextKey:     "csrf",
	}
}

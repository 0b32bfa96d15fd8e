package config

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/sethvargo/go-envconfig"
)

const minSecretKeyLength = 32

var insecureSecretKeys = map[string]struct{}{
	"change_me_in_production":                    {},
	"replace_with_at_least_32_random_characters": {},
}

type Config struct {
	Port            string `env:"PORT, default=8080"`
	DBPath          string `env:"DB_PATH, default=data/brygady.db"`
	SecretKey       string `env:"SECRET_KEY"`
	TimeZone        string `env:"TZ, default=Europe/Warsaw"`
	DefaultLanguage string `env:"DEFAULT_LANGUAGE, default=pl"`
	CookieSecure    bool   `env:"COOKIE_SECURE, default=false"`

	Log   LogConfig
	Paths PathConfig
}

type LogConfig struct {
	Level  string `env:"LOG_LEVEL, default=info"`
	Pretty bool   `env:"LOG_PRETTY, default=false"`
}

type PathConfig struct {
	Templates string `env:"TEMPLATES_DIR, default=internal/templates"`
	Locales   string `env:"LOCALES_DIR, default=internal/i18n/locales"`
	Static    string `env:"STATIC_DIR, default=web/static"`
}

// Load reads the process environment and validates the result.
func Load(ctx context.Context) (*Config, error) {
	return load(ctx, envconfig.OsLookuper())
}

func load(ctx context.Context, lookuper envconfig.Lookuper) (*Config, error) {
	var cfg Config
	if err := envconfig.ProcessWith(ctx, &envconfig.Config{
		Target:   &cfg,
		Lookuper: lookuper,
	}); err != nil {
		return nil, fmt.Errorf("process environment: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadForCLI is Load without the secret key requirement; admin commands
// only touch the database.
func LoadForCLI(ctx context.Context) (*Config, error) {
	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, fmt.Errorf("process environment: %w", err)
	}
	cfg.DBPath = filepath.Clean(strings.TrimSpace(cfg.DBPath))
	return &cfg, nil
}

func (cfg *Config) Validate() error {
	if err := validateSecretKey(cfg.SecretKey); err != nil {
		return err
	}
	if err := validatePort(cfg.Port); err != nil {
		return err
	}
	if strings.TrimSpace(cfg.DBPath) == "" {
		return errors.New("DB_PATH must not be empty")
	}
	cfg.DBPath = filepath.Clean(strings.TrimSpace(cfg.DBPath))
	return nil
}

// Location resolves TZ, falling back to UTC for unknown zones.
func (cfg *Config) Location() (*time.Location, bool) {
	location, err := time.LoadLocation(strings.TrimSpace(cfg.TimeZone))
	if err != nil {
		return time.UTC, false
	}
	return location, true
}

func validateSecretKey(raw string) error {
	secret := strings.TrimSpace(raw)
	if secret == "" {
		return errors.New("SECRET_KEY is required")
	}
	if _, insecure := insecureSecretKeys[strings.ToLower(secret)]; insecure {
		return errors.New("SECRET_KEY uses an insecure placeholder value")
	}
	if len(secret) < minSecretKeyLength {
		return fmt.Errorf("SECRET_KEY must be at least %d characters", minSecretKeyLength)
	}
	return nil
}

func validatePort(raw string) error {
	port, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return fmt.Errorf("PORT must be numeric: %w", err)
	}
	if port < 1 || port > 65535 {
		return fmt.Errorf("PORT must be between 1 and 65535, got %d", port)
	}
	return nil
}

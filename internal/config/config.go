package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/Netflix/go-env"
)

// Environment variables with defaults.
//
// The three DJANGO_* / PORT values mirror what the Django settings module and
// gunicorn read; everything else is launcher-only. Defaults for the Django
// values are exported back into the process environment (see exportDefaults)
// so the exec'd server inherits them.
type Environment struct {

	// values the web application reads
	DjangoSecretKey string `env:"DJANGO_SECRET_KEY,default=CHANGE_ME"`
	DjangoDebug     string `env:"DJANGO_DEBUG,default=False"`
	Port            int    `env:"PORT,default=8000"`

	// launcher settings
	PythonBin       string `env:"PYTHON_BIN,default=python"`
	ManagePy        string `env:"MANAGE_PY,default=manage.py"`
	GunicornBin     string `env:"GUNICORN_BIN,default=gunicorn"`
	WSGIApp         string `env:"WSGI_APP,default=majicmall.wsgi:application"`
	GunicornWorkers int    `env:"GUNICORN_WORKERS,default=0"`
	LogLevel        string `env:"LOG_LEVEL,default=info"`

	// step toggles
	SkipMigrate       bool `env:"SKIP_MIGRATE,default=false"`
	SkipCollectStatic bool `env:"SKIP_COLLECTSTATIC,default=false"`

	// optional database pre-flight
	WaitForDB      bool          `env:"WAIT_FOR_DB,default=false"`
	DatabaseURL    string        `env:"DATABASE_URL"`
	DBWaitTimeout  time.Duration `env:"DB_WAIT_TIMEOUT,default=60s"`
	DBWaitInterval time.Duration `env:"DB_WAIT_INTERVAL,default=2s"`
}

// PlaceholderSecretKey is the fallback used when no DJANGO_SECRET_KEY is
// supplied by the platform.
const PlaceholderSecretKey = "CHANGE_ME"

var validLogLevels = map[string]bool{
	"debug":    true,
	"info":     true,
	"warn":     true,
	"warning":  true,
	"error":    true,
	"critical": true,
}

// Load unmarshals the process environment, validates it, and exports the
// defaulted Django variables so child processes observe the same values.
func Load() (*Environment, error) {
	var cfg Environment

	if _, err := env.UnmarshalFromEnviron(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal environment variables: %w", err)
	}

	if err := validateConfig(&cfg); err != nil {
		return nil, err
	}

	if err := exportDefaults(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// DebugEnabled reports whether DJANGO_DEBUG holds a truthy value. Django
// projects conventionally use "True"; accept the usual spellings.
func (cfg *Environment) DebugEnabled() bool {
	switch strings.ToLower(strings.TrimSpace(cfg.DjangoDebug)) {
	case "true", "1", "yes", "on":
		return true
	}
	return false
}

// validateConfig checks values that would otherwise fail later, mid-pipeline
// or after the handoff, where the failure is harder to attribute.
func validateConfig(cfg *Environment) error {
	if cfg.Port < 1 || cfg.Port > 65535 {
		return fmt.Errorf("PORT must be between 1 and 65535, got %d", cfg.Port)
	}
	if !validLogLevels[strings.ToLower(cfg.LogLevel)] {
		return fmt.Errorf("invalid LOG_LEVEL: %s", cfg.LogLevel)
	}
	if cfg.GunicornWorkers < 0 {
		return fmt.Errorf("GUNICORN_WORKERS must be 0 or greater, got %d", cfg.GunicornWorkers)
	}
	if cfg.WSGIApp == "" {
		return fmt.Errorf("WSGI_APP must not be empty")
	}
	if cfg.WaitForDB && cfg.DatabaseURL == "" {
		return fmt.Errorf("WAIT_FOR_DB is set but DATABASE_URL is empty")
	}
	return nil
}

// exportDefaults writes the defaulted Django variables into the environment
// when the platform did not supply them. Operator-supplied values are left
// untouched. Without this the exec'd gunicorn/Django processes would see the
// variables unset and fall back to their own defaults.
func exportDefaults(cfg *Environment) error {
	defaults := map[string]string{
		"DJANGO_SECRET_KEY": cfg.DjangoSecretKey,
		"DJANGO_DEBUG":      cfg.DjangoDebug,
		"PORT":              strconv.Itoa(cfg.Port),
	}
	for key, value := range defaults {
		if _, ok := os.LookupEnv(key); ok {
			continue
		}
		if err := os.Setenv(key, value); err != nil {
			return fmt.Errorf("failed to export %s: %w", key, err)
		}
	}
	return nil
}

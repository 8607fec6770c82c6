package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

const (
	NamesSourceFile     = "file"
	NamesSourcePostgres = "postgres"
)

type Config struct {
	App      App
	HTTP     HTTP
	Names    Names
	Postgres Postgres
}

type App struct {
	Name     string `env:"APP_NAME" envDefault:"namegen" validate:"required"`
	Version  string `env:"APP_VERSION" envDefault:"dev"`
	LogLevel string `env:"LOG_LEVEL" envDefault:"info" validate:"oneof=debug info warn error DEBUG INFO WARN ERROR"`
	NoColor  bool   `env:"LOG_NO_COLOR"`
}

type HTTP struct {
	ListenAddress        string        `env:"HTTP_LISTEN_ADDRESS" envDefault:":8000" validate:"required"`
	ShutdownTimeout      time.Duration `env:"HTTP_SHUTDOWN_TIMEOUT" envDefault:"10s" validate:"gt=0"`
	LogFieldMaxLen       int           `env:"HTTP_LOG_FIELD_MAX_LEN" envDefault:"4096" validate:"gt=0"`
	ProbeListenAddress   string        `env:"PROBE_LISTEN_ADDRESS" envDefault:":8081" validate:"required"`
	MetricsListenAddress string        `env:"METRICS_LISTEN_ADDRESS" envDefault:":8082" validate:"required"`
}

type Names struct {
	Source       string        `env:"NAMES_SOURCE" envDefault:"file" validate:"oneof=file postgres"`
	FemaleFiles  []string      `env:"NAMES_FEMALE_FILES" envDefault:"names/female.txt" envSeparator:","`
	MaleFiles    []string      `env:"NAMES_MALE_FILES" envDefault:"names/male.txt" envSeparator:","`
	SurnameFiles []string      `env:"NAMES_SURNAME_FILES" envDefault:"names/surnames.txt" envSeparator:","`
	CacheTTL     time.Duration `env:"NAMES_CACHE_TTL" envDefault:"0" validate:"gte=0"`
}

func Load() (Config, error) {
	_ = godotenv.Load()

	var config Config

	if err := env.Parse(&config); err != nil {
		return Config{}, fmt.Errorf("env.Parse: %w", err)
	}

	if err := config.Validate(); err != nil {
		return Config{}, fmt.Errorf("config.Validate: %w", err)
	}

	return config, nil
}

func (c Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("validator.Struct: %w", err)
	}

	if c.Names.Source == NamesSourcePostgres && c.Postgres.DSN == "" {
		return fmt.Errorf("PG_DSN is required when NAMES_SOURCE=%s", NamesSourcePostgres)
	}

	return nil
}

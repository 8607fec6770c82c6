package config

import "time"

// DSN обязателен только для NAMES_SOURCE=postgres, см. Config.Validate.
type Postgres struct {
	DSN             string        `env:"PG_DSN" json:"-"`
	MaxIdleConns    int           `env:"PG_MAX_IDLE_CONNS" envDefault:"5" validate:"gte=0"`
	MaxOpenConns    int           `env:"PG_MAX_OPEN_CONNS" envDefault:"5" validate:"gte=0"`
	ConnMaxLifetime time.Duration `env:"PG_CONN_MAX_LIFETIME" envDefault:"5m"`
}

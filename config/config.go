// Package config loads the backend's settings from the environment and the
// curated winners list from TOML.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"hackportal-backend/entity"
)

const (
	StoreMongo  = "mongo"
	StoreMemory = "memory"
)

type Config struct {
	Port     string `env:"PORT" envDefault:"6969"`
	HTTPPort string `env:"HTTP_PORT" envDefault:"8080"`

	Store         string `env:"STORE" envDefault:"mongo"`
	MongoURI      string `env:"MONGO_URI" envDefault:"mongodb://localhost:27017"`
	MongoDatabase string `env:"MONGO_DATABASE" envDefault:"iict-hack"`

	// Empty disables the cache and the event stream.
	RedisAddr      string        `env:"REDIS_ADDR"`
	PublicCacheTTL time.Duration `env:"PUBLIC_CACHE_TTL" envDefault:"15s"`
	RabbitMQ       string        `env:"RABBITMQ_CONNSTRING"`

	JWTKey       string        `env:"JWT_KEY"`
	OrganizerKey string        `env:"ORGANIZER_KEY"`
	TokenTTL     time.Duration `env:"TOKEN_TTL" envDefault:"24h"`

	WindowOpen bool      `env:"SUBMISSION_WINDOW_OPEN" envDefault:"false"`
	OpensAt    time.Time `env:"SUBMISSION_OPENS_AT"`
	ClosesAt   time.Time `env:"SUBMISSION_CLOSES_AT"`

	WinnersFile    string `env:"WINNERS_FILE" envDefault:"winners.toml"`
	LogDevelopment bool   `env:"LOG_DEVELOPMENT" envDefault:"false"`
}

// Load reads an optional .env file and then the process environment.
func Load() (*Config, error) {
	// .env is optional when the variables come from the environment.
	_ = godotenv.Load()

	return parse(env.Options{})
}

// FromMap parses environ instead of the process environment.
func FromMap(environ map[string]string) (*Config, error) {
	return parse(env.Options{Environment: environ})
}

func parse(opts env.Options) (*Config, error) {
	cfg := &Config{}
	if err := env.ParseWithOptions(cfg, opts); err != nil {
		return nil, fmt.Errorf("config: parse env: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if strings.TrimSpace(c.JWTKey) == "" {
		return errors.New("config: JWT_KEY is required")
	}
	if strings.TrimSpace(c.OrganizerKey) == "" {
		return errors.New("config: ORGANIZER_KEY is required")
	}
	if c.JWTKey == c.OrganizerKey {
		return errors.New("config: JWT_KEY and ORGANIZER_KEY must differ")
	}

	switch c.Store {
	case StoreMongo, StoreMemory:
	default:
		return fmt.Errorf("config: STORE must be %q or %q, got %q", StoreMongo, StoreMemory, c.Store)
	}

	if c.TokenTTL <= 0 {
		return errors.New("config: TOKEN_TTL must be positive")
	}
	if !c.OpensAt.IsZero() && !c.ClosesAt.IsZero() && !c.OpensAt.Before(c.ClosesAt) {
		return errors.New("config: SUBMISSION_OPENS_AT must be before SUBMISSION_CLOSES_AT")
	}
	return nil
}

func (c *Config) Window() entity.Window {
	return entity.Window{
		Open:      c.WindowOpen,
		StartDate: c.OpensAt,
		EndDate:   c.ClosesAt,
	}
}

package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Database holds the Postgres connection settings.
type Database struct {
	Host     string `env:"DB_HOST" envDefault:"localhost"`
	Port     string `env:"DB_PORT" envDefault:"5432"`
	Name     string `env:"DB_NAME" envDefault:"skillmatrix"`
	User     string `env:"DB_USER" envDefault:"postgres"`
	Password string `env:"DB_PASS" envDefault:"postgres"`
	SSLMode  string `env:"DB_SSL_MODE" envDefault:"disable"`
}

// DSN renders the settings as a keyword/value connection string.
func (d Database) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%s dbname=%s user=%s password=%s sslmode=%s",
		d.Host, d.Port, d.Name, d.User, d.Password, d.SSLMode,
	)
}

// Config is the full service configuration, read from the environment with an
// optional .env file on top.
type Config struct {
	ListenAddr     string `env:"LISTEN_ADDR" envDefault:":8080"`
	LogLevel       string `env:"LOG_LEVEL" envDefault:"info"`
	MaxUploadBytes int64  `env:"MAX_UPLOAD_BYTES" envDefault:"10485760"`
	Database       Database
}

// Load reads .env when present and parses the environment into a Config.
func Load() (*Config, error) {
	// Missing .env is fine; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse environment: %w", err)
	}
	return cfg, nil
}

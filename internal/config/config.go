package config

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds runtime settings read from the environment
type Config struct {
	AppEnv       string        `env:"APP_ENV" envDefault:"development"`
	Port         string        `env:"PORT" envDefault:":8008"`
	DBPath       string        `env:"DB_PATH" envDefault:"dayjob-record.db"`
	DBLogLevel   string        `env:"DB_LOG_LEVEL" envDefault:"warn"`
	OptionsPath  string        `env:"OPTIONS_PATH" envDefault:"config/dropdown-options.json"`
	ReportLocale string        `env:"REPORT_LOCALE" envDefault:"en"`
	// ItemCacheTTL enables the item cache; leave at 0 while the desktop tracker writes to the same file
	ItemCacheTTL time.Duration `env:"ITEM_CACHE_TTL" envDefault:"0s"`

	// Empty AuthPasswordHash disables authentication for the local API
	AuthPasswordHash string        `env:"AUTH_PASSWORD_HASH"`
	JWTSecret        string        `env:"JWT_SECRET" envDefault:"development-insecure-secret-change-me"`
	JWTIssuer        string        `env:"JWT_ISSUER" envDefault:"dayjob-record"`
	JWTAudience      string        `env:"JWT_AUDIENCE" envDefault:"dayjob-record-clients"`
	TokenTTL         time.Duration `env:"TOKEN_TTL" envDefault:"24h"`
}

// AuthEnabled reports whether the API requires a login
func (c Config) AuthEnabled() bool {
	return c.AuthPasswordHash != ""
}

// Load reads a .env file (outside production) and parses the environment into a Config
func Load() (Config, error) {
	if os.Getenv("APP_ENV") != "production" {
		if err := godotenv.Load(); err != nil {
			log.Println("No .env file found, using environment")
		}
	}
	return Parse()
}

// Parse parses the current environment into a Config without touching .env files
func Parse() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

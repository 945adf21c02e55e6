package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/rs/zerolog"
)

// DefaultEnvFile is read when present.
const DefaultEnvFile = ".env"

// Config holds application configuration sourced from environment variables.
type Config struct {
	Env           string `env:"ENV" env-default:"local" env-description:"local, dev or prod"`
	Port          string `env:"PORT" env-default:"8080"`
	DBPath        string `env:"DB_PATH" env-default:"./carcost.db"`
	AdminEmail    string `env:"ADMIN_EMAIL"`
	AdminPassword string `env:"ADMIN_PASSWORD"`
	SessionSecret string `env:"SESSION_SECRET"`

	Redis     Redis
	CacheTTL  time.Duration `env:"CACHE_TTL" env-default:"10m"`
	RateLimit RateLimit
	// TrustProxy takes the client address from X-Forwarded-For / X-Real-IP.
	// Enable only behind a proxy that overwrites those headers.
	TrustProxy bool `env:"TRUST_PROXY" env-default:"false"`

	Locale   string `env:"LOCALE" env-default:"en-GB"`
	Currency string `env:"CURRENCY" env-default:"GBP"`

	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" env-default:"10s"`
}

// Redis configures the shared result cache. An empty Addr selects the
// in-process cache.
type Redis struct {
	Addr     string `env:"REDIS_ADDR"`
	Password string `env:"REDIS_PASSWORD"`
	DB       int    `env:"REDIS_DB" env-default:"0"`
}

// RateLimit configures the per-client request limiter.
type RateLimit struct {
	RPS   float64 `env:"RATE_LIMIT_RPS" env-default:"5"`
	Burst int     `env:"RATE_LIMIT_BURST" env-default:"10"`
}

// IsDev reports whether the server runs on a developer machine.
func (c Config) IsDev() bool {
	return c.Env == "local" || c.Env == "dev"
}

// Addr is the listen address.
func (c Config) Addr() string {
	return ":" + c.Port
}

// Load reads envFile when it exists, then the process environment, and
// returns a populated Config.
func Load(envFile string, logger zerolog.Logger) (Config, error) {
	var cfg Config

	if envFile != "" && fileExists(envFile) {
		if err := cleanenv.ReadConfig(envFile, &cfg); err != nil {
			return Config{}, fmt.Errorf("read config file %s: %w", envFile, err)
		}
	} else if err := cleanenv.ReadEnv(&cfg); err != nil {
		return Config{}, fmt.Errorf("read config from environment: %w", err)
	}

	if cfg.AdminEmail == "" {
		logger.Warn().Msg("ADMIN_EMAIL is not set")
	}
	if cfg.AdminPassword == "" {
		logger.Warn().Msg("ADMIN_PASSWORD is not set")
	}
	if cfg.SessionSecret == "" {
		logger.Warn().Msg("SESSION_SECRET is not set")
	}

	return cfg, nil
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return !errors.Is(err, fs.ErrNotExist)
}

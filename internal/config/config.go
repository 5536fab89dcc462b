// Package config loads process configuration from the environment and
// gameplay balance tables from YAML
package config

import (
	"io/fs"
	"log/slog"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/KirkDiggler/trivia-quest/internal/errors"
)

// Store backends
const (
	StoreMemory = "memory"
	StoreRedis  = "redis"
	StoreSQLite = "sqlite"
)

// Config is the process configuration
type Config struct {
	Store       string   `env:"TQ_STORE" envDefault:"memory"`
	RedisAddr   string   `env:"TQ_REDIS_ADDR" envDefault:"localhost:6379"`
	SQLitePath  string   `env:"TQ_SQLITE_PATH" envDefault:"trivia-quest.db"`
	SaveKey     string   `env:"TQ_SAVE_KEY" envDefault:"trivia-quest:save"`
	GRPCPort    int      `env:"TQ_GRPC_PORT" envDefault:"50051"`
	HTTPPort    int      `env:"TQ_HTTP_PORT" envDefault:"8080"`
	CORSOrigins []string `env:"TQ_CORS_ORIGINS" envSeparator:"," envDefault:"http://localhost:5173,http://127.0.0.1:5173"`
	BalanceFile string   `env:"TQ_BALANCE_FILE"`
	LogLevel    string   `env:"TQ_LOG_LEVEL" envDefault:"info"`
}

// Load reads an optional .env file and then parses the environment
func Load(dotenvFiles ...string) (*Config, error) {
	if err := godotenv.Load(dotenvFiles...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, errors.Wrap(err, "failed to load .env")
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to parse environment")
	}

	return cfg, nil
}

// Validate ensures the configuration is usable
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	errors.ValidateEnum("TQ_STORE", c.Store, []string{StoreMemory, StoreRedis, StoreSQLite}, vb)
	errors.ValidateRequired("TQ_SAVE_KEY", c.SaveKey, vb)
	errors.ValidateRange("TQ_GRPC_PORT", c.GRPCPort, 1, 65535, vb)
	errors.ValidateRange("TQ_HTTP_PORT", c.HTTPPort, 0, 65535, vb)

	if c.Store == StoreRedis {
		errors.ValidateRequired("TQ_REDIS_ADDR", c.RedisAddr, vb)
	}
	if c.Store == StoreSQLite {
		errors.ValidateRequired("TQ_SQLITE_PATH", c.SQLitePath, vb)
	}

	return vb.Build()
}

// SlogLevel maps LogLevel onto a slog level, defaulting to info
func (c *Config) SlogLevel() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

package config

import (
	"errors"
	"fmt"
	"net"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// BindHost is the interface the server listens on. It is not configurable.
const BindHost = "0.0.0.0"

// Config holds the service settings read from the environment.
type Config struct {
	Port        string
	Environment string
	LogLevel    string
}

// Load reads the configuration from the environment.
// If ENV_FILE is set, that file is loaded first; variables already present
// in the environment take precedence over the file.
func Load() (*Config, error) {
	if path := os.Getenv("ENV_FILE"); path != "" {
		if err := godotenv.Load(path); err != nil {
			return nil, fmt.Errorf("config: load %s: %w", path, err)
		}
	}

	cfg := &Config{
		Port:        getEnv("PORT", "8001"),
		Environment: getEnv("ENVIRONMENT", "development"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the port and log level.
func (c *Config) Validate() error {
	port, err := strconv.Atoi(c.Port)
	if err != nil {
		return fmt.Errorf("config: PORT %q is not a number", c.Port)
	}
	if port < 1 || port > 65535 {
		return fmt.Errorf("config: PORT %d out of range", port)
	}
	if _, err := zapcore.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("config: LOG_LEVEL: %w", err)
	}
	if c.Environment == "" {
		return errors.New("config: ENVIRONMENT is empty")
	}
	return nil
}

// Addr is the listen address, e.g. "0.0.0.0:8001".
func (c *Config) Addr() string {
	return net.JoinHostPort(BindHost, c.Port)
}

// IsProduction reports whether the service runs in production mode.
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// NewLogger builds the process logger: production JSON logging in
// production, human-readable development logging otherwise.
func (c *Config) NewLogger() (*zap.Logger, error) {
	level, err := zap.ParseAtomicLevel(c.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("config: log level: %w", err)
	}

	zc := zap.NewDevelopmentConfig()
	if c.IsProduction() {
		zc = zap.NewProductionConfig()
	}
	zc.Level = level
	return zc.Build()
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

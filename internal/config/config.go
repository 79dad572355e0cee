// Package config loads the service configuration from an optional YAML file
// and environment variables using viper. Environment variables win over the file.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port            int           `mapstructure:"port"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
	RequestTimeout  time.Duration `mapstructure:"request_timeout"`
	Version         string        `mapstructure:"version"`
}

// Addr returns the listen address for Port.
func (s ServerConfig) Addr() string {
	return fmt.Sprintf(":%d", s.Port)
}

// DatabaseConfig holds the connection string and pool settings.
type DatabaseConfig struct {
	URL                   string        `mapstructure:"url"`
	MaxOpenConns          int           `mapstructure:"max_open_conns"`
	MaxIdleConns          int           `mapstructure:"max_idle_conns"`
	ConnMaxLifetime       time.Duration `mapstructure:"conn_max_lifetime"`
	ConnMaxIdleTime       time.Duration `mapstructure:"conn_max_idle_time"`
	CircuitBreakerEnabled bool          `mapstructure:"circuit_breaker_enabled"`
}

// PaginationConfig controls list defaults. MaxLimit 0 means unbounded.
type PaginationConfig struct {
	DefaultLimit int `mapstructure:"default_limit"`
	MaxLimit     int `mapstructure:"max_limit"`
}

// LogConfig controls the process logger.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"` // json or text
}

// Config is the top-level configuration structure.
type Config struct {
	Server     ServerConfig     `mapstructure:"server"`
	Database   DatabaseConfig   `mapstructure:"database"`
	Pagination PaginationConfig `mapstructure:"pagination"`
	Log        LogConfig        `mapstructure:"log"`
}

// envBindings maps configuration keys to their environment variables.
var envBindings = map[string]string{
	"server.port":                      "PORT",
	"server.shutdown_timeout":          "SHUTDOWN_TIMEOUT",
	"server.request_timeout":           "REQUEST_TIMEOUT",
	"server.version":                   "VERSION",
	"database.url":                     "DATABASE_URL",
	"database.max_open_conns":          "DB_MAX_OPEN_CONNS",
	"database.max_idle_conns":          "DB_MAX_IDLE_CONNS",
	"database.conn_max_lifetime":       "DB_CONN_MAX_LIFETIME",
	"database.conn_max_idle_time":      "DB_CONN_MAX_IDLE_TIME",
	"database.circuit_breaker_enabled": "DB_CIRCUIT_BREAKER_ENABLED",
	"pagination.default_limit":         "PAGINATION_DEFAULT_LIMIT",
	"pagination.max_limit":             "PAGINATION_MAX_LIMIT",
	"log.level":                        "LOG_LEVEL",
	"log.format":                       "LOG_FORMAT",
}

// Load reads cfgFile (or config.yaml from the working directory or ./configs
// when cfgFile is empty), overlays environment variables and fills defaults.
// A missing default config file is not an error; a missing explicit one is.
func Load(v *viper.Viper, cfgFile string) (Config, error) {
	var cfg Config

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("configs")
	}

	if err := v.ReadInConfig(); err != nil {
		var nf viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &nf) {
			return cfg, fmt.Errorf("read config: %w", err)
		}
	}

	v.SetDefault("database.circuit_breaker_enabled", true)
	for key, env := range envBindings {
		if err := v.BindEnv(key, env); err != nil {
			return cfg, fmt.Errorf("bind %s: %w", env, err)
		}
	}

	if err := v.Unmarshal(&cfg); err != nil {
		return cfg, fmt.Errorf("parse config: %w", err)
	}

	cfg.FillDefaults()
	return cfg, nil
}

// FillDefaults applies default values if not provided.
func (c *Config) FillDefaults() {
	if c.Server.Port == 0 {
		c.Server.Port = 4500
	}
	if c.Server.ShutdownTimeout <= 0 {
		c.Server.ShutdownTimeout = 5 * time.Second
	}
	if c.Server.RequestTimeout <= 0 {
		c.Server.RequestTimeout = 30 * time.Second
	}
	if c.Server.Version == "" {
		c.Server.Version = "dev"
	}
	if c.Database.MaxOpenConns <= 0 {
		c.Database.MaxOpenConns = 25
	}
	if c.Database.MaxIdleConns <= 0 {
		c.Database.MaxIdleConns = 10
	}
	if c.Database.ConnMaxLifetime <= 0 {
		c.Database.ConnMaxLifetime = time.Hour
	}
	if c.Database.ConnMaxIdleTime <= 0 {
		c.Database.ConnMaxIdleTime = 30 * time.Minute
	}
	if c.Pagination.DefaultLimit <= 0 {
		c.Pagination.DefaultLimit = 10
	}
	if c.Pagination.MaxLimit < 0 {
		c.Pagination.MaxLimit = 0
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Log.Format == "" {
		c.Log.Format = "json"
	}
}

// Validate reports configuration that cannot be used to start the service.
func (c Config) Validate() error {
	var problems []string
	if strings.TrimSpace(c.Database.URL) == "" {
		problems = append(problems, "DATABASE_URL must be set")
	}
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		problems = append(problems, fmt.Sprintf("PORT must be between 1 and 65535, got %d", c.Server.Port))
	}
	if c.Pagination.MaxLimit > 0 && c.Pagination.DefaultLimit > c.Pagination.MaxLimit {
		problems = append(problems, fmt.Sprintf("PAGINATION_DEFAULT_LIMIT (%d) exceeds PAGINATION_MAX_LIMIT (%d)",
			c.Pagination.DefaultLimit, c.Pagination.MaxLimit))
	}
	if len(problems) > 0 {
		return fmt.Errorf("invalid configuration: %s", strings.Join(problems, "; "))
	}
	return nil
}

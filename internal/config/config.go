package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

const (
	DriverSQLite = "sqlite"
	DriverMySQL  = "mysql"
)

// Config keeps runtime settings for the API server.
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Database DatabaseConfig `yaml:"database"`
	Log      LogConfig      `yaml:"log"`
}

type ServerConfig struct {
	Host            string        `yaml:"host" env:"HOST" env-default:"0.0.0.0"`
	Port            int           `yaml:"port" env:"PORT" env-default:"3001"`
	APIPrefix       string        `yaml:"api_prefix" env:"API_PREFIX" env-default:"/api"`
	AllowedOrigin   string        `yaml:"allowed_origin" env:"ALLOWED_ORIGIN" env-default:"http://localhost:3000"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SHUTDOWN_TIMEOUT" env-default:"5s"`
}

type DatabaseConfig struct {
	Driver string `yaml:"driver" env:"DB_DRIVER" env-default:"sqlite"`
	DSN    string `yaml:"dsn" env:"DATABASE_URL" env-default:"task_manager.db"`
}

type LogConfig struct {
	Level      string `yaml:"level" env:"LOG_LEVEL" env-default:"info"`
	File       string `yaml:"file" env:"LOG_FILE"`
	MaxSizeMB  int    `yaml:"max_size_mb" env:"LOG_MAX_SIZE_MB" env-default:"50"`
	MaxBackups int    `yaml:"max_backups" env:"LOG_MAX_BACKUPS" env-default:"5"`
	MaxAgeDays int    `yaml:"max_age_days" env:"LOG_MAX_AGE_DAYS" env-default:"30"`
	Compress   bool   `yaml:"compress" env:"LOG_COMPRESS" env-default:"true"`
}

// Load reads configuration from an optional YAML file, then from environment variables.
// When path is empty, CONFIG_PATH is consulted; with neither set only the environment is used.
func Load(path string) (Config, error) {
	var cfg Config

	if path == "" {
		path = strings.TrimSpace(os.Getenv("CONFIG_PATH"))
	}

	if path != "" {
		if _, err := os.Stat(path); err != nil {
			return cfg, fmt.Errorf("config file %q: %w", path, err)
		}
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return cfg, fmt.Errorf("read config %q: %w", path, err)
		}
	} else if err := cleanenv.ReadEnv(&cfg); err != nil {
		return cfg, fmt.Errorf("read env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate checks values that cannot be expressed through defaults alone.
func (c Config) Validate() error {
	switch c.Database.Driver {
	case DriverSQLite, DriverMySQL:
	default:
		return fmt.Errorf("unsupported database driver %q (want %s or %s)", c.Database.Driver, DriverSQLite, DriverMySQL)
	}
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid port %d", c.Server.Port)
	}
	if !strings.HasPrefix(c.Server.APIPrefix, "/") {
		return fmt.Errorf("api prefix %q must start with /", c.Server.APIPrefix)
	}
	return nil
}

// Addr returns the listen address for the HTTP server.
func (c Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

package config

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/labstack/gommon/log"
)

type Config struct {
	Address      string `env:"ADDRESS" envDefault:":7070"`
	DatabasePath string `env:"DATABASE_PATH" envDefault:"database.db"`
	LogLevel     string `env:"LOG_LEVEL" envDefault:"info"`

	PageSize      int `env:"PAGE_SIZE" envDefault:"10"`
	AdminPageSize int `env:"ADMIN_PAGE_SIZE" envDefault:"20"`

	// AdminTokenSecret signs superuser tokens. The admin routes are not
	// mounted without it.
	AdminTokenSecret string `env:"ADMIN_TOKEN_SECRET"`

	S3Region   string `env:"AWS_S3_REGION"`
	S3Bucket   string `env:"S3_BUCKET_NAME"`
	S3Endpoint string `env:"S3_ENDPOINT"`

	ExportInterval  time.Duration `env:"EXPORT_INTERVAL" envDefault:"0s"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`
}

// Load fills the process environment (SSM in production, .env otherwise)
// and parses it into a Config.
func Load(ctx context.Context) (*Config, error) {
	if os.Getenv("GO_ENV") == "production" {
		if err := loadProdEnv(ctx); err != nil {
			return nil, err
		}
	} else if err := godotenv.Load(); err != nil {
		log.Infof("no .env file loaded: %v", err)
	}

	return Parse()
}

// Parse reads the Config from the current environment only.
func Parse() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("error getting env configs: %w", err)
	}

	if cfg.PageSize < 1 || cfg.AdminPageSize < 1 {
		return nil, fmt.Errorf("page sizes must be positive, got %d and %d", cfg.PageSize, cfg.AdminPageSize)
	}
	return &cfg, nil
}

func (c *Config) AdminEnabled() bool {
	return c.AdminTokenSecret != ""
}

func (c *Config) ExportsEnabled() bool {
	return c.S3Bucket != ""
}

// Level maps LOG_LEVEL onto gommon levels. Unknown names fall back to INFO.
func (c *Config) Level() log.Lvl {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return log.DEBUG
	case "warn", "warning":
		return log.WARN
	case "error":
		return log.ERROR
	case "off":
		return log.OFF
	default:
		return log.INFO
	}
}

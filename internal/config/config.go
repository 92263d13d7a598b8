// Package config loads addrbook settings from defaults, an optional YAML file
// and the environment, in that order of precedence.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/mrled/addrbook/internal/logger"
	"github.com/mrled/addrbook/internal/model"
	"github.com/mrled/addrbook/internal/repository"
)

const (
	// DefaultFile is the JSON store used when nothing else is configured
	DefaultFile = "addressbook.json"

	EnvConfig         = "ADDRBOOK_CONFIG"
	EnvFile           = "ADDRBOOK_FILE"
	EnvDynamoTable    = "ADDRBOOK_DYNAMODB_TABLE"
	EnvDynamoEndpoint = "ADDRBOOK_DYNAMODB_ENDPOINT"
	EnvS3Bucket       = "ADDRBOOK_S3_BUCKET"
	EnvS3Key          = "ADDRBOOK_S3_KEY"
	EnvBirthdayWindow = "ADDRBOOK_BIRTHDAY_WINDOW"
	EnvLogLevel       = "LOG_LEVEL"
	EnvLogFormat      = "LOG_FORMAT"
)

// Config holds all addrbook configuration.
type Config struct {
	Storage   StorageConfig   `yaml:"storage"`
	Birthdays BirthdaysConfig `yaml:"birthdays"`
	Logging   LoggingConfig   `yaml:"logging"`
}

// StorageConfig selects where the address book is persisted.
type StorageConfig struct {
	File           string `yaml:"file"`
	DynamoTable    string `yaml:"dynamodb_table"`
	DynamoEndpoint string `yaml:"dynamodb_endpoint"`
	S3Bucket       string `yaml:"s3_bucket"`
	S3Key          string `yaml:"s3_key"`
}

// BirthdaysConfig configures the upcoming-birthdays report.
type BirthdaysConfig struct {
	WindowDays int `yaml:"window_days"`
}

// LoggingConfig configures the slog handler.
type LoggingConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // text, json
}

// DefaultConfig returns the configuration used when no file or environment overrides exist.
func DefaultConfig() *Config {
	return &Config{
		Storage: StorageConfig{
			File: DefaultFile,
		},
		Birthdays: BirthdaysConfig{
			WindowDays: model.DefaultBirthdayWindow,
		},
		Logging: LoggingConfig{
			Level:  "warn",
			Format: "text",
		},
	}
}

// Load builds the configuration from defaults, the YAML file at path and the environment.
// An empty path or a missing file is not an error.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, os.ErrNotExist):
		case err != nil:
			return nil, fmt.Errorf("failed to read config file: %w", err)
		default:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
			}
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadDotEnv loads variables from .env files into the process environment.
// Missing files are ignored; variables already set are not overridden.
func LoadDotEnv(paths ...string) error {
	if len(paths) == 0 {
		paths = []string{".env"}
	}
	for _, p := range paths {
		if err := godotenv.Load(p); err != nil && !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("failed to load %s: %w", p, err)
		}
	}
	return nil
}

func (c *Config) applyEnv() error {
	setFromEnv(&c.Storage.File, EnvFile)
	setFromEnv(&c.Storage.DynamoTable, EnvDynamoTable)
	setFromEnv(&c.Storage.DynamoEndpoint, EnvDynamoEndpoint)
	setFromEnv(&c.Storage.S3Bucket, EnvS3Bucket)
	setFromEnv(&c.Storage.S3Key, EnvS3Key)
	setFromEnv(&c.Logging.Level, EnvLogLevel)
	setFromEnv(&c.Logging.Format, EnvLogFormat)

	if v := os.Getenv(EnvBirthdayWindow); v != "" {
		days, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid %s %q: %w", EnvBirthdayWindow, v, err)
		}
		c.Birthdays.WindowDays = days
	}
	return nil
}

// Validate checks values that have no sensible fallback
func (c *Config) Validate() error {
	if c.Birthdays.WindowDays <= 0 {
		return fmt.Errorf("birthday window must be positive, got %d", c.Birthdays.WindowDays)
	}
	return nil
}

// RepositoryConfig maps the storage section onto the repository factory's configuration
func (c *Config) RepositoryConfig() repository.RepositoryConfig {
	return repository.RepositoryConfig{
		FilePath:       c.Storage.File,
		DynamoTable:    c.Storage.DynamoTable,
		DynamoEndpoint: c.Storage.DynamoEndpoint,
		S3Bucket:       c.Storage.S3Bucket,
		S3Key:          c.Storage.S3Key,
	}
}

// LoggerConfig maps the logging section onto the logger's configuration
func (c *Config) LoggerConfig() logger.Config {
	return logger.Config{
		Level:  c.Logging.Level,
		Format: c.Logging.Format,
	}
}

func setFromEnv(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

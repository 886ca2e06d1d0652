// Package config resolves process settings from the environment, an optional
// .env file and command line flags.
package config

import (
	"errors"
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	DefaultWorkers     = 3
	DefaultConcurrency = 4
)

var ErrMissingSetting = errors.New("missing required setting")

type R2Config struct {
	AccountID string `mapstructure:"account_id"`
	Bucket    string `mapstructure:"bucket"`
	AccessKey string `mapstructure:"access_key"`
	SecretKey string `mapstructure:"secret_key"`
}

type Config struct {
	DBURL       string   `mapstructure:"db_url"`
	RabbitMQURL string   `mapstructure:"rabbitmq_url"`
	R2          R2Config `mapstructure:"r2"`
	SkillsFile  string   `mapstructure:"skills_file"`
	Workers     int      `mapstructure:"workers"`
	Concurrency int      `mapstructure:"concurrency"`
	Debug       bool     `mapstructure:"debug"`
	JSONLogs    bool     `mapstructure:"json_logs"`
}

// envKeys maps viper keys to the environment variables that feed them.
var envKeys = map[string]string{
	"db_url":        "DB_URL",
	"rabbitmq_url":  "RABBITMQ_URL",
	"r2.account_id": "R2_ACCOUNT_ID",
	"r2.bucket":     "R2_BUCKET",
	"r2.access_key": "R2_ACCESS_KEY",
	"r2.secret_key": "R2_SECRET_KEY",
	"skills_file":   "SKILLS_FILE",
	"workers":       "WORKERS",
	"concurrency":   "CONCURRENCY",
	"debug":         "DEBUG",
	"json_logs":     "JSON_LOGS",
}

// LoadEnvFile loads variables from a .env file into the process
// environment. An explicit path must exist; the default ./.env is optional.
func LoadEnvFile(path string) error {
	if path == "" {
		if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("loading .env: %w", err)
		}
		return nil
	}

	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("loading %s: %w", path, err)
	}
	return nil
}

// Bind registers the environment variables and defaults on v.
func Bind(v *viper.Viper) error {
	for key, env := range envKeys {
		if err := v.BindEnv(key, env); err != nil {
			return fmt.Errorf("binding %s environment variable: %w", env, err)
		}
	}

	v.SetDefault("workers", DefaultWorkers)
	v.SetDefault("concurrency", DefaultConcurrency)
	return nil
}

// Load binds v and decodes it into a Config.
func Load(v *viper.Viper) (*Config, error) {
	if err := Bind(v); err != nil {
		return nil, err
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}

	if cfg.Workers < 1 {
		cfg.Workers = DefaultWorkers
	}
	if cfg.Concurrency < 1 {
		cfg.Concurrency = DefaultConcurrency
	}
	return &cfg, nil
}

// ValidateStorage reports the R2 settings that are missing.
func (c *Config) ValidateStorage() error {
	return missing(map[string]string{
		"R2_ACCOUNT_ID": c.R2.AccountID,
		"R2_BUCKET":     c.R2.Bucket,
		"R2_ACCESS_KEY": c.R2.AccessKey,
		"R2_SECRET_KEY": c.R2.SecretKey,
	})
}

// ValidateWorker reports the settings the queue worker cannot start without.
func (c *Config) ValidateWorker() error {
	if err := missing(map[string]string{
		"DB_URL":       c.DBURL,
		"RABBITMQ_URL": c.RabbitMQURL,
	}); err != nil {
		return err
	}
	return c.ValidateStorage()
}

func missing(settings map[string]string) error {
	var keys []string
	for env, value := range settings {
		if strings.TrimSpace(value) == "" {
			keys = append(keys, env)
		}
	}
	if len(keys) == 0 {
		return nil
	}

	slices.Sort(keys)
	return fmt.Errorf("%w: %s", ErrMissingSetting, strings.Join(keys, ", "))
}

// Package config loads service settings from defaults, an optional YAML
// file and the environment, in that order of precedence.
package config

import (
	"fmt"
	"os"
	"regexp"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

// DefaultConfigPaths are searched in order when CONFIG_PATH is unset.
var DefaultConfigPaths = []string{
	"config.yaml",
	"config.yml",
	"/etc/li-dashboard/config.yaml",
}

const ConfigPathEnvVar = "CONFIG_PATH"

type Config struct {
	Server    ServerConfig    `koanf:"server"`
	Database  DatabaseConfig  `koanf:"database"`
	Cache     CacheConfig     `koanf:"cache"`
	Breaker   BreakerConfig   `koanf:"breaker"`
	Logging   LoggingConfig   `koanf:"logging"`
	Dashboard DashboardConfig `koanf:"dashboard"`
}

type ServerConfig struct {
	Port            int           `koanf:"port" validate:"min=1,max=65535"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout" validate:"gt=0"`
}

type DatabaseConfig struct {
	DSN             string        `koanf:"dsn" validate:"required"`
	MaxOpenConns    int           `koanf:"max_open_conns" validate:"min=1"`
	MaxIdleConns    int           `koanf:"max_idle_conns" validate:"min=0,ltefield=MaxOpenConns"`
	ConnMaxLifetime time.Duration `koanf:"conn_max_lifetime" validate:"gte=0"`
}

type CacheConfig struct {
	// Timeout is how long a fetched dataset is served before refetching.
	Timeout time.Duration `koanf:"timeout" validate:"gt=0"`
}

type BreakerConfig struct {
	MaxRequests  uint32        `koanf:"max_requests" validate:"min=1"`
	Interval     time.Duration `koanf:"interval" validate:"gte=0"`
	Timeout      time.Duration `koanf:"timeout" validate:"gt=0"`
	MinRequests  uint32        `koanf:"min_requests" validate:"min=1"`
	FailureRatio float64       `koanf:"failure_ratio" validate:"gt=0,lte=1"`
}

type LoggingConfig struct {
	Level  string `koanf:"level" validate:"oneof=trace debug info warn error fatal disabled"`
	Format string `koanf:"format" validate:"oneof=json console"`
	Caller bool   `koanf:"caller"`
}

type DashboardConfig struct {
	// Timezone is used to present data freshness timestamps.
	Timezone string `koanf:"timezone" validate:"required,timezone"`
}

// Location resolves the dashboard timezone.
func (d DashboardConfig) Location() (*time.Location, error) {
	return time.LoadLocation(d.Timezone)
}

func defaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Port:            8080,
			ShutdownTimeout: 5 * time.Second,
		},
		Database: DatabaseConfig{
			MaxOpenConns:    20,
			MaxIdleConns:    10,
			ConnMaxLifetime: 30 * time.Minute,
		},
		Cache: CacheConfig{
			Timeout: 600 * time.Second,
		},
		Breaker: BreakerConfig{
			MaxRequests:  1,
			Interval:     time.Minute,
			Timeout:      30 * time.Second,
			MinRequests:  5,
			FailureRatio: 0.6,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
		},
		Dashboard: DashboardConfig{
			Timezone: "US/Eastern",
		},
	}
}

// Load layers defaults, the config file (if any) and environment variables,
// then validates the result.
func Load() (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(structs.Provider(defaultConfig(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	if path := findConfigFile(); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", path, err)
		}
	}

	if err := k.Load(env.Provider("", ".", envTransformFunc), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	if err := normalizeDurations(k); err != nil {
		return nil, err
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return cfg, nil
}

var validate = validator.New(validator.WithRequiredStructEnabled())

func (c *Config) Validate() error {
	return validate.Struct(c)
}

func findConfigFile() string {
	if p := os.Getenv(ConfigPathEnvVar); p != "" {
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	for _, p := range DefaultConfigPaths {
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	return ""
}

// envTransformFunc maps environment variable names onto config paths.
// Unmapped variables are skipped.
func envTransformFunc(key string) string {
	envMappings := map[string]string{
		"http_port":             "server.port",
		"shutdown_timeout":      "server.shutdown_timeout",
		"postgres_dsn":          "database.dsn",
		"db_max_open_conns":     "database.max_open_conns",
		"db_max_idle_conns":     "database.max_idle_conns",
		"db_conn_max_lifetime":  "database.conn_max_lifetime",
		"cache_timeout":         "cache.timeout",
		"breaker_max_requests":  "breaker.max_requests",
		"breaker_interval":      "breaker.interval",
		"breaker_timeout":       "breaker.timeout",
		"breaker_min_requests":  "breaker.min_requests",
		"breaker_failure_ratio": "breaker.failure_ratio",
		"log_level":             "logging.level",
		"log_format":            "logging.format",
		"log_caller":            "logging.caller",
		"dashboard_timezone":    "dashboard.timezone",
	}
	return envMappings[strings.ToLower(key)]
}

// durationPaths accept a bare number of seconds as well as Go durations,
// so CACHE_TIMEOUT=600 keeps working.
var durationPaths = []string{
	"server.shutdown_timeout",
	"database.conn_max_lifetime",
	"cache.timeout",
	"breaker.interval",
	"breaker.timeout",
}

var bareSeconds = regexp.MustCompile(`^\d+$`)

func normalizeDurations(k *koanf.Koanf) error {
	for _, path := range durationPaths {
		s, ok := k.Get(path).(string)
		if !ok || !bareSeconds.MatchString(strings.TrimSpace(s)) {
			continue
		}
		if err := k.Set(path, strings.TrimSpace(s)+"s"); err != nil {
			return fmt.Errorf("failed to set %s: %w", path, err)
		}
	}
	return nil
}

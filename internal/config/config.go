// Package config loads the server configuration from YAML with
// environment overrides for deployment-specific values.
package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/KirkDiggler/layout-api/internal/errors"
)

// Environment variables that override file values
const (
	EnvGRPCPort       = "LAYOUT_GRPC_PORT"
	EnvHTTPPort       = "LAYOUT_HTTP_PORT"
	EnvRedisEndpoints = "LAYOUT_REDIS_ENDPOINTS"
	EnvSQLitePath     = "LAYOUT_SQLITE_PATH"
	EnvLogLevel       = "LAYOUT_LOG_LEVEL"
)

// Config is the full server configuration
type Config struct {
	GRPC   GRPCConfig   `yaml:"grpc"`
	HTTP   HTTPConfig   `yaml:"http"`
	Redis  RedisConfig  `yaml:"redis"`
	SQLite SQLiteConfig `yaml:"sqlite"`
	Flags  FlagsConfig  `yaml:"flags"`
	Log    LogConfig    `yaml:"log"`
}

type GRPCConfig struct {
	Port            int           `yaml:"port"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
}

// HTTPConfig configures the browser-facing JSON surface. Port 0 disables it.
type HTTPConfig struct {
	Port         int           `yaml:"port"`
	ReadTimeout  time.Duration `yaml:"read_timeout"`
	WriteTimeout time.Duration `yaml:"write_timeout"`
	AllowOrigins []string      `yaml:"allow_origins"`
	AccessLog    bool          `yaml:"access_log"`
}

type RedisConfig struct {
	Endpoints      []string      `yaml:"endpoints"`
	DB             int           `yaml:"db"`
	PoolSize       int           `yaml:"pool_size"`
	UseTLS         bool          `yaml:"use_tls"`
	ComponentTTL   time.Duration `yaml:"component_ttl"`
	ConnectTimeout time.Duration `yaml:"connect_timeout"`
}

type SQLiteConfig struct {
	Path string `yaml:"path"`
	Seed bool   `yaml:"seed"`
}

// FlagsConfig controls how long feature flag values are cached in process
type FlagsConfig struct {
	TTL time.Duration `yaml:"ttl"`
}

// LogConfig controls the console and rotated file outputs.
// An empty File disables file logging.
type LogConfig struct {
	Level      string `yaml:"level"`
	File       string `yaml:"file"`
	MaxSizeMB  int    `yaml:"max_size_mb"`
	MaxBackups int    `yaml:"max_backups"`
}

// Default returns the configuration used when no file is given
func Default() *Config {
	return &Config{
		GRPC: GRPCConfig{
			Port:            50051,
			ShutdownTimeout: 30 * time.Second,
		},
		HTTP: HTTPConfig{
			Port:         8080,
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 10 * time.Second,
			AllowOrigins: []string{"*"},
		},
		Redis: RedisConfig{
			Endpoints:      []string{"localhost:6379"},
			PoolSize:       10,
			ComponentTTL:   10 * time.Minute,
			ConnectTimeout: 5 * time.Second,
		},
		SQLite: SQLiteConfig{
			Path: "data/layout.db",
			Seed: true,
		},
		Flags: FlagsConfig{
			TTL: 30 * time.Second,
		},
		Log: LogConfig{
			Level:      "info",
			MaxSizeMB:  10,
			MaxBackups: 3,
		},
	}
}

// Load reads the YAML file at path over the defaults, then applies
// environment overrides. An empty path skips the file.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to read config file %s", path)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, errors.WrapWithCodef(err, errors.CodeInvalidArgument, "failed to parse config file %s", path)
		}
	}

	if err := cfg.applyEnv(os.LookupEnv); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}
	return cfg, nil
}

func (c *Config) applyEnv(lookup func(string) (string, bool)) error {
	if v, ok := lookup(EnvGRPCPort); ok {
		port, err := strconv.Atoi(v)
		if err != nil {
			return errors.InvalidArgumentf("%s must be an integer, got %q", EnvGRPCPort, v)
		}
		c.GRPC.Port = port
	}
	if v, ok := lookup(EnvHTTPPort); ok {
		port, err := strconv.Atoi(v)
		if err != nil {
			return errors.InvalidArgumentf("%s must be an integer, got %q", EnvHTTPPort, v)
		}
		c.HTTP.Port = port
	}
	if v, ok := lookup(EnvRedisEndpoints); ok {
		c.Redis.Endpoints = splitList(v)
	}
	if v, ok := lookup(EnvSQLitePath); ok {
		c.SQLite.Path = v
	}
	if v, ok := lookup(EnvLogLevel); ok {
		c.Log.Level = v
	}
	return nil
}

// Validate checks ranges and required values
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.GRPC.Port <= 0 || c.GRPC.Port > 65535 {
		vb.Fieldf("grpc.port", "must be between 1 and 65535, got %d", c.GRPC.Port)
	}
	if c.HTTP.Port < 0 || c.HTTP.Port > 65535 {
		vb.Fieldf("http.port", "must be between 0 and 65535, got %d", c.HTTP.Port)
	}
	if c.HTTP.Port != 0 && c.HTTP.Port == c.GRPC.Port {
		vb.Field("http.port", "must differ from grpc.port")
	}
	if len(c.Redis.Endpoints) == 0 {
		vb.RequiredField("redis.endpoints")
	}
	if c.Redis.ComponentTTL < 0 {
		vb.Field("redis.component_ttl", "must not be negative")
	}
	if c.SQLite.Path == "" {
		vb.RequiredField("sqlite.path")
	}
	if c.Flags.TTL < 0 {
		vb.Field("flags.ttl", "must not be negative")
	}
	vb.OneOf("log.level", strings.ToLower(c.Log.Level), "debug", "info", "warn", "error")

	return vb.Build()
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

// Storage backends
const (
	BackendSQLite = "sqlite"
	BackendRedis  = "redis"
	BackendMemory = "memory"
)

const (
	defaultRedisAddr   = "localhost:6379"
	defaultRedisPrefix = "kboard:"
	defaultEventBuffer = 64
)

// ErrInvalidConfig is returned when a loaded config fails validation
var ErrInvalidConfig = errors.New("invalid config")

// Config represents the application configuration
type Config struct {
	Storage     StorageConfig `yaml:"storage"`
	Board       BoardConfig   `yaml:"board"`
	Events      EventsConfig  `yaml:"events"`
	KeyMappings KeyMappings   `yaml:"key_mappings"`
	Theme       Theme         `yaml:"theme"`
}

// StorageConfig selects where the board blob lives
type StorageConfig struct {
	Backend string      `yaml:"backend" env:"KBOARD_STORAGE_BACKEND"`
	DBPath  string      `yaml:"db_path" env:"KBOARD_DB_PATH"` // empty means ~/.kboard/kboard.db
	Redis   RedisConfig `yaml:"redis"`
}

// RedisConfig configures the redis backend
type RedisConfig struct {
	Addr   string `yaml:"addr" env:"KBOARD_REDIS_ADDR"`
	DB     int    `yaml:"db" env:"KBOARD_REDIS_DB"`
	Prefix string `yaml:"prefix" env:"KBOARD_REDIS_PREFIX"`
}

// BoardConfig holds board behaviour settings
type BoardConfig struct {
	EntryColumn string `yaml:"entry_column" env:"KBOARD_ENTRY_COLUMN"`
}

// EventsConfig sizes the in-process event bus
type EventsConfig struct {
	BufferSize int `yaml:"buffer_size" env:"KBOARD_EVENT_BUFFER"`
}

// Default returns a config with every field set to its default
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// Load loads config from the user's config directory.
// Returns default config if the file doesn't exist.
func Load() (*Config, error) {
	configPath, err := Path()
	if err != nil {
		// Can't determine config path: defaults plus environment
		return finish(&Config{})
	}
	return LoadFile(configPath)
}

// LoadFile loads config from path. A missing file yields the defaults.
// Environment variables override values from the file.
func LoadFile(path string) (*Config, error) {
	var config Config

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
	case err != nil:
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	default:
		if err := yaml.Unmarshal(data, &config); err != nil {
			return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
		}
	}

	return finish(&config)
}

func finish(config *Config) (*Config, error) {
	if err := env.Parse(config); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	config.applyDefaults()

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

// Validate checks values that defaults cannot repair
func (c *Config) Validate() error {
	switch c.Storage.Backend {
	case BackendSQLite, BackendRedis, BackendMemory:
	default:
		return fmt.Errorf("%w: unknown storage backend %q", ErrInvalidConfig, c.Storage.Backend)
	}
	if c.Storage.Redis.DB < 0 {
		return fmt.Errorf("%w: redis db must be >= 0", ErrInvalidConfig)
	}
	return nil
}

// Save saves the config to the user's config directory
func (c *Config) Save() error {
	configPath, err := Path()
	if err != nil {
		return err
	}
	return c.SaveTo(configPath)
}

// SaveTo writes the config as YAML to path, creating parent directories
func (c *Config) SaveTo(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config dir: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}

	return os.WriteFile(path, data, 0o644)
}

// Path returns the path of the user's config file
func Path() (string, error) {
	// Try XDG_CONFIG_HOME first
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, "kboard", "config.yaml"), nil
	}

	// Fall back to ~/.config
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(homeDir, ".config", "kboard", "config.yaml"), nil
}

// applyDefaults fills in missing configuration with defaults
func (c *Config) applyDefaults() {
	if c.Storage.Backend == "" {
		c.Storage.Backend = BackendSQLite
	}
	if c.Storage.Redis.Addr == "" {
		c.Storage.Redis.Addr = defaultRedisAddr
	}
	if c.Storage.Redis.Prefix == "" {
		c.Storage.Redis.Prefix = defaultRedisPrefix
	}
	if c.Events.BufferSize <= 0 {
		c.Events.BufferSize = defaultEventBuffer
	}
	c.KeyMappings.applyDefaults()
	c.Theme.ApplyDefaults()
}

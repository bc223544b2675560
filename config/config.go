package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/rustyeddy/tradebook/journal"
	"github.com/rustyeddy/tradebook/storage"
)

// Config represents the complete tradebook configuration
type Config struct {
	Storage StorageConfig `json:"storage" yaml:"storage"`
	Log     LogConfig     `json:"log" yaml:"log"`
	View    ViewConfig    `json:"view" yaml:"view"`
}

// StorageConfig selects where the journal document lives
type StorageConfig struct {
	Type string `json:"type" yaml:"type"` // "file", "sqlite" or "memory"
	Path string `json:"path,omitempty" yaml:"path,omitempty"`
	Key  string `json:"key,omitempty" yaml:"key,omitempty"`
}

// LogConfig contains logging parameters
type LogConfig struct {
	Level  string `json:"level" yaml:"level"`
	Pretty bool   `json:"pretty" yaml:"pretty"`
}

// ViewConfig contains trade list parameters
type ViewConfig struct {
	PageSize int `json:"page_size" yaml:"page_size"`
}

// Default returns a configuration backed by a SQLite file in the working
// directory.
func Default() *Config {
	return &Config{
		Storage: StorageConfig{
			Type: storage.TypeSQLite,
			Path: "tradebook.db",
			Key:  journal.StorageKey,
		},
		Log: LogConfig{
			Level:  "info",
			Pretty: true,
		},
		View: ViewConfig{
			PageSize: journal.DefaultPerPage,
		},
	}
}

// Load builds the configuration: defaults, then the file at path if one
// is given, then environment overrides.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path != "" {
		loaded, err := LoadFromFile(path)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}
	cfg.ApplyEnv()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// LoadFromFile loads configuration from a file (YAML or JSON)
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	cfg := Default()

	// Try YAML first, fall back to JSON
	err = yaml.Unmarshal(data, cfg)
	if err != nil {
		cfg = Default()
		err = json.Unmarshal(data, cfg)
		if err != nil {
			return nil, fmt.Errorf("parse config (tried YAML and JSON): %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// SaveToFile saves configuration to a file (JSON or YAML based on extension)
func (c *Config) SaveToFile(path string) error {
	var data []byte
	var err error

	if strings.HasSuffix(path, ".yaml") || strings.HasSuffix(path, ".yml") {
		data, err = yaml.Marshal(c)
	} else {
		data, err = json.MarshalIndent(c, "", "  ")
	}

	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}

	return nil
}

// ApplyEnv loads an optional .env file and lets TRADEBOOK_* variables
// override what was configured.
func (c *Config) ApplyEnv() {
	_ = godotenv.Load()

	c.Storage.Type = getEnv("TRADEBOOK_STORAGE_TYPE", c.Storage.Type)
	c.Storage.Path = getEnv("TRADEBOOK_STORAGE_PATH", c.Storage.Path)
	c.Log.Level = getEnv("TRADEBOOK_LOG_LEVEL", c.Log.Level)
	c.Log.Pretty = getEnvAsBool("TRADEBOOK_LOG_PRETTY", c.Log.Pretty)
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	switch c.Storage.Type {
	case storage.TypeMemory:
	case storage.TypeFile, storage.TypeSQLite:
		if c.Storage.Path == "" {
			return fmt.Errorf("storage.path is required for %s storage", c.Storage.Type)
		}
	default:
		return fmt.Errorf("storage.type must be 'file', 'sqlite' or 'memory'")
	}
	switch strings.ToLower(c.Log.Level) {
	case "", "trace", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown log.level: %s", c.Log.Level)
	}
	if c.View.PageSize <= 0 {
		return fmt.Errorf("view.page_size must be positive")
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return defaultValue
}

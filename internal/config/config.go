package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/pankajredekar/namecraft/internal/store"
)

// DefaultPath is the config file looked up in the working directory
const DefaultPath = "namecraft.yml"

type Config struct {
	DatabaseURL   string `yaml:"database_url" env:"NAMECRAFT_DATABASE_URL"`
	StoreTable    string `yaml:"store_table" env:"NAMECRAFT_STORE_TABLE"`
	GenerateCount int    `yaml:"generate_count" env:"NAMECRAFT_GENERATE_COUNT"`
	LogLevel      string `yaml:"log_level" env:"NAMECRAFT_LOG_LEVEL"`
}

// Default returns the config written by `namecraft init`
func Default() *Config {
	return &Config{
		DatabaseURL:   "sqlite://namecraft.db",
		StoreTable:    store.DefaultTable,
		GenerateCount: 5,
		LogLevel:      "info",
	}
}

func LoadConfig(configPath string) (*Config, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	// A missing .env file is fine
	_ = godotenv.Load(filepath.Join(filepath.Dir(configPath), ".env"))
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}

	// Set defaults
	if cfg.StoreTable == "" {
		cfg.StoreTable = store.DefaultTable
	}
	if cfg.GenerateCount == 0 {
		cfg.GenerateCount = 5
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}

	// Resolve relative sqlite paths
	if path, ok := strings.CutPrefix(cfg.DatabaseURL, "sqlite://"); ok && path != ":memory:" && !filepath.IsAbs(path) {
		cfg.DatabaseURL = "sqlite://" + filepath.Join(filepath.Dir(configPath), path)
	}

	return &cfg, nil
}

// Save writes the config as YAML
func (c *Config) Save(configPath string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to generate config: %w", err)
	}
	if err := os.WriteFile(configPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

func (c *Config) Validate() error {
	if c.DatabaseURL == "" {
		return fmt.Errorf("database_url is required")
	}
	if c.GenerateCount < 0 {
		return fmt.Errorf("generate_count must not be negative")
	}
	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log_level must be one of debug, info, warn, error")
	}
	return nil
}

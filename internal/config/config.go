// Package config loads service settings from .env, an optional YAML file and
// the environment, in that order of increasing precedence.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// LLMConfig configures the text-generation service.
type LLMConfig struct {
	URL          string        `yaml:"url"`
	Model        string        `yaml:"model"`
	SystemPrompt string        `yaml:"system_prompt"`
	Timeout      time.Duration `yaml:"timeout"`
	Retries      int           `yaml:"retries"`
}

// DataConfig locates the datasets.
type DataConfig struct {
	ProjectRoot         string `yaml:"project_root"`
	DataDir             string `yaml:"data_dir"`
	PrimaryFile         string `yaml:"primary_file"`
	CascadingDelaysFile string `yaml:"cascading_delays_file"`
}

// DatabaseConfig selects the query-history database.
type DatabaseConfig struct {
	Driver string `yaml:"driver"` // sqlite, postgres or none
	DSN    string `yaml:"dsn"`
}

// NATSConfig enables query events when URL is set.
type NATSConfig struct {
	URL     string `yaml:"url"`
	Subject string `yaml:"subject"`
}

// Config is the root configuration.
type Config struct {
	Port            string         `yaml:"port"`
	GinMode         string         `yaml:"gin_mode"`
	MonitorSchedule string         `yaml:"monitor_schedule"`
	LLM             LLMConfig      `yaml:"llm"`
	Data            DataConfig     `yaml:"data"`
	Database        DatabaseConfig `yaml:"database"`
	NATS            NATSConfig     `yaml:"nats"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Port:            "5001",
		GinMode:         "debug",
		MonitorSchedule: "@every 1m",
		LLM: LLMConfig{
			URL:     "http://localhost:11434/api/generate",
			Model:   "flight-assistant",
			Timeout: 60 * time.Second,
			Retries: 1,
		},
		Database: DatabaseConfig{
			Driver: "sqlite",
			DSN:    "flight_assistant.db",
		},
		NATS: NATSConfig{
			Subject: "flight.assistant.queries",
		},
	}
}

// Load builds the configuration. path names an optional YAML file; when empty
// CONFIG_FILE is consulted.
func Load(path string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env file: %w", err)
	}

	cfg := Default()

	if path == "" {
		path = os.Getenv("CONFIG_FILE")
	}
	if path != "" {
		if err := loadFile(path, &cfg); err != nil {
			return nil, err
		}
		log.Printf("Loaded configuration file %s", path)
	}

	if err := applyEnv(&cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func loadFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("cannot read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("cannot unmarshal config file %s: %w", path, err)
	}
	return nil
}

func applyEnv(cfg *Config) error {
	cfg.Port = getEnv("PORT", cfg.Port)
	cfg.GinMode = getEnv("GIN_MODE", cfg.GinMode)
	cfg.MonitorSchedule = getEnv("MONITOR_SCHEDULE", cfg.MonitorSchedule)

	cfg.LLM.URL = getEnv("OLLAMA_URL", cfg.LLM.URL)
	cfg.LLM.Model = getEnv("LLM_MODEL", cfg.LLM.Model)
	cfg.LLM.SystemPrompt = getEnv("LLM_SYSTEM_PROMPT", cfg.LLM.SystemPrompt)
	if v, ok := os.LookupEnv("LLM_TIMEOUT"); ok {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("invalid LLM_TIMEOUT %q: %w", v, err)
		}
		cfg.LLM.Timeout = d
	}
	if v, ok := os.LookupEnv("LLM_RETRIES"); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid LLM_RETRIES %q: %w", v, err)
		}
		cfg.LLM.Retries = n
	}

	cfg.Data.ProjectRoot = getEnv("PROJECT_ROOT", cfg.Data.ProjectRoot)
	cfg.Data.DataDir = getEnv("DATA_DIR", cfg.Data.DataDir)
	cfg.Data.PrimaryFile = getEnv("PRIMARY_DATA_FILE", cfg.Data.PrimaryFile)
	cfg.Data.CascadingDelaysFile = getEnv("CASCADING_DELAYS_FILE", cfg.Data.CascadingDelaysFile)

	cfg.Database.Driver = getEnv("DB_DRIVER", cfg.Database.Driver)
	cfg.Database.DSN = getEnv("DB_DSN", cfg.Database.DSN)

	cfg.NATS.URL = getEnv("NATS_URL", cfg.NATS.URL)
	cfg.NATS.Subject = getEnv("NATS_SUBJECT", cfg.NATS.Subject)
	return nil
}

// Validate checks values that would otherwise fail late.
func (c Config) Validate() error {
	if c.Port == "" {
		return errors.New("port must not be empty")
	}
	if c.LLM.URL == "" {
		return errors.New("llm url must not be empty")
	}
	if c.LLM.Timeout <= 0 {
		return fmt.Errorf("llm timeout must be positive, got %s", c.LLM.Timeout)
	}
	if c.LLM.Retries < 0 {
		return fmt.Errorf("llm retries must not be negative, got %d", c.LLM.Retries)
	}
	switch c.GinMode {
	case "debug", "release", "test":
	default:
		return fmt.Errorf("unsupported gin mode %q", c.GinMode)
	}
	switch c.Database.Driver {
	case "sqlite", "postgres", "none":
	default:
		return fmt.Errorf("unsupported database driver %q", c.Database.Driver)
	}
	return nil
}

// getEnv reads an environment variable or returns a default value.
func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

// Package config provides configuration management for notedeck.
//
// Config file locations (priority order):
//  1. $NOTEDECK_CONFIG
//  2. ./notedeck.yaml
//
// Missing files are not an error; defaults cover every field. The
// Anthropic API key is never stored in the file, only read from the
// ANTHROPIC_API_KEY environment variable.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is the full server configuration.
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Database DatabaseConfig `yaml:"database"`
	AI       AIConfig       `yaml:"ai"`
	Speech   SpeechConfig   `yaml:"speech"`
}

// ServerConfig holds HTTP listener settings.
type ServerConfig struct {
	Addr string `yaml:"addr"`
}

// DatabaseConfig holds the SQLite location.
type DatabaseConfig struct {
	Path string `yaml:"path"`
}

// AIConfig holds summarization collaborator settings.
type AIConfig struct {
	Model   string   `yaml:"model"`
	Timeout Duration `yaml:"timeout"`
}

// SpeechConfig holds speech synthesis collaborator settings.
type SpeechConfig struct {
	Endpoint string   `yaml:"endpoint"`
	Language string   `yaml:"language"`
	Timeout  Duration `yaml:"timeout"`
}

// Duration wraps time.Duration for YAML unmarshaling
type Duration time.Duration

// UnmarshalYAML implements yaml.Unmarshaler
func (d *Duration) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var s string
	if err := unmarshal(&s); err != nil {
		return err
	}
	parsed, err := time.ParseDuration(s)
	if err != nil {
		return err
	}
	*d = Duration(parsed)
	return nil
}

// MarshalYAML implements yaml.Marshaler
func (d Duration) MarshalYAML() (interface{}, error) {
	return time.Duration(d).String(), nil
}

// Duration returns the underlying time.Duration
func (d Duration) Duration() time.Duration {
	return time.Duration(d)
}

// Load finds and loads the config file, or returns defaults if none found
func Load() (*Config, string, error) {
	path := FindConfigPath()

	if path == "" {
		return DefaultConfig(), "", nil
	}

	return LoadFromPath(path)
}

// LoadFromPath loads config from a specific path
func LoadFromPath(path string) (*Config, string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, path, fmt.Errorf("read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, path, fmt.Errorf("parse config: %w", err)
	}

	cfg.applyDefaults()

	return &cfg, path, nil
}

// FindConfigPath returns the first config path that exists, or "".
func FindConfigPath() string {
	if path := os.Getenv("NOTEDECK_CONFIG"); path != "" {
		return path
	}
	if _, err := os.Stat("./notedeck.yaml"); err == nil {
		return "./notedeck.yaml"
	}
	return ""
}

// APIKey returns the Anthropic API key from the environment.
func APIKey() string {
	return os.Getenv("ANTHROPIC_API_KEY")
}

// DefaultConfig returns sensible defaults for a new installation
func DefaultConfig() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// applyDefaults fills in missing values with defaults
func (c *Config) applyDefaults() {
	if c.Server.Addr == "" {
		c.Server.Addr = ":8080"
	}
	if c.Database.Path == "" {
		c.Database.Path = "./notedeck.db"
	}
	if c.AI.Model == "" {
		c.AI.Model = "claude-3-5-haiku-20241022"
	}
	if c.AI.Timeout == 0 {
		c.AI.Timeout = Duration(30 * time.Second)
	}
	if c.Speech.Endpoint == "" {
		c.Speech.Endpoint = "https://translate.google.com/translate_tts"
	}
	if c.Speech.Language == "" {
		c.Speech.Language = "en"
	}
	if c.Speech.Timeout == 0 {
		c.Speech.Timeout = Duration(30 * time.Second)
	}
}

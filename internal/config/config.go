// Package config manages persistent application configuration.
// Config lives at ~/.parley/config.json; secrets come from the environment
// (optionally via a .env file) and are never written to disk.
package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/joho/godotenv"

	perrors "github.com/parleyhq/parley/internal/errors"
)

// Producer selection values for Config.Producer.
const (
	ProducerScript = "script"
	ProducerOpenAI = "openai"
)

// Defaults applied when a field is absent from the config file.
const (
	DefaultBusinessName     = "Aurora Cleaning"
	DefaultWebsiteURL       = "https://auroracleaning.example.com"
	DefaultOpenAIModel      = "gpt-4o-mini"
	DefaultTypingDelayMinMs = 800
	DefaultTypingDelayMaxMs = 1800
)

// APIKeyEnvVar is the environment variable holding the OpenAI-compatible API key.
const APIKeyEnvVar = "PARLEY_OPENAI_API_KEY"

// Config holds the application configuration
type Config struct {
	Producer         string `json:"producer,omitempty"`            // "script" (default) or "openai"
	BusinessName     string `json:"business_name,omitempty"`       // Name shown as the bot sender
	WebsiteURL       string `json:"website_url,omitempty"`         // Target of the "visit website" quick reply
	OpenAIBaseURL    string `json:"openai_base_url,omitempty"`     // Override for OpenAI-compatible endpoints
	OpenAIModel      string `json:"openai_model,omitempty"`        // Model for the remote producer
	TypingDelayMinMs int    `json:"typing_delay_min_ms,omitempty"` // Lower bound of the typing-indicator delay
	TypingDelayMaxMs int    `json:"typing_delay_max_ms,omitempty"` // Upper bound of the typing-indicator delay
	Notifications    bool   `json:"notifications,omitempty"`       // Desktop notification on unread bot messages

	mu       sync.RWMutex
	filePath string
}

// configDir returns the path to the config directory
func configDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".parley"), nil
}

// configPath returns the path to the config file
func configPath() (string, error) {
	dir, err := configDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

// Load reads the config from the default location, or returns defaults if no
// config file exists yet.
func Load() (*Config, error) {
	path, err := configPath()
	if err != nil {
		return nil, perrors.ConfigLoadFailed("<home>", err)
	}
	return LoadFrom(path)
}

// LoadFrom reads the config from an explicit path. Used by Load and by tests.
func LoadFrom(path string) (*Config, error) {
	cfg := &Config{filePath: path}
	cfg.applyDefaults()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return nil, perrors.ConfigLoadFailed(path, err)
	}

	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, perrors.ConfigLoadFailed(path, err)
	}
	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// applyDefaults fills zero-valued fields with defaults. Called during load
// before the config is shared, so no locking is needed.
func (c *Config) applyDefaults() {
	if c.Producer == "" {
		c.Producer = ProducerScript
	}
	if c.BusinessName == "" {
		c.BusinessName = DefaultBusinessName
	}
	if c.WebsiteURL == "" {
		c.WebsiteURL = DefaultWebsiteURL
	}
	if c.OpenAIModel == "" {
		c.OpenAIModel = DefaultOpenAIModel
	}
	if c.TypingDelayMinMs == 0 {
		c.TypingDelayMinMs = DefaultTypingDelayMinMs
	}
	if c.TypingDelayMaxMs == 0 {
		c.TypingDelayMaxMs = DefaultTypingDelayMaxMs
	}
}

// Validate checks the config for inconsistent values.
func (c *Config) Validate() error {
	if c.Producer != ProducerScript && c.Producer != ProducerOpenAI {
		return perrors.ConfigInvalid("producer must be \"script\" or \"openai\"")
	}
	if c.TypingDelayMinMs < 0 || c.TypingDelayMaxMs < 0 {
		return perrors.ConfigInvalid("typing delay bounds must be non-negative")
	}
	if c.TypingDelayMaxMs < c.TypingDelayMinMs {
		return perrors.ConfigInvalid("typing_delay_max_ms must be >= typing_delay_min_ms")
	}
	return nil
}

// Save writes the config to its file path, creating the directory if needed.
func (c *Config) Save() error {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if err := os.MkdirAll(filepath.Dir(c.filePath), 0755); err != nil {
		return perrors.ConfigSaveFailed(c.filePath, err)
	}
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return perrors.ConfigSaveFailed(c.filePath, err)
	}
	if err := os.WriteFile(c.filePath, data, 0644); err != nil {
		return perrors.ConfigSaveFailed(c.filePath, err)
	}
	return nil
}

// SetProducer updates the producer selection.
func (c *Config) SetProducer(producer string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.Producer = producer
}

// GetProducer returns the producer selection.
func (c *Config) GetProducer() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.Producer
}

// APIKey returns the OpenAI-compatible API key from the environment.
// A .env file in the working directory is honored if present.
func APIKey() string {
	// Best effort; a missing .env file is the normal case.
	_ = godotenv.Load()
	return strings.TrimSpace(os.Getenv(APIKeyEnvVar))
}

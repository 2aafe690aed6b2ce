// Package cliconfig resolves CLI settings from a YAML config file and
// environment variables.
//
// Resolution order, highest first: command-line flag (handled by the
// caller), environment variable, config file, built-in default. The config
// file lives at ~/.inkops/config.yaml.
package cliconfig

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Defaults and well-known names.
const (
	// DefaultServerURL is the local back-office server address.
	DefaultServerURL = "http://localhost:5000"

	// ConfigDirName is the per-user configuration directory.
	ConfigDirName = ".inkops"

	// ConfigFileName is the config file inside ConfigDirName.
	ConfigFileName = "config.yaml"

	// EnvServerURL overrides the server URL.
	EnvServerURL = "INKOPS_SERVER_URL"

	// EnvAPIKey overrides the API key.
	EnvAPIKey = "INKOPS_API_KEY"
)

// Common errors for configuration loading.
var (
	ErrInvalidYAML = errors.New("invalid YAML syntax")
)

// Config holds the persisted CLI settings.
type Config struct {
	// ServerURL is the back-office server base URL.
	ServerURL string `yaml:"serverUrl,omitempty"`

	// APIKey authenticates requests, sent as X-API-Key.
	APIKey string `yaml:"apiKey,omitempty"`

	// TimeoutSeconds bounds each HTTP request. Zero means the client
	// default.
	TimeoutSeconds int `yaml:"timeoutSeconds,omitempty"`

	// LogLevel is debug, info, warn, or error.
	LogLevel string `yaml:"logLevel,omitempty"`

	// LogFormat is text or json.
	LogFormat string `yaml:"logFormat,omitempty"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		ServerURL: DefaultServerURL,
		LogLevel:  "info",
		LogFormat: "text",
	}
}

// Path returns the config file location.
func Path() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine home directory: %w", err)
	}
	return filepath.Join(home, ConfigDirName, ConfigFileName), nil
}

// Load reads the config file and applies environment overrides. A missing
// file is not an error; defaults are returned.
func Load() (*Config, error) {
	path, err := Path()
	if err != nil {
		return applyEnv(Default()), nil
	}
	return LoadFrom(path)
}

// LoadFrom reads a specific config file and applies environment overrides.
func LoadFrom(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return applyEnv(cfg), nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidYAML, path)
	}
	if cfg.ServerURL == "" {
		cfg.ServerURL = DefaultServerURL
	}
	return applyEnv(cfg), nil
}

// applyEnv layers environment variables over cfg.
func applyEnv(cfg *Config) *Config {
	if v := os.Getenv(EnvServerURL); v != "" {
		cfg.ServerURL = v
	}
	if v := os.Getenv(EnvAPIKey); v != "" {
		cfg.APIKey = v
	}
	return cfg
}

// Save writes cfg to the default location, creating the directory.
func Save(cfg *Config) error {
	path, err := Path()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

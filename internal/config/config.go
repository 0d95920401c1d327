package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/pelletier/go-toml/v2"
)

const (
	DefaultSourceURL      = "https://api-eu.okotoki.com/coins"
	DefaultTimeoutSeconds = 10
	DefaultThreshold      = 0.3
	DefaultMaxRows        = 12
	DefaultPanelWidth     = 40
	DefaultLogFile        = "coinpicker.log"
)

// Config represents the application configuration
type Config struct {
	Version               int            `toml:"version"`
	SourceURL             string         `toml:"source_url"`
	RequestTimeoutSeconds int            `toml:"request_timeout_seconds"`
	LogFile               string         `toml:"log_file"`
	Search                SearchSettings `toml:"search"`
	UISettings            UISettings     `toml:"ui"`
}

// SearchSettings controls the fuzzy matcher
type SearchSettings struct {
	Threshold float64  `toml:"threshold"`
	Keys      []string `toml:"keys"`
}

// UISettings represents UI-related configuration
type UISettings struct {
	MaxRows    int `toml:"max_rows"`
	PanelWidth int `toml:"panel_width"`
}

// RequestTimeout returns the HTTP timeout for the coin source
func (c *Config) RequestTimeout() time.Duration {
	return time.Duration(c.RequestTimeoutSeconds) * time.Second
}

// Validate replaces out-of-range values with their defaults
func (c *Config) Validate() {
	if c.Version == 0 {
		c.Version = 1
	}
	if c.SourceURL == "" {
		c.SourceURL = DefaultSourceURL
	}
	if c.RequestTimeoutSeconds <= 0 {
		c.RequestTimeoutSeconds = DefaultTimeoutSeconds
	}
	if c.LogFile == "" {
		c.LogFile = DefaultLogFile
	}
	if c.Search.Threshold <= 0 || c.Search.Threshold > 1 {
		c.Search.Threshold = DefaultThreshold
	}
	if len(c.Search.Keys) == 0 {
		c.Search.Keys = []string{"name", "symbol"}
	}
	if c.UISettings.MaxRows <= 0 {
		c.UISettings.MaxRows = DefaultMaxRows
	}
	if c.UISettings.PanelWidth < 30 {
		c.UISettings.PanelWidth = DefaultPanelWidth
	}
}

// ConfigService handles configuration management
type ConfigService interface {
	Load() (*Config, error)
	Save(config *Config) error
	LoadFromPath(path string) (*Config, error)
	SaveToPath(config *Config, path string) error
	Path() string
}

// configService is the concrete implementation
type configService struct {
	filePath string
}

// NewConfigService creates a config service using the user config directory
func NewConfigService() ConfigService {
	configDir, err := os.UserConfigDir()
	if err != nil {
		// Fallback to home directory
		configDir, err = os.UserHomeDir()
		if err != nil {
			configDir = "."
		}
		configDir = filepath.Join(configDir, ".config")
	}

	return &configService{
		filePath: filepath.Join(configDir, "coinpicker", "config.toml"),
	}
}

// NewConfigServiceAt creates a config service bound to a specific file
func NewConfigServiceAt(path string) ConfigService {
	return &configService{filePath: path}
}

// Path returns the file the service loads from and saves to
func (cs *configService) Path() string {
	return cs.filePath
}

// Load loads the configuration from file.
// A missing file yields the default configuration.
func (cs *configService) Load() (*Config, error) {
	cfg, err := cs.LoadFromPath(cs.filePath)
	if errors.Is(err, fs.ErrNotExist) {
		return DefaultConfig(), nil
	}
	return cfg, err
}

// Save saves the configuration to file
func (cs *configService) Save(config *Config) error {
	return cs.SaveToPath(config, cs.filePath)
}

// LoadFromPath loads configuration from a specific path
func (cs *configService) LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	cfg.Validate()

	return cfg, nil
}

// SaveToPath saves configuration to a specific path
func (cs *configService) SaveToPath(config *Config, path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := toml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Version:               1,
		SourceURL:             DefaultSourceURL,
		RequestTimeoutSeconds: DefaultTimeoutSeconds,
		LogFile:               DefaultLogFile,
		Search: SearchSettings{
			Threshold: DefaultThreshold,
			Keys:      []string{"name", "symbol"},
		},
		UISettings: UISettings{
			MaxRows:    DefaultMaxRows,
			PanelWidth: DefaultPanelWidth,
		},
	}
}

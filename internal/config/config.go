package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds the application configuration
type Config struct {
	Archive ArchiveConfig `yaml:"archive,omitempty"`
	DataDir string        `yaml:"data_dir,omitempty"` // Download target directory (fallback: ./data)
	MQTT    MQTTConfig    `yaml:"mqtt,omitempty"`
}

// ArchiveConfig holds settings for the remote archive service
type ArchiveConfig struct {
	BaseURL        string  `yaml:"base_url,omitempty"`        // Archive API base URL
	TimeoutSeconds int     `yaml:"timeout_seconds,omitempty"` // Per-request timeout (fallback: 30)
	RadiusDeg      float64 `yaml:"radius_deg,omitempty"`      // Default cone-search radius in degrees
}

// MQTTConfig holds MQTT broker settings for publishing summaries
type MQTTConfig struct {
	Enabled     bool   `yaml:"enabled"`
	Broker      string `yaml:"broker"` // host:port
	Username    string `yaml:"username,omitempty"`
	Password    string `yaml:"password,omitempty"`
	TopicPrefix string `yaml:"topic_prefix,omitempty"` // e.g. "lightcurve"
}

// Load reads the config file
func Load(configPath string) (*Config, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			// Return empty config if file doesn't exist
			return &Config{}, nil
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	return &cfg, nil
}

// Save writes the config to file
func Save(configPath string, cfg *Config) error {
	// Ensure directory exists
	dir := filepath.Dir(configPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	if err := os.WriteFile(configPath, data, 0600); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}

// DefaultConfigPath returns the default config file path (local directory)
func DefaultConfigPath() string {
	return "config.yaml"
}

// GetBaseURL returns the archive base URL with the public MAST endpoint as default
func (c *Config) GetBaseURL() string {
	if c.Archive.BaseURL != "" {
		return c.Archive.BaseURL
	}
	return "https://mast.stsci.edu"
}

// GetTimeout returns the per-request timeout with a default of 30 seconds
func (c *Config) GetTimeout() time.Duration {
	if c.Archive.TimeoutSeconds <= 0 {
		return 30 * time.Second
	}
	return time.Duration(c.Archive.TimeoutSeconds) * time.Second
}

// GetRadiusDeg returns the default cone-search radius with 0.02 degrees as default
func (c *Config) GetRadiusDeg() float64 {
	if c.Archive.RadiusDeg <= 0 {
		return 0.02
	}
	return c.Archive.RadiusDeg
}

// GetDataDir returns the download directory with ./data as default
func (c *Config) GetDataDir() string {
	if c.DataDir != "" {
		return c.DataDir
	}
	return "data"
}

package aci

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	DefaultBaseURL     = "https://api.aci.dev/v1"
	DefaultTimeoutSecs = 30
)

// Config controls how the ACI platform is reached.
type Config struct {
	APIKey      string `yaml:"api_key"`
	BaseURL     string `yaml:"base_url"`
	TimeoutSecs int    `yaml:"timeout_seconds"`
}

// WithDefaults fills unset fields with defaults.
func (c *Config) WithDefaults() *Config {
	if c == nil {
		c = &Config{}
	}
	c.APIKey = strings.TrimSpace(c.APIKey)
	if strings.TrimSpace(c.BaseURL) == "" {
		c.BaseURL = DefaultBaseURL
	}
	c.BaseURL = strings.TrimRight(strings.TrimSpace(c.BaseURL), "/")
	if c.TimeoutSecs <= 0 {
		c.TimeoutSecs = DefaultTimeoutSecs
	}
	return c
}

// ConfigFromEnv builds a config using environment variables.
func ConfigFromEnv() *Config {
	cfg := &Config{
		APIKey:  strings.TrimSpace(os.Getenv("ACI_API_KEY")),
		BaseURL: strings.TrimSpace(os.Getenv("ACI_SERVER_URL")),
	}
	return cfg.WithDefaults()
}

// ApplyEnvDefaults fills empty config fields from environment variables.
func ApplyEnvDefaults(cfg *Config) *Config {
	if cfg == nil {
		return ConfigFromEnv()
	}
	baseSet := strings.TrimSpace(cfg.BaseURL) != ""
	current := cfg.WithDefaults()
	envCfg := ConfigFromEnv()

	if current.APIKey == "" {
		current.APIKey = envCfg.APIKey
	}
	if !baseSet {
		current.BaseURL = envCfg.BaseURL
	}
	return current
}

type fileConfig struct {
	ACI Config `yaml:"aci"`
}

// LoadConfig reads the aci section of a YAML config file and fills the
// blanks from the environment. An empty path uses the environment only.
func LoadConfig(path string) (*Config, error) {
	if strings.TrimSpace(path) == "" {
		return ConfigFromEnv(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	var parsed fileConfig
	if err := yaml.Unmarshal(data, &parsed); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return ApplyEnvDefaults(&parsed.ACI), nil
}

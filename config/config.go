package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v2"

	"cgpa-agent/domain"
)

// Config represents the application configuration
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Redis     RedisConfig     `yaml:"redis"`
	Scale     ScaleConfig     `yaml:"scale"`
	RateLimit RateLimitConfig `yaml:"rate_limit"`
}

// ServerConfig represents the HTTP server configuration
type ServerConfig struct {
	Addr                string `yaml:"addr"`
	ReadTimeoutSeconds  int    `yaml:"read_timeout_seconds"`
	WriteTimeoutSeconds int    `yaml:"write_timeout_seconds"`
	IdleTimeoutSeconds  int    `yaml:"idle_timeout_seconds"`
}

// RedisConfig represents the trajectory cache configuration.
// An empty address falls back to the in-memory cache.
type RedisConfig struct {
	Addr string `yaml:"addr"`
}

// ScaleConfig represents the institution grade scale bounds
type ScaleConfig struct {
	Min float64 `yaml:"min"`
	Max float64 `yaml:"max"`
}

// RateLimitConfig represents the per-client rate limit
type RateLimitConfig struct {
	Requests      int `yaml:"requests"`
	WindowSeconds int `yaml:"window_seconds"`
}

// DefaultConfig returns a configuration usable without any config file.
func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Addr:                ":8080",
			ReadTimeoutSeconds:  15,
			WriteTimeoutSeconds: 15,
			IdleTimeoutSeconds:  60,
		},
		Scale: ScaleConfig{Min: 0.0, Max: 4.0},
		RateLimit: RateLimitConfig{
			Requests:      5,
			WindowSeconds: 60,
		},
	}
}

// LoadConfig loads configuration from a YAML file. An empty path returns
// the defaults.
func LoadConfig(configPath string) (*Config, error) {
	if configPath == "" {
		return DefaultConfig(), nil
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := DefaultConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Server.Addr == "" {
		return fmt.Errorf("server address is required")
	}

	if c.Scale.Min >= c.Scale.Max {
		return fmt.Errorf("scale min must be below scale max")
	}

	if c.Scale.Max <= 0 {
		return fmt.Errorf("scale max must be positive")
	}

	if c.RateLimit.Requests <= 0 {
		return fmt.Errorf("rate limit requests must be positive")
	}

	if c.RateLimit.WindowSeconds <= 0 {
		return fmt.Errorf("rate limit window must be positive")
	}

	return nil
}

// GradeScale returns the configured scale as a domain value.
func (c *Config) GradeScale() domain.GradeScale {
	return domain.GradeScale{Min: c.Scale.Min, Max: c.Scale.Max}
}

package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Environment variables that override the built-in defaults.
const (
	EnvSmallRatio = "PHOTO_MINUTES_SMALL_RATIO"
	EnvLargeRatio = "PHOTO_MINUTES_LARGE_RATIO"
	EnvBaseURL    = "PHOTO_MINUTES_BASE_URL"
	EnvTitle      = "PHOTO_MINUTES_TITLE"
)

// Config represents the run configuration
type Config struct {
	Input   string `yaml:"input"`
	Output  string `yaml:"output"`
	BaseURL string `yaml:"online_base_path"`
	Title   string `yaml:"title"`

	Images    ImagesConfig    `yaml:"images"`
	Documents DocumentsConfig `yaml:"documents"`
}

// ImagesConfig controls the two generated variants.
type ImagesConfig struct {
	SmallRatio     float64 `yaml:"small_ratio"`
	LargeRatio     float64 `yaml:"large_ratio"`
	SkipConversion bool    `yaml:"skip_conversion"`
}

// DocumentsConfig selects the extra editions written next to the images.
type DocumentsConfig struct {
	Name     string `yaml:"name"`
	Markdown bool   `yaml:"markdown"`
	HTML     bool   `yaml:"html"`
	PDF      bool   `yaml:"pdf"`
	Manifest bool   `yaml:"manifest"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Title: "Photo minutes",
		Images: ImagesConfig{
			SmallRatio: 0.4,
			LargeRatio: 1.0,
		},
		Documents: DocumentsConfig{
			Name: "minutes",
		},
	}
}

// Load reads the configuration file on top of the defaults
func Load(path string) (*Config, error) {
	cfg := Default()
	if err := cfg.ApplyEnv(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	return cfg, nil
}

// ApplyEnv overrides defaults with PHOTO_MINUTES_* environment variables.
func (c *Config) ApplyEnv() error {
	if v := strings.TrimSpace(os.Getenv(EnvSmallRatio)); v != "" {
		ratio, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("invalid %s: %w", EnvSmallRatio, err)
		}
		c.Images.SmallRatio = ratio
	}
	if v := strings.TrimSpace(os.Getenv(EnvLargeRatio)); v != "" {
		ratio, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("invalid %s: %w", EnvLargeRatio, err)
		}
		c.Images.LargeRatio = ratio
	}
	if v := os.Getenv(EnvBaseURL); v != "" {
		c.BaseURL = v
	}
	if v := os.Getenv(EnvTitle); v != "" {
		c.Title = v
	}
	return nil
}

// Validate checks if required configuration fields are set
func (c *Config) Validate() error {
	if c.Input == "" {
		return fmt.Errorf("input is required (INPUT argument or input key)")
	}
	if c.Output == "" {
		return fmt.Errorf("output is required (OUTPUT argument or output key)")
	}
	if c.BaseURL == "" {
		return fmt.Errorf("online_base_path is required (ONLINE_BASE_PATH argument, online_base_path key or %s)", EnvBaseURL)
	}
	if err := validRatio("images.small_ratio", c.Images.SmallRatio); err != nil {
		return err
	}
	if err := validRatio("images.large_ratio", c.Images.LargeRatio); err != nil {
		return err
	}
	if c.Documents.Name == "" {
		return fmt.Errorf("documents.name is required")
	}
	return nil
}

func validRatio(field string, ratio float64) error {
	if ratio <= 0 || ratio > 1 {
		return fmt.Errorf("%s must be in (0, 1], got %v", field, ratio)
	}
	return nil
}

package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// YAMLConfig represents the structure of the config.yaml file.
// Every field is optional; set values override the environment.
type YAMLConfig struct {
	Dictionary DictionaryYAML `yaml:"dictionary"`
	Site       SiteYAML       `yaml:"site"`
}

// DictionaryYAML overrides the dictionary endpoints.
type DictionaryYAML struct {
	BaseURL  string `yaml:"base_url"`
	MediaURL string `yaml:"media_url"`
	Timeout  string `yaml:"timeout"` // Go duration, e.g. "5s"
}

// SiteYAML overrides site branding.
type SiteYAML struct {
	Title   string `yaml:"title"`
	Tagline string `yaml:"tagline"`
	Footer  string `yaml:"footer"`
}

// LoadYAMLConfig loads the YAML configuration file.
// Path is determined by CONFIG_FILE env var, defaulting to "config.yaml".
// Returns nil without error if the config file doesn't exist.
func LoadYAMLConfig() (*YAMLConfig, error) {
	path := getEnv("CONFIG_FILE", "config.yaml")

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			// Config file is optional
			return nil, nil
		}
		return nil, err
	}

	return ParseYAMLConfig(data)
}

// ParseYAMLConfig decodes a YAML document into a YAMLConfig.
func ParseYAMLConfig(data []byte) (*YAMLConfig, error) {
	var cfg YAMLConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Apply copies every non-empty YAML value onto cfg.
func (y *YAMLConfig) Apply(cfg *Config) error {
	if y == nil {
		return nil
	}

	if y.Dictionary.BaseURL != "" {
		cfg.DictionaryBaseURL = y.Dictionary.BaseURL
	}
	if y.Dictionary.MediaURL != "" {
		cfg.MediaBaseURL = y.Dictionary.MediaURL
	}
	if y.Dictionary.Timeout != "" {
		d, err := time.ParseDuration(y.Dictionary.Timeout)
		if err != nil {
			return fmt.Errorf("dictionary.timeout: %w", err)
		}
		cfg.DictionaryTimeout = d
	}

	if y.Site.Title != "" {
		cfg.SiteTitle = y.Site.Title
	}
	if y.Site.Tagline != "" {
		cfg.SiteTagline = y.Site.Tagline
	}
	if y.Site.Footer != "" {
		cfg.SiteFooter = y.Site.Footer
	}
	return nil
}

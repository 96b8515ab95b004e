package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	DefaultServer       = "http://localhost:9090"
	DefaultTailLines    = 1000
	DefaultLogsMenuSize = 10
)

var DefaultProdPatterns = []string{"prod", "production", "prd", "live"}

// AppConfig holds all configuration for kdash.
type AppConfig struct {
	Server       string         `yaml:"server"`
	Namespace    string         `yaml:"namespace"`
	Language     string         `yaml:"language"`
	ProdPatterns []string       `yaml:"prod_patterns"`
	Logs         LogsConfig     `yaml:"logs"`
	LogsMenu     LogsMenuConfig `yaml:"logs_menu"`
}

// LogsConfig holds settings for the log viewer.
type LogsConfig struct {
	// TailLines caps how many lines the viewer keeps.
	TailLines int `yaml:"tail_lines"`
}

// LogsMenuConfig holds settings for the replication controller logs menu.
type LogsMenuConfig struct {
	Limit int `yaml:"limit"`
}

// DefaultConfig returns a config with sensible defaults.
func DefaultConfig() *AppConfig {
	return &AppConfig{
		Server:       DefaultServer,
		ProdPatterns: DefaultProdPatterns,
		Logs:         LogsConfig{TailLines: DefaultTailLines},
		LogsMenu:     LogsMenuConfig{Limit: DefaultLogsMenuSize},
	}
}

// DefaultPath returns ~/.config/kdash/config.yaml, or "" when the home
// directory is unknown.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "kdash", "config.yaml")
}

// LoadConfig loads from the default path.
func LoadConfig() (*AppConfig, error) {
	path := DefaultPath()
	if path == "" {
		return DefaultConfig(), nil
	}
	return LoadConfigFrom(path)
}

// LoadConfigFrom loads config from a specific file path.
// Returns defaults if the file does not exist.
func LoadConfigFrom(path string) (*AppConfig, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return nil, err
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	cfg.applyDefaults()
	return cfg, nil
}

// applyDefaults fills zero values left by a partial file.
func (c *AppConfig) applyDefaults() {
	if c.Server == "" {
		c.Server = DefaultServer
	}
	if len(c.ProdPatterns) == 0 {
		c.ProdPatterns = DefaultProdPatterns
	}
	if c.Logs.TailLines <= 0 {
		c.Logs.TailLines = DefaultTailLines
	}
	if c.LogsMenu.Limit <= 0 {
		c.LogsMenu.Limit = DefaultLogsMenuSize
	}
}

// IsProdNamespace checks if a namespace name matches production patterns.
// Matching is done by segment (split on -._) to avoid false positives
// like "product-api" matching "prod".
func IsProdNamespace(namespace string, patterns []string) bool {
	if len(patterns) == 0 {
		patterns = DefaultProdPatterns
	}
	segments := splitSegments(strings.ToLower(namespace))

	for _, p := range patterns {
		p = strings.ToLower(p)
		for _, seg := range segments {
			if seg == p {
				return true
			}
		}
	}
	return false
}

// splitSegments splits a namespace name on common separators.
func splitSegments(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool {
		return r == '-' || r == '.' || r == '_'
	})
}

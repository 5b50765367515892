package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

// Config selects whether contracts are checked.
type Config struct {
	Mode       string   `env:"CONTRACTS_MODE" yaml:"mode"`
	EnabledFor []string `env:"CONTRACTS_ENABLED_FOR" envSeparator:"," yaml:"enabled_for,omitempty"`
}

// FromEnviron reads a Config from an environ slice (format: "KEY=VALUE"),
// typically os.Environ().
func FromEnviron(environ []string) (Config, error) {
	var cfg Config
	opts := env.Options{Environment: parseEnviron(environ)}
	if err := env.ParseWithOptions(&cfg, opts); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	cfg.EnabledFor = trim(cfg.EnabledFor)
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Parse parses YAML content into a Config.
func Parse(content []byte) (Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(content, &cfg); err != nil {
		return Config{}, fmt.Errorf("invalid YAML: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadFromPath reads and parses a YAML config file.
func LoadFromPath(path string) (Config, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Config{}, err
		}
		return Config{}, fmt.Errorf("failed to read config: %w", err)
	}
	return Parse(content)
}

// Merge overlays override on base. Fields set in override win.
func Merge(base, override Config) Config {
	out := base
	if override.Mode != "" {
		out.Mode = override.Mode
	}
	if override.EnabledFor != nil {
		out.EnabledFor = override.EnabledFor
	}
	return out
}

// Validate rejects empty allow-list entries.
func (c Config) Validate() error {
	for i, m := range c.EnabledFor {
		if strings.TrimSpace(m) == "" {
			return fmt.Errorf("enabled_for[%d]: empty mode", i)
		}
	}
	return nil
}

// parseEnviron converts an environ slice into a map. Entries without "=" are
// skipped; values may themselves contain "=".
func parseEnviron(environ []string) map[string]string {
	result := make(map[string]string, len(environ))
	for _, entry := range environ {
		key, value, ok := strings.Cut(entry, "=")
		if !ok {
			continue
		}
		result[key] = value
	}
	return result
}

func trim(modes []string) []string {
	if modes == nil {
		return nil
	}
	out := make([]string, len(modes))
	for i, m := range modes {
		out[i] = strings.TrimSpace(m)
	}
	return out
}

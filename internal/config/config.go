package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/gobwas/glob"
	"gopkg.in/yaml.v3"
)

// Config represents a derw.yaml / derw.toml project configuration.
type Config struct {
	// Target is the output language: "ts" or "js". Defaults to "ts".
	Target string `yaml:"target" toml:"target"`

	// KnownGlobals lists glob patterns (e.g. "console*") of names the
	// analyzer treats as always in scope.
	KnownGlobals []string `yaml:"known_globals,omitempty" toml:"known_globals"`

	// SuggestionDistance is the maximum edit distance for "perhaps you
	// meant" suggestions. Defaults to DefaultSuggestionDistance.
	SuggestionDistance int `yaml:"suggestion_distance,omitempty" toml:"suggestion_distance"`

	// ReportCollisions appends a diagnostic per duplicate top-level name.
	// Defaults to true.
	ReportCollisions *bool `yaml:"report_collisions,omitempty" toml:"report_collisions"`

	// Workers bounds how many modules the CLI compiles at once.
	// Defaults to GOMAXPROCS.
	Workers int `yaml:"workers,omitempty" toml:"workers"`
}

// Default returns the configuration used when no file is found.
func Default() *Config {
	cfg := &Config{}
	cfg.setDefaults()
	return cfg
}

// LoadConfig reads and parses a config file.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}
	return ParseConfig(data, path)
}

// ParseConfig parses config content. The extension of path selects the
// format (.toml for TOML, anything else YAML); path is also used in errors.
func ParseConfig(data []byte, path string) (*Config, error) {
	var cfg Config
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		if _, err := toml.Decode(string(data), &cfg); err != nil {
			return nil, fmt.Errorf("parsing %s: %w", path, err)
		}
	} else if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	cfg.setDefaults()
	if err := cfg.validate(path); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// FindConfig searches for a config file starting from dir and walking up
// to parent directories. Returns "" and a nil error when none exists.
func FindConfig(dir string) (string, error) {
	dir, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("resolving directory: %w", err)
	}

	for {
		for _, name := range ConfigFileNames {
			candidate := filepath.Join(dir, name)
			if _, err := os.Stat(candidate); err == nil {
				return candidate, nil
			}
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", nil
		}
		dir = parent
	}
}

// ShouldReportCollisions resolves the optional flag.
func (c *Config) ShouldReportCollisions() bool {
	return c.ReportCollisions == nil || *c.ReportCollisions
}

func (c *Config) setDefaults() {
	c.Target = strings.ToLower(strings.TrimSpace(c.Target))
	if c.Target == "" {
		c.Target = TargetTypeScript
	}
	if c.SuggestionDistance == 0 {
		c.SuggestionDistance = DefaultSuggestionDistance
	}
	if c.Workers == 0 {
		c.Workers = runtime.GOMAXPROCS(0)
	}
}

// validate checks the configuration for semantic errors.
func (c *Config) validate(path string) error {
	switch c.Target {
	case TargetTypeScript, TargetJavaScript:
	default:
		return fmt.Errorf("%s: unknown target %q (want %q or %q)", path, c.Target, TargetTypeScript, TargetJavaScript)
	}
	if c.SuggestionDistance < 0 {
		return fmt.Errorf("%s: suggestion_distance must not be negative", path)
	}
	if c.Workers < 0 {
		return fmt.Errorf("%s: workers must not be negative", path)
	}
	for i, pattern := range c.KnownGlobals {
		if strings.TrimSpace(pattern) == "" {
			return fmt.Errorf("%s: known_globals[%d]: empty pattern", path, i)
		}
		if _, err := glob.Compile(pattern); err != nil {
			return fmt.Errorf("%s: known_globals[%d]: %w", path, i, err)
		}
	}
	return nil
}

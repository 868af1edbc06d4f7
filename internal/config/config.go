// Package config provides reading and writing of pathoracle configuration.
// Supports both global (~/.pathoracle/config.yaml) and local (.pathoracle/config.yaml).
// Reading: uses local if it exists, otherwise global.
// Writing: goes where the read came from, use --local to force local.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/jpl-au/pathoracle/internal/dialect"
	"github.com/jpl-au/pathoracle/internal/workdir"
	"gopkg.in/yaml.v3"
)

var (
	// ErrNoConfigPath is returned when the config path cannot be determined.
	ErrNoConfigPath = errors.New("cannot determine config path")
	// ErrUnknownKey is returned when getting/setting an unknown config key.
	ErrUnknownKey = errors.New("unknown config key")
	// ErrInvalidValue is returned when a config value is invalid.
	ErrInvalidValue = errors.New("invalid config value")
)

// Scope represents the configuration scope (global or local).
type Scope int

const (
	// ScopeGlobal is user-wide config in ~/.pathoracle/config.yaml (default)
	ScopeGlobal Scope = iota
	// ScopeLocal is directory-specific config in .pathoracle/config.yaml
	ScopeLocal
)

// DefaultDialect is used when no dialect is configured.
const DefaultDialect = "python"

// History holds run log options.
type History struct {
	Enabled *bool `yaml:"enabled,omitempty"`
}

// Config contains configuration for pathoracle. Cwd pins the working
// directory used by cwd-dependent operations.
type Config struct {
	Dialect string  `yaml:"dialect,omitempty"`
	Cwd     string  `yaml:"cwd,omitempty"`
	History History `yaml:"history,omitempty"`

	path  string
	scope Scope
}

// Validate checks that all configured values are usable.
// Returns nil if all values are valid or not set (defaults will be used).
func (c *Config) Validate() error {
	if c.Dialect != "" {
		if _, err := dialect.Get(c.Dialect); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidValue, err)
		}
	}
	if c.Cwd != "" && !workdir.IsAbs(c.Cwd) {
		return fmt.Errorf("%w: cwd must be an absolute path, got %q", ErrInvalidValue, c.Cwd)
	}
	return nil
}

// DialectName returns the configured dialect (defaults to python).
func (c *Config) DialectName() string {
	if c.Dialect == "" {
		return DefaultDialect
	}
	return c.Dialect
}

// HistoryEnabled returns whether runs are recorded (defaults to false).
func (c *Config) HistoryEnabled() bool {
	if c.History.Enabled == nil {
		return false
	}
	return *c.History.Enabled
}

// LocalPath returns the path to the local config file.
func LocalPath() string {
	return filepath.Join(".pathoracle", "config.yaml")
}

// GlobalPath returns the path to the global (user) config file: ~/.pathoracle/config.yaml
func GlobalPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".pathoracle", "config.yaml")
}

// Load reads configuration: uses local if it exists, otherwise global.
func Load() (*Config, error) {
	if _, err := os.Stat(LocalPath()); err == nil {
		return LoadScope(ScopeLocal)
	}
	return LoadScope(ScopeGlobal)
}

// LoadScope reads configuration from a specific scope.
func LoadScope(scope Scope) (*Config, error) {
	p := pathForScope(scope)
	if p == "" {
		return &Config{scope: scope}, nil
	}

	data, err := os.ReadFile(p)
	if errors.Is(err, fs.ErrNotExist) {
		return &Config{path: p, scope: scope}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("cannot read config file %s: %w", p, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("malformed config file %s: %w\n\nTo fix: edit the file to correct the YAML syntax, or delete it to use defaults", p, err)
	}
	cfg.path = p
	cfg.scope = scope

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config file %s: %w", p, err)
	}
	return &cfg, nil
}

// Scope returns which scope this config was loaded from.
func (c *Config) Scope() Scope {
	return c.scope
}

// Save writes the configuration to its original location.
func (c *Config) Save() error {
	if c.path == "" {
		c.path = pathForScope(c.scope)
	}
	if c.path == "" {
		return ErrNoConfigPath
	}
	return c.saveToPath(c.path)
}

// saveToPath writes configuration to a specific filesystem path.
// Creates parent directories as needed with mode 0755.
func (c *Config) saveToPath(p string) error {
	if err := os.MkdirAll(filepath.Dir(p), 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}
	if err := os.WriteFile(p, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}

// pathForScope returns the filesystem path for a given scope.
func pathForScope(scope Scope) string {
	switch scope {
	case ScopeLocal:
		return LocalPath()
	case ScopeGlobal:
		return GlobalPath()
	default:
		return ""
	}
}

// config_keys.go provides key-value access to configuration settings.
//
// Separated from config.go so the YAML structure and loading stay apart from
// the string-keyed get/set used by the CLI (e.g. "history.enabled").

package config

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
)

// ValidKeys returns all valid configuration keys.
func ValidKeys() []string {
	return []string{"dialect", "cwd", "history.enabled"}
}

// IsValidKey returns true if the key is a valid configuration key.
func IsValidKey(key string) bool {
	return slices.Contains(ValidKeys(), key)
}

// Get returns the value of a configuration key as a string.
func (c *Config) Get(key string) (string, error) {
	switch key {
	case "dialect":
		return c.DialectName(), nil
	case "cwd":
		return c.Cwd, nil
	case "history.enabled":
		return strconv.FormatBool(c.HistoryEnabled()), nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnknownKey, key)
	}
}

// Set sets the value of a configuration key. The whole config is validated
// afterwards; on error the previous value is restored.
func (c *Config) Set(key, value string) error {
	prev := *c
	switch key {
	case "dialect":
		c.Dialect = strings.ToLower(value)
	case "cwd":
		c.Cwd = value
	case "history.enabled":
		v := strings.ToLower(value)
		if v != "true" && v != "false" {
			return fmt.Errorf("%w: history.enabled must be true or false", ErrInvalidValue)
		}
		b := v == "true"
		c.History.Enabled = &b
	default:
		return fmt.Errorf("%w: %s", ErrUnknownKey, key)
	}
	if err := c.Validate(); err != nil {
		*c = prev
		return err
	}
	return nil
}

// All returns all configuration values as a map.
func (c *Config) All() map[string]string {
	return map[string]string{
		"dialect":         c.DialectName(),
		"cwd":             c.Cwd,
		"history.enabled": strconv.FormatBool(c.HistoryEnabled()),
	}
}

// IsSet returns true if the key has an explicit value (not just defaults).
func (c *Config) IsSet(key string) bool {
	switch key {
	case "dialect":
		return c.Dialect != ""
	case "cwd":
		return c.Cwd != ""
	case "history.enabled":
		return c.History.Enabled != nil
	default:
		return false
	}
}

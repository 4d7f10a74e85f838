// Package config handles configuration loading and validation for zonepath.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"zonepath/internal/audit"
)

// ConfigErrorType represents the type of configuration error.
type ConfigErrorType string

const (
	FileNotFound    ConfigErrorType = "FILE_NOT_FOUND"
	InvalidJSON     ConfigErrorType = "INVALID_JSON"
	ValidationError ConfigErrorType = "VALIDATION_ERROR"
)

// ConfigError represents an error that occurred during configuration loading.
type ConfigError struct {
	Type    ConfigErrorType
	Path    string
	Message string
}

func (e *ConfigError) Error() string {
	switch e.Type {
	case FileNotFound:
		return fmt.Sprintf("configuration file not found: %s", e.Path)
	case InvalidJSON:
		return fmt.Sprintf("invalid JSON in configuration file: %s", e.Message)
	case ValidationError:
		return fmt.Sprintf("configuration validation error: %s", e.Message)
	default:
		return fmt.Sprintf("configuration error: %s", e.Message)
	}
}

// Zone maps a UNC filer root to the local path where that share is mounted.
type Zone struct {
	Name           string `json:"name"`
	FilerRoot      string `json:"filerRoot"`
	LocalFilerPath string `json:"localFilerPath"`
}

// Configuration holds all settings for zonepath.
type Configuration struct {
	Zones       []Zone        `json:"zones"`
	DefaultZone string        `json:"defaultZone,omitempty"`
	Audit       *audit.Config `json:"audit,omitempty"`
}

// Validate checks that the configuration has all required fields.
func (c *Configuration) Validate() error {
	if len(c.Zones) == 0 {
		return &ConfigError{
			Type:    ValidationError,
			Message: "zones must contain at least one zone",
		}
	}

	seen := make(map[string]bool, len(c.Zones))
	for i, zone := range c.Zones {
		if zone.Name == "" {
			return &ConfigError{
				Type:    ValidationError,
				Message: fmt.Sprintf("zones[%d].name cannot be empty", i),
			}
		}
		if zone.FilerRoot == "" {
			return &ConfigError{
				Type:    ValidationError,
				Message: fmt.Sprintf("zones[%d].filerRoot cannot be empty", i),
			}
		}
		if zone.LocalFilerPath == "" {
			return &ConfigError{
				Type:    ValidationError,
				Message: fmt.Sprintf("zones[%d].localFilerPath cannot be empty", i),
			}
		}
		if seen[zone.Name] {
			return &ConfigError{
				Type:    ValidationError,
				Message: fmt.Sprintf("duplicate zone name: %s", zone.Name),
			}
		}
		seen[zone.Name] = true
	}

	if c.DefaultZone != "" && !seen[c.DefaultZone] {
		return &ConfigError{
			Type:    ValidationError,
			Message: fmt.Sprintf("defaultZone %q does not name a configured zone", c.DefaultZone),
		}
	}

	return nil
}

// ApplyAuditDefaults ensures the Audit configuration has sensible defaults.
// If Audit is nil, it creates a new Config with defaults (disabled).
func (c *Configuration) ApplyAuditDefaults() {
	defaults := audit.DefaultConfig()

	if c.Audit == nil {
		c.Audit = &defaults
		return
	}

	if c.Audit.LogDirectory == "" {
		c.Audit.LogDirectory = defaults.LogDirectory
	}
}

// ZoneByName returns the zone with the given name.
func (c *Configuration) ZoneByName(name string) (*Zone, bool) {
	for i := range c.Zones {
		if c.Zones[i].Name == name {
			return &c.Zones[i], true
		}
	}
	return nil, false
}

// Default returns the configured default zone, or the first zone when no
// default is named. Validation guarantees at least one zone exists.
func (c *Configuration) Default() *Zone {
	if c.DefaultZone != "" {
		if zone, ok := c.ZoneByName(c.DefaultZone); ok {
			return zone
		}
	}
	return &c.Zones[0]
}

// Load reads and parses a configuration file from the given path.
func Load(filePath string) (*Configuration, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, &ConfigError{
				Type: FileNotFound,
				Path: filePath,
			}
		}
		return nil, &ConfigError{
			Type:    FileNotFound,
			Path:    filePath,
			Message: err.Error(),
		}
	}

	var config Configuration
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, &ConfigError{
			Type:    InvalidJSON,
			Message: err.Error(),
		}
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	config.ApplyAuditDefaults()

	return &config, nil
}

// Save serializes and writes a configuration to the given path.
func Save(config *Configuration, filePath string) error {
	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return &ConfigError{
			Type:    InvalidJSON,
			Message: err.Error(),
		}
	}

	if err := os.WriteFile(filePath, data, 0644); err != nil {
		return &ConfigError{
			Type:    ValidationError,
			Message: fmt.Sprintf("failed to write configuration file: %s", err.Error()),
		}
	}

	return nil
}

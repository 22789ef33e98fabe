package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Setting defaults
const (
	DefaultSaveIntervalMinutes = 30
	DefaultSSHHost             = "localhost"
	DefaultSSHPort             = 23234
)

// KeyBindingValue supports "a" or ["up", "k"] in JSON
type KeyBindingValue []string

// UnmarshalJSON implements custom unmarshaling for KeyBindingValue
func (kv *KeyBindingValue) UnmarshalJSON(data []byte) error {
	// Try array format first
	var arr []string
	if err := json.Unmarshal(data, &arr); err == nil {
		*kv = arr
		return nil
	}

	// Fall back to single string
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return err
	}
	if str != "" {
		*kv = []string{str}
	}
	return nil
}

// MarshalJSON implements custom marshaling for KeyBindingValue
func (kv KeyBindingValue) MarshalJSON() ([]byte, error) {
	if len(kv) == 1 {
		return json.Marshal(kv[0])
	}
	return json.Marshal([]string(kv))
}

// KeyBindingsConfig holds custom key binding overrides as a map.
// Keys are binding names (e.g., "checkpoint", "help"), values are the key sequences.
type KeyBindingsConfig map[string]KeyBindingValue

// Validate checks for configuration errors in key bindings.
// The validNames parameter should come from ui.GetValidKeyNames().
func (k KeyBindingsConfig) Validate(validNames []string) error {
	if k == nil {
		return nil
	}

	validSet := make(map[string]bool, len(validNames))
	for _, name := range validNames {
		validSet[name] = true
	}

	// Track all keys to detect duplicates
	keyToAction := make(map[string]string)

	for name, keys := range k {
		if !validSet[name] {
			return fmt.Errorf("unknown key binding '%s'", name)
		}
		if len(keys) == 0 {
			continue // Not configured, will use default
		}
		for _, key := range keys {
			if key == "" {
				return fmt.Errorf("key binding for '%s' contains empty value", name)
			}
			if existing, found := keyToAction[key]; found {
				return fmt.Errorf("key '%s' is assigned to both '%s' and '%s'", key, existing, name)
			}
			keyToAction[key] = name
		}
	}

	return nil
}

// Settings represents the structure of ~/.tally/settings.json
type Settings struct {
	AuthorizedKeys      string            `json:"authorized_keys,omitempty"`
	AutoSave            *bool             `json:"auto_save,omitempty"`
	ConfirmReset        *bool             `json:"confirm_reset,omitempty"`
	Debug               *bool             `json:"debug,omitempty"`
	Keys                KeyBindingsConfig `json:"keys,omitempty"`
	MaxLogFiles         *int              `json:"max_log_files,omitempty"`
	SaveIntervalMinutes *int              `json:"save_interval_minutes,omitempty"`
	SSHHost             string            `json:"ssh_host,omitempty"`
	SSHPort             *int              `json:"ssh_port,omitempty"`
}

// Validate rejects values the timer or server cannot run with
func (s *Settings) Validate() error {
	if s.SaveIntervalMinutes != nil && *s.SaveIntervalMinutes < 1 {
		return fmt.Errorf("save_interval_minutes must be at least 1, got %d", *s.SaveIntervalMinutes)
	}
	if s.SSHPort != nil && (*s.SSHPort < 1 || *s.SSHPort > 65535) {
		return fmt.Errorf("ssh_port must be between 1 and 65535, got %d", *s.SSHPort)
	}
	if s.MaxLogFiles != nil && *s.MaxLogFiles < 0 {
		return fmt.Errorf("max_log_files must not be negative, got %d", *s.MaxLogFiles)
	}
	return nil
}

// LoadSettings loads settings from $TALLY_HOME/settings.json (or ~/.tally/settings.json if not set)
// Returns empty Settings if file doesn't exist (not an error)
func LoadSettings() (*Settings, error) {
	path := GetSettingsPath()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Settings{}, nil // Not an error, use defaults
		}
		return nil, fmt.Errorf("failed to read settings file: %w", err)
	}

	var settings Settings
	if err := json.Unmarshal(data, &settings); err != nil {
		return nil, fmt.Errorf("invalid settings.json: %w", err)
	}
	if err := settings.Validate(); err != nil {
		return nil, fmt.Errorf("invalid settings.json: %w", err)
	}

	if settings.AuthorizedKeys != "" {
		settings.AuthorizedKeys = ExpandPath(settings.AuthorizedKeys)
	}

	return &settings, nil
}

// SaveSettings saves settings to $TALLY_HOME/settings.json
func SaveSettings(settings *Settings) error {
	path := GetSettingsPath()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create settings directory: %w", err)
	}

	data, err := json.MarshalIndent(settings, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write settings file: %w", err)
	}

	return nil
}

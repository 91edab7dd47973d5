package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// Defaults used when neither flags, environment nor settings name a value
const (
	DefaultOwner     = "pragnesh64"
	DefaultRepo      = "my-first-startup"
	DefaultServeHost = "localhost"
	DefaultServePort = 23234
)

// KeyBindingValue supports "r" or ["r", "f5"] in JSON
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
// Keys are binding names (e.g., "reload", "quit"), values are the key sequences.
type KeyBindingsConfig map[string]KeyBindingValue

// Validate checks for configuration errors in key bindings.
// The validNames parameter should come from ui.ValidKeyNames().
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

// AsMap returns the bindings in the shape the UI expects
func (k KeyBindingsConfig) AsMap() map[string][]string {
	if len(k) == 0 {
		return nil
	}
	result := make(map[string][]string, len(k))
	for name, keys := range k {
		result[name] = []string(keys)
	}
	return result
}

// Settings represents the structure of $LASTCOMMIT_HOME/settings.json
type Settings struct {
	AnchorMs       *int64            `json:"anchor_ms,omitempty"`
	APIURL         string            `json:"api_url,omitempty"`
	AuthorizedKeys string            `json:"authorized_keys,omitempty"`
	Debug          *bool             `json:"debug,omitempty"`
	Keys           KeyBindingsConfig `json:"keys,omitempty"`
	MaxLogFiles    *int              `json:"max_log_files,omitempty"`
	Owner          string            `json:"owner,omitempty"`
	Repo           string            `json:"repo,omitempty"`
	ServeHost      string            `json:"serve_host,omitempty"`
	ServePort      *int              `json:"serve_port,omitempty"`
	Splash         *bool             `json:"splash,omitempty"`
}

// Validate checks values that JSON decoding cannot
func (s *Settings) Validate() error {
	if s.AnchorMs != nil && *s.AnchorMs <= 0 {
		return fmt.Errorf("anchor_ms must be a positive epoch in milliseconds, got %d", *s.AnchorMs)
	}
	if s.ServePort != nil && (*s.ServePort <= 0 || *s.ServePort > 65535) {
		return fmt.Errorf("serve_port out of range: %d", *s.ServePort)
	}
	if strings.Contains(s.Owner, "/") || strings.Contains(s.Repo, "/") {
		return errors.New("owner and repo must not contain '/'")
	}
	return nil
}

// LoadSettings loads settings from $LASTCOMMIT_HOME/settings.json (or ~/.lastcommit/settings.json if not set)
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

// SaveSettings saves settings to $LASTCOMMIT_HOME/settings.json.
// The file is locked while it is rewritten.
func SaveSettings(settings *Settings) error {
	path := GetSettingsPath()
	data, err := json.MarshalIndent(settings, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create settings directory: %w", err)
	}

	file, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE, 0644)
	if err != nil {
		return fmt.Errorf("failed to open settings file: %w", err)
	}
	defer file.Close()

	if err := lockFile(file); err != nil {
		return fmt.Errorf("failed to acquire lock: %w", err)
	}
	defer unlockFile(file)

	if err := file.Truncate(0); err != nil {
		return fmt.Errorf("failed to truncate settings file: %w", err)
	}
	if _, err := file.Seek(0, io.SeekStart); err != nil {
		return fmt.Errorf("failed to rewind settings file: %w", err)
	}
	if _, err := file.Write(data); err != nil {
		return fmt.Errorf("failed to write settings file: %w", err)
	}

	return nil
}

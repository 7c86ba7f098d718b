package ui

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// Settings holds the viewer settings
type Settings struct {
	// WrapWidth is the column to wrap text at; 0 means the terminal width
	WrapWidth int `json:"wrapWidth"`

	// SearchThreshold is the minimum fzf score for a search match
	SearchThreshold int `json:"searchThreshold"`

	// CaseSensitiveSearch makes searches case sensitive
	CaseSensitiveSearch bool `json:"caseSensitiveSearch"`
}

// DefaultSettings returns the default settings
func DefaultSettings() *Settings {
	return &Settings{
		WrapWidth:       0,
		SearchThreshold: ScoreThresholdNormal,
	}
}

// LoadSettings loads the settings from the config directory
func LoadSettings(configDir string) (*Settings, error) {
	settingsPath := filepath.Join(configDir, "settings.json")

	if _, err := os.Stat(settingsPath); os.IsNotExist(err) {
		// Return default settings if file doesn't exist
		return DefaultSettings(), nil
	}

	data, err := os.ReadFile(settingsPath)
	if err != nil {
		return nil, err
	}

	settings := DefaultSettings()
	if err := json.Unmarshal(data, settings); err != nil {
		return nil, err
	}

	if settings.SearchThreshold < 0 {
		settings.SearchThreshold = ScoreThresholdNormal
	}

	return settings, nil
}

// SaveSettings saves the settings to the config directory
func SaveSettings(configDir string, settings *Settings) error {
	settingsPath := filepath.Join(configDir, "settings.json")

	if err := os.MkdirAll(configDir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(settings, "", "  ")
	if err != nil {
		return err
	}
	data = append(data, '\n')

	return os.WriteFile(settingsPath, data, 0644)
}

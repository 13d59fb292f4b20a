package config

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// saveConfig is the JSON-marshaling intermediary that uses string durations.
type saveConfig struct {
	Storage saveStorageConfig `json:"storage"`
	Editor  saveEditorConfig  `json:"editor"`
	Session saveSessionConfig `json:"session"`
	Keymap  KeymapConfig      `json:"keymap"`
	UI      UIConfig          `json:"ui"`
}

type saveStorageConfig struct {
	DataDir       string `json:"dataDir,omitempty"`
	Backend       string `json:"backend,omitempty"`
	WatchExternal *bool  `json:"watchExternal,omitempty"`
}

type saveEditorConfig struct {
	CommitWindow   string `json:"commitWindow,omitempty"`
	ToggleDebounce string `json:"toggleDebounce,omitempty"`
	SettleDelay    string `json:"settleDelay,omitempty"`
}

type saveSessionConfig struct {
	Retention string `json:"retention,omitempty"`
}

// toSaveConfig converts Config to the JSON-serializable format.
func toSaveConfig(cfg *Config) saveConfig {
	return saveConfig{
		Storage: saveStorageConfig{
			DataDir:       cfg.Storage.DataDir,
			Backend:       cfg.Storage.Backend,
			WatchExternal: &cfg.Storage.WatchExternal,
		},
		Editor: saveEditorConfig{
			CommitWindow:   cfg.Editor.CommitWindow.String(),
			ToggleDebounce: cfg.Editor.ToggleDebounce.String(),
			SettleDelay:    cfg.Editor.SettleDelay.String(),
		},
		Session: saveSessionConfig{
			Retention: cfg.Session.Retention.String(),
		},
		Keymap: cfg.Keymap,
		UI:     cfg.UI,
	}
}

// Save writes the config back to the path it was loaded from, falling
// back to ~/.config/notepad2/config.json when it never touched a file.
func Save(cfg *Config) error {
	path := cfg.path
	if path == "" {
		path = ConfigPath()
	}
	return SaveTo(cfg, path)
}

// SaveTo writes the config to a specific path, creating parent
// directories as needed.
func SaveTo(cfg *Config, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	sc := toSaveConfig(cfg)
	data, err := json.MarshalIndent(sc, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// SaveTheme updates only the theme name and saves.
func SaveTheme(cfg *Config, themeName string) error {
	cfg.UI.Theme = themeName
	return Save(cfg)
}

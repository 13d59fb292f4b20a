package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"time"
)

const (
	configDir  = ".config/notepad2"
	configFile = "config.json"
)

// rawConfig is the JSON-unmarshaling intermediary. Durations are
// strings ("500ms", "1s") and booleans are pointers so that an absent
// field is distinguishable from a false one.
type rawConfig struct {
	Storage rawStorageConfig `json:"storage"`
	Editor  rawEditorConfig  `json:"editor"`
	Session rawSessionConfig `json:"session"`
	Keymap  KeymapConfig     `json:"keymap"`
	UI      rawUIConfig      `json:"ui"`
}

type rawStorageConfig struct {
	DataDir       string `json:"dataDir"`
	Backend       string `json:"backend"`
	WatchExternal *bool  `json:"watchExternal"`
}

type rawEditorConfig struct {
	CommitWindow   string `json:"commitWindow"`
	ToggleDebounce string `json:"toggleDebounce"`
	SettleDelay    string `json:"settleDelay"`
}

type rawSessionConfig struct {
	Retention string `json:"retention"`
}

type rawUIConfig struct {
	ShowFooter *bool  `json:"showFooter"`
	Theme      string `json:"theme"`
}

// Load loads configuration from the default location.
func Load() (*Config, error) {
	return LoadFrom("")
}

// LoadFrom loads configuration from a specific path.
// If path is empty, uses ~/.config/notepad2/config.json
func LoadFrom(path string) (*Config, error) {
	cfg := Default()

	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return cfg, nil // Return defaults on error
		}
		path = filepath.Join(home, configDir, configFile)
	}
	cfg.path = path

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil // Return defaults if no config file
		}
		return nil, err
	}

	var raw rawConfig
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, err
	}

	mergeConfig(cfg, &raw)

	cfg.Storage.DataDir = ExpandPath(cfg.Storage.DataDir)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// mergeConfig merges raw config values into the defaults.
func mergeConfig(cfg *Config, raw *rawConfig) {
	// Storage
	if raw.Storage.DataDir != "" {
		cfg.Storage.DataDir = raw.Storage.DataDir
	}
	if raw.Storage.Backend != "" {
		cfg.Storage.Backend = raw.Storage.Backend
	}
	if raw.Storage.WatchExternal != nil {
		cfg.Storage.WatchExternal = *raw.Storage.WatchExternal
	}

	// Editor
	if d, ok := parseDuration(raw.Editor.CommitWindow); ok {
		cfg.Editor.CommitWindow = d
	}
	if d, ok := parseDuration(raw.Editor.ToggleDebounce); ok {
		cfg.Editor.ToggleDebounce = d
	}
	if d, ok := parseDuration(raw.Editor.SettleDelay); ok {
		cfg.Editor.SettleDelay = d
	}

	// Session
	if d, ok := parseDuration(raw.Session.Retention); ok {
		cfg.Session.Retention = d
	}

	// Keymap
	if raw.Keymap.Overrides != nil {
		for k, v := range raw.Keymap.Overrides {
			cfg.Keymap.Overrides[k] = v
		}
	}

	// UI
	if raw.UI.ShowFooter != nil {
		cfg.UI.ShowFooter = *raw.UI.ShowFooter
	}
	if raw.UI.Theme != "" {
		cfg.UI.Theme = raw.UI.Theme
	}
}

func parseDuration(s string) (time.Duration, bool) {
	if s == "" {
		return 0, false
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		return 0, false
	}
	return d, true
}

// ExpandPath expands ~ to home directory.
func ExpandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, path[2:])
	}
	return path
}

// ConfigPath returns the path to the config file.
func ConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, configDir, configFile)
}

package config

import (
	"fmt"
	"time"
)

// Config is the root configuration structure.
type Config struct {
	Storage StorageConfig `json:"storage"`
	Editor  EditorConfig  `json:"editor"`
	Session SessionConfig `json:"session"`
	Keymap  KeymapConfig  `json:"keymap"`
	UI      UIConfig      `json:"ui"`

	// path is where this config was loaded from; Save writes back here.
	path string
}

// StorageConfig configures where and how notes are persisted.
type StorageConfig struct {
	// DataDir holds the note store. Supports ~ expansion.
	DataDir string `json:"dataDir"`
	// Backend selects the store implementation: "file" keeps one JSON
	// document per key, "sqlite" keeps everything in a single database.
	Backend string `json:"backend"`
	// WatchExternal reloads the note list when another process rewrites
	// the store files. Only meaningful for the file backend.
	WatchExternal bool `json:"watchExternal"`
}

// EditorConfig tunes the editing engine's timing windows.
type EditorConfig struct {
	// CommitWindow is the idle time after which an edit burst is
	// committed to history.
	CommitWindow time.Duration `json:"commitWindow"`
	// ToggleDebounce coalesces rapid open/close requests.
	ToggleDebounce time.Duration `json:"toggleDebounce"`
	// SettleDelay is the gap before the second scroll restoration pass.
	SettleDelay time.Duration `json:"settleDelay"`
}

// SessionConfig configures view state retention.
type SessionConfig struct {
	// Retention ages out saved view state for notes untouched this long.
	Retention time.Duration `json:"retention"`
}

// KeymapConfig holds key binding overrides.
type KeymapConfig struct {
	Overrides map[string]string `json:"overrides"`
}

// UIConfig configures appearance.
type UIConfig struct {
	ShowFooter bool   `json:"showFooter"`
	Theme      string `json:"theme"`
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Storage: StorageConfig{
			DataDir:       "~/.local/share/notepad2",
			Backend:       "file",
			WatchExternal: true,
		},
		Editor: EditorConfig{
			CommitWindow:   500 * time.Millisecond,
			ToggleDebounce: 50 * time.Millisecond,
			SettleDelay:    100 * time.Millisecond,
		},
		Session: SessionConfig{
			Retention: 7 * 24 * time.Hour,
		},
		Keymap: KeymapConfig{
			Overrides: make(map[string]string),
		},
		UI: UIConfig{
			ShowFooter: true,
			Theme:      "default",
		},
	}
}

// Validate checks the configuration for errors and clamps nonsensical
// timing values back to defaults.
func (c *Config) Validate() error {
	switch c.Storage.Backend {
	case "file", "sqlite":
	default:
		return fmt.Errorf("unknown storage backend %q", c.Storage.Backend)
	}
	def := Default()
	if c.Editor.CommitWindow <= 0 {
		c.Editor.CommitWindow = def.Editor.CommitWindow
	}
	if c.Editor.ToggleDebounce <= 0 {
		c.Editor.ToggleDebounce = def.Editor.ToggleDebounce
	}
	if c.Editor.SettleDelay <= 0 {
		c.Editor.SettleDelay = def.Editor.SettleDelay
	}
	if c.Session.Retention <= 0 {
		c.Session.Retention = def.Session.Retention
	}
	return nil
}

package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"
)

// Mouse button names as stored in the settings document.
const (
	ButtonLeft   = "Left"
	ButtonMiddle = "Middle"
	ButtonRight  = "Right"
)

// Click types.
const (
	ClickSingle = "Single"
	ClickDouble = "Double"
)

// Repeat modes.
const (
	RepeatUntilStopped = "until_stopped"
	RepeatFixed        = "repeat"
)

// Cursor modes.
const (
	CursorCurrent = "current"
	CursorFixed   = "pick"
)

// Config is the full settings document: application identity, the clicker
// settings, and modification metadata.
type Config struct {
	App      AppInfo  `toml:"app"`
	Settings Settings `toml:"settings"`
	Metadata Metadata `toml:"metadata"`
}

type AppInfo struct {
	Name    string `toml:"name"`
	Version string `toml:"version"`
	Author  string `toml:"author"`
}

// Settings holds the user-facing clicker configuration. The interval, jitter,
// repeat and position fields are free-form text entries in the UI, so they
// are stored as strings and parsed where they are used; a value that fails to
// parse falls back to a documented default instead of failing a click cycle.
type Settings struct {
	Hours        string `toml:"hours"`
	Minutes      string `toml:"minutes"`
	Seconds      string `toml:"seconds"`
	Milliseconds string `toml:"milliseconds"`

	JitterEnabled bool   `toml:"use_random_offset"`
	JitterMs      string `toml:"random_offset_value"`

	MouseButton string `toml:"mouse_button"`
	ClickType   string `toml:"click_type"`

	RepeatMode  string `toml:"repeat_mode"`
	RepeatCount string `toml:"repeat_count"`

	CursorMode string `toml:"cursor_mode"`
	XPos       string `toml:"x_pos"`
	YPos       string `toml:"y_pos"`

	Hotkey string `toml:"hotkey"`
}

type Metadata struct {
	LastModified string `toml:"last_modified"`
	TotalClicks  int64  `toml:"total_clicks"`
}

// Default returns the full default document.
func Default() *Config {
	return &Config{
		App: AppInfo{
			Name:    "LazyFinger",
			Version: "1.0.0",
			Author:  "mdev0bit",
		},
		Settings: Settings{
			Hours:         "0",
			Minutes:       "0",
			Seconds:       "0",
			Milliseconds:  "100",
			JitterEnabled: false,
			JitterMs:      "40",
			MouseButton:   ButtonLeft,
			ClickType:     ClickSingle,
			RepeatMode:    RepeatUntilStopped,
			RepeatCount:   "1",
			CursorMode:    CursorCurrent,
			XPos:          "0",
			YPos:          "0",
			Hotkey:        "f6",
		},
	}
}

// Dir returns the directory holding the settings document and the session
// ledger, creating it if needed.
func Dir() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		base, err = os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to resolve config directory: %w", err)
		}
	}

	dir := filepath.Join(base, "lazyfinger")
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create config directory: %w", err)
	}
	return dir, nil
}

// Path returns the path to the settings document.
func Path() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// Load reads the settings document, creating it with defaults if it does not
// exist. Load never fails the application over a bad document: a malformed or
// unreadable file is logged and the defaults are returned, and fields missing
// from the file keep their default values.
func Load() (*Config, error) {
	path, err := Path()
	if err != nil {
		return Default(), err
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		cfg := Default()
		if err := Save(path, cfg); err != nil {
			return cfg, fmt.Errorf("failed to create default config: %w", err)
		}
		return cfg, nil
	}

	cfg := Default()
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		slog.Warn("Settings document unreadable, using defaults", "path", path, "error", err)
		return Default(), nil
	}
	return cfg, nil
}

// Save writes the document, refreshing the modification timestamp.
func Save(path string, cfg *Config) error {
	cfg.Metadata.LastModified = time.Now().UTC().Format(time.RFC3339)

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to write settings document: %w", err)
	}
	defer f.Close()

	enc := toml.NewEncoder(f)
	if err := enc.Encode(cfg); err != nil {
		return fmt.Errorf("failed to encode settings document: %w", err)
	}
	return nil
}

// Package config loads and watches the storydesk user configuration:
// snapping behavior, appearance, and keybindings, stored as TOML in the
// XDG config directory.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
	"github.com/pelletier/go-toml/v2"
)

// Config is the root user configuration.
type Config struct {
	Snapping    SnappingConfig    `toml:"snapping"`
	Appearance  AppearanceConfig  `toml:"appearance"`
	Keybindings KeybindingsConfig `toml:"keybindings"`
}

// SnappingConfig controls magnetic window snapping.
type SnappingConfig struct {
	Enabled             bool    `toml:"enabled"`
	Threshold           int     `toml:"threshold"`
	AnimationDurationMS int     `toml:"animation_duration_ms"`
	PreviewOpacity      float64 `toml:"preview_opacity"`
}

// AppearanceConfig controls chrome rendering.
type AppearanceConfig struct {
	Theme         string `toml:"theme"`
	BorderStyle   string `toml:"border_style"`
	DockPosition  string `toml:"dock_position"`
	ShowStatusBar bool   `toml:"show_status_bar"`
}

// KeybindingsConfig maps action names to key lists.
type KeybindingsConfig struct {
	LeaderKey        string              `toml:"leader_key"`
	WindowManagement map[string][]string `toml:"window_management"`
	Snapping         map[string][]string `toml:"snapping"`
	Panels           map[string][]string `toml:"panels"`
}

// DefaultConfig returns the built-in configuration.
func DefaultConfig() *Config {
	return &Config{
		Snapping: SnappingConfig{
			Enabled:             true,
			Threshold:           5,
			AnimationDurationMS: 200,
			PreviewOpacity:      0.4,
		},
		Appearance: AppearanceConfig{
			Theme:         "default",
			BorderStyle:   "rounded",
			DockPosition:  "bottom",
			ShowStatusBar: true,
		},
		Keybindings: KeybindingsConfig{
			LeaderKey: "ctrl+b",
			WindowManagement: map[string][]string{
				"close_window":      {"x"},
				"rename_window":     {"r"},
				"minimize_window":   {"m"},
				"restore_all":       {"shift+m"},
				"next_window":       {"tab"},
				"prev_window":       {"shift+tab"},
				"toggle_fullscreen": {"f"},
				"toggle_help":       {"?"},
				"quit":              {"q", "ctrl+c"},
			},
			Snapping: map[string][]string{
				"snap_left":         {"h"},
				"snap_right":        {"l"},
				"snap_top":          {"k"},
				"snap_bottom":       {"j"},
				"snap_top_left":     {"1"},
				"snap_top_right":    {"2"},
				"snap_bottom_left":  {"3"},
				"snap_bottom_right": {"4"},
				"unsnap":            {"u"},
				"toggle_snapping":   {"s"},
			},
			Panels: map[string][]string{
				"open_document":      {"d"},
				"open_storyboard":    {"b"},
				"open_database":      {"c"},
				"open_map":           {"g"},
				"open_settings":      {","},
				"open_project_files": {"p"},
			},
		},
	}
}

// ActionDescriptions names every bindable action for help and settings UIs.
var ActionDescriptions = map[string]string{
	"close_window":       "Close focused window",
	"rename_window":      "Rename focused window",
	"minimize_window":    "Minimize focused window",
	"restore_all":        "Restore all minimized windows",
	"next_window":        "Focus next window",
	"prev_window":        "Focus previous window",
	"toggle_fullscreen":  "Toggle fullscreen",
	"toggle_help":        "Toggle help overlay",
	"quit":               "Quit",
	"snap_left":          "Snap to left half",
	"snap_right":         "Snap to right half",
	"snap_top":           "Snap to top half",
	"snap_bottom":        "Snap to bottom half",
	"snap_top_left":      "Snap to top-left quarter",
	"snap_top_right":     "Snap to top-right quarter",
	"snap_bottom_left":   "Snap to bottom-left quarter",
	"snap_bottom_right":  "Snap to bottom-right quarter",
	"unsnap":             "Release snap",
	"toggle_snapping":    "Enable or disable snapping",
	"open_document":      "Open document panel",
	"open_storyboard":    "Open storyboard panel",
	"open_database":      "Open story database panel",
	"open_map":           "Open map builder panel",
	"open_settings":      "Open settings panel",
	"open_project_files": "Open project files panel",
}

// GetConfigPath returns the config file location, creating parent
// directories as needed.
func GetConfigPath() (string, error) {
	return xdg.ConfigFile("storydesk/config.toml")
}

// Load reads the user config, layering the file over the defaults so a
// partial file is valid. A missing file yields the defaults without error.
func Load() (*Config, error) {
	path, err := GetConfigPath()
	if err != nil {
		return nil, fmt.Errorf("resolve config path: %w", err)
	}
	return LoadFrom(path)
}

// LoadFrom reads the config from an explicit path.
func LoadFrom(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	cfg.normalize()
	return cfg, nil
}

// Save writes the config as TOML to the given path.
func (c *Config) Save(path string) error {
	data, err := toml.Marshal(c)
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

// normalize repairs out-of-range values from hand-edited files.
func (c *Config) normalize() {
	if c.Snapping.Threshold < 0 {
		c.Snapping.Threshold = 0
	}
	if c.Snapping.AnimationDurationMS < 0 {
		c.Snapping.AnimationDurationMS = 0
	}
	if c.Snapping.PreviewOpacity < 0 || c.Snapping.PreviewOpacity > 1 {
		c.Snapping.PreviewOpacity = 0.4
	}
	switch c.Appearance.DockPosition {
	case "top", "bottom":
	default:
		c.Appearance.DockPosition = "bottom"
	}
}

const (
	// NormalFPS is the idle refresh rate for the render loop.
	NormalFPS = 60
	// InteractionFPS is the reduced rate used while a drag or resize is
	// active, keeping mouse handling responsive.
	InteractionFPS = 30
)

// AnimationsEnabled globally toggles window animations. Flipped by the
// settings panel and the --no-animations flag.
var AnimationsEnabled = true

// animationDuration mirrors snapping.animation_duration_ms from the most
// recently applied configuration.
var animationDuration = 200 * time.Millisecond

// SetAnimationDuration applies the configured snap animation length,
// called whenever a config is loaded or reloaded.
func SetAnimationDuration(ms int) {
	if ms < 0 {
		ms = 0
	}
	animationDuration = time.Duration(ms) * time.Millisecond
}

// GetAnimationDuration returns the snap/restore animation length, or zero
// when animations are disabled.
func GetAnimationDuration() time.Duration {
	if !AnimationsEnabled {
		return 0
	}
	return animationDuration
}

// GetFastAnimationDuration is used for drag-release snap commits, at
// three fifths of the configured length.
func GetFastAnimationDuration() time.Duration {
	if !AnimationsEnabled {
		return 0
	}
	return animationDuration * 3 / 5
}

// Package config handles configuration loading from files, defaults, and environment variables.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"
)

// Config holds the application configuration.
type Config struct {
	Timeline TimelineConfig `toml:"timeline"`
	Drag     DragConfig     `toml:"drag"`
	Storage  StorageConfig  `toml:"storage"`
	UI       UIConfig       `toml:"ui"`
}

// TimelineConfig controls the visible date window.
type TimelineConfig struct {
	DaysBeforeToday int `toml:"days_before_today"` // window starts this many days before today
	TotalDays       int `toml:"total_days"`        // window length
}

// DragConfig holds pointer geometry and auto-scroll tuning.
type DragConfig struct {
	DayWidth       int    `toml:"day_width"`       // cells per day column
	HandleWidth    int    `toml:"handle_width"`    // cells of each resize hot zone
	EdgeZone       int    `toml:"edge_zone"`       // cells from each edge that trigger auto-scroll
	ScrollStep     int    `toml:"scroll_step"`     // cells scrolled per tick
	ScrollInterval string `toml:"scroll_interval"` // e.g. "50ms"
}

// StorageConfig holds seed and snapshot settings.
type StorageConfig struct {
	SeedPath string `toml:"seed_path"` // empty uses the embedded fixture
	DBPath   string `toml:"db_path"`   // empty disables snapshots
}

// UIConfig holds TUI settings.
type UIConfig struct {
	Theme     string `toml:"theme"`      // "mocha", "latte"
	NameWidth int    `toml:"name_width"` // width of the task name column
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Timeline: TimelineConfig{
			DaysBeforeToday: 7,
			TotalDays:       60,
		},
		Drag: DragConfig{
			DayWidth:       4,
			HandleWidth:    1,
			EdgeZone:       4,
			ScrollStep:     2,
			ScrollInterval: "50ms",
		},
		Storage: StorageConfig{},
		UI: UIConfig{
			Theme:     "mocha",
			NameWidth: 18,
		},
	}
}

// DefaultConfigPath returns the default config file path.
func DefaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "config.toml"
	}
	return filepath.Join(home, ".config", "gantt", "config.toml")
}

// Load loads configuration from the default path, merging with defaults and env vars.
func Load() (*Config, error) {
	return LoadFrom(DefaultConfigPath())
}

// LoadFrom loads configuration from the specified path.
// It starts with defaults, overlays file config if it exists, then applies env overrides.
func LoadFrom(path string) (*Config, error) {
	cfg := Default()

	// Try to load from file (not an error if it doesn't exist)
	if err := loadFromFile(path, cfg); err != nil {
		return nil, err
	}

	if err := applyEnvOverrides(cfg); err != nil {
		return nil, err
	}

	cfg.Storage.DBPath = expandPath(cfg.Storage.DBPath)
	cfg.Storage.SeedPath = expandPath(cfg.Storage.SeedPath)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// loadFromFile overlays the file at path onto cfg. A missing file leaves
// cfg untouched.
func loadFromFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return nil
	case err != nil:
		return fmt.Errorf("reading config file: %w", err)
	}
	if err := toml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parsing config file %s: %w", path, err)
	}
	return nil
}

// applyEnvOverrides applies environment variable overrides to the config.
// Environment variables take precedence over file config.
func applyEnvOverrides(cfg *Config) error {
	ints := []struct {
		key string
		dst *int
	}{
		{"GANTT_DAYS_BEFORE_TODAY", &cfg.Timeline.DaysBeforeToday},
		{"GANTT_TOTAL_DAYS", &cfg.Timeline.TotalDays},
		{"GANTT_DAY_WIDTH", &cfg.Drag.DayWidth},
		{"GANTT_HANDLE_WIDTH", &cfg.Drag.HandleWidth},
		{"GANTT_EDGE_ZONE", &cfg.Drag.EdgeZone},
		{"GANTT_SCROLL_STEP", &cfg.Drag.ScrollStep},
		{"GANTT_NAME_WIDTH", &cfg.UI.NameWidth},
	}
	for _, o := range ints {
		v := os.Getenv(o.key)
		if v == "" {
			continue
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s must be an integer, got %q", o.key, v)
		}
		*o.dst = n
	}

	strs := []struct {
		key string
		dst *string
	}{
		{"GANTT_SCROLL_INTERVAL", &cfg.Drag.ScrollInterval},
		{"GANTT_SEED_PATH", &cfg.Storage.SeedPath},
		{"GANTT_DB_PATH", &cfg.Storage.DBPath},
		{"GANTT_UI_THEME", &cfg.UI.Theme},
	}
	for _, o := range strs {
		if v := os.Getenv(o.key); v != "" {
			*o.dst = v
		}
	}
	return nil
}

// expandPath resolves a leading ~/ against the home directory.
func expandPath(path string) string {
	rest, ok := strings.CutPrefix(path, "~/")
	if !ok {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, rest)
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.Timeline.TotalDays < 1 {
		return errors.New("total_days must be at least 1")
	}
	if c.Timeline.DaysBeforeToday < 0 || c.Timeline.DaysBeforeToday >= c.Timeline.TotalDays {
		return fmt.Errorf("days_before_today must be between 0 and %d", c.Timeline.TotalDays-1)
	}
	if c.Drag.DayWidth < 2 {
		return errors.New("day_width must be at least 2")
	}
	if c.Drag.HandleWidth < 0 || c.Drag.HandleWidth*2 > c.Drag.DayWidth {
		return errors.New("handle_width must be between 0 and half of day_width")
	}
	if c.Drag.EdgeZone < 0 {
		return errors.New("edge_zone must not be negative")
	}
	if c.Drag.ScrollStep < 1 {
		return errors.New("scroll_step must be at least 1")
	}
	if _, err := c.ScrollInterval(); err != nil {
		return err
	}
	if c.UI.NameWidth < 4 {
		return errors.New("name_width must be at least 4")
	}
	return nil
}

// ScrollInterval returns the parsed auto-scroll interval.
func (c *Config) ScrollInterval() (time.Duration, error) {
	d, err := time.ParseDuration(c.Drag.ScrollInterval)
	if err != nil {
		return 0, fmt.Errorf("scroll_interval must be a duration like 50ms, got %q", c.Drag.ScrollInterval)
	}
	if d < 10*time.Millisecond {
		return 0, errors.New("scroll_interval must be at least 10ms")
	}
	return d, nil
}

// HasStorage returns true if snapshot storage is configured.
func (c *Config) HasStorage() bool {
	return c.Storage.DBPath != ""
}

// SaveTo writes c as TOML to path, creating its directory.
func (c *Config) SaveTo(path string) error {
	data, err := toml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}

package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/dhuffy9/SemesterSync/internal/layout"
)

// LayoutConfig controls the week-view display window and vertical scale.
type LayoutConfig struct {
	// DayStartHour / DayEndHour bound the displayed window, e.g. 8 to 22.
	DayStartHour int `yaml:"day_start_hour"`
	DayEndHour   int `yaml:"day_end_hour"`
	// PixelsPerHour is the vertical scale of the grid.
	PixelsPerHour float64 `yaml:"pixels_per_hour"`
	// MinBlockHeight keeps very short classes visible.
	MinBlockHeight float64 `yaml:"min_block_height"`
}

// CatalogConfig points at the course-catalog search endpoint.
type CatalogConfig struct {
	// URL is the /api/classes endpoint; empty disables search.
	URL string `yaml:"url"`
	// DebounceMS is the quiet period after the last keystroke before a
	// lookup is issued.
	DebounceMS int `yaml:"debounce_ms"`
	// MinQueryLen is the minimum search-term length before querying.
	MinQueryLen int `yaml:"min_query_len"`
}

// Config is the top-level application configuration.
type Config struct {
	// DBPath overrides the default database location.
	DBPath  string        `yaml:"db_path"`
	Layout  LayoutConfig  `yaml:"layout"`
	Catalog CatalogConfig `yaml:"catalog"`
}

// DefaultConfig returns an in-memory default configuration.
func DefaultConfig() *Config {
	return &Config{
		Layout: LayoutConfig{
			DayStartHour:   8,
			DayEndHour:     22,
			PixelsPerHour:  60,
			MinBlockHeight: 28,
		},
		Catalog: CatalogConfig{
			URL:         "",
			DebounceMS:  300,
			MinQueryLen: 2,
		},
	}
}

// Normalize fills missing/zero values with defaults so partially-filled
// configs still behave.
func (c *Config) Normalize() {
	if c.Layout.DayStartHour <= 0 {
		c.Layout.DayStartHour = 8
	}
	if c.Layout.DayEndHour <= c.Layout.DayStartHour {
		c.Layout.DayEndHour = 22
	}
	if c.Layout.PixelsPerHour <= 0 {
		c.Layout.PixelsPerHour = 60
	}
	if c.Layout.MinBlockHeight <= 0 {
		c.Layout.MinBlockHeight = 28
	}
	if c.Catalog.DebounceMS <= 0 {
		c.Catalog.DebounceMS = 300
	}
	if c.Catalog.MinQueryLen <= 0 {
		c.Catalog.MinQueryLen = 2
	}
}

// LayoutSettings converts the yaml fields into the layout engine's config.
func (c *Config) LayoutSettings() layout.Config {
	return layout.Config{
		DayStartHour:   c.Layout.DayStartHour,
		DayEndHour:     c.Layout.DayEndHour,
		PixelsPerHour:  c.Layout.PixelsPerHour,
		MinBlockHeight: c.Layout.MinBlockHeight,
	}
}

// DefaultPath returns the config file location under XDG_CONFIG_HOME.
func DefaultPath() (string, error) {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "semestersync", "config.yaml"), nil
}

// Load reads configuration from the given YAML path. A missing file is a
// first run: a default config is written there and returned.
func Load(path string) (*Config, error) {
	if path == "" {
		return nil, errors.New("config path is empty")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			cfg := DefaultConfig()
			if err := Save(path, cfg); err != nil {
				return cfg, err
			}
			return cfg, nil
		}
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	cfg.Normalize()
	return &cfg, nil
}

// Save writes the configuration atomically via a temp file + rename.
func Save(path string, cfg *Config) error {
	if path == "" {
		return errors.New("config path is empty")
	}
	if cfg == nil {
		return errors.New("config is nil")
	}
	cfg.Normalize()

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return err
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, ".semestersync-config-*.tmp")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Chmod(tmpName, 0o600); err != nil {
		return err
	}
	return os.Rename(tmpName, path)
}

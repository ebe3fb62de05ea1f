package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
)

// Provider kinds.
const (
	ProviderFixture = "fixture"
	ProviderFile    = "file"
	ProviderRSS     = "rss"
)

// DefaultShortLength is how many characters of the description a card shows.
const DefaultShortLength = 100

// Config is the persistent application configuration
type Config struct {
	Provider ProviderConfig `json:"provider"`
	UI       UIConfig       `json:"ui"`
	Log      LogConfig      `json:"log"`
}

// ProviderConfig selects and tunes the raw news source
type ProviderConfig struct {
	Kind          string `json:"kind"`               // "fixture", "file" or "rss"
	Path          string `json:"path,omitempty"`     // JSON file for the file provider
	FeedURL       string `json:"feed_url,omitempty"` // RSS/Atom URL for the rss provider
	TimeoutMs     int    `json:"timeout_ms"`         // HTTP timeout for the rss provider
	DelayMs       int    `json:"delay_ms"`           // Simulated latency for fixture/file
	RelativeDates bool   `json:"relative_dates"`     // Shift fixture dates so the newest is now
}

// UIConfig holds UI preferences
type UIConfig struct {
	Title            string `json:"title"`
	ShortLength      int    `json:"short_length"`
	ReloadIntervalMs int    `json:"reload_interval_ms"` // Minimum gap between manual reloads
}

// LogConfig holds logging preferences
type LogConfig struct {
	Dir   string `json:"dir,omitempty"` // Defaults to ~/.noticias/logs
	Level string `json:"level"`
}

// DefaultConfig returns sensible defaults
func DefaultConfig() *Config {
	return &Config{
		Provider: ProviderConfig{
			Kind:          ProviderFixture,
			TimeoutMs:     30000,
			DelayMs:       500,
			RelativeDates: true,
		},
		UI: UIConfig{
			Title:            "Noticias de los Simpsons",
			ShortLength:      DefaultShortLength,
			ReloadIntervalMs: 2000,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// DataDir returns ~/.noticias
func DataDir() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".noticias")
}

// ConfigPath returns the path to the config file
func ConfigPath() string {
	return filepath.Join(DataDir(), "config.json")
}

// Load reads config from path (ConfigPath when empty), or returns defaults.
// Environment variables, including those from a .env file in the working
// directory, are applied on top.
func Load(path string) (*Config, error) {
	if path == "" {
		path = ConfigPath()
	}

	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := json.Unmarshal(data, cfg); err != nil {
			return nil, err
		}
	case !os.IsNotExist(err):
		return nil, err
	}

	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}
	cfg.ApplyEnv()
	cfg.fillDefaults()
	return cfg, nil
}

// Save writes config to path (ConfigPath when empty)
func (c *Config) Save(path string) error {
	if path == "" {
		path = ConfigPath()
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// ApplyEnv overrides fields from NOTICIAS_* environment variables
func (c *Config) ApplyEnv() {
	if v := os.Getenv("NOTICIAS_PROVIDER"); v != "" {
		c.Provider.Kind = v
	}
	if v := os.Getenv("NOTICIAS_FILE"); v != "" {
		c.Provider.Path = v
	}
	if v := os.Getenv("NOTICIAS_FEED_URL"); v != "" {
		c.Provider.FeedURL = v
	}
	if v := os.Getenv("NOTICIAS_LOG_LEVEL"); v != "" {
		c.Log.Level = v
	}
	if v := os.Getenv("NOTICIAS_LOG_DIR"); v != "" {
		c.Log.Dir = v
	}
	if n, err := strconv.Atoi(os.Getenv("NOTICIAS_SHORT_LENGTH")); err == nil && n > 0 {
		c.UI.ShortLength = n
	}
}

// fillDefaults repairs zero values a partial config file leaves behind.
func (c *Config) fillDefaults() {
	d := DefaultConfig()
	if c.Provider.Kind == "" {
		c.Provider.Kind = d.Provider.Kind
	}
	if c.Provider.TimeoutMs <= 0 {
		c.Provider.TimeoutMs = d.Provider.TimeoutMs
	}
	if c.UI.Title == "" {
		c.UI.Title = d.UI.Title
	}
	if c.UI.ShortLength <= 0 {
		c.UI.ShortLength = d.UI.ShortLength
	}
	if c.Log.Dir == "" {
		c.Log.Dir = filepath.Join(DataDir(), "logs")
	}
	if c.Log.Level == "" {
		c.Log.Level = d.Log.Level
	}
}

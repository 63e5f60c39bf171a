package config

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/tidwall/jsonc"
)

// Config is the root configuration for timecard, stored in
// ~/.timecard/config.json. The file may contain // and /* */ comments.
type Config struct {
	// Format is the default output format: text, json, csv or yaml.
	Format string `json:"format"`
	// Banner controls the divider and paste prompt printed before parsing.
	Banner *bool `json:"banner"`
	// Color enables ANSI styling of the text report when stdout is a terminal.
	Color *bool `json:"color"`
}

const (
	// DefaultFormat is the human-readable report.
	DefaultFormat = "text"
	// DefaultBanner keeps the paste prompt on.
	DefaultBanner = true
	// DefaultColor leaves the text report unstyled.
	DefaultColor = false
)

// ShowBanner reports the effective banner setting.
func (c Config) ShowBanner() bool {
	if c.Banner == nil {
		return DefaultBanner
	}
	return *c.Banner
}

// UseColor reports the effective color setting.
func (c Config) UseColor() bool {
	if c.Color == nil {
		return DefaultColor
	}
	return *c.Color
}

// defaultConfig returns a Config pre-filled with sensible defaults.
func defaultConfig() Config {
	return Config{Format: DefaultFormat}
}

// configTemplate is the annotated config written on first run.
const configTemplate = `// timecard configuration – ~/.timecard/config.json
//
// All settings are optional; command-line flags override them.
{
  // Output format: "text" (default), "json", "csv" or "yaml".
  "format": "text",

  // Print the divider and paste prompt before reading input.
  "banner": true,

  // Style the text report with ANSI colors when writing to a terminal.
  "color": false
}
`

// DefaultPath returns the path to ~/.timecard/config.json.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine home directory: %w", err)
	}
	return filepath.Join(home, ".timecard", "config.json"), nil
}

// Load reads the config at path, creating it with annotated defaults when it
// does not exist. An empty path means DefaultPath; if that cannot be
// resolved the defaults are returned without error.
func Load(path string) (Config, error) {
	if path == "" {
		p, err := DefaultPath()
		if err != nil {
			// No home directory (cron, minimal containers): run on defaults.
			slog.Debug("no config file location, using defaults", "err", err)
			return defaultConfig(), nil
		}
		path = p
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		// First run: write the annotated template so users can discover options.
		if writeErr := writeDefault(path); writeErr != nil {
			slog.Warn("could not create config file", "path", path, "err", writeErr)
		}
		return defaultConfig(), nil
	}
	if err != nil {
		return defaultConfig(), fmt.Errorf("reading config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(jsonc.ToJSON(data), &cfg); err != nil {
		return defaultConfig(), fmt.Errorf("parsing config file %s: %w\nTip: delete the file to regenerate defaults", path, err)
	}

	if cfg.Format == "" {
		cfg.Format = DefaultFormat
	}
	slog.Debug("loaded config", "path", path, "format", cfg.Format)
	return cfg, nil
}

// writeDefault creates the config directory and writes the annotated default
// config template.
func writeDefault(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	if err := os.WriteFile(path, []byte(configTemplate), 0o600); err != nil {
		return fmt.Errorf("writing default config: %w", err)
	}
	return nil
}

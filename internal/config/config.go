// Package config loads and saves boxtree.toml.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// FileName is the config file looked up in the working directory.
const FileName = "boxtree.toml"

// Config represents the boxtree.toml configuration file
type Config struct {
	Window   WindowConfig   `toml:"window"`
	Layout   LayoutConfig   `toml:"layout"`
	Log      LogConfig      `toml:"log"`
	Terminal TerminalConfig `toml:"terminal"`
	Theme    ThemeConfig    `toml:"theme"`
}

// WindowConfig is the logical surface used when no terminal sets the size.
type WindowConfig struct {
	Width  float32 `toml:"width"`
	Height float32 `toml:"height"`
	// Device pixels per logical pixel
	Scale float32 `toml:"scale"`
}

type LayoutConfig struct {
	// Snap painted regions to the device pixel grid
	Round bool `toml:"round"`
	// Upper bound on shrink retries per flex group
	MaxShrinkPasses int `toml:"max_shrink_passes"`
}

type LogConfig struct {
	Level  string `toml:"level"`  // debug | info | warn | error
	Format string `toml:"format"` // text | json
}

// TerminalConfig sets how many logical pixels one terminal cell covers.
type TerminalConfig struct {
	CellWidth  float32 `toml:"cell_width"`
	CellHeight float32 `toml:"cell_height"`
}

type ThemeConfig struct {
	// Optional theme file layered over the default theme
	File string `toml:"file"`
}

// Default returns a sensible default configuration
func Default() Config {
	return Config{
		Window: WindowConfig{
			Width:  640,
			Height: 480,
			Scale:  1,
		},
		Layout: LayoutConfig{
			Round:           true,
			MaxShrinkPasses: 32,
		},
		Log: LogConfig{
			Level:  "warn",
			Format: "text",
		},
		Terminal: TerminalConfig{
			CellWidth:  8,
			CellHeight: 16,
		},
	}
}

// Load reads the config at path over the defaults. A missing file is not an
// error and yields the defaults.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("failed to read %s: %w", path, err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid %s: %w", path, err)
	}
	return cfg, nil
}

// Save writes cfg to path.
func Save(path string, cfg Config) error {
	data, err := toml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

// Validate reports every out-of-range field.
func (c Config) Validate() error {
	var errs []error
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		errs = append(errs, fmt.Errorf("window size must be positive, got %vx%v", c.Window.Width, c.Window.Height))
	}
	if c.Window.Scale <= 0 {
		errs = append(errs, fmt.Errorf("window scale must be positive, got %v", c.Window.Scale))
	}
	if c.Layout.MaxShrinkPasses < 1 {
		errs = append(errs, fmt.Errorf("layout max_shrink_passes must be at least 1, got %d", c.Layout.MaxShrinkPasses))
	}
	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		errs = append(errs, fmt.Errorf("unknown log level %q", c.Log.Level))
	}
	switch c.Log.Format {
	case "text", "json":
	default:
		errs = append(errs, fmt.Errorf("unknown log format %q", c.Log.Format))
	}
	if c.Terminal.CellWidth <= 0 || c.Terminal.CellHeight <= 0 {
		errs = append(errs, fmt.Errorf("terminal cell size must be positive, got %vx%v", c.Terminal.CellWidth, c.Terminal.CellHeight))
	}
	return errors.Join(errs...)
}

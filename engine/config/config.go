// Package config loads engine settings from YAML.
package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"strings"

	"github.com/hubastard/aether/engine/colors"
	"github.com/hubastard/aether/engine/core"
	"gopkg.in/yaml.v3"
)

const (
	DefaultTitle            = "aether"
	DefaultWidth            = 1280
	DefaultHeight           = 720
	DefaultFontSize         = 18
	DefaultProfilerCapacity = 1 << 16
)

// Config is the complete engine configuration.
type Config struct {
	Window   WindowConfig   `yaml:"window"`
	Log      LogConfig      `yaml:"log"`
	Profiler ProfilerConfig `yaml:"profiler"`
	Font     FontConfig     `yaml:"font"`
}

type WindowConfig struct {
	Title      string `yaml:"title"`
	Width      int    `yaml:"width"`
	Height     int    `yaml:"height"`
	VSync      bool   `yaml:"vsync"`
	ClearColor Color  `yaml:"clear_color"`
}

type LogConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // text or json
}

type ProfilerConfig struct {
	Enabled  bool   `yaml:"enabled"`
	Capacity int    `yaml:"capacity"`
	Output   string `yaml:"output"` // empty writes to the temp dir
}

type FontConfig struct {
	Path string  `yaml:"path"` // empty uses the built-in face
	Size float32 `yaml:"size"`
}

func Default() *Config {
	return &Config{
		Window: WindowConfig{
			Title:      DefaultTitle,
			Width:      DefaultWidth,
			Height:     DefaultHeight,
			VSync:      true,
			ClearColor: Color(colors.DarkGray),
		},
		Log:      LogConfig{Level: "info", Format: "text"},
		Profiler: ProfilerConfig{Capacity: DefaultProfilerCapacity},
		Font:     FontConfig{Size: DefaultFontSize},
	}
}

// Load reads path over the defaults. A missing file yields the defaults.
// Environment overrides are applied last.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, fs.ErrNotExist):
			slog.Debug("config file not found, using defaults", "path", path)
		case err != nil:
			return nil, fmt.Errorf("loading config from %s: %w", path, err)
		default:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("loading config from %s: %w", path, err)
			}
		}
	}
	applyEnvOverrides(cfg)
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation: %w", err)
	}
	return cfg, nil
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("AETHER_LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}
	if v := os.Getenv("AETHER_LOG_FORMAT"); v != "" {
		cfg.Log.Format = v
	}
	if v := os.Getenv("AETHER_PROFILE"); v != "" {
		cfg.Profiler.Enabled = v == "1" || strings.EqualFold(v, "true")
	}
	if v := os.Getenv("AETHER_FONT"); v != "" {
		cfg.Font.Path = v
	}
}

func (c *Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("invalid window size: %dx%d", c.Window.Width, c.Window.Height)
	}
	if _, err := c.Log.level(); err != nil {
		return err
	}
	switch strings.ToLower(c.Log.Format) {
	case "", "text", "json":
	default:
		return fmt.Errorf("invalid log format: %s (valid: text, json)", c.Log.Format)
	}
	if c.Profiler.Enabled && c.Profiler.Capacity <= 0 {
		return fmt.Errorf("invalid profiler capacity: %d", c.Profiler.Capacity)
	}
	if c.Font.Size <= 0 {
		return fmt.Errorf("invalid font size: %g", c.Font.Size)
	}
	return nil
}

// Engine converts the window section for core.Run.
func (w WindowConfig) Engine() core.Config {
	return core.Config{
		Title:      w.Title,
		Width:      w.Width,
		Height:     w.Height,
		VSync:      w.VSync,
		ClearColor: [4]float32(w.ClearColor),
	}
}

func (l LogConfig) level() (slog.Level, error) {
	var lv slog.Level
	if l.Level == "" {
		return slog.LevelInfo, nil
	}
	if err := lv.UnmarshalText([]byte(l.Level)); err != nil {
		return 0, fmt.Errorf("invalid log level: %s (valid: debug, info, warn, error)", l.Level)
	}
	return lv, nil
}

// NewLogger builds a slog logger writing to w.
func (l LogConfig) NewLogger(w io.Writer) (*slog.Logger, error) {
	lv, err := l.level()
	if err != nil {
		return nil, err
	}
	opts := &slog.HandlerOptions{Level: lv}
	if strings.EqualFold(l.Format, "json") {
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	}
	return slog.New(slog.NewTextHandler(w, opts)), nil
}

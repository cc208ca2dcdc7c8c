// Package config loads the meter's YAML configuration.
package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

type Config struct {
	Sampler SamplerConfig `yaml:"sampler"`
	Overlay OverlayConfig `yaml:"overlay"`
	Record  RecordConfig  `yaml:"record"`
	Log     LogConfig     `yaml:"log"`
}

type SamplerConfig struct {
	Window            int           `yaml:"window"`
	RecomputeFrames   int           `yaml:"recompute_frames"`
	RecomputeInterval time.Duration `yaml:"recompute_interval"`
	MaxFPS            float64       `yaml:"max_fps"`
	GoodFPS           float64       `yaml:"good_fps"`
	WarningFPS        float64       `yaml:"warning_fps"`
}

type OverlayConfig struct {
	Width              int     `yaml:"width"`     // dp
	Height             int     `yaml:"height"`    // dp
	OffsetX            int     `yaml:"offset_x"`  // px from the right edge
	OffsetY            int     `yaml:"offset_y"`  // px from the top edge
	TextSize           float32 `yaml:"text_size"` // sp
	ClickThrough       bool    `yaml:"click_through"`
	ExcludeFromCapture bool    `yaml:"exclude_from_capture"`
	ShowCPU            bool    `yaml:"show_cpu"`
	Display            int     `yaml:"display"`
}

type RecordConfig struct {
	Path string `yaml:"path"` // CSV file, empty disables recording
}

type LogConfig struct {
	Level string `yaml:"level"`
}

// Default returns the embedded defaults.
func Default() *Config {
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		panic(fmt.Errorf("parsing embedded defaults: %w", err))
	}
	return cfg
}

// Load reads path over the defaults. A missing file yields the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("reading config %q: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return Default(), fmt.Errorf("parsing config %q: %w", path, err)
	}
	cfg.Validate()
	return cfg, nil
}

// Validate resets out-of-range values to their defaults.
func (c *Config) Validate() {
	def := Default()

	s := &c.Sampler
	if s.Window < 2 {
		s.Window = def.Sampler.Window
	}
	if s.RecomputeFrames <= 0 {
		s.RecomputeFrames = def.Sampler.RecomputeFrames
	}
	if s.RecomputeInterval <= 0 {
		s.RecomputeInterval = def.Sampler.RecomputeInterval
	}
	if s.MaxFPS <= 0 {
		s.MaxFPS = def.Sampler.MaxFPS
	}
	if s.GoodFPS <= 0 || s.GoodFPS > s.MaxFPS {
		s.GoodFPS = def.Sampler.GoodFPS
	}
	if s.WarningFPS <= 0 || s.WarningFPS > s.GoodFPS {
		s.WarningFPS = min(def.Sampler.WarningFPS, s.GoodFPS)
	}

	o := &c.Overlay
	if o.Width <= 0 {
		o.Width = def.Overlay.Width
	}
	if o.Height <= 0 {
		o.Height = def.Overlay.Height
	}
	if o.TextSize <= 0 {
		o.TextSize = def.Overlay.TextSize
	}
	if o.Display < -1 {
		o.Display = -1
	}

	if c.Log.Level == "" {
		c.Log.Level = def.Log.Level
	}
}

func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config %q: %w", path, err)
	}
	return nil
}

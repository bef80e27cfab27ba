package isotown

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the viewer configuration, loadable from YAML. Zero or missing
// fields fall back to the defaults from DefaultConfig.
type Config struct {
	Title  string `yaml:"title"`
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`

	// PixelScale is the pixel-art density factor K.
	PixelScale int `yaml:"pixel_scale"`
	// HeaderOffset is the display-pixel height of any chrome above the
	// canvas, subtracted from pointer Y before picking.
	HeaderOffset float64 `yaml:"header_offset"`

	Scanlines bool `yaml:"scanlines"`
	ShowFPS   bool `yaml:"show_fps"`

	// StartZoom is the initial camera zoom.
	StartZoom float64 `yaml:"start_zoom"`

	// LightDir overrides the global light direction when non-zero.
	LightDir struct {
		X float64 `yaml:"x"`
		Y float64 `yaml:"y"`
	} `yaml:"light_dir"`
}

// DefaultConfig returns the stock viewer configuration.
func DefaultConfig() Config {
	return Config{
		Title:      "isotown",
		Width:      1280,
		Height:     800,
		PixelScale: DefaultPixelScale,
		Scanlines:  true,
		StartZoom:  1.3,
	}
}

// LoadConfig reads a YAML config file over the defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	raw, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return cfg, fmt.Errorf("config: %w", err)
	}
	return cfg.withDefaults(), nil
}

// withDefaults backfills zero fields so a sparse file stays valid.
func (c Config) withDefaults() Config {
	d := DefaultConfig()
	if c.Title == "" {
		c.Title = d.Title
	}
	if c.Width <= 0 {
		c.Width = d.Width
	}
	if c.Height <= 0 {
		c.Height = d.Height
	}
	if c.PixelScale < 1 {
		c.PixelScale = d.PixelScale
	}
	if c.StartZoom <= 0 {
		c.StartZoom = d.StartZoom
	}
	c.StartZoom = ClampZoom(c.StartZoom)
	return c
}

// Package config loads the demo application's YAML configuration.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Window is the initial window geometry in dp.
type Window struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// Config is the demo application configuration. Zero fields fall back
// to defaults during Load.
type Config struct {
	Window     Window `yaml:"window"`
	GalleryDir string `yaml:"gallery_dir"`

	// ReducedMotion forces the open/close morph to snap instead of
	// animate, overriding any platform preference.
	ReducedMotion bool `yaml:"reduced_motion"`
	// SmoothResize declares whether the compositor resizes the surface
	// every frame; when false the morph scales a fixed-size layer.
	SmoothResize bool `yaml:"smooth_resize"`

	ThumbPx int  `yaml:"thumb_px"`
	Debug   bool `yaml:"debug"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Window:       Window{Width: 1000, Height: 700},
		GalleryDir:   "gallery",
		SmoothResize: true,
		ThumbPx:      160,
	}
}

// Load reads path and merges it over the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("load config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	cfg.normalize()
	return cfg, nil
}

func (c *Config) normalize() {
	def := Default()
	if c.Window.Width <= 0 {
		c.Window.Width = def.Window.Width
	}
	if c.Window.Height <= 0 {
		c.Window.Height = def.Window.Height
	}
	if c.GalleryDir == "" {
		c.GalleryDir = def.GalleryDir
	}
	if c.ThumbPx < 32 {
		c.ThumbPx = def.ThumbPx
	}
}

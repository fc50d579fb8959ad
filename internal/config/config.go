// Package config loads the pixed editor configuration from a TOML file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strconv"

	"github.com/BurntSushi/toml"

	"github.com/gopx/px"
)

// Config is the pixed configuration. Zero values fall back to defaults at
// load time, so partial files are fine.
type Config struct {
	Canvas   Canvas            `toml:"canvas"`
	Tools    Tools             `toml:"tools"`
	Autosave Autosave          `toml:"autosave"`
	Palette  map[string]string `toml:"palette"` // index -> "#rrggbb" overrides
}

// Canvas holds the dimensions used when no file is opened.
type Canvas struct {
	Width  int `toml:"width"`
	Height int `toml:"height"`
}

// Tools holds the startup tool context.
type Tools struct {
	Color     int  `toml:"color"`
	AltColor  int  `toml:"alt_color"`
	BrushSize int  `toml:"brush_size"`
	Fill      bool `toml:"fill"`
}

// Autosave controls the periodic write of the open file.
type Autosave struct {
	Enabled  bool `toml:"enabled"`
	Interval int  `toml:"interval_seconds"`
}

// Default returns the stock configuration.
func Default() Config {
	return Config{
		Canvas: Canvas{Width: 32, Height: 32},
		Tools:  Tools{Color: 1, AltColor: 0, BrushSize: 1},
		Autosave: Autosave{
			Enabled:  true,
			Interval: 30,
		},
	}
}

// Load reads a TOML config file, layering it over the defaults. A missing
// file is not an error: the defaults are returned.
func Load(path string) (Config, error) {
	cfg := Default()
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("config: %s: %w", path, err)
	}
	cfg.normalize()
	if err := cfg.validate(); err != nil {
		return Default(), err
	}
	return cfg, nil
}

func (c *Config) normalize() {
	if c.Canvas.Width == 0 {
		c.Canvas.Width = Default().Canvas.Width
	}
	if c.Canvas.Height == 0 {
		c.Canvas.Height = Default().Canvas.Height
	}
	if c.Tools.BrushSize == 0 {
		c.Tools.BrushSize = 1
	}
	if c.Autosave.Interval == 0 {
		c.Autosave.Interval = Default().Autosave.Interval
	}
}

func (c *Config) validate() error {
	if c.Canvas.Width < px.MinSize || c.Canvas.Width > px.MaxSize ||
		c.Canvas.Height < px.MinSize || c.Canvas.Height > px.MaxSize {
		return fmt.Errorf("config: canvas %dx%d outside [%d, %d]",
			c.Canvas.Width, c.Canvas.Height, px.MinSize, px.MaxSize)
	}
	if c.Tools.Color < 0 || c.Tools.Color > px.MaxIndex ||
		c.Tools.AltColor < 0 || c.Tools.AltColor > px.MaxIndex {
		return fmt.Errorf("config: color indices must be in [0, %d]", px.MaxIndex)
	}
	if c.Autosave.Interval < 1 {
		return errors.New("config: autosave interval must be at least 1 second")
	}
	for k := range c.Palette {
		i, err := strconv.Atoi(k)
		if err != nil || i < 1 || i > px.MaxIndex {
			return fmt.Errorf("config: palette key %q must be an index in [1, %d]", k, px.MaxIndex)
		}
	}
	return nil
}

// BuildPalette returns the default palette with the configured hex
// overrides applied.
func (c *Config) BuildPalette() (*px.Palette, error) {
	pal := px.DefaultPalette()
	for k, hex := range c.Palette {
		i, err := strconv.Atoi(k)
		if err != nil {
			return nil, fmt.Errorf("config: palette key %q: %w", k, err)
		}
		if err := pal.SetHex(uint8(i), hex); err != nil {
			return nil, fmt.Errorf("config: %w", err)
		}
	}
	return pal, nil
}

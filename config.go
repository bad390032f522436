package tilerun

import (
	"errors"
	"fmt"
	"os"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// Config is the engine configuration document, loaded from YAML. Zero fields
// fall back to the defaults, so partial documents are fine.
type Config struct {
	Title  string `yaml:"title"`
	Window struct {
		Width  int `yaml:"width"`
		Height int `yaml:"height"`
	} `yaml:"window"`
	// TickRate is the fixed loop cadence in ticks per second.
	TickRate int     `yaml:"tickRate"`
	TileSize int     `yaml:"tileSize"`
	Zoom     float64 `yaml:"zoom"`
	// AssetDir is prepended by hosts when resolving relative asset names.
	AssetDir string `yaml:"assetDir"`
	// Debug enables the FPS and collider overlays.
	Debug bool `yaml:"debug"`
}

// DefaultConfig returns the built-in configuration.
func DefaultConfig() Config {
	var cfg Config
	cfg.Title = "tilerun"
	cfg.Window.Width = 640
	cfg.Window.Height = 480
	cfg.TickRate = 60
	cfg.TileSize = 32
	cfg.Zoom = 1
	return cfg
}

// LoadConfig reads a YAML configuration file. A missing file is not an
// error: the defaults are returned and a warning is logged. A present but
// malformed file is an error.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			logger.Warn("config file not found, using defaults", zap.String("path", path))
			return cfg, nil
		}
		return cfg, fmt.Errorf("tilerun: failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return DefaultConfig(), fmt.Errorf("tilerun: failed to parse config: %w", err)
	}
	cfg.fillDefaults()
	return cfg, nil
}

// fillDefaults replaces zero or nonsensical values with the built-ins.
func (c *Config) fillDefaults() {
	def := DefaultConfig()
	if c.Title == "" {
		c.Title = def.Title
	}
	if c.Window.Width <= 0 {
		c.Window.Width = def.Window.Width
	}
	if c.Window.Height <= 0 {
		c.Window.Height = def.Window.Height
	}
	if c.TickRate <= 0 {
		c.TickRate = def.TickRate
	}
	if c.TileSize <= 0 {
		c.TileSize = def.TileSize
	}
	if c.Zoom <= 0 {
		c.Zoom = def.Zoom
	}
}

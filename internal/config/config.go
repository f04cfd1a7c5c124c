// Package config provides YAML-based configuration loading for the adventure
// runtime and its hosts.
package config

import (
	"fmt"
	"time"

	"github.com/vovakirdan/tilequest/internal/render"
)

// Config contains all configuration for a tilequest process.
type Config struct {
	Game    GameConfig    `yaml:"game"`
	Content ContentConfig `yaml:"content"`
	Log     LogConfig     `yaml:"log"`
	Server  ServerConfig  `yaml:"server"`
	Layout  render.Layout `yaml:"layout"`
}

// GameConfig defines simulation timing.
type GameConfig struct {
	TickRate   int `yaml:"tick_rate"`    // simulation ticks per second
	MaxCatchUp int `yaml:"max_catch_up"` // ticks run at most per frame after a stall
}

// ContentConfig selects where levels and dialog come from.
// Pack wins over Dir; with neither set the embedded content is used.
type ContentConfig struct {
	Dir    string   `yaml:"dir"`
	Pack   string   `yaml:"pack"`
	Levels []string `yaml:"levels"` // load order; empty loads every level the source lists
	Start  string   `yaml:"start"`  // level name the game begins in
}

// LogConfig defines logging parameters.
type LogConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
	File  string `yaml:"file"`  // log file used while the terminal UI owns the screen
}

// ServerConfig defines SSH server parameters.
type ServerConfig struct {
	Address     string        `yaml:"address"`
	HostKeyPath string        `yaml:"host_key"`
	IdleTimeout time.Duration `yaml:"idle_timeout"`
}

// Validate checks that the configuration can drive a game.
func (c Config) Validate() error {
	if c.Game.TickRate <= 0 {
		return fmt.Errorf("config: tick_rate must be positive, got %d", c.Game.TickRate)
	}
	if c.Game.MaxCatchUp < 0 {
		return fmt.Errorf("config: max_catch_up must not be negative, got %d", c.Game.MaxCatchUp)
	}
	if c.Layout.TileSize <= 0 {
		return fmt.Errorf("config: layout.tile_size must be positive, got %d", c.Layout.TileSize)
	}
	switch c.Log.Level {
	case "", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("config: unknown log level %q", c.Log.Level)
	}
	return nil
}

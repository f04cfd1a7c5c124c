package config

import (
	_ "embed"
	"time"

	"github.com/vovakirdan/tilequest/internal/content"
	"github.com/vovakirdan/tilequest/internal/core"
	"github.com/vovakirdan/tilequest/internal/render"
)

//go:embed defaults/quest.yaml
var defaultQuestYAML []byte

// Default returns the hardcoded configuration.
func Default() Config {
	return Config{
		Game: GameConfig{
			TickRate:   60,
			MaxCatchUp: core.DefaultMaxCatchUp,
		},
		Content: ContentConfig{
			Start: content.StartLevel,
		},
		Log: LogConfig{
			Level: "info",
			File:  "~/.tilequest/quest.log",
		},
		Server: ServerConfig{
			Address:     ":23235",
			IdleTimeout: 30 * time.Minute,
		},
		Layout: render.DefaultLayout(),
	}
}

// quest runs tile-based adventure levels in the terminal.
//
// Usage:
//
//	quest play               - Play from the configured start level
//	quest check [file...]    - Validate level files or the configured content
//	quest levels             - List the levels of the configured content
//	quest frame [moves]      - Print the sprite frame after replaying moves
//	quest pack build <file>  - Store the configured content in a SQLite pack
//	quest pack ls <file>     - List the levels stored in a pack
//	quest serve              - Start SSH server for remote play
//
// Global flags:
//
//	--config <path>   - Config file (default: search ~/.tilequest, ./quest.yaml)
//	--fps <rate>      - Set tick rate (default: 60)
//	--content <dir>   - Read levels and dialog.txt from a directory
//	--pack <file>     - Read levels and dialog from a SQLite content pack
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tilequest/internal/assets"
	"github.com/vovakirdan/tilequest/internal/config"
	"github.com/vovakirdan/tilequest/internal/core"
	"github.com/vovakirdan/tilequest/internal/dialog"
	"github.com/vovakirdan/tilequest/internal/world"
)

var (
	// Global flags
	flagConfig   string
	flagFPS      int
	flagContent  string
	flagPack     string
	flagLogLevel string

	// cfg is loaded before any subcommand runs.
	cfg config.Config
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "quest",
	Short: "tilequest - Walk tile maps, talk to NPCs, take doors",
	Long: `tilequest is a tile-based adventure runtime for the terminal.

Levels are plain text files: a metadata line, a legend of tiles,
the map rows and the entity placements. Walking into an NPC opens
its dialog; stepping onto a door moves you to another level.

Available commands:
  play     - Play from the configured start level
  check    - Validate level files or the configured content
  levels   - List loaded levels
  frame    - Print the sprite frame after replaying moves
  pack     - Build or inspect SQLite content packs
  serve    - Start SSH server for remote play

Examples:
  quest play
  quest play --content ./levels --start cave
  quest check ./levels/*.txt
  quest pack build ./content.db --content ./levels
  quest serve --ssh :2222`,
	SilenceUsage:      true,
	PersistentPreRunE: loadConfig,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (simulation ticks per second)")
	rootCmd.PersistentFlags().StringVar(&flagContent, "content", "", "Directory with <level>.txt files and dialog.txt")
	rootCmd.PersistentFlags().StringVar(&flagPack, "pack", "", "SQLite content pack to read from")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(levelsCmd)
	rootCmd.AddCommand(frameCmd)
	rootCmd.AddCommand(packCmd)
	rootCmd.AddCommand(serveCmd)
}

// loadConfig reads the config file and applies flags that were set explicitly.
func loadConfig(cmd *cobra.Command, _ []string) error {
	loaded, _, err := config.Load(flagConfig)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("fps") {
		loaded.Game.TickRate = flagFPS
	}
	if flags.Changed("content") {
		loaded.Content.Dir = flagContent
		loaded.Content.Pack = ""
	}
	if flags.Changed("pack") {
		loaded.Content.Pack = flagPack
	}
	if flags.Changed("log-level") {
		loaded.Log.Level = flagLogLevel
	}
	if err := loaded.Validate(); err != nil {
		return err
	}

	cfg = loaded
	return nil
}

// newLogger builds a logger at the configured level.
func newLogger(w io.Writer, prefix string) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
	})
	if lvl, err := log.ParseLevel(cfg.Log.Level); err == nil {
		logger.SetLevel(lvl)
	}
	return logger
}

// runtimeConfig returns the host loop settings for a screen of w x h cells.
func runtimeConfig(w, h int) core.RuntimeConfig {
	rc := core.DefaultConfig()
	rc.ScreenW, rc.ScreenH = w, h
	rc.TickRate = cfg.Game.TickRate
	if cfg.Game.MaxCatchUp > 0 {
		rc.MaxCatchUp = cfg.Game.MaxCatchUp
	}
	return rc
}

// openSource returns the configured content source and a function releasing it.
// A pack wins over a directory; with neither the embedded content is used.
func openSource() (assets.Source, func(), error) {
	switch {
	case cfg.Content.Pack != "":
		pack, err := assets.OpenPack(config.ExpandHome(cfg.Content.Pack))
		if err != nil {
			return nil, nil, err
		}
		return pack, func() { pack.Close() }, nil
	case cfg.Content.Dir != "":
		return assets.DirSource{Root: config.ExpandHome(cfg.Content.Dir)}, func() {}, nil
	default:
		return assets.EmbeddedSource(), func() {}, nil
	}
}

// loadWorld loads the configured levels and dialog.
func loadWorld() (*world.Registry, *dialog.Store, error) {
	src, release, err := openSource()
	if err != nil {
		return nil, nil, err
	}
	defer release()
	return assets.LoadWorld(src, cfg.Content.Levels)
}

// newGameFactory loads the content once and returns a constructor for
// independent games that share it.
func newGameFactory(start string) (func() (*world.Game, error), error) {
	reg, dialogs, err := loadWorld()
	if err != nil {
		return nil, err
	}
	if start == "" {
		start = cfg.Content.Start
	}
	if _, err := world.New(reg, dialogs, start); err != nil {
		return nil, err
	}
	return func() (*world.Game, error) {
		return world.New(reg, dialogs, start)
	}, nil
}

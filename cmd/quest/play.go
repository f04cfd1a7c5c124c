package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tilequest/internal/config"
	"github.com/vovakirdan/tilequest/internal/platform/tui"
	"github.com/vovakirdan/tilequest/internal/world"
)

var flagStart string

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play the adventure",
	Long: `Start playing from the configured start level.

Controls:
  Arrows/WASD/HJKL - Move one tile per tick while held
  P/Esc            - Pause
  ?                - Toggle full help
  Q/Ctrl+C         - Quit

Walking into an NPC opens its dialog; any move closes it.
Stepping onto a door enters the level it leads to.

Examples:
  quest play
  quest play --start cave
  quest play --content ./levels
  quest play --pack ./content.db --fps 30`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagStart, "start", "", "Level to start in (default from config)")
}

func runPlay(_ *cobra.Command, _ []string) {
	newGame, err := newGameFactory(flagStart)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading content: %v\n", err)
		os.Exit(1)
	}
	game, err := newGame()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	// The alt screen owns the terminal, so logs go to a file.
	logOut, closeLog := openLogFile(cfg.Log.File)
	defer closeLog()
	logger := newLogger(logOut, "quest")

	runErr := tui.Run(game, runtimeConfig(width, height), logger)

	var rerr *world.RuntimeError
	switch {
	case errors.As(runErr, &rerr):
		closeLog()
		fmt.Fprintf(os.Stderr, "Game halted: %v\n", rerr)
		os.Exit(2)
	case runErr != nil:
		closeLog()
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}

// openLogFile opens path for appending. Without a usable path logs are dropped.
func openLogFile(path string) (io.Writer, func()) {
	if path == "" {
		return io.Discard, func() {}
	}
	path = config.ExpandHome(path)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: cannot create log directory: %v\n", err)
		return io.Discard, func() {}
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: cannot open log file: %v\n", err)
		return io.Discard, func() {}
	}
	return f, func() { f.Close() }
}

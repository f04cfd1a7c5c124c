package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tilequest/internal/core"
	"github.com/vovakirdan/tilequest/internal/render"
	"github.com/vovakirdan/tilequest/internal/world"
)

var frameCmd = &cobra.Command{
	Use:   "frame [moves]",
	Short: "Print the sprite frame after replaying moves",
	Long: `Replay a sequence of moves from the start level and print the
resulting draw list as YAML, using the layout from the config.

Moves are one letter per tick: u, d, l, r, or '.' for an idle tick.

Examples:
  quest frame
  quest frame rrrruuu
  quest frame --start cave ll.rr`,
	Args: cobra.MaximumNArgs(1),
	Run:  runFrame,
}

func init() {
	frameCmd.Flags().StringVar(&flagStart, "start", "", "Level to start in (default from config)")
}

// frameDump is the YAML document printed by the frame command.
type frameDump struct {
	State   world.Snapshot  `yaml:"state"`
	Sprites []render.Sprite `yaml:"sprites"`
}

var moveActions = map[rune]core.Action{
	'u': core.ActionUp,
	'd': core.ActionDown,
	'l': core.ActionLeft,
	'r': core.ActionRight,
	'.': core.ActionNone,
}

func runFrame(_ *cobra.Command, args []string) {
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

	var moves string
	if len(args) == 1 {
		moves = strings.ToLower(args[0])
	}
	for i, r := range moves {
		action, ok := moveActions[r]
		if !ok {
			fmt.Fprintf(os.Stderr, "Error: unknown move %q at %d\n", r, i)
			os.Exit(1)
		}
		in := core.NewInputFrame()
		if action != core.ActionNone {
			in.Set(action)
		}
		if _, err := game.Step(in); err != nil {
			fmt.Fprintf(os.Stderr, "Game halted after move %d: %v\n", i, err)
			os.Exit(2)
		}
	}

	enc := yaml.NewEncoder(os.Stdout)
	enc.SetIndent(2)
	defer enc.Close()
	if err := enc.Encode(frameDump{
		State:   game.Snapshot(),
		Sprites: render.Frame(game, cfg.Layout),
	}); err != nil {
		fmt.Fprintf(os.Stderr, "Error encoding frame: %v\n", err)
		os.Exit(1)
	}
}

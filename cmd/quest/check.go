package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tilequest/internal/level"
)

var flagNormalize bool

var checkCmd = &cobra.Command{
	Use:   "check [file...]",
	Short: "Validate level content",
	Long: `Validate level files, or the whole configured content set.

With file arguments each file is parsed on its own and parse errors are
reported with their line number. Placements outside the map are
reported in both modes. With --normalize the parsed level is
printed back in canonical form.

Without arguments the configured content is loaded and cross-checked:
every door must lead to a cell of a loaded level, every NPC must have a
dialog entry, and the start level needs exactly one player start (other
levels may have none, but never more than one).

Examples:
  quest check ./levels/town.txt
  quest check --normalize ./levels/cave.txt > cave.txt
  quest check --content ./levels`,
	Run: runCheck,
}

func init() {
	checkCmd.Flags().BoolVar(&flagNormalize, "normalize", false, "Print each parsed file in canonical form")
}

func runCheck(_ *cobra.Command, args []string) {
	var problems int
	if len(args) > 0 {
		problems = checkFiles(args)
	} else {
		problems = checkContent()
	}

	if problems > 0 {
		fmt.Fprintf(os.Stderr, "%d problem(s) found\n", problems)
		os.Exit(1)
	}
	if !flagNormalize {
		fmt.Println("OK")
	}
}

func checkFiles(paths []string) int {
	problems := 0
	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", path, err)
			problems++
			continue
		}

		def, err := level.Parse(string(data))
		if err != nil {
			var perr *level.ParseError
			if errors.As(err, &perr) && perr.Line > 0 {
				fmt.Fprintf(os.Stderr, "%s:%d: [%s] %s\n", path, perr.Line, perr.Kind, perr.Message)
			} else {
				fmt.Fprintf(os.Stderr, "%s: %v\n", path, err)
			}
			problems++
			continue
		}
		if _, err := def.PlayerStart(); errors.Is(err, level.ErrDuplicatePlayerStart) {
			fmt.Fprintf(os.Stderr, "%s: %v\n", path, err)
			problems++
		}
		problems += reportStray(path, def)

		if flagNormalize {
			fmt.Print(level.Format(def))
		}
	}
	return problems
}

func checkContent() int {
	reg, dialogs, err := loadWorld()
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		return 1
	}

	problems := 0
	for _, name := range reg.Names() {
		def, _ := reg.Lookup(name)
		// Only the start level needs a player line; doors place the player elsewhere.
		_, err := def.PlayerStart()
		if err != nil && (name == cfg.Content.Start || !errors.Is(err, level.ErrMissingPlayerStart)) {
			fmt.Fprintf(os.Stderr, "%s: %v\n", name, err)
			problems++
		}
		problems += reportStray(name, def)
		for _, p := range def.Placements {
			npc, ok := p.Kind.(level.NPC)
			if !ok {
				continue
			}
			if _, ok := dialogs.Get(npc.DialogID); !ok {
				fmt.Fprintf(os.Stderr, "%s: npc at %s: no dialog %d\n", name, p.Pos, npc.DialogID)
				problems++
			}
		}
	}

	// Also catches doors landing outside their target map.
	for _, d := range reg.CheckDoors() {
		fmt.Fprintf(os.Stderr, "%s\n", d)
		problems++
	}

	if problems == 0 {
		fmt.Printf("%d level(s), %d dialog entries\n", reg.Len(), dialogs.Len())
	}
	return problems
}

// reportStray prints each placement outside the map and returns how many.
func reportStray(where string, def *level.Definition) int {
	stray := def.StrayPlacements()
	for _, p := range stray {
		fmt.Fprintf(os.Stderr, "%s: %q outside the %dx%d map\n", where, p, def.Width(), def.Height())
	}
	return len(stray)
}

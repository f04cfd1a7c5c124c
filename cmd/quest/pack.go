package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tilequest/internal/assets"
	"github.com/vovakirdan/tilequest/internal/config"
)

var packCmd = &cobra.Command{
	Use:   "pack",
	Short: "Build or inspect SQLite content packs",
	Long: `A content pack is a single SQLite file holding level documents and
the dialog blob. Point --pack (or content.pack in the config) at it
to play from the pack instead of a directory.

Examples:
  quest pack build ./content.db --content ./levels
  quest pack ls ./content.db`,
}

var packBuildCmd = &cobra.Command{
	Use:   "build <file>",
	Short: "Store the configured content in a pack",
	Long: `Copy every configured level and the dialog blob into a pack file.
Levels already in the pack are replaced; each level must parse.`,
	Args: cobra.ExactArgs(1),
	Run:  runPackBuild,
}

var packListCmd = &cobra.Command{
	Use:   "ls <file>",
	Short: "List the levels stored in a pack",
	Args:  cobra.ExactArgs(1),
	Run:   runPackList,
}

func init() {
	packCmd.AddCommand(packBuildCmd)
	packCmd.AddCommand(packListCmd)
}

func runPackBuild(_ *cobra.Command, args []string) {
	src, release, err := openSource()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening content: %v\n", err)
		os.Exit(1)
	}
	defer release()

	names := cfg.Content.Levels
	if len(names) == 0 {
		if names, err = src.Names(); err != nil {
			fmt.Fprintf(os.Stderr, "Error listing levels: %v\n", err)
			os.Exit(1)
		}
	}

	pack, err := assets.OpenPack(config.ExpandHome(args[0]))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening pack: %v\n", err)
		os.Exit(1)
	}
	defer pack.Close()

	if err := pack.Import(src, names); err != nil {
		fmt.Fprintf(os.Stderr, "Error importing content: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Stored %d level(s) in %s\n", len(names), args[0])
}

func runPackList(_ *cobra.Command, args []string) {
	pack, err := assets.OpenPack(config.ExpandHome(args[0]))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening pack: %v\n", err)
		os.Exit(1)
	}

	entries, err := pack.Entries()
	if err != nil {
		pack.Close()
		fmt.Fprintf(os.Stderr, "Error reading pack: %v\n", err)
		os.Exit(1)
	}
	defer pack.Close()

	if len(entries) == 0 {
		fmt.Println("Pack is empty.")
		return
	}

	fmt.Printf("Levels in %s\n", args[0])
	fmt.Println("─────────────────────────────────────────")
	fmt.Printf("%-3s %-16s %8s  %s\n", "#", "Name", "Bytes", "Updated")
	for _, e := range entries {
		fmt.Printf("%-3d %-16s %8d  %s\n", e.Position, e.Name, e.Bytes, e.UpdatedAt.Format("2006-01-02 15:04"))
	}
}

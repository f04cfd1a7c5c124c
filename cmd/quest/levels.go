package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "List the loaded levels",
	Long:  `Shows every level of the configured content with its size and entity counts.`,
	Args:  cobra.NoArgs,
	Run:   runLevels,
}

func runLevels(_ *cobra.Command, _ []string) {
	reg, _, err := loadWorld()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading content: %v\n", err)
		os.Exit(1)
	}

	levels := reg.List()
	if len(levels) == 0 {
		fmt.Println("No levels available.")
		return
	}

	fmt.Println("Available levels:")
	fmt.Println()

	maxNameLen := 4 // "Name" header
	for _, l := range levels {
		if len(l.Name) > maxNameLen {
			maxNameLen = len(l.Name)
		}
	}

	fmt.Printf("  %-*s  %7s  %4s  %5s\n", maxNameLen, "Name", "Size", "NPCs", "Doors")
	fmt.Printf("  %-*s  %7s  %4s  %5s\n", maxNameLen, "----", "----", "----", "-----")

	for _, l := range levels {
		size := fmt.Sprintf("%dx%d", l.Width, l.Height)
		marker := " "
		if l.Name == cfg.Content.Start {
			marker = "*"
		}
		fmt.Printf("%s %-*s  %7s  %4d  %5d\n", marker, maxNameLen, l.Name, size, l.NPCs, l.Doors)
	}

	fmt.Println()
	fmt.Println("* start level. Run 'quest play --start <name>' to begin elsewhere.")
}

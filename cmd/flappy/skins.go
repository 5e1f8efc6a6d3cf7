package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-flappy/internal/flappy"
)

var skinsCmd = &cobra.Command{
	Use:   "skins",
	Short: "List all available skins",
	Long:  `Shows the skin catalog. Pick one in the game menu with its number.`,
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		printSkins(cmd.OutOrStdout())
	},
}

func printSkins(w io.Writer) {
	skins := flappy.Skins()

	fmt.Fprintln(w, "Available skins:")
	fmt.Fprintln(w)

	// Calculate column widths
	maxNameLen := 4 // "Name" header
	for _, s := range skins {
		maxNameLen = max(maxNameLen, len(s.Name))
	}

	fmt.Fprintf(w, "  %-3s  %-*s\n", "Key", maxNameLen, "Name")
	fmt.Fprintf(w, "  %-3s  %-*s\n", "---", maxNameLen, "----")

	for i, s := range skins {
		fmt.Fprintf(w, "  %-3d  %-*s\n", i+1, maxNameLen, s.Name)
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Press the key in the game menu to start with that skin.")
}

package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-tetromino/internal/tetromino"
)

var kindsCmd = &cobra.Command{
	Use:   "kinds",
	Short: "List all kinds with their canonical offsets",
	Long:  `Shows the seven tetromino kinds and the offsets of their cells relative to the local origin.`,
	Args:  cobra.NoArgs,
	Run:   runKinds,
}

func runKinds(cmd *cobra.Command, args []string) {
	out := cmd.OutOrStdout()

	fmt.Fprintf(out, "  %-4s  %s\n", "Kind", "Offsets")
	fmt.Fprintf(out, "  %-4s  %s\n", "----", "-------")

	for _, k := range tetromino.Kinds() {
		shape := tetromino.Shape(k)
		parts := make([]string, len(shape))
		for i, o := range shape {
			parts[i] = o.String()
		}
		fmt.Fprintf(out, "  %-4s  %s\n", k, strings.Join(parts, " "))
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, "Run 'tetromino show <kind>' to draw a piece.")
}

package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-tetromino/internal/palette"
	"github.com/vovakirdan/tui-tetromino/internal/platform/tui"
	"github.com/vovakirdan/tui-tetromino/internal/tetromino"
)

var palettesCmd = &cobra.Command{
	Use:   "palettes",
	Short: "List all color palettes",
	Long: `Shows every registered palette with a color sample per kind. The palette
in use is marked with *. A custom palette from the config is listed too.`,
	Args: cobra.NoArgs,
	RunE: runPalettes,
}

// paletteRow is one line of the palettes listing.
type paletteRow struct {
	palette palette.Palette
	active  bool
}

func runPalettes(cmd *cobra.Command, args []string) error {
	logger := newLogger()

	_, active, err := setup(logger)
	if err != nil {
		return err
	}

	rows, err := paletteRows(active)
	if err != nil {
		return err
	}
	writePalettes(cmd.OutOrStdout(), rows)
	return nil
}

// paletteRows lists the registered palettes, then active if it is not one
// of them.
func paletteRows(active palette.Palette) ([]paletteRow, error) {
	infos := palette.List()
	rows := make([]paletteRow, 0, len(infos)+1)
	for _, info := range infos {
		p, err := palette.Get(info.Name)
		if err != nil {
			return nil, err
		}
		rows = append(rows, paletteRow{palette: p, active: info.Name == active.Name})
	}
	if !palette.Exists(active.Name) {
		rows = append(rows, paletteRow{palette: active, active: true})
	}
	return rows, nil
}

func writePalettes(out io.Writer, rows []paletteRow) {
	// Calculate column widths
	maxNameLen := len("Name")
	for _, r := range rows {
		if len(r.palette.Name) > maxNameLen {
			maxNameLen = len(r.palette.Name)
		}
	}

	fmt.Fprintf(out, "    %-*s  %s\n", maxNameLen, "Name", "I O T S Z J L")
	for _, r := range rows {
		mark := " "
		if r.active {
			mark = "*"
		}
		swatches := ""
		for _, k := range tetromino.Kinds() {
			swatches += tui.Swatch(r.palette.Color(k))
		}
		fmt.Fprintf(out, "  %s %-*s  %s  %s\n", mark, maxNameLen, r.palette.Name, swatches, r.palette.Title)
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, "Select one with --palette <name> or palette: <name> in the config.")
}

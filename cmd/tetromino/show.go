package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-tetromino/internal/platform/tui"
	"github.com/vovakirdan/tui-tetromino/internal/tetromino"
)

var (
	flagRotate int
	flagAnchor string
	flagPlain  bool
)

var showCmd = &cobra.Command{
	Use:   "show <kind>",
	Short: "Draw a piece",
	Long: `Draw a piece on its local grid after the given number of quarter turns.
Negative turns rotate the other way. The rotation uses the discretization
from the config (rotation.discretize).

Examples:
  tetromino show I
  tetromino show T --rotate 1
  tetromino show S --rotate -1 --anchor 3,5
  tetromino show O --plain`,
	Args: cobra.ExactArgs(1),
	RunE: runShow,
}

func init() {
	showCmd.Flags().IntVarP(&flagRotate, "rotate", "r", 0, "Quarter turns to apply (negative rotates back)")
	showCmd.Flags().StringVar(&flagAnchor, "anchor", "", "Anchor as x,y (default: spawn anchor from config)")
	showCmd.Flags().BoolVar(&flagPlain, "plain", false, "Print without colors")
}

func runShow(cmd *cobra.Command, args []string) error {
	logger := newLogger()

	kind, ok := tetromino.ParseKind(args[0])
	if !ok {
		return fmt.Errorf("unknown kind %q (one of I, O, T, S, Z, J, L)", args[0])
	}

	cfg, p, err := setup(logger)
	if err != nil {
		return err
	}

	anchor := cfg.SpawnAnchor()
	if flagAnchor != "" {
		if anchor, err = parseAnchor(flagAnchor); err != nil {
			return err
		}
	}

	piece := tetromino.New(anchor, kind, p.Color(kind))
	turn := tetromino.NewRotation(90, cfg.Discretizer())
	if flagRotate < 0 {
		turn = tetromino.NewRotation(-90, cfg.Discretizer())
	}
	for i := 0; i < abs(flagRotate); i++ {
		piece.RotateWith(turn)
	}
	logger.Debug("drew piece", "piece", piece, "turns", flagRotate)

	out := cmd.OutOrStdout()
	screen := tui.PieceScreen(piece)
	if flagPlain {
		fmt.Fprintln(out, screen.String())
	} else {
		fmt.Fprintln(out, tui.RenderScreen(screen))
	}
	fmt.Fprintf(out, "%s at %s, bounds %+v\n", kind, piece.Anchor(), piece.Bounds())
	for _, line := range tui.DescribeCells(piece) {
		fmt.Fprintln(out, "  "+line)
	}
	return nil
}

// parseAnchor parses "x,y" into a board anchor.
func parseAnchor(s string) (tetromino.Anchor, error) {
	xs, ys, ok := strings.Cut(s, ",")
	if !ok {
		return tetromino.Anchor{}, fmt.Errorf("invalid anchor %q: expected x,y", s)
	}
	x, err := strconv.ParseUint(strings.TrimSpace(xs), 10, 0)
	if err != nil {
		return tetromino.Anchor{}, fmt.Errorf("invalid anchor x %q: %w", xs, err)
	}
	y, err := strconv.ParseUint(strings.TrimSpace(ys), 10, 0)
	if err != nil {
		return tetromino.Anchor{}, fmt.Errorf("invalid anchor y %q: %w", ys, err)
	}
	return tetromino.C(uint(x), uint(y)), nil
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

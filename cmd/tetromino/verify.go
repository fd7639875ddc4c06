package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-tetromino/internal/palette"
	"github.com/vovakirdan/tui-tetromino/internal/tetromino"
)

var verifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Check every kind against the catalog and the rotation cycle",
	Long: `Build every kind and check that it has four distinct cells stamped with
the palette color, and that four quarter turns under the configured
discretization return it to its canonical offsets without moving the
anchor. Exits with status 1 if any kind fails.`,
	Args: cobra.NoArgs,
	RunE: runVerify,
}

func runVerify(cmd *cobra.Command, args []string) error {
	logger := newLogger()

	cfg, p, err := setup(logger)
	if err != nil {
		return err
	}

	failed := 0
	for _, k := range tetromino.Kinds() {
		if err := verifyKind(k, cfg.SpawnAnchor(), cfg.QuarterTurn(), p); err != nil {
			logger.Error("kind failed", "kind", k, "error", err)
			failed++
			continue
		}
		logger.Info("kind ok", "kind", k)
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d kinds failed", failed, tetromino.KindCount)
	}
	return nil
}

// verifyKind checks one kind's construction and its four-turn rotation cycle.
func verifyKind(k tetromino.Kind, anchor tetromino.Anchor, turn tetromino.Rotation, p palette.Palette) error {
	piece := tetromino.New(anchor, k, p.Color(k))
	want := tetromino.Shape(k)

	seen := make(map[tetromino.Offset]bool, len(want))
	for _, c := range piece.Cells() {
		if c.Color != p.Color(k) {
			return fmt.Errorf("cell %s has color %v, expected %v", c.Offset, c.Color, p.Color(k))
		}
		if seen[c.Offset] {
			return fmt.Errorf("duplicate offset %s", c.Offset)
		}
		seen[c.Offset] = true
	}

	for i := 1; i <= 4; i++ {
		piece.RotateWith(turn)
		if piece.Anchor() != anchor {
			return fmt.Errorf("turn %d moved the anchor to %s", i, piece.Anchor())
		}
		if piece.Kind() != k {
			return fmt.Errorf("turn %d changed the kind to %s", i, piece.Kind())
		}
	}
	if got := piece.Offsets(); got != want {
		return fmt.Errorf("four turns gave %v, expected %v", got, want)
	}
	return nil
}

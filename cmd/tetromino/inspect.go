package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-tetromino/internal/palette"
	"github.com/vovakirdan/tui-tetromino/internal/platform/tui"
	"github.com/vovakirdan/tui-tetromino/internal/tetromino"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect [kind]",
	Short: "Rotate and move a piece interactively",
	Long: `Open the interactive inspector.

Controls:
  Space/X      - Rotate
  Z            - Rotate back
  Tab/N        - Next kind
  Shift+Tab/P  - Previous kind
  Arrows/HJKL  - Move the anchor
  R            - Reset
  ?            - More keys
  Q/Ctrl+C     - Quit

Examples:
  tetromino inspect
  tetromino inspect Z --palette mono
  tetromino inspect --pick`,
	Args: cobra.MaximumNArgs(1),
	RunE: runInspect,
}

var flagPick bool

func init() {
	inspectCmd.Flags().BoolVar(&flagPick, "pick", false, "Choose the palette from a menu first")
}

func runInspect(cmd *cobra.Command, args []string) error {
	logger := newLogger()

	kind := tetromino.KindT
	if len(args) == 1 {
		k, ok := tetromino.ParseKind(args[0])
		if !ok {
			return fmt.Errorf("unknown kind %q (one of I, O, T, S, Z, J, L)", args[0])
		}
		kind = k
	}

	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		return errors.New("inspect needs an interactive terminal; try 'tetromino show'")
	}
	if w, h, err := term.GetSize(fd); err == nil && (w < tui.PreviewWidth || h < tui.PreviewHeight) {
		logger.Warn("terminal is smaller than the preview", "width", w, "height", h)
	}

	cfg, p, err := setup(logger)
	if err != nil {
		return err
	}

	if flagPick {
		name, ok, err := tui.RunMenu(p.Name)
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}
		if p, err = palette.Get(name); err != nil {
			return err
		}
		logger.Debug("picked palette", "name", name)
	}

	return tui.Run(tui.Options{
		Kind:        kind,
		Anchor:      cfg.SpawnAnchor(),
		Palette:     p,
		Discretizer: cfg.Discretizer(),
	})
}

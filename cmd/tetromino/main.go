// tetromino is a workbench for the seven tetromino pieces: it prints their
// shapes, deals spawn sequences and opens an interactive rotation inspector.
//
// Usage:
//
//	tetromino kinds              - List kinds with their canonical offsets
//	tetromino show <kind>        - Draw a piece, optionally rotated
//	tetromino deal               - Print a spawn sequence
//	tetromino palettes           - List color palettes
//	tetromino inspect [kind]     - Interactive inspector
//	tetromino verify             - Check every kind's rotation cycle
//
// Global flags:
//
//	--config <path>   - Config file (default search: ~/.tetromino/configs, ./configs)
//	--palette <name>  - Override the configured palette
//	--verbose         - Debug logging
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-tetromino/internal/config"
	"github.com/vovakirdan/tui-tetromino/internal/palette"
)

var (
	// Global flags
	flagConfig  string
	flagPalette string
	flagVerbose bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "tetromino",
	Short: "Tetromino workbench - inspect pieces and rotations in your terminal",
	Long: `Tetromino is a terminal workbench for the seven block-puzzle pieces.

Available commands:
  kinds     - Show every kind with its offsets
  show      - Draw one piece, optionally rotated
  deal      - Print a spawn sequence
  palettes  - List color palettes
  inspect   - Rotate and move a piece interactively
  verify    - Check the catalog and the rotation cycle

Examples:
  tetromino kinds
  tetromino show T --rotate 1
  tetromino deal --count 14 --seed 42
  tetromino inspect S --palette classic`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().StringVar(&flagPalette, "palette", "", "Palette name (overrides config)")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Enable debug logging")

	// Add subcommands
	rootCmd.AddCommand(kindsCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(dealCmd)
	rootCmd.AddCommand(palettesCmd)
	rootCmd.AddCommand(inspectCmd)
	rootCmd.AddCommand(verifyCmd)
}

func newLogger() *log.Logger {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "tetromino",
	})
	if flagVerbose {
		logger.SetLevel(log.DebugLevel)
	}
	return logger
}

// setup loads the config and resolves the palette, applying --palette.
func setup(logger *log.Logger) (config.Config, palette.Palette, error) {
	cfg, source, err := config.LoadWithSource(flagConfig)
	if err != nil {
		return cfg, palette.Palette{}, err
	}
	logger.Debug("loaded config", "source", source)

	if flagPalette != "" {
		cfg.Palette = flagPalette
	}
	p, err := cfg.ResolvePalette()
	if err != nil {
		return cfg, p, err
	}
	logger.Debug("using palette", "name", p.Name)
	return cfg, p, nil
}

// Package config provides YAML-based configuration loading for the
// tetromino tools: palette choice, rotation discretization and spawn
// settings.
package config

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/tui-tetromino/internal/palette"
	"github.com/vovakirdan/tui-tetromino/internal/spawn"
	"github.com/vovakirdan/tui-tetromino/internal/tetromino"
)

// CustomPaletteName selects the custom_palette table instead of a built-in.
const CustomPaletteName = "custom"

// Config contains all configuration for the tetromino tools.
type Config struct {
	Palette       string            `yaml:"palette"`        // Registered palette name or "custom"
	CustomPalette map[string]string `yaml:"custom_palette"` // Kind letter -> color name or hex
	Rotation      RotationConfig    `yaml:"rotation"`
	Spawn         SpawnConfig       `yaml:"spawn"`
}

// RotationConfig defines how rotated offsets land back on the grid.
type RotationConfig struct {
	Discretize string `yaml:"discretize"` // "round" or "truncate"
}

// SpawnConfig defines where new pieces appear and how kinds are drawn.
type SpawnConfig struct {
	Anchor AnchorConfig `yaml:"anchor"`
	Seed   int64        `yaml:"seed"` // 0 = time based
	Policy string       `yaml:"policy"`
}

// AnchorConfig is a board position.
type AnchorConfig struct {
	X uint `yaml:"x"`
	Y uint `yaml:"y"`
}

// Validate reports every problem in the config at once.
func (c Config) Validate() error {
	var errs []error

	if _, err := tetromino.ParseDiscretizer(c.Rotation.Discretize); err != nil {
		errs = append(errs, err)
	}
	if _, err := c.ResolvePalette(); err != nil {
		errs = append(errs, err)
	}
	switch spawn.Policy(c.Spawn.Policy) {
	case "", spawn.PolicyBag, spawn.PolicyUniform:
	default:
		errs = append(errs, fmt.Errorf("config: unknown spawn policy %q", c.Spawn.Policy))
	}

	return errors.Join(errs...)
}

// Discretizer returns the configured rounding policy, defaulting to
// round-to-nearest.
func (c Config) Discretizer() tetromino.Discretizer {
	d, err := tetromino.ParseDiscretizer(c.Rotation.Discretize)
	if err != nil {
		return tetromino.RoundNearest
	}
	return d
}

// QuarterTurn returns the 90° rotation built with the configured discretizer.
func (c Config) QuarterTurn() tetromino.Rotation {
	return tetromino.NewRotation(90, c.Discretizer())
}

// ResolvePalette returns the configured palette: a registered one by name,
// or the custom table when Palette is "custom".
func (c Config) ResolvePalette() (palette.Palette, error) {
	name := c.Palette
	if name == "" {
		name = palette.DefaultName
	}
	if name == CustomPaletteName {
		return palette.FromHex(CustomPaletteName, c.CustomPalette)
	}
	return palette.Get(name)
}

// SpawnAnchor returns the configured spawn position.
func (c Config) SpawnAnchor() tetromino.Anchor {
	return tetromino.C(c.Spawn.Anchor.X, c.Spawn.Anchor.Y)
}

// SpawnPolicy returns the configured draw policy, defaulting to the bag.
func (c Config) SpawnPolicy() spawn.Policy {
	if c.Spawn.Policy == "" {
		return spawn.PolicyBag
	}
	return spawn.Policy(c.Spawn.Policy)
}

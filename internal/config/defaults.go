package config

import (
	_ "embed"
)

//go:embed defaults/tetromino.yaml
var defaultYAML []byte

// Default returns the hardcoded default configuration.
func Default() Config {
	return Config{
		Palette: "guideline",
		Rotation: RotationConfig{
			Discretize: "round",
		},
		Spawn: SpawnConfig{
			Anchor: AnchorConfig{X: 4, Y: 0},
			Seed:   0,
			Policy: "bag",
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultYAML
}

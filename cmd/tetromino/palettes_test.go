package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-tetromino/internal/config"
	"github.com/vovakirdan/tui-tetromino/internal/palette"
)

func TestPaletteRowsMarksActive(t *testing.T) {
	active, err := palette.Get("classic")
	require.NoError(t, err)

	rows, err := paletteRows(active)
	require.NoError(t, err)
	require.Len(t, rows, len(palette.List()))

	for _, r := range rows {
		assert.Equal(t, r.palette.Name == "classic", r.active, r.palette.Name)
	}
}

func TestPaletteRowsListsCustom(t *testing.T) {
	cfg := config.Default()
	cfg.Palette = config.CustomPaletteName
	custom, err := cfg.ResolvePalette()
	require.NoError(t, err)

	rows, err := paletteRows(custom)
	require.NoError(t, err)
	require.Len(t, rows, len(palette.List())+1)

	last := rows[len(rows)-1]
	assert.Equal(t, config.CustomPaletteName, last.palette.Name)
	assert.True(t, last.active)
	for _, r := range rows[:len(rows)-1] {
		assert.False(t, r.active, r.palette.Name)
	}

	var out bytes.Buffer
	writePalettes(&out, rows)
	lines := strings.Split(out.String(), "\n")
	assert.Contains(t, lines[len(rows)], "* custom")
}

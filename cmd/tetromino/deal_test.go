package main

import (
	"bytes"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-tetromino/internal/palette"
	"github.com/vovakirdan/tui-tetromino/internal/spawn"
	"github.com/vovakirdan/tui-tetromino/internal/tetromino"
)

func TestDealPrintsPiecesThenNext(t *testing.T) {
	p, err := palette.Get(palette.DefaultName)
	require.NoError(t, err)
	anchor := tetromino.C[uint](4, 0)

	var out bytes.Buffer
	deal(&out, spawn.New(spawn.PolicyBag, 42, anchor, p), 7)

	lines := strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
	require.Len(t, lines, 8)

	same := spawn.New(spawn.PolicyBag, 42, anchor, p)
	for i := 0; i < 7; i++ {
		assert.Equal(t, fmt.Sprintf("%3d  %s", i+1, same.Next()), lines[i])
	}
	assert.Equal(t, "next: "+same.NextKind().String(), lines[7])
}

package tetromino

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-tetromino/internal/core"
)

func TestRotateQuarterTurn(t *testing.T) {
	tests := []struct {
		kind     Kind
		expected []Offset
	}{
		{KindI, []Offset{C(0, 0), C(-1, 0), C(-2, 0), C(-3, 0)}},
		{KindO, []Offset{C(0, 0), C(0, 1), C(-1, 0), C(-1, 1)}},
		{KindT, []Offset{C(0, 0), C(0, -1), C(0, 1), C(-1, 0)}},
		{KindS, []Offset{C(0, 0), C(0, -1), C(-1, 0), C(-1, 1)}},
		{KindZ, []Offset{C(0, 0), C(0, 1), C(-1, 0), C(-1, -1)}},
		{KindJ, []Offset{C(0, 0), C(-1, 0), C(-2, 0), C(0, -1)}},
		{KindL, []Offset{C(0, 0), C(-1, 0), C(-2, 0), C(0, 1)}},
	}

	for _, tc := range tests {
		t.Run(tc.kind.String(), func(t *testing.T) {
			p := New(C[uint](4, 0), tc.kind, core.Blue)
			p.Rotate()

			offsets := p.Offsets()
			assert.ElementsMatch(t, tc.expected, offsets[:])
		})
	}
}

func TestRotateOPieceUsesOriginalComponents(t *testing.T) {
	// Computing the new Y from an already-updated X would send (1,0) to
	// (0,0) and collapse two cells onto one.
	rot := NewRotation(90, RoundNearest)

	assert.Equal(t, C(0, 1), rot.Apply(C(1, 0)))
	assert.Equal(t, C(-1, 1), rot.Apply(C(1, 1)))
	assert.Equal(t, C(-1, 0), rot.Apply(C(0, 1)))
	assert.Equal(t, C(0, 0), rot.Apply(C(0, 0)))

	p := New(C[uint](0, 0), KindO, core.Yellow)
	p.Rotate()

	seen := make(map[Offset]bool)
	for _, o := range p.Offsets() {
		seen[o] = true
	}
	assert.Len(t, seen, 4, "rotation must keep four distinct cells")
}

func TestRotateFourTimesIsIdentity(t *testing.T) {
	for _, k := range Kinds() {
		t.Run(k.String(), func(t *testing.T) {
			p := New(C[uint](5, 2), k, core.Red)
			start := p.Offsets()

			for i := 1; i <= 4; i++ {
				p.Rotate()
				if i < 4 {
					assert.NotEqual(t, start, p.Offsets(), "after %d turns", i)
				}
			}
			assert.Equal(t, start, p.Offsets())
		})
	}
}

func TestRotateManyCyclesDoNotDrift(t *testing.T) {
	p := New(C[uint](0, 0), KindL, core.Orange)
	start := p.Offsets()

	for range 400 {
		p.Rotate()
	}
	assert.Equal(t, start, p.Offsets())
}

func TestRotateKeepsAnchorKindColor(t *testing.T) {
	p := New(C[uint](7, 3), KindZ, core.Red)

	for i := range 9 {
		p.Rotate()
		require.Equal(t, C[uint](7, 3), p.Anchor(), "turn %d", i)
		require.Equal(t, KindZ, p.Kind())
		require.Equal(t, core.Red, p.Color())
		require.Len(t, p.Cells(), 4)
		for _, c := range p.Cells() {
			require.Equal(t, core.Red, c.Color)
		}
	}
}

func TestRotateBackUndoesRotate(t *testing.T) {
	for _, k := range Kinds() {
		p := New(C[uint](0, 0), k, core.Gray)
		start := p.Offsets()

		p.Rotate()
		p.RotateBack()
		assert.Equal(t, start, p.Offsets(), "%s rotate then back", k)

		p.RotateBack()
		p.Rotate()
		assert.Equal(t, start, p.Offsets(), "%s back then rotate", k)
	}
}

func TestRotateBackIsThreeTurns(t *testing.T) {
	a := New(C[uint](0, 0), KindJ, core.Blue)
	b := New(C[uint](0, 0), KindJ, core.Blue)

	a.RotateBack()
	b.Rotate()
	b.Rotate()
	b.Rotate()

	assert.Equal(t, b.Offsets(), a.Offsets())
}

func TestRotateWithHalfTurn(t *testing.T) {
	p := New(C[uint](0, 0), KindT, core.Purple)
	p.RotateWith(NewRotation(180, RoundNearest))

	offsets := p.Offsets()
	assert.ElementsMatch(t, []Offset{C(0, 0), C(1, 0), C(-1, 0), C(0, -1)}, offsets[:])
}

func TestTruncateDistortsOPiece(t *testing.T) {
	p := New(C[uint](4, 0), KindO, core.Yellow)
	p.RotateWith(NewRotation(90, Truncate))

	// (1,1) lands on -0.9999999999999999, which truncates to 0.
	expected := [4]Offset{C(0, 0), C(0, 1), C(-1, 0), C(0, 1)}
	if got := p.Offsets(); got != expected {
		t.Errorf("Offsets() = %v, expected %v", got, expected)
	}
	assert.Equal(t, C[uint](4, 0), p.Anchor())
	assert.Equal(t, KindO, p.Kind())
}

func TestDiscretizers(t *testing.T) {
	tests := []struct {
		in        float64
		round     int
		truncated int
	}{
		{0.4, 0, 0},
		{0.6, 1, 0},
		{-0.9999999999999999, -1, 0},
		{1.0000000000000002, 1, 1},
		{-2.5, -3, -2},
		{2.5, 3, 2},
	}

	for _, tc := range tests {
		if got := RoundNearest(tc.in); got != tc.round {
			t.Errorf("RoundNearest(%v) = %d, expected %d", tc.in, got, tc.round)
		}
		if got := Truncate(tc.in); got != tc.truncated {
			t.Errorf("Truncate(%v) = %d, expected %d", tc.in, got, tc.truncated)
		}
	}
}

func TestParseDiscretizer(t *testing.T) {
	for _, name := range []string{"", "round", "Nearest", "truncate", "trunc"} {
		d, err := ParseDiscretizer(name)
		require.NoError(t, err, name)
		require.NotNil(t, d)
	}

	_, err := ParseDiscretizer("floor")
	assert.Error(t, err)
}

func TestNewRotationDefaultsToRounding(t *testing.T) {
	rot := NewRotation(90, nil)
	assert.Equal(t, C(-3, 2), rot.Apply(C(2, 3)))
}

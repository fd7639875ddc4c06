package tetromino

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-tetromino/internal/core"
)

func TestNewBuildsCatalogPiece(t *testing.T) {
	anchors := []Anchor{C[uint](0, 0), C[uint](4, 0), C[uint](9, 21)}

	for _, k := range Kinds() {
		for _, a := range anchors {
			p := New(a, k, core.Orange)

			assert.Equal(t, a, p.Anchor())
			assert.Equal(t, k, p.Kind())
			assert.Equal(t, core.Orange, p.Color())

			offsets := p.Offsets()
			assert.ElementsMatch(t, canonical[k], offsets[:], "%s at %s", k, a)
			for _, c := range p.Cells() {
				assert.Equal(t, core.Orange, c.Color)
			}
		}
	}
}

func TestNewIPiece(t *testing.T) {
	p := New(C[uint](4, 0), KindI, core.Cyan)

	offsets := p.Offsets()
	assert.ElementsMatch(t, []Offset{C(0, 0), C(0, 1), C(0, 2), C(0, 3)}, offsets[:])
	for _, c := range p.Cells() {
		assert.Equal(t, core.Cyan, c.Color)
	}
	assert.Equal(t, C[uint](4, 0), p.Anchor())
}

func TestNewTPiece(t *testing.T) {
	p := New(C[uint](0, 0), KindT, core.Magenta)

	offsets := p.Offsets()
	assert.ElementsMatch(t, []Offset{C(0, 0), C(-1, 0), C(1, 0), C(0, 1)}, offsets[:])
}

func TestCellsReturnsCopy(t *testing.T) {
	p := New(C[uint](0, 0), KindO, core.Yellow)

	cells := p.Cells()
	cells[1].Offset = C(7, 7)
	cells[1].Color = core.Red

	assert.Equal(t, C(1, 0), p.Cells()[1].Offset)
	assert.Equal(t, core.Yellow, p.Cells()[1].Color)
}

func TestMoveToKeepsOffsets(t *testing.T) {
	p := New(C[uint](4, 0), KindL, core.Orange)
	before := p.Offsets()

	p.MoveTo(C[uint](2, 10))

	assert.Equal(t, C[uint](2, 10), p.Anchor())
	assert.Equal(t, before, p.Offsets())
}

func TestAbsolute(t *testing.T) {
	p := New(C[uint](4, 0), KindT, core.Purple)

	abs := p.Absolute()
	assert.ElementsMatch(t, []Coord[int]{C(4, 0), C(3, 0), C(5, 0), C(4, 1)}, abs[:])
}

func TestBounds(t *testing.T) {
	tests := []struct {
		name     string
		kind     Kind
		rotate   int
		expected core.Rect
	}{
		{"I upright", KindI, 0, core.NewRect(0, 0, 1, 4)},
		{"I turned", KindI, 1, core.NewRect(-3, 0, 4, 1)},
		{"O", KindO, 0, core.NewRect(0, 0, 2, 2)},
		{"T", KindT, 0, core.NewRect(-1, 0, 3, 2)},
		{"J", KindJ, 0, core.NewRect(-1, 0, 2, 3)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p := New(C[uint](0, 0), tc.kind, core.White)
			for range tc.rotate {
				p.Rotate()
			}
			if got := p.Bounds(); got != tc.expected {
				t.Errorf("Bounds() = %+v, expected %+v", got, tc.expected)
			}
		})
	}
}

func TestSnapshotIsIndependent(t *testing.T) {
	p := New(C[uint](3, 3), KindS, core.Green)
	snap := p.Snapshot()

	p.Rotate()
	p.MoveTo(C[uint](0, 0))

	offsets := snap.Offsets()
	assert.ElementsMatch(t, canonical[KindS], offsets[:])
	assert.Equal(t, C[uint](3, 3), snap.Anchor())
}

func TestSnapshotReadsWithoutAVariable(t *testing.T) {
	p := New(C[uint](2, 1), KindZ, core.Red)

	assert.Equal(t, KindZ, p.Snapshot().Kind())
	assert.Equal(t, C[uint](2, 1), p.Snapshot().Anchor())
	assert.Equal(t, core.Red, p.Snapshot().Color())
	assert.Equal(t, Shape(KindZ), p.Snapshot().Offsets())
	assert.Equal(t, p.Bounds(), p.Snapshot().Bounds())
	assert.Equal(t, p.Absolute(), p.Snapshot().Absolute())
	assert.Equal(t, p.String(), p.Snapshot().String())
	assert.Equal(t, p.Cells(), p.Snapshot().Cells())
}

func TestString(t *testing.T) {
	p := New(C[uint](4, 0), KindI, core.Cyan)
	require.Equal(t, "I@(4,0)[(0,0) (0,1) (0,2) (0,3)]", p.String())
}

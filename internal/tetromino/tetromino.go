package tetromino

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/vovakirdan/tui-tetromino/internal/core"
)

// Cell is a single occupied unit of a piece.
type Cell struct {
	Offset Offset     // Relative to the piece's local origin, not the board
	Color  color.RGBA // Value copy of the piece color
}

// Tetromino is a four-cell piece: where it sits on the board, what shape it
// is, and the offsets of its cells around its local origin.
//
// The cell count is fixed by the array type. Kind and color are set once by
// New. Only MoveTo changes the anchor; only the rotation methods change
// offsets.
type Tetromino struct {
	anchor Anchor
	kind   Kind
	color  color.RGBA
	cells  [4]Cell
}

// New builds a piece of the given kind at anchor, with every cell colored col.
func New(anchor Anchor, kind Kind, col color.RGBA) *Tetromino {
	return &Tetromino{
		anchor: anchor,
		kind:   kind,
		color:  col,
		cells:  Cells(kind, col),
	}
}

// Anchor returns the piece position in board coordinates.
func (t Tetromino) Anchor() Anchor {
	return t.anchor
}

// Kind returns the piece kind.
func (t Tetromino) Kind() Kind {
	return t.kind
}

// Color returns the color the piece was built with.
func (t Tetromino) Color() color.RGBA {
	return t.color
}

// Cells returns a copy of the four cells.
func (t Tetromino) Cells() [4]Cell {
	return t.cells
}

// Offsets returns a copy of the four cell offsets.
func (t Tetromino) Offsets() [4]Offset {
	var out [4]Offset
	for i, c := range t.cells {
		out[i] = c.Offset
	}
	return out
}

// MoveTo places the piece at a new board position. Offsets are untouched.
func (t *Tetromino) MoveTo(anchor Anchor) {
	t.anchor = anchor
}

// Absolute returns each cell's board position (anchor + offset).
// Uses signed coordinates because offsets can reach past the anchor.
func (t Tetromino) Absolute() [4]Coord[int] {
	base := C(int(t.anchor.X), int(t.anchor.Y))
	var out [4]Coord[int]
	for i, c := range t.cells {
		out[i] = base.Add(c.Offset)
	}
	return out
}

// Bounds returns the smallest rectangle, in local coordinates, that covers
// every cell.
func (t Tetromino) Bounds() core.Rect {
	var r core.Rect
	for _, c := range t.cells {
		r = r.Union(core.NewRect(c.Offset.X, c.Offset.Y, 1, 1))
	}
	return r
}

// Snapshot returns a value copy. Readers on another goroutine should work
// from a snapshot taken by the owner, never from the live piece.
func (t *Tetromino) Snapshot() Tetromino {
	return *t
}

// String renders the piece as kind@anchor[offsets].
func (t Tetromino) String() string {
	parts := make([]string, len(t.cells))
	for i, c := range t.cells {
		parts[i] = c.Offset.String()
	}
	return fmt.Sprintf("%s@%s[%s]", t.kind, t.anchor, strings.Join(parts, " "))
}

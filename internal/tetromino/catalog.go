// Package tetromino models the seven falling pieces of a block-stacking
// puzzle: their canonical layouts, the piece value a board owns while it
// falls, and the quarter-turn rotation applied on player input.
//
// The package holds no board, timing, or rendering state. Callers own each
// Tetromino exclusively; nothing here is safe for concurrent mutation.
package tetromino

import (
	"fmt"
	"image/color"
)

// Shape returns the four canonical offsets for a kind, before any rotation.
// Offsets are relative to the piece's local origin (0,0). The returned array
// is a copy.
//
// Shape panics on a value outside the seven kinds.
func Shape(k Kind) [4]Offset {
	switch k {
	case KindI:
		// Vertical bar growing along +Y.
		return [4]Offset{C(0, 0), C(0, 1), C(0, 2), C(0, 3)}
	case KindO:
		return [4]Offset{C(0, 0), C(1, 0), C(0, 1), C(1, 1)}
	case KindT:
		return [4]Offset{C(0, 0), C(-1, 0), C(1, 0), C(0, 1)}
	case KindS:
		return [4]Offset{C(0, 0), C(-1, 0), C(0, 1), C(1, 1)}
	case KindZ:
		return [4]Offset{C(0, 0), C(1, 0), C(0, 1), C(-1, 1)}
	case KindJ:
		return [4]Offset{C(0, 0), C(0, 1), C(0, 2), C(-1, 0)}
	case KindL:
		return [4]Offset{C(0, 0), C(0, 1), C(0, 2), C(1, 0)}
	default:
		panic(fmt.Sprintf("tetromino: unknown kind %d", k))
	}
}

// Cells stamps col onto each canonical offset of a kind.
func Cells(k Kind, col color.RGBA) [4]Cell {
	var cells [4]Cell
	for i, off := range Shape(k) {
		cells[i] = Cell{Offset: off, Color: col}
	}
	return cells
}

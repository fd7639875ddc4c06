package tetromino

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// Number is the set of component types a Coord can be built from.
type Number interface {
	constraints.Integer | constraints.Float
}

// Coord is a 2D pair. It is a plain value: copy it, compare it, never share it.
type Coord[T Number] struct {
	X T
	Y T
}

// Offset is a cell position relative to the piece's local origin. Can be negative.
type Offset = Coord[int]

// Anchor is the piece position in board coordinates. Board cells are never negative.
type Anchor = Coord[uint]

// C is a convenience constructor for Coord.
func C[T Number](x, y T) Coord[T] {
	return Coord[T]{X: x, Y: y}
}

// Add returns the component-wise sum of two coordinates.
func (c Coord[T]) Add(other Coord[T]) Coord[T] {
	return Coord[T]{X: c.X + other.X, Y: c.Y + other.Y}
}

// Equal returns true if both components match.
func (c Coord[T]) Equal(other Coord[T]) bool {
	return c.X == other.X && c.Y == other.Y
}

// String returns a string representation of the coordinate.
func (c Coord[T]) String() string {
	return fmt.Sprintf("(%v,%v)", c.X, c.Y)
}

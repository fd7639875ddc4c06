package tetromino

import (
	"fmt"
	"math"
	"strings"
)

// Discretizer maps a rotated real-valued component back onto the integer grid.
type Discretizer func(float64) int

var (
	// RoundNearest rounds half away from zero. Repeated quarter turns are exact.
	RoundNearest Discretizer = func(v float64) int { return int(math.Round(v)) }

	// Truncate drops the fraction. sin/cos of a quarter turn are not exact in
	// float64, so a component such as -0.9999999999999999 collapses to 0 and
	// the piece loses its shape.
	Truncate Discretizer = func(v float64) int { return int(v) }
)

// ParseDiscretizer resolves a policy name: "round" or "truncate".
func ParseDiscretizer(name string) (Discretizer, error) {
	switch strings.ToLower(name) {
	case "", "round", "nearest":
		return RoundNearest, nil
	case "truncate", "trunc":
		return Truncate, nil
	default:
		return nil, fmt.Errorf("tetromino: unknown discretization %q", name)
	}
}

// Rotation turns offsets about the local origin (0,0) by a fixed angle.
type Rotation struct {
	sin, cos   float64
	discretize Discretizer
}

// NewRotation builds a rotation of the given angle in degrees. Positive
// angles turn from +X toward +Y.
func NewRotation(degrees float64, d Discretizer) Rotation {
	if d == nil {
		d = RoundNearest
	}
	rad := degrees * math.Pi / 180
	return Rotation{sin: math.Sin(rad), cos: math.Cos(rad), discretize: d}
}

var (
	// QuarterTurn is the rotation applied by Rotate.
	QuarterTurn = NewRotation(90, RoundNearest)

	// ReverseQuarterTurn undoes QuarterTurn.
	ReverseQuarterTurn = NewRotation(-90, RoundNearest)
)

// Apply rotates a single offset. Both output components are computed from
// the input's original X and Y.
func (r Rotation) Apply(o Offset) Offset {
	x, y := float64(o.X), float64(o.Y)
	return Offset{
		X: r.discretize(x*r.cos - y*r.sin),
		Y: r.discretize(x*r.sin + y*r.cos),
	}
}

// Rotate turns every cell 90° about the local origin, in place.
// (1,0) becomes (0,1); four calls restore the original offsets.
func (t *Tetromino) Rotate() {
	t.RotateWith(QuarterTurn)
}

// RotateBack turns every cell -90° about the local origin, in place.
// Boards use it to undo a rotation that collides.
func (t *Tetromino) RotateBack() {
	t.RotateWith(ReverseQuarterTurn)
}

// RotateWith applies r to every cell, in place. Anchor, kind and color are
// left alone.
func (t *Tetromino) RotateWith(r Rotation) {
	for i := range t.cells {
		t.cells[i].Offset = r.Apply(t.cells[i].Offset)
	}
}

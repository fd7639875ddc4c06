package tetromino

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-tetromino/internal/core"
)

// canonical is written out independently of catalog.go so a typo in either
// place fails the test.
var canonical = map[Kind][]Offset{
	KindI: {C(0, 0), C(0, 1), C(0, 2), C(0, 3)},
	KindO: {C(0, 0), C(1, 0), C(0, 1), C(1, 1)},
	KindT: {C(0, 0), C(-1, 0), C(1, 0), C(0, 1)},
	KindS: {C(0, 0), C(-1, 0), C(0, 1), C(1, 1)},
	KindZ: {C(0, 0), C(1, 0), C(0, 1), C(-1, 1)},
	KindJ: {C(0, 0), C(0, 1), C(0, 2), C(-1, 0)},
	KindL: {C(0, 0), C(0, 1), C(0, 2), C(1, 0)},
}

func TestShapeMatchesCatalog(t *testing.T) {
	require.Len(t, Kinds(), int(KindCount))

	for _, k := range Kinds() {
		t.Run(k.String(), func(t *testing.T) {
			want, ok := canonical[k]
			require.True(t, ok, "no canonical table for %s", k)

			shape := Shape(k)
			assert.ElementsMatch(t, want, shape[:])
		})
	}
}

func TestShapeOffsetsAreDistinct(t *testing.T) {
	for _, k := range Kinds() {
		seen := make(map[Offset]bool)
		for _, o := range Shape(k) {
			if seen[o] {
				t.Errorf("%s: duplicate offset %s", k, o)
			}
			seen[o] = true
		}
	}
}

func TestShapeIsACopy(t *testing.T) {
	s := Shape(KindT)
	s[0] = C(9, 9)

	assert.Equal(t, C(0, 0), Shape(KindT)[0])
}

func TestShapeUnknownKindPanics(t *testing.T) {
	assert.Panics(t, func() { Shape(KindCount) })
	assert.Panics(t, func() { Cells(Kind(200), core.White) })
}

func TestCellsStampColor(t *testing.T) {
	col := color.RGBA{R: 12, G: 34, B: 56, A: 78}

	for _, k := range Kinds() {
		cells := Cells(k, col)
		shape := Shape(k)
		for i, c := range cells {
			assert.Equal(t, col, c.Color, "%s cell %d", k, i)
			assert.Equal(t, shape[i], c.Offset, "%s cell %d", k, i)
		}
	}
}

func TestParseKind(t *testing.T) {
	tests := []struct {
		in   string
		want Kind
		ok   bool
	}{
		{"I", KindI, true},
		{"o", KindO, true},
		{" t ", KindT, true},
		{"s", KindS, true},
		{"Z", KindZ, true},
		{"j", KindJ, true},
		{"L", KindL, true},
		{"X", KindI, false},
		{"", KindI, false},
	}

	for _, tc := range tests {
		got, ok := ParseKind(tc.in)
		if got != tc.want || ok != tc.ok {
			t.Errorf("ParseKind(%q) = (%v, %v), expected (%v, %v)", tc.in, got, ok, tc.want, tc.ok)
		}
	}
}

func TestKindStringRoundTrip(t *testing.T) {
	for _, k := range Kinds() {
		assert.True(t, k.Valid())
		parsed, ok := ParseKind(k.String())
		require.True(t, ok)
		assert.Equal(t, k, parsed)
	}
	assert.False(t, KindCount.Valid())
	assert.Equal(t, "?", KindCount.String())
}

func TestCoord(t *testing.T) {
	a := C(2, -3)
	b := C(-1, 5)

	assert.Equal(t, C(1, 2), a.Add(b))
	assert.True(t, a.Equal(C(2, -3)))
	assert.False(t, a.Equal(b))
	assert.Equal(t, "(2,-3)", a.String())

	anchor := C[uint](4, 0)
	assert.Equal(t, "(4,0)", anchor.String())
}

package tui

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-tetromino/internal/core"
	"github.com/vovakirdan/tui-tetromino/internal/tetromino"
)

// Grid layout for a piece preview. Every offset of every kind, in every
// quarter turn, lies within [-gridExtent, gridExtent] on both axes.
const (
	gridExtent = 3
	gridCells  = 2*gridExtent + 1
	cellWidth  = 2 // Terminal cells are roughly twice as tall as wide

	// PreviewWidth and PreviewHeight are the framed preview size in characters.
	PreviewWidth  = gridCells*cellWidth + 2
	PreviewHeight = gridCells + 2
)

const (
	blockRune = '█'
	dotRune   = '·'
)

// DrawPiece draws a framed preview of the piece's local grid with its top-left
// corner at (x, y). The local origin sits in the middle of the grid and Y
// offsets grow downward. Offsets outside the grid are not drawn.
func DrawPiece(dst *core.Screen, x, y int, piece *tetromino.Tetromino) {
	dst.DrawBox(core.NewRect(x, y, PreviewWidth, PreviewHeight))

	for gy := 0; gy < gridCells; gy++ {
		for gx := 0; gx < gridCells; gx++ {
			sx, sy := x+1+gx*cellWidth, y+1+gy
			dst.Set(sx, sy, dotRune)
			dst.Set(sx+1, sy, ' ')
		}
	}

	grid := core.NewRect(-gridExtent, -gridExtent, gridCells, gridCells)
	for _, c := range piece.Cells() {
		if !grid.Contains(c.Offset.X, c.Offset.Y) {
			continue
		}
		gx, gy := c.Offset.X+gridExtent, c.Offset.Y+gridExtent
		sx, sy := x+1+gx*cellWidth, y+1+gy
		for i := 0; i < cellWidth; i++ {
			dst.SetColored(sx+i, sy, blockRune, c.Color)
		}
	}
}

// Placement reports where the piece's cells sit relative to field, in board
// coordinates: "inside", "crosses edge" or "outside".
func Placement(piece *tetromino.Tetromino, field core.Rect) string {
	box := piece.Bounds()
	box.X += int(piece.Anchor().X)
	box.Y += int(piece.Anchor().Y)

	switch {
	case field.Contains(box.X, box.Y) && field.Contains(box.Right()-1, box.Bottom()-1):
		return "inside"
	case field.Intersects(box):
		return "crosses edge"
	default:
		return "outside"
	}
}

// PieceScreen returns a screen holding just the framed preview.
func PieceScreen(piece *tetromino.Tetromino) *core.Screen {
	s := core.NewScreen(PreviewWidth, PreviewHeight)
	DrawPiece(s, 0, 0, piece)
	return s
}

// Swatch returns a short colored sample of c.
func Swatch(c color.RGBA) string {
	return styleFor(core.ScreenCell{Color: c, Colored: true}).Render(strings.Repeat(string(blockRune), cellWidth))
}

// DescribeCells lists each cell offset with its color as hex.
func DescribeCells(piece *tetromino.Tetromino) []string {
	cells := piece.Cells()
	lines := make([]string, len(cells))
	for i, c := range cells {
		lines[i] = fmt.Sprintf("%-8s %s", c.Offset, core.Hex(c.Color))
	}
	return lines
}

func styleFor(cell core.ScreenCell) lipgloss.Style {
	if !cell.Colored {
		return lipgloss.NewStyle()
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(core.Hex(cell.Color)))
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			start := s.GetCell(x, y)

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Colored != start.Colored || cell.Color != start.Color {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			sb.WriteString(styleFor(start).Render(run.String()))
		}
	}
	return sb.String()
}

package palette

import (
	"image/color"

	"github.com/vovakirdan/tui-tetromino/internal/core"
	"github.com/vovakirdan/tui-tetromino/internal/tetromino"
)

// DefaultName is the palette used when nothing else is configured.
const DefaultName = "guideline"

func init() {
	Register(New(DefaultName, "Guideline", [tetromino.KindCount]color.RGBA{
		tetromino.KindI: core.Cyan,
		tetromino.KindO: core.Yellow,
		tetromino.KindT: core.Purple,
		tetromino.KindS: core.Green,
		tetromino.KindZ: core.Red,
		tetromino.KindJ: core.Blue,
		tetromino.KindL: core.Orange,
	}))

	// Colors of the 1989 handheld era, four shades of green.
	Register(New("classic", "Classic handheld", [tetromino.KindCount]color.RGBA{
		tetromino.KindI: {R: 0x0F, G: 0x38, B: 0x0F, A: 0xFF},
		tetromino.KindO: {R: 0x30, G: 0x62, B: 0x30, A: 0xFF},
		tetromino.KindT: {R: 0x8B, G: 0xAC, B: 0x0F, A: 0xFF},
		tetromino.KindS: {R: 0x9B, G: 0xBC, B: 0x0F, A: 0xFF},
		tetromino.KindZ: {R: 0x30, G: 0x62, B: 0x30, A: 0xFF},
		tetromino.KindJ: {R: 0x0F, G: 0x38, B: 0x0F, A: 0xFF},
		tetromino.KindL: {R: 0x8B, G: 0xAC, B: 0x0F, A: 0xFF},
	}))

	var mono [tetromino.KindCount]color.RGBA
	for i := range mono {
		mono[i] = core.Gray
	}
	Register(New("mono", "Monochrome", mono))
}

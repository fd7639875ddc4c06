package core

import (
	"fmt"
	"image/color"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Named colors used by the built-in palettes. All are fully opaque.
var (
	Black   = color.RGBA{R: 0x00, G: 0x00, B: 0x00, A: 0xFF}
	White   = color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}
	Gray    = color.RGBA{R: 0x80, G: 0x80, B: 0x80, A: 0xFF}
	Cyan    = color.RGBA{R: 0x00, G: 0xF0, B: 0xF0, A: 0xFF}
	Yellow  = color.RGBA{R: 0xF0, G: 0xF0, B: 0x00, A: 0xFF}
	Purple  = color.RGBA{R: 0xA0, G: 0x00, B: 0xF0, A: 0xFF}
	Green   = color.RGBA{R: 0x00, G: 0xF0, B: 0x00, A: 0xFF}
	Red     = color.RGBA{R: 0xF0, G: 0x00, B: 0x00, A: 0xFF}
	Blue    = color.RGBA{R: 0x00, G: 0x00, B: 0xF0, A: 0xFF}
	Orange  = color.RGBA{R: 0xF0, G: 0xA0, B: 0x00, A: 0xFF}
	Magenta = color.RGBA{R: 0xF0, G: 0x00, B: 0xF0, A: 0xFF}
)

var namedColors = map[string]color.RGBA{
	"black":   Black,
	"white":   White,
	"gray":    Gray,
	"grey":    Gray,
	"cyan":    Cyan,
	"yellow":  Yellow,
	"purple":  Purple,
	"green":   Green,
	"red":     Red,
	"blue":    Blue,
	"orange":  Orange,
	"magenta": Magenta,
}

// ParseHex parses "#rrggbb" or "#rgb" into an opaque color.
func ParseHex(s string) (color.RGBA, error) {
	c, err := colorful.Hex(strings.TrimSpace(s))
	if err != nil {
		return color.RGBA{}, fmt.Errorf("core: invalid hex color %q: %w", s, err)
	}
	r, g, b := c.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 0xFF}, nil
}

// ParseColor accepts a color name (see namedColors) or a hex string.
func ParseColor(s string) (color.RGBA, error) {
	if c, ok := namedColors[strings.ToLower(strings.TrimSpace(s))]; ok {
		return c, nil
	}
	return ParseHex(s)
}

// Hex formats the color as "#rrggbb". Alpha is dropped; terminals cannot
// show it.
func Hex(c color.RGBA) string {
	cf, ok := colorful.MakeColor(c)
	if !ok {
		// Fully transparent.
		return "#000000"
	}
	return cf.Hex()
}

// Package palette provides a registry of named color palettes.
// Built-in palettes register themselves in init(); a custom palette can be
// built from hex strings loaded from config. Choosing which palette to use
// is the caller's policy; pieces only ever receive a single color.
package palette

import (
	"fmt"
	"image/color"
	"sort"
	"strings"
	"sync"

	"github.com/vovakirdan/tui-tetromino/internal/core"
	"github.com/vovakirdan/tui-tetromino/internal/tetromino"
)

// Palette assigns one color to each tetromino kind.
type Palette struct {
	Name   string
	Title  string
	colors [tetromino.KindCount]color.RGBA
}

// New builds a palette from a full color table indexed by kind.
func New(name, title string, colors [tetromino.KindCount]color.RGBA) Palette {
	return Palette{Name: name, Title: title, colors: colors}
}

// Color returns the color for a kind.
// Panics on a value outside the seven kinds.
func (p Palette) Color(k tetromino.Kind) color.RGBA {
	if !k.Valid() {
		panic(fmt.Sprintf("palette: unknown kind %d", k))
	}
	return p.colors[k]
}

// FromHex builds a palette from a kind letter -> hex color map.
// Every kind must be present exactly once.
func FromHex(name string, hex map[string]string) (Palette, error) {
	var colors [tetromino.KindCount]color.RGBA
	var seen [tetromino.KindCount]bool

	for letter, value := range hex {
		k, ok := tetromino.ParseKind(letter)
		if !ok {
			return Palette{}, fmt.Errorf("palette: %s: unknown kind %q", name, letter)
		}
		if seen[k] {
			return Palette{}, fmt.Errorf("palette: %s: kind %s listed twice", name, k)
		}
		c, err := core.ParseColor(value)
		if err != nil {
			return Palette{}, fmt.Errorf("palette: %s: kind %s: %w", name, k, err)
		}
		colors[k] = c
		seen[k] = true
	}

	var missing []string
	for _, k := range tetromino.Kinds() {
		if !seen[k] {
			missing = append(missing, k.String())
		}
	}
	if len(missing) > 0 {
		return Palette{}, fmt.Errorf("palette: %s: missing kinds %s", name, strings.Join(missing, ","))
	}

	return New(name, name, colors), nil
}

// Info contains metadata about a registered palette.
type Info struct {
	Name  string
	Title string
}

var (
	palettes = make(map[string]Palette)
	mu       sync.RWMutex
)

// Register adds a palette to the registry.
// Typically called from an init() function.
// Panics if a palette with the same name is already registered.
func Register(p Palette) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := palettes[p.Name]; exists {
		panic(fmt.Sprintf("palette: %q already registered", p.Name))
	}
	palettes[p.Name] = p
}

// List returns information about all registered palettes, sorted by name.
func List() []Info {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]Info, 0, len(palettes))
	for _, p := range palettes {
		result = append(result, Info{Name: p.Name, Title: p.Title})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].Name < result[j].Name
	})

	return result
}

// Get returns a registered palette by name.
func Get(name string) (Palette, error) {
	mu.RLock()
	defer mu.RUnlock()

	p, ok := palettes[name]
	if !ok {
		return Palette{}, fmt.Errorf("palette: unknown palette %q", name)
	}
	return p, nil
}

// Exists checks if a palette with the given name is registered.
func Exists(name string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := palettes[name]
	return ok
}

// Package tui provides the Bubble Tea front end for inspecting tetrominoes.
// It maps keys to actions, applies them to a single piece and draws it.
// There is no tick loop: the model only changes in response to input.
package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-tetromino/internal/core"
	"github.com/vovakirdan/tui-tetromino/internal/palette"
	"github.com/vovakirdan/tui-tetromino/internal/tetromino"
)

// DefaultField is the standard 10x20 well.
var DefaultField = core.NewRect(0, 0, 10, 20)

// Layout of the inspector body: preview on the left, info panel on the right.
const (
	infoX        = PreviewWidth + 2
	infoWidth    = 24
	layoutWidth  = infoX + infoWidth
	layoutHeight = 10 // Five fields, a blank line and four cells
)

// Options configures an Inspector.
type Options struct {
	Kind        tetromino.Kind
	Anchor      tetromino.Anchor
	Palette     palette.Palette
	Discretizer tetromino.Discretizer
	Field       core.Rect // Anchor moves stay inside; empty means DefaultField
}

// Inspector is the Bubble Tea model for the interactive piece inspector.
type Inspector struct {
	opts    Options
	forward tetromino.Rotation
	back    tetromino.Rotation

	piece *tetromino.Tetromino
	turns int // Net quarter turns since the piece was built, mod 4

	screen   *core.Screen
	keys     KeyMap
	help     help.Model
	quitting bool
}

// NewInspector creates an inspector showing opts.Kind at opts.Anchor.
func NewInspector(opts Options) Inspector {
	if !opts.Kind.Valid() {
		opts.Kind = tetromino.KindI
	}
	if opts.Field.Empty() {
		opts.Field = DefaultField
	}
	m := Inspector{
		opts:    opts,
		forward: tetromino.NewRotation(90, opts.Discretizer),
		back:    tetromino.NewRotation(-90, opts.Discretizer),
		screen:  core.NewScreen(layoutWidth, layoutHeight),
		keys:    DefaultKeyMap(),
		help:    help.New(),
	}
	m.build(opts.Kind, opts.Anchor)
	return m
}

func (m *Inspector) build(kind tetromino.Kind, anchor tetromino.Anchor) {
	m.piece = tetromino.New(anchor, kind, m.opts.Palette.Color(kind))
	m.turns = 0
}

// Piece returns a snapshot of the piece on display.
func (m Inspector) Piece() tetromino.Tetromino {
	return m.piece.Snapshot()
}

// Turns returns the net number of quarter turns applied, 0 to 3.
func (m Inspector) Turns() int {
	return m.turns
}

// Init implements tea.Model.
func (m Inspector) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model state.
func (m Inspector) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Help) {
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		}
		action := m.keys.Action(msg)
		m.Apply(action)
		if m.quitting {
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		// Narrow terminals drop the info panel rather than wrap it.
		m.screen.Resize(core.Clamp(msg.Width, PreviewWidth, layoutWidth), layoutHeight)
	}
	return m, nil
}

// Apply performs a single action on the piece.
// Kind changes and resets rebuild the piece from the catalog.
func (m *Inspector) Apply(a core.Action) {
	anchor := m.piece.Anchor()

	switch a {
	case core.ActionRotate:
		m.piece.RotateWith(m.forward)
		m.turns = (m.turns + 1) % 4
	case core.ActionRotateBack:
		m.piece.RotateWith(m.back)
		m.turns = (m.turns + 3) % 4
	case core.ActionNextKind:
		m.build((m.piece.Kind()+1)%tetromino.KindCount, anchor)
	case core.ActionPrevKind:
		m.build((m.piece.Kind()+tetromino.KindCount-1)%tetromino.KindCount, anchor)
	case core.ActionMoveLeft:
		m.moveBy(-1, 0)
	case core.ActionMoveRight:
		m.moveBy(1, 0)
	case core.ActionMoveUp:
		m.moveBy(0, -1)
	case core.ActionMoveDown:
		m.moveBy(0, 1)
	case core.ActionReset:
		m.build(m.piece.Kind(), m.opts.Anchor)
	case core.ActionQuit:
		m.quitting = true
	}
}

// moveBy shifts the anchor, keeping it inside the field. The anchor is
// unsigned, so the field's left and top edges never go below 0.
func (m *Inspector) moveBy(dx, dy int) {
	a, f := m.piece.Anchor(), m.opts.Field
	x := core.Clamp(int(a.X)+dx, core.Max(f.X, 0), f.Right()-1)
	y := core.Clamp(int(a.Y)+dy, core.Max(f.Y, 0), f.Bottom()-1)
	m.piece.MoveTo(tetromino.C(uint(x), uint(y)))
}

// View renders the current state to a string for display.
func (m Inspector) View() string {
	if m.quitting {
		return ""
	}

	m.screen.Clear()
	DrawPiece(m.screen, 0, 0, m.piece)
	m.drawInfo(infoX, 0)

	return lipgloss.JoinVertical(lipgloss.Left, RenderScreen(m.screen), "", m.help.View(m.keys))
}

// drawInfo writes the info panel with its top-left corner at (x, y).
func (m Inspector) drawInfo(x, y int) {
	title := fmt.Sprintf("Kind %s", m.piece.Kind())
	lines := []string{
		title,
		fmt.Sprintf("Anchor  %s", m.piece.Anchor()),
		fmt.Sprintf("Turns   %d", m.turns),
		fmt.Sprintf("Palette %s", m.opts.Palette.Name),
		fmt.Sprintf("Field   %s", Placement(m.piece, m.opts.Field)),
		"",
	}
	lines = append(lines, DescribeCells(m.piece)...)

	for i, line := range lines {
		m.screen.DrawText(x, y+i, line)
	}
	for i := range cellWidth {
		m.screen.SetColored(x+len(title)+1+i, y, blockRune, m.piece.Color())
	}
}

// Run starts the Bubble Tea program with an inspector model.
func Run(opts Options) error {
	p := tea.NewProgram(
		NewInspector(opts),
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}

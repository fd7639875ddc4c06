package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-tetromino/internal/palette"
	"github.com/vovakirdan/tui-tetromino/internal/tetromino"
)

// MenuItem represents a selectable palette in the menu.
type MenuItem struct {
	Name  string
	Title string
}

// menuKeys are the bindings of the palette picker.
type menuKeys struct {
	Up     key.Binding
	Down   key.Binding
	Select key.Binding
	Quit   key.Binding
}

var defaultMenuKeys = menuKeys{
	Up:     key.NewBinding(key.WithKeys("up", "k")),
	Down:   key.NewBinding(key.WithKeys("down", "j")),
	Select: key.NewBinding(key.WithKeys("enter", " ")),
	Quit:   key.NewBinding(key.WithKeys("q", "esc", "ctrl+c")),
}

// MenuModel is the Bubble Tea model for the palette picker.
type MenuModel struct {
	items    []MenuItem
	cursor   int
	width    int
	keys     menuKeys
	quitting bool
	selected *MenuItem // Set when the user picks a palette
}

// NewMenuModel creates a picker over the registered palettes with the
// cursor on current, if it is registered.
func NewMenuModel(current string) MenuModel {
	infos := palette.List()
	items := make([]MenuItem, 0, len(infos))
	cursor := 0

	for i, info := range infos {
		if info.Name == current {
			cursor = i
		}
		items = append(items, MenuItem{Name: info.Name, Title: info.Title})
	}

	return MenuModel{
		items:  items,
		cursor: cursor,
		width:  PreviewWidth * 3,
		keys:   defaultMenuKeys,
	}
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}

	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}

	case key.Matches(msg, m.keys.Select):
		if len(m.items) > 0 {
			selected := m.items[m.cursor]
			m.selected = &selected
			return m, tea.Quit
		}
	}

	return m, nil
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText("  T E T R O M I N O  ", m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText("Select a palette", m.width))
	b.WriteString("\n\n")

	for i, item := range m.items {
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}
		line := fmt.Sprintf("%s%-10s %s", cursor, item.Name, item.Title)
		b.WriteString(centerText(line, m.width))
		b.WriteString("  ")
		b.WriteString(swatches(item.Name))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText("Up/Down: Navigate  |  Enter: Select  |  Q: Quit", m.width))
	b.WriteString("\n")

	return b.String()
}

// Selected returns the selected menu item, or nil if none selected.
func (m MenuModel) Selected() *MenuItem {
	return m.selected
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

func swatches(name string) string {
	p, err := palette.Get(name)
	if err != nil {
		return ""
	}
	var b strings.Builder
	for _, k := range tetromino.Kinds() {
		b.WriteString(Swatch(p.Color(k)))
	}
	return b.String()
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	if len(text) >= width {
		return text
	}
	padding := (width - len(text)) / 2
	return strings.Repeat(" ", padding) + text
}

// RunMenu runs the palette picker. It returns the chosen palette name, or
// ok == false if the user quit without choosing.
func RunMenu(current string) (name string, ok bool, err error) {
	p := tea.NewProgram(
		NewMenuModel(current),
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return "", false, err
	}

	m, isMenu := finalModel.(MenuModel)
	if !isMenu || m.IsQuitting() || m.Selected() == nil {
		return "", false, nil
	}
	return m.Selected().Name, true, nil
}

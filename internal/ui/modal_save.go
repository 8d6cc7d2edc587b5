package ui

import (
	"strings"

	"bommie/internal/bom"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// SaveFileModal prompts for the path to save the document to.
type SaveFileModal struct {
	input textinput.Model
}

// Ensure SaveFileModal implements View.
var _ View = (*SaveFileModal)(nil)

// NewSaveFileModal creates a save prompt prefilled with path.
func NewSaveFileModal(path string) *SaveFileModal {
	ti := textinput.New()
	ti.Placeholder = "path/to/file" + bom.FileExt
	ti.Width = 60
	ti.SetValue(path)
	ti.CursorEnd()
	ti.Focus()
	return &SaveFileModal{input: ti}
}

// Init implements View.
func (m *SaveFileModal) Init() tea.Cmd {
	return textinput.Blink
}

// Value returns the path currently typed.
func (m *SaveFileModal) Value() string {
	return m.input.Value()
}

// Update implements View.
func (m *SaveFileModal) Update(msg tea.Msg) (View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return m, func() tea.Msg { return DismissModalMsg{} }
		case "enter":
			path := strings.TrimSpace(m.input.Value())
			if path != "" {
				path = bom.WithExt(path)
				return m, func() tea.Msg { return SaveFileMsg{Path: path} }
			}
			return m, nil
		}
	case tea.WindowSizeMsg:
		m.input.Width = max(min(msg.Width-12, 80), 10)
		return m, nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// View implements View.
func (m *SaveFileModal) View() string {
	content := Styles.Title.Render("Save as") + "\n\n"
	content += m.input.View() + "\n\n"
	content += Styles.Hint.Render("Enter: save  Esc: cancel")
	return Styles.Box.Render(content)
}

package ui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// View is the unit of composition; implements Bubble Tea's Init/Update/View.
type View interface {
	Init() tea.Cmd
	Update(tea.Msg) (View, tea.Cmd)
	View() string
}

// Pane is a View that lives in the split layout and can take focus.
type Pane interface {
	View
	Focus()
	Blur()
	// Editing reports whether a text input in the pane owns the keyboard.
	// While true, keys go straight to the pane instead of the keybind system.
	Editing() bool
	SetSize(width, height int)
	// Help returns the bindings active in the pane's current mode.
	Help() []key.Binding
}

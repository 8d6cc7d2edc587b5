package ui

import (
	"fmt"
	"strings"

	"bommie/internal/editor"
	"bommie/internal/ui/textutil"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// SidebarView lists the prints, hosts the "new print" input and shows the
// error message. Moving the cursor selects the print.
type SidebarView struct {
	state   *editor.State
	input   textinput.Model
	adding  bool // input owns the keyboard
	focused bool
	width   int
	height  int
}

// Ensure SidebarView implements Pane.
var _ Pane = (*SidebarView)(nil)

// NewSidebarView creates the sidebar over the shared state.
func NewSidebarView(state *editor.State) *SidebarView {
	ti := textinput.New()
	ti.Prompt = "+ "
	ti.Placeholder = "new print"
	return &SidebarView{state: state, input: ti}
}

// Init implements View.
func (s *SidebarView) Init() tea.Cmd {
	return nil
}

// Focus implements Pane.
func (s *SidebarView) Focus() { s.focused = true }

// Blur implements Pane.
func (s *SidebarView) Blur() {
	s.focused = false
	s.stopAdding()
}

// Editing implements Pane.
func (s *SidebarView) Editing() bool { return s.adding }

// SetSize implements Pane. Sizes are content sizes.
func (s *SidebarView) SetSize(width, height int) {
	s.width = width
	s.height = height
	s.input.Width = max(width-len(s.input.Prompt)-1, 1)
}

// Update implements View.
func (s *SidebarView) Update(msg tea.Msg) (View, tea.Cmd) {
	km, ok := msg.(tea.KeyMsg)
	if !ok {
		if s.adding {
			var cmd tea.Cmd
			s.input, cmd = s.input.Update(msg)
			return s, cmd
		}
		return s, nil
	}
	if s.adding {
		return s, s.updateAdding(km)
	}

	st := s.state
	switch {
	case key.Matches(km, paneKeys.Down):
		st.SelectPrint(st.Selected + 1)
	case key.Matches(km, paneKeys.Up):
		st.SelectPrint(st.Selected - 1)
	case key.Matches(km, paneKeys.Top):
		st.SelectPrint(0)
	case key.Matches(km, paneKeys.Bottom):
		st.SelectPrint(len(st.Prints) - 1)
	case key.Matches(km, paneKeys.Add):
		return s, s.startAdding()
	case key.Matches(km, paneKeys.Delete):
		st.RemovePrint(st.Selected)
	}
	return s, nil
}

func (s *SidebarView) startAdding() tea.Cmd {
	s.adding = true
	s.input.SetValue(s.state.PendingPrint)
	s.input.CursorEnd()
	return s.input.Focus()
}

func (s *SidebarView) stopAdding() {
	s.adding = false
	s.input.Blur()
}

// updateAdding routes keys to the input. Enter adds the print and keeps the
// input open for the next one; Esc closes it. The typed text stays in the
// pending buffer either way.
func (s *SidebarView) updateAdding(km tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(km, paneKeys.Confirm):
		s.state.AddPrint()
		s.input.SetValue(s.state.PendingPrint)
		return nil
	case key.Matches(km, paneKeys.Cancel):
		s.stopAdding()
		return nil
	}
	var cmd tea.Cmd
	s.input, cmd = s.input.Update(km)
	s.state.SetPendingPrint(s.input.Value())
	return cmd
}

// View implements View.
func (s *SidebarView) View() string {
	width, height := s.width, s.height
	// Defaults for tests that never send a WindowSizeMsg.
	if width == 0 {
		width = 30
	}
	if height == 0 {
		height = 20
	}

	var b strings.Builder
	b.WriteString(Styles.Title.Render(fmt.Sprintf("Prints (%d)", len(s.state.Prints))) + "\n")
	used := 1

	if s.state.Err != "" {
		msg := Styles.Error.Width(width).Render(s.state.Err)
		b.WriteString(msg + "\n")
		b.WriteString(Styles.Hint.Render("esc: dismiss") + "\n")
		used += strings.Count(msg, "\n") + 2
	}
	b.WriteString("\n")
	used++

	// Two rows at the bottom for the blank line and the add row.
	rows := max(height-used-2, 1)
	b.WriteString(s.renderRows(width, rows))
	b.WriteString("\n\n")

	if s.adding {
		b.WriteString(s.input.View())
	} else {
		b.WriteString(Styles.Hint.Render("a: add print"))
	}
	return b.String()
}

func (s *SidebarView) renderRows(width, rows int) string {
	prints := s.state.Prints
	if len(prints) == 0 {
		return Styles.Empty.Render("No prints yet")
	}
	start, end := visibleWindow(s.state.Selected, len(prints), rows)
	lines := make([]string, 0, end-start)
	for i := start; i < end; i++ {
		name := textutil.PadRightVisual(prints[i].Name, width)
		if i == s.state.Selected {
			lines = append(lines, Styles.Selected.Render(name))
		} else {
			lines = append(lines, Styles.Normal.Render(name))
		}
	}
	return strings.Join(lines, "\n")
}

// visibleWindow returns the [start, end) range of n rows to render so that
// cursor stays visible in a window of size rows.
func visibleWindow(cursor, n, rows int) (int, int) {
	if rows <= 0 || n <= rows {
		return 0, n
	}
	start := 0
	if cursor >= rows {
		start = cursor - rows + 1
	}
	return start, min(start+rows, n)
}

// Help implements Pane.
func (s *SidebarView) Help() []key.Binding {
	if s.adding {
		return []key.Binding{
			key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "add print")),
			paneKeys.Cancel,
		}
	}
	return []key.Binding{paneKeys.Up, paneKeys.Down, paneKeys.Add, paneKeys.Delete, paneKeys.Switch, paneKeys.Leader, paneKeys.Quit}
}

package ui

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"bommie/internal/bom"
	"bommie/internal/editor"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"
)

// helpHeight is the number of rows reserved under the panes for help.
const helpHeight = 3

// untitled is the file name offered by Save for a document that has no path yet.
const untitled = "untitled" + bom.FileExt

// AppModel is the root model: the sidebar and units panes over one
// editor.State, with Open/Save modals on top.
type AppModel struct {
	State      *editor.State
	Store      *bom.Store
	Logger     *zap.Logger
	Sidebar    *SidebarView
	Units      *UnitsView
	Focus      *FocusManager
	Overlays   OverlayStack
	KeyHandler *KeyHandler

	// OpenOnStart shows the file picker as soon as the program starts.
	OpenOnStart bool
	// Status is a transient confirmation shown next to the help line.
	Status string

	ctx    context.Context
	layout splitLayout
}

// Ensure AppModel can be used as tea.Model via adapter.
var _ tea.Model = (*appModelAdapter)(nil)

// appModelAdapter wraps AppModel to implement tea.Model.
type appModelAdapter struct {
	*AppModel
}

// NewAppModel creates the root application model. A nil logger disables logging.
func NewAppModel(ctx context.Context, state *editor.State, store *bom.Store, logger *zap.Logger) *AppModel {
	if logger == nil {
		logger = zap.NewNop()
	}
	reg := NewKeybindRegistry()
	reg.BindWithDesc("q", tea.Quit, "Quit")
	reg.BindWithDesc("ctrl+c", tea.Quit, "Quit")
	reg.BindWithDesc("SPC q", tea.Quit, "Quit")
	reg.BindWithDesc("SPC f n", msgCmd(NewDocumentMsg{}), "New")
	reg.BindWithDesc("SPC f o", msgCmd(ShowOpenMsg{}), "Open")
	reg.BindWithDesc("SPC f s", msgCmd(ShowSaveMsg{}), "Save")
	reg.BindWithDesc("SPC e", msgCmd(DismissErrorMsg{}), "Dismiss error")

	a := &AppModel{
		State:      state,
		Store:      store,
		Logger:     logger.Named("ui"),
		Sidebar:    NewSidebarView(state),
		Units:      NewUnitsView(state),
		KeyHandler: NewKeyHandler(reg),
		ctx:        ctx,
		layout:     splitLayout{helpHeight: helpHeight},
	}
	a.Focus = &FocusManager{
		Order: []PaneID{PanePrints, PaneUnits},
		Enabled: func(id PaneID) bool {
			return id != PaneUnits || a.State.HasSelection()
		},
		OnChange: func(from, to PaneID) {
			if p := a.pane(from); p != nil {
				p.Blur()
			}
			a.pane(to).Focus()
		},
	}
	a.Focus.SetFocus(PanePrints)
	return a
}

// AsTeaModel returns a tea.Model adapter for use with tea.NewProgram.
func (m *AppModel) AsTeaModel() tea.Model {
	return &appModelAdapter{AppModel: m}
}

func msgCmd(msg tea.Msg) tea.Cmd {
	return func() tea.Msg { return msg }
}

func (a *AppModel) pane(id PaneID) Pane {
	switch id {
	case PanePrints:
		return a.Sidebar
	case PaneUnits:
		return a.Units
	}
	return nil
}

func (a *AppModel) focusedPane() Pane {
	if p := a.pane(a.Focus.Current); p != nil {
		return p
	}
	return a.Sidebar
}

// Init implements tea.Model.
func (a *appModelAdapter) Init() tea.Cmd {
	if a.OpenOnStart {
		return msgCmd(ShowOpenMsg{})
	}
	return nil
}

// Update implements tea.Model.
func (a *appModelAdapter) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return a.handleResize(msg)
	case tea.KeyMsg:
		return a.handleKey(msg)
	case NewDocumentMsg:
		return a.handleNew()
	case ShowOpenMsg:
		return a.handleShowOpen()
	case ShowSaveMsg:
		return a.handleShowSave()
	case DismissErrorMsg:
		a.State.DismissError()
		return a, nil
	case DismissModalMsg:
		a.Overlays.Pop()
		return a, nil
	case OpenFileMsg:
		a.Overlays.Pop()
		a.Logger.Info("open requested", zap.String("path", msg.Path))
		return a, loadDocumentCmd(a.ctx, a.Store, msg.Path)
	case SaveFileMsg:
		a.Overlays.Pop()
		a.Logger.Info("save requested", zap.String("path", msg.Path))
		return a, saveDocumentCmd(a.ctx, a.Store, msg.Path, a.State.Prints)
	case DocumentLoadedMsg:
		a.State.ApplyOpen(msg.Path, msg.Prints)
		a.Status = ""
		a.afterDocumentChange()
		return a, nil
	case DocumentLoadFailedMsg:
		a.State.FailOpen(msg.Err)
		a.Status = ""
		a.afterDocumentChange()
		return a, nil
	case DocumentSavedMsg:
		a.State.ApplySave(msg.Path)
		a.Status = "Saved " + msg.Path
		return a, nil
	case DocumentSaveFailedMsg:
		a.State.FailSave(msg.Err)
		a.Status = ""
		return a, nil
	}

	// Anything else (cursor blink, directory reads) belongs to the top
	// overlay or the focused pane.
	if cmd, ok := a.Overlays.UpdateTop(msg); ok {
		return a, cmd
	}
	_, cmd := a.focusedPane().Update(msg)
	return a, cmd
}

func (a *appModelAdapter) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	a.layout.Width = msg.Width
	a.layout.Height = msg.Height
	a.Sidebar.SetSize(inner(a.layout.Sidebar()))
	a.Units.SetSize(inner(a.layout.Main()))
	cmd, _ := a.Overlays.UpdateTop(msg)
	return a, cmd
}

func (a *appModelAdapter) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return a, tea.Quit
	}
	if cmd, ok := a.Overlays.UpdateTop(msg); ok {
		return a, cmd
	}

	pane := a.focusedPane()
	if !pane.Editing() {
		if consumed, cmd := a.KeyHandler.Handle(msg); consumed {
			return a, cmd
		}
		switch {
		case key.Matches(msg, paneKeys.Switch):
			if msg.String() == "shift+tab" {
				a.Focus.Prev()
			} else {
				a.Focus.Next()
			}
			return a, nil
		case key.Matches(msg, paneKeys.Cancel) && a.State.Err != "":
			a.State.DismissError()
			return a, nil
		}
	}

	_, cmd := pane.Update(msg)
	a.Units.SyncSelection()
	a.Focus.Ensure()
	return a, cmd
}

func (a *appModelAdapter) handleNew() (tea.Model, tea.Cmd) {
	a.Logger.Info("new document")
	a.State.Reset()
	a.Status = ""
	a.afterDocumentChange()
	return a, nil
}

func (a *appModelAdapter) handleShowOpen() (tea.Model, tea.Cmd) {
	modal := NewOpenFileModal(a.startDir())
	a.Overlays.Push(modal)
	cmds := []tea.Cmd{modal.Init()}
	if a.layout.Width > 0 {
		_, cmd := modal.Update(tea.WindowSizeMsg{Width: a.layout.Width, Height: a.layout.Height})
		cmds = append(cmds, cmd)
	}
	return a, tea.Batch(cmds...)
}

func (a *appModelAdapter) handleShowSave() (tea.Model, tea.Cmd) {
	path := a.State.Path
	if path == "" {
		path = filepath.Join(a.startDir(), untitled)
	}
	modal := NewSaveFileModal(path)
	a.Overlays.Push(modal)
	if a.layout.Width > 0 {
		modal.Update(tea.WindowSizeMsg{Width: a.layout.Width, Height: a.layout.Height})
	}
	return a, modal.Init()
}

// afterDocumentChange resets per-document view state after New or Open.
func (a *AppModel) afterDocumentChange() {
	a.Units.Reset()
	a.Focus.Ensure()
}

// startDir is where the Open and Save dialogs start: the current document's
// directory, else the working directory.
func (a *AppModel) startDir() string {
	if a.State.Path != "" {
		if abs, err := filepath.Abs(a.State.Path); err == nil {
			return filepath.Dir(abs)
		}
		return filepath.Dir(a.State.Path)
	}
	if wd, err := os.Getwd(); err == nil {
		return wd
	}
	return "."
}

// View implements tea.Model.
func (a *appModelAdapter) View() string {
	l := a.layout
	// Defaults for tests that never send a WindowSizeMsg.
	if l.Width == 0 {
		l.Width = 100
	}
	if l.Height == 0 {
		l.Height = 30
	}

	var body string
	if top, ok := a.Overlays.Peek(); ok {
		body = lipgloss.Place(l.Width, l.bodyHeight(), lipgloss.Center, lipgloss.Center, top.View())
	} else {
		body = a.renderPanes(l)
	}
	return body + "\n" + a.renderFooter(l.Width)
}

func (a *AppModel) renderPanes(l splitLayout) string {
	sw, sh := l.Sidebar()
	side := paneStyle(a.Focus.Current == PanePrints).
		Width(max(sw-2, 0)).
		Height(max(sh-2, 0)).
		Render(a.Sidebar.View())
	if !a.State.HasSelection() {
		return side
	}
	mw, mh := l.Main()
	main := paneStyle(a.Focus.Current == PaneUnits).
		Width(max(mw-2, 0)).
		Height(max(mh-2, 0)).
		Render(a.Units.View())
	return lipgloss.JoinHorizontal(lipgloss.Top, side, main)
}

func paneStyle(focused bool) lipgloss.Style {
	if focused {
		return Styles.PaneFocused
	}
	return Styles.Pane
}

func (a *AppModel) renderFooter(width int) string {
	if help := RenderKeybindHelp(a.KeyHandler); help != "" {
		return help
	}
	if a.Overlays.Len() > 0 {
		return ""
	}
	h := newHelpModel()
	h.Width = width
	line := h.ShortHelpView(a.focusedPane().Help())
	if a.Status != "" {
		line = Styles.Status.Render(a.Status) + "  " + line
	}
	return strings.TrimRight(line, " ")
}

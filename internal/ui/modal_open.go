package ui

import (
	"path/filepath"

	"bommie/internal/bom"

	"github.com/charmbracelet/bubbles/filepicker"
	tea "github.com/charmbracelet/bubbletea"
)

// modalChrome is the number of rows the open modal adds around the picker
// (border, padding, title, directory, hint).
const modalChrome = 8

// OpenFileModal browses the file system for a units file to open.
type OpenFileModal struct {
	picker filepicker.Model
	notice string
}

// Ensure OpenFileModal implements View.
var _ View = (*OpenFileModal)(nil)

// NewOpenFileModal creates a picker starting in dir that only accepts
// .units files.
func NewOpenFileModal(dir string) *OpenFileModal {
	fp := filepicker.New()
	fp.AllowedTypes = []string{bom.FileExt}
	fp.CurrentDirectory = dir
	fp.DirAllowed = false
	fp.FileAllowed = true
	fp.ShowHidden = false
	fp.AutoHeight = true
	return &OpenFileModal{picker: fp}
}

// Init implements View. Reads the starting directory.
func (m *OpenFileModal) Init() tea.Cmd {
	return m.picker.Init()
}

// Update implements View.
func (m *OpenFileModal) Update(msg tea.Msg) (View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "esc" {
			return m, func() tea.Msg { return DismissModalMsg{} }
		}
	case tea.WindowSizeMsg:
		msg.Height = max(msg.Height-modalChrome, 3)
		var cmd tea.Cmd
		m.picker, cmd = m.picker.Update(msg)
		return m, cmd
	}

	var cmd tea.Cmd
	m.picker, cmd = m.picker.Update(msg)
	if ok, path := m.picker.DidSelectFile(msg); ok {
		return m, func() tea.Msg { return OpenFileMsg{Path: path} }
	}
	if ok, path := m.picker.DidSelectDisabledFile(msg); ok {
		m.notice = filepath.Base(path) + " is not a " + bom.FileExt + " file"
		return m, cmd
	}
	m.notice = ""
	return m, cmd
}

// View implements View.
func (m *OpenFileModal) View() string {
	content := Styles.Title.Render("Open") + "\n"
	content += Styles.Muted.Render(m.picker.CurrentDirectory) + "\n\n"
	content += m.picker.View() + "\n"
	if m.notice != "" {
		content += Styles.Error.Render(m.notice) + "\n"
	}
	content += Styles.Hint.Render("Enter: open  ←/h: up a directory  Esc: cancel")
	return Styles.BoxCompact.Render(content)
}

package ui

import (
	"sort"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
)

// RenderKeybindHelp produces the transient help bar shown after SPC.
// When the handler is part-way through a sequence (e.g. "SPC f"), it shows
// the next-level hints.
func RenderKeybindHelp(h *KeyHandler) string {
	if h == nil || !h.LeaderWaiting {
		return ""
	}
	currentSeq := h.CurrentSeq()
	if currentSeq == h.LeaderSeq {
		currentSeq = ""
	}
	hints := h.Registry.LeaderHints(currentSeq)
	if len(hints) == 0 {
		return ""
	}

	keys := make([]string, 0, len(hints))
	for k := range hints {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	bindings := make([]key.Binding, 0, len(keys)+1)
	for _, k := range keys {
		bindings = append(bindings, key.NewBinding(
			key.WithKeys(k),
			key.WithHelp(k, hints[k]),
		))
	}
	bindings = append(bindings, key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "cancel"),
	))

	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorAccent)).
		Padding(0, 1)

	return boxStyle.Render(Styles.Muted.Render(h.CurrentSeq()) + " " + newHelpModel().ShortHelpView(bindings))
}

// newHelpModel returns a bubbles help model with the shared key/desc styling.
func newHelpModel() help.Model {
	m := help.New()
	m.Styles.ShortKey = lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorHighlight)).
		Bold(true)
	m.Styles.ShortDesc = Styles.Muted
	m.Styles.ShortSeparator = Styles.Muted
	return m
}

package ui

import "github.com/charmbracelet/lipgloss"

// Theme colors used throughout the UI
const (
	ColorAccent    = "86"  // Cyan/green - for titles, highlights
	ColorHighlight = "205" // Magenta - for selected items, focused borders
	ColorSelection = "25"  // Blue - background of the selected print
	ColorDanger    = "196" // Red - for errors
	ColorMuted     = "241" // Gray - for dimmed text, hints
	ColorText      = "252" // Light gray - for normal text
	ColorBorder    = "238" // Dark gray - unfocused pane borders
)

// Styles contains shared style definitions used across views and modals.
var Styles = struct {
	Title      lipgloss.Style // Bold accent color - pane and modal titles
	TitleError lipgloss.Style // Bold danger color

	Pane        lipgloss.Style // Unfocused pane
	PaneFocused lipgloss.Style // Focused pane
	Box         lipgloss.Style // Modal box
	BoxCompact  lipgloss.Style // Modal box with less padding (file picker)

	Selected  lipgloss.Style // Selected print in the sidebar
	Cursor    lipgloss.Style // Cursor row in the units table
	Normal    lipgloss.Style
	Muted     lipgloss.Style
	Hint      lipgloss.Style
	Empty     lipgloss.Style // Empty state text (muted, italic)
	Error     lipgloss.Style // Inline error message
	Quantity  lipgloss.Style
	FieldName lipgloss.Style // Label in front of an input
	Status    lipgloss.Style // Transient confirmation next to the help line
}{
	Title: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorAccent)),
	TitleError: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorDanger)),
	Pane: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorBorder)).
		Padding(0, 1),
	PaneFocused: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorHighlight)).
		Padding(0, 1),
	Box: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorHighlight)).
		Padding(1, 2),
	BoxCompact: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorHighlight)).
		Padding(0, 1),
	Selected: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorText)).
		Background(lipgloss.Color(ColorSelection)).
		Bold(true),
	Cursor: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorHighlight)).
		Bold(true),
	Normal: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorText)),
	Muted: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)),
	Hint: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)),
	Empty: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)).
		Italic(true),
	Error: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorDanger)),
	Quantity: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorAccent)),
	FieldName: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)),
	Status: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorAccent)),
}

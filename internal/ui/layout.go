package ui

// Sidebar width bounds, in columns including the border.
const (
	minSidebarWidth = 24
	maxSidebarWidth = 40
)

// splitLayout divides the terminal into the sidebar and the main panel.
// helpHeight rows at the bottom are reserved for the help line.
type splitLayout struct {
	Width, Height int
	helpHeight    int
}

// Sidebar returns the outer size of the sidebar pane.
func (l splitLayout) Sidebar() (w, h int) {
	w = l.Width / 3
	w = max(w, minSidebarWidth)
	w = min(w, maxSidebarWidth)
	if w > l.Width {
		w = l.Width
	}
	return w, l.bodyHeight()
}

// Main returns the outer size of the units pane.
func (l splitLayout) Main() (w, h int) {
	sw, _ := l.Sidebar()
	return max(l.Width-sw, 0), l.bodyHeight()
}

func (l splitLayout) bodyHeight() int {
	return max(l.Height-l.helpHeight, 0)
}

// inner converts an outer pane size to the content size inside border and padding.
func inner(w, h int) (int, int) {
	// 2 border columns + 2 padding columns, 2 border rows.
	return max(w-4, 0), max(h-2, 0)
}

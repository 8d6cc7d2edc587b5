package ui

// FocusManager tracks and rotates focus across panes.
type FocusManager struct {
	Current PaneID   // currently focused pane
	Order   []PaneID // tab order for focus rotation
	// Enabled reports whether a pane can take focus; nil means all can.
	Enabled  func(PaneID) bool
	OnChange func(from, to PaneID)
}

// Next advances focus to the next enabled pane in order.
// Returns the new current focus ID.
func (f *FocusManager) Next() PaneID {
	return f.rotate(1)
}

// Prev moves focus to the previous enabled pane in order.
func (f *FocusManager) Prev() PaneID {
	return f.rotate(-1)
}

func (f *FocusManager) rotate(step int) PaneID {
	n := len(f.Order)
	if n == 0 {
		return ""
	}
	idx := f.index(f.Current)
	if idx < 0 {
		idx = 0
		step = 0
	}
	for i := 0; i < n; i++ {
		idx = ((idx+step)%n + n) % n
		if f.enabled(f.Order[idx]) {
			f.set(f.Order[idx])
			break
		}
		if step == 0 {
			step = 1
		}
	}
	return f.Current
}

// SetFocus sets focus to the given pane.
// Returns false if the pane is not in the order or is disabled.
func (f *FocusManager) SetFocus(id PaneID) bool {
	if f.index(id) < 0 || !f.enabled(id) {
		return false
	}
	f.set(id)
	return true
}

// Ensure moves focus to the first enabled pane when the current one became
// disabled.
func (f *FocusManager) Ensure() PaneID {
	if f.index(f.Current) >= 0 && f.enabled(f.Current) {
		return f.Current
	}
	for _, id := range f.Order {
		if f.enabled(id) {
			f.set(id)
			break
		}
	}
	return f.Current
}

func (f *FocusManager) set(id PaneID) {
	from := f.Current
	f.Current = id
	if f.OnChange != nil && from != id {
		f.OnChange(from, id)
	}
}

func (f *FocusManager) index(id PaneID) int {
	for i, o := range f.Order {
		if o == id {
			return i
		}
	}
	return -1
}

func (f *FocusManager) enabled(id PaneID) bool {
	return f.Enabled == nil || f.Enabled(id)
}

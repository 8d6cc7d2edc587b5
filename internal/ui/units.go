package ui

import (
	"fmt"
	"strconv"
	"strings"

	"bommie/internal/editor"
	"bommie/internal/ui/textutil"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type unitsMode int

const (
	unitsBrowse unitsMode = iota
	unitsAdding
	unitsEditing
)

const (
	fieldName = iota
	fieldQuantity
)

// qtyWidth is the width of the quantity column.
const qtyWidth = 10

// UnitsView shows the units of the selected print. Rows are edited in place
// ("e"), removed ("d"), and new units are staged in the add form ("a").
type UnitsView struct {
	state     *editor.State
	Cursor    int
	mode      unitsMode
	field     int
	nameInput textinput.Model
	qtyInput  textinput.Model
	focused   bool
	width     int
	height    int
	// printName is the print the cursor belongs to; a different selection
	// resets the view.
	printName string
}

// Ensure UnitsView implements Pane.
var _ Pane = (*UnitsView)(nil)

// NewUnitsView creates the units panel over the shared state.
func NewUnitsView(state *editor.State) *UnitsView {
	name := textinput.New()
	name.Prompt = ""
	name.Placeholder = "unit"
	qty := textinput.New()
	qty.Prompt = ""
	qty.Placeholder = "0"
	qty.Validate = digitsOnly
	qty.Width = qtyWidth - 1
	u := &UnitsView{state: state, nameInput: name, qtyInput: qty}
	u.Reset()
	return u
}

// digitsOnly rejects anything but ASCII digits while typing a quantity.
// Range errors are left to the state, which ignores unparsable text.
func digitsOnly(s string) error {
	for _, r := range s {
		if r < '0' || r > '9' {
			return fmt.Errorf("not a digit: %q", r)
		}
	}
	return nil
}

// Init implements View.
func (u *UnitsView) Init() tea.Cmd {
	return nil
}

// Focus implements Pane.
func (u *UnitsView) Focus() { u.focused = true }

// Blur implements Pane.
func (u *UnitsView) Blur() {
	u.focused = false
	u.stopEditing()
}

// Editing implements Pane.
func (u *UnitsView) Editing() bool { return u.mode != unitsBrowse }

// SetSize implements Pane. Sizes are content sizes.
func (u *UnitsView) SetSize(width, height int) {
	u.width = width
	u.height = height
	u.nameInput.Width = max(width-qtyWidth-12, 8)
}

// Reset returns to browsing the first unit of the selected print.
func (u *UnitsView) Reset() {
	u.stopEditing()
	u.Cursor = 0
	u.printName = ""
	if p := u.state.SelectedPrint(); p != nil {
		u.printName = p.Name
	}
}

// SyncSelection resets the view when the selected print changed.
func (u *UnitsView) SyncSelection() {
	name := ""
	if p := u.state.SelectedPrint(); p != nil {
		name = p.Name
	}
	if name != u.printName {
		u.Reset()
	}
}

func (u *UnitsView) unitCount() int {
	if p := u.state.SelectedPrint(); p != nil {
		return len(p.Units)
	}
	return 0
}

func (u *UnitsView) clampCursor() {
	u.Cursor = min(u.Cursor, u.unitCount()-1)
	u.Cursor = max(u.Cursor, 0)
}

// Update implements View.
func (u *UnitsView) Update(msg tea.Msg) (View, tea.Cmd) {
	km, ok := msg.(tea.KeyMsg)
	if !ok {
		if u.mode == unitsBrowse {
			return u, nil
		}
		var cmd tea.Cmd
		if u.field == fieldName {
			u.nameInput, cmd = u.nameInput.Update(msg)
		} else {
			u.qtyInput, cmd = u.qtyInput.Update(msg)
		}
		return u, cmd
	}

	switch u.mode {
	case unitsAdding:
		return u, u.updateAdding(km)
	case unitsEditing:
		return u, u.updateEditing(km)
	}

	switch {
	case key.Matches(km, paneKeys.Down):
		u.Cursor++
		u.clampCursor()
	case key.Matches(km, paneKeys.Up):
		u.Cursor--
		u.clampCursor()
	case key.Matches(km, paneKeys.Top):
		u.Cursor = 0
	case key.Matches(km, paneKeys.Bottom):
		u.Cursor = max(u.unitCount()-1, 0)
	case key.Matches(km, paneKeys.Add):
		return u, u.startAdding()
	case key.Matches(km, paneKeys.Edit):
		return u, u.startEditing()
	case key.Matches(km, paneKeys.Delete):
		u.state.RemoveUnit(u.Cursor)
		u.clampCursor()
	}
	return u, nil
}

func (u *UnitsView) startAdding() tea.Cmd {
	if u.state.SelectedPrint() == nil {
		return nil
	}
	u.mode = unitsAdding
	u.nameInput.SetValue(u.state.PendingUnit.Name)
	u.qtyInput.SetValue("")
	if q := u.state.PendingUnit.Quantity; q != 0 {
		u.qtyInput.SetValue(strconv.FormatUint(uint64(q), 10))
	}
	return u.setField(fieldName)
}

func (u *UnitsView) startEditing() tea.Cmd {
	p := u.state.SelectedPrint()
	if p == nil || u.Cursor >= len(p.Units) {
		return nil
	}
	unit := p.Units[u.Cursor]
	u.mode = unitsEditing
	u.nameInput.SetValue(unit.Name)
	u.qtyInput.SetValue(strconv.FormatUint(uint64(unit.Quantity), 10))
	return u.setField(fieldName)
}

// stopEditing leaves add or edit mode. Units edited in place are re-sorted
// and the cursor follows the edited unit.
func (u *UnitsView) stopEditing() {
	if u.mode == unitsEditing {
		name := u.nameInput.Value()
		u.state.SortUnits()
		if p := u.state.SelectedPrint(); p != nil {
			if i := p.UnitIndex(name); i >= 0 {
				u.Cursor = i
			}
		}
	}
	u.mode = unitsBrowse
	u.nameInput.Blur()
	u.qtyInput.Blur()
}

func (u *UnitsView) setField(f int) tea.Cmd {
	u.field = f
	if f == fieldName {
		u.qtyInput.Blur()
		u.nameInput.CursorEnd()
		return u.nameInput.Focus()
	}
	u.nameInput.Blur()
	u.qtyInput.CursorEnd()
	return u.qtyInput.Focus()
}

// updateInputs sends a key to the focused input and reports which field changed.
func (u *UnitsView) updateInputs(km tea.KeyMsg) (int, tea.Cmd) {
	var cmd tea.Cmd
	if u.field == fieldName {
		u.nameInput, cmd = u.nameInput.Update(km)
	} else {
		u.qtyInput, cmd = u.qtyInput.Update(km)
	}
	return u.field, cmd
}

func (u *UnitsView) updateAdding(km tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(km, paneKeys.Field):
		return u.setField(1 - u.field)
	case key.Matches(km, paneKeys.Cancel):
		u.stopEditing()
		return nil
	case key.Matches(km, paneKeys.Confirm):
		name := u.state.PendingUnit.Name
		if !u.state.AddUnit() {
			return nil
		}
		if p := u.state.SelectedPrint(); p != nil {
			u.Cursor = max(p.UnitIndex(name), 0)
		}
		u.nameInput.SetValue("")
		u.qtyInput.SetValue("")
		return u.setField(fieldName)
	}

	field, cmd := u.updateInputs(km)
	if field == fieldName {
		u.state.SetPendingUnitName(u.nameInput.Value())
	} else {
		text := u.qtyInput.Value()
		if text == "" {
			text = "0" // matches the placeholder
		}
		u.state.SetPendingUnitQuantity(text)
	}
	return cmd
}

func (u *UnitsView) updateEditing(km tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(km, paneKeys.Field):
		return u.setField(1 - u.field)
	case key.Matches(km, paneKeys.Confirm), key.Matches(km, paneKeys.Cancel):
		u.stopEditing()
		return nil
	}

	field, cmd := u.updateInputs(km)
	if field == fieldName {
		u.state.RenameUnit(u.Cursor, u.nameInput.Value())
	} else {
		u.state.SetUnitQuantity(u.Cursor, u.qtyInput.Value())
	}
	return cmd
}

// View implements View.
func (u *UnitsView) View() string {
	p := u.state.SelectedPrint()
	if p == nil {
		return ""
	}
	width, height := u.width, u.height
	if width == 0 {
		width = 60
	}
	if height == 0 {
		height = 20
	}
	nameWidth := max(width-qtyWidth-3, 4)

	var b strings.Builder
	b.WriteString(Styles.Title.Render("Units") + Styles.Muted.Render(" · "+p.Name) + "\n")
	b.WriteString(Styles.Muted.Render(fmt.Sprintf("%d units, %d total", len(p.Units), p.TotalQuantity())) + "\n\n")
	b.WriteString(Styles.FieldName.Render("  "+textutil.PadRightVisual("Unit", nameWidth)+" "+textutil.PadLeftVisual("Quantity", qtyWidth)) + "\n")

	// Header block is 4 rows, the add form 3.
	rows := max(height-7, 1)
	if len(p.Units) == 0 {
		b.WriteString(Styles.Empty.Render("  No units yet"))
	} else {
		start, end := visibleWindow(u.Cursor, len(p.Units), rows)
		lines := make([]string, 0, end-start)
		for i := start; i < end; i++ {
			lines = append(lines, u.renderRow(i, nameWidth))
		}
		b.WriteString(strings.Join(lines, "\n"))
	}

	b.WriteString("\n" + Styles.Muted.Render(strings.Repeat("─", width)) + "\n")
	if u.mode == unitsAdding {
		b.WriteString(Styles.Title.Render("Add unit") + "\n")
		b.WriteString(u.renderForm())
	} else {
		b.WriteString(Styles.Hint.Render("a: add unit"))
	}
	return b.String()
}

func (u *UnitsView) renderRow(i, nameWidth int) string {
	unit := u.state.SelectedPrint().Units[i]
	if i == u.Cursor && u.mode == unitsEditing {
		return "› " + u.renderForm()
	}
	line := textutil.PadRightVisual(unit.Name, nameWidth) + " " +
		Styles.Quantity.Render(textutil.PadLeftVisual(strconv.FormatUint(uint64(unit.Quantity), 10), qtyWidth))
	if i == u.Cursor && u.focused {
		return Styles.Cursor.Render("› ") + Styles.Cursor.Render(line)
	}
	return "  " + Styles.Normal.Render(line)
}

func (u *UnitsView) renderForm() string {
	return lipgloss.JoinHorizontal(lipgloss.Top,
		Styles.FieldName.Render("Unit: "), u.nameInput.View(),
		Styles.FieldName.Render("  Quantity: "), u.qtyInput.View(),
	)
}

// Help implements Pane.
func (u *UnitsView) Help() []key.Binding {
	switch u.mode {
	case unitsAdding:
		return []key.Binding{
			paneKeys.Field,
			key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "add unit")),
			paneKeys.Cancel,
		}
	case unitsEditing:
		return []key.Binding{paneKeys.Field, paneKeys.Cancel}
	}
	return []key.Binding{paneKeys.Up, paneKeys.Down, paneKeys.Add, paneKeys.Edit, paneKeys.Delete, paneKeys.Switch, paneKeys.Leader, paneKeys.Quit}
}

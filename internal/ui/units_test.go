package ui

import (
	"strings"
	"testing"

	"bommie/internal/bom"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const scenarioDoc = `{"1":{"BFO24I":234,"BFO COIL":150}}`

func unitNames(p *bom.Print) []string {
	names := make([]string, len(p.Units))
	for i, u := range p.Units {
		names[i] = u.Name
	}
	return names
}

func TestUnits_Navigation(t *testing.T) {
	st := newTestState(t, scenarioDoc)
	u := NewUnitsView(st)
	require.Equal(t, []string{"BFO COIL", "BFO24I"}, unitNames(st.SelectedPrint()))

	press(u, "j")
	assert.Equal(t, 1, u.Cursor)
	press(u, "j")
	assert.Equal(t, 1, u.Cursor)
	press(u, "k", "k")
	assert.Equal(t, 0, u.Cursor)
	press(u, "G")
	assert.Equal(t, 1, u.Cursor)
}

func TestUnits_AddUnit(t *testing.T) {
	st := newTestState(t, scenarioDoc)
	u := NewUnitsView(st)

	press(u, "a")
	require.True(t, u.Editing())
	press(u, "Washer", "tab", "12", "enter")

	p := st.SelectedPrint()
	assert.Equal(t, []string{"BFO COIL", "BFO24I", "Washer"}, unitNames(p))
	assert.Equal(t, uint32(12), p.Units[2].Quantity)
	assert.Equal(t, 2, u.Cursor, "cursor moves to the new unit")
	assert.True(t, u.Editing(), "form stays open for the next unit")
	assert.Equal(t, "", st.PendingUnit.Name)

	// Empty quantity means zero.
	press(u, "Bolt", "enter")
	assert.Equal(t, []string{"BFO COIL", "BFO24I", "Bolt", "Washer"}, unitNames(p))
	assert.Equal(t, uint32(0), p.Units[2].Quantity)

	press(u, "esc")
	assert.False(t, u.Editing())
}

func TestUnits_AddRejectsDuplicate(t *testing.T) {
	st := newTestState(t, scenarioDoc)
	u := NewUnitsView(st)

	press(u, "a", "BFO24I", "tab", "1", "enter")
	p := st.SelectedPrint()
	assert.Len(t, p.Units, 2)
	assert.Equal(t, uint32(234), p.Units[1].Quantity, "existing unit untouched")
	assert.Equal(t, "BFO24I", st.PendingUnit.Name, "rejected unit stays staged")
}

func TestUnits_EditQuantity(t *testing.T) {
	st := newTestState(t, scenarioDoc)
	u := NewUnitsView(st)
	p := st.SelectedPrint()

	press(u, "e")
	require.True(t, u.Editing())
	press(u, "tab", "backspace", "backspace", "backspace")
	assert.Equal(t, uint32(1), p.Units[0].Quantity, "empty text is ignored")

	press(u, "99", "x")
	assert.Equal(t, uint32(99), p.Units[0].Quantity, "invalid text keeps the last valid value")

	press(u, "enter")
	assert.False(t, u.Editing())
	assert.Equal(t, uint32(99), p.Units[0].Quantity)
}

func TestUnits_RenameResorts(t *testing.T) {
	st := newTestState(t, scenarioDoc)
	u := NewUnitsView(st)

	press(u, "e")
	for range len("BFO COIL") {
		press(u, "backspace")
	}
	press(u, "Zeta")
	p := st.SelectedPrint()
	assert.Equal(t, "Zeta", p.Units[0].Name, "rename applies while typing")

	press(u, "esc")
	assert.Equal(t, []string{"BFO24I", "Zeta"}, unitNames(p), "units re-sorted when editing ends")
	assert.Equal(t, 1, u.Cursor, "cursor follows the renamed unit")
	assert.Equal(t, uint32(150), p.Units[1].Quantity)
}

func TestUnits_Delete(t *testing.T) {
	st := newTestState(t, scenarioDoc)
	u := NewUnitsView(st)

	press(u, "j", "d")
	p := st.SelectedPrint()
	assert.Equal(t, []string{"BFO COIL"}, unitNames(p))
	assert.Equal(t, 0, u.Cursor)

	press(u, "d", "d")
	assert.Empty(t, p.Units)
	assert.Equal(t, 0, u.Cursor)

	press(u, "e")
	assert.False(t, u.Editing(), "nothing to edit")
}

func TestUnits_SyncSelection(t *testing.T) {
	st := newTestState(t, `{"1":{"a":1,"b":2},"2":{"c":3}}`)
	u := NewUnitsView(st)

	press(u, "j")
	require.Equal(t, 1, u.Cursor)
	u.SyncSelection()
	assert.Equal(t, 1, u.Cursor, "same print keeps the cursor")

	st.SelectPrint(1)
	u.SyncSelection()
	assert.Equal(t, 0, u.Cursor)
}

func TestUnits_View(t *testing.T) {
	st := newTestState(t, scenarioDoc)
	u := NewUnitsView(st)

	out := u.View()
	assert.Contains(t, out, "Units")
	assert.Contains(t, out, "· 1")
	assert.Contains(t, out, "2 units, 384 total")
	assert.Contains(t, out, "BFO COIL")
	assert.Contains(t, out, "234")
	assert.Contains(t, out, "a: add unit")

	press(u, "a")
	out = u.View()
	assert.Contains(t, out, "Add unit")
	assert.NotContains(t, out, "a: add unit")

	st.ApplyOpen("x.units", []bom.Print{{Name: "empty"}})
	u.SyncSelection()
	assert.Contains(t, u.View(), "No units yet")

	st.Reset()
	assert.Equal(t, "", strings.TrimSpace(u.View()), "no panel without a selection")
}

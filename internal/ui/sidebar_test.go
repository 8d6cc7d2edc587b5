package ui

import (
	"strings"
	"testing"

	"bommie/internal/bom"
	"bommie/internal/editor"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestState returns a state holding the parsed document.
func newTestState(t *testing.T, doc string) *editor.State {
	t.Helper()
	st := editor.New(nil)
	if doc == "" {
		return st
	}
	prints, err := bom.Parse([]byte(doc))
	require.NoError(t, err)
	st.ApplyOpen("test.units", prints)
	return st
}

func printNames(st *editor.State) []string {
	names := make([]string, len(st.Prints))
	for i, p := range st.Prints {
		names[i] = p.Name
	}
	return names
}

// press sends keys to v in order, discarding commands.
func press(v View, keys ...string) {
	for _, k := range keys {
		v.Update(keyMsg(k))
	}
}

func TestSidebar_Navigation(t *testing.T) {
	st := newTestState(t, `{"10":{},"2":{},"1":{}}`)
	s := NewSidebarView(st)
	require.Equal(t, []string{"1", "2", "10"}, printNames(st))

	press(s, "j")
	assert.Equal(t, 1, st.Selected)
	press(s, "down", "j")
	assert.Equal(t, 2, st.Selected, "cursor stops at the last print")
	press(s, "g")
	assert.Equal(t, 0, st.Selected)
	press(s, "k")
	assert.Equal(t, 0, st.Selected, "cursor stops at the first print")
	press(s, "G")
	assert.Equal(t, 2, st.Selected)
}

func TestSidebar_AddPrints(t *testing.T) {
	st := newTestState(t, "")
	s := NewSidebarView(st)

	press(s, "a")
	require.True(t, s.Editing())
	press(s, "5", "enter", "10", "enter", "2", "enter")

	assert.Equal(t, []string{"2", "5", "10"}, printNames(st))
	assert.Equal(t, "5", st.SelectedPrint().Name, "the first added print stays selected")
	assert.True(t, s.Editing(), "input stays open for the next print")
	assert.Empty(t, st.PendingPrint)

	press(s, "esc")
	assert.False(t, s.Editing())
}

func TestSidebar_AddRejectsDuplicateAndEmpty(t *testing.T) {
	st := newTestState(t, `{"A":{}}`)
	s := NewSidebarView(st)

	press(s, "a", "enter")
	assert.Len(t, st.Prints, 1, "empty name is rejected")

	press(s, "A", "enter")
	assert.Len(t, st.Prints, 1, "duplicate name is rejected")
	assert.Equal(t, "A", st.PendingPrint, "rejected name stays in the input")
}

func TestSidebar_KeysGoToInputWhileAdding(t *testing.T) {
	st := newTestState(t, `{"A":{},"B":{}}`)
	s := NewSidebarView(st)

	press(s, "a", "d", "j")
	assert.Len(t, st.Prints, 2, "d is typed, not a delete")
	assert.Equal(t, 0, st.Selected, "j is typed, not a move")
	assert.Equal(t, "dj", st.PendingPrint)
}

func TestSidebar_Delete(t *testing.T) {
	st := newTestState(t, `{"A":{},"B":{}}`)
	s := NewSidebarView(st)

	press(s, "j", "d")
	assert.Equal(t, []string{"A"}, printNames(st))
	assert.Equal(t, 0, st.Selected, "selection is clamped")

	press(s, "d", "d")
	assert.Empty(t, st.Prints)
	assert.False(t, st.HasSelection())
}

func TestSidebar_View(t *testing.T) {
	st := newTestState(t, "")
	s := NewSidebarView(st)

	out := s.View()
	assert.Contains(t, out, "Prints (0)")
	assert.Contains(t, out, "No prints yet")
	assert.Contains(t, out, "a: add print")

	st.ApplyOpen("x.units", []bom.Print{{Name: "Alpha"}, {Name: "Beta"}})
	st.Err = "boom"
	out = s.View()
	assert.Contains(t, out, "Prints (2)")
	assert.Contains(t, out, "Alpha")
	assert.Contains(t, out, "Beta")
	assert.Contains(t, out, "boom")
	assert.Contains(t, out, "esc: dismiss")
	assert.NotContains(t, out, "No prints yet")
}

func TestSidebar_ViewScrollsToSelection(t *testing.T) {
	st := newTestState(t, "")
	for _, name := range []string{"p01", "p02", "p03", "p04", "p05", "p06", "p07", "p08", "p09", "p10"} {
		st.SetPendingPrint(name)
		require.True(t, st.AddPrint())
	}
	s := NewSidebarView(st)
	s.SetSize(20, 8)
	st.SelectPrint(9)

	out := s.View()
	assert.Contains(t, out, "p10")
	assert.False(t, strings.Contains(out, "p01"), "top rows scroll out of view")
}

func TestVisibleWindow(t *testing.T) {
	tests := []struct {
		cursor, n, rows int
		start, end      int
	}{
		{0, 3, 10, 0, 3},
		{0, 10, 4, 0, 4},
		{3, 10, 4, 0, 4},
		{4, 10, 4, 1, 5},
		{9, 10, 4, 6, 10},
		{2, 5, 0, 0, 5},
	}
	for _, tt := range tests {
		start, end := visibleWindow(tt.cursor, tt.n, tt.rows)
		assert.Equal(t, tt.start, start, "start for %+v", tt)
		assert.Equal(t, tt.end, end, "end for %+v", tt)
	}
}

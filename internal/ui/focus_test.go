package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFocusManager_Rotation(t *testing.T) {
	var changes []PaneID
	f := &FocusManager{
		Current:  PanePrints,
		Order:    []PaneID{PanePrints, PaneUnits},
		OnChange: func(_, to PaneID) { changes = append(changes, to) },
	}

	assert.Equal(t, PaneUnits, f.Next())
	assert.Equal(t, PanePrints, f.Next())
	assert.Equal(t, PaneUnits, f.Prev())
	assert.Equal(t, []PaneID{PaneUnits, PanePrints, PaneUnits}, changes)
}

func TestFocusManager_SkipsDisabled(t *testing.T) {
	unitsEnabled := false
	f := &FocusManager{
		Current: PanePrints,
		Order:   []PaneID{PanePrints, PaneUnits},
		Enabled: func(id PaneID) bool { return id != PaneUnits || unitsEnabled },
	}

	assert.Equal(t, PanePrints, f.Next(), "disabled pane is skipped")
	assert.False(t, f.SetFocus(PaneUnits))
	assert.False(t, f.SetFocus("nope"))

	unitsEnabled = true
	assert.True(t, f.SetFocus(PaneUnits))

	unitsEnabled = false
	assert.Equal(t, PanePrints, f.Ensure(), "focus leaves a pane that became disabled")
}

func TestFocusManager_EmptyOrder(t *testing.T) {
	f := &FocusManager{}
	assert.Equal(t, PaneID(""), f.Next())
	assert.Equal(t, PaneID(""), f.Ensure())
}

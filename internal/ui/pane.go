package ui

// PaneID identifies a pane of the split layout.
type PaneID string

const (
	PanePrints PaneID = "prints"
	PaneUnits  PaneID = "units"
)

func (p PaneID) String() string {
	switch p {
	case PanePrints:
		return "Prints"
	case PaneUnits:
		return "Units"
	default:
		return "Unknown"
	}
}

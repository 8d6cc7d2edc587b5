// Package editor holds the application state of the units editor and every
// mutation the UI can apply to it. All methods are synchronous; the UI calls
// them from its update loop.
package editor

import (
	"slices"
	"strconv"

	"bommie/internal/bom"

	"go.uber.org/zap"
)

// Error message prefixes shown in the sidebar.
const (
	ReadErrorText  = "Error reading file"
	WriteErrorText = "Error writing file"
)

// PendingUnit is the staging buffer behind the "add unit" form.
type PendingUnit struct {
	Name     string
	Quantity uint32
}

// State is the whole editor state: the document being edited plus the
// transient form buffers and error message that only the UI cares about.
type State struct {
	Prints   []bom.Print
	Selected int
	// Path is the file the document was last opened from or saved to.
	Path string

	PendingPrint string
	PendingUnit  PendingUnit

	Err string

	logger *zap.Logger
}

// New creates an empty state. A nil logger disables logging.
func New(logger *zap.Logger) *State {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &State{logger: logger.Named("editor")}
}

// HasSelection reports whether a print is selected, which is exactly when the
// document has at least one print.
func (s *State) HasSelection() bool {
	return s.Selected >= 0 && s.Selected < len(s.Prints)
}

// SelectedPrint returns the selected print, or nil when there is none.
func (s *State) SelectedPrint() *bom.Print {
	if !s.HasSelection() {
		return nil
	}
	return &s.Prints[s.Selected]
}

// Reset replaces the document with an empty one and clears the selection,
// file path and error.
func (s *State) Reset() {
	s.Prints = nil
	s.Selected = 0
	s.Path = ""
	s.Err = ""
	s.logger.Debug("new document")
}

// ApplyOpen replaces the document with prints loaded from path.
func (s *State) ApplyOpen(path string, prints []bom.Print) {
	s.Prints = prints
	s.Selected = 0
	s.Path = path
	s.Err = ""
	s.logger.Debug("document opened", zap.String("path", path), zap.Int("prints", len(prints)))
}

// FailOpen records a failed open: the document is reset to empty and the
// error is surfaced.
func (s *State) FailOpen(err error) {
	s.Prints = nil
	s.Selected = 0
	s.Path = ""
	s.Err = ReadErrorText + ": " + err.Error()
	s.logger.Debug("open failed", zap.Error(err))
}

// ApplySave records a successful save to path.
func (s *State) ApplySave(path string) {
	s.Path = path
	s.logger.Debug("document saved", zap.String("path", path))
}

// FailSave surfaces a failed save. The document is kept.
func (s *State) FailSave(err error) {
	s.Err = WriteErrorText + ": " + err.Error()
	s.logger.Debug("save failed", zap.Error(err))
}

// DismissError clears the error message.
func (s *State) DismissError() {
	s.Err = ""
}

// SetPendingPrint updates the "new print" buffer.
func (s *State) SetPendingPrint(name string) {
	s.PendingPrint = name
}

// AddPrint adds an empty print named by the pending buffer. It is a no-op
// returning false when the name is empty or already used. The previously
// selected print stays selected.
func (s *State) AddPrint() bool {
	name := s.PendingPrint
	if name == "" || bom.PrintIndex(s.Prints, name) >= 0 {
		return false
	}

	keep := name
	if p := s.SelectedPrint(); p != nil {
		keep = p.Name
	}
	s.Prints = append(s.Prints, bom.Print{Name: name})
	bom.SortPrints(s.Prints)
	s.Selected = bom.PrintIndex(s.Prints, keep)
	s.PendingPrint = ""
	s.logger.Debug("print added", zap.String("print", name))
	return true
}

// RemovePrint removes the print at i and keeps the selection in range.
func (s *State) RemovePrint(i int) bool {
	if i < 0 || i >= len(s.Prints) {
		return false
	}
	name := s.Prints[i].Name
	s.Prints = slices.Delete(s.Prints, i, i+1)
	if s.Selected >= len(s.Prints) {
		s.Selected = max(len(s.Prints)-1, 0)
	}
	s.logger.Debug("print removed", zap.String("print", name))
	return true
}

// SelectPrint selects the print at i.
func (s *State) SelectPrint(i int) bool {
	if i < 0 || i >= len(s.Prints) {
		return false
	}
	s.Selected = i
	return true
}

// SetPendingUnitName updates the name in the "add unit" buffer.
func (s *State) SetPendingUnitName(name string) {
	s.PendingUnit.Name = name
}

// SetPendingUnitQuantity parses text into the "add unit" quantity. Text that
// is not a non-negative integer is ignored and the previous value kept.
func (s *State) SetPendingUnitQuantity(text string) bool {
	q, ok := parseQuantity(text)
	if ok {
		s.PendingUnit.Quantity = q
	}
	return ok
}

// AddUnit adds the pending unit to the selected print. It is a no-op
// returning false without a selection, with an empty name, or when the print
// already has a unit of that name.
func (s *State) AddUnit() bool {
	p := s.SelectedPrint()
	if p == nil || s.PendingUnit.Name == "" || p.HasUnit(s.PendingUnit.Name) {
		return false
	}
	p.Units = append(p.Units, bom.Unit{Name: s.PendingUnit.Name, Quantity: s.PendingUnit.Quantity})
	bom.SortUnits(p.Units)
	s.logger.Debug("unit added",
		zap.String("print", p.Name),
		zap.String("unit", s.PendingUnit.Name),
		zap.Uint32("quantity", s.PendingUnit.Quantity))
	s.PendingUnit = PendingUnit{}
	return true
}

// RenameUnit sets the name of the unit at row in the selected print. Names
// are not checked for uniqueness here, matching in-place editing.
func (s *State) RenameUnit(row int, name string) bool {
	u := s.unitAt(row)
	if u == nil {
		return false
	}
	u.Name = name
	return true
}

// SetUnitQuantity parses text into the quantity of the unit at row. Invalid
// text is ignored and the previous value kept.
func (s *State) SetUnitQuantity(row int, text string) bool {
	u := s.unitAt(row)
	if u == nil {
		return false
	}
	q, ok := parseQuantity(text)
	if ok {
		u.Quantity = q
	}
	return ok
}

// SortUnits re-sorts the units of the selected print after in-place edits.
func (s *State) SortUnits() {
	if p := s.SelectedPrint(); p != nil {
		bom.SortUnits(p.Units)
	}
}

// RemoveUnit removes the unit at row in the selected print.
func (s *State) RemoveUnit(row int) bool {
	p := s.SelectedPrint()
	if p == nil || row < 0 || row >= len(p.Units) {
		return false
	}
	name := p.Units[row].Name
	p.Units = slices.Delete(p.Units, row, row+1)
	s.logger.Debug("unit removed", zap.String("print", p.Name), zap.String("unit", name))
	return true
}

func (s *State) unitAt(row int) *bom.Unit {
	p := s.SelectedPrint()
	if p == nil || row < 0 || row >= len(p.Units) {
		return nil
	}
	return &p.Units[row]
}

func parseQuantity(text string) (uint32, bool) {
	n, err := strconv.ParseUint(text, 10, 32)
	if err != nil {
		return 0, false
	}
	return uint32(n), true
}

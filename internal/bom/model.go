// Package bom holds the units document: prints, their units and the JSON
// file format they are stored in.
//
// A document is a JSON object mapping print names to objects that map unit
// names to non-negative integer quantities:
//
//	{"1": {"BFO24I": 234, "BFO COIL": 150}}
package bom

// FileExt is the extension used for units files.
const FileExt = ".units"

// Unit is a named component with a quantity.
type Unit struct {
	Name     string
	Quantity uint32
}

// Print is a named group of units. Units are kept sorted by name.
type Print struct {
	Name  string
	Units []Unit
}

// HasUnit reports whether a unit with exactly this name exists.
func (p *Print) HasUnit(name string) bool {
	return p.UnitIndex(name) >= 0
}

// UnitIndex returns the index of the unit with this name, or -1.
func (p *Print) UnitIndex(name string) int {
	for i, u := range p.Units {
		if u.Name == name {
			return i
		}
	}
	return -1
}

// PrintIndex returns the index of the print with this name, or -1.
func PrintIndex(prints []Print, name string) int {
	for i, p := range prints {
		if p.Name == name {
			return i
		}
	}
	return -1
}

// TotalQuantity sums the quantities of all units in the print.
func (p *Print) TotalQuantity() uint64 {
	var total uint64
	for _, u := range p.Units {
		total += uint64(u.Quantity)
	}
	return total
}

package bom

import (
	"encoding/json"
	"fmt"

	"bommie/internal/jsonutil"
)

// Parse decodes a units document. Units of each print are sorted by name and
// prints are sorted with ComparePrintNames. Any shape mismatch yields a
// *ParseError.
func Parse(data []byte) ([]Print, error) {
	var doc map[string]map[string]json.RawMessage
	if err := jsonutil.UnmarshalWithContext(data, &doc, "decode"); err != nil {
		return nil, &ParseError{Err: err}
	}
	if doc == nil {
		return nil, &ParseError{Err: fmt.Errorf("document is not an object")}
	}

	prints := make([]Print, 0, len(doc))
	for printName, rawUnits := range doc {
		if rawUnits == nil {
			return nil, &ParseError{Err: fmt.Errorf("print %q: value is not an object", printName)}
		}
		units := make([]Unit, 0, len(rawUnits))
		for unitName, raw := range rawUnits {
			q, err := jsonutil.Uint32(raw)
			if err != nil {
				return nil, &ParseError{Err: fmt.Errorf("print %q unit %q: %w", printName, unitName, err)}
			}
			units = append(units, Unit{Name: unitName, Quantity: q})
		}
		SortUnits(units)
		prints = append(prints, Print{Name: printName, Units: units})
	}
	SortPrints(prints)
	return prints, nil
}

// Marshal encodes prints as a units document. Key order in the output is not
// meaningful.
func Marshal(prints []Print) ([]byte, error) {
	doc := make(map[string]map[string]uint32, len(prints))
	for _, p := range prints {
		units := make(map[string]uint32, len(p.Units))
		for _, u := range p.Units {
			units[u.Name] = u.Quantity
		}
		doc[p.Name] = units
	}
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode units document: %w", err)
	}
	return append(data, '\n'), nil
}

package bom

import (
	"cmp"
	"slices"
	"strconv"
)

// ComparePrintNames orders print names. Names that both parse as unsigned
// 32-bit integers compare numerically ("2" before "10"); any other pair
// compares as plain strings. Numerically equal names with different spellings
// ("2", "02") fall back to string order so the ordering stays total.
func ComparePrintNames(a, b string) int {
	if a == b {
		return 0
	}
	an, aerr := strconv.ParseUint(a, 10, 32)
	bn, berr := strconv.ParseUint(b, 10, 32)
	if aerr == nil && berr == nil && an != bn {
		return cmp.Compare(an, bn)
	}
	return cmp.Compare(a, b)
}

// SortPrints sorts prints in place with ComparePrintNames.
func SortPrints(prints []Print) {
	slices.SortStableFunc(prints, func(a, b Print) int {
		return ComparePrintNames(a.Name, b.Name)
	})
}

// SortUnits sorts units in place by name.
func SortUnits(units []Unit) {
	slices.SortStableFunc(units, func(a, b Unit) int {
		return cmp.Compare(a.Name, b.Name)
	})
}

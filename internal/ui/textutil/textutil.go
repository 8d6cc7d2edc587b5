// Package textutil provides unicode-aware text utilities for TUI rendering.
package textutil

import (
	"github.com/mattn/go-runewidth"
)

// TruncateEllipsis is the unicode ellipsis character used for truncation.
const TruncateEllipsis = "…"

// VisualWidth returns the number of terminal columns s occupies.
func VisualWidth(s string) int {
	return runewidth.StringWidth(s)
}

// Truncate truncates a string to fit within maxWidth visual columns,
// appending TruncateEllipsis when anything was cut.
func Truncate(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	if VisualWidth(s) <= maxWidth {
		return s
	}
	available := maxWidth - VisualWidth(TruncateEllipsis)
	if available <= 0 {
		return TruncateEllipsis
	}
	return runewidth.Truncate(s, available, "") + TruncateEllipsis
}

// PadRightVisual pads s with spaces to targetWidth columns, truncating when
// it is already wider.
func PadRightVisual(s string, targetWidth int) string {
	if VisualWidth(s) >= targetWidth {
		return Truncate(s, targetWidth)
	}
	return runewidth.FillRight(s, targetWidth)
}

// PadLeftVisual right-aligns s in targetWidth columns, truncating when it is
// already wider.
func PadLeftVisual(s string, targetWidth int) string {
	if VisualWidth(s) >= targetWidth {
		return Truncate(s, targetWidth)
	}
	return runewidth.FillLeft(s, targetWidth)
}

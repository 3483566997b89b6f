// Package render provides text layout helpers for the demo UI.
package render

import "github.com/mattn/go-runewidth"

// Truncate shortens s to at most max display columns, appending an ellipsis
// when something was cut.
func Truncate(s string, max int) string {
	if max <= 0 {
		return ""
	}
	if runewidth.StringWidth(s) <= max {
		return s
	}
	return runewidth.Truncate(s, max, "…")
}

// PadRight pads s with spaces to the given display width.
func PadRight(s string, width int) string {
	return runewidth.FillRight(s, width)
}

package ui

import "github.com/mattn/go-runewidth"

// Truncate cuts s to maxLen terminal cells, appending "…" when cut.
// Wide characters count as two cells; a non-positive maxLen disables it.
func Truncate(s string, maxLen int) string {
	if maxLen <= 0 {
		return s
	}
	if runewidth.StringWidth(s) <= maxLen {
		return s
	}
	w := 0
	for i, r := range s {
		rw := runewidth.RuneWidth(r)
		if w+rw > maxLen-1 {
			return s[:i] + "…"
		}
		w += rw
	}
	return s
}

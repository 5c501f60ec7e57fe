// Package textutil fits text into terminal columns for chart labels and tables.
package textutil

import (
	"strconv"

	"github.com/mattn/go-runewidth"
)

// Ellipsis marks truncated text.
const Ellipsis = "…"

// Width returns the number of terminal columns s occupies.
func Width(s string) int {
	return runewidth.StringWidth(s)
}

// Truncate shortens s to at most width columns, ending with Ellipsis when cut.
func Truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	return runewidth.Truncate(s, width, Ellipsis)
}

// Fit truncates or right-pads s to exactly width columns.
func Fit(s string, width int) string {
	return runewidth.FillRight(Truncate(s, width), width)
}

// FitLeft truncates or left-pads s to exactly width columns.
func FitLeft(s string, width int) string {
	return runewidth.FillLeft(Truncate(s, width), width)
}

// MaxWidth returns the widest entry in ss.
func MaxWidth(ss []string) int {
	w := 0
	for _, s := range ss {
		if sw := Width(s); sw > w {
			w = sw
		}
	}
	return w
}

// Number formats v in its shortest decimal form ("9.8", "12", "0").
func Number(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

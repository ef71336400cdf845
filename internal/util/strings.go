package util

import (
	"strings"
	"unicode/utf8"
)

// Wrap splits s into lines of at most width runes, breaking on whitespace. Words longer than
// width are kept whole. A width <= 0 disables wrapping.
func Wrap(s string, width int) []string {
	if width <= 0 || utf8.RuneCountInString(s) <= width {
		return []string{s}
	}

	var (
		lines   []string
		current strings.Builder
		n       int
	)
	for _, word := range strings.Fields(s) {
		w := utf8.RuneCountInString(word)
		if n > 0 && n+1+w > width {
			lines = append(lines, current.String())
			current.Reset()
			n = 0
		}
		if n > 0 {
			current.WriteByte(' ')
			n++
		}
		current.WriteString(word)
		n += w
	}
	if n > 0 || len(lines) == 0 {
		lines = append(lines, current.String())
	}

	return lines
}

// PadRight pads s with spaces up to width runes
func PadRight(s string, width int) string {
	if n := utf8.RuneCountInString(s); n < width {
		return s + strings.Repeat(" ", width-n)
	}

	return s
}

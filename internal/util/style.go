package util

import (
	"io"

	"github.com/fatih/color"
)

var (
	headingColor = color.New(color.Bold)
	errorColor   = color.New(color.FgRed, color.Bold)
)

// Heading renders s in bold when w is a color capable terminal
func Heading(w io.Writer, s string) string {
	if !colorEnabled(w) {
		return s
	}

	return headingColor.Sprint(s)
}

// ErrorLabel renders s in bold red when w is a color capable terminal
func ErrorLabel(w io.Writer, s string) string {
	if !colorEnabled(w) {
		return s
	}

	return errorColor.Sprint(s)
}

// color.NoColor honours NO_COLOR and TERM=dumb
func colorEnabled(w io.Writer) bool {
	return !color.NoColor && TerminalWidth(w) > 0
}

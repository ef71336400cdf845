package util

import (
	"io"

	"golang.org/x/term"
)

type fileDescriptor interface {
	Fd() uintptr
}

// TerminalWidth returns the column count of w when w is attached to a terminal and 0 otherwise
func TerminalWidth(w io.Writer) int {
	f, ok := w.(fileDescriptor)
	if !ok {
		return 0
	}

	fd := int(f.Fd())
	if !term.IsTerminal(fd) {
		return 0
	}

	width, _, err := term.GetSize(fd)
	if err != nil {
		return 0
	}

	return width
}

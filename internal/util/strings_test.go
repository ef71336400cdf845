package util

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWrap(t *testing.T) {
	tests := []struct {
		name  string
		s     string
		width int
		want  []string
	}{
		{"no width", "the quick brown fox", 0, []string{"the quick brown fox"}},
		{"fits", "short", 10, []string{"short"}},
		{"wraps on words", "the quick brown fox", 10, []string{"the quick", "brown fox"}},
		{"long word kept whole", "supercalifragilistic is long", 8, []string{"supercalifragilistic", "is long"}},
		{"multibyte runes", "ääää öööö", 4, []string{"ääää", "öööö"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Wrap(tt.s, tt.width))
		})
	}
}

func TestPadRight(t *testing.T) {
	assert.Equal(t, "ab  ", PadRight("ab", 4))
	assert.Equal(t, "abcd", PadRight("abcd", 2))
	assert.Equal(t, "ä ", PadRight("ä", 2))
}

func TestTerminalWidth_NotATerminal(t *testing.T) {
	assert.Equal(t, 0, TerminalWidth(&bytes.Buffer{}))
}

func TestStyle_NotATerminal(t *testing.T) {
	var b bytes.Buffer
	assert.Equal(t, "USAGE:", Heading(&b, "USAGE:"))
	assert.Equal(t, "prog:", ErrorLabel(&b, "prog:"))
}

package parse

import "strings"

// Kind classifies a raw command-line token
type Kind int

const (
	Positional Kind = iota // Positional denotes a token which is not a flag
	Short                  // Short denotes a token starting with exactly one '-'
	Long                   // Long denotes a token starting with "--"
)

// String returns the string representation of a Kind
func (k Kind) String() string {
	switch k {
	case Long:
		return "long"
	case Short:
		return "short"
	default:
		return "positional"
	}
}

// Classify returns the Kind of token. A lone "-" is Short and a lone "--" is Long: both strip to
// an empty key.
func Classify(token string) Kind {
	switch {
	case strings.HasPrefix(token, "--"):
		return Long
	case strings.HasPrefix(token, "-"):
		return Short
	default:
		return Positional
	}
}

// IsFlag reports whether token is a Long or Short flag token
func IsFlag(token string) bool {
	return Classify(token) != Positional
}

// StripPrefix removes the flag prefix of token - two characters for Long, one for Short and
// nothing for Positional tokens
func StripPrefix(token string) string {
	switch Classify(token) {
	case Long:
		return token[2:]
	case Short:
		return token[1:]
	default:
		return token
	}
}

package parse

// State is a forward-only cursor over a token list
type State interface {
	Pos() int           // Get the current position
	Advance() bool      // Move to the next token, returns false when the list is exhausted
	Skip()              // Skip the token following the current one
	CurrentArg() string // Get the current token
	Peek() (string, bool)
	Len() int // Gets the length of the token list
}

// DefaultState is the default implementation of the State interface
type DefaultState struct {
	pos  int
	args []string
}

// NewState creates a new State positioned before the first element of args
func NewState(args []string) State {
	return &DefaultState{
		pos:  -1,
		args: args,
	}
}

// Pos returns the current position in the token list
func (s *DefaultState) Pos() int {
	return s.pos
}

// Advance advances to the next token, returning true if successful
func (s *DefaultState) Advance() bool {
	if s.pos+1 < len(s.args) {
		s.pos++
		return true
	}

	return false
}

// Skip consumes the token following the current one
func (s *DefaultState) Skip() {
	if s.pos+1 < len(s.args) {
		s.pos++
	}
}

// CurrentArg returns the current token or an empty string when the cursor is out of range
func (s *DefaultState) CurrentArg() string {
	if s.pos < 0 || s.pos >= len(s.args) {
		return ""
	}

	return s.args[s.pos]
}

// Peek returns the token following the current one without advancing
func (s *DefaultState) Peek() (string, bool) {
	if s.pos+1 < len(s.args) {
		return s.args[s.pos+1], true
	}

	return "", false
}

// Len returns the length of the token list
func (s *DefaultState) Len() int {
	return len(s.args)
}

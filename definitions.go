package argue

import (
	"fmt"
	"io"

	"github.com/napalu/argue/errs"
	"github.com/napalu/argue/i18n"
	orderedmap "github.com/wk8/go-ordered-map"
	"golang.org/x/text/language"
)

// Binding connects a Flag to the caller-owned variable it writes to. Bindings are created with
// Switch, Int, Uint, Float, String, Duration, Time or Bind.
type Binding interface {
	// Interprets reports whether the flag expects a value token. When false the flag is a
	// presence switch and Interpret is called with an empty value.
	Interprets() bool
	// Interpret converts value and writes the result to the destination. The destination is
	// left untouched when an error is returned.
	Interpret(bin, flag, value string) error
	// Bound reports whether the binding has a destination to write to
	Bound() bool
}

// Flag describes a recognized command-line flag. Name is the long form matched by --Name and
// Short the optional short form matched by -Short.
type Flag struct {
	Name        string
	Short       string
	Description string
	Bind        Binding
}

// ArgConfig is the contract positional arguments are checked against. When Required is set at
// least one positional argument must be given. Unless Variadic is set at most one is allowed.
type ArgConfig struct {
	Name        string
	Description string
	Required    bool
	Variadic    bool
}

// ConfigureParserFunc is used when defining Parser options
type ConfigureParserFunc func(p *Parser, err *error)

// Parser holds a flag table, a positional argument contract and the writers diagnostics go
// to. A Parser is never modified by Parse and may be shared between goroutines as long as each
// concurrent Parse call binds its own destinations.
type Parser struct {
	description string
	flags       []Flag
	args        *ArgConfig
	stdout      io.Writer
	stderr      io.Writer
	bundle      *i18n.Bundle
	lang        language.Tag
}

// ErrHelp is returned by Parse when help was requested, explicitly through --help or -h or
// implicitly by an invocation without arguments. The help text has already been written.
var ErrHelp = errs.ErrHelpRequested

// ContractError describes a malformed flag table. It is raised with panic, never returned:
// a malformed table is a bug in the calling program, not bad input. Recovering from it is
// unsupported; the program is expected to abort and the table to be fixed.
type ContractError struct {
	Caller string // file:line of the call which triggered validation
	Index  int
	Name   string
	Err    error
}

func (e *ContractError) Error() string {
	return fmt.Sprintf("[PANIC] %s: %v", e.Caller, e.Err)
}

func (e *ContractError) Unwrap() error {
	return e.Err
}

// flagTable indexes a validated flag list. long preserves declaration order.
type flagTable struct {
	long  *orderedmap.OrderedMap
	short map[string]*Flag
}

package argue

import (
	"errors"
	"fmt"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/napalu/argue/errs"
	"github.com/napalu/argue/i18n"
	"github.com/napalu/argue/internal/util"
	"github.com/napalu/argue/parse"
	"github.com/napalu/argue/types"
	"github.com/napalu/argue/types/queue"
	orderedmap "github.com/wk8/go-ordered-map"
)

// validateFlags checks the flag table and indexes it. Checks run in order: anonymous flags,
// duplicate names, short names shadowing another flag's long name, missing destinations. Any violation panics with a
// *ContractError.
func validateFlags(flags []Flag) *flagTable {
	for i := range flags {
		if flags[i].Name == "" {
			violation(i, "", errs.ErrEmptyFlag.WithArgs(i))
		}
	}

	table := &flagTable{
		long:  orderedmap.New(),
		short: make(map[string]*Flag, len(flags)),
	}
	for i := range flags {
		f := &flags[i]
		if _, found := table.long.Get(f.Name); found {
			violation(i, f.Name, errs.ErrFlagAlreadyExists.WithArgs(i, f.Name))
		}
		table.long.Set(f.Name, f)

		if f.Short == "" {
			continue
		}
		if _, found := table.short[f.Short]; found {
			violation(i, f.Name, errs.ErrShortFlagConflict.WithArgs(i, f.Name, f.Short))
		}
		table.short[f.Short] = f
	}

	for i := range flags {
		f := &flags[i]
		if f.Short == "" || f.Short == f.Name {
			continue
		}
		if v, found := table.long.Get(f.Short); found {
			violation(i, f.Name, errs.ErrShortLongConflict.WithArgs(i, f.Name, f.Short, v.(*Flag).Name))
		}
	}

	for i := range flags {
		if flags[i].Bind == nil || !flags[i].Bind.Bound() {
			violation(i, flags[i].Name, errs.ErrBindNil.WithArgs(i, flags[i].Name))
		}
	}

	return table
}

func violation(index int, name string, err error) {
	panic(&ContractError{
		Caller: callerLocation(),
		Index:  index,
		Name:   name,
		Err:    err,
	})
}

// callerLocation returns file:line of the first frame outside this package's non-test sources
func callerLocation() string {
	_, self, _, ok := runtime.Caller(0)
	if !ok {
		return "unknown"
	}
	pkgDir := filepath.Dir(self)

	pc := make([]uintptr, 32)
	frames := runtime.CallersFrames(pc[:runtime.Callers(2, pc)])
	for {
		frame, more := frames.Next()
		if filepath.Dir(frame.File) != pkgDir || strings.HasSuffix(frame.File, "_test.go") {
			return fmt.Sprintf("%s:%d", filepath.Base(frame.File), frame.Line)
		}
		if !more {
			return "unknown"
		}
	}
}

// resolve finds the flag registered under key. A validated table never has a key that is both a
// long and a short name of different flags.
func (t *flagTable) resolve(key string) (*Flag, bool) {
	if v, found := t.long.Get(key); found {
		return v.(*Flag), true
	}
	f, found := t.short[key]

	return f, found
}

// each calls fn for every flag in declaration order
func (t *flagTable) each(fn func(f *Flag)) {
	for pair := t.long.Oldest(); pair != nil; pair = pair.Next() {
		fn(pair.Value.(*Flag))
	}
}

// helpRequested reports whether any token strips to "help" or "h". Positional tokens count
// too: they strip to themselves.
func helpRequested(tokens []string) bool {
	for _, token := range tokens {
		if key := parse.StripPrefix(token); key == "help" || key == "h" {
			return true
		}
	}

	return false
}

// sortTokens partitions tokens into flag occurrences and positional arguments, both in input
// order. A flag expecting a value consumes the following token unless that token is itself a
// flag. Scanning stops at the first unknown flag.
func sortTokens(tokens []string, table *flagTable) (*queue.Q[types.Occurrence], []string, error) {
	var (
		state       = parse.NewState(tokens)
		occurrences = queue.New[types.Occurrence]()
		positionals = make([]string, 0, len(tokens))
	)

	for state.Advance() {
		token := state.CurrentArg()
		if !parse.IsFlag(token) {
			positionals = append(positionals, token)
			continue
		}

		key := parse.StripPrefix(token)
		flag, found := table.resolve(key)
		if !found {
			return nil, nil, &FlagDoesNotExistError{Key: key}
		}

		occurrence := types.Occurrence{Key: key}
		if flag.Bind.Interprets() {
			if next, ok := state.Peek(); ok && !parse.IsFlag(next) {
				occurrence.Value = next
				occurrence.HasValue = true
				state.Skip()
			}
		}
		occurrences.Enqueue(occurrence)
	}

	return occurrences, positionals, nil
}

// enforceArity checks positionals against contract. A nil contract accepts zero or one
// positional argument.
func enforceArity(positionals []string, contract *ArgConfig) error {
	var c ArgConfig
	if contract != nil {
		c = *contract
	}

	switch {
	case !c.Variadic && len(positionals) > 1:
		return &ArgsTooManyError{Count: len(positionals)}
	case c.Required && len(positionals) == 0:
		return &ArgsMissingValueError{}
	}

	return nil
}

// evaluate applies occurrences in queue order and stops at the first failure. Destinations
// written before the failure keep their new values.
func evaluate(bin string, occurrences *queue.Q[types.Occurrence], table *flagTable) error {
	for occurrences.Len() > 0 {
		occurrence, _ := occurrences.Dequeue()
		flag, _ := table.resolve(occurrence.Key)

		if flag.Bind.Interprets() && !occurrence.HasValue {
			return &FlagMissingValueError{Flag: flag}
		}
		if err := flag.Bind.Interpret(bin, flag.Name, occurrence.Value); err != nil {
			return &ParseFnError{Flag: flag, Value: occurrence.Value, Err: err}
		}
	}

	return nil
}

// programName returns the last path segment of argv[0]
func programName(argv []string) string {
	if len(argv) == 0 || argv[0] == "" {
		return ""
	}

	return filepath.Base(argv[0])
}

// report writes a one-line diagnostic for err, prefixed with the program name
func (p *Parser) report(bin string, err error) {
	_, _ = fmt.Fprintf(p.stderr, "%s %s\n", util.ErrorLabel(p.stderr, bin+":"), p.translate(err))
}

func (p *Parser) translate(err error) string {
	var pe ParseError
	if errors.As(err, &pe) {
		return pe.translatable().Translate(p.bundle, p.lang)
	}

	var te i18n.TranslatableError
	if errors.As(err, &te) {
		return te.Translate(p.bundle, p.lang)
	}

	return err.Error()
}

package argue

import (
	"errors"

	"github.com/napalu/argue/errs"
	"github.com/napalu/argue/i18n"
)

// ErrorKind identifies the kind of a ParseError
type ErrorKind int

const (
	KindFlagDoesNotExist ErrorKind = iota + 1
	KindFlagMissingValue
	KindParseFnFail
	KindArgsTooMany
	KindArgsMissingValue
)

// String returns the string representation of an ErrorKind
func (k ErrorKind) String() string {
	switch k {
	case KindFlagDoesNotExist:
		return "FlagDoesNotExist"
	case KindFlagMissingValue:
		return "FlagMissingValue"
	case KindParseFnFail:
		return "ParseFnFail"
	case KindArgsTooMany:
		return "ArgsTooMany"
	case KindArgsMissingValue:
		return "ArgsMissingValue"
	}

	return "Unknown"
}

// ParseError is the closed set of errors Parse reports for bad user input: FlagDoesNotExistError,
// FlagMissingValueError, ParseFnError, ArgsTooManyError and ArgsMissingValueError. Each one
// unwraps to the matching errs sentinel.
type ParseError interface {
	error
	Kind() ErrorKind
	translatable() i18n.TranslatableError
}

// FlagDoesNotExistError is returned for a flag token whose key matches no Flag
type FlagDoesNotExistError struct {
	Key string
}

func (e *FlagDoesNotExistError) Kind() ErrorKind { return KindFlagDoesNotExist }
func (e *FlagDoesNotExistError) Error() string { return e.translatable().Error() }
func (e *FlagDoesNotExistError) Unwrap() error { return e.translatable() }

func (e *FlagDoesNotExistError) translatable() i18n.TranslatableError {
	return errs.ErrFlagDoesNotExist.WithArgs(e.Key)
}

// FlagMissingValueError is returned when a flag expecting a value is last on the command line
// or directly followed by another flag
type FlagMissingValueError struct {
	Flag *Flag
}

func (e *FlagMissingValueError) Kind() ErrorKind { return KindFlagMissingValue }
func (e *FlagMissingValueError) Error() string { return e.translatable().Error() }
func (e *FlagMissingValueError) Unwrap() error { return e.translatable() }

func (e *FlagMissingValueError) translatable() i18n.TranslatableError {
	return errs.ErrFlagMissingValue.WithArgs(e.Flag.Name)
}

// ParseFnError is returned when a flag's interpreter rejects its value. Err is the error the
// interpreter returned.
type ParseFnError struct {
	Flag  *Flag
	Value string
	Err   error
}

func (e *ParseFnError) Kind() ErrorKind { return KindParseFnFail }
func (e *ParseFnError) Error() string { return e.translatable().Error() }
func (e *ParseFnError) Unwrap() error { return e.translatable() }

func (e *ParseFnError) translatable() i18n.TranslatableError {
	return errs.ErrParseFnFail.WithArgs(e.Value, e.Flag.Name).Wrap(e.Err)
}

// ArgsTooManyError is returned when more than one positional argument is given to a
// non-variadic contract
type ArgsTooManyError struct {
	Count int
}

func (e *ArgsTooManyError) Kind() ErrorKind { return KindArgsTooMany }
func (e *ArgsTooManyError) Error() string { return e.translatable().Error() }
func (e *ArgsTooManyError) Unwrap() error { return e.translatable() }

func (e *ArgsTooManyError) translatable() i18n.TranslatableError {
	return errs.ErrArgsTooMany.WithArgs(e.Count)
}

// ArgsMissingValueError is returned when a required contract receives no positional argument
type ArgsMissingValueError struct{}

func (e *ArgsMissingValueError) Kind() ErrorKind { return KindArgsMissingValue }
func (e *ArgsMissingValueError) Error() string { return e.translatable().Error() }
func (e *ArgsMissingValueError) Unwrap() error { return e.translatable() }

func (e *ArgsMissingValueError) translatable() i18n.TranslatableError {
	return errs.ErrArgsMissingValue
}

// ExitCode maps the error returned by Parse to a process exit code: 0 on success or when help
// was shown, 1 otherwise
func ExitCode(err error) int {
	if err == nil || errors.Is(err, ErrHelp) {
		return 0
	}

	return 1
}

package argue

import (
	"time"

	"github.com/napalu/argue/internal/util"
	"github.com/napalu/argue/types"
)

// InterpretFunc converts value and stores the result in dest. bin is the program's base name
// and flag the long name of the flag being evaluated.
type InterpretFunc[T any] func(dest *T, bin, flag, value string) error

type valueBinding[T any] struct {
	dest *T
	fn   InterpretFunc[T]
}

func (b *valueBinding[T]) Interprets() bool {
	return true
}

func (b *valueBinding[T]) Interpret(bin, flag, value string) error {
	return b.fn(b.dest, bin, flag, value)
}

func (b *valueBinding[T]) Bound() bool {
	return b.dest != nil && b.fn != nil
}

type switchBinding struct {
	dest *bool
}

func (b *switchBinding) Interprets() bool {
	return false
}

func (b *switchBinding) Interpret(string, string, string) error {
	*b.dest = true
	return nil
}

func (b *switchBinding) Bound() bool {
	return b.dest != nil
}

// Bind binds dest to a caller-supplied interpreter. A nil fn is reported like a nil dest.
func Bind[T any](dest *T, fn InterpretFunc[T]) Binding {
	return &valueBinding[T]{dest: dest, fn: fn}
}

// Switch binds a presence flag: dest is set to true when the flag is seen and left alone
// otherwise. A switch never consumes a value token.
func Switch(dest *bool) Binding {
	return &switchBinding{dest: dest}
}

// Int binds a signed integer flag
func Int[T types.Signed](dest *T) Binding {
	return Bind(dest, func(d *T, _, _, value string) error {
		return store(d, value, util.ParseSigned[T])
	})
}

// Uint binds an unsigned integer flag
func Uint[T types.Unsigned](dest *T) Binding {
	return Bind(dest, func(d *T, _, _, value string) error {
		return store(d, value, util.ParseUnsigned[T])
	})
}

// Float binds a floating point flag
func Float[T types.Float](dest *T) Binding {
	return Bind(dest, func(d *T, _, _, value string) error {
		return store(d, value, util.ParseFloat[T])
	})
}

// String binds a string flag. Conversion never fails.
func String(dest *string) Binding {
	return Bind(dest, func(d *string, _, _, value string) error {
		*d = value
		return nil
	})
}

// Duration binds a flag parsed with time.ParseDuration
func Duration(dest *time.Duration) Binding {
	return Bind(dest, func(d *time.Duration, _, _, value string) error {
		return store(d, value, util.ParseDuration)
	})
}

// Time binds a date/time flag. Most common layouts are recognized; times without a zone are
// interpreted in the local time zone.
func Time(dest *time.Time) Binding {
	return Bind(dest, func(d *time.Time, _, _, value string) error {
		return store(d, value, util.ParseTime)
	})
}

func store[T any](dest *T, value string, convert func(string) (T, error)) error {
	v, err := convert(value)
	if err != nil {
		return err
	}
	*dest = v

	return nil
}

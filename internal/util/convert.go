package util

import (
	"errors"
	"reflect"
	"strconv"
	"time"

	"github.com/araddon/dateparse"
	"github.com/napalu/argue/errs"
	"github.com/napalu/argue/types"
)

// ParseSigned converts value to T. The whole of value must be a base 10 integer
// (errs.ErrWrongFormat) which fits in T (errs.ErrOutOfRange).
func ParseSigned[T types.Signed](value string) (T, error) {
	var zero T
	t := reflect.TypeOf(zero)
	n, err := strconv.ParseInt(value, 10, t.Bits())
	if err != nil {
		return zero, numericError(err, value, t)
	}

	return T(n), nil
}

// ParseUnsigned converts value to T with the same semantics as ParseSigned
func ParseUnsigned[T types.Unsigned](value string) (T, error) {
	var zero T
	t := reflect.TypeOf(zero)
	n, err := strconv.ParseUint(value, 10, t.Bits())
	if err != nil {
		return zero, numericError(err, value, t)
	}

	return T(n), nil
}

// ParseFloat converts value to T. As for integers, a value which is not entirely a number is
// errs.ErrWrongFormat and a value whose magnitude exceeds T is errs.ErrOutOfRange.
func ParseFloat[T types.Float](value string) (T, error) {
	var zero T
	t := reflect.TypeOf(zero)
	f, err := strconv.ParseFloat(value, t.Bits())
	if err != nil {
		return zero, numericError(err, value, t)
	}

	return T(f), nil
}

// ParseDuration converts value using time.ParseDuration
func ParseDuration(value string) (time.Duration, error) {
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, errs.ErrWrongFormat.WithArgs(value, "duration")
	}

	return d, nil
}

// ParseTime converts value to a time in the local time zone. Any layout recognized by
// dateparse is accepted.
func ParseTime(value string) (time.Time, error) {
	t, err := dateparse.ParseLocal(value)
	if err != nil {
		return time.Time{}, errs.ErrWrongFormat.WithArgs(value, "time")
	}

	return t, nil
}

func numericError(err error, value string, t reflect.Type) error {
	var numErr *strconv.NumError
	if errors.As(err, &numErr) && errors.Is(numErr.Err, strconv.ErrRange) {
		return errs.ErrOutOfRange.WithArgs(value, t.String())
	}

	return errs.ErrWrongFormat.WithArgs(value, t.String())
}

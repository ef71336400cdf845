// Package types provides common type definitions for argue.
package types

// Signed is satisfied by the signed integer types a flag may be bound to
type Signed interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64
}

// Unsigned is satisfied by the unsigned integer types a flag may be bound to
type Unsigned interface {
	~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Float is satisfied by the floating point types a flag may be bound to
type Float interface {
	~float32 | ~float64
}

// Occurrence is one flag matched on the command line together with the token consumed as its
// value. HasValue is false when no value token followed a flag which expects one, and always
// false for presence flags.
type Occurrence struct {
	Key      string
	Value    string
	HasValue bool
}

package gma

import (
	"errors"
	"fmt"
)

// ErrUnsupported is returned when the coefficient type lacks a capability
// an operation needs.
var ErrUnsupported = errors.New("gma: operation unsupported by coefficient type")

// ErrNotInvertible indicates a multivector whose squared norm has a zero
// scalar part.
//
// The underlying field error can be accessed via errors.Unwrap.
type ErrNotInvertible struct {
	NormSquared string
	cause       error
}

func (e *ErrNotInvertible) Error() string {
	return fmt.Sprintf("gma: multivector not invertible, squared norm %s", e.NormSquared)
}

func (e *ErrNotInvertible) Unwrap() error { return e.cause }

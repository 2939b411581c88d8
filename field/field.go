// Package field defines the coefficient contract of multivectors and provides
// floating point and exact rational implementations.
//
// A coefficient type T is any value type satisfying Scalar[T] whose zero
// value is the additive identity. Implementations never mutate a receiver or
// argument, so values may be shared freely between goroutines.
package field

import "errors"

var (
	// ErrDivisionByZero is returned when inverting the additive identity.
	ErrDivisionByZero = errors.New("field: division by zero")

	// ErrNegativeSqrt is returned by Float.Sqrt for negative values.
	ErrNegativeSqrt = errors.New("field: square root of negative value")

	// ErrNotPerfectSquare is returned by Rat.Sqrt when the root is irrational.
	ErrNotPerfectSquare = errors.New("field: not a perfect square")
)

// Scalar is field-like arithmetic over T.
type Scalar[T any] interface {
	Add(T) T
	Mul(T) T
	Neg() T

	// Inv returns the multiplicative inverse or ErrDivisionByZero.
	Inv() (T, error)

	IsZero() bool
	Equal(T) bool

	// Simplify canonicalizes equal values to the same representation;
	// identity for numeric types.
	Simplify() T

	// FromInt converts n to T; the receiver is only used for its type.
	FromInt(n int64) T

	String() string
}

// Rooter is implemented by scalars with a square root.
type Rooter[T any] interface {
	Sqrt() (T, error)
}

// Floater is implemented by scalars that may be approximated by a float64;
// ok is false when no numeric value exists, e.g. for free symbols.
type Floater interface {
	Float64() (x float64, ok bool)
}

// Zero returns the additive identity of T.
func Zero[T Scalar[T]]() T {
	var z T
	return z
}

// One returns the multiplicative identity of T.
func One[T Scalar[T]]() T {
	return Int[T](1)
}

// Int converts n to T.
func Int[T Scalar[T]](n int64) T {
	var z T
	return z.FromInt(n)
}

// Sub returns a - b.
func Sub[T Scalar[T]](a, b T) T {
	return a.Add(b.Neg())
}

// Pow returns x**n by repeated squaring; negative n inverts x first.
func Pow[T Scalar[T]](x T, n int) (T, error) {
	if n < 0 {
		inv, err := x.Inv()
		if err != nil {
			return inv, err
		}
		x, n = inv, -n
	}
	r := One[T]()
	for ; n > 0; n >>= 1 {
		if n&1 == 1 {
			r = r.Mul(x)
		}
		if n > 1 {
			x = x.Mul(x)
		}
	}
	return r, nil
}

package field

import "math/big"

// Rat is an exact rational coefficient. The zero value is 0.
type Rat struct {
	r *big.Rat
}

// NewRat returns a/b; panics if b is zero.
func NewRat(a, b int64) Rat {
	return Rat{big.NewRat(a, b)}
}

// RatInt returns n as a Rat.
func RatInt(n int64) Rat {
	return Rat{new(big.Rat).SetInt64(n)}
}

// RatOf copies x; nil is 0.
func RatOf(x *big.Rat) Rat {
	if x == nil {
		return Rat{}
	}
	return Rat{new(big.Rat).Set(x)}
}

var ratZero big.Rat

func (a Rat) rat() *big.Rat {
	if a.r == nil {
		return &ratZero
	}
	return a.r
}

// Big returns a copy of the underlying value.
func (a Rat) Big() *big.Rat { return new(big.Rat).Set(a.rat()) }

func (a Rat) Add(b Rat) Rat { return Rat{new(big.Rat).Add(a.rat(), b.rat())} }
func (a Rat) Mul(b Rat) Rat { return Rat{new(big.Rat).Mul(a.rat(), b.rat())} }
func (a Rat) Neg() Rat { return Rat{new(big.Rat).Neg(a.rat())} }

func (a Rat) Inv() (Rat, error) {
	if a.IsZero() {
		return Rat{}, ErrDivisionByZero
	}
	return Rat{new(big.Rat).Inv(a.rat())}, nil
}

func (a Rat) IsZero() bool { return a.rat().Sign() == 0 }
func (a Rat) Equal(b Rat) bool { return a.rat().Cmp(b.rat()) == 0 }
func (a Rat) Simplify() Rat { return a }
func (Rat) FromInt(n int64) Rat { return RatInt(n) }
func (a Rat) String() string { return a.rat().RatString() }

func (a Rat) Float64() (float64, bool) {
	x, _ := a.rat().Float64()
	return x, true
}

// Sqrt is exact; ErrNotPerfectSquare when numerator or denominator is not a
// perfect square.
func (a Rat) Sqrt() (Rat, error) {
	r := a.rat()
	if r.Sign() < 0 {
		return Rat{}, ErrNegativeSqrt
	}
	num, ok := isqrt(r.Num())
	if !ok {
		return Rat{}, ErrNotPerfectSquare
	}
	den, ok := isqrt(r.Denom())
	if !ok {
		return Rat{}, ErrNotPerfectSquare
	}
	return Rat{new(big.Rat).SetFrac(num, den)}, nil
}

func isqrt(x *big.Int) (*big.Int, bool) {
	s := new(big.Int).Sqrt(x)
	return s, new(big.Int).Mul(s, s).Cmp(x) == 0
}

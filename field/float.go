package field

import (
	"math"
	"strconv"
)

// Float is a float64 coefficient; equality and zero tests are exact.
type Float float64

func (a Float) Add(b Float) Float { return a + b }
func (a Float) Mul(b Float) Float { return a * b }
func (a Float) Neg() Float { return -a }

func (a Float) Inv() (Float, error) {
	if a == 0 {
		return 0, ErrDivisionByZero
	}
	return 1 / a, nil
}

func (a Float) IsZero() bool { return a == 0 }
func (a Float) Equal(b Float) bool { return a == b }
func (a Float) Simplify() Float { return a }
func (Float) FromInt(n int64) Float { return Float(n) }
func (a Float) Float64() (float64, bool) { return float64(a), true }

func (a Float) Sqrt() (Float, error) {
	if a < 0 {
		return 0, ErrNegativeSqrt
	}
	return Float(math.Sqrt(float64(a))), nil
}

func (a Float) String() string {
	return strconv.FormatFloat(float64(a), 'g', -1, 64)
}

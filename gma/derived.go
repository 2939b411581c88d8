package gma

import (
	"math"

	"dasa.cc/ga/field"
)

// gradeSum returns the sum over grade pairs (x, y) of a and b of the grade
// pick(x, y) part of their product; pairs with ok false are skipped.
func gradeSum[T field.Scalar[T]](a, b Multivector[T], pick func(x, y int) (r int, ok bool)) Multivector[T] {
	m := make(map[Blade]T)
	for _, x := range a.Grades() {
		ax := a.Grade(x)
		for _, y := range b.Grades() {
			if r, ok := pick(x, y); ok {
				accumulate(m, ax.Mul(b.Grade(y)).Grade(r).m)
			}
		}
	}
	return build(m)
}

// Dot returns the inner product; for each pair of grades x, y the grade |x-y|
// part of the product.
func (a Multivector[T]) Dot(b Multivector[T]) Multivector[T] {
	return gradeSum(a, b, func(x, y int) (int, bool) {
		if x > y {
			return x - y, true
		}
		return y - x, true
	})
}

// Wedge returns the outer product; for each pair of grades x, y the grade x+y
// part of the product. Zero for dependent factors.
func (a Multivector[T]) Wedge(b Multivector[T]) Multivector[T] {
	return gradeSum(a, b, func(x, y int) (int, bool) { return x + y, true })
}

// LeftContraction returns the contraction of a onto b; for each pair of
// grades x <= y the grade y-x part of the product.
func (a Multivector[T]) LeftContraction(b Multivector[T]) Multivector[T] {
	return gradeSum(a, b, func(x, y int) (int, bool) { return y - x, x <= y })
}

// ScalarProduct returns the scalar part of ab.
func (a Multivector[T]) ScalarProduct(b Multivector[T]) T {
	return a.Mul(b).ScalarPart()
}

func (a Multivector[T]) signByGrade(sign func(r int) int) Multivector[T] {
	m := make(map[Blade]T, len(a.m))
	for b, x := range a.m {
		if sign(b.Grade()) < 0 {
			x = x.Neg()
		}
		m[b] = x
	}
	return build(m)
}

// Reverse reverses the order of vectors in every blade.
func (a Multivector[T]) Reverse() Multivector[T] {
	return a.signByGrade(func(r int) int { return reverseSign[r%4] })
}

// Involute negates odd grades.
func (a Multivector[T]) Involute() Multivector[T] {
	return a.signByGrade(func(r int) int { return involuteSign[r%2] })
}

// Conjugate returns the Clifford conjugate, the reverse of the involute.
func (a Multivector[T]) Conjugate() Multivector[T] {
	return a.Involute().Reverse()
}

// AbsSquared returns the simplified product of the reverse of a with a. For
// blades and sums of orthogonal blades this is a scalar.
func (a Multivector[T]) AbsSquared() Multivector[T] {
	return a.Reverse().Mul(a).Simplify()
}

// Abs returns the square root of the scalar part of AbsSquared; the
// coefficient type must implement field.Rooter.
func (a Multivector[T]) Abs() (T, error) {
	n := a.AbsSquared().ScalarPart()
	r, ok := any(n).(field.Rooter[T])
	if !ok {
		return field.Zero[T](), ErrUnsupported
	}
	return r.Sqrt()
}

// Inverse returns the reverse of a divided by the scalar part of its squared
// norm.
func (a Multivector[T]) Inverse() (Multivector[T], error) {
	n := a.AbsSquared().ScalarPart()
	inv, err := n.Inv()
	if err != nil {
		return Multivector[T]{}, &ErrNotInvertible{NormSquared: n.String(), cause: err}
	}
	return a.Reverse().Simplify().Scale(inv), nil
}

// Dual returns a times the inverse of the pseudoscalar of dimension g.
func (a Multivector[T]) Dual(g int) Multivector[T] {
	inv, err := Pseudoscalar[T](g).Inverse()
	if err != nil {
		// Euclidean pseudoscalars square to ±1
		panic(err)
	}
	return a.Mul(inv)
}

// ScalarIsCloseTo reports whether a is a scalar within a relative tolerance
// of 1e-9 of x. False if the coefficient type does not implement
// field.Floater or has no numeric value.
func (a Multivector[T]) ScalarIsCloseTo(x float64) bool {
	if a.MaxGrade() != 0 {
		return false
	}
	f, ok := any(a.ScalarPart()).(field.Floater)
	if !ok {
		return false
	}
	v, ok := f.Float64()
	if !ok {
		return false
	}
	return math.Abs(v-x) <= 1e-9*math.Max(math.Abs(v), math.Abs(x))
}

package gma

import (
	"fmt"
	"strings"
	"unicode"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"dasa.cc/ga/field"
	"dasa.cc/ga/set"
)

// Multivector is a weighted sum of blades. It is immutable; every operation
// returns a new value.
//
// Entries with a zero coefficient are pruned, except the scalar blade which
// is always present so ScalarPart is total. The zero value is the additive
// identity.
type Multivector[T field.Scalar[T]] struct {
	m map[Blade]T
}

// New returns a multivector of coefficients by blade; m is copied.
func New[T field.Scalar[T]](m map[Blade]T) Multivector[T] {
	c := make(map[Blade]T, len(m)+1)
	for b, x := range m {
		c[b] = x
	}
	return build(c)
}

// build normalizes m in place and takes ownership of it.
func build[T field.Scalar[T]](m map[Blade]T) Multivector[T] {
	for b, x := range m {
		if b != 0 && x.IsZero() {
			delete(m, b)
		}
	}
	if _, ok := m[0]; !ok {
		m[0] = field.Zero[T]()
	}
	return Multivector[T]{m}
}

// Scalar returns x as a grade 0 multivector.
func Scalar[T field.Scalar[T]](x T) Multivector[T] {
	return build(map[Blade]T{0: x})
}

// Zero returns the additive identity.
func Zero[T field.Scalar[T]]() Multivector[T] {
	return Scalar(field.Zero[T]())
}

// One returns the multiplicative identity.
func One[T field.Scalar[T]]() Multivector[T] {
	return Scalar(field.One[T]())
}

// Basis returns the unit vector e_i.
func Basis[T field.Scalar[T]](i int) Multivector[T] {
	checkIndex(i)
	return build(map[Blade]T{1 << (i - 1): field.One[T]()})
}

// Vector returns the sum of coefs[i] e_(i+1).
func Vector[T field.Scalar[T]](coefs ...T) Multivector[T] {
	if len(coefs) > MaxDim {
		panic(fmt.Sprintf("gma: %v coefficients exceed dimension %v", len(coefs), MaxDim))
	}
	m := make(map[Blade]T, len(coefs)+1)
	for i, x := range coefs {
		m[1<<i] = x
	}
	return build(m)
}

// Term returns coef e_indices[0] e_indices[1] ... for indices in any order
// and with repeats, canonicalized with the sign of the reordering.
func Term[T field.Scalar[T]](coef T, indices ...int) Multivector[T] {
	b, sign := Canonicalize(indices)
	if sign < 0 {
		coef = coef.Neg()
	}
	return build(map[Blade]T{b: coef})
}

// Pseudoscalar returns e1 e2 ... e_g; the product of no vectors is 1.
func Pseudoscalar[T field.Scalar[T]](g int) Multivector[T] {
	if g < 0 || g > MaxDim {
		panic(fmt.Sprintf("gma: pseudoscalar dimension %v out of range [0, %v]", g, MaxDim))
	}
	p := One[T]()
	for i := 1; i <= g; i++ {
		p = p.Mul(Basis[T](i))
	}
	return p
}

// PseudoscalarSquared returns Pseudoscalar(g) squared, always 1 or -1.
func PseudoscalarSquared[T field.Scalar[T]](g int) Multivector[T] {
	p := Pseudoscalar[T](g)
	return p.Mul(p)
}

// Sum returns the sum of xs; Zero if empty.
func Sum[T field.Scalar[T]](xs ...Multivector[T]) Multivector[T] {
	m := make(map[Blade]T)
	for _, x := range xs {
		accumulate(m, x.m)
	}
	return build(m)
}

func accumulate[T field.Scalar[T]](dst, src map[Blade]T) {
	for b, x := range src {
		if y, ok := dst[b]; ok {
			x = y.Add(x)
		}
		dst[b] = x
	}
}

func (a Multivector[T]) Add(b Multivector[T]) Multivector[T] {
	m := make(map[Blade]T, len(a.m)+len(b.m))
	accumulate(m, a.m)
	accumulate(m, b.m)
	return build(m)
}

func (a Multivector[T]) Sub(b Multivector[T]) Multivector[T] {
	return a.Add(b.Neg())
}

// Scale returns the geometric product of a and the scalar k.
func (a Multivector[T]) Scale(k T) Multivector[T] {
	return a.Mul(Scalar(k))
}

func (a Multivector[T]) Neg() Multivector[T] {
	return a.Scale(field.Int[T](-1))
}

// Coef returns the coefficient of blade b.
func (a Multivector[T]) Coef(b Blade) T {
	return a.m[b]
}

// ScalarPart returns the coefficient of the scalar blade.
func (a Multivector[T]) ScalarPart() T {
	return a.m[0]
}

// Blades returns the blades present, in ascending bitmap order; the scalar
// blade is always first.
func (a Multivector[T]) Blades() []Blade {
	bs := maps.Keys(a.m)
	if _, ok := a.m[0]; !ok {
		bs = append(bs, 0)
	}
	slices.Sort(bs)
	return bs
}

// Grade returns the r-vector part of a, containing only blades of grade r.
func (a Multivector[T]) Grade(r int) Multivector[T] {
	m := make(map[Blade]T)
	for b, x := range a.m {
		if b.Grade() == r {
			m[b] = x
		}
	}
	return build(m)
}

// Grades returns the distinct grades of a in ascending order, including
// grade 0 for the scalar entry.
func (a Multivector[T]) Grades() []int {
	var s set.Slice[int]
	for _, b := range a.Blades() {
		s.Insert(b.Grade())
	}
	return s
}

// MaxGrade returns the greatest grade of a; 0 for scalars.
func (a Multivector[T]) MaxGrade() int {
	s := set.Slice[int](a.Grades())
	r, _ := s.Max()
	return r
}

// Simplify applies the coefficient simplification to every entry.
func (a Multivector[T]) Simplify() Multivector[T] {
	m := make(map[Blade]T, len(a.m))
	for b, x := range a.m {
		m[b] = x.Simplify()
	}
	return build(m)
}

// Equal reports whether a and b have equal coefficients for every blade.
func (a Multivector[T]) Equal(b Multivector[T]) bool {
	for k, x := range a.m {
		if !x.Equal(b.m[k]) {
			return false
		}
	}
	for k, y := range b.m {
		if _, ok := a.m[k]; !ok && !y.IsZero() {
			return false
		}
	}
	return true
}

func (a Multivector[T]) String() string {
	var s strings.Builder
	for _, b := range a.Blades() {
		x := a.m[b]
		if x.IsZero() {
			continue
		}
		t := termString(b, x)
		switch {
		case s.Len() == 0:
			s.WriteString(t)
		case t[0] == '-':
			s.WriteString(" - ")
			s.WriteString(t[1:])
		default:
			s.WriteString(" + ")
			s.WriteString(t)
		}
	}
	if s.Len() == 0 {
		return "0"
	}
	return s.String()
}

func termString[T field.Scalar[T]](b Blade, x T) string {
	if b == 0 {
		return x.String()
	}
	one := field.One[T]()
	switch {
	case x.Equal(one):
		return b.String()
	case x.Neg().Equal(one):
		return "-" + b.String()
	}
	s := x.String()
	if strings.Contains(s, " ") || strings.Contains(s, "/") && strings.IndexFunc(s, unicode.IsLetter) >= 0 {
		s = "(" + s + ")"
	}
	return s + "*" + b.String()
}

// Package sym provides symbolic coefficients: rational functions of named
// variables with exact rational constants.
//
// Expr satisfies field.Scalar[Expr], so multivectors may carry symbolic
// coefficients such as a_x*b_y - a_y*b_x. Every operation reduces its result:
// a denominator dividing the numerator is cancelled and the remaining
// denominator is made monic. Equality is decided by cross-multiplication and
// is exact whether or not two values share a representation.
package sym

import (
	"fmt"
	"math/big"
	"strings"

	"dasa.cc/ga/field"
	"dasa.cc/ga/set"
)

var _ field.Scalar[Expr] = Expr{}

// Expr is num/den; the zero value is 0 and a zero den stands for 1.
type Expr struct {
	num, den Poly
}

// Var returns the variable name. Names must be non-empty and free of
// operator characters and spaces; Var panics otherwise.
func Var(name string) Expr {
	if name == "" || strings.ContainsAny(name, "*^/+-() \t\n") {
		panic(fmt.Sprintf("sym: invalid variable name %q", name))
	}
	return Expr{num: varPoly(name)}
}

// Vars returns Var(name) for each name.
func Vars(names ...string) []Expr {
	xs := make([]Expr, len(names))
	for i, s := range names {
		xs[i] = Var(s)
	}
	return xs
}

// Int returns the constant n.
func Int(n int64) Expr { return Expr{num: constPoly(big.NewRat(n, 1))} }

// Frac returns the constant a/b; panics if b is zero.
func Frac(a, b int64) Expr { return Expr{num: constPoly(big.NewRat(a, b))} }

// Const returns the constant x.
func Const(x *big.Rat) Expr { return Expr{num: constPoly(new(big.Rat).Set(x))} }

// Num returns the numerator.
func (e Expr) Num() Poly { return e.num }

// Den returns the denominator; 1 for polynomials.
func (e Expr) Den() Poly {
	if e.den.IsZero() {
		return onePoly
	}
	return e.den
}

// frac reduces num/den to lowest terms with a monic denominator; den must
// not be zero.
func frac(num, den Poly) Expr {
	if num.IsZero() {
		return Expr{}
	}
	if q, ok := num.Div(den); ok {
		return Expr{num: q}
	}
	if g := gcd(num, den); !g.isOne() {
		num, _ = num.Div(g)
		den, _ = den.Div(g)
	}
	if lc := den.lead().c; lc.Cmp(big.NewRat(1, 1)) != 0 {
		inv := new(big.Rat).Inv(lc)
		num, den = num.scale(inv), den.scale(inv)
	}
	if den.isOne() {
		return Expr{num: num}
	}
	return Expr{num: num, den: den}
}

// cancel divides n by d when d divides it, returning the remaining factors.
func cancel(n, d Poly) (Poly, Poly) {
	if d.isOne() {
		return n, d
	}
	if q, ok := n.Div(d); ok {
		return q, onePoly
	}
	return n, d
}

func (e Expr) Add(f Expr) Expr {
	d1, d2 := e.Den(), f.Den()
	if d1.Equal(d2) {
		return frac(e.num.Add(f.num), d1)
	}
	if k, ok := d2.Div(d1); ok {
		return frac(e.num.Mul(k).Add(f.num), d2)
	}
	if k, ok := d1.Div(d2); ok {
		return frac(e.num.Add(f.num.Mul(k)), d1)
	}
	return frac(e.num.Mul(d2).Add(f.num.Mul(d1)), d1.Mul(d2))
}

func (e Expr) Mul(f Expr) Expr {
	if e.IsZero() || f.IsZero() {
		return Expr{}
	}
	n1, d2 := cancel(e.num, f.Den())
	n2, d1 := cancel(f.num, e.Den())
	return frac(n1.Mul(n2), d1.Mul(d2))
}

func (e Expr) Neg() Expr {
	return Expr{num: e.num.Neg(), den: e.den}
}

func (e Expr) Inv() (Expr, error) {
	if e.IsZero() {
		return Expr{}, field.ErrDivisionByZero
	}
	return frac(e.Den(), e.num), nil
}

func (e Expr) IsZero() bool { return e.num.IsZero() }

func (e Expr) Equal(f Expr) bool {
	if e.den.IsZero() && f.den.IsZero() {
		return e.num.Equal(f.num)
	}
	return e.num.Mul(f.Den()).Equal(f.num.Mul(e.Den()))
}

// Simplify returns e in lowest terms with a monic denominator, so equal
// values share one representation. Arithmetic results are already in this
// form.
func (e Expr) Simplify() Expr {
	return frac(e.num, e.Den())
}

func (Expr) FromInt(n int64) Expr { return Int(n) }

// Float64 returns the value of a constant expression.
func (e Expr) Float64() (float64, bool) {
	n, ok := e.num.constant()
	if !ok {
		return 0, false
	}
	d, ok := e.Den().constant()
	if !ok {
		return 0, false
	}
	x, _ := new(big.Rat).Quo(n, d).Float64()
	return x, true
}

// Symbols returns the sorted variable names appearing in e.
func (e Expr) Symbols() []string {
	var s set.Slice[string]
	for _, p := range []Poly{e.num, e.den} {
		for _, t := range p.terms {
			for _, f := range t.m {
				s.Insert(f.name)
			}
		}
	}
	return s
}

func (e Expr) String() string {
	if e.den.IsZero() || e.den.isOne() {
		return e.num.String()
	}
	return group(e.num) + "/" + group(e.den)
}

// group parenthesizes p when it would not bind as a single factor.
func group(p Poly) string {
	s := p.String()
	if p.Len() > 1 || strings.Contains(s, "/") {
		return "(" + s + ")"
	}
	if t := p.lead(); len(t.m) > 1 || len(t.m) == 1 && t.c.Cmp(big.NewRat(1, 1)) != 0 && t.c.Cmp(big.NewRat(-1, 1)) != 0 {
		return "(" + s + ")"
	}
	return s
}

package sym

import (
	"math/big"

	"dasa.cc/ga/set"
)

// vars returns the sorted variable names of p.
func (p Poly) vars() set.Slice[string] {
	var s set.Slice[string]
	for _, t := range p.terms {
		for _, f := range t.m {
			s.Insert(f.name)
		}
	}
	return s
}

// without removes v from m and returns its exponent.
func (m monomial) without(v string) (monomial, int) {
	for i, f := range m {
		if f.name == v {
			n := make(monomial, 0, len(m)-1)
			n = append(n, m[:i]...)
			return append(n, m[i+1:]...), f.exp
		}
	}
	return m, 0
}

// coeffs returns p as a polynomial in v: the coefficient of v^k by k.
func (p Poly) coeffs(v string) map[int]Poly {
	cs := make(map[int]Poly)
	for _, t := range p.terms {
		m, k := t.m.without(v)
		c := cs[k]
		if c.terms == nil {
			c.terms = make(map[string]term)
		}
		accumulate(c.terms, m, t.c)
		cs[k] = c
	}
	return cs
}

// degree returns the highest power of v in p; 0 for the zero polynomial.
func (p Poly) degree(v string) int {
	d := 0
	for _, t := range p.terms {
		if _, k := t.m.without(v); k > d {
			d = k
		}
	}
	return d
}

func powPoly(v string, k int) Poly {
	if k == 0 {
		return onePoly
	}
	m := monomial{{v, k}}
	return Poly{map[string]term{m.key(): {m, big.NewRat(1, 1)}}}
}

// monic scales p so its greatest term has coefficient 1.
func (p Poly) monic() Poly {
	if p.IsZero() {
		return p
	}
	lc := p.lead().c
	if lc.Cmp(big.NewRat(1, 1)) == 0 {
		return p
	}
	return p.scale(new(big.Rat).Inv(lc))
}

// content returns the monic gcd of the coefficients of p in v.
func (p Poly) content(v string) Poly {
	var g Poly
	for _, c := range p.coeffs(v) {
		if g = gcd(g, c); g.isOne() {
			break
		}
	}
	return g
}

// primitive returns p divided by its content in v.
func (p Poly) primitive(v string) Poly {
	if p.IsZero() {
		return p
	}
	q, _ := p.Div(p.content(v))
	return q
}

// prem returns the pseudo-remainder of a by b in v; b must not be zero.
func prem(a, b Poly, v string) Poly {
	db := b.degree(v)
	lb := b.coeffs(v)[db]
	r := a
	for !r.IsZero() {
		dr := r.degree(v)
		if dr < db {
			break
		}
		t := r.coeffs(v)[dr].Mul(powPoly(v, dr-db))
		r = r.Mul(lb).Add(t.Mul(b).Neg())
	}
	return r
}

// gcd returns the monic greatest common divisor of p and q over the
// rationals; gcd(0, 0) is 0. Both are viewed as polynomials in their least
// variable with polynomial coefficients: contents recurse on fewer variables
// and primitive parts reduce by primitive pseudo-remainder sequence.
func gcd(p, q Poly) Poly {
	switch {
	case p.IsZero():
		return q.monic()
	case q.IsZero():
		return p.monic()
	}
	vs := p.vars()
	vs.Union(q.vars())
	if len(vs) == 0 {
		return onePoly
	}
	v := vs[0]

	cp, cq := p.content(v), q.content(v)
	c := gcd(cp, cq)
	p, _ = p.Div(cp)
	q, _ = q.Div(cq)
	if p.degree(v) < q.degree(v) {
		p, q = q, p
	}
	for !q.IsZero() {
		p, q = q, prem(p, q, v).primitive(v)
	}
	return c.Mul(p.primitive(v)).monic()
}

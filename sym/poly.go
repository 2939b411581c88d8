package sym

import (
	"math/big"
	"sort"
	"strconv"
	"strings"

	"golang.org/x/exp/maps"
)

// factor is a variable raised to a positive power.
type factor struct {
	name string
	exp  int
}

// monomial is a product of factors sorted by name; empty is 1.
type monomial []factor

func (m monomial) key() string {
	var b strings.Builder
	for i, f := range m {
		if i > 0 {
			b.WriteByte('*')
		}
		b.WriteString(f.name)
		if f.exp > 1 {
			b.WriteByte('^')
			b.WriteString(strconv.Itoa(f.exp))
		}
	}
	return b.String()
}

func (m monomial) mul(n monomial) monomial {
	p := make(monomial, 0, len(m)+len(n))
	i, j := 0, 0
	for i < len(m) && j < len(n) {
		switch {
		case m[i].name == n[j].name:
			p = append(p, factor{m[i].name, m[i].exp + n[j].exp})
			i, j = i+1, j+1
		case m[i].name < n[j].name:
			p = append(p, m[i])
			i++
		default:
			p = append(p, n[j])
			j++
		}
	}
	p = append(p, m[i:]...)
	return append(p, n[j:]...)
}

// div returns m/n if n divides m.
func (m monomial) div(n monomial) (monomial, bool) {
	var p monomial
	j := 0
	for _, f := range m {
		if j < len(n) && n[j].name < f.name {
			return nil, false
		}
		if j < len(n) && n[j].name == f.name {
			switch {
			case n[j].exp > f.exp:
				return nil, false
			case n[j].exp < f.exp:
				p = append(p, factor{f.name, f.exp - n[j].exp})
			}
			j++
			continue
		}
		p = append(p, f)
	}
	if j < len(n) {
		return nil, false
	}
	return p, true
}

// cmp orders monomials lexicographically with variables ranked by name.
func (m monomial) cmp(n monomial) int {
	i, j := 0, 0
	for i < len(m) && j < len(n) {
		switch {
		case m[i].name < n[j].name:
			return 1
		case m[i].name > n[j].name:
			return -1
		case m[i].exp != n[j].exp:
			if m[i].exp > n[j].exp {
				return 1
			}
			return -1
		}
		i, j = i+1, j+1
	}
	switch {
	case i < len(m):
		return 1
	case j < len(n):
		return -1
	}
	return 0
}

type term struct {
	m monomial
	c *big.Rat
}

// Poly is a multivariate polynomial with exact rational coefficients. The
// zero value is 0. Coefficients are never zero and never mutated once
// stored, so a Poly may be shared.
type Poly struct {
	terms map[string]term
}

func constPoly(c *big.Rat) Poly {
	if c.Sign() == 0 {
		return Poly{}
	}
	return Poly{map[string]term{"": {nil, c}}}
}

func varPoly(name string) Poly {
	m := monomial{{name, 1}}
	return Poly{map[string]term{m.key(): {m, big.NewRat(1, 1)}}}
}

var onePoly = constPoly(big.NewRat(1, 1))

func (p Poly) IsZero() bool { return len(p.terms) == 0 }

// Len returns the number of terms.
func (p Poly) Len() int { return len(p.terms) }

func (p Poly) isOne() bool { return p.Equal(onePoly) }

// constant returns the value of a polynomial with no variables.
func (p Poly) constant() (*big.Rat, bool) {
	switch len(p.terms) {
	case 0:
		return new(big.Rat), true
	case 1:
		if t, ok := p.terms[""]; ok {
			return t.c, true
		}
	}
	return nil, false
}

func (p Poly) clone(n int) map[string]term {
	ts := make(map[string]term, len(p.terms)+n)
	for k, t := range p.terms {
		ts[k] = t
	}
	return ts
}

// accumulate adds c*m into ts, pruning zeros.
func accumulate(ts map[string]term, m monomial, c *big.Rat) {
	k := m.key()
	if t, ok := ts[k]; ok {
		c = new(big.Rat).Add(t.c, c)
	}
	if c.Sign() == 0 {
		delete(ts, k)
		return
	}
	ts[k] = term{m, c}
}

func (p Poly) Add(q Poly) Poly {
	ts := p.clone(len(q.terms))
	for _, t := range q.terms {
		accumulate(ts, t.m, t.c)
	}
	return Poly{ts}
}

func (p Poly) Neg() Poly {
	return p.scale(big.NewRat(-1, 1))
}

func (p Poly) scale(c *big.Rat) Poly {
	if c.Sign() == 0 {
		return Poly{}
	}
	ts := make(map[string]term, len(p.terms))
	for k, t := range p.terms {
		ts[k] = term{t.m, new(big.Rat).Mul(t.c, c)}
	}
	return Poly{ts}
}

func (p Poly) Mul(q Poly) Poly {
	ts := make(map[string]term, len(p.terms)*len(q.terms))
	for _, a := range p.terms {
		for _, b := range q.terms {
			accumulate(ts, a.m.mul(b.m), new(big.Rat).Mul(a.c, b.c))
		}
	}
	return Poly{ts}
}

func (p Poly) Equal(q Poly) bool {
	if len(p.terms) != len(q.terms) {
		return false
	}
	for k, t := range p.terms {
		u, ok := q.terms[k]
		if !ok || t.c.Cmp(u.c) != 0 {
			return false
		}
	}
	return true
}

// lead returns the greatest term; p must not be zero.
func (p Poly) lead() term {
	var lt term
	first := true
	for _, t := range p.terms {
		if first || t.m.cmp(lt.m) > 0 {
			lt, first = t, false
		}
	}
	return lt
}

// Div returns p/q if q divides p exactly.
func (p Poly) Div(q Poly) (Poly, bool) {
	if q.IsZero() {
		return Poly{}, false
	}
	lq := q.lead()
	var quo Poly
	for r := p; !r.IsZero(); {
		lr := r.lead()
		m, ok := lr.m.div(lq.m)
		if !ok {
			return Poly{}, false
		}
		t := Poly{map[string]term{m.key(): {m, new(big.Rat).Quo(lr.c, lq.c)}}}
		quo = quo.Add(t)
		r = r.Add(t.Mul(q).Neg())
	}
	return quo, true
}

// sorted returns terms from greatest to least.
func (p Poly) sorted() []term {
	ts := maps.Values(p.terms)
	sort.Slice(ts, func(i, j int) bool { return ts[i].m.cmp(ts[j].m) > 0 })
	return ts
}

func (p Poly) String() string {
	if p.IsZero() {
		return "0"
	}
	var b strings.Builder
	for i, t := range p.sorted() {
		s := t.String()
		switch {
		case i == 0:
			b.WriteString(s)
		case s[0] == '-':
			b.WriteString(" - ")
			b.WriteString(s[1:])
		default:
			b.WriteString(" + ")
			b.WriteString(s)
		}
	}
	return b.String()
}

func (t term) String() string {
	if len(t.m) == 0 {
		return t.c.RatString()
	}
	switch {
	case t.c.Cmp(big.NewRat(1, 1)) == 0:
		return t.m.key()
	case t.c.Cmp(big.NewRat(-1, 1)) == 0:
		return "-" + t.m.key()
	}
	return t.c.RatString() + "*" + t.m.key()
}

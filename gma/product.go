package gma

import (
	"runtime"

	"golang.org/x/sync/errgroup"

	"dasa.cc/ga/field"
)

// parallelPairs is the number of blade pairs at which Mul fans out.
const parallelPairs = 4096

type entry[T field.Scalar[T]] struct {
	b Blade
	x T
}

// entries returns the nonzero entries of a in ascending blade order.
func (a Multivector[T]) entries() []entry[T] {
	es := make([]entry[T], 0, len(a.m))
	for _, b := range a.Blades() {
		if x := a.m[b]; !x.IsZero() {
			es = append(es, entry[T]{b, x})
		}
	}
	return es
}

// Mul returns the geometric product ab: every pair of blades is multiplied
// and the signed product of coefficients accumulated into the result blade.
func (a Multivector[T]) Mul(b Multivector[T]) Multivector[T] {
	l, r := a.entries(), b.entries()
	if len(l)*len(r) >= parallelPairs {
		return build(mulParallel(l, r, runtime.GOMAXPROCS(0)))
	}
	return build(mulInto(make(map[Blade]T), l, r))
}

func mulInto[T field.Scalar[T]](m map[Blade]T, l, r []entry[T]) map[Blade]T {
	for _, u := range l {
		for _, v := range r {
			b, sign := u.b.Mul(v.b)
			x := u.x.Mul(v.x)
			if sign < 0 {
				x = x.Neg()
			}
			if y, ok := m[b]; ok {
				x = y.Add(x)
			}
			m[b] = x
		}
	}
	return m
}

// mulParallel splits l into n chunks multiplied concurrently; partial sums
// are merged in chunk order.
func mulParallel[T field.Scalar[T]](l, r []entry[T], n int) map[Blade]T {
	if n < 1 {
		n = 1
	}
	size := (len(l) + n - 1) / n
	if size == 0 {
		return make(map[Blade]T)
	}
	parts := make([]map[Blade]T, (len(l)+size-1)/size)

	var g errgroup.Group
	g.SetLimit(n)
	for i := range parts {
		i := i
		lo, hi := i*size, (i+1)*size
		if hi > len(l) {
			hi = len(l)
		}
		g.Go(func() error {
			parts[i] = mulInto(make(map[Blade]T), l[lo:hi], r)
			return nil
		})
	}
	// workers never fail
	_ = g.Wait()

	m := parts[0]
	for _, p := range parts[1:] {
		accumulate(m, p)
	}
	return m
}

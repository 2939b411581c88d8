// Package set provides primitives for inserting distinct values into ordered sets.
package set

import (
	"sort"

	"golang.org/x/exp/constraints"
)

// Slice must be sorted in ascending order.
type Slice[T constraints.Ordered] []T

// Of returns the distinct values of xs as a sorted Slice.
func Of[T constraints.Ordered](xs ...T) Slice[T] {
	var a Slice[T]
	for _, x := range xs {
		a.Insert(x)
	}
	return a
}

// Insert x in place if not exists; returns x index and true if inserted.
func (a *Slice[T]) Insert(x T) (i int, ok bool) {
	i = a.search(x)
	if ok = i == len(*a) || (*a)[i] != x; ok {
		*a = append(*a, *new(T))
		copy((*a)[i+1:], (*a)[i:])
		(*a)[i] = x
	}
	return
}

// Has reports whether x is in the set.
func (a Slice[T]) Has(x T) bool {
	i := a.search(x)
	return i < len(a) && a[i] == x
}

// Union inserts every value of b; returns the number inserted.
func (a *Slice[T]) Union(b Slice[T]) (n int) {
	for _, x := range b {
		if _, ok := a.Insert(x); ok {
			n++
		}
	}
	return n
}

// Max returns the greatest value; false if empty.
func (a Slice[T]) Max() (T, bool) {
	if len(a) == 0 {
		return *new(T), false
	}
	return a[len(a)-1], true
}

func (a Slice[T]) search(x T) int {
	return sort.Search(len(a), func(i int) bool { return a[i] >= x })
}

// Filter sorts and removes duplicates in place without allocating.
func Filter[T constraints.Ordered](a *[]T) {
	b := Slice[T]((*a)[:0])
	for _, x := range *a {
		b.Insert(x)
	}
	*a = b
}

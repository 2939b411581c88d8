package gma

import "dasa.cc/ga/field"

// Project returns the projection onto m, v -> (v.m)m⁻¹. The inverse of m is
// computed once; an *ErrNotInvertible is returned if m has none.
func Project[T field.Scalar[T]](m Multivector[T]) (func(Multivector[T]) Multivector[T], error) {
	inv, err := m.Inverse()
	if err != nil {
		return nil, err
	}
	return func(v Multivector[T]) Multivector[T] {
		return v.Dot(m).Mul(inv)
	}, nil
}

// Reject returns the rejection from m, v -> (v^m)m⁻¹. For every v,
// Project(m)(v) + Reject(m)(v) equals v.
func Reject[T field.Scalar[T]](m Multivector[T]) (func(Multivector[T]) Multivector[T], error) {
	inv, err := m.Inverse()
	if err != nil {
		return nil, err
	}
	return func(v Multivector[T]) Multivector[T] {
		return v.Wedge(m).Mul(inv)
	}, nil
}

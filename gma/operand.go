package gma

import (
	"fmt"

	"dasa.cc/ga/field"
)

// Kind discriminates Operand values.
type Kind uint8

const (
	// KindNum is a machine integer literal.
	KindNum Kind = iota
	// KindCoef is a literal of the coefficient type, e.g. a symbol.
	KindCoef
	// KindMV is a multivector.
	KindMV
)

// Operand is a factor of a product: an integer, a coefficient or a
// multivector. Scalars are lifted to grade 0 multivectors so that a product
// with a scalar on either side is scalar multiplication.
type Operand[T field.Scalar[T]] struct {
	kind Kind
	n    int64
	x    T
	mv   Multivector[T]
}

// Num returns the integer literal n as an Operand.
func Num[T field.Scalar[T]](n int64) Operand[T] {
	return Operand[T]{kind: KindNum, n: n}
}

// Coef returns the coefficient literal x as an Operand.
func Coef[T field.Scalar[T]](x T) Operand[T] {
	return Operand[T]{kind: KindCoef, x: x}
}

// MV returns a as an Operand.
func MV[T field.Scalar[T]](a Multivector[T]) Operand[T] {
	return Operand[T]{kind: KindMV, mv: a}
}

func (o Operand[T]) Kind() Kind { return o.kind }

// Multivector lifts o to a multivector.
func (o Operand[T]) Multivector() Multivector[T] {
	switch o.kind {
	case KindNum:
		return Scalar(field.Int[T](o.n))
	case KindCoef:
		return Scalar(o.x)
	case KindMV:
		return o.mv
	}
	panic(fmt.Sprintf("gma: invalid operand kind %v", o.kind))
}

// Times returns the product a*o with o on the right.
func (a Multivector[T]) Times(o Operand[T]) Multivector[T] {
	return a.Mul(o.Multivector())
}

// RTimes returns the product o*a with o on the left.
func (a Multivector[T]) RTimes(o Operand[T]) Multivector[T] {
	return o.Multivector().Mul(a)
}

// Mul returns the product of operands, left to right.
func Mul[T field.Scalar[T]](xs ...Operand[T]) Multivector[T] {
	p := One[T]()
	for _, o := range xs {
		p = p.Times(o)
	}
	return p
}

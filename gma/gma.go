// Package gma provides geometric algebra over an n-dimensional Euclidean
// space with an orthonormal basis; every basis vector squares to +1.
//
// Multivectors are generic over their coefficient type, any
// field.Scalar[T]: field.Float, field.Rat and sym.Expr are provided.
package gma

/*

basic reminders, orthonormal basis

e₁e₁ = 1
e₁e₂ = -e₂e₁ = e₁^e₂

u = ae₁ + be₂
u(e₁e₂) = ae₁e₁e₂ + be₂e₁e₂
        = ae₂ - be₁e₂e₂
        = -be₁ + ae₂

(e₁e₂e₃)² = e₁e₂e₃e₁e₂e₃ = e₁e₂e₁e₂e₃e₃ = -e₁e₁e₂e₂ = -1

*/

import (
	"fmt"
	"math/bits"
	"strconv"
	"strings"
)

// MaxDim is the greatest supported dimension.
const MaxDim = 32

// Blade is a bitmap of orthonormal basis vectors; bit i-1 is set if e_i is a
// factor. The encoding is canonical: vectors are in ascending order without
// repeats. The zero Blade is the scalar blade.
type Blade uint32

const (
	E1 Blade = 1 << iota
	E2
	E3
	E4
	E5
	E6
	E7
	E8
)

// BladeOf returns the blade e_i e_j ... for strictly ascending indices.
// Panics if an index is out of range or the indices are not canonical;
// use Canonicalize for arbitrary products.
func BladeOf(indices ...int) Blade {
	var b Blade
	for i, x := range indices {
		checkIndex(x)
		if i > 0 && indices[i-1] >= x {
			panic(fmt.Sprintf("gma: blade indices %v not strictly ascending", indices))
		}
		b |= 1 << (x - 1)
	}
	return b
}

func checkIndex(i int) {
	if i < 1 || i > MaxDim {
		panic(fmt.Sprintf("gma: basis index %v out of range [1, %v]", i, MaxDim))
	}
}

// Grade returns the number of basis vectors of Blade.
func (a Blade) Grade() int {
	return bits.OnesCount32(uint32(a))
}

// Indices returns basis indices in ascending order.
func (a Blade) Indices() []int {
	xs := make([]int, 0, a.Grade())
	for x := uint32(a); x != 0; x &= x - 1 {
		xs = append(xs, bits.TrailingZeros32(x)+1)
	}
	return xs
}

// Mul returns the geometric product of blades ab as a blade and sign; the
// metric annihilates shared vectors.
func (a Blade) Mul(b Blade) (Blade, int) {
	return a ^ b, signOf(a, b)
}

func (a Blade) String() string {
	if a == 0 {
		return "1"
	}
	var s strings.Builder
	for _, x := range a.Indices() {
		s.WriteByte('e')
		s.WriteString(strconv.Itoa(x))
	}
	return s.String()
}

// signOf counts the transpositions needed to move every vector of b left
// past the vectors of a that follow it.
func signOf(a, b Blade) int {
	a = a >> 1
	n := 0
	for a != 0 {
		n += bits.OnesCount32(uint32(a & b))
		a = a >> 1
	}
	if n&1 == 0 {
		return 1
	}
	return -1
}

// Canonicalize sorts the product of basis vectors e_indices[0] e_indices[1] ...
// into a blade and returns the sign incurred. Each exchange of distinct
// neighbours flips the sign; equal neighbours annihilate in pairs. Panics if
// an index is out of range.
func Canonicalize(indices []int) (Blade, int) {
	sorted := make([]int, 0, len(indices))
	sign := 1
	// insert each index, right to left, into the sorted tail
	for i := len(indices) - 1; i >= 0; i-- {
		a := indices[i]
		checkIndex(a)
		j := 0
		for j < len(sorted) && sorted[j] < a {
			j++
		}
		if j&1 == 1 {
			sign = -sign
		}
		if j < len(sorted) && sorted[j] == a {
			sorted = append(sorted[:j], sorted[j+1:]...)
			continue
		}
		sorted = append(sorted, 0)
		copy(sorted[j+1:], sorted[j:])
		sorted[j] = a
	}
	var b Blade
	for _, x := range sorted {
		b |= 1 << (x - 1)
	}
	return b, sign
}

// reverseSign is (-1)**(r(r-1)/2) by r mod 4.
var reverseSign = [4]int{1, 1, -1, -1}

// involuteSign is (-1)**r by r mod 2.
var involuteSign = [2]int{1, -1}

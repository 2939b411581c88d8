package gma_test

import (
	"fmt"

	"dasa.cc/ga/field"
	"dasa.cc/ga/gma"
	"dasa.cc/ga/sym"
)

func Example() {
	e1, e2 := gma.Basis[field.Rat](1), gma.Basis[field.Rat](2)
	a := e1.Scale(field.RatInt(3)).Add(e2.Scale(field.RatInt(4)))
	c := e1.Scale(field.RatInt(-4)).Add(e2.Scale(field.RatInt(3)))

	fmt.Println(a)
	fmt.Println(a.Mul(a))
	fmt.Println(a.Dot(c))
	fmt.Println(a.Wedge(c))

	inv, err := a.Inverse()
	if err != nil {
		panic(err)
	}
	fmt.Println(inv)

	// Output:
	// 3*e1 + 4*e2
	// 25
	// 0
	// 25*e1e2
	// 3/25*e1 + 4/25*e2
}

func ExampleMultivector_Dual() {
	u := gma.Vector(sym.Vars("a_x", "a_y", "a_z")...)
	v := gma.Vector(sym.Vars("b_x", "b_y", "b_z")...)

	// the dual of the plane spanned by u and v is their cross product
	fmt.Println(u.Wedge(v).Dual(3))

	// Output:
	// (a_y*b_z - a_z*b_y)*e1 + (-a_x*b_z + a_z*b_x)*e2 + (a_x*b_y - a_y*b_x)*e3
}

func ExampleProject() {
	e1, e2 := gma.Basis[field.Rat](1), gma.Basis[field.Rat](2)
	a := gma.Vector(field.RatInt(3), field.RatInt(4))

	proj, err := gma.Project(e1.Add(e2))
	if err != nil {
		panic(err)
	}
	rej, err := gma.Reject(e1.Add(e2))
	if err != nil {
		panic(err)
	}
	fmt.Println(proj(a))
	fmt.Println(rej(a))
	fmt.Println(proj(a).Add(rej(a)))

	// Output:
	// 7/2*e1 + 7/2*e2
	// -1/2*e1 + 1/2*e2
	// 3*e1 + 4*e2
}

func ExampleCanonicalize() {
	b, sign := gma.Canonicalize([]int{3, 1, 2, 1})
	fmt.Println(b, sign)

	// Output:
	// e2e3 1
}

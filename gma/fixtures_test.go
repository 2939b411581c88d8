package gma

import "dasa.cc/ga/sym"

// symbolic vectors a = (a_x, a_y, a_z) and b = (b_x, b_y, b_z)
var (
	ax, ay, az = sym.Var("a_x"), sym.Var("a_y"), sym.Var("a_z")
	bx, by, bz = sym.Var("b_x"), sym.Var("b_y"), sym.Var("b_z")

	sx, sy, sz = Basis[sym.Expr](1), Basis[sym.Expr](2), Basis[sym.Expr](3)

	symVec2A = sx.Scale(ax).Add(sy.Scale(ay))
	symVec2B = sx.Scale(bx).Add(sy.Scale(by))

	symVec3A = Vector(ax, ay, az)
	symVec3B = Vector(bx, by, bz)
)

package main

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"golang.org/x/exp/slices"

	"dasa.cc/ga/field"
	"dasa.cc/ga/gma"
	"dasa.cc/ga/sym"
)

type mv = gma.Multivector[field.Rat]

// blades returns every blade of dimension n ordered by grade, then by mask.
func blades(n int) []gma.Blade {
	bs := make([]gma.Blade, 1<<n)
	for i := range bs {
		bs[i] = gma.Blade(i)
	}
	slices.SortFunc(bs, func(a, b gma.Blade) bool {
		if a.Grade() != b.Grade() {
			return a.Grade() < b.Grade()
		}
		return a < b
	})
	return bs
}

func unit(b gma.Blade) mv {
	return gma.New(map[gma.Blade]field.Rat{b: field.RatInt(1)})
}

// writeTable writes the Cayley table of dimension n to w, optionally
// followed by the reverse and the dual of each blade.
func writeTable(w io.Writer, n int, dual, reverse bool) error {
	bs := blades(n)
	us := make([]mv, len(bs))
	for i, b := range bs {
		us[i] = unit(b)
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	row := make([]string, len(bs)+1)
	row[0] = "*"
	for i, b := range bs {
		row[i+1] = b.String()
	}
	fmt.Fprintln(tw, strings.Join(row, "\t"))
	for i, a := range us {
		row[0] = bs[i].String()
		for j, b := range us {
			row[j+1] = a.Mul(b).String()
		}
		fmt.Fprintln(tw, strings.Join(row, "\t"))
	}

	if reverse {
		fmt.Fprintln(tw, "\nblade\treverse")
		for i, a := range us {
			fmt.Fprintf(tw, "%s\t%s\n", bs[i], a.Reverse())
		}
	}
	if dual {
		fmt.Fprintln(tw, "\nblade\tdual")
		for i, a := range us {
			fmt.Fprintf(tw, "%s\t%s\n", bs[i], a.Dual(n))
		}
	}
	return tw.Flush()
}

var errExpandDim = errors.New("expand needs a dimension of at least 1")

// writeExpansion writes the products of the general vectors
// a = a1*e1 + ... + an*en and b = b1*e1 + ... + bn*en to w.
func writeExpansion(w io.Writer, n int) error {
	if n < 1 {
		return errExpandDim
	}
	as, bs := make([]sym.Expr, n), make([]sym.Expr, n)
	for i := range as {
		as[i] = sym.Var(fmt.Sprintf("a%d", i+1))
		bs[i] = sym.Var(fmt.Sprintf("b%d", i+1))
	}
	a, b := gma.Vector(as...), gma.Vector(bs...)

	inv, err := a.Inverse()
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	for _, ln := range []struct {
		lbl string
		x   gma.Multivector[sym.Expr]
	}{
		{"a", a},
		{"b", b},
		{"a*b", a.Mul(b)},
		{"a.b", a.Dot(b)},
		{"a^b", a.Wedge(b)},
		{"|a|^2", a.AbsSquared()},
		{"a^-1", inv},
		{"dual(a^b)", a.Wedge(b).Dual(n)},
	} {
		fmt.Fprintf(tw, "%s\t= %s\n", ln.lbl, ln.x)
	}
	return tw.Flush()
}

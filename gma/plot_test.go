//go:build plot
// +build plot

package gma

import (
	"math"
	"path/filepath"
	"testing"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"

	"dasa.cc/ga/field"
)

type fmv = Multivector[field.Float]

func coord(a fmv, b Blade) float64 { return float64(a.Coef(b)) }

type plttr struct {
	*plot.Plot
	nlines int
}

func newplttr() *plttr {
	p := plot.New()
	p.X.Min, p.X.Max = -5, 5
	p.Y.Min, p.Y.Max = -5, 5
	p.Add(plotter.NewGrid())
	return &plttr{Plot: p}
}

func (p *plttr) addPlane(lbl string, u, v fmv) {
	w := u.Add(v)
	r, err := plotter.NewPolygon(plotter.XYs{
		{X: 0, Y: 0},
		{X: coord(u, E1), Y: coord(u, E2)},
		{X: coord(w, E1), Y: coord(w, E2)},
		{X: coord(v, E1), Y: coord(v, E2)},
	})
	if err != nil {
		panic(err)
	}
	r.Color = plotutil.Color(p.nlines)
	p.nlines++
	p.Add(r)
	p.Legend.Add(lbl, r)
}

func (p *plttr) addLine(lbl string, a fmv) {
	ln, err := plotter.NewLine(plotter.XYs{
		{X: 0, Y: 0},
		{X: coord(a, E1), Y: coord(a, E2)},
	})
	if err != nil {
		panic(err)
	}

	ln.LineStyle.Width = vg.Points(1)
	ln.LineStyle.Color = plotutil.Color(p.nlines)
	p.nlines++

	p.Add(ln)
	p.Legend.Add(lbl, ln)
}

func (p *plttr) save(t *testing.T, fname string) {
	fname = filepath.Join(t.TempDir(), fname)
	if err := p.Save(8*vg.Inch, 8*vg.Inch, fname); err != nil {
		t.Fatal(err)
	}
	t.Logf("wrote %s", fname)
}

const Degree = math.Pi / 180

// rotate returns RaR~ for the rotor R = cos(angle/2) - sin(angle/2)e1e2.
func rotate(t *testing.T, a fmv, angle float64) fmv {
	R := New(map[Blade]field.Float{
		0:       field.Float(math.Cos(angle / 2)),
		E1 | E2: field.Float(-math.Sin(angle / 2)),
	})
	t.Logf("   R: %s", R)
	t.Logf(" RR~: %s", R.Mul(R.Reverse()))
	res := R.Mul(a).Mul(R.Reverse())
	t.Logf("RaR~: %s", res)
	return res
}

func TestPlotRotate(t *testing.T) {
	p := newplttr()
	p.addLine("e1", Basis[field.Float](1))
	p.addLine("e2", Basis[field.Float](2))

	u := Vector[field.Float](3)
	p.addLine("u", u)
	v := rotate(t, u, 45*Degree)
	p.addLine("v", v)
	w := rotate(t, v, 45*Degree)
	p.addLine("w", w)

	if !u.Dot(u).ScalarIsCloseTo(float64(w.Dot(w).ScalarPart())) {
		t.Errorf("rotation changed length: |u|² = %s, |w|² = %s", u.Dot(u), w.Dot(w))
	}
	p.save(t, "rotate.png")
}

func TestPlotDecompose(t *testing.T) {
	p := newplttr()

	m := Vector[field.Float](1, 0.5)
	v := Vector[field.Float](1, 3)
	proj, err := Project(m)
	if err != nil {
		t.Fatal(err)
	}
	rej, err := Reject(m)
	if err != nil {
		t.Fatal(err)
	}

	p.addLine("m", m)
	p.addLine("v", v)
	p.addLine("v||m", proj(v))
	p.addLine("v⊥m", rej(v))
	p.addPlane("v||m ^ v⊥m", proj(v), rej(v))

	t.Logf("  v||m = %s", proj(v))
	t.Logf("  v⊥m = %s", rej(v))
	t.Logf("   sum = %s", proj(v).Add(rej(v)))
	p.save(t, "decompose.png")
}

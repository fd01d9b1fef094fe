package tactile

import (
	"testing"
)

func TestPointArithmetic(t *testing.T) {
	diff(t, Pt(0, 0).Translate(Vec(-10, 0)), Pt(-10, 0))
	diff(t, Pt(3, 4).Sub(Pt(1, 1)), Vec(2, 3))
	diff(t, Pt(0, 0).Midpoint(Pt(2, 4)), Pt(1, 2))
	diff(t, Pt(0, 0).Lerp(Pt(4, 8), 0.25), Pt(1, 2))
}

func TestPointDistance(t *testing.T) {
	p1 := Pt(0, 10)
	p2 := Pt(0, 5)
	if d := p1.Distance(p2); d != 5 {
		t.Errorf("got distance %v, want 5", d)
	}

	p3 := Pt(-11, 1)
	p4 := Pt(-7, -2)
	if d := p3.Distance(p4); d != 5 {
		t.Errorf("got distance %v, want 5", d)
	}
	if d := p3.DistanceSquared(p4); d != 25 {
		t.Errorf("got squared distance %v, want 25", d)
	}
}

func TestUnitSegmentSymmetries(t *testing.T) {
	p := Pt(0.3, 0.2)
	assertNear(t, p.Mirror(), Pt(0.7, 0.2), 1e-15)
	assertNear(t, p.HalfTurn(), Pt(0.7, -0.2), 1e-15)
	assertNear(t, p.Mirror().Mirror(), p, 1e-15)
	diff(t, Vec(-2, 1), Vec(1, 2).Perp())
	diff(t, Vec(5, -1), Lattice(2, -1, Vec(2, 0), Vec(-1, 1)))
}

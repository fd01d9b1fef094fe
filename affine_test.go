package tactile

import (
	"errors"
	"math"
	"testing"

	"golang.org/x/image/math/f64"
)

func assertNear(t *testing.T, p0 Point, p1 Point, epsilon float64) {
	t.Helper()
	if d := p1.Sub(p0).Hypot(); d > epsilon {
		t.Fatalf("got %s, expected %s", p0, p1)
	}
}

func affineAssertNear(t *testing.T, a0, a1 Affine, epsilon float64) {
	t.Helper()
	a0a := a0.Coefficients()
	a1a := a1.Coefficients()
	for i := range 6 {
		if d := math.Abs(a0a[i] - a1a[i]); d > epsilon {
			t.Fatalf("got %s, expected %s", a0, a1)
		}
	}
}

func TestAffineBasic(t *testing.T) {
	const epsilon = 1e-9
	p := Pt(3, 4)

	assertNear(t, p.Transform(Identity), p, epsilon)
	assertNear(t, p.Transform(Scale(2, 2)), Pt(6, 8), epsilon)
	assertNear(t, p.Transform(Rotate(0)), p, epsilon)
	assertNear(t, p.Transform(Rotate(math.Pi/2)), Pt(-4, 3), epsilon)
	assertNear(t, p.Transform(Translate(Vec(5, 6))), Pt(8, 10), epsilon)
	assertNear(t, p.Transform(RotateAbout(math.Pi, Pt(1, 1))), Pt(-1, -2), epsilon)
	assertNear(t, p.Transform(Affine{1, 2, 3, 4, 5, 6}), Pt(14, 38), epsilon)
}

func TestAffineMul(t *testing.T) {
	const epsilon = 1e-9
	a1 := Affine{1, 2, 3, 4, 5, 6}
	a2 := Affine{0.1, 1.2, 2.3, 3.4, 4.5, 5.6}

	px := Pt(1, 0)
	py := Pt(0, 1)
	pxy := Pt(1, 1)

	assertNear(t, px.Transform(a2).Transform(a1), px.Transform(a1.Mul(a2)), epsilon)
	assertNear(t, py.Transform(a2).Transform(a1), py.Transform(a1.Mul(a2)), epsilon)
	assertNear(t, pxy.Transform(a2).Transform(a1), pxy.Transform(Compose(a1, a2)), epsilon)
}

func TestComposeOrder(t *testing.T) {
	// Translate then rotate differs from rotate then translate.
	tr := Translate(Vec(1, 0))
	rot := Rotate(math.Pi / 2)
	assertNear(t, Pt(0, 0).Transform(Compose(rot, tr)), Pt(0, 1), 1e-12)
	assertNear(t, Pt(0, 0).Transform(Compose(tr, rot)), Pt(1, 0), 1e-12)
}

func TestAffineInvert(t *testing.T) {
	const epsilon = 1e-9
	a := Affine{0.1, 1.2, 2.3, 3.4, 4.5, 5.6}
	aInv, err := a.Invert()
	if err != nil {
		t.Fatal(err)
	}

	px := Pt(1, 0)
	py := Pt(0, 1)
	pxy := Pt(1, 1)

	assertNear(t, px.Transform(aInv).Transform(a), px, epsilon)
	assertNear(t, py.Transform(aInv).Transform(a), py, epsilon)
	assertNear(t, pxy.Transform(aInv).Transform(a), pxy, epsilon)
	assertNear(t, px.Transform(a).Transform(aInv), px, epsilon)
	assertNear(t, py.Transform(a).Transform(aInv), py, epsilon)
	assertNear(t, pxy.Transform(a).Transform(aInv), pxy, epsilon)
}

func TestInvertCompose(t *testing.T) {
	tests := []Affine{
		{1, 2, 3, 4, 5, 6},
		{0.1, 1.2, 2.3, 3.4, 4.5, 5.6},
		{-1, 0, 1.5, 0, -1, 2},
		{0.5, -s3, 7, s3, 0.5, -3},
		MatchSegment(Pt(-2, 5), Pt(3, 1)),
		Scale(1e-3, 1e3),
	}
	for _, a := range tests {
		inv, err := Invert(a)
		if err != nil {
			t.Fatalf("inverting %s: %s", a, err)
		}
		affineAssertNear(t, Compose(inv, a), Identity, 1e-9)
		affineAssertNear(t, Compose(a, inv), Identity, 1e-9)
	}
}

func TestInvertDegenerate(t *testing.T) {
	for _, a := range []Affine{
		{},
		{1, 2, 3, 2, 4, 6},
		MatchSegment(Pt(1, 1), Pt(1, 1)),
		{math.NaN(), 0, 0, 0, 1, 0},
	} {
		if _, err := a.Invert(); !errors.Is(err, ErrDegenerateTransform) {
			t.Errorf("inverting %s: got error %v, want ErrDegenerateTransform", a, err)
		}
	}
}

func TestInvertSmallScale(t *testing.T) {
	for _, a := range []Affine{
		Scale(1e-7, 1e-7),
		Scale(1e-9, 1e-9).ThenRotate(0.3),
		MatchSegment(Point{}, Pt(1e-8, 2e-8)),
	} {
		if a.IsDegenerate() {
			t.Errorf("%s reported as degenerate", a)
		}
		inv, err := a.Invert()
		if err != nil {
			t.Fatalf("inverting %s: %s", a, err)
		}
		affineAssertNear(t, Compose(inv, a), Identity, 1e-9)
	}

	// Rows that are parallel up to rounding stay degenerate at any scale.
	for _, k := range []float64{1e-7, 1, 1e7} {
		a := Affine{k, 2 * k, 0, 3 * k, 6 * k, 0}
		if !a.IsDegenerate() {
			t.Errorf("%s not reported as degenerate", a)
		}
	}
}

func TestMatchSegment(t *testing.T) {
	pairs := [][2]Point{
		{Pt(0, 0), Pt(1, 0)},
		{Pt(2, 3), Pt(-1, 7)},
		{Pt(-0.5, s3), Pt(1.5, s3)},
		{Pt(1e6, -1e6), Pt(1e6+1, -1e6)},
	}
	for _, pq := range pairs {
		p, q := pq[0], pq[1]
		m := MatchSegment(p, q)
		if got := Pt(0, 0).Transform(m); got != p {
			t.Errorf("MatchSegment(%s, %s) maps (0, 0) to %s", p, q, got)
		}
		if got := Pt(1, 0).Transform(m); got != q {
			t.Errorf("MatchSegment(%s, %s) maps (1, 0) to %s", p, q, got)
		}
		if m.IsOrientationReversing() {
			t.Errorf("MatchSegment(%s, %s) reverses orientation", p, q)
		}
	}
}

func TestAff3(t *testing.T) {
	a := Affine{1, 2, 3, 4, 5, 6}
	diff(t, a.Aff3(), f64.Aff3{1, 2, 3, 4, 5, 6})
	diff(t, AffineFromAff3(a.Aff3()), a)
}

func TestReflection(t *testing.T) {
	affineAssertNear(t, Reflect(Point{}, Vec(1, 0)), Affine{1, 0, 0, 0, -1, 0}, 1e-9)
	affineAssertNear(t, Reflect(Point{}, Vec(0, 1)), Affine{-1, 0, 0, 0, 1, 0}, 1e-9)
	affineAssertNear(t, Reflect(Point{}, Vec(1, 1)), Affine{0, 1, 0, 1, 0, 0}, 1e-9)

	const epsilon = 1e-9
	{
		// No translation
		point := Pt(0, 0)
		vec := Vec(1, 1)
		aff := Reflect(point, vec)
		assertNear(t, Pt(0, 0).Transform(aff), Pt(0, 0), epsilon)
		assertNear(t, Pt(1, 1).Transform(aff), Pt(1, 1), epsilon)
		assertNear(t, Pt(1, 2).Transform(aff), Pt(2, 1), epsilon)
	}

	{
		// With translation
		point := Pt(1, 0)
		vec := Vec(1, 1)
		aff := Reflect(point, vec)
		assertNear(t, Pt(1, 0).Transform(aff), Pt(1, 0), epsilon)
		assertNear(t, Pt(2, 1).Transform(aff), Pt(2, 1), epsilon)
		assertNear(t, Pt(2, 2).Transform(aff), Pt(3, 1), epsilon)
	}
}

func TestTransformRectBoundingBox(t *testing.T) {
	r := Rect{0, 0, 2, 1}
	got := Rotate(math.Pi / 2).TransformRectBoundingBox(r)
	want := Rect{-1, 0, 0, 2}
	for i, v := range [4]float64{got.X0 - want.X0, got.Y0 - want.Y0, got.X1 - want.X1, got.Y1 - want.Y1} {
		if math.Abs(v) > 1e-12 {
			t.Fatalf("coordinate %d: got %v, want %v", i, got, want)
		}
	}
}

package tactile

// Line represents a line segment.
type Line struct {
	// The line's start point.
	P0 Point
	// The line's end point.
	P1 Point
}

// Length returns the length of the line.
func (l Line) Length() float64 {
	return l.P1.Sub(l.P0).Hypot()
}

// CrossingPoint computes the point where two lines, if extended to infinity,
// would cross.
func (l Line) CrossingPoint(o Line) (Point, bool) {
	ab := l.P1.Sub(l.P0)
	cd := o.P1.Sub(o.P0)
	pcd := ab.Cross(cd)
	if pcd == 0 {
		return Point{}, false
	}
	h := ab.Cross(l.P0.Sub(o.P0)) / pcd
	return o.P0.Translate(cd.Mul(h)), true
}

func (l Line) Eval(t float64) Point {
	return l.P0.Lerp(l.P1, t)
}

// Nearest returns the squared distance from pt to the closest point on the
// segment, and that point's parameter.
func (l Line) Nearest(pt Point) (distSq, t float64) {
	d := l.P1.Sub(l.P0)
	dotp := d.Dot(pt.Sub(l.P0))
	dSquared := d.Dot(d)
	if dotp <= 0.0 {
		return pt.Sub(l.P0).Hypot2(), 0.0
	} else if dotp >= dSquared {
		return pt.Sub(l.P1).Hypot2(), 1.0
	} else {
		t := dotp / dSquared
		dist := pt.Sub(l.Eval(t)).Hypot2()
		return dist, t
	}
}

// Intersects reports whether the two segments share a point other than a
// common endpoint. Collinear overlapping segments intersect.
func (l Line) Intersects(o Line) bool {
	d1 := orient(o.P0, o.P1, l.P0)
	d2 := orient(o.P0, o.P1, l.P1)
	d3 := orient(l.P0, l.P1, o.P0)
	d4 := orient(l.P0, l.P1, o.P1)
	if d1*d2 < 0 && d3*d4 < 0 {
		return true
	}
	if d1 == 0 && d2 == 0 {
		// Collinear: overlap in more than a single point.
		ab := l.P1.Sub(l.P0)
		n := ab.Hypot2()
		if n == 0 {
			return false
		}
		t0 := o.P0.Sub(l.P0).Dot(ab) / n
		t1 := o.P1.Sub(l.P0).Dot(ab) / n
		lo, hi := max(min(t0, t1), 0), min(max(t0, t1), 1)
		return hi-lo > 1e-12
	}
	return false
}

func (l Line) Transform(aff Affine) Line {
	return Line{
		P0: l.P0.Transform(aff),
		P1: l.P1.Transform(aff),
	}
}

// orient returns the sign of the turn a→b→c, with values whose magnitude is
// below epsilon snapped to zero.
func orient(a, b, c Point) float64 {
	const epsilon = 1e-12
	v := b.Sub(a).Cross(c.Sub(a))
	switch {
	case v > epsilon:
		return 1
	case v < -epsilon:
		return -1
	default:
		return 0
	}
}

package tactile

import "math"

// Polygon is a closed outline given by its corners. The last corner connects
// back to the first.
type Polygon []Point

// SignedArea returns the polygon's area, positive for counter-clockwise
// outlines in a y-up space.
func (poly Polygon) SignedArea() float64 {
	var a float64
	for i, p := range poly {
		q := poly[(i+1)%len(poly)]
		a += p.X*q.Y - q.X*p.Y
	}
	return 0.5 * a
}

// BoundingBox returns the smallest rectangle containing the polygon.
func (poly Polygon) BoundingBox() Rect {
	return BoundingBoxOf(poly)
}

// Winding returns the winding number of the polygon around pt. Points on the
// boundary may report either the inside or the outside value.
func (poly Polygon) Winding(pt Point) int {
	w := 0
	for i, p := range poly {
		q := poly[(i+1)%len(poly)]
		if p.Y <= pt.Y {
			if q.Y > pt.Y && q.Sub(p).Cross(pt.Sub(p)) > 0 {
				w++
			}
		} else if q.Y <= pt.Y && q.Sub(p).Cross(pt.Sub(p)) < 0 {
			w--
		}
	}
	return w
}

// Contains reports whether pt lies inside the polygon, using the nonzero
// winding rule.
func (poly Polygon) Contains(pt Point) bool {
	return poly.Winding(pt) != 0
}

// DistanceToBoundary returns the distance from pt to the closest edge of the
// polygon.
func (poly Polygon) DistanceToBoundary(pt Point) float64 {
	best := -1.0
	for i, p := range poly {
		d, _ := Line{p, poly[(i+1)%len(poly)]}.Nearest(pt)
		if best < 0 || d < best {
			best = d
		}
	}
	if best < 0 {
		return 0
	}
	return math.Sqrt(best)
}

// IsSimple reports whether the polygon has at least three corners, no
// repeated corners, and no two edges that cross or overlap other than
// neighbouring edges meeting at their shared corner.
func (poly Polygon) IsSimple() bool {
	n := len(poly)
	if n < 3 {
		return false
	}
	for i := range n {
		for j := i + 1; j < n; j++ {
			if poly[i].DistanceSquared(poly[j]) < 1e-18 {
				return false
			}
		}
	}
	for i := range n {
		a := Line{poly[i], poly[(i+1)%n]}
		for j := i + 1; j < n; j++ {
			b := Line{poly[j], poly[(j+1)%n]}
			adjacent := j == i+1 || (i == 0 && j == n-1)
			if adjacent {
				// Neighbours may only meet at their shared corner, so they
				// must not fold back onto each other.
				if orient(a.P0, a.P1, b.P1) == 0 && a.P1.Sub(a.P0).Dot(b.P1.Sub(b.P0)) < 0 &&
					orient(a.P0, a.P1, b.P0) == 0 {
					return false
				}
				continue
			}
			if a.Intersects(b) || touches(a, b) {
				return false
			}
		}
	}
	return true
}

// touches reports whether either segment has an endpoint lying on the other.
func touches(a, b Line) bool {
	on := func(l Line, p Point) bool {
		d, _ := l.Nearest(p)
		return d < 1e-18
	}
	return on(a, b.P0) || on(a, b.P1) || on(b, a.P0) || on(b, a.P1)
}

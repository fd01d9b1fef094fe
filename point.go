package tactile

import (
	"fmt"
	"math"
)

// Point is a position in the plane. Tiling vertices, boundary points and
// edge control points are all Points; control points live in the local
// frame of their edge, where the edge runs from (0, 0) to (1, 0).
type Point struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
}

// Pt returns the point (x, y).
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

func (pt Point) String() string {
	return fmt.Sprintf("(%g, %g)", pt.X, pt.Y)
}

// Translate returns pt moved by o.
func (pt Point) Translate(o Vec2) Point {
	return Point{pt.X + o.X, pt.Y + o.Y}
}

// Transform applies aff to pt.
func (pt Point) Transform(aff Affine) Point {
	return Point{
		X: aff.A*pt.X + aff.B*pt.Y + aff.C,
		Y: aff.D*pt.X + aff.E*pt.Y + aff.F,
	}
}

// Sub computes pt−o.
func (pt Point) Sub(o Point) Vec2 {
	return Vec2{pt.X - o.X, pt.Y - o.Y}
}

// Lerp linearly interpolates between two points.
func (pt Point) Lerp(o Point, t float64) Point {
	return pt.Translate(o.Sub(pt).Mul(t))
}

// Midpoint returns the midpoint of two points.
func (pt Point) Midpoint(o Point) Point {
	return Point{0.5 * (pt.X + o.X), 0.5 * (pt.Y + o.Y)}
}

// Distance returns the euclidean distance between two points.
func (pt Point) Distance(o Point) float64 {
	return math.Hypot(pt.X-o.X, pt.Y-o.Y)
}

// DistanceSquared returns the squared euclidean distance between two points.
func (pt Point) DistanceSquared(o Point) float64 {
	return o.Sub(pt).Hypot2()
}

// Mirror reflects pt across the perpendicular bisector of the unit segment,
// the line x = 0.5.
func (pt Point) Mirror() Point {
	return Point{1 - pt.X, pt.Y}
}

// HalfTurn rotates pt by 180° about the midpoint of the unit segment,
// (0.5, 0).
func (pt Point) HalfTurn() Point {
	return Point{1 - pt.X, -pt.Y}
}

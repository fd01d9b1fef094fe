package tactile

import (
	"fmt"
	"iter"
	"math"

	"golang.org/x/image/math/f64"
)

// Affine describes a 2D affine transform via six coefficients.
//
// If the coefficients are (a, b, c, d, e, f), then the transform maps the
// point (x, y) to (a*x + b*y + c, d*x + e*y + f). In terms of an augmented
// matrix, this is
//
//	| a b c |
//	| d e f |
//	| 0 0 1 |
//
// The coefficients are stored in row-major order, which is the layout used
// by [f64.Aff3]. The idea is that (A * B) * v == A * (B * v).
type Affine struct {
	A, B, C float64
	D, E, F float64
}

// Identity is the identity transform.
var Identity = Affine{1, 0, 0, 0, 1, 0}

// FlipY is a transform that is flipped on the y-axis.
var FlipY = Affine{1, 0, 0, 0, -1, 0}

// Scale creates an affine transform representing non-uniform scaling with
// different scale values for x and y.
func Scale(x, y float64) Affine {
	return Affine{x, 0, 0, 0, y, 0}
}

// Translate creates an affine transform representing translation.
func Translate(v Vec2) Affine {
	return Affine{1, 0, v.X, 0, 1, v.Y}
}

// Rotate creates an affine transform representing rotation.
//
// A positive angle rotates the positive X direction into positive Y. The
// angle th is expressed in radians.
func Rotate(th float64) Affine {
	sin, cos := math.Sincos(th)
	return Affine{cos, -sin, 0, sin, cos, 0}
}

// RotateAbout creates an affine transform representing a rotation of th radians
// about center.
func RotateAbout(th float64, center Point) Affine {
	c := Vec2(center)
	return Translate(c.Negate()).ThenRotate(th).ThenTranslate(c)
}

// Reflect creates an affine transform that represents reflection about the line
// point + direction * t, t ∈ [-∞, ∞]
func Reflect(pt Point, direction Vec2) Affine {
	n := Vec2{
		X: direction.Y,
		Y: -direction.X,
	}.Normalize()

	// Householder reflection, with the post translation folded in.
	x2 := n.X * n.X
	xy := n.X * n.Y
	y2 := n.Y * n.Y
	aff := Affine{
		1.0 - 2.0*x2, -2.0 * xy, pt.X,
		-2.0 * xy, 1.0 - 2.0*y2, pt.Y,
	}
	return aff.PreTranslate(Vec2(pt).Negate())
}

// Coefficients returns the coefficients of the transform in row-major order.
func (aff Affine) Coefficients() [6]float64 {
	return [6]float64{aff.A, aff.B, aff.C, aff.D, aff.E, aff.F}
}

// Aff3 returns the transform as an [f64.Aff3].
func (aff Affine) Aff3() f64.Aff3 {
	return f64.Aff3(aff.Coefficients())
}

// AffineFromAff3 converts an [f64.Aff3] to an [Affine].
func AffineFromAff3(m f64.Aff3) Affine {
	return Affine{m[0], m[1], m[2], m[3], m[4], m[5]}
}

func (aff Affine) String() string {
	return fmt.Sprintf("[%g %g %g; %g %g %g]", aff.A, aff.B, aff.C, aff.D, aff.E, aff.F)
}

// Mul returns the transform that applies o first and aff second.
func (aff Affine) Mul(o Affine) Affine {
	return Affine{
		aff.A*o.A + aff.B*o.D,
		aff.A*o.B + aff.B*o.E,
		aff.A*o.C + aff.B*o.F + aff.C,
		aff.D*o.A + aff.E*o.D,
		aff.D*o.B + aff.E*o.E,
		aff.D*o.C + aff.E*o.F + aff.F,
	}
}

// Compose returns the transform equivalent to applying b, then a. It is the
// same as a.Mul(b).
func Compose(a, b Affine) Affine {
	return a.Mul(b)
}

// ThenRotate creates aff followed by a rotation of th.
//
// Equivalent to "Rotate(th) * aff"
func (aff Affine) ThenRotate(th float64) Affine {
	return Rotate(th).Mul(aff)
}

// PreTranslate creates a translation of v followed by aff.
//
// Equivalent to "aff * Translate(v)"
func (aff Affine) PreTranslate(v Vec2) Affine {
	return aff.Mul(Translate(v))
}

// ThenTranslate creates aff followed by a translation of v.
//
// Equivalent to "Translate(v) * aff"
func (aff Affine) ThenTranslate(v Vec2) Affine {
	aff.C += v.X
	aff.F += v.Y
	return aff
}

// Determinant computes the determinant of the linear part.
func (aff Affine) Determinant() float64 {
	return aff.A*aff.E - aff.B*aff.D
}

// IsOrientationReversing reports whether the transform turns counter-clockwise
// outlines into clockwise ones.
func (aff Affine) IsOrientationReversing() bool {
	return aff.Determinant() < 0
}

// degenerateDeterminant is the relative size, compared to the products it is
// computed from, below which a determinant is treated as zero.
const degenerateDeterminant = 1e-12

// IsDegenerate reports whether the linear part of the transform is singular
// to within rounding. The test is relative, so uniformly small transforms
// such as Scale(1e-7, 1e-7) are not degenerate.
func (aff Affine) IsDegenerate() bool {
	det := aff.Determinant()
	if math.IsNaN(det) {
		return true
	}
	return math.Abs(det) <= degenerateDeterminant*(math.Abs(aff.A*aff.E)+math.Abs(aff.B*aff.D))
}

// Invert computes the inverse transform. It returns [ErrDegenerateTransform]
// if the transform is degenerate; see [Affine.IsDegenerate].
func (aff Affine) Invert() (Affine, error) {
	det := aff.Determinant()
	if aff.IsDegenerate() {
		return Affine{}, fmt.Errorf("%w: determinant %g of %s", ErrDegenerateTransform, det, aff)
	}
	invDet := 1 / det
	return Affine{
		+invDet * aff.E,
		-invDet * aff.B,
		+invDet * (aff.B*aff.F - aff.C*aff.E),
		-invDet * aff.D,
		+invDet * aff.A,
		+invDet * (aff.C*aff.D - aff.A*aff.F),
	}, nil
}

// Invert is the free-function form of [Affine.Invert].
func Invert(aff Affine) (Affine, error) {
	return aff.Invert()
}

// MatchSegment returns the unique similarity transform that maps (0, 0) to p
// and (1, 0) to q. It is used to place shapes drawn on the unit segment onto
// an arbitrary segment.
//
// If p and q coincide the result is degenerate; see [Affine.Invert].
func MatchSegment(p, q Point) Affine {
	d := q.Sub(p)
	n := d.Perp()
	return Affine{
		d.X, n.X, p.X,
		d.Y, n.Y, p.Y,
	}
}

// TransformRectBoundingBox computes the bounding box of a transformed rectangle.
//
// The returned rectangle always has non-negative width and height.
func (aff Affine) TransformRectBoundingBox(rect Rect) Rect {
	p00 := Pt(rect.X0, rect.Y0).Transform(aff)
	p01 := Pt(rect.X0, rect.Y1).Transform(aff)
	p10 := Pt(rect.X1, rect.Y0).Transform(aff)
	p11 := Pt(rect.X1, rect.Y1).Transform(aff)
	return NewRectFromPoints(p00, p01).Union(NewRectFromPoints(p10, p11))
}

// Transform returns a sequence that applies aff to every element of seq.
func Transform[T interface{ Transform(Affine) T }](seq iter.Seq[T], aff Affine) iter.Seq[T] {
	return func(yield func(T) bool) {
		for v := range seq {
			if !yield(v.Transform(aff)) {
				break
			}
		}
	}
}

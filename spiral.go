package tactile

import (
	"fmt"
	"math"
)

// SpiralTransform returns the transform that rolls the tiling into a
// logarithmic spiral. It maps the lattice vector r·(a·T1 + b·T2) onto
// (0, 2π), where r is the colouring's [Colouring.SpiralRank] for (a, b), so
// that applying [SpiralMap] afterwards wraps the tiling around the origin
// with matching colours at the seam. A nil colouring uses r = 1.
//
// It returns [ErrDegenerateTransform] if a·T1 + b·T2 is the zero vector.
func (t *Tiling) SpiralTransform(a, b int, c *Colouring) (Affine, error) {
	r := 1
	if c != nil {
		r = c.SpiralRank(a, b)
	}
	g := t.geom
	v := Lattice(a, b, g.t1, g.t2).Mul(float64(r))
	inv, err := MatchSegment(Point{}, Point(v)).Invert()
	if err != nil {
		return Affine{}, fmt.Errorf("spiral (%d, %d) of %s: %w", a, b, t.tt, err)
	}
	return MatchSegment(Point{}, Point{0, 2 * math.Pi}).Mul(inv), nil
}

// SpiralMap applies the complex exponential to pt, mapping the horizontal
// coordinate to a logarithmic radius and the vertical one to an angle.
func SpiralMap(pt Point) Point {
	r := math.Exp(pt.X)
	sin, cos := math.Sincos(pt.Y)
	return Point{r * cos, r * sin}
}

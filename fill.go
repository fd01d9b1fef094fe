package tactile

import (
	"iter"
	"math"
)

// TileInstance identifies one placed copy of the prototile.
type TileInstance struct {
	// Transform maps the prototile onto this copy.
	Transform Affine
	// T1 and T2 are the copy's lattice coordinates.
	T1, T2 int
	// Aspect is the copy's aspect within its translational unit.
	Aspect int
	// Flipped reports whether the copy is a mirror image of the prototile.
	Flipped bool
}

// latticeSlack widens lattice ranges to absorb rounding when a tile's edge
// lies exactly on the region's boundary.
const latticeSlack = 1e-9

// FillRegionBounds returns the tiles that may intersect the axis-aligned
// rectangle with the given extents. Every tile that intersects the rectangle
// is included; some tiles that only come close to it may be included as
// well.
//
// The sequence is computed lazily from the tiling's geometry at the time of
// the call and can be iterated any number of times.
func (t *Tiling) FillRegionBounds(xmin, ymin, xmax, ymax float64) iter.Seq[TileInstance] {
	r := Rect{xmin, ymin, xmax, ymax}.Abs()
	return t.geom.fill(r.Corners(), r)
}

// FillRect is like [Tiling.FillRegionBounds] but takes a [Rect].
func (t *Tiling) FillRect(r Rect) iter.Seq[TileInstance] {
	r = r.Abs()
	return t.geom.fill(r.Corners(), r)
}

// FillRegionQuad returns the tiles that may intersect the convex
// quadrilateral with corners p0, p1, p2 and p3. Like
// [Tiling.FillRegionBounds], it errs on the side of returning too many tiles.
func (t *Tiling) FillRegionQuad(p0, p1, p2, p3 Point) iter.Seq[TileInstance] {
	corners := [4]Point{p0, p1, p2, p3}
	return t.geom.fill(corners, BoundingBoxOf(corners[:]))
}

// fill enumerates tiles whose lattice-space bounding box meets the lattice
// space bounding box of the corners and whose world-space bounding box meets
// bounds.
func (g *geometry) fill(corners [4]Point, bounds Rect) iter.Seq[TileInstance] {
	region := emptyRect
	for _, c := range corners {
		region = region.UnionPoint(c.Transform(g.toBasis))
	}
	return func(yield func(TileInstance) bool) {
		if region.X0 > region.X1 || bounds.X0 > bounds.X1 {
			return
		}
		// Lattice ranges per aspect; tile (t1, t2) of aspect a covers
		// latticeBox[a] shifted by (t1, t2).
		type span struct{ lo1, hi1, lo2, hi2 int }
		spans := make([]span, len(g.aspects))
		all := span{math.MaxInt, math.MinInt, math.MaxInt, math.MinInt}
		for a, lb := range g.latticeBox {
			s := span{
				lo1: int(math.Ceil(region.X0 - lb.X1 - latticeSlack)),
				hi1: int(math.Floor(region.X1 - lb.X0 + latticeSlack)),
				lo2: int(math.Ceil(region.Y0 - lb.Y1 - latticeSlack)),
				hi2: int(math.Floor(region.Y1 - lb.Y0 + latticeSlack)),
			}
			spans[a] = s
			all.lo1, all.hi1 = min(all.lo1, s.lo1), max(all.hi1, s.hi1)
			all.lo2, all.hi2 = min(all.lo2, s.lo2), max(all.hi2, s.hi2)
		}

		for t1 := all.lo1; t1 <= all.hi1; t1++ {
			for t2 := all.lo2; t2 <= all.hi2; t2++ {
				off := Lattice(t1, t2, g.t1, g.t2)
				for a, s := range spans {
					if t1 < s.lo1 || t1 > s.hi1 || t2 < s.lo2 || t2 > s.hi2 {
						continue
					}
					wb := g.worldBox[a]
					wb = Rect{wb.X0 + off.X, wb.Y0 + off.Y, wb.X1 + off.X, wb.Y1 + off.Y}
					if !wb.Overlaps(bounds) {
						continue
					}
					aff := g.aspects[a]
					ti := TileInstance{
						Transform: aff.ThenTranslate(off),
						T1:        t1,
						T2:        t2,
						Aspect:    a,
						Flipped:   aff.IsOrientationReversing(),
					}
					if !yield(ti) {
						return
					}
				}
			}
		}
	}
}

// TranslationalUnit returns a quadrilateral covering n1 × n2 translational
// units starting at the origin, grown on every side by the length of the
// unit's diagonal. Passing it to [Tiling.FillRegionQuad] yields every tile
// needed to draw the units without gaps at their border. n1 and n2 must be
// positive.
func (t *Tiling) TranslationalUnit(n1, n2 int) [4]Point {
	g := t.geom
	a := g.t1.Mul(float64(n1))
	b := g.t2.Mul(float64(n2))
	margin := math.Sqrt(g.t1.Hypot2() + g.t2.Hypot2())
	if a.Cross(b) < 0 {
		a, b = b, a
	}
	v := a.Normalize()
	w := b.Normalize()
	o := Point{}
	return [4]Point{
		o.Translate(v.Add(w).Mul(-margin)),
		o.Translate(a).Translate(v.Sub(w).Mul(margin)),
		o.Translate(a).Translate(b).Translate(v.Add(w).Mul(margin)),
		o.Translate(b).Translate(w.Sub(v).Mul(margin)),
	}
}

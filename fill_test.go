package tactile

import (
	"math"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// decorate bends every edge of the tiling slightly off the straight line.
func decorate(t *testing.T, tl *Tiling) {
	t.Helper()
	for slot := range tl.NumEdgeShapes() {
		cls, err := tl.Type().EdgeShape(slot)
		require.NoError(t, err)
		var pts []Point
		switch cls {
		case EdgeGeneric:
			pts = []Point{{1.0 / 3, 0.04}, {2.0 / 3, -0.03}}
		case EdgeHalfTurnSymmetric, EdgeMirrorSymmetric:
			pts = []Point{{0.25, 0.04}}
		}
		require.NoError(t, tl.SetEdgeShape(slot, pts))
	}
}

type tileKey struct{ t1, t2, aspect int }

func keyOf(ti TileInstance) tileKey { return tileKey{ti.T1, ti.T2, ti.Aspect} }

func placedOutline(tl *Tiling, ti TileInstance) Polygon {
	return tl.TileOutline(ti)
}

// samples returns a grid of points in the square [-r, r]².
func samples(r float64) []Point {
	var out []Point
	const step = 0.311
	for x := -r + 0.013; x <= r; x += step {
		for y := -r + 0.029; y <= r; y += step {
			out = append(out, Pt(x, y))
		}
	}
	return out
}

func TestFillCoverage(t *testing.T) {
	for tt := range Types() {
		t.Run(tt.String(), func(t *testing.T) {
			tl := NewTiling(tt)
			decorate(t, tl)
			require.True(t, tl.Boundary().IsSimple(), "decorated prototile must be simple")

			var outlines []Polygon
			for ti := range tl.FillRegionBounds(-2, -2, 2, 2) {
				outlines = append(outlines, placedOutline(tl, ti))
			}

		sampling:
			for _, pt := range samples(1.9) {
				n := 0
				for _, o := range outlines {
					if o.DistanceToBoundary(pt) < 1e-7 {
						continue sampling
					}
					if o.Contains(pt) {
						n++
					}
				}
				assert.Equal(t, 1, n, "%s is covered %d times", pt, n)
			}
		})
	}
}

func TestFillTileInstances(t *testing.T) {
	tl, err := New(56)
	require.NoError(t, err)
	seen := map[tileKey]bool{}
	for ti := range tl.FillRegionBounds(-3, -3, 3, 3) {
		k := keyOf(ti)
		assert.False(t, seen[k], "tile %v returned twice", k)
		seen[k] = true
		affineAssertNear(t, ti.Transform, tl.LatticeTransform(ti.T1, ti.T2, ti.Aspect), 1e-12)
		assert.Equal(t, ti.Transform.IsOrientationReversing(), ti.Flipped)
	}
	assert.NotEmpty(t, seen)
}

func TestFillRegionBoundsOrder(t *testing.T) {
	tl, err := New(5)
	require.NoError(t, err)
	a := slices.Collect(tl.FillRegionBounds(-1, -2, 3, 4))
	b := slices.Collect(tl.FillRegionBounds(3, 4, -1, -2))
	c := slices.Collect(tl.FillRect(Rect{-1, -2, 3, 4}))
	diff(t, a, b)
	diff(t, a, c)
}

func TestFillRestartable(t *testing.T) {
	tl, err := New(28)
	require.NoError(t, err)
	seq := tl.FillRegionBounds(0, 0, 5, 5)
	first := slices.Collect(seq)
	second := slices.Collect(seq)
	require.NotEmpty(t, first)
	diff(t, first, second)

	// The sequence keeps the geometry it was created with.
	params := tl.Parameters()
	params[0] += 0.2
	require.NoError(t, tl.SetParameters(params))
	diff(t, first, slices.Collect(seq))

	n := 0
	for range seq {
		n++
		if n == 3 {
			break
		}
	}
	assert.Equal(t, 3, n)
}

func TestFillRegionQuad(t *testing.T) {
	for _, id := range []int{1, 21, 54, 77, 81} {
		tl, err := New(id)
		require.NoError(t, err)
		decorate(t, tl)

		rot := RotateAbout(0.4, Pt(0.5, 0.5))
		var quad [4]Point
		for i, c := range (Rect{-1, -0.5, 2, 1.5}).Corners() {
			quad[i] = c.Transform(rot)
		}
		got := map[tileKey]bool{}
		for ti := range tl.FillRegionQuad(quad[0], quad[1], quad[2], quad[3]) {
			got[keyOf(ti)] = true
		}

		all := slices.Collect(tl.FillRegionBounds(-4, -4, 5, 5))
		region := Polygon(quad[:])
		for _, pt := range samples(3) {
			if !region.Contains(pt) {
				continue
			}
			for _, ti := range all {
				o := placedOutline(tl, ti)
				if o.Contains(pt) && o.DistanceToBoundary(pt) > 1e-7 {
					assert.True(t, got[keyOf(ti)], "IH%02d: tile %v covers %s but is missing", id, keyOf(ti), pt)
				}
			}
		}
	}
}

func TestFillEmptyRegion(t *testing.T) {
	tl, err := New(1)
	require.NoError(t, err)
	// A degenerate rectangle still returns the tiles around its point.
	assert.NotEmpty(t, slices.Collect(tl.FillRegionBounds(0.3, 0.3, 0.3, 0.3)))
}

func TestTranslationalUnit(t *testing.T) {
	for _, id := range []int{5, 39, 50} {
		tl, err := New(id)
		require.NoError(t, err)
		quad := tl.TranslationalUnit(2, 3)
		region := Polygon(quad[:])
		assert.Greater(t, region.SignedArea(), 0.0)

		t1, t2 := tl.T1().Mul(2), tl.T2().Mul(3)
		margin := math.Sqrt(tl.T1().Hypot2() + tl.T2().Hypot2())
		sin := math.Abs(t1.Cross(t2)) / (t1.Hypot() * t2.Hypot())
		for _, c := range []Point{
			{},
			Point{}.Translate(t1),
			Point{}.Translate(t1).Translate(t2),
			Point{}.Translate(t2),
		} {
			assert.True(t, region.Contains(c), "IH%02d: %s outside the unit", id, c)
			assert.GreaterOrEqual(t, region.DistanceToBoundary(c), margin*sin-1e-9)
		}

		got := map[tileKey]bool{}
		for ti := range tl.FillRegionQuad(quad[0], quad[1], quad[2], quad[3]) {
			got[keyOf(ti)] = true
		}
		all := slices.Collect(tl.FillRect(region.BoundingBox()))
		// Every point of the units lies in a returned tile.
		for u := 0.05; u < 1; u += 0.15 {
			for v := 0.05; v < 1; v += 0.15 {
				pt := Point{}.Translate(t1.Mul(u)).Translate(t2.Mul(v))
				for _, ti := range all {
					if placedOutline(tl, ti).Contains(pt) {
						assert.True(t, got[keyOf(ti)], "IH%02d: tile %v covers %s but is missing", id, keyOf(ti), pt)
					}
				}
			}
		}
	}
}

func TestTileOutline(t *testing.T) {
	tl, err := New(57)
	require.NoError(t, err)
	ti := TileInstance{Transform: tl.LatticeTransform(2, -1, 0), T1: 2, T2: -1}
	// The mirror-symmetric sides carry their two default control points.
	want := Polygon{
		{2, -1}, {3, -1}, {3, -0.75}, {3, -0.25},
		{3, 0}, {2, 0}, {2, -0.25}, {2, -0.75},
	}
	diff(t, want, tl.TileOutline(ti))
}

package tactile

import (
	"fmt"
	"math"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var wantTypeIDs = []int{
	1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16, 17, 18, 20,
	21, 22, 23, 24, 25, 26, 27, 28, 29, 30, 31, 32, 33, 34, 36, 37, 38, 39,
	40, 41, 42, 43, 44, 45, 46, 47, 49, 50, 51, 52, 53, 54, 55, 56, 57, 58,
	59, 61, 62, 64, 66, 67, 68, 69, 71, 72, 73, 74, 76, 77, 78, 79, 81, 82,
	83, 84, 85, 86, 88, 90, 91, 93,
}

// segmentSymmetries are the four isometries of the unit segment from (0, 0)
// to (1, 0).
var segmentSymmetries = [4]Affine{
	Identity,
	{-1, 0, 1, 0, -1, 0},
	FlipY,
	{-1, 0, 1, 0, 1, 0},
}

// allowedSymmetries returns the symmetries of the unit segment under which
// an edge of class e maps onto itself.
func allowedSymmetries(e EdgeShape) []Affine {
	switch e {
	case EdgeIdentity:
		return segmentSymmetries[:]
	case EdgeHalfTurnSymmetric:
		return []Affine{Identity, segmentSymmetries[1]}
	case EdgeMirrorSymmetric:
		return []Affine{Identity, segmentSymmetries[3]}
	default:
		return []Affine{Identity}
	}
}

func affineNear(a, b Affine, eps float64) bool {
	ac, bc := a.Coefficients(), b.Coefficients()
	for i := range ac {
		if math.Abs(ac[i]-bc[i]) > eps {
			return false
		}
	}
	return true
}

func isIsometry(aff Affine) bool {
	const eps = 1e-9
	return math.Abs(aff.A*aff.A+aff.D*aff.D-1) < eps &&
		math.Abs(aff.B*aff.B+aff.E*aff.E-1) < eps &&
		math.Abs(aff.A*aff.B+aff.D*aff.E) < eps
}

// perturbed returns the type's default parameters moved slightly off any
// special values.
func perturbed(tt *TilingType) []float64 {
	p := tt.DefaultParameters()
	for i := range p {
		d := 0.013 * float64(i+1)
		if i%2 == 1 {
			d = -d
		}
		p[i] += d
	}
	return p
}

// neighbour is the tile across one edge of the prototile.
type neighbour struct {
	t1, t2, aspect int
	edge           int
	// sigma maps the neighbour's edge frame onto the prototile's edge
	// frame.
	sigma Affine
}

// findNeighbour locates the tile that shares polygon edge i with the tile of
// the given aspect at lattice position (0, 0).
func findNeighbour(t *Tiling, parts []Part, aspect, i int) (neighbour, bool) {
	inv, err := t.AspectTransform(aspect).Mul(parts[i].Transform).Invert()
	if err != nil {
		return neighbour{}, false
	}
	const r = 3
	for t1 := -r; t1 <= r; t1++ {
		for t2 := -r; t2 <= r; t2++ {
			for a := range t.NumAspects() {
				if t1 == 0 && t2 == 0 && a == aspect {
					continue
				}
				place := t.LatticeTransform(t1, t2, a)
				for j, pj := range parts {
					sigma := inv.Mul(place.Mul(pj.Transform))
					for _, s := range segmentSymmetries {
						if affineNear(sigma, s, 1e-9) {
							return neighbour{t1, t2, a, j, s}, true
						}
					}
				}
			}
		}
	}
	return neighbour{}, false
}

func TestCatalogIDs(t *testing.T) {
	assert.Equal(t, wantTypeIDs, TypeIDs())
	assert.Len(t, TypeIDs(), NumTypes)

	var ids []int
	for tt := range Types() {
		ids = append(ids, tt.ID())
		got, err := LookupType(tt.ID())
		require.NoError(t, err)
		assert.Same(t, tt, got)
	}
	assert.Equal(t, wantTypeIDs, ids)
}

func TestLookupUnknownType(t *testing.T) {
	for _, id := range []int{-1, 0, 19, 35, 48, 60, 63, 65, 70, 75, 80, 87, 89, 92, 94, 1000} {
		_, err := LookupType(id)
		assert.ErrorIs(t, err, ErrUnknownTilingType, "IH%d", id)
		_, err = New(id)
		assert.ErrorIs(t, err, ErrUnknownTilingType, "IH%d", id)
	}
}

func TestCatalogTypeNames(t *testing.T) {
	tt, err := LookupType(7)
	require.NoError(t, err)
	assert.Equal(t, "IH07", tt.String())
	assert.Equal(t, "p3", tt.Symmetry())
	assert.Equal(t, 6, tt.NumVertices())
	assert.Equal(t, 3, tt.NumAspects())

	tt, err = LookupType(93)
	require.NoError(t, err)
	assert.Equal(t, "IH93", tt.String())
	assert.Equal(t, "p6m", tt.Symmetry())
	assert.Equal(t, 0, tt.NumParameters())
	assert.Equal(t, 2, tt.NumAspects())
}

// pointGroupOrder is the number of distinct linear parts in each wallpaper
// group.
var pointGroupOrder = map[string]int{
	"p1": 1, "p2": 2, "pm": 2, "pg": 2, "cm": 2,
	"pmm": 4, "pmg": 4, "pgg": 4, "cmm": 4,
	"p4": 4, "p4m": 8, "p4g": 8,
	"p3": 3, "p3m1": 6, "p31m": 6, "p6": 6, "p6m": 12,
}

func TestCatalogClassification(t *testing.T) {
	tests := []struct {
		id       int
		symmetry string
		vertices int
		aspects  int
	}{
		{1, "p1", 6, 1},
		{2, "pg", 6, 2},
		{3, "pg", 6, 2},
		{4, "p2", 6, 2},
		{5, "pgg", 6, 4},
		{6, "pgg", 6, 4},
		{7, "p3", 6, 3},
		{8, "cm", 6, 1},
		{9, "cm", 6, 1},
		{10, "p2", 6, 1},
		{11, "pgg", 6, 2},
		{12, "pmg", 6, 2},
		{13, "pmg", 6, 2},
		{14, "p31m", 6, 3},
		{15, "p3", 6, 1},
		{16, "cmm", 6, 1},
		{17, "p31m", 6, 1},
		{18, "p6", 6, 1},
		{20, "p6m", 6, 1},
		{21, "p6", 5, 6},
		{22, "cm", 5, 2},
		{23, "p2", 5, 2},
		{24, "pgg", 5, 4},
		{25, "pmg", 5, 4},
		{26, "cmm", 5, 2},
		{27, "pgg", 5, 4},
		{28, "p4", 5, 4},
		{29, "p4g", 5, 4},
		{30, "p31m", 4, 6},
		{31, "p6", 4, 6},
		{32, "p6m", 4, 6},
		{33, "p3", 4, 3},
		{34, "p31m", 4, 3},
		{36, "p6", 4, 3},
		{37, "p6m", 4, 3},
		{38, "p31m", 3, 6},
		{39, "p6", 3, 6},
		{40, "p6m", 3, 6},
		{41, "p1", 4, 1},
		{42, "pg", 4, 2},
		{43, "pg", 4, 2},
		{44, "pm", 4, 2},
		{45, "cm", 4, 2},
		{46, "p2", 4, 2},
		{47, "p2", 4, 2},
		{49, "pgg", 4, 4},
		{50, "pgg", 4, 4},
		{51, "pgg", 4, 4},
		{52, "pmg", 4, 4},
		{53, "pmg", 4, 4},
		{54, "cmm", 4, 4},
		{55, "p4", 4, 4},
		{56, "p4g", 4, 8},
		{57, "pm", 4, 1},
		{58, "cm", 4, 1},
		{59, "p2", 4, 1},
		{61, "pgg", 4, 2},
		{62, "pmg", 4, 2},
		{64, "pmg", 4, 2},
		{66, "pmg", 4, 2},
		{67, "cmm", 4, 2},
		{68, "p4", 4, 2},
		{69, "p4g", 4, 4},
		{71, "pmm", 4, 1},
		{72, "cmm", 4, 1},
		{73, "p4", 4, 1},
		{74, "p4g", 4, 2},
		{76, "p4m", 4, 1},
		{77, "p6m", 3, 12},
		{78, "cmm", 3, 4},
		{79, "p4", 3, 4},
		{81, "p4g", 3, 8},
		{82, "p4m", 3, 4},
		{83, "cm", 3, 2},
		{84, "p2", 3, 2},
		{85, "pgg", 3, 4},
		{86, "pmg", 3, 4},
		{88, "p6", 3, 6},
		{90, "cmm", 3, 2},
		{91, "p6", 3, 2},
		{93, "p6m", 3, 2},
	}
	require.Len(t, tests, NumTypes)
	for _, tc := range tests {
		tt, err := LookupType(tc.id)
		require.NoError(t, err)
		assert.Equal(t, tc.symmetry, tt.Symmetry(), "%s", tt)
		assert.Equal(t, tc.vertices, tt.NumVertices(), "%s", tt)
		assert.Equal(t, tc.aspects, tt.NumAspects(), "%s", tt)
	}
}

func TestCatalogAspectsDividePointGroup(t *testing.T) {
	for tt := range Types() {
		order, ok := pointGroupOrder[tt.Symmetry()]
		require.True(t, ok, "%s: unknown group %q", tt, tt.Symmetry())
		assert.Zero(t, order%tt.NumAspects(), "%s: %d aspects in %s", tt, tt.NumAspects(), tt.Symmetry())

		tl := NewTiling(tt)
		var reversing int
		for a := range tl.NumAspects() {
			if tl.AspectTransform(a).IsOrientationReversing() {
				reversing++
			}
		}
		switch tt.Symmetry() {
		case "p1", "p2", "p3", "p4", "p6":
			assert.Zero(t, reversing, "%s", tt)
		}
	}
}

func TestCatalogGeometry(t *testing.T) {
	for tt := range Types() {
		t.Run(tt.String(), func(t *testing.T) {
			assert.LessOrEqual(t, tt.NumParameters(), 6)
			assert.GreaterOrEqual(t, tt.NumAspects(), 1)

			tl := NewTiling(tt)
			for _, params := range [][]float64{tt.DefaultParameters(), perturbed(tt)} {
				require.NoError(t, tl.SetParameters(params))

				verts := Polygon(tl.Vertices())
				require.Len(t, verts, tt.NumVertices())
				assert.True(t, verts.IsSimple(), "prototile must be simple at %v", params)
				area := verts.SignedArea()
				assert.Greater(t, area, 0.0, "prototile must wind counter-clockwise")

				unit := math.Abs(tl.T1().Cross(tl.T2()))
				assert.InDelta(t, unit, area*float64(tl.NumAspects()), 1e-9*unit,
					"aspects must fill the translational unit")

				require.Equal(t, tt.NumAspects(), tl.NumAspects())
				assert.Equal(t, Identity, tl.AspectTransform(0))
				for a := range tl.NumAspects() {
					assert.True(t, isIsometry(tl.AspectTransform(a)), "aspect %d is not an isometry", a)
				}
			}
		})
	}
}

func TestCatalogEdgeMatching(t *testing.T) {
	for tt := range Types() {
		t.Run(tt.String(), func(t *testing.T) {
			tl := NewTiling(tt)
			require.NoError(t, tl.SetParameters(perturbed(tt)))
			parts := slices.Collect(tl.Parts())
			require.Len(t, parts, tt.NumVertices())

			for i, p := range parts {
				n, ok := findNeighbour(tl, parts, 0, i)
				if !assert.True(t, ok, "no tile across edge %d", i) {
					continue
				}
				assert.Equal(t, p.Slot, parts[n.edge].Slot,
					"edge %d meets edge %d of a different slot", i, n.edge)
				ok = slices.ContainsFunc(allowedSymmetries(p.Shape), func(s Affine) bool {
					return affineNear(s, n.sigma, 1e-9)
				})
				assert.True(t, ok, "edge %d (%s) meets its neighbour through %s", i, p.Shape, n.sigma)
			}
		})
	}
}

func TestCatalogEdgeShapeSlots(t *testing.T) {
	for tt := range Types() {
		for _, slot := range []int{-1, tt.NumEdgeShapes()} {
			_, err := tt.EdgeShape(slot)
			assert.ErrorIs(t, err, ErrInvalidEdgeSlot, fmt.Sprintf("%s slot %d", tt, slot))
		}
		for i := range tt.NumVertices() {
			s := tt.EdgeShapeID(i)
			_, err := tt.EdgeShape(s)
			assert.NoError(t, err)
		}
	}
}

func TestCatalogEdgeShapeClasses(t *testing.T) {
	tests := []struct {
		id   int
		want string
	}{
		{1, "JJJ"},
		{5, "JJSS"},
		{14, "JI"},
		{17, "U"},
		{28, "JJS"},
		{50, "JSS"},
		{54, "IISI"},
		{57, "IU"},
		{77, "III"},
		{78, "SII"},
	}
	for _, tc := range tests {
		tt, err := LookupType(tc.id)
		require.NoError(t, err)
		var got string
		for i := range tt.NumEdgeShapes() {
			s, err := tt.EdgeShape(i)
			require.NoError(t, err)
			got += s.String()
		}
		assert.Equal(t, tc.want, got, tt.String())
	}
}

package tactile

import (
	"fmt"
	"iter"
	"log/slog"
	"slices"
)

// s3 is half the square root of three, the height of an equilateral
// triangle with unit sides.
const s3 = 0.86602540378443864676372317075293618347140262690519

// NumTypes is the number of isohedral tiling types in the catalog.
const NumTypes = 81

// TilingType describes one isohedral tiling type: the topology of its
// prototile, the formulas that turn a parameter vector into tiling vertices,
// lattice vectors and aspect transforms, the symmetry class of every edge,
// and a default colouring.
//
// TilingType values are immutable and shared by all tilings. Obtain them
// with [LookupType] or [Types].
type TilingType struct {
	id       int
	symmetry string
	defaults []float64

	// vertices, lattice and aspects evaluate the type's formulas. They
	// are only ever called with len(p) == len(defaults).
	vertices func(p []float64) []Point
	lattice  func(p []float64) (t1, t2 Vec2)
	aspects  func(p []float64) []Affine

	edges  []edgeUse
	shapes []EdgeShape
	colour colouringData

	numAspects int
}

type colouringData struct {
	init   []int
	p1, p2 Permutation
}

// ID returns the type's number in the IH classification.
func (tt *TilingType) ID() int { return tt.id }

// String returns the conventional name of the type, such as "IH07".
func (tt *TilingType) String() string { return fmt.Sprintf("IH%02d", tt.id) }

// Symmetry returns the name of the wallpaper group of tilings of this type,
// for example "p4g".
func (tt *TilingType) Symmetry() string { return tt.symmetry }

// NumVertices returns the number of tiling vertices of the prototile.
func (tt *TilingType) NumVertices() int { return len(tt.edges) }

// NumParameters returns the number of free shape parameters.
func (tt *TilingType) NumParameters() int { return len(tt.defaults) }

// NumAspects returns the number of prototile copies in one translational
// unit of the tiling.
func (tt *TilingType) NumAspects() int { return tt.numAspects }

// NumEdgeShapes returns the number of distinct edge shape slots.
func (tt *TilingType) NumEdgeShapes() int { return len(tt.shapes) }

// EdgeShape returns the symmetry class of the edge shape slot.
func (tt *TilingType) EdgeShape(slot int) (EdgeShape, error) {
	if slot < 0 || slot >= len(tt.shapes) {
		return 0, fmt.Errorf("%w: slot %d of %s", ErrInvalidEdgeSlot, slot, tt)
	}
	return tt.shapes[slot], nil
}

// EdgeShapeID returns the slot that shapes the polygon edge running from
// vertex i to vertex i+1.
func (tt *TilingType) EdgeShapeID(i int) int { return tt.edges[i].slot }

// EdgeOrientation reports how the slot's canonical curve is placed on
// polygon edge i. A reversed edge traverses the curve from (1, 0) to
// (0, 0); a flipped edge mirrors it across the edge.
func (tt *TilingType) EdgeOrientation(i int) (reversed, flipped bool) {
	return tt.edges[i].reversed, tt.edges[i].flipped
}

// DefaultParameters returns a copy of the type's default parameters.
func (tt *TilingType) DefaultParameters() []float64 {
	return slices.Clone(tt.defaults)
}

var (
	catalog [94]*TilingType
	typeIDs []int
)

func init() {
	for _, family := range [][]TilingType{
		hexagonTypes,
		pentagonTypes,
		quadrilateralTypes,
		triangleTypes,
	} {
		for i := range family {
			tt := &family[i]
			if err := tt.validate(); err != nil {
				panic(fmt.Sprintf("tactile: invalid catalog entry %s: %s", tt, err))
			}
			if catalog[tt.id] != nil {
				panic(fmt.Sprintf("tactile: duplicate catalog entry %s", tt))
			}
			catalog[tt.id] = tt
			typeIDs = append(typeIDs, tt.id)
		}
	}
	slices.Sort(typeIDs)
	if len(typeIDs) != NumTypes {
		panic(fmt.Sprintf("tactile: catalog has %d entries, want %d", len(typeIDs), NumTypes))
	}
}

// validate checks the internal consistency of a catalog entry and fills in
// derived fields.
func (tt *TilingType) validate() error {
	if tt.id <= 0 || tt.id >= len(catalog) {
		return fmt.Errorf("id out of range")
	}
	if n := len(tt.vertices(tt.defaults)); n != len(tt.edges) || n < 3 || n > 6 {
		return fmt.Errorf("%d vertices for %d edges", n, len(tt.edges))
	}
	as := tt.aspects(tt.defaults)
	if len(as) == 0 || as[0] != Identity {
		return fmt.Errorf("first aspect must be the identity")
	}
	tt.numAspects = len(as)
	used := make([]bool, len(tt.shapes))
	for i, e := range tt.edges {
		if e.slot < 0 || e.slot >= len(tt.shapes) {
			return fmt.Errorf("edge %d references slot %d", i, e.slot)
		}
		used[e.slot] = true
	}
	if slices.Contains(used, false) {
		return fmt.Errorf("unreferenced edge shape slot")
	}
	if len(tt.colour.init) != tt.numAspects {
		return fmt.Errorf("%d initial colours for %d aspects", len(tt.colour.init), tt.numAspects)
	}
	if err := tt.colour.p1.Validate(); err != nil {
		return err
	}
	if err := tt.colour.p2.Validate(); err != nil {
		return err
	}
	for _, c := range tt.colour.init {
		if c < 0 || c >= len(tt.colour.p1) {
			return fmt.Errorf("initial colour %d out of range", c)
		}
	}
	return nil
}

// LookupType returns the catalog entry for an IH type number. The valid
// numbers are not contiguous; see [TypeIDs].
func LookupType(id int) (*TilingType, error) {
	if id <= 0 || id >= len(catalog) || catalog[id] == nil {
		return nil, fmt.Errorf("%w: %d", ErrUnknownTilingType, id)
	}
	return catalog[id], nil
}

// TypeIDs returns the IH numbers of all catalog entries in ascending order.
func TypeIDs() []int {
	return slices.Clone(typeIDs)
}

// Types returns the catalog entries in ascending order of their IH number.
func Types() iter.Seq[*TilingType] {
	return func(yield func(*TilingType) bool) {
		for _, id := range typeIDs {
			if !yield(catalog[id]) {
				return
			}
		}
	}
}

// LogValue implements [slog.LogValuer].
func (tt *TilingType) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("id", tt.id),
		slog.String("symmetry", tt.symmetry),
		slog.Int("parameters", len(tt.defaults)),
		slog.Int("aspects", tt.numAspects),
	)
}

package tactile

import (
	"fmt"
	"iter"
	"log/slog"
	"slices"
)

// Tiling is one isohedral tiling: a tiling type together with values for its
// shape parameters and control points for its edge shapes.
//
// All derived geometry is recomputed when the tiling is modified, so reads
// never observe stale state. Methods that modify the tiling must not be
// called concurrently with any other method; read-only methods may run
// concurrently with each other. Sequences returned by [Tiling.FillRegionBounds]
// and [Tiling.FillRegionQuad] capture the geometry at the time of the call.
type Tiling struct {
	tt     *TilingType
	params []float64
	shapes [][]Point

	geom *geometry
}

// geometry holds everything derived from the type, parameters and edge
// shapes. It is replaced as a whole and never modified after construction.
type geometry struct {
	verts    []Point
	t1, t2   Vec2
	toBasis  Affine // world space to lattice coordinates
	aspects  []Affine
	frames   []Affine // per polygon edge, edge frame including orientation
	boundary Polygon
	colour   *Colouring

	// Per aspect, the bounding boxes of the aspect's tile in world space and
	// in lattice coordinates.
	worldBox   []Rect
	latticeBox []Rect
}

// New returns a tiling of the type with the given IH number, using the
// type's default parameters and straight edges.
func New(id int) (*Tiling, error) {
	tt, err := LookupType(id)
	if err != nil {
		return nil, err
	}
	return NewTiling(tt), nil
}

// NewTiling returns a tiling of type tt, using the type's default parameters
// and straight edges.
func NewTiling(tt *TilingType) *Tiling {
	t := &Tiling{}
	if err := t.reset(tt); err != nil {
		// Catalog defaults are checked by the tests.
		panic(fmt.Sprintf("tactile: default geometry of %s: %s", tt, err))
	}
	return t
}

// SetType switches the tiling to the type with the given IH number. The
// parameters are reset to the type's defaults and all edges become straight.
// On error the tiling is left unchanged.
func (t *Tiling) SetType(id int) error {
	tt, err := LookupType(id)
	if err != nil {
		return err
	}
	return t.reset(tt)
}

func (t *Tiling) reset(tt *TilingType) error {
	shapes := make([][]Point, len(tt.shapes))
	for i, s := range tt.shapes {
		shapes[i] = s.DefaultControlPoints()
	}
	g, err := compute(tt, tt.defaults, shapes)
	if err != nil {
		return err
	}
	t.tt, t.params, t.shapes, t.geom = tt, slices.Clone(tt.defaults), shapes, g
	Logger().Debug("tiling type changed", slog.Any("type", tt))
	return nil
}

// Type returns the tiling's type.
func (t *Tiling) Type() *TilingType { return t.tt }

// NumParameters returns the number of shape parameters of the tiling's type.
func (t *Tiling) NumParameters() int { return len(t.params) }

// Parameters returns a copy of the current shape parameters.
func (t *Tiling) Parameters() []float64 { return slices.Clone(t.params) }

// SetParameters sets the shape parameters. It returns [ErrParameterCount] if
// len(params) differs from [Tiling.NumParameters] and [ErrDegenerateTransform]
// if the parameters collapse the lattice. On error the tiling is left
// unchanged.
//
// Parameters are not otherwise validated. Values far from the defaults can
// produce self-intersecting prototiles.
func (t *Tiling) SetParameters(params []float64) error {
	if len(params) != len(t.params) {
		return fmt.Errorf("%w: %s takes %d, got %d", ErrParameterCount, t.tt, len(t.params), len(params))
	}
	params = slices.Clone(params)
	g, err := compute(t.tt, params, t.shapes)
	if err != nil {
		return err
	}
	t.params, t.geom = params, g
	return nil
}

// NumEdgeShapes returns the number of edge shape slots.
func (t *Tiling) NumEdgeShapes() int { return len(t.shapes) }

// EdgeShape returns a copy of the control points of an edge shape slot, in
// the slot's local frame, where the edge runs from (0, 0) to (1, 0).
func (t *Tiling) EdgeShape(slot int) ([]Point, error) {
	if slot < 0 || slot >= len(t.shapes) {
		return nil, fmt.Errorf("%w: slot %d of %s", ErrInvalidEdgeSlot, slot, t.tt)
	}
	return slices.Clone(t.shapes[slot]), nil
}

// SetEdgeShape replaces the control points of an edge shape slot. Points are
// given in the slot's local frame. The number of points must match the
// slot's class; see [EdgeShape.ControlPoints].
func (t *Tiling) SetEdgeShape(slot int, pts []Point) error {
	cls, err := t.tt.EdgeShape(slot)
	if err != nil {
		return err
	}
	if err := cls.check(pts); err != nil {
		return fmt.Errorf("slot %d of %s: %w", slot, t.tt, err)
	}
	shapes := slices.Clone(t.shapes)
	shapes[slot] = slices.Clone(pts)
	g, err := compute(t.tt, t.params, shapes)
	if err != nil {
		return err
	}
	t.shapes, t.geom = shapes, g
	return nil
}

// EdgeOutline returns the full curve of an edge shape slot in its local
// frame, from (0, 0) to (1, 0), with the derived points of symmetric classes
// filled in.
func (t *Tiling) EdgeOutline(slot int) ([]Point, error) {
	cls, err := t.tt.EdgeShape(slot)
	if err != nil {
		return nil, err
	}
	return cls.Outline(t.shapes[slot]), nil
}

// Vertices returns the prototile's tiling vertices in counter-clockwise
// order.
func (t *Tiling) Vertices() []Point { return slices.Clone(t.geom.verts) }

// T1 returns the first lattice translation vector.
func (t *Tiling) T1() Vec2 { return t.geom.t1 }

// T2 returns the second lattice translation vector.
func (t *Tiling) T2() Vec2 { return t.geom.t2 }

// NumAspects returns the number of prototile copies in one translational
// unit.
func (t *Tiling) NumAspects() int { return len(t.geom.aspects) }

// AspectTransform returns the transform that places aspect i of the
// translational unit. Aspect 0 is the identity.
func (t *Tiling) AspectTransform(i int) Affine { return t.geom.aspects[i] }

// LatticeTransform returns the transform that places aspect i of the
// translational unit at lattice position (t1, t2).
func (t *Tiling) LatticeTransform(t1, t2, aspect int) Affine {
	return t.geom.place(t1, t2, aspect)
}

func (g *geometry) place(t1, t2, aspect int) Affine {
	off := Lattice(t1, t2, g.t1, g.t2)
	return g.aspects[aspect].ThenTranslate(off)
}

// Boundary returns the closed outline of the prototile: every tiling vertex
// followed by the interior points of the edge leaving it.
func (t *Tiling) Boundary() Polygon { return slices.Clone(t.geom.boundary) }

// TileOutline returns the boundary of the tile instance ti, that is
// [Tiling.Boundary] placed by ti.Transform.
func (t *Tiling) TileOutline(ti TileInstance) Polygon {
	return slices.Collect(Transform(slices.Values(t.geom.boundary), ti.Transform))
}

// Part describes how one polygon edge of the prototile is drawn.
type Part struct {
	// Edge is the index of the polygon edge, which runs from vertex Edge to
	// vertex Edge+1.
	Edge int
	// Slot is the edge shape slot that supplies the curve.
	Slot int
	// Shape is the slot's class.
	Shape EdgeShape
	// Transform maps the slot's local frame onto the edge, including the
	// orientation given by Reversed and Flipped.
	Transform Affine
	// Reversed reports whether the edge traverses the slot's curve from
	// (1, 0) to (0, 0).
	Reversed bool
	// Flipped reports whether the slot's curve is mirrored across the edge.
	Flipped bool
	// Second reports whether an earlier edge of the prototile already uses
	// the same slot.
	Second bool
}

// Parts returns one [Part] per polygon edge, in winding order.
func (t *Tiling) Parts() iter.Seq[Part] {
	g, tt := t.geom, t.tt
	return func(yield func(Part) bool) {
		seen := make([]bool, len(tt.shapes))
		for i, e := range tt.edges {
			p := Part{
				Edge:      i,
				Slot:      e.slot,
				Shape:     tt.shapes[e.slot],
				Transform: g.frames[i],
				Reversed:  e.reversed,
				Flipped:   e.flipped,
				Second:    seen[e.slot],
			}
			seen[e.slot] = true
			if !yield(p) {
				return
			}
		}
	}
}

// Colouring returns the type's default colouring with [DefaultPalette].
func (t *Tiling) Colouring() *Colouring { return t.geom.colour }

// ColourIndex returns the colour index of the tile at lattice position
// (t1, t2) with the given aspect under the type's default colouring.
func (t *Tiling) ColourIndex(t1, t2, aspect int) int {
	return t.geom.colour.Index(t1, t2, aspect)
}

// compute derives the geometry of a tiling. It does not modify its
// arguments.
func compute(tt *TilingType, params []float64, shapes [][]Point) (*geometry, error) {
	g := &geometry{
		verts:   tt.vertices(params),
		aspects: tt.aspects(params),
	}
	g.t1, g.t2 = tt.lattice(params)

	basis := Affine{g.t1.X, g.t2.X, 0, g.t1.Y, g.t2.Y, 0}
	inv, err := basis.Invert()
	if err != nil {
		return nil, fmt.Errorf("lattice of %s: %w", tt, err)
	}
	g.toBasis = inv

	n := len(g.verts)
	g.frames = make([]Affine, n)
	for i, e := range tt.edges {
		g.frames[i] = MatchSegment(g.verts[i], g.verts[(i+1)%n]).Mul(e.orientation())
	}

	for i, e := range tt.edges {
		g.boundary = append(g.boundary, g.verts[i])
		in := tt.shapes[e.slot].Interior(shapes[e.slot])
		if e.reversed {
			slices.Reverse(in)
		}
		for _, pt := range in {
			g.boundary = append(g.boundary, pt.Transform(g.frames[i]))
		}
	}

	g.worldBox = make([]Rect, len(g.aspects))
	g.latticeBox = make([]Rect, len(g.aspects))
	for a, aff := range g.aspects {
		w, l := emptyRect, emptyRect
		for _, pt := range g.boundary {
			pt = pt.Transform(aff)
			w = w.UnionPoint(pt)
			l = l.UnionPoint(pt.Transform(g.toBasis))
		}
		g.worldBox[a], g.latticeBox[a] = w, l
	}

	g.colour, err = tt.Colouring(nil)
	if err != nil {
		return nil, err
	}

	Logger().Debug("tiling geometry recomputed",
		slog.Any("type", tt),
		slog.Any("parameters", params),
		slog.Int("boundary", len(g.boundary)))
	return g, nil
}

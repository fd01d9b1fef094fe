package tactile

import "fmt"

// EdgeShape classifies the symmetry constraint on one edge of a prototile.
// The class determines how many control points the edge carries and how the
// rest of the edge is derived from them.
type EdgeShape uint8

const (
	// EdgeIdentity is a straight edge between its two tiling vertices. Edges
	// that lie on a mirror line of the tiling have this class.
	EdgeIdentity EdgeShape = iota
	// EdgeGeneric is an edge without internal symmetry. It carries two
	// control points.
	EdgeGeneric
	// EdgeHalfTurnSymmetric is invariant under a half-turn about the edge's
	// midpoint. It carries one control point; the other is derived.
	EdgeHalfTurnSymmetric
	// EdgeMirrorSymmetric is invariant under reflection across the edge's
	// perpendicular bisector. It carries one control point; the other is
	// derived.
	EdgeMirrorSymmetric
)

func (e EdgeShape) String() string {
	switch e {
	case EdgeIdentity:
		return "I"
	case EdgeGeneric:
		return "J"
	case EdgeHalfTurnSymmetric:
		return "S"
	case EdgeMirrorSymmetric:
		return "U"
	default:
		return fmt.Sprintf("EdgeShape(%d)", uint8(e))
	}
}

// ControlPoints returns the number of free control points an edge of this
// class carries.
func (e EdgeShape) ControlPoints() int {
	switch e {
	case EdgeGeneric:
		return 2
	case EdgeHalfTurnSymmetric, EdgeMirrorSymmetric:
		return 1
	default:
		return 0
	}
}

// DefaultControlPoints returns control points that keep the edge straight.
// Points are expressed in the edge's local frame, in which the edge runs
// from (0, 0) to (1, 0).
func (e EdgeShape) DefaultControlPoints() []Point {
	switch e {
	case EdgeGeneric:
		return []Point{{1.0 / 3, 0}, {2.0 / 3, 0}}
	case EdgeHalfTurnSymmetric, EdgeMirrorSymmetric:
		return []Point{{0.25, 0}}
	default:
		return nil
	}
}

// Interior expands the control points of an edge into the full sequence of
// interior points, in the edge's local frame, ordered from (0, 0) towards
// (1, 0). The caller is responsible for passing the right number of points.
func (e EdgeShape) Interior(pts []Point) []Point {
	switch e {
	case EdgeGeneric:
		return []Point{pts[0], pts[1]}
	case EdgeHalfTurnSymmetric:
		return []Point{pts[0], pts[0].HalfTurn()}
	case EdgeMirrorSymmetric:
		return []Point{pts[0], pts[0].Mirror()}
	default:
		return nil
	}
}

// Outline returns the whole edge in its local frame, including the end
// points (0, 0) and (1, 0).
func (e EdgeShape) Outline(pts []Point) []Point {
	in := e.Interior(pts)
	out := make([]Point, 0, len(in)+2)
	out = append(out, Point{0, 0})
	out = append(out, in...)
	return append(out, Point{1, 0})
}

func (e EdgeShape) check(pts []Point) error {
	if len(pts) != e.ControlPoints() {
		return fmt.Errorf("%w: %s edge needs %d, got %d", ErrControlPointCount, e, e.ControlPoints(), len(pts))
	}
	return nil
}

// edgeUse describes how one polygon edge of a prototile references its
// shape slot. The canonical curve of the slot is mapped onto the edge
// through the edge frame; reversed and flipped select which of the four
// symmetries of the unit segment is applied first.
type edgeUse struct {
	slot     int
	reversed bool
	flipped  bool
}

// orientation returns the symmetry of the unit segment selected by the
// flags: the identity, a half-turn about (0.5, 0), a reflection in the
// x-axis, or a reflection in the line x = 0.5.
func (u edgeUse) orientation() Affine {
	switch {
	case u.reversed && u.flipped:
		return Affine{-1, 0, 1, 0, 1, 0}
	case u.reversed:
		return Affine{-1, 0, 1, 0, -1, 0}
	case u.flipped:
		return FlipY
	default:
		return Identity
	}
}

// Package tactile generates isohedral tilings of the plane.
//
// An isohedral tiling is a tiling by congruent copies of a single tile, the
// prototile, in which the symmetries of the tiling can map any tile onto any
// other. Up to combinatorial equivalence there are 93 such tilings; the
// package implements the 81 of them in which every tile can be given a
// shape without additional symmetry. They are known by their numbers in the
// IH classification of Grünbaum and Shephard. Use [TypeIDs] or [Types] to
// list them, since the numbers are not contiguous.
//
// # Tilings
//
// A [Tiling] combines a [TilingType] with values for the type's shape
// parameters. From these it derives the tiling vertices of the prototile,
// the two lattice vectors T1 and T2 that repeat the tiling, and the aspect
// transforms that place the copies of the prototile forming one
// translational unit.
//
//	t, err := tactile.New(50)
//	if err != nil {
//	    return err
//	}
//	params := t.Parameters()
//	params[0] += 0.1
//	if err := t.SetParameters(params); err != nil {
//	    return err
//	}
//
// # Edge shapes
//
// The edges of the prototile need not be straight. Edges that must have the
// same shape share an edge shape slot, and the [EdgeShape] of a slot limits
// how it may be deformed: [EdgeIdentity] edges stay straight,
// [EdgeGeneric] edges take two free control points, and
// [EdgeHalfTurnSymmetric] and [EdgeMirrorSymmetric] edges take one control
// point from which the rest of the edge follows. Control points are given in
// the edge's local frame, where the edge runs from (0, 0) to (1, 0).
// [Tiling.Parts] describes how each slot is mapped onto each polygon edge,
// and [Tiling.Boundary] returns the resulting outline.
//
// # Filling regions
//
// [Tiling.FillRegionBounds] and [Tiling.FillRegionQuad] return lazy
// sequences of the tiles that cover a region of the plane. Each
// [TileInstance] carries the transform that places the prototile as well as
// the tile's lattice coordinates and aspect; [Tiling.TileOutline] returns
// the placed outline of a tile.
//
// # Colouring
//
// A [Colouring] assigns colours to tiles from their lattice coordinates and
// aspect. Every type has a default colouring with three colours in which no
// two tiles sharing an edge have the same colour; see
// [TilingType.Colouring].
//
// # Logging
//
// The package logs through log/slog. It is silent unless a logger is
// configured with [SetLogger].
package tactile

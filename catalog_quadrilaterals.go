package tactile

var quadrilateralTypes = []TilingType{
	// IH30, [3.4.6.4], p31m
	{
		id:       30,
		symmetry: "p31m",
		defaults: []float64{0.5},
		vertices: func(p []float64) []Point {
			return []Point{{0, 0}, {0.5, 0}, {p[0], 2.0 / 3 * s3 * p[0]}, {-0.25 + p[0], -0.5*s3 + 2*s3*p[0]}}
		},
		lattice: func(p []float64) (Vec2, Vec2) {
			return Vec2{2 * p[0], 0}, Vec2{-p[0], 2 * s3 * p[0]}
		},
		aspects: func(p []float64) []Affine {
			return []Affine{
				Identity,
				{-0.5, s3, 0, s3, 0.5, 0},
				{1, 0, 0, 0, -1, 0},
				{-0.5, -s3, 0, -s3, 0.5, 0},
				{-0.5, -s3, 0, s3, -0.5, 0},
				{-0.5, s3, 0, -s3, -0.5, 0},
			}
		},
		edges:  []edgeUse{{0, false, false}, {1, false, false}, {1, true, false}, {2, false, false}},
		shapes: []EdgeShape{EdgeIdentity, EdgeGeneric, EdgeIdentity},
		colour: colouringData{
			init: []int{0, 1, 2, 0, 2, 1},
			p1:   Permutation{0, 1, 2},
			p2:   Permutation{0, 1, 2},
		},
	},
	// IH31, [3.4.6.4], p6
	{
		id:       31,
		symmetry: "p6",
		vertices: func(p []float64) []Point {
			return []Point{{0, 0}, {0.5, 0}, {0.5, 1.0 / 3 * s3}, {0.25, 0.5 * s3}}
		},
		lattice: func(p []float64) (Vec2, Vec2) {
			return Vec2{1, 0}, Vec2{-0.5, s3}
		},
		aspects: func(p []float64) []Affine {
			return []Affine{
				Identity,
				{0.5, -s3, 0, s3, 0.5, 0},
				{0.5, s3, 0, -s3, 0.5, 0},
				{-1, 0, 0, 0, -1, 0},
				{-0.5, -s3, 0, s3, -0.5, 0},
				{-0.5, s3, 0, -s3, -0.5, 0},
			}
		},
		edges:  []edgeUse{{0, false, false}, {1, false, false}, {1, true, false}, {0, true, false}},
		shapes: []EdgeShape{EdgeGeneric, EdgeGeneric},
		colour: colouringData{
			init: []int{0, 1, 2, 0, 2, 1},
			p1:   Permutation{0, 1, 2},
			p2:   Permutation{0, 1, 2},
		},
	},
	// IH32, [3.4.6.4], p6m
	{
		id:       32,
		symmetry: "p6m",
		vertices: func(p []float64) []Point {
			return []Point{{0, 0}, {0.5, 0}, {0.5, 1.0 / 3 * s3}, {0.25, 0.5 * s3}}
		},
		lattice: func(p []float64) (Vec2, Vec2) {
			return Vec2{1, 0}, Vec2{-0.5, s3}
		},
		aspects: func(p []float64) []Affine {
			return []Affine{
				Identity,
				{0.5, -s3, 0, s3, 0.5, 0},
				{0.5, s3, 0, -s3, 0.5, 0},
				{-1, 0, 0, 0, -1, 0},
				{-0.5, -s3, 0, s3, -0.5, 0},
				{-0.5, s3, 0, -s3, -0.5, 0},
			}
		},
		edges:  []edgeUse{{0, false, false}, {1, false, false}, {1, true, true}, {0, true, true}},
		shapes: []EdgeShape{EdgeIdentity, EdgeIdentity},
		colour: colouringData{
			init: []int{0, 1, 2, 0, 2, 1},
			p1:   Permutation{0, 1, 2},
			p2:   Permutation{0, 1, 2},
		},
	},
	// IH33, [3.6.3.6], p3
	{
		id:       33,
		symmetry: "p3",
		vertices: func(p []float64) []Point {
			return []Point{{0, 0}, {0.5, -1.0 / 3 * s3}, {1, 0}, {0.5, 1.0 / 3 * s3}}
		},
		lattice: func(p []float64) (Vec2, Vec2) {
			return Vec2{1, 0}, Vec2{-0.5, s3}
		},
		aspects: func(p []float64) []Affine {
			return []Affine{
				Identity,
				{-0.5, -s3, 0, s3, -0.5, 0},
				{-0.5, s3, 0, -s3, -0.5, 0},
			}
		},
		edges:  []edgeUse{{0, false, false}, {0, true, false}, {1, false, false}, {1, true, false}},
		shapes: []EdgeShape{EdgeGeneric, EdgeGeneric},
		colour: colouringData{
			init: []int{0, 1, 2},
			p1:   Permutation{0, 1, 2},
			p2:   Permutation{0, 1, 2},
		},
	},
	// IH34, [3.6.3.6], p31m
	{
		id:       34,
		symmetry: "p31m",
		vertices: func(p []float64) []Point {
			return []Point{{0, 0}, {0.5, -1.0 / 3 * s3}, {1, 0}, {0.5, 1.0 / 3 * s3}}
		},
		lattice: func(p []float64) (Vec2, Vec2) {
			return Vec2{1, 0}, Vec2{-0.5, s3}
		},
		aspects: func(p []float64) []Affine {
			return []Affine{
				Identity,
				{-0.5, -s3, 0, s3, -0.5, 0},
				{-0.5, s3, 0, -s3, -0.5, 0},
			}
		},
		edges:  []edgeUse{{0, false, false}, {0, true, false}, {0, false, true}, {0, true, true}},
		shapes: []EdgeShape{EdgeGeneric},
		colour: colouringData{
			init: []int{0, 1, 2},
			p1:   Permutation{0, 1, 2},
			p2:   Permutation{0, 1, 2},
		},
	},
	// IH36, [3.6.3.6], p6
	{
		id:       36,
		symmetry: "p6",
		vertices: func(p []float64) []Point {
			return []Point{{0, 0}, {0.5, -1.0 / 3 * s3}, {1, 0}, {0.5, 1.0 / 3 * s3}}
		},
		lattice: func(p []float64) (Vec2, Vec2) {
			return Vec2{1, 0}, Vec2{-0.5, s3}
		},
		aspects: func(p []float64) []Affine {
			return []Affine{
				Identity,
				{0.5, s3, 0, -s3, 0.5, 0},
				{0.5, -s3, 0, s3, 0.5, 0},
			}
		},
		edges:  []edgeUse{{0, false, false}, {0, true, false}, {0, false, false}, {0, true, false}},
		shapes: []EdgeShape{EdgeGeneric},
		colour: colouringData{
			init: []int{0, 1, 2},
			p1:   Permutation{0, 1, 2},
			p2:   Permutation{0, 1, 2},
		},
	},
	// IH37, [3.6.3.6], p6m
	{
		id:       37,
		symmetry: "p6m",
		vertices: func(p []float64) []Point {
			return []Point{{0, 0}, {0.5, -1.0 / 3 * s3}, {1, 0}, {0.5, 1.0 / 3 * s3}}
		},
		lattice: func(p []float64) (Vec2, Vec2) {
			return Vec2{1, 0}, Vec2{-0.5, s3}
		},
		aspects: func(p []float64) []Affine {
			return []Affine{
				Identity,
				{0.5, s3, 0, -s3, 0.5, 0},
				{0.5, -s3, 0, s3, 0.5, 0},
			}
		},
		edges:  []edgeUse{{0, false, false}, {0, true, false}, {0, false, false}, {0, true, true}},
		shapes: []EdgeShape{EdgeIdentity},
		colour: colouringData{
			init: []int{0, 1, 2},
			p1:   Permutation{0, 1, 2},
			p2:   Permutation{0, 1, 2},
		},
	},
	// IH41, [4⁴], p1
	{
		id:       41,
		symmetry: "p1",
		defaults: []float64{1, 1},
		vertices: func(p []float64) []Point {
			return []Point{{0, 0}, {1, 0}, {p[0], p[1]}, {-1 + p[0], p[1]}}
		},
		lattice: func(p []float64) (Vec2, Vec2) {
			return Vec2{1, 0}, Vec2{-1 + p[0], p[1]}
		},
		aspects: func(p []float64) []Affine {
			return []Affine{Identity}
		},
		edges:  []edgeUse{{0, false, false}, {1, false, false}, {0, true, false}, {1, true, false}},
		shapes: []EdgeShape{EdgeGeneric, EdgeGeneric},
		colour: colouringData{
			init: []int{0},
			p1:   Permutation{1, 2, 0},
			p2:   Permutation{1, 2, 0},
		},
	},
	// IH42, [4⁴], pg
	{
		id:       42,
		symmetry: "pg",
		defaults: []float64{0, 1},
		vertices: func(p []float64) []Point {
			return []Point{{0, 0}, {1, p[0]}, {p[1], p[1]}, {p[0], 1}}
		},
		lattice: func(p []float64) (Vec2, Vec2) {
			return Vec2{1 - p[0], -1 + p[0]}, Vec2{p[1], p[1]}
		},
		aspects: func(p []float64) []Affine {
			return []Affine{
				Identity,
				{0, -1, p[0], -1, 0, 1},
			}
		},
		edges:  []edgeUse{{0, false, false}, {1, false, false}, {1, false, true}, {0, false, true}},
		shapes: []EdgeShape{EdgeGeneric, EdgeGeneric},
		colour: colouringData{
			init: []int{0, 1},
			p1:   Permutation{0, 1, 2},
			p2:   Permutation{0, 1, 2},
		},
	},
	// IH43, [4⁴], pg
	{
		id:       43,
		symmetry: "pg",
		defaults: []float64{0, 1},
		vertices: func(p []float64) []Point {
			return []Point{{0, 0}, {1, p[0]}, {1, p[1]}, {0, -p[0] + p[1]}}
		},
		lattice: func(p []float64) (Vec2, Vec2) {
			return Vec2{0, p[0] - p[1]}, Vec2{2, 0}
		},
		aspects: func(p []float64) []Affine {
			return []Affine{
				Identity,
				{1, 0, 1, 0, -1, p[0]},
			}
		},
		edges:  []edgeUse{{0, false, false}, {1, false, false}, {0, true, false}, {1, false, true}},
		shapes: []EdgeShape{EdgeGeneric, EdgeGeneric},
		colour: colouringData{
			init: []int{0, 0},
			p1:   Permutation{1, 2, 0},
			p2:   Permutation{0, 1, 2},
		},
	},
	// IH44, [4⁴], pm
	{
		id:       44,
		symmetry: "pm",
		defaults: []float64{0, 1},
		vertices: func(p []float64) []Point {
			return []Point{{0, 0}, {1, p[0]}, {1, p[1]}, {0, -p[0] + p[1]}}
		},
		lattice: func(p []float64) (Vec2, Vec2) {
			return Vec2{0, p[0] - p[1]}, Vec2{2, 0}
		},
		aspects: func(p []float64) []Affine {
			return []Affine{
				Identity,
				{-1, 0, 0, 0, 1, 0},
			}
		},
		edges:  []edgeUse{{0, false, false}, {1, false, false}, {0, true, false}, {2, false, false}},
		shapes: []EdgeShape{EdgeGeneric, EdgeIdentity, EdgeIdentity},
		colour: colouringData{
			init: []int{0, 1},
			p1:   Permutation{1, 2, 0},
			p2:   Permutation{0, 1, 2},
		},
	},
	// IH45, [4⁴], cm
	{
		id:       45,
		symmetry: "cm",
		defaults: []float64{0, 1},
		vertices: func(p []float64) []Point {
			return []Point{{0, 0}, {1, p[0]}, {1, p[1]}, {0, p[0] + p[1]}}
		},
		lattice: func(p []float64) (Vec2, Vec2) {
			return Vec2{1, -p[1]}, Vec2{1, p[1]}
		},
		aspects: func(p []float64) []Affine {
			return []Affine{
				Identity,
				{-1, 0, 0, 0, 1, 0},
			}
		},
		edges:  []edgeUse{{0, false, false}, {1, false, false}, {0, false, true}, {2, false, false}},
		shapes: []EdgeShape{EdgeGeneric, EdgeIdentity, EdgeIdentity},
		colour: colouringData{
			init: []int{0, 1},
			p1:   Permutation{0, 1, 2},
			p2:   Permutation{0, 1, 2},
		},
	},
	// IH46, [4⁴], p2
	{
		id:       46,
		symmetry: "p2",
		defaults: []float64{1, 1},
		vertices: func(p []float64) []Point {
			return []Point{{0, 0}, {1, 0}, {p[0], p[1]}, {-1 + p[0], p[1]}}
		},
		lattice: func(p []float64) (Vec2, Vec2) {
			return Vec2{1 - p[0], -p[1]}, Vec2{2, 0}
		},
		aspects: func(p []float64) []Affine {
			return []Affine{
				Identity,
				{-1, 0, 0, 0, -1, 0},
			}
		},
		edges:  []edgeUse{{0, false, false}, {1, false, false}, {0, true, false}, {2, false, false}},
		shapes: []EdgeShape{EdgeGeneric, EdgeHalfTurnSymmetric, EdgeHalfTurnSymmetric},
		colour: colouringData{
			init: []int{0, 0},
			p1:   Permutation{1, 2, 0},
			p2:   Permutation{0, 1, 2},
		},
	},
	// IH47, [4⁴], p2
	{
		id:       47,
		symmetry: "p2",
		defaults: []float64{1, 1, 0, 1},
		vertices: func(p []float64) []Point {
			return []Point{{0, 0}, {1, 0}, {p[0], p[1]}, {p[2], p[3]}}
		},
		lattice: func(p []float64) (Vec2, Vec2) {
			return Vec2{1 - p[2], -p[3]}, Vec2{p[0], p[1]}
		},
		aspects: func(p []float64) []Affine {
			return []Affine{
				Identity,
				{-1, 0, p[2], 0, -1, p[3]},
			}
		},
		edges:  []edgeUse{{0, false, false}, {1, false, false}, {2, false, false}, {3, false, false}},
		shapes: []EdgeShape{EdgeHalfTurnSymmetric, EdgeHalfTurnSymmetric, EdgeHalfTurnSymmetric, EdgeHalfTurnSymmetric},
		colour: colouringData{
			init: []int{0, 1},
			p1:   Permutation{0, 1, 2},
			p2:   Permutation{0, 1, 2},
		},
	},
	// IH49, [4⁴], pgg
	{
		id:       49,
		symmetry: "pgg",
		defaults: []float64{0, 1, 1},
		vertices: func(p []float64) []Point {
			return []Point{{0, 0}, {1, p[0]}, {p[1], p[2]}, {p[0], 1}}
		},
		lattice: func(p []float64) (Vec2, Vec2) {
			return Vec2{1 - p[0], -1 + p[0]}, Vec2{p[1] + p[2], p[1] + p[2]}
		},
		aspects: func(p []float64) []Affine {
			return []Affine{
				Identity,
				{0, 1, p[1], 1, 0, p[2]},
				{0, -1, p[0], -1, 0, 1},
				{-1, 0, p[0] - p[2], 0, -1, 1 - p[1]},
			}
		},
		edges:  []edgeUse{{0, false, false}, {1, false, false}, {2, false, false}, {0, false, true}},
		shapes: []EdgeShape{EdgeGeneric, EdgeHalfTurnSymmetric, EdgeHalfTurnSymmetric},
		colour: colouringData{
			init: []int{0, 0, 1, 1},
			p1:   Permutation{0, 1, 2},
			p2:   Permutation{0, 1, 2},
		},
	},
	// IH50, [4⁴], pgg
	{
		id:       50,
		symmetry: "pgg",
		defaults: []float64{0, 1, 1},
		vertices: func(p []float64) []Point {
			return []Point{{0, 0}, {1, p[0]}, {p[1], p[2]}, {-1 + p[1], p[0] + p[2]}}
		},
		lattice: func(p []float64) (Vec2, Vec2) {
			return Vec2{2, 0}, Vec2{0, 2 * p[2]}
		},
		aspects: func(p []float64) []Affine {
			return []Affine{
				Identity,
				{-1, 0, p[1], 0, 1, p[2]},
				{-1, 0, -1 + p[1], 0, -1, p[0] + p[2]},
				{1, 0, 1, 0, -1, p[0]},
			}
		},
		edges:  []edgeUse{{0, false, false}, {1, false, false}, {0, false, true}, {2, false, false}},
		shapes: []EdgeShape{EdgeGeneric, EdgeHalfTurnSymmetric, EdgeHalfTurnSymmetric},
		colour: colouringData{
			init: []int{0, 1, 1, 0},
			p1:   Permutation{0, 1, 2},
			p2:   Permutation{0, 1, 2},
		},
	},
	// IH51, [4⁴], pgg
	{
		id:       51,
		symmetry: "pgg",
		defaults: []float64{1},
		vertices: func(p []float64) []Point {
			return []Point{{0, 0}, {1, 0}, {1, p[0]}, {0, p[0]}}
		},
		lattice: func(p []float64) (Vec2, Vec2) {
			return Vec2{2, 0}, Vec2{0, 2 * p[0]}
		},
		aspects: func(p []float64) []Affine {
			return []Affine{
				Identity,
				{-1, 0, 1, 0, 1, p[0]},
				{1, 0, 1, 0, -1, p[0]},
				{-1, 0, 0, 0, -1, 0},
			}
		},
		edges:  []edgeUse{{0, false, false}, {1, false, false}, {0, false, true}, {1, false, true}},
		shapes: []EdgeShape{EdgeGeneric, EdgeGeneric},
		colour: colouringData{
			init: []int{0, 1, 1, 0},
			p1:   Permutation{0, 1, 2},
			p2:   Permutation{0, 1, 2},
		},
	},
	// IH52, [4⁴], pmg
	{
		id:       52,
		symmetry: "pmg",
		defaults: []float64{1, 1, 0},
		vertices: func(p []float64) []Point {
			return []Point{{0, 0}, {1, 0}, {p[0], p[1]}, {p[2], p[1]}}
		},
		lattice: func(p []float64) (Vec2, Vec2) {
			return Vec2{1 + p[0] - p[2], 0}, Vec2{0, 2 * p[1]}
		},
		aspects: func(p []float64) []Affine {
			return []Affine{
				Identity,
				{1, 0, 0, 0, -1, 0},
				{-1, 0, p[2], 0, -1, p[1]},
				{-1, 0, p[2], 0, 1, p[1]},
			}
		},
		edges:  []edgeUse{{0, false, false}, {1, false, false}, {2, false, false}, {3, false, false}},
		shapes: []EdgeShape{EdgeIdentity, EdgeHalfTurnSymmetric, EdgeIdentity, EdgeHalfTurnSymmetric},
		colour: colouringData{
			init: []int{0, 1, 1, 0},
			p1:   Permutation{0, 1, 2},
			p2:   Permutation{0, 1, 2},
		},
	},
	// IH53, [4⁴], pmg
	{
		id:       53,
		symmetry: "pmg",
		defaults: []float64{1, 1},
		vertices: func(p []float64) []Point {
			return []Point{{0, 0}, {1, 0}, {p[0], p[1]}, {-1 + p[0], p[1]}}
		},
		lattice: func(p []float64) (Vec2, Vec2) {
			return Vec2{1, 0}, Vec2{0, 4 * p[1]}
		},
		aspects: func(p []float64) []Affine {
			return []Affine{
				Identity,
				{-1, 0, -2 + 2*p[0], 0, -1, 2 * p[1]},
				{-1, 0, -2 + 2*p[0], 0, 1, 2 * p[1]},
				{1, 0, 0, 0, -1, 0},
			}
		},
		edges:  []edgeUse{{0, false, false}, {1, false, false}, {2, false, false}, {1, true, false}},
		shapes: []EdgeShape{EdgeIdentity, EdgeGeneric, EdgeHalfTurnSymmetric},
		colour: colouringData{
			init: []int{0, 0, 1, 1},
			p1:   Permutation{1, 2, 0},
			p2:   Permutation{0, 1, 2},
		},
	},
	// IH54, [4⁴], cmm
	{
		id:       54,
		symmetry: "cmm",
		defaults: []float64{1, 1},
		vertices: func(p []float64) []Point {
			return []Point{{0, 0}, {1, 0}, {1, p[0]}, {0, p[1]}}
		},
		lattice: func(p []float64) (Vec2, Vec2) {
			return Vec2{2, 0}, Vec2{-1, p[0] + p[1]}
		},
		aspects: func(p []float64) []Affine {
			return []Affine{
				Identity,
				{1, 0, 0, 0, -1, 0},
				{-1, 0, 0, 0, -1, 0},
				{-1, 0, 0, 0, 1, 0},
			}
		},
		edges:  []edgeUse{{0, false, false}, {1, false, false}, {2, false, false}, {3, false, false}},
		shapes: []EdgeShape{EdgeIdentity, EdgeIdentity, EdgeHalfTurnSymmetric, EdgeIdentity},
		colour: colouringData{
			init: []int{0, 1, 0, 1},
			p1:   Permutation{0, 1, 2},
			p2:   Permutation{1, 2, 0},
		},
	},
	// IH55, [4⁴], p4
	{
		id:       55,
		symmetry: "p4",
		vertices: func(p []float64) []Point {
			return []Point{{0, 0}, {1, 0}, {1, 1}, {0, 1}}
		},
		lattice: func(p []float64) (Vec2, Vec2) {
			return Vec2{2, 0}, Vec2{0, 2}
		},
		aspects: func(p []float64) []Affine {
			return []Affine{
				Identity,
				{0, -1, 1, 1, 0, 1},
				{0, 1, 1, -1, 0, 1},
				{-1, 0, 0, 0, -1, 0},
			}
		},
		edges:  []edgeUse{{0, false, false}, {0, true, false}, {1, false, false}, {1, true, false}},
		shapes: []EdgeShape{EdgeGeneric, EdgeGeneric},
		colour: colouringData{
			init: []int{0, 1, 1, 0},
			p1:   Permutation{0, 1, 2},
			p2:   Permutation{0, 1, 2},
		},
	},
	// IH56, [4⁴], p4g
	{
		id:       56,
		symmetry: "p4g",
		defaults: []float64{0},
		vertices: func(p []float64) []Point {
			return []Point{{0, 0}, {1, p[0]}, {1, 1}, {-p[0], 1}}
		},
		lattice: func(p []float64) (Vec2, Vec2) {
			return Vec2{2, -2}, Vec2{2, 2}
		},
		aspects: func(p []float64) []Affine {
			return []Affine{
				Identity,
				{-1, 0, 0, 0, -1, 0},
				{0, 1, 0, -1, 0, 0},
				{-1, 0, 2, 0, 1, 0},
				{0, -1, 2, -1, 0, 0},
				{0, 1, 2, 1, 0, 0},
				{0, -1, 0, 1, 0, 0},
				{1, 0, 0, 0, -1, 2},
			}
		},
		edges:  []edgeUse{{0, false, false}, {1, false, false}, {2, false, false}, {0, true, false}},
		shapes: []EdgeShape{EdgeGeneric, EdgeIdentity, EdgeIdentity},
		colour: colouringData{
			init: []int{0, 0, 1, 1, 0, 0, 1, 1},
			p1:   Permutation{0, 1, 2},
			p2:   Permutation{0, 1, 2},
		},
	},
	// IH57, [4⁴], pm
	{
		id:       57,
		symmetry: "pm",
		defaults: []float64{1},
		vertices: func(p []float64) []Point {
			return []Point{{0, 0}, {1, 0}, {1, p[0]}, {0, p[0]}}
		},
		lattice: func(p []float64) (Vec2, Vec2) {
			return Vec2{1, 0}, Vec2{0, p[0]}
		},
		aspects: func(p []float64) []Affine {
			return []Affine{Identity}
		},
		edges:  []edgeUse{{0, false, false}, {1, false, false}, {0, true, false}, {1, true, false}},
		shapes: []EdgeShape{EdgeIdentity, EdgeMirrorSymmetric},
		colour: colouringData{
			init: []int{0},
			p1:   Permutation{1, 2, 0},
			p2:   Permutation{1, 2, 0},
		},
	},
	// IH58, [4⁴], cm
	{
		id:       58,
		symmetry: "cm",
		defaults: []float64{0},
		vertices: func(p []float64) []Point {
			return []Point{{0, 0}, {1, p[0]}, {1 + p[0], 1 + p[0]}, {p[0], 1}}
		},
		lattice: func(p []float64) (Vec2, Vec2) {
			return Vec2{1, p[0]}, Vec2{p[0], 1}
		},
		aspects: func(p []float64) []Affine {
			return []Affine{Identity}
		},
		edges:  []edgeUse{{0, false, false}, {0, false, true}, {0, true, false}, {0, true, true}},
		shapes: []EdgeShape{EdgeGeneric},
		colour: colouringData{
			init: []int{0},
			p1:   Permutation{1, 2, 0},
			p2:   Permutation{1, 2, 0},
		},
	},
	// IH59, [4⁴], p2
	{
		id:       59,
		symmetry: "p2",
		defaults: []float64{1, 1},
		vertices: func(p []float64) []Point {
			return []Point{{0, 0}, {1, 0}, {p[0], p[1]}, {-1 + p[0], p[1]}}
		},
		lattice: func(p []float64) (Vec2, Vec2) {
			return Vec2{1, 0}, Vec2{-1 + p[0], p[1]}
		},
		aspects: func(p []float64) []Affine {
			return []Affine{Identity}
		},
		edges:  []edgeUse{{0, false, false}, {1, false, false}, {0, true, false}, {1, true, false}},
		shapes: []EdgeShape{EdgeHalfTurnSymmetric, EdgeHalfTurnSymmetric},
		colour: colouringData{
			init: []int{0},
			p1:   Permutation{1, 2, 0},
			p2:   Permutation{1, 2, 0},
		},
	},
	// IH61, [4⁴], pgg
	{
		id:       61,
		symmetry: "pgg",
		defaults: []float64{0},
		vertices: func(p []float64) []Point {
			return []Point{{0, 0}, {1, p[0]}, {1 + p[0], 1 + p[0]}, {p[0], 1}}
		},
		lattice: func(p []float64) (Vec2, Vec2) {
			return Vec2{1 - p[0], -1 + p[0]}, Vec2{1 + p[0], 1 + p[0]}
		},
		aspects: func(p []float64) []Affine {
			return []Affine{
				Identity,
				{0, 1, 1, 1, 0, p[0]},
			}
		},
		edges:  []edgeUse{{0, false, false}, {0, false, true}, {0, false, false}, {0, false, true}},
		shapes: []EdgeShape{EdgeGeneric},
		colour: colouringData{
			init: []int{0, 1},
			p1:   Permutation{0, 1, 2},
			p2:   Permutation{0, 1, 2},
		},
	},
	// IH62, [4⁴], pmg
	{
		id:       62,
		symmetry: "pmg",
		defaults: []float64{1},
		vertices: func(p []float64) []Point {
			return []Point{{0, 0}, {1, 0}, {1, p[0]}, {0, p[0]}}
		},
		lattice: func(p []float64) (Vec2, Vec2) {
			return Vec2{0, -p[0]}, Vec2{2, 0}
		},
		aspects: func(p []float64) []Affine {
			return []Affine{
				Identity,
				{-1, 0, 0, 0, -1, 0},
			}
		},
		edges:  []edgeUse{{0, false, false}, {1, false, false}, {0, true, false}, {1, false, true}},
		shapes: []EdgeShape{EdgeMirrorSymmetric, EdgeHalfTurnSymmetric},
		colour: colouringData{
			init: []int{0, 0},
			p1:   Permutation{1, 2, 0},
			p2:   Permutation{0, 1, 2},
		},
	},
	// IH64, [4⁴], pmg
	{
		id:       64,
		symmetry: "pmg",
		defaults: []float64{0, 1},
		vertices: func(p []float64) []Point {
			return []Point{{0, 0}, {1, p[0]}, {p[1], p[1]}, {p[0], 1}}
		},
		lattice: func(p []float64) (Vec2, Vec2) {
			return Vec2{1 - p[0], -1 + p[0]}, Vec2{p[1], p[1]}
		},
		aspects: func(p []float64) []Affine {
			return []Affine{
				Identity,
				{-1, 0, p[0], 0, -1, 1},
			}
		},
		edges:  []edgeUse{{0, false, false}, {1, false, false}, {1, true, true}, {0, true, true}},
		shapes: []EdgeShape{EdgeHalfTurnSymmetric, EdgeHalfTurnSymmetric},
		colour: colouringData{
			init: []int{0, 1},
			p1:   Permutation{0, 1, 2},
			p2:   Permutation{0, 1, 2},
		},
	},
	// IH66, [4⁴], pmg
	{
		id:       66,
		symmetry: "pmg",
		defaults: []float64{0, 1},
		vertices: func(p []float64) []Point {
			return []Point{{0, 0}, {1, p[0]}, {1, p[1]}, {0, -p[0] + p[1]}}
		},
		lattice: func(p []float64) (Vec2, Vec2) {
			return Vec2{0, p[0] - p[1]}, Vec2{2, 0}
		},
		aspects: func(p []float64) []Affine {
			return []Affine{
				Identity,
				{-1, 0, 0, 0, 1, 0},
			}
		},
		edges:  []edgeUse{{0, false, false}, {1, false, false}, {0, true, false}, {1, false, false}},
		shapes: []EdgeShape{EdgeHalfTurnSymmetric, EdgeIdentity},
		colour: colouringData{
			init: []int{0, 1},
			p1:   Permutation{1, 2, 0},
			p2:   Permutation{0, 1, 2},
		},
	},
	// IH67, [4⁴], cmm
	{
		id:       67,
		symmetry: "cmm",
		defaults: []float64{1, 1},
		vertices: func(p []float64) []Point {
			return []Point{{0, 0}, {1, 0}, {p[0], p[1]}, {1 - p[0], p[1]}}
		},
		lattice: func(p []float64) (Vec2, Vec2) {
			return Vec2{p[0], -p[1]}, Vec2{p[0], p[1]}
		},
		aspects: func(p []float64) []Affine {
			return []Affine{
				Identity,
				{1, 0, 0, 0, -1, 0},
			}
		},
		edges:  []edgeUse{{0, false, false}, {1, false, false}, {2, false, false}, {1, false, true}},
		shapes: []EdgeShape{EdgeIdentity, EdgeHalfTurnSymmetric, EdgeIdentity},
		colour: colouringData{
			init: []int{0, 1},
			p1:   Permutation{0, 1, 2},
			p2:   Permutation{0, 1, 2},
		},
	},
	// IH68, [4⁴], p4
	{
		id:       68,
		symmetry: "p4",
		vertices: func(p []float64) []Point {
			return []Point{{0, 0}, {1, 0}, {1, 1}, {0, 1}}
		},
		lattice: func(p []float64) (Vec2, Vec2) {
			return Vec2{1, -1}, Vec2{1, 1}
		},
		aspects: func(p []float64) []Affine {
			return []Affine{
				Identity,
				{0, -1, 0, 1, 0, 0},
			}
		},
		edges:  []edgeUse{{0, false, false}, {0, true, false}, {0, false, false}, {0, true, false}},
		shapes: []EdgeShape{EdgeGeneric},
		colour: colouringData{
			init: []int{0, 1},
			p1:   Permutation{0, 1, 2},
			p2:   Permutation{0, 1, 2},
		},
	},
	// IH69, [4⁴], p4g
	{
		id:       69,
		symmetry: "p4g",
		vertices: func(p []float64) []Point {
			return []Point{{0, 0}, {1, 0}, {1, 1}, {0, 1}}
		},
		lattice: func(p []float64) (Vec2, Vec2) {
			return Vec2{2, 0}, Vec2{0, 2}
		},
		aspects: func(p []float64) []Affine {
			return []Affine{
				Identity,
				{0, -1, 1, 1, 0, 1},
				{0, 1, 1, -1, 0, 1},
				{-1, 0, 0, 0, -1, 0},
			}
		},
		edges:  []edgeUse{{0, false, false}, {0, true, false}, {0, false, true}, {0, true, true}},
		shapes: []EdgeShape{EdgeGeneric},
		colour: colouringData{
			init: []int{0, 1, 1, 0},
			p1:   Permutation{0, 1, 2},
			p2:   Permutation{0, 1, 2},
		},
	},
	// IH71, [4⁴], pmm
	{
		id:       71,
		symmetry: "pmm",
		defaults: []float64{1},
		vertices: func(p []float64) []Point {
			return []Point{{0, 0}, {1, 0}, {1, p[0]}, {0, p[0]}}
		},
		lattice: func(p []float64) (Vec2, Vec2) {
			return Vec2{1, 0}, Vec2{0, p[0]}
		},
		aspects: func(p []float64) []Affine {
			return []Affine{Identity}
		},
		edges:  []edgeUse{{0, false, false}, {1, false, false}, {0, true, false}, {1, true, false}},
		shapes: []EdgeShape{EdgeIdentity, EdgeIdentity},
		colour: colouringData{
			init: []int{0},
			p1:   Permutation{1, 2, 0},
			p2:   Permutation{1, 2, 0},
		},
	},
	// IH72, [4⁴], cmm
	{
		id:       72,
		symmetry: "cmm",
		defaults: []float64{0},
		vertices: func(p []float64) []Point {
			return []Point{{0, 0}, {1, p[0]}, {1 + p[0], 1 + p[0]}, {p[0], 1}}
		},
		lattice: func(p []float64) (Vec2, Vec2) {
			return Vec2{1, p[0]}, Vec2{p[0], 1}
		},
		aspects: func(p []float64) []Affine {
			return []Affine{Identity}
		},
		edges:  []edgeUse{{0, false, false}, {0, false, true}, {0, true, false}, {0, false, true}},
		shapes: []EdgeShape{EdgeHalfTurnSymmetric},
		colour: colouringData{
			init: []int{0},
			p1:   Permutation{1, 2, 0},
			p2:   Permutation{1, 2, 0},
		},
	},
	// IH73, [4⁴], p4
	{
		id:       73,
		symmetry: "p4",
		vertices: func(p []float64) []Point {
			return []Point{{0, 0}, {1, 0}, {1, 1}, {0, 1}}
		},
		lattice: func(p []float64) (Vec2, Vec2) {
			return Vec2{1, 0}, Vec2{0, 1}
		},
		aspects: func(p []float64) []Affine {
			return []Affine{Identity}
		},
		edges:  []edgeUse{{0, false, false}, {0, true, false}, {0, true, false}, {0, true, false}},
		shapes: []EdgeShape{EdgeHalfTurnSymmetric},
		colour: colouringData{
			init: []int{0},
			p1:   Permutation{1, 2, 0},
			p2:   Permutation{1, 2, 0},
		},
	},
	// IH74, [4⁴], p4g
	{
		id:       74,
		symmetry: "p4g",
		vertices: func(p []float64) []Point {
			return []Point{{0, 0}, {1, 0}, {1, 1}, {0, 1}}
		},
		lattice: func(p []float64) (Vec2, Vec2) {
			return Vec2{1, -1}, Vec2{1, 1}
		},
		aspects: func(p []float64) []Affine {
			return []Affine{
				Identity,
				{0, -1, 0, 1, 0, 0},
			}
		},
		edges:  []edgeUse{{0, false, false}, {0, true, false}, {0, false, false}, {0, true, false}},
		shapes: []EdgeShape{EdgeMirrorSymmetric},
		colour: colouringData{
			init: []int{0, 1},
			p1:   Permutation{0, 1, 2},
			p2:   Permutation{0, 1, 2},
		},
	},
	// IH76, [4⁴], p4m
	{
		id:       76,
		symmetry: "p4m",
		vertices: func(p []float64) []Point {
			return []Point{{0, 0}, {1, 0}, {1, 1}, {0, 1}}
		},
		lattice: func(p []float64) (Vec2, Vec2) {
			return Vec2{1, 0}, Vec2{0, 1}
		},
		aspects: func(p []float64) []Affine {
			return []Affine{Identity}
		},
		edges:  []edgeUse{{0, false, false}, {0, true, false}, {0, true, false}, {0, true, false}},
		shapes: []EdgeShape{EdgeIdentity},
		colour: colouringData{
			init: []int{0},
			p1:   Permutation{1, 2, 0},
			p2:   Permutation{1, 2, 0},
		},
	},
}

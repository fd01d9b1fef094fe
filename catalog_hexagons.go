package tactile

var hexagonTypes = []TilingType{
	// IH01, [3⁶], p1
	{
		id:       1,
		symmetry: "p1",
		defaults: []float64{1.5, s3, 1, 2 * s3},
		vertices: func(p []float64) []Point {
			return []Point{{0, 0}, {1, 0}, {p[0], p[1]}, {p[2], p[3]}, {-1 + p[2], p[3]}, {-p[0] + p[2], -p[1] + p[3]}}
		},
		lattice: func(p []float64) (Vec2, Vec2) {
			return Vec2{1 + p[0] - p[2], p[1] - p[3]}, Vec2{p[0], p[1]}
		},
		aspects: func(p []float64) []Affine {
			return []Affine{Identity}
		},
		edges:  []edgeUse{{0, false, false}, {1, false, false}, {2, false, false}, {0, true, false}, {1, true, false}, {2, true, false}},
		shapes: []EdgeShape{EdgeGeneric, EdgeGeneric, EdgeGeneric},
		colour: colouringData{
			init: []int{0},
			p1:   Permutation{1, 2, 0},
			p2:   Permutation{2, 0, 1},
		},
	},
	// IH02, [3⁶], pg
	{
		id:       2,
		symmetry: "pg",
		defaults: []float64{0, 1, 2 * s3, 0},
		vertices: func(p []float64) []Point {
			return []Point{{0, 0}, {1, p[0]}, {1.5 + s3*p[0], s3 + 0.5*p[0]}, {p[1], p[2]}, {p[3], -2*s3 - p[0] + 2*s3*p[1] + p[2] - 2*s3*p[3]}, {-1.5 - s3*p[0] + p[1], -s3 - 0.5*p[0] + p[2]}}
		},
		lattice: func(p []float64) (Vec2, Vec2) {
			return Vec2{1.5 + s3*p[0], s3 + 0.5*p[0]}, Vec2{0.5 + s3*p[0] - 0.5*p[1] - s3*p[2] + p[3], -s3 - 1.5*p[0] + s3*p[1] + 1.5*p[2] - 2*s3*p[3]}
		},
		aspects: func(p []float64) []Affine {
			return []Affine{
				Identity,
				{0.5, s3, -0.5 - s3*p[0], s3, -0.5, -s3 + 0.5*p[0]},
			}
		},
		edges:  []edgeUse{{0, false, false}, {0, false, true}, {1, false, false}, {2, false, false}, {2, false, true}, {1, true, false}},
		shapes: []EdgeShape{EdgeGeneric, EdgeGeneric, EdgeGeneric},
		colour: colouringData{
			init: []int{0, 1},
			p1:   Permutation{1, 2, 0},
			p2:   Permutation{0, 1, 2},
		},
	},
	// IH03, [3⁶], pg
	{
		id:       3,
		symmetry: "pg",
		defaults: []float64{0, 1.5, s3, 0},
		vertices: func(p []float64) []Point {
			return []Point{{0, 0}, {1, p[0]}, {p[1], p[2]}, {-0.5 + s3*p[0] + p[1], s3 + 0.5*p[0] + p[2]}, {p[3], 2.0/3*s3*p[1] + p[2] - 2.0/3*s3*p[3]}, {1 - p[1] + p[3], p[0] + 2.0/3*s3*p[1] - 2.0/3*s3*p[3]}}
		},
		lattice: func(p []float64) (Vec2, Vec2) {
			return Vec2{p[1] - p[3], -2.0/3*s3*p[1] + 2.0/3*s3*p[3]}, Vec2{0.5*p[1] + s3*p[2], s3*p[1] + 1.5*p[2]}
		},
		aspects: func(p []float64) []Affine {
			return []Affine{
				Identity,
				{-0.5, s3, p[1], s3, 0.5, p[2]},
			}
		},
		edges:  []edgeUse{{0, false, false}, {1, false, false}, {0, false, true}, {2, false, false}, {1, true, false}, {2, false, true}},
		shapes: []EdgeShape{EdgeGeneric, EdgeGeneric, EdgeGeneric},
		colour: colouringData{
			init: []int{0, 2},
			p1:   Permutation{1, 2, 0},
			p2:   Permutation{0, 1, 2},
		},
	},
	// IH04, [3⁶], p2
	{
		id:       4,
		symmetry: "p2",
		defaults: []float64{1.5, s3, 1, 2 * s3, -0.5, s3},
		vertices: func(p []float64) []Point {
			return []Point{{0, 0}, {1, 0}, {p[0], p[1]}, {p[2], p[3]}, {-1 + p[2], p[3]}, {p[4], p[5]}}
		},
		lattice: func(p []float64) (Vec2, Vec2) {
			return Vec2{1 - p[2], -p[3]}, Vec2{1 + p[0] - p[4], p[1] - p[5]}
		},
		aspects: func(p []float64) []Affine {
			return []Affine{
				Identity,
				{-1, 0, p[4], 0, -1, p[5]},
			}
		},
		edges:  []edgeUse{{0, false, false}, {1, false, false}, {2, false, false}, {0, true, false}, {3, false, false}, {4, false, false}},
		shapes: []EdgeShape{EdgeGeneric, EdgeHalfTurnSymmetric, EdgeHalfTurnSymmetric, EdgeHalfTurnSymmetric, EdgeHalfTurnSymmetric},
		colour: colouringData{
			init: []int{0, 2},
			p1:   Permutation{1, 2, 0},
			p2:   Permutation{0, 1, 2},
		},
	},
	// IH05, [3⁶], pgg
	{
		id:       5,
		symmetry: "pgg",
		defaults: []float64{0, 1, 2 * s3, 0, 2 * s3},
		vertices: func(p []float64) []Point {
			return []Point{{0, 0}, {1, p[0]}, {1.5 + s3*p[0], s3 + 0.5*p[0]}, {p[1], p[2]}, {p[3], p[4]}, {-1.5 - s3*p[0] + p[1], -s3 - 0.5*p[0] + p[2]}}
		},
		lattice: func(p []float64) (Vec2, Vec2) {
			return Vec2{1.5 + s3*p[0], s3 + 0.5*p[0]}, Vec2{-0.5 + s3*p[0] + 0.5*p[1] - s3*p[2] + 0.5*p[3] - s3*p[4], s3 - 1.5*p[0] - s3*p[1] + 1.5*p[2] - s3*p[3] + 1.5*p[4]}
		},
		aspects: func(p []float64) []Affine {
			return []Affine{
				Identity,
				{-1, 0, -1.5 - s3*p[0] + p[1] + p[3], 0, -1, -s3 - 0.5*p[0] + p[2] + p[4]},
				{0.5, s3, -0.5 - s3*p[0], s3, -0.5, -s3 + 0.5*p[0]},
				{-0.5, -s3, -2 - 2*s3*p[0] + 0.5*p[1] + s3*p[2] + 0.5*p[3] + s3*p[4], -s3, 0.5, -2*s3 + s3*p[1] - 0.5*p[2] + s3*p[3] - 0.5*p[4]},
			}
		},
		edges:  []edgeUse{{0, false, false}, {0, false, true}, {1, false, false}, {2, false, false}, {3, false, false}, {1, true, false}},
		shapes: []EdgeShape{EdgeGeneric, EdgeGeneric, EdgeHalfTurnSymmetric, EdgeHalfTurnSymmetric},
		colour: colouringData{
			init: []int{0, 1, 1, 2},
			p1:   Permutation{1, 2, 0},
			p2:   Permutation{0, 1, 2},
		},
	},
	// IH06, [3⁶], pgg
	{
		id:       6,
		symmetry: "pgg",
		defaults: []float64{0, 1.5, s3, 1, 2 * s3},
		vertices: func(p []float64) []Point {
			return []Point{{0, 0}, {1, p[0]}, {p[1], p[2]}, {p[3], p[4]}, {0.5 + s3*p[0] + 0.5*p[1] + s3*p[2] - 0.5*p[3] - s3*p[4], s3 - 0.5*p[0] + s3*p[1] - 0.5*p[2] - s3*p[3] + 0.5*p[4]}, {0.5*p[1] + s3*p[2] - 0.5*p[3] - s3*p[4], s3*p[1] - 0.5*p[2] - s3*p[3] + 0.5*p[4]}}
		},
		lattice: func(p []float64) (Vec2, Vec2) {
			return Vec2{0.5 - s3*p[0] + 0.5*p[1] - s3*p[2] - 0.5*p[3] + s3*p[4], -s3 + 1.5*p[0] - s3*p[1] + 1.5*p[2] + s3*p[3] - 1.5*p[4]}, Vec2{1.5*p[3] + s3*p[4], s3*p[3] + 0.5*p[4]}
		},
		aspects: func(p []float64) []Affine {
			return []Affine{
				Identity,
				{-0.5, -s3, 1 + p[1] - p[3], -s3, 0.5, p[0] + p[2] - p[4]},
				{-1, 0, 1 + p[1] - 1.5*p[3] - s3*p[4], 0, -1, p[0] + p[2] - s3*p[3] - 0.5*p[4]},
				{0.5, s3, p[3], s3, -0.5, p[4]},
			}
		},
		edges:  []edgeUse{{0, false, false}, {1, false, false}, {2, false, false}, {3, false, false}, {0, false, true}, {2, false, true}},
		shapes: []EdgeShape{EdgeGeneric, EdgeHalfTurnSymmetric, EdgeGeneric, EdgeHalfTurnSymmetric},
		colour: colouringData{
			init: []int{0, 2, 0, 2},
			p1:   Permutation{0, 1, 2},
			p2:   Permutation{1, 2, 0},
		},
	},
	// IH07, [3⁶], p3
	{
		id:       7,
		symmetry: "p3",
		defaults: []float64{1, 2 * s3},
		vertices: func(p []float64) []Point {
			return []Point{{0, 0}, {1, 0}, {1.5, s3}, {p[0], p[1]}, {1.5*p[0] - s3*p[1], -2*s3 + s3*p[0] + 1.5*p[1]}, {0.5 + 0.5*p[0] - s3*p[1], -s3 + s3*p[0] + 0.5*p[1]}}
		},
		lattice: func(p []float64) (Vec2, Vec2) {
			return Vec2{2 * s3 * p[1], 2*s3 - 2*s3*p[0]}, Vec2{-1.5 + 1.5*p[0] - s3*p[1], -s3 + s3*p[0] + 1.5*p[1]}
		},
		aspects: func(p []float64) []Affine {
			return []Affine{
				Identity,
				{-0.5, -s3, 1.5, s3, -0.5, -s3},
				{-0.5, s3, 1.5, -s3, -0.5, s3},
			}
		},
		edges:  []edgeUse{{0, false, false}, {0, true, false}, {1, false, false}, {1, true, false}, {2, false, false}, {2, true, false}},
		shapes: []EdgeShape{EdgeGeneric, EdgeGeneric, EdgeGeneric},
		colour: colouringData{
			init: []int{0, 1, 2},
			p1:   Permutation{0, 1, 2},
			p2:   Permutation{0, 1, 2},
		},
	},
	// IH08, [3⁶], cm
	{
		id:       8,
		symmetry: "cm",
		defaults: []float64{0, 1.5},
		vertices: func(p []float64) []Point {
			return []Point{{0, 0}, {1, p[0]}, {p[1], -2*s3 + p[0] + 2*s3*p[1]}, {-0.5 + s3*p[0] + p[1], -s3 + 1.5*p[0] + 2*s3*p[1]}, {-1.5 + s3*p[0] + p[1], -s3 + 0.5*p[0] + 2*s3*p[1]}, {-0.5 + s3*p[0], s3 + 0.5*p[0]}}
		},
		lattice: func(p []float64) (Vec2, Vec2) {
			return Vec2{1.5 - s3*p[0], -s3 + 0.5*p[0]}, Vec2{p[1], -2*s3 + p[0] + 2*s3*p[1]}
		},
		aspects: func(p []float64) []Affine {
			return []Affine{Identity}
		},
		edges:  []edgeUse{{0, false, false}, {1, false, false}, {0, false, true}, {0, true, false}, {1, true, false}, {0, true, true}},
		shapes: []EdgeShape{EdgeGeneric, EdgeIdentity},
		colour: colouringData{
			init: []int{0},
			p1:   Permutation{1, 2, 0},
			p2:   Permutation{2, 0, 1},
		},
	},
	// IH09, [3⁶], cm
	{
		id:       9,
		symmetry: "cm",
		defaults: []float64{1.5, s3},
		vertices: func(p []float64) []Point {
			return []Point{{0, 0}, {1, 0}, {p[0], p[1]}, {1, 2 * p[1]}, {0, 2 * p[1]}, {1 - p[0], p[1]}}
		},
		lattice: func(p []float64) (Vec2, Vec2) {
			return Vec2{p[0], -p[1]}, Vec2{p[0], p[1]}
		},
		aspects: func(p []float64) []Affine {
			return []Affine{Identity}
		},
		edges:  []edgeUse{{0, false, false}, {1, false, false}, {1, false, true}, {0, true, false}, {1, true, false}, {1, true, true}},
		shapes: []EdgeShape{EdgeMirrorSymmetric, EdgeGeneric},
		colour: colouringData{
			init: []int{0},
			p1:   Permutation{1, 2, 0},
			p2:   Permutation{2, 0, 1},
		},
	},
	// IH10, [3⁶], p2
	{
		id:       10,
		symmetry: "p2",
		defaults: []float64{1.5, s3, 1, 2 * s3},
		vertices: func(p []float64) []Point {
			return []Point{{0, 0}, {1, 0}, {p[0], p[1]}, {p[2], p[3]}, {-1 + p[2], p[3]}, {-p[0] + p[2], -p[1] + p[3]}}
		},
		lattice: func(p []float64) (Vec2, Vec2) {
			return Vec2{1 + p[0] - p[2], p[1] - p[3]}, Vec2{p[0], p[1]}
		},
		aspects: func(p []float64) []Affine {
			return []Affine{Identity}
		},
		edges:  []edgeUse{{0, false, false}, {1, false, false}, {2, false, false}, {0, true, false}, {1, true, false}, {2, true, false}},
		shapes: []EdgeShape{EdgeHalfTurnSymmetric, EdgeHalfTurnSymmetric, EdgeHalfTurnSymmetric},
		colour: colouringData{
			init: []int{0},
			p1:   Permutation{1, 2, 0},
			p2:   Permutation{2, 0, 1},
		},
	},
	// IH11, [3⁶], pgg
	{
		id:       11,
		symmetry: "pgg",
		defaults: []float64{0, 1.5, s3},
		vertices: func(p []float64) []Point {
			return []Point{{0, 0}, {1, p[0]}, {p[1], p[2]}, {-0.5 + s3*p[0] + p[1], s3 + 0.5*p[0] + p[2]}, {-1.5 + s3*p[0] + p[1], s3 - 0.5*p[0] + p[2]}, {-0.5 + s3*p[0], s3 + 0.5*p[0]}}
		},
		lattice: func(p []float64) (Vec2, Vec2) {
			return Vec2{1.5 - s3*p[0], -s3 + 0.5*p[0]}, Vec2{0.5*p[1] + s3*p[2], s3*p[1] + 1.5*p[2]}
		},
		aspects: func(p []float64) []Affine {
			return []Affine{
				Identity,
				{0.5, -s3, -0.5 + s3*p[0], -s3, -0.5, s3 + 0.5*p[0]},
			}
		},
		edges:  []edgeUse{{0, false, false}, {1, false, false}, {0, false, true}, {0, false, false}, {1, true, false}, {0, false, true}},
		shapes: []EdgeShape{EdgeGeneric, EdgeHalfTurnSymmetric},
		colour: colouringData{
			init: []int{0, 1},
			p1:   Permutation{1, 2, 0},
			p2:   Permutation{0, 1, 2},
		},
	},
	// IH12, [3⁶], pmg
	{
		id:       12,
		symmetry: "pmg",
		defaults: []float64{1.5, s3, -0.5},
		vertices: func(p []float64) []Point {
			return []Point{{0, 0}, {1, 0}, {p[0], p[1]}, {1, 2 * p[1]}, {0, 2 * p[1]}, {p[2], p[1]}}
		},
		lattice: func(p []float64) (Vec2, Vec2) {
			return Vec2{0, -2 * p[1]}, Vec2{1 + p[0] - p[2], 0}
		},
		aspects: func(p []float64) []Affine {
			return []Affine{
				Identity,
				{-1, 0, p[2], 0, -1, p[1]},
			}
		},
		edges:  []edgeUse{{0, false, false}, {1, false, false}, {1, false, true}, {0, true, false}, {2, false, false}, {2, false, true}},
		shapes: []EdgeShape{EdgeIdentity, EdgeHalfTurnSymmetric, EdgeHalfTurnSymmetric},
		colour: colouringData{
			init: []int{0, 2},
			p1:   Permutation{1, 2, 0},
			p2:   Permutation{0, 1, 2},
		},
	},
	// IH13, [3⁶], pmg
	{
		id:       13,
		symmetry: "pmg",
		defaults: []float64{0, 1.5, 0},
		vertices: func(p []float64) []Point {
			return []Point{{0, 0}, {1, p[0]}, {p[1], -2*s3 + p[0] + 2*s3*p[1]}, {-0.5 + s3*p[0] + p[1], -s3 + 1.5*p[0] + 2*s3*p[1]}, {p[2], -2*s3 + p[0] + 8.0/3*s3*p[1] - 2.0/3*s3*p[2]}, {1 - p[1] + p[2], p[0] + 2.0/3*s3*p[1] - 2.0/3*s3*p[2]}}
		},
		lattice: func(p []float64) (Vec2, Vec2) {
			return Vec2{p[1] - p[2], -2.0/3*s3*p[1] + 2.0/3*s3*p[2]}, Vec2{-1.5 + s3*p[0] + 2*p[1], -3*s3 + 1.5*p[0] + 4*s3*p[1]}
		},
		aspects: func(p []float64) []Affine {
			return []Affine{
				Identity,
				{-1, 0, 1 - p[1] + p[2], 0, -1, p[0] + 2.0/3*s3*p[1] - 2.0/3*s3*p[2]},
			}
		},
		edges:  []edgeUse{{0, false, false}, {1, false, false}, {0, true, true}, {2, false, false}, {1, true, false}, {2, true, true}},
		shapes: []EdgeShape{EdgeHalfTurnSymmetric, EdgeMirrorSymmetric, EdgeHalfTurnSymmetric},
		colour: colouringData{
			init: []int{0, 1},
			p1:   Permutation{1, 2, 0},
			p2:   Permutation{0, 1, 2},
		},
	},
	// IH14, [3⁶], p31m
	{
		id:       14,
		symmetry: "p31m",
		defaults: []float64{0},
		vertices: func(p []float64) []Point {
			return []Point{{0, 0}, {1, p[0]}, {1.5 - s3*p[0], s3 - 0.5*p[0]}, {1, 2*s3 - 2*p[0]}, {0, 2*s3 - p[0]}, {-0.5 - s3*p[0], s3 - 0.5*p[0]}}
		},
		lattice: func(p []float64) (Vec2, Vec2) {
			return Vec2{3 - 2*s3*p[0], 0}, Vec2{-1.5 + s3*p[0], 3*s3 - 1.5*p[0]}
		},
		aspects: func(p []float64) []Affine {
			return []Affine{
				Identity,
				{-0.5, s3, 0, -s3, -0.5, 0},
				{-0.5, -s3, 0, s3, -0.5, 0},
			}
		},
		edges:  []edgeUse{{0, false, false}, {1, false, false}, {1, true, true}, {0, true, true}, {0, false, true}, {0, true, false}},
		shapes: []EdgeShape{EdgeGeneric, EdgeIdentity},
		colour: colouringData{
			init: []int{0, 1, 2},
			p1:   Permutation{0, 1, 2},
			p2:   Permutation{0, 1, 2},
		},
	},
	// IH15, [3⁶], p3
	{
		id:       15,
		symmetry: "p3",
		vertices: func(p []float64) []Point {
			return []Point{{0, 0}, {1, 0}, {1.5, s3}, {1, 2 * s3}, {0, 2 * s3}, {-0.5, s3}}
		},
		lattice: func(p []float64) (Vec2, Vec2) {
			return Vec2{1.5, -s3}, Vec2{1.5, s3}
		},
		aspects: func(p []float64) []Affine {
			return []Affine{Identity}
		},
		edges:  []edgeUse{{0, false, false}, {0, true, false}, {0, false, false}, {0, true, false}, {0, false, false}, {0, true, false}},
		shapes: []EdgeShape{EdgeGeneric},
		colour: colouringData{
			init: []int{0},
			p1:   Permutation{1, 2, 0},
			p2:   Permutation{2, 0, 1},
		},
	},
	// IH16, [3⁶], cmm
	{
		id:       16,
		symmetry: "cmm",
		defaults: []float64{0, 1},
		vertices: func(p []float64) []Point {
			return []Point{{0, 0}, {1, p[0]}, {1.5 + s3*p[0], s3 + 0.5*p[0]}, {p[1], 4*s3 + 2*p[0] - 2*s3*p[1]}, {-1 + p[1], 4*s3 + p[0] - 2*s3*p[1]}, {-1.5 - s3*p[0] + p[1], 3*s3 + 1.5*p[0] - 2*s3*p[1]}}
		},
		lattice: func(p []float64) (Vec2, Vec2) {
			return Vec2{2.5 + s3*p[0] - p[1], -3*s3 - 0.5*p[0] + 2*s3*p[1]}, Vec2{1.5 + s3*p[0], s3 + 0.5*p[0]}
		},
		aspects: func(p []float64) []Affine {
			return []Affine{Identity}
		},
		edges:  []edgeUse{{0, false, false}, {0, true, true}, {1, false, false}, {0, true, false}, {0, false, true}, {1, true, false}},
		shapes: []EdgeShape{EdgeHalfTurnSymmetric, EdgeIdentity},
		colour: colouringData{
			init: []int{0},
			p1:   Permutation{1, 2, 0},
			p2:   Permutation{2, 0, 1},
		},
	},
	// IH17, [3⁶], p31m
	{
		id:       17,
		symmetry: "p31m",
		vertices: func(p []float64) []Point {
			return []Point{{0, 0}, {1, 0}, {1.5, s3}, {1, 2 * s3}, {0, 2 * s3}, {-0.5, s3}}
		},
		lattice: func(p []float64) (Vec2, Vec2) {
			return Vec2{1.5, -s3}, Vec2{1.5, s3}
		},
		aspects: func(p []float64) []Affine {
			return []Affine{Identity}
		},
		edges:  []edgeUse{{0, false, false}, {0, true, false}, {0, false, false}, {0, true, false}, {0, false, false}, {0, true, false}},
		shapes: []EdgeShape{EdgeMirrorSymmetric},
		colour: colouringData{
			init: []int{0},
			p1:   Permutation{1, 2, 0},
			p2:   Permutation{2, 0, 1},
		},
	},
	// IH18, [3⁶], p6
	{
		id:       18,
		symmetry: "p6",
		vertices: func(p []float64) []Point {
			return []Point{{0, 0}, {1, 0}, {1.5, s3}, {1, 2 * s3}, {0, 2 * s3}, {-0.5, s3}}
		},
		lattice: func(p []float64) (Vec2, Vec2) {
			return Vec2{1.5, -s3}, Vec2{1.5, s3}
		},
		aspects: func(p []float64) []Affine {
			return []Affine{Identity}
		},
		edges:  []edgeUse{{0, false, false}, {0, false, false}, {0, false, false}, {0, true, false}, {0, true, false}, {0, true, false}},
		shapes: []EdgeShape{EdgeHalfTurnSymmetric},
		colour: colouringData{
			init: []int{0},
			p1:   Permutation{1, 2, 0},
			p2:   Permutation{2, 0, 1},
		},
	},
	// IH20, [3⁶], p6m
	{
		id:       20,
		symmetry: "p6m",
		vertices: func(p []float64) []Point {
			return []Point{{0, 0}, {1, 0}, {1.5, s3}, {1, 2 * s3}, {0, 2 * s3}, {-0.5, s3}}
		},
		lattice: func(p []float64) (Vec2, Vec2) {
			return Vec2{1.5, -s3}, Vec2{1.5, s3}
		},
		aspects: func(p []float64) []Affine {
			return []Affine{Identity}
		},
		edges:  []edgeUse{{0, false, false}, {0, false, false}, {0, false, false}, {0, true, false}, {0, true, false}, {0, true, false}},
		shapes: []EdgeShape{EdgeIdentity},
		colour: colouringData{
			init: []int{0},
			p1:   Permutation{1, 2, 0},
			p2:   Permutation{2, 0, 1},
		},
	},
}

package tactile

var pentagonTypes = []TilingType{
	// IH21, [3⁴.6], p6
	{
		id:       21,
		symmetry: "p6",
		defaults: []float64{2.5, s3},
		vertices: func(p []float64) []Point {
			return []Point{{0, 0}, {2, 0}, {p[0], p[1]}, {1 + 0.5*p[0] - 1.0/3*s3*p[1], 2.0/3*s3 + 1.0/3*s3*p[0] + 0.5*p[1]}, {1, 2 * s3}}
		},
		lattice: func(p []float64) (Vec2, Vec2) {
			return Vec2{2 + p[0], p[1]}, Vec2{-1 - 0.5*p[0] - s3*p[1], 2*s3 + s3*p[0] - 0.5*p[1]}
		},
		aspects: func(p []float64) []Affine {
			return []Affine{
				Identity,
				{0.5, s3, 0, -s3, 0.5, 0},
				{0.5, -s3, 0, s3, 0.5, 0},
				{-1, 0, 0, 0, -1, 0},
				{-0.5, s3, 0, -s3, -0.5, 0},
				{-0.5, -s3, 0, s3, -0.5, 0},
			}
		},
		edges:  []edgeUse{{0, false, false}, {1, false, false}, {2, false, false}, {2, true, false}, {0, true, false}},
		shapes: []EdgeShape{EdgeGeneric, EdgeHalfTurnSymmetric, EdgeGeneric},
		colour: colouringData{
			init: []int{0, 1, 1, 1, 0, 0},
			p1:   Permutation{1, 2, 0},
			p2:   Permutation{1, 2, 0},
		},
	},
	// IH22, [3³.4²], cm
	{
		id:       22,
		symmetry: "cm",
		defaults: []float64{1, 1, 1.5},
		vertices: func(p []float64) []Point {
			return []Point{{0, 0}, {1, 0}, {p[0], p[1]}, {-0.5 + p[0], p[2]}, {-1 + p[0], p[1]}}
		},
		lattice: func(p []float64) (Vec2, Vec2) {
			return Vec2{1, 0}, Vec2{-0.5, p[1] + p[2]}
		},
		aspects: func(p []float64) []Affine {
			return []Affine{
				Identity,
				{1, 0, 0, 0, -1, 0},
			}
		},
		edges:  []edgeUse{{0, false, false}, {1, false, false}, {2, false, false}, {2, false, true}, {1, true, false}},
		shapes: []EdgeShape{EdgeIdentity, EdgeGeneric, EdgeGeneric},
		colour: colouringData{
			init: []int{0, 1},
			p1:   Permutation{1, 2, 0},
			p2:   Permutation{0, 1, 2},
		},
	},
	// IH23, [3³.4²], p2
	{
		id:       23,
		symmetry: "p2",
		defaults: []float64{1, 1, 0.5, 1.5},
		vertices: func(p []float64) []Point {
			return []Point{{0, 0}, {1, 0}, {p[0], p[1]}, {p[2], p[3]}, {-1 + p[0], p[1]}}
		},
		lattice: func(p []float64) (Vec2, Vec2) {
			return Vec2{1, 0}, Vec2{-2 + p[0] + p[2], p[1] + p[3]}
		},
		aspects: func(p []float64) []Affine {
			return []Affine{
				Identity,
				{-1, 0, 0, 0, -1, 0},
			}
		},
		edges:  []edgeUse{{0, false, false}, {1, false, false}, {2, false, false}, {3, false, false}, {1, true, false}},
		shapes: []EdgeShape{EdgeHalfTurnSymmetric, EdgeGeneric, EdgeHalfTurnSymmetric, EdgeHalfTurnSymmetric},
		colour: colouringData{
			init: []int{0, 0},
			p1:   Permutation{1, 2, 0},
			p2:   Permutation{0, 1, 2},
		},
	},
	// IH24, [3³.4²], pgg
	{
		id:       24,
		symmetry: "pgg",
		defaults: []float64{1, 1, 1.5},
		vertices: func(p []float64) []Point {
			return []Point{{0, 0}, {1, 0}, {p[0], p[1]}, {-0.5 + p[0], p[2]}, {-1 + p[0], p[1]}}
		},
		lattice: func(p []float64) (Vec2, Vec2) {
			return Vec2{1, 0}, Vec2{0, 2*p[1] + 2*p[2]}
		},
		aspects: func(p []float64) []Affine {
			return []Affine{
				Identity,
				{1, 0, 0.5, 0, -1, p[1] + p[2]},
				{-1, 0, 0.5, 0, 1, -p[1] - p[2]},
				{-1, 0, 0, 0, -1, 0},
			}
		},
		edges:  []edgeUse{{0, false, false}, {1, false, false}, {2, false, false}, {2, false, true}, {1, true, false}},
		shapes: []EdgeShape{EdgeHalfTurnSymmetric, EdgeGeneric, EdgeGeneric},
		colour: colouringData{
			init: []int{0, 2, 0, 1},
			p1:   Permutation{1, 2, 0},
			p2:   Permutation{0, 1, 2},
		},
	},
	// IH25, [3³.4²], pmg
	{
		id:       25,
		symmetry: "pmg",
		defaults: []float64{1, 1, 0.5, 1.5},
		vertices: func(p []float64) []Point {
			return []Point{{0, 0}, {1, 0}, {p[0], p[1]}, {p[2], p[3]}, {-1 + p[0], p[1]}}
		},
		lattice: func(p []float64) (Vec2, Vec2) {
			return Vec2{1, 0}, Vec2{0, 2*p[1] + 2*p[3]}
		},
		aspects: func(p []float64) []Affine {
			return []Affine{
				Identity,
				{-1, 0, -1 + p[0] + p[2], 0, -1, p[1] + p[3]},
				{-1, 0, -1 + p[0] + p[2], 0, 1, -p[1] - p[3]},
				{1, 0, 0, 0, -1, 0},
			}
		},
		edges:  []edgeUse{{0, false, false}, {1, false, false}, {2, false, false}, {3, false, false}, {1, true, false}},
		shapes: []EdgeShape{EdgeIdentity, EdgeGeneric, EdgeHalfTurnSymmetric, EdgeHalfTurnSymmetric},
		colour: colouringData{
			init: []int{0, 1, 0, 2},
			p1:   Permutation{1, 2, 0},
			p2:   Permutation{0, 1, 2},
		},
	},
	// IH26, [3³.4²], cmm
	{
		id:       26,
		symmetry: "cmm",
		defaults: []float64{1, 1.5},
		vertices: func(p []float64) []Point {
			return []Point{{0, 0}, {1, 0}, {1, p[0]}, {0.5, p[1]}, {0, p[0]}}
		},
		lattice: func(p []float64) (Vec2, Vec2) {
			return Vec2{1, 0}, Vec2{-0.5, p[0] + p[1]}
		},
		aspects: func(p []float64) []Affine {
			return []Affine{
				Identity,
				{-1, 0, 0, 0, -1, 0},
			}
		},
		edges:  []edgeUse{{0, false, false}, {1, false, false}, {2, false, false}, {2, true, true}, {1, true, false}},
		shapes: []EdgeShape{EdgeIdentity, EdgeIdentity, EdgeHalfTurnSymmetric},
		colour: colouringData{
			init: []int{0, 0},
			p1:   Permutation{1, 2, 0},
			p2:   Permutation{0, 1, 2},
		},
	},
	// IH27, [3².4.3.4], pgg
	{
		id:       27,
		symmetry: "pgg",
		defaults: []float64{0.25, 1, 1},
		vertices: func(p []float64) []Point {
			return []Point{{0, 0}, {0.75, p[0]}, {p[1], p[2]}, {-0.75 + p[1], p[0] + p[2]}, {0.75 - p[1], -p[0] + p[2]}}
		},
		lattice: func(p []float64) (Vec2, Vec2) {
			return Vec2{2 * p[1], 0}, Vec2{0, 2 * p[2]}
		},
		aspects: func(p []float64) []Affine {
			return []Affine{
				Identity,
				{-1, 0, p[1], 0, 1, p[2]},
				{1, 0, -p[1], 0, -1, p[2]},
				{-1, 0, 0, 0, -1, 0},
			}
		},
		edges:  []edgeUse{{0, false, false}, {1, false, false}, {0, false, true}, {2, false, false}, {1, false, true}},
		shapes: []EdgeShape{EdgeGeneric, EdgeGeneric, EdgeHalfTurnSymmetric},
		colour: colouringData{
			init: []int{0, 2, 2, 0},
			p1:   Permutation{0, 1, 2},
			p2:   Permutation{1, 2, 0},
		},
	},
	// IH28, [3².4.3.4], p4
	{
		id:       28,
		symmetry: "p4",
		defaults: []float64{1, 1},
		vertices: func(p []float64) []Point {
			return []Point{{0, 0}, {0.75, 0.25}, {p[0], p[1]}, {0.25 + p[0] - p[1], -0.75 + p[0] + p[1]}, {-0.25, 0.75}}
		},
		lattice: func(p []float64) (Vec2, Vec2) {
			return Vec2{p[0] + p[1], -p[0] + p[1]}, Vec2{p[0] - p[1], p[0] + p[1]}
		},
		aspects: func(p []float64) []Affine {
			return []Affine{
				Identity,
				{0, 1, 0, -1, 0, 0},
				{0, -1, 0, 1, 0, 0},
				{-1, 0, 0, 0, -1, 0},
			}
		},
		edges:  []edgeUse{{0, false, false}, {1, false, false}, {1, true, false}, {2, false, false}, {0, true, false}},
		shapes: []EdgeShape{EdgeGeneric, EdgeGeneric, EdgeHalfTurnSymmetric},
		colour: colouringData{
			init: []int{0, 1, 2, 0},
			p1:   Permutation{0, 1, 2},
			p2:   Permutation{1, 2, 0},
		},
	},
	// IH29, [3².4.3.4], p4g
	{
		id:       29,
		symmetry: "p4g",
		defaults: []float64{0.25},
		vertices: func(p []float64) []Point {
			return []Point{{0, 0}, {0.75, p[0]}, {0.75 + p[0], 0.75 + p[0]}, {p[0], 0.75 + 2*p[0]}, {-p[0], 0.75}}
		},
		lattice: func(p []float64) (Vec2, Vec2) {
			return Vec2{1.5 + 2*p[0], 0}, Vec2{0, 1.5 + 2*p[0]}
		},
		aspects: func(p []float64) []Affine {
			return []Affine{
				Identity,
				{0, 1, 0, -1, 0, 0},
				{0, -1, 0, 1, 0, 0},
				{-1, 0, 0, 0, -1, 0},
			}
		},
		edges:  []edgeUse{{0, false, false}, {0, true, true}, {0, false, true}, {1, false, false}, {0, true, false}},
		shapes: []EdgeShape{EdgeGeneric, EdgeIdentity},
		colour: colouringData{
			init: []int{0, 1, 2, 0},
			p1:   Permutation{0, 1, 2},
			p2:   Permutation{1, 2, 0},
		},
	},
}

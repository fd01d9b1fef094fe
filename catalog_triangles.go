package tactile

var triangleTypes = []TilingType{
	// IH38, [3.12²], p31m
	{
		id:       38,
		symmetry: "p31m",
		vertices: func(p []float64) []Point {
			return []Point{{0, 0}, {1, 0}, {0.5, 1.0 / 3 * s3}}
		},
		lattice: func(p []float64) (Vec2, Vec2) {
			return Vec2{1, 0}, Vec2{-0.5, s3}
		},
		aspects: func(p []float64) []Affine {
			return []Affine{
				Identity,
				{-0.5, s3, 0, s3, 0.5, 0},
				{-0.5, -s3, 0, -s3, 0.5, 0},
				{1, 0, 0, 0, -1, 0},
				{-0.5, s3, 0, -s3, -0.5, 0},
				{-0.5, -s3, 0, s3, -0.5, 0},
			}
		},
		edges:  []edgeUse{{0, false, false}, {1, false, false}, {1, true, false}},
		shapes: []EdgeShape{EdgeIdentity, EdgeGeneric},
		colour: colouringData{
			init: []int{0, 0, 1, 2, 2, 1},
			p1:   Permutation{0, 1, 2},
			p2:   Permutation{0, 1, 2},
		},
	},
	// IH39, [3.12²], p6
	{
		id:       39,
		symmetry: "p6",
		vertices: func(p []float64) []Point {
			return []Point{{0, 0}, {1, 0}, {0.5, 1.0 / 3 * s3}}
		},
		lattice: func(p []float64) (Vec2, Vec2) {
			return Vec2{1, 0}, Vec2{-0.5, s3}
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
		edges:  []edgeUse{{0, false, false}, {1, false, false}, {1, true, false}},
		shapes: []EdgeShape{EdgeHalfTurnSymmetric, EdgeGeneric},
		colour: colouringData{
			init: []int{0, 0, 1, 2, 2, 1},
			p1:   Permutation{0, 1, 2},
			p2:   Permutation{0, 1, 2},
		},
	},
	// IH40, [3.12²], p6m
	{
		id:       40,
		symmetry: "p6m",
		vertices: func(p []float64) []Point {
			return []Point{{0, 0}, {1, 0}, {0.5, 1.0 / 3 * s3}}
		},
		lattice: func(p []float64) (Vec2, Vec2) {
			return Vec2{1, 0}, Vec2{-0.5, s3}
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
		edges:  []edgeUse{{0, false, false}, {1, false, false}, {1, true, true}},
		shapes: []EdgeShape{EdgeIdentity, EdgeIdentity},
		colour: colouringData{
			init: []int{0, 0, 1, 2, 2, 1},
			p1:   Permutation{0, 1, 2},
			p2:   Permutation{0, 1, 2},
		},
	},
	// IH77, [4.6.12], p6m
	{
		id:       77,
		symmetry: "p6m",
		vertices: func(p []float64) []Point {
			return []Point{{0, 0}, {0.5, 0}, {0.5, 1.0 / 3 * s3}}
		},
		lattice: func(p []float64) (Vec2, Vec2) {
			return Vec2{1, 0}, Vec2{-0.5, s3}
		},
		aspects: func(p []float64) []Affine {
			return []Affine{
				Identity,
				{-0.5, s3, 0, s3, 0.5, 0},
				{0.5, s3, 0, -s3, 0.5, 0},
				{0.5, -s3, 0, s3, 0.5, 0},
				{1, 0, 0, 0, -1, 0},
				{0.5, s3, 0, s3, -0.5, 0},
				{-0.5, -s3, 0, -s3, 0.5, 0},
				{-1, 0, 0, 0, -1, 0},
				{-1, 0, 0, 0, 1, 0},
				{-0.5, s3, 0, -s3, -0.5, 0},
				{-0.5, -s3, 0, s3, -0.5, 0},
				{0.5, -s3, 0, -s3, -0.5, 0},
			}
		},
		edges:  []edgeUse{{0, false, false}, {1, false, false}, {2, false, false}},
		shapes: []EdgeShape{EdgeIdentity, EdgeIdentity, EdgeIdentity},
		colour: colouringData{
			init: []int{0, 0, 1, 1, 2, 2, 0, 1, 2, 1, 1, 0},
			p1:   Permutation{0, 1, 2},
			p2:   Permutation{0, 1, 2},
		},
	},
	// IH78, [4.8²], cmm
	{
		id:       78,
		symmetry: "cmm",
		defaults: []float64{0},
		vertices: func(p []float64) []Point {
			return []Point{{0, 0}, {1, p[0]}, {0.5 + 0.5*p[0], 0.5 + 0.5*p[0]}}
		},
		lattice: func(p []float64) (Vec2, Vec2) {
			return Vec2{1, p[0]}, Vec2{p[0], 1}
		},
		aspects: func(p []float64) []Affine {
			return []Affine{
				Identity,
				{0, 1, 0, 1, 0, 0},
				{-1, 0, 0, 0, -1, 0},
				{0, -1, 0, -1, 0, 0},
			}
		},
		edges:  []edgeUse{{0, false, false}, {1, false, false}, {2, false, false}},
		shapes: []EdgeShape{EdgeHalfTurnSymmetric, EdgeIdentity, EdgeIdentity},
		colour: colouringData{
			init: []int{0, 1, 2, 1},
			p1:   Permutation{0, 1, 2},
			p2:   Permutation{1, 2, 0},
		},
	},
	// IH79, [4.8²], p4
	{
		id:       79,
		symmetry: "p4",
		vertices: func(p []float64) []Point {
			return []Point{{0, 0}, {1, 0}, {0.5, 0.5}}
		},
		lattice: func(p []float64) (Vec2, Vec2) {
			return Vec2{1, 0}, Vec2{0, 1}
		},
		aspects: func(p []float64) []Affine {
			return []Affine{
				Identity,
				{0, 1, 0, -1, 0, 0},
				{-1, 0, 0, 0, -1, 0},
				{0, -1, 0, 1, 0, 0},
			}
		},
		edges:  []edgeUse{{0, false, false}, {1, false, false}, {1, true, false}},
		shapes: []EdgeShape{EdgeHalfTurnSymmetric, EdgeGeneric},
		colour: colouringData{
			init: []int{0, 0, 2, 2},
			p1:   Permutation{0, 1, 2},
			p2:   Permutation{1, 2, 0},
		},
	},
	// IH81, [4.8²], p4g
	{
		id:       81,
		symmetry: "p4g",
		vertices: func(p []float64) []Point {
			return []Point{{0, 0}, {1, 0}, {0.5, 0.5}}
		},
		lattice: func(p []float64) (Vec2, Vec2) {
			return Vec2{1, -1}, Vec2{1, 1}
		},
		aspects: func(p []float64) []Affine {
			return []Affine{
				Identity,
				{0, -1, 1, 1, 0, 0},
				{1, 0, 0, 0, -1, 0},
				{0, 1, 1, 1, 0, 0},
				{0, -1, 1, -1, 0, 0},
				{-1, 0, 0, 0, 1, 0},
				{0, 1, 0, -1, 0, -1},
				{-1, 0, 0, 0, -1, 0},
			}
		},
		edges:  []edgeUse{{0, false, false}, {1, false, false}, {1, true, false}},
		shapes: []EdgeShape{EdgeIdentity, EdgeGeneric},
		colour: colouringData{
			init: []int{0, 1, 1, 0, 0, 1, 1, 0},
			p1:   Permutation{0, 1, 2},
			p2:   Permutation{0, 1, 2},
		},
	},
	// IH82, [4.8²], p4m
	{
		id:       82,
		symmetry: "p4m",
		vertices: func(p []float64) []Point {
			return []Point{{0, 0}, {1, 0}, {0.5, 0.5}}
		},
		lattice: func(p []float64) (Vec2, Vec2) {
			return Vec2{1, 0}, Vec2{0, 1}
		},
		aspects: func(p []float64) []Affine {
			return []Affine{
				Identity,
				{0, 1, 0, -1, 0, 0},
				{-1, 0, 0, 0, -1, 0},
				{0, -1, 0, 1, 0, 0},
			}
		},
		edges:  []edgeUse{{0, false, false}, {1, false, false}, {1, true, true}},
		shapes: []EdgeShape{EdgeIdentity, EdgeIdentity},
		colour: colouringData{
			init: []int{0, 0, 2, 2},
			p1:   Permutation{0, 1, 2},
			p2:   Permutation{1, 2, 0},
		},
	},
	// IH83, [6³], cm
	{
		id:       83,
		symmetry: "cm",
		defaults: []float64{0},
		vertices: func(p []float64) []Point {
			return []Point{{0, 0}, {1, p[0]}, {0.5 + s3*p[0], s3 + 1.5*p[0]}}
		},
		lattice: func(p []float64) (Vec2, Vec2) {
			return Vec2{1, p[0]}, Vec2{-0.5 + s3*p[0], s3 + 0.5*p[0]}
		},
		aspects: func(p []float64) []Affine {
			return []Affine{
				Identity,
				{-0.5, s3, 0, s3, 0.5, 0},
			}
		},
		edges:  []edgeUse{{0, false, false}, {0, false, true}, {1, false, false}},
		shapes: []EdgeShape{EdgeGeneric, EdgeIdentity},
		colour: colouringData{
			init: []int{0, 1},
			p1:   Permutation{0, 1, 2},
			p2:   Permutation{0, 1, 2},
		},
	},
	// IH84, [6³], p2
	{
		id:       84,
		symmetry: "p2",
		defaults: []float64{0.5, s3},
		vertices: func(p []float64) []Point {
			return []Point{{0, 0}, {1, 0}, {p[0], p[1]}}
		},
		lattice: func(p []float64) (Vec2, Vec2) {
			return Vec2{1, 0}, Vec2{-1 + p[0], p[1]}
		},
		aspects: func(p []float64) []Affine {
			return []Affine{
				Identity,
				{-1, 0, 0, 0, -1, 0},
			}
		},
		edges:  []edgeUse{{0, false, false}, {1, false, false}, {2, false, false}},
		shapes: []EdgeShape{EdgeHalfTurnSymmetric, EdgeHalfTurnSymmetric, EdgeHalfTurnSymmetric},
		colour: colouringData{
			init: []int{0, 1},
			p1:   Permutation{0, 1, 2},
			p2:   Permutation{0, 1, 2},
		},
	},
	// IH85, [6³], pgg
	{
		id:       85,
		symmetry: "pgg",
		defaults: []float64{0},
		vertices: func(p []float64) []Point {
			return []Point{{0, 0}, {1, p[0]}, {0.5 + s3*p[0], s3 + 1.5*p[0]}}
		},
		lattice: func(p []float64) (Vec2, Vec2) {
			return Vec2{0.5 + s3*p[0], s3 + 1.5*p[0]}, Vec2{-1.5 + s3*p[0], s3 - 0.5*p[0]}
		},
		aspects: func(p []float64) []Affine {
			return []Affine{
				Identity,
				{0.5, -s3, 1, -s3, -0.5, p[0]},
				{-0.5, s3, 1, s3, 0.5, p[0]},
				{-1, 0, 0, 0, -1, 0},
			}
		},
		edges:  []edgeUse{{0, false, false}, {0, false, true}, {1, false, false}},
		shapes: []EdgeShape{EdgeGeneric, EdgeHalfTurnSymmetric},
		colour: colouringData{
			init: []int{0, 0, 1, 1},
			p1:   Permutation{0, 1, 2},
			p2:   Permutation{0, 1, 2},
		},
	},
	// IH86, [6³], pmg
	{
		id:       86,
		symmetry: "pmg",
		defaults: []float64{0, 0.5},
		vertices: func(p []float64) []Point {
			return []Point{{0, 0}, {1, p[0]}, {p[1], 2 * s3 * p[1]}}
		},
		lattice: func(p []float64) (Vec2, Vec2) {
			return Vec2{p[1], 2 * s3 * p[1]}, Vec2{-1.5 + s3*p[0], s3 - 0.5*p[0]}
		},
		aspects: func(p []float64) []Affine {
			return []Affine{
				Identity,
				{0.5, -s3, 1, -s3, -0.5, p[0]},
				{-1, 0, 1, 0, -1, p[0]},
				{-0.5, s3, 0, s3, 0.5, 0},
			}
		},
		edges:  []edgeUse{{0, false, false}, {1, false, false}, {2, false, false}},
		shapes: []EdgeShape{EdgeHalfTurnSymmetric, EdgeHalfTurnSymmetric, EdgeIdentity},
		colour: colouringData{
			init: []int{0, 0, 1, 1},
			p1:   Permutation{0, 1, 2},
			p2:   Permutation{0, 1, 2},
		},
	},
	// IH88, [6³], p6
	{
		id:       88,
		symmetry: "p6",
		vertices: func(p []float64) []Point {
			return []Point{{0, 0}, {1, 0}, {0.5, s3}}
		},
		lattice: func(p []float64) (Vec2, Vec2) {
			return Vec2{1.5, -s3}, Vec2{1.5, s3}
		},
		aspects: func(p []float64) []Affine {
			return []Affine{
				Identity,
				{0.5, -s3, 1, s3, 0.5, 0},
				{-1, 0, 1, 0, -1, 0},
				{-0.5, s3, 0, -s3, -0.5, 0},
				{-0.5, -s3, 0, s3, -0.5, 0},
				{0.5, s3, 1, -s3, 0.5, 0},
			}
		},
		edges:  []edgeUse{{0, false, false}, {1, false, false}, {1, true, false}},
		shapes: []EdgeShape{EdgeHalfTurnSymmetric, EdgeGeneric},
		colour: colouringData{
			init: []int{0, 1, 1, 0, 0, 1},
			p1:   Permutation{0, 1, 2},
			p2:   Permutation{0, 1, 2},
		},
	},
	// IH90, [6³], cmm
	{
		id:       90,
		symmetry: "cmm",
		defaults: []float64{0},
		vertices: func(p []float64) []Point {
			return []Point{{0, 0}, {1, p[0]}, {0.5 + s3*p[0], s3 - 0.5*p[0]}}
		},
		lattice: func(p []float64) (Vec2, Vec2) {
			return Vec2{1, p[0]}, Vec2{-0.5 + s3*p[0], s3 - 1.5*p[0]}
		},
		aspects: func(p []float64) []Affine {
			return []Affine{
				Identity,
				{-1, 0, 0, 0, -1, 0},
			}
		},
		edges:  []edgeUse{{0, false, false}, {1, false, false}, {0, true, true}},
		shapes: []EdgeShape{EdgeHalfTurnSymmetric, EdgeIdentity},
		colour: colouringData{
			init: []int{0, 1},
			p1:   Permutation{0, 1, 2},
			p2:   Permutation{0, 1, 2},
		},
	},
	// IH91, [6³], p6
	{
		id:       91,
		symmetry: "p6",
		vertices: func(p []float64) []Point {
			return []Point{{0, 0}, {1, 0}, {0.5, s3}}
		},
		lattice: func(p []float64) (Vec2, Vec2) {
			return Vec2{1, 0}, Vec2{-0.5, s3}
		},
		aspects: func(p []float64) []Affine {
			return []Affine{
				Identity,
				{0.5, -s3, 0, s3, 0.5, 0},
			}
		},
		edges:  []edgeUse{{0, false, false}, {0, true, false}, {0, true, false}},
		shapes: []EdgeShape{EdgeHalfTurnSymmetric},
		colour: colouringData{
			init: []int{0, 1},
			p1:   Permutation{0, 1, 2},
			p2:   Permutation{0, 1, 2},
		},
	},
	// IH93, [6³], p6m
	{
		id:       93,
		symmetry: "p6m",
		vertices: func(p []float64) []Point {
			return []Point{{0, 0}, {1, 0}, {0.5, s3}}
		},
		lattice: func(p []float64) (Vec2, Vec2) {
			return Vec2{1, 0}, Vec2{-0.5, s3}
		},
		aspects: func(p []float64) []Affine {
			return []Affine{
				Identity,
				{0.5, -s3, 0, s3, 0.5, 0},
			}
		},
		edges:  []edgeUse{{0, false, false}, {0, true, false}, {0, true, false}},
		shapes: []EdgeShape{EdgeIdentity},
		colour: colouringData{
			init: []int{0, 1},
			p1:   Permutation{0, 1, 2},
			p2:   Permutation{0, 1, 2},
		},
	},
}

package tactile

import (
	"fmt"
	"image/color"
	"slices"

	"golang.org/x/image/colornames"
)

// Permutation is a bijection on the colour indices 0, ..., len(p)-1. The
// colour i maps to p[i].
type Permutation []int

// IdentityPermutation returns the identity on n colours.
func IdentityPermutation(n int) Permutation {
	p := make(Permutation, n)
	for i := range p {
		p[i] = i
	}
	return p
}

// Validate returns [ErrMalformedPermutation] if p is empty or not a
// bijection on its own index range.
func (p Permutation) Validate() error {
	if len(p) == 0 {
		return fmt.Errorf("%w: empty", ErrMalformedPermutation)
	}
	seen := make([]bool, len(p))
	for i, v := range p {
		if v < 0 || v >= len(p) {
			return fmt.Errorf("%w: %v maps %d to %d", ErrMalformedPermutation, []int(p), i, v)
		}
		if seen[v] {
			return fmt.Errorf("%w: %v maps two colours to %d", ErrMalformedPermutation, []int(p), v)
		}
		seen[v] = true
	}
	return nil
}

// IsIdentity reports whether p maps every colour to itself.
func (p Permutation) IsIdentity() bool {
	for i, v := range p {
		if i != v {
			return false
		}
	}
	return true
}

// Apply returns the image of colour c.
func (p Permutation) Apply(c int) int { return p[c] }

// Mul returns the permutation that applies p first and o second, that is
// i ↦ o[p[i]]. Both permutations must act on the same number of colours.
func (p Permutation) Mul(o Permutation) (Permutation, error) {
	if len(p) != len(o) {
		return nil, fmt.Errorf("%w: multiplying permutations of %d and %d colours", ErrMalformedPermutation, len(p), len(o))
	}
	return p.then(o), nil
}

// then is Mul for permutations already known to have equal length.
func (p Permutation) then(o Permutation) Permutation {
	out := make(Permutation, len(p))
	for i, v := range p {
		out[i] = o[v]
	}
	return out
}

// Rank returns the order of p, the smallest k > 0 for which p composed with
// itself k times is the identity.
func (p Permutation) Rank() (int, error) {
	if err := p.Validate(); err != nil {
		return 0, err
	}
	return p.order(), nil
}

// order is Rank for a valid permutation.
func (p Permutation) order() int {
	// The order is the least common multiple of the cycle lengths.
	seen := make([]bool, len(p))
	rank := 1
	for i := range p {
		if seen[i] {
			continue
		}
		n := 0
		for j := i; !seen[j]; j = p[j] {
			seen[j] = true
			n++
		}
		rank = lcm(rank, n)
	}
	return rank
}

// Pow returns p composed with itself n times. Negative n selects powers of
// the inverse; Pow(0) is the identity.
func (p Permutation) Pow(n int) (Permutation, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return p.power(n), nil
}

// power is Pow for a valid permutation.
func (p Permutation) power(n int) Permutation {
	n = mod(n, p.order())
	out := IdentityPermutation(len(p))
	for range n {
		for i, v := range out {
			out[i] = p[v]
		}
	}
	return out
}

func gcd(a, b int) int {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

func lcm(a, b int) int { return a / gcd(a, b) * b }

// mod returns a modulo m in [0, m).
func mod(a, m int) int { return ((a % m) + m) % m }

// DefaultPalette is the palette used by [TilingType.Colouring] when none is
// given. It has one entry per colour of the catalog colourings.
var DefaultPalette = []color.Color{
	colornames.Steelblue,
	colornames.Goldenrod,
	colornames.Indianred,
}

// Colouring assigns colours to tile instances. A tile's colour depends on
// its aspect and on its lattice position: every step along T1 applies the
// permutation P1 to the colour index, every step along T2 applies P2.
//
// A Colouring is immutable and safe for concurrent use.
type Colouring struct {
	palette []color.Color
	init    []int
	p1, p2  Permutation
	r1, r2  int
}

// NewColouring returns a colouring with one initial colour index per aspect.
// p1 and p2 must be permutations of the same size, and the palette must have
// at least that many entries.
func NewColouring(palette []color.Color, init []int, p1, p2 Permutation) (*Colouring, error) {
	r1, err := p1.Rank()
	if err != nil {
		return nil, err
	}
	r2, err := p2.Rank()
	if err != nil {
		return nil, err
	}
	if len(p1) != len(p2) {
		return nil, fmt.Errorf("%w: permutations act on %d and %d colours", ErrMalformedColouring, len(p1), len(p2))
	}
	if len(palette) < len(p1) {
		return nil, fmt.Errorf("%w: palette has %d entries, need %d", ErrMalformedColouring, len(palette), len(p1))
	}
	if len(init) == 0 {
		return nil, fmt.Errorf("%w: no initial colours", ErrMalformedColouring)
	}
	for a, c := range init {
		if c < 0 || c >= len(p1) {
			return nil, fmt.Errorf("%w: aspect %d starts with colour %d", ErrMalformedColouring, a, c)
		}
	}
	return &Colouring{
		palette: slices.Clone(palette),
		init:    slices.Clone(init),
		p1:      slices.Clone(p1),
		p2:      slices.Clone(p2),
		r1:      r1,
		r2:      r2,
	}, nil
}

// UniformColouring returns a colouring that gives every tile the colour c.
func UniformColouring(numAspects int, c color.Color) *Colouring {
	return &Colouring{
		palette: []color.Color{c},
		init:    make([]int, max(numAspects, 1)),
		p1:      Permutation{0},
		p2:      Permutation{0},
		r1:      1,
		r2:      1,
	}
}

// Colouring returns the type's default colouring, in which no two tiles
// sharing an edge have the same colour. A nil palette selects
// [DefaultPalette].
func (tt *TilingType) Colouring(palette []color.Color) (*Colouring, error) {
	if palette == nil {
		palette = DefaultPalette
	}
	c, err := NewColouring(palette, tt.colour.init, tt.colour.p1, tt.colour.p2)
	if err != nil {
		return nil, fmt.Errorf("colouring %s: %w", tt, err)
	}
	return c, nil
}

// NumAspects returns the number of aspects the colouring has initial
// colours for.
func (c *Colouring) NumAspects() int { return len(c.init) }

// Periods returns the ranks of P1 and P2. Colours repeat after r1 steps along
// T1 and after r2 steps along T2.
func (c *Colouring) Periods() (r1, r2 int) { return c.r1, c.r2 }

// P1 returns the permutation applied per step along T1.
func (c *Colouring) P1() Permutation { return slices.Clone(c.p1) }

// P2 returns the permutation applied per step along T2.
func (c *Colouring) P2() Permutation { return slices.Clone(c.p2) }

// Palette returns the colouring's palette.
func (c *Colouring) Palette() []color.Color { return slices.Clone(c.palette) }

// Index returns the palette index of the tile with lattice coordinates
// (t1, t2) and the given aspect. It panics if aspect is out of range.
func (c *Colouring) Index(t1, t2, aspect int) int {
	col := c.init[aspect]
	for range mod(t1, c.r1) {
		col = c.p1[col]
	}
	for range mod(t2, c.r2) {
		col = c.p2[col]
	}
	return col
}

// Colour returns the palette entry of the tile with lattice coordinates
// (t1, t2) and the given aspect.
func (c *Colouring) Colour(t1, t2, aspect int) color.Color {
	return c.palette[c.Index(t1, t2, aspect)]
}

// Tile is a shorthand for Colour(ti.T1, ti.T2, ti.Aspect).
func (c *Colouring) Tile(ti TileInstance) color.Color {
	return c.Colour(ti.T1, ti.T2, ti.Aspect)
}

// SpiralRank returns the number of repetitions of the lattice step
// a*T1 + b*T2 after which colours repeat, the rank of P1^a · P2^b.
func (c *Colouring) SpiralRank(a, b int) int {
	// NewColouring validated p1 and p2 against the same colour count.
	return c.p1.power(a).then(c.p2.power(b)).order()
}

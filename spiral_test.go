package tactile

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSpiralTransform(t *testing.T) {
	tl, err := New(1)
	require.NoError(t, err)
	c := tl.Colouring()

	for _, tt := range []struct{ a, b int }{{1, 0}, {0, 1}, {2, -1}} {
		aff, err := tl.SpiralTransform(tt.a, tt.b, c)
		require.NoError(t, err)
		r := float64(c.SpiralRank(tt.a, tt.b))
		v := tl.T1().Mul(float64(tt.a)).Add(tl.T2().Mul(float64(tt.b))).Mul(r)
		assertNear(t, Point(v).Transform(aff), Pt(0, 2*math.Pi), 1e-9)
		assertNear(t, Point{}.Transform(aff), Point{}, 1e-12)

		// Tiles one period apart land on the same point of the spiral.
		p := Pt(0.3, 0.4)
		q := p.Translate(v)
		assertNear(t, SpiralMap(p.Transform(aff)), SpiralMap(q.Transform(aff)), 1e-9)
	}

	plain, err := tl.SpiralTransform(1, 0, nil)
	require.NoError(t, err)
	assertNear(t, Point(tl.T1()).Transform(plain), Pt(0, 2*math.Pi), 1e-9)
}

func TestSpiralTransformDegenerate(t *testing.T) {
	tl, err := New(1)
	require.NoError(t, err)
	_, err = tl.SpiralTransform(0, 0, nil)
	assert.ErrorIs(t, err, ErrDegenerateTransform)
}

func TestSpiralMap(t *testing.T) {
	assertNear(t, SpiralMap(Pt(0, 0)), Pt(1, 0), 1e-12)
	assertNear(t, SpiralMap(Pt(0, 2*math.Pi)), Pt(1, 0), 1e-12)
	assertNear(t, SpiralMap(Pt(math.Log(2), math.Pi/2)), Pt(0, 2), 1e-12)
}

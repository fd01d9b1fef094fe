package tactile

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func exampleTiling(t *testing.T) *Tiling {
	t.Helper()
	tl, err := New(50)
	require.NoError(t, err)
	params := tl.Parameters()
	params[0] += 0.125
	require.NoError(t, tl.SetParameters(params))
	require.NoError(t, tl.SetEdgeShape(0, []Point{{0.25, 0.125}, {0.75, -0.0625}}))
	require.NoError(t, tl.SetEdgeShape(2, []Point{{0.375, 0.0625}}))
	return tl
}

func TestDocumentYAML(t *testing.T) {
	tl := exampleTiling(t)

	var buf bytes.Buffer
	require.NoError(t, EncodeDocument(&buf, tl.Document()))
	assert.True(t, strings.HasPrefix(buf.String(), "type: 50\n"), buf.String())

	d, err := DecodeDocument(&buf)
	require.NoError(t, err)
	diff(t, tl.Document(), d)

	got, err := FromDocument(d)
	require.NoError(t, err)
	diff(t, tl.Boundary(), got.Boundary())
	diff(t, tl.Parameters(), got.Parameters())
}

func TestDocumentJSON(t *testing.T) {
	tl := exampleTiling(t)
	b, err := json.Marshal(tl.Document())
	require.NoError(t, err)

	var d Document
	require.NoError(t, json.Unmarshal(b, &d))
	got, err := FromDocument(d)
	require.NoError(t, err)
	diff(t, tl.Document(), got.Document())
}

func TestDecodeDocumentErrors(t *testing.T) {
	_, err := DecodeDocument(strings.NewReader("type: 50\ncolour: red\n"))
	assert.Error(t, err, "unknown fields must be rejected")

	_, err = DecodeDocument(strings.NewReader("type: [1, 2\n"))
	assert.Error(t, err)
}

func TestFromDocumentErrors(t *testing.T) {
	good := exampleTiling(t).Document()

	d := good
	d.Type = 19
	_, err := FromDocument(d)
	assert.ErrorIs(t, err, ErrUnknownTilingType)

	d = good
	d.Parameters = d.Parameters[:1]
	_, err = FromDocument(d)
	assert.ErrorIs(t, err, ErrParameterCount)

	d = good
	d.Edges = d.Edges[:2]
	_, err = FromDocument(d)
	assert.ErrorIs(t, err, ErrInvalidEdgeSlot)

	d = good
	d.Edges = [][]Point{d.Edges[0], d.Edges[0], d.Edges[2]}
	_, err = FromDocument(d)
	assert.ErrorIs(t, err, ErrControlPointCount)
}

func TestDocumentIsSnapshot(t *testing.T) {
	tl := exampleTiling(t)
	d := tl.Document()
	d.Parameters[0] = 42
	d.Edges[0][0] = Pt(42, 42)
	assert.NotEqual(t, 42.0, tl.Parameters()[0])
	pts, err := tl.EdgeShape(0)
	require.NoError(t, err)
	assert.Equal(t, Pt(0.25, 0.125), pts[0])
}

package tactile

import (
	"fmt"
	"io"
	"slices"

	"gopkg.in/yaml.v3"
)

// Document is the persistent form of a [Tiling]: its type, its parameters
// and the control points of its edge shapes. Documents can be stored as
// YAML with [EncodeDocument] or as JSON with encoding/json.
type Document struct {
	Type       int       `json:"type" yaml:"type"`
	Parameters []float64 `json:"parameters" yaml:"parameters,flow"`
	Edges      [][]Point `json:"edges" yaml:"edges"`
}

// Document returns a snapshot of the tiling.
func (t *Tiling) Document() Document {
	d := Document{
		Type:       t.tt.id,
		Parameters: slices.Clone(t.params),
		Edges:      make([][]Point, len(t.shapes)),
	}
	for i, s := range t.shapes {
		d.Edges[i] = slices.Clone(s)
	}
	return d
}

// FromDocument returns the tiling described by d. The document is checked
// the same way as the corresponding calls to [Tiling.SetType],
// [Tiling.SetParameters] and [Tiling.SetEdgeShape].
func FromDocument(d Document) (*Tiling, error) {
	t, err := New(d.Type)
	if err != nil {
		return nil, err
	}
	if len(d.Edges) != t.NumEdgeShapes() {
		return nil, fmt.Errorf("%w: document has %d edge shapes, %s has %d",
			ErrInvalidEdgeSlot, len(d.Edges), t.tt, t.NumEdgeShapes())
	}
	if err := t.SetParameters(d.Parameters); err != nil {
		return nil, err
	}
	for i, pts := range d.Edges {
		if err := t.SetEdgeShape(i, pts); err != nil {
			return nil, err
		}
	}
	return t, nil
}

// EncodeDocument writes d to w as YAML.
func EncodeDocument(w io.Writer, d Document) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(d); err != nil {
		return fmt.Errorf("tactile: encoding document: %w", err)
	}
	return enc.Close()
}

// DecodeDocument reads a YAML document from r. Unknown fields are an error.
func DecodeDocument(r io.Reader) (Document, error) {
	var d Document
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&d); err != nil {
		return Document{}, fmt.Errorf("tactile: decoding document: %w", err)
	}
	return d, nil
}

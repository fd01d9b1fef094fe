package tactile_test

import (
	"encoding/json"
	"fmt"
	"image"
	"strings"

	"golang.org/x/image/colornames"
	"golang.org/x/image/draw"
	"honnef.co/go/tactile"
)

func ExampleNew() {
	t, err := tactile.New(1)
	if err != nil {
		panic(err)
	}
	fmt.Println(t.Type(), t.Type().Symmetry(), t.NumParameters(), t.NumAspects())

	var shapes []string
	for p := range t.Parts() {
		shapes = append(shapes, p.Shape.String())
	}
	fmt.Println(strings.Join(shapes, " "))

	// Output:
	// IH01 p1 4 1
	// J J J J J J
}

func ExampleTiling_FillRegionBounds() {
	t, err := tactile.New(57)
	if err != nil {
		panic(err)
	}
	for ti := range t.FillRegionBounds(0.5, 0.5, 1.5, 0.9) {
		fmt.Printf("(%d, %d) colour %d\n", ti.T1, ti.T2, t.ColourIndex(ti.T1, ti.T2, ti.Aspect))
	}

	// Output:
	// (0, 0) colour 0
	// (1, 0) colour 1
}

func ExampleTiling_Document() {
	t, err := tactile.New(57)
	if err != nil {
		panic(err)
	}
	if err := t.SetEdgeShape(1, []tactile.Point{{X: 0.25, Y: 0.125}}); err != nil {
		panic(err)
	}
	b, err := json.Marshal(t.Document())
	if err != nil {
		panic(err)
	}
	fmt.Println(string(b))

	// Output:
	// {"type":57,"parameters":[1],"edges":[null,[{"x":0.25,"y":0.125}]]}
}

func ExamplePermutation_Rank() {
	p := tactile.Permutation{1, 2, 0}
	r, err := p.Rank()
	if err != nil {
		panic(err)
	}
	inv, err := p.Pow(-1)
	if err != nil {
		panic(err)
	}
	fmt.Println(r, inv)

	// Output:
	// 3 [2 0 1]
}

func ExampleAffine_Aff3() {
	// A one-pixel texture drawn at twice its size.
	src := image.NewRGBA(image.Rect(0, 0, 1, 1))
	src.Set(0, 0, colornames.Steelblue)
	dst := image.NewRGBA(image.Rect(0, 0, 4, 4))
	draw.NearestNeighbor.Transform(dst, tactile.Scale(2, 2).Aff3(), src, src.Bounds(), draw.Over, nil)
	fmt.Println(dst.At(1, 1), dst.At(2, 2))

	// Output:
	// {70 130 180 255} {0 0 0 0}
}

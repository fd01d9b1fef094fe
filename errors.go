package tactile

import "errors"

var (
	// ErrUnknownTilingType is returned when a tiling type id is not one of
	// the 81 isohedral types.
	ErrUnknownTilingType = errors.New("tactile: unknown tiling type")

	// ErrParameterCount is returned when the number of supplied parameters
	// does not match the tiling type.
	ErrParameterCount = errors.New("tactile: wrong number of parameters")

	// ErrDegenerateTransform is returned when inverting a transform whose
	// linear part is singular.
	ErrDegenerateTransform = errors.New("tactile: degenerate transform")

	// ErrInvalidEdgeSlot is returned for an edge shape slot outside
	// [0, NumEdgeShapes).
	ErrInvalidEdgeSlot = errors.New("tactile: edge shape slot out of range")

	// ErrControlPointCount is returned when an edge shape receives the wrong
	// number of control points for its class.
	ErrControlPointCount = errors.New("tactile: wrong number of control points")

	// ErrMalformedPermutation is returned when a colour permutation is not a
	// bijection on its colours.
	ErrMalformedPermutation = errors.New("tactile: malformed permutation")

	// ErrMalformedColouring is returned when a colouring does not provide a
	// colour for every aspect.
	ErrMalformedColouring = errors.New("tactile: malformed colouring")
)

package maze

import "errors"

var (
	// ErrInvalidSize indicates a non-positive width or height
	ErrInvalidSize = errors.New("maze: width and height must be positive")
	// ErrOutOfBounds indicates a point outside the grid
	ErrOutOfBounds = errors.New("maze: point out of bounds")
	// ErrComponentIndex indicates a requested component index is out of range
	ErrComponentIndex = errors.New("maze: component index out of range")
	// ErrNoSymbols indicates an empty symbol set for generation
	ErrNoSymbols = errors.New("maze: at least one symbol is required")
)

// ErrNonRectangular indicates grid rows of differing lengths
var ErrNonRectangular = errors.New("maze: all rows must have the same length")

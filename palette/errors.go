package palette

import "errors"

var (
	// ErrEmptyPalette indicates a palette with no colors
	ErrEmptyPalette = errors.New("palette: no colors")
	// ErrUnknownPalette indicates a preset name that is not in the catalogue
	ErrUnknownPalette = errors.New("palette: unknown preset")
)

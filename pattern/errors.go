package pattern

import "errors"

var (
	// ErrSymbolCount indicates fewer than two maze symbols were given
	ErrSymbolCount = errors.New("pattern: at least two symbols are required")
	// ErrDuplicateSymbol indicates a symbol appears more than once
	ErrDuplicateSymbol = errors.New("pattern: symbols must be distinct")
	// ErrFillLength indicates the fill is not exactly one character
	ErrFillLength = errors.New("pattern: fill must be a single character")
	// ErrRuleLength indicates the rules are not one 9-character template per symbol
	ErrRuleLength = errors.New("pattern: rules must hold one 9-character template per symbol")
	// ErrWindowShape indicates a window that is not 3x3
	ErrWindowShape = errors.New("pattern: window must be 3x3")
	// ErrUnknownSymbol indicates a window centre that is not a pattern symbol
	ErrUnknownSymbol = errors.New("pattern: unknown centre symbol")
)

// ErrUnknownPreset indicates a preset name with no registered pattern
var ErrUnknownPreset = errors.New("pattern: unknown preset")

package terminal

import "errors"

var (
	// ErrScreenSize indicates a non-positive screen width or height
	ErrScreenSize = errors.New("terminal: screen width and height must be positive")
	// ErrNotSingleChar indicates a character write of anything but one rune
	ErrNotSingleChar = errors.New("terminal: character must be exactly one rune")
	// ErrColorMode indicates an unrecognized color mode name
	ErrColorMode = errors.New("terminal: unknown color mode")
	// ErrNotTerminal indicates the descriptor is not attached to a terminal
	ErrNotTerminal = errors.New("terminal: not a terminal")
)

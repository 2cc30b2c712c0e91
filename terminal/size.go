package terminal

import (
	"fmt"

	"golang.org/x/term"
)

// IsTerminal reports whether fd refers to a terminal
func IsTerminal(fd int) bool {
	return term.IsTerminal(fd)
}

// Size returns the dimensions of the terminal attached to fd
func Size(fd int) (width, height int, err error) {
	if !term.IsTerminal(fd) {
		return 0, 0, ErrNotTerminal
	}
	width, height, err = term.GetSize(fd)
	if err != nil {
		return 0, 0, fmt.Errorf("terminal size: %w", err)
	}
	return width, height, nil
}

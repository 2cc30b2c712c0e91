package pattern

import "fmt"

// Window is a 3x3 neighbourhood flattened row-major; index 4 is the centre
type Window [WindowSize]rune

// WindowFromString normalizes a 9-character row-major string
func WindowFromString(s string) (Window, error) {
	var w Window
	runes := []rune(s)
	if len(runes) != WindowSize {
		return w, fmt.Errorf("%w: string has %d characters", ErrWindowShape, len(runes))
	}
	copy(w[:], runes)
	return w, nil
}

// WindowFromMatrix normalizes a 3x3 matrix of runes
func WindowFromMatrix(m [][]rune) (Window, error) {
	var w Window
	if len(m) != 3 {
		return w, fmt.Errorf("%w: matrix has %d rows", ErrWindowShape, len(m))
	}
	for i, row := range m {
		if len(row) != 3 {
			return w, fmt.Errorf("%w: row %d has %d columns", ErrWindowShape, i, len(row))
		}
		copy(w[i*3:], row)
	}
	return w, nil
}

// Center returns the centre symbol
func (w Window) Center() rune {
	return w[center]
}

func (w Window) String() string {
	return string(w[:])
}

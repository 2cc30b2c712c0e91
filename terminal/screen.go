package terminal

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/x/ansi"
)

// Screen tracks one logical cursor over a fixed-size character area
//
// Every write that names a target cell first moves the cursor there with
// relative motion only. The tracked position is never re-queried from the
// terminal, so nothing else may move the real cursor while a Screen draws.
// The row stays within [0, height) except after MoveBelow, which leaves it at
// height until the next move. Writes can likewise leave the column at width.
// Not safe for concurrent use.
type Screen struct {
	writer *bufio.Writer

	width  int
	height int

	row int
	col int
}

// NewScreen creates a screen of width x height cells writing to w
// The cursor is assumed to sit on the top-left cell of the area.
func NewScreen(w io.Writer, width, height int) (*Screen, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: got %dx%d", ErrScreenSize, width, height)
	}
	return &Screen{
		writer: bufio.NewWriter(w),
		width:  width,
		height: height,
	}, nil
}

// Size returns the screen dimensions
func (s *Screen) Size() (width, height int) {
	return s.width, s.height
}

// Position returns the logical cursor position
// After MoveBelow the row is height, one past the last screen row.
func (s *Screen) Position() (row, col int) {
	return s.row, s.col
}

// Reserve claims the drawing area by printing blank rows, then returns to the top-left cell
// The cursor must start at the beginning of a line.
func (s *Screen) Reserve() error {
	blank := strings.Repeat(" ", s.width) + "\n"
	for i := 0; i < s.height; i++ {
		if _, err := s.writer.WriteString(blank); err != nil {
			return err
		}
	}
	s.row, s.col = s.height, 0
	return s.MoveCursor(0, 0)
}

// WriteRune writes r at the cursor and advances the logical column
// The column is not clamped; the terminal may or may not have wrapped.
func (s *Screen) WriteRune(r rune) error {
	if _, err := s.writer.WriteRune(r); err != nil {
		return err
	}
	s.col++
	return nil
}

// WriteRuneAt moves to (row, col) and writes r
func (s *Screen) WriteRuneAt(row, col int, r rune) error {
	if err := s.MoveCursor(row, col); err != nil {
		return err
	}
	return s.WriteRune(r)
}

// WriteChar writes a one-character string at the cursor
func (s *Screen) WriteChar(ch string) error {
	r, err := singleRune(ch)
	if err != nil {
		return err
	}
	return s.WriteRune(r)
}

// WriteCharAt moves to (row, col) and writes a one-character string
func (s *Screen) WriteCharAt(row, col int, ch string) error {
	r, err := singleRune(ch)
	if err != nil {
		return err
	}
	return s.WriteRuneAt(row, col, r)
}

// WriteMarkup emits a non-printing sequence verbatim
// Only SGR-style markup belongs here; a sequence that moves the cursor
// desynchronizes the logical position.
func (s *Screen) WriteMarkup(seq string) error {
	_, err := s.writer.WriteString(seq)
	return err
}

// WriteMarkupAt moves to (row, col) and emits seq
func (s *Screen) WriteMarkupAt(row, col int, seq string) error {
	if err := s.MoveCursor(row, col); err != nil {
		return err
	}
	return s.WriteMarkup(seq)
}

// MoveCursor moves to (row, col), clamped to the screen
// Vertical motion is emitted first, then horizontal; an axis already at its
// clamped target emits nothing. A cursor left past the edge by writes or by
// MoveBelow only moves back toward the screen.
func (s *Screen) MoveCursor(row, col int) error {
	var seq string

	switch {
	case row > s.row:
		if target := min(row, s.height-1); target > s.row {
			seq += ansi.CursorDown(target - s.row)
			s.row = target
		}
	case row < s.row:
		if target := max(row, 0); target < s.row {
			seq += ansi.CursorUp(s.row - target)
			s.row = target
		}
	}

	switch {
	case col > s.col:
		if target := min(col, s.width-1); target > s.col {
			seq += ansi.CursorForward(target - s.col)
			s.col = target
		}
	case col < s.col:
		if target := max(col, 0); target < s.col {
			seq += ansi.CursorBackward(s.col - target)
			s.col = target
		}
	}

	if seq == "" {
		return nil
	}
	_, err := s.writer.WriteString(seq)
	return err
}

// MoveBelow parks the cursor at the start of the line after the last screen row
// The logical row becomes height, so later moves back onto the screen stay exact.
func (s *Screen) MoveBelow() error {
	if err := s.MoveCursor(s.height-1, 0); err != nil {
		return err
	}
	if _, err := s.writer.WriteString(ansi.CursorDown(1)); err != nil {
		return err
	}
	s.row = s.height
	return nil
}

// Flush pushes buffered output to the terminal
func (s *Screen) Flush() error {
	return s.writer.Flush()
}

func singleRune(ch string) (rune, error) {
	if utf8.RuneCountInString(ch) != 1 {
		return 0, fmt.Errorf("%w: got %q", ErrNotSingleChar, ch)
	}
	r, _ := utf8.DecodeRuneInString(ch)
	return r, nil
}

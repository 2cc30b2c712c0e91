package terminal

import (
	"strconv"

	"github.com/charmbracelet/x/ansi"
)

// Pre-built SGR fragments
const (
	csi = "\x1b["

	csiFg256     = "\x1b[38;5;" // followed by N m
	csiFgRGB     = "\x1b[38;2;" // followed by R;G;B m
	csiDefaultFg = "\x1b[39m"

	csiCursorShow = "\x1b[?25h"
)

// Reset clears all SGR attributes
const Reset = ansi.ResetStyle

// SGRBasic returns the foreground sequence of one of the 8 base colors (0-7)
func SGRBasic(n int) string {
	return csi + strconv.Itoa(30+n) + "m"
}

// SGR256 returns the foreground sequence for a 256-color palette index
func SGR256(index uint8) string {
	buf := make([]byte, 0, 12)
	buf = append(buf, csiFg256...)
	buf = strconv.AppendUint(buf, uint64(index), 10)
	buf = append(buf, 'm')
	return string(buf)
}

// SGRRGB returns the true color foreground sequence
func SGRRGB(r, g, b uint8) string {
	buf := make([]byte, 0, 20)
	buf = append(buf, csiFgRGB...)
	buf = strconv.AppendUint(buf, uint64(r), 10)
	buf = append(buf, ';')
	buf = strconv.AppendUint(buf, uint64(g), 10)
	buf = append(buf, ';')
	buf = strconv.AppendUint(buf, uint64(b), 10)
	buf = append(buf, 'm')
	return string(buf)
}

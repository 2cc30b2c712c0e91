package terminal

import (
	"io"
	"os"
)

// EmergencyReset restores default attributes and a visible cursor
// Used from panic handlers; errors are ignored
func EmergencyReset(w io.Writer) {
	io.WriteString(w, Reset)
	io.WriteString(w, csiCursorShow)

	if f, ok := w.(*os.File); ok {
		f.Sync()
	}
}

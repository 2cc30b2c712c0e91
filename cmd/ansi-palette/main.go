// Command ansi-palette prints the 256 terminal palette indices in their own colors.
package main

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/gdamore/tcell/v2"
	"github.com/spf13/pflag"

	"github.com/lixenwraith/tenprint/terminal"
)

func main() {
	columns := pflag.IntP("columns", "n", 16, "entries per row")
	rgb := pflag.Bool("rgb", false, "also print each entry's RGB value")
	pflag.Parse()

	if *columns <= 0 {
		fmt.Fprintln(os.Stderr, "ansi-palette: --columns must be positive")
		os.Exit(1)
	}

	w := bufio.NewWriter(os.Stdout)
	defer w.Flush()
	dump(w, *columns, *rgb)
}

// dump writes every palette index in its color, columns per row
func dump(w io.Writer, columns int, rgb bool) {
	for code := 0; code < 256; code++ {
		fmt.Fprint(w, terminal.SGR256(uint8(code)))
		if rgb {
			r, g, b := tcell.PaletteColor(code).TrueColor().RGB()
			fmt.Fprintf(w, "%-4d#%02x%02x%02x ", code, r, g, b)
		} else {
			fmt.Fprintf(w, "%-4d", code)
		}
		if (code+1)%columns == 0 || code == 255 {
			fmt.Fprintln(w, terminal.Reset)
		}
	}
}

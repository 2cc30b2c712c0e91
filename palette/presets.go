package palette

import (
	"slices"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/tenprint/terminal"
)

// Gray is the dim color used for hidden columns
const Gray uint8 = 237

// 256-color indices per preset
var (
	codesPinks   = []uint8{5, 13, 162, 163, 168, 198, 199, 204, 205, 218, 219}
	codesBlues   = []uint8{4, 6, 12, 17, 18, 19, 20, 21, 26, 27, 32, 33, 38, 39, 44, 45, 80, 81}
	codesYellows = []uint8{3, 11, 148, 154, 166, 172, 178, 184, 190, 208, 214, 220, 226, 227}
	codesReds    = []uint8{1, 9, 52, 88, 124, 160, 196}
)

// The eight base colors, emitted in their short 3N form
var basicColors = []tcell.Color{
	tcell.ColorBlack,
	tcell.ColorMaroon,
	tcell.ColorGreen,
	tcell.ColorOlive,
	tcell.ColorNavy,
	tcell.ColorPurple,
	tcell.ColorTeal,
	tcell.ColorSilver,
}

// Heat ramp endpoints, dark red to bright yellow
var (
	heatFrom = tcell.NewRGBColor(139, 0, 0)
	heatTo   = tcell.NewRGBColor(255, 255, 0)
)

const heatSteps = 8

type builder func(mode terminal.ColorMode) (Palette, error)

func codes(c []uint8) builder {
	return func(terminal.ColorMode) (Palette, error) { return FromCodes(c...) }
}

func colors(c ...tcell.Color) builder {
	return func(mode terminal.ColorMode) (Palette, error) { return FromColors(mode, c...) }
}

var presets = map[string]builder{
	"basic":   colors(basicColors...),
	"white":   colors(tcell.ColorSilver),
	"gray":    codes([]uint8{Gray}),
	"pinks":   codes(codesPinks),
	"blues":   codes(codesBlues),
	"yellows": codes(codesYellows),
	"reds":    codes(codesReds),
	"heat": func(mode terminal.ColorMode) (Palette, error) {
		return Gradient(mode, heatFrom, heatTo, heatSteps)
	},
}

// Names returns the catalogue preset names, sorted
func Names() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Valid reports whether every '+' or ',' separated part of name is a preset
func Valid(name string) bool {
	_, err := Named(terminal.ColorMode256, name)
	return err == nil
}

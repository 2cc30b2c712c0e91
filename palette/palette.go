// Package palette provides ordered lists of foreground color sequences used to
// tell maze components apart.
package palette

import (
	"fmt"
	"math/rand"
	"slices"
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/tenprint/terminal"
)

// Palette is an ordered list of SGR foreground sequences
type Palette []string

// Len returns the number of colors
func (p Palette) Len() int {
	return len(p)
}

// At returns the color for index i, wrapping in both directions
// An empty palette yields the empty sequence.
func (p Palette) At(i int) string {
	n := len(p)
	if n == 0 {
		return ""
	}
	i %= n
	if i < 0 {
		i += n
	}
	return p[i]
}

// Shuffled returns a permuted copy drawn from rng
func (p Palette) Shuffled(rng *rand.Rand) Palette {
	q := slices.Clone(p)
	rng.Shuffle(len(q), func(i, j int) {
		q[i], q[j] = q[j], q[i]
	})
	return q
}

// FromCodes builds a palette of 256-color indices, always as 38;5;N
func FromCodes(codes ...uint8) (Palette, error) {
	if len(codes) == 0 {
		return nil, ErrEmptyPalette
	}
	p := make(Palette, len(codes))
	for i, code := range codes {
		p[i] = terminal.SGR256(code)
	}
	return p, nil
}

// FromColors builds a palette from tcell colors rendered for mode
func FromColors(mode terminal.ColorMode, colors ...tcell.Color) (Palette, error) {
	if len(colors) == 0 {
		return nil, ErrEmptyPalette
	}
	p := make(Palette, len(colors))
	for i, c := range colors {
		p[i] = terminal.Foreground(c, mode)
	}
	return p, nil
}

// Gradient builds steps colors interpolated linearly from one RGB color to another
func Gradient(mode terminal.ColorMode, from, to tcell.Color, steps int) (Palette, error) {
	if steps <= 0 {
		return nil, ErrEmptyPalette
	}
	r0, g0, b0 := from.RGB()
	r1, g1, b1 := to.RGB()

	d := int32(max(steps-1, 1))
	colors := make([]tcell.Color, steps)
	for i := range colors {
		k := int32(i)
		colors[i] = tcell.NewRGBColor(
			r0+(r1-r0)*k/d,
			g0+(g1-g0)*k/d,
			b0+(b1-b0)*k/d,
		)
	}
	return FromColors(mode, colors...)
}

// Named concatenates catalogue presets in order
// Each name may itself join presets with '+' or ',' ("reds+yellows").
func Named(mode terminal.ColorMode, names ...string) (Palette, error) {
	var p Palette
	for _, name := range names {
		for _, part := range strings.FieldsFunc(name, func(r rune) bool { return r == '+' || r == ',' }) {
			part = strings.ToLower(strings.TrimSpace(part))
			if part == "" {
				continue
			}
			build, ok := presets[part]
			if !ok {
				return nil, fmt.Errorf("%w: %q", ErrUnknownPalette, part)
			}
			sub, err := build(mode)
			if err != nil {
				return nil, fmt.Errorf("palette %q: %w", part, err)
			}
			p = append(p, sub...)
		}
	}
	if len(p) == 0 {
		return nil, ErrEmptyPalette
	}
	return p, nil
}

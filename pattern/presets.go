package pattern

import (
	"fmt"
	"sort"
	"strings"
)

// Box-drawing diagonals used by the classic preset
const (
	Rise = '╱'
	Fall = '╲'
)

// Wall connectivity of the 10PRINT diagonals, one template row per line
// A diagonal touches an orthogonal neighbour of the other slant and the
// diagonal neighbour of its own slant that shares its end point
const classicRules = "" +
	" ╲╱" +
	"╲╱╲" +
	"╱╲ " +

	"╲╱ " +
	"╱╲╱" +
	" ╱╲"

// Classic returns the canonical two-symbol diagonal pattern
func Classic() Config {
	return Config{
		Symbols: string([]rune{Rise, Fall}),
		Fill:    " ",
		Rules:   classicRules,
	}
}

// ASCII returns the classic pattern drawn with slash and backslash
func ASCII() Config {
	r := strings.NewReplacer(string(Rise), "/", string(Fall), `\`)
	return Config{
		Symbols: `/\`,
		Fill:    " ",
		Rules:   r.Replace(classicRules),
	}
}

var presets = map[string]func() Config{
	"classic": Classic,
	"ascii":   ASCII,
}

// Preset returns a fresh Config for a named preset
func Preset(name string) (Config, error) {
	fn, ok := presets[strings.ToLower(name)]
	if !ok {
		return Config{}, fmt.Errorf("%w: %q", ErrUnknownPreset, name)
	}
	return fn(), nil
}

// PresetNames lists registered presets in sorted order
func PresetNames() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

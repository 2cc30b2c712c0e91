// Package pattern describes the connectivity rule of a tile maze.
//
// A Pattern holds one 3x3 template per maze symbol. The template is read
// row-major with the symbol itself in the centre; a surrounding position is
// connected when the maze holds the same symbol there as the template does.
// Positions holding the fill character carry no relation and are skipped,
// which is how out-of-grid padding is expressed.
package pattern

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/sirupsen/logrus"
)

// WindowSize is the number of cells in a 3x3 window
const WindowSize = 9

// center is the flat index of the window centre
const center = 4

// Offset is a position relative to the window centre
type Offset struct {
	DRow, DCol int
}

// Config is the user-facing description of a pattern
type Config struct {
	// Symbols lists the maze characters, one rune each
	Symbols string
	// Fill marks positions without a defined relation (out-of-grid padding)
	Fill string
	// Rules concatenates one row-major 3x3 template per symbol, in Symbols order
	Rules string
	// Logger receives construction warnings; nil uses the logrus standard logger
	Logger logrus.FieldLogger
}

// Pattern is an immutable adjacency rule table
type Pattern struct {
	symbols []rune
	fill    rune
	rules   [][WindowSize]rune

	fillCollides bool
}

// New validates cfg and builds a Pattern
// A fill equal to one of the symbols is logged as a warning and accepted
func New(cfg Config) (*Pattern, error) {
	symbols := []rune(cfg.Symbols)
	if len(symbols) < 2 {
		return nil, ErrSymbolCount
	}
	seen := make(map[rune]bool, len(symbols))
	for _, s := range symbols {
		if seen[s] {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateSymbol, s)
		}
		seen[s] = true
	}

	if utf8.RuneCountInString(cfg.Fill) != 1 {
		return nil, fmt.Errorf("%w: got %q", ErrFillLength, cfg.Fill)
	}
	fill, _ := utf8.DecodeRuneInString(cfg.Fill)

	flat := []rune(cfg.Rules)
	if len(flat) != WindowSize*len(symbols) {
		return nil, fmt.Errorf("%w: want %d characters for %d symbols, got %d",
			ErrRuleLength, WindowSize*len(symbols), len(symbols), len(flat))
	}
	rules := make([][WindowSize]rune, len(symbols))
	for i := range rules {
		copy(rules[i][:], flat[i*WindowSize:(i+1)*WindowSize])
	}

	p := &Pattern{
		symbols:      symbols,
		fill:         fill,
		rules:        rules,
		fillCollides: seen[fill],
	}

	if p.fillCollides {
		logger := cfg.Logger
		if logger == nil {
			logger = logrus.StandardLogger()
		}
		logger.WithField("fill", string(fill)).Warn("fill character matches maze character")
	}

	return p, nil
}

// MustNew is New for known-good configurations such as the presets
func MustNew(cfg Config) *Pattern {
	p, err := New(cfg)
	if err != nil {
		panic(err)
	}
	return p
}

// Adjacent returns the connected offsets around the centre of w, in flat index order
//
// The centre selects the template. Every other position is skipped when it
// holds the fill character and included when it matches the template.
func (p *Pattern) Adjacent(w Window) ([]Offset, error) {
	idx, ok := p.Index(w[center])
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownSymbol, w[center])
	}
	rule := &p.rules[idx]

	adj := make([]Offset, 0, WindowSize-1)
	for n, r := range w {
		if n == center || r == p.fill {
			continue
		}
		if r == rule[n] {
			adj = append(adj, Offset{DRow: n/3 - 1, DCol: n%3 - 1})
		}
	}
	return adj, nil
}

// AdjacentString is Adjacent for a 9-character row-major window
func (p *Pattern) AdjacentString(s string) ([]Offset, error) {
	w, err := WindowFromString(s)
	if err != nil {
		return nil, err
	}
	return p.Adjacent(w)
}

// AdjacentMatrix is Adjacent for a 3x3 matrix window
func (p *Pattern) AdjacentMatrix(m [][]rune) ([]Offset, error) {
	w, err := WindowFromMatrix(m)
	if err != nil {
		return nil, err
	}
	return p.Adjacent(w)
}

// Index returns the position of r among the symbols
func (p *Pattern) Index(r rune) (int, bool) {
	for i, s := range p.symbols {
		if s == r {
			return i, true
		}
	}
	return -1, false
}

// Symbols returns a copy of the maze symbols
func (p *Pattern) Symbols() []rune {
	out := make([]rune, len(p.symbols))
	copy(out, p.symbols)
	return out
}

// Fill returns the padding character
func (p *Pattern) Fill() rune {
	return p.fill
}

// FillCollides reports whether the fill is also a maze symbol
func (p *Pattern) FillCollides() bool {
	return p.fillCollides
}

// Config returns a Config that rebuilds this pattern
func (p *Pattern) Config() Config {
	var rules strings.Builder
	for _, r := range p.rules {
		rules.WriteString(string(r[:]))
	}
	return Config{
		Symbols: string(p.symbols),
		Fill:    string(p.fill),
		Rules:   rules.String(),
	}
}

func (p *Pattern) String() string {
	cfg := p.Config()
	return fmt.Sprintf("Pattern(symbols=%q, fill=%q, rules=%q)", cfg.Symbols, cfg.Fill, cfg.Rules)
}

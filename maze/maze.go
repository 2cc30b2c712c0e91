// Package maze generates 10PRINT tile mazes and labels their connected components.
//
// A Maze is built once from a Config and is immutable afterwards: the symbol
// grid, the per-cell neighbour table and the component index are all computed
// eagerly in New. Regenerating means constructing a new Maze.
//
// The neighbour relation comes from a pattern.Pattern evaluated at every
// cell. For the classic diagonal pattern the relation is symmetric. Custom
// patterns may yield a directed relation; it is used as-is for traversal, so
// component membership then depends on the row-major scan order. Symmetric
// reports which case applies.
package maze

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/lixenwraith/tenprint/pattern"
)

// Point addresses a cell by row and column
type Point struct {
	Row, Col int
}

// Add returns p shifted by o
func (p Point) Add(o pattern.Offset) Point {
	return Point{Row: p.Row + o.DRow, Col: p.Col + o.DCol}
}

// Config describes a maze to build
type Config struct {
	Width, Height int

	// Seed makes generation reproducible (nil = seeded from the clock)
	Seed *int64

	// Pattern supplies symbols and connectivity (nil = pattern.Classic)
	Pattern *pattern.Pattern

	// Logger receives debug output (nil = logrus standard logger)
	Logger logrus.FieldLogger
}

// Seed is a helper for Config.Seed literals
func Seed(v int64) *int64 {
	return &v
}

// Maze is a generated grid with its neighbour table and component index
type Maze struct {
	width, height int
	seed          int64
	pattern       *pattern.Pattern

	grid      Grid
	neighbors [][]Point // row-major, one entry per cell

	components [][]Point // discovery order
	belong     []int     // row-major component index per cell
}

// New generates a maze and computes its neighbours and components
func New(cfg Config) (*Maze, error) {
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return nil, fmt.Errorf("%w: got %dx%d", ErrInvalidSize, cfg.Width, cfg.Height)
	}

	logger := cfg.Logger
	if logger == nil {
		logger = logrus.StandardLogger()
	}

	p := cfg.Pattern
	if p == nil {
		var err error
		classic := pattern.Classic()
		classic.Logger = logger
		if p, err = pattern.New(classic); err != nil {
			return nil, err
		}
	}

	var seed int64
	if cfg.Seed != nil {
		seed = *cfg.Seed
	} else {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	grid, err := Generate(cfg.Width, cfg.Height, rng, p.Symbols())
	if err != nil {
		return nil, err
	}
	m, err := FromGrid(grid, p)
	if err != nil {
		return nil, err
	}
	m.seed = seed

	entry := logger.WithFields(logrus.Fields{
		"width":      m.width,
		"height":     m.height,
		"seed":       m.seed,
		"components": len(m.components),
	})
	// Symmetric walks every neighbor list
	if entry.Logger.IsLevelEnabled(logrus.DebugLevel) {
		entry.WithField("symmetric", m.Symmetric()).Debug("maze built")
	}

	return m, nil
}

// FromGrid builds a maze over an existing grid
// The grid is copied; every cell must hold one of p's symbols.
func FromGrid(grid Grid, p *pattern.Pattern) (*Maze, error) {
	h, w := grid.Height(), grid.Width()
	if h == 0 || w == 0 {
		return nil, fmt.Errorf("%w: got %dx%d", ErrInvalidSize, w, h)
	}
	for i, row := range grid {
		if len(row) != w {
			return nil, fmt.Errorf("%w: row %d has %d columns, want %d", ErrNonRectangular, i, len(row), w)
		}
	}

	m := &Maze{
		width:   w,
		height:  h,
		pattern: p,
		grid:    grid.Clone(),
	}

	var err error
	if m.neighbors, err = buildNeighbors(m.grid, p); err != nil {
		return nil, err
	}
	m.components, m.belong = labelComponents(m.neighbors, m.width)
	return m, nil
}

// Width returns the number of columns
func (m *Maze) Width() int { return m.width }

// Height returns the number of rows
func (m *Maze) Height() int { return m.height }

// Seed returns the seed the grid was generated from
func (m *Maze) Seed() int64 { return m.seed }

// Pattern returns the connectivity pattern
func (m *Maze) Pattern() *pattern.Pattern { return m.pattern }

// InBounds reports whether p lies on the grid
func (m *Maze) InBounds(p Point) bool {
	return p.Row >= 0 && p.Row < m.height && p.Col >= 0 && p.Col < m.width
}

// At returns the symbol at p; p must be in bounds
func (m *Maze) At(p Point) rune {
	return m.grid[p.Row][p.Col]
}

// Grid returns a copy of the symbol grid
func (m *Maze) Grid() Grid {
	return m.grid.Clone()
}

// Neighbors returns a copy of the neighbour set of p
func (m *Maze) Neighbors(p Point) []Point {
	if !m.InBounds(p) {
		return nil
	}
	src := m.neighbors[m.index(p)]
	out := make([]Point, len(src))
	copy(out, src)
	return out
}

// Symmetric reports whether every neighbour link has a reverse link
func (m *Maze) Symmetric() bool {
	for idx, ns := range m.neighbors {
		u := m.point(idx)
		for _, v := range ns {
			if !containsPoint(m.neighbors[m.index(v)], u) {
				return false
			}
		}
	}
	return true
}

func (m *Maze) String() string {
	return m.grid.String()
}

func (m *Maze) index(p Point) int {
	return p.Row*m.width + p.Col
}

func (m *Maze) point(idx int) Point {
	return Point{Row: idx / m.width, Col: idx % m.width}
}

func containsPoint(ps []Point, p Point) bool {
	for _, q := range ps {
		if q == p {
			return true
		}
	}
	return false
}

// Grid is a row-major matrix of maze symbols
type Grid [][]rune

// Height returns the number of rows
func (g Grid) Height() int { return len(g) }

// Width returns the number of columns
func (g Grid) Width() int {
	if len(g) == 0 {
		return 0
	}
	return len(g[0])
}

// Clone returns a deep copy
func (g Grid) Clone() Grid {
	out := make(Grid, len(g))
	for i, row := range g {
		out[i] = make([]rune, len(row))
		copy(out[i], row)
	}
	return out
}

func (g Grid) String() string {
	var b strings.Builder
	for i, row := range g {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(string(row))
	}
	return b.String()
}

package maze

import (
	"fmt"
	"math/rand"

	"github.com/lixenwraith/tenprint/pattern"
)

// Generate fills a width x height grid from rng, one draw per cell in row-major order
// With two symbols each cell is a fair coin: symbols[0] when the draw is below 0.5
func Generate(width, height int, rng *rand.Rand, symbols []rune) (Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: got %dx%d", ErrInvalidSize, width, height)
	}
	n := len(symbols)
	if n == 0 {
		return nil, ErrNoSymbols
	}
	grid := make(Grid, height)
	for i := range grid {
		grid[i] = make([]rune, width)
		for j := range grid[i] {
			k := int(rng.Float64() * float64(n))
			if k >= n {
				k = n - 1
			}
			grid[i][j] = symbols[k]
		}
	}
	return grid, nil
}

// buildNeighbors evaluates p on the 3x3 window around every cell
// The grid is padded with the fill character so edge cells see no relation
// beyond the border; the bounds check below is still the final filter.
func buildNeighbors(grid Grid, p *pattern.Pattern) ([][]Point, error) {
	h, w := grid.Height(), grid.Width()
	fill := p.Fill()

	padded := make([][]rune, h+2)
	for i := range padded {
		padded[i] = make([]rune, w+2)
		for j := range padded[i] {
			padded[i][j] = fill
		}
	}
	for i, row := range grid {
		copy(padded[i+1][1:], row)
	}

	neighbors := make([][]Point, h*w)
	var win pattern.Window
	for i := 0; i < h; i++ {
		for j := 0; j < w; j++ {
			// Window rows i..i+2 of the padded grid are rows i-1..i+1 of the maze
			for r := 0; r < 3; r++ {
				copy(win[r*3:r*3+3], padded[i+r][j:j+3])
			}

			adj, err := p.Adjacent(win)
			if err != nil {
				return nil, err
			}

			origin := Point{Row: i, Col: j}
			ns := make([]Point, 0, len(adj))
			for _, o := range adj {
				q := origin.Add(o)
				if q.Row >= 0 && q.Row < h && q.Col >= 0 && q.Col < w {
					ns = append(ns, q)
				}
			}
			neighbors[i*w+j] = ns
		}
	}
	return neighbors, nil
}

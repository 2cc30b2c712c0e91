package maze

import (
	"fmt"
	"sort"
)

// labelComponents partitions cells by breadth-first search over the neighbour table
// Cells are scanned row-major; each unvisited cell seeds a new component.
// Returns the components in discovery order and the row-major belong table.
//
// Time:   O(W·H·d), d ≤ 8.
// Memory: O(W·H).
func labelComponents(neighbors [][]Point, width int) ([][]Point, []int) {
	total := len(neighbors)
	seen := make([]bool, total)
	var comps [][]Point

	for i0 := 0; i0 < total; i0++ {
		if seen[i0] {
			continue
		}
		queue := []int{i0}
		seen[i0] = true

		for qi := 0; qi < len(queue); qi++ {
			for _, v := range neighbors[queue[qi]] {
				vi := v.Row*width + v.Col
				if !seen[vi] {
					seen[vi] = true
					queue = append(queue, vi)
				}
			}
		}

		comp := make([]Point, len(queue))
		for k, idx := range queue {
			comp[k] = Point{Row: idx / width, Col: idx % width}
		}
		comps = append(comps, comp)
	}

	belong := make([]int, total)
	for c, comp := range comps {
		for _, p := range comp {
			belong[p.Row*width+p.Col] = c
		}
	}
	return comps, belong
}

// ComponentCount returns the number of components
func (m *Maze) ComponentCount() int {
	return len(m.components)
}

// Components returns a deep copy of all components in discovery order
func (m *Maze) Components() [][]Point {
	out := make([][]Point, len(m.components))
	for i, comp := range m.components {
		out[i] = make([]Point, len(comp))
		copy(out[i], comp)
	}
	return out
}

// Component returns a copy of component i
func (m *Maze) Component(i int) ([]Point, error) {
	if i < 0 || i >= len(m.components) {
		return nil, fmt.Errorf("%w: %d of %d", ErrComponentIndex, i, len(m.components))
	}
	out := make([]Point, len(m.components[i]))
	copy(out, m.components[i])
	return out, nil
}

// ComponentOf returns the index of the component containing p, or -1 off-grid
func (m *Maze) ComponentOf(p Point) int {
	if !m.InBounds(p) {
		return -1
	}
	return m.belong[m.index(p)]
}

// VertexBelong returns a height x width copy of the cell-to-component table
func (m *Maze) VertexBelong() [][]int {
	out := make([][]int, m.height)
	for i := range out {
		out[i] = make([]int, m.width)
		copy(out[i], m.belong[i*m.width:(i+1)*m.width])
	}
	return out
}

// ComponentsBySize returns component indices ordered largest first, ties by index
func (m *Maze) ComponentsBySize() []int {
	order := make([]int, len(m.components))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return len(m.components[order[a]]) > len(m.components[order[b]])
	})
	return order
}

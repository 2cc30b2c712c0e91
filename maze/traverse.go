package maze

import "fmt"

// Spread returns the breadth-first wave from start as a sequence of packets
// The first packet is the start cell; each following packet holds the cells
// first reached from one dequeued cell. Empty packets are omitted.
func (m *Maze) Spread(start Point) ([][]Point, error) {
	if !m.InBounds(start) {
		return nil, fmt.Errorf("%w: %v", ErrOutOfBounds, start)
	}

	seen := make([]bool, len(m.neighbors))
	seen[m.index(start)] = true
	queue := []Point{start}
	packets := [][]Point{{start}}

	for qi := 0; qi < len(queue); qi++ {
		var packet []Point
		for _, v := range m.neighbors[m.index(queue[qi])] {
			vi := m.index(v)
			if seen[vi] {
				continue
			}
			seen[vi] = true
			queue = append(queue, v)
			packet = append(packet, v)
		}
		if len(packet) > 0 {
			packets = append(packets, packet)
		}
	}
	return packets, nil
}

// DepthOrder returns the depth-first preorder of cells reachable from start
// Uses an explicit stack; neighbours are explored in neighbour-table order.
func (m *Maze) DepthOrder(start Point) ([]Point, error) {
	if !m.InBounds(start) {
		return nil, fmt.Errorf("%w: %v", ErrOutOfBounds, start)
	}

	seen := make([]bool, len(m.neighbors))
	stack := []Point{start}
	var order []Point

	for len(stack) > 0 {
		u := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		ui := m.index(u)
		if seen[ui] {
			continue
		}
		seen[ui] = true
		order = append(order, u)

		ns := m.neighbors[ui]
		for k := len(ns) - 1; k >= 0; k-- {
			if !seen[m.index(ns[k])] {
				stack = append(stack, ns[k])
			}
		}
	}
	return order, nil
}

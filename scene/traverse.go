package scene

import "context"

// Wave floods each component from its first cell, largest component first
// Cells reached by the same dequeued cell appear together.
func Wave(ctx context.Context, s *Stage) error {
	for rank, idx := range s.maze.ComponentsBySize() {
		comp, err := s.maze.Component(idx)
		if err != nil {
			return err
		}
		packets, err := s.maze.Spread(comp[0])
		if err != nil {
			return err
		}

		color := s.palette.At(rank)
		for _, packet := range packets {
			for _, p := range packet {
				if err := s.paint(p, color); err != nil {
					return err
				}
			}
			if err := s.pause(ctx, s.timing.Step); err != nil {
				return err
			}
		}
	}
	return nil
}

// Trace walks each component depth-first from its first cell, largest component first
func Trace(ctx context.Context, s *Stage) error {
	for rank, idx := range s.maze.ComponentsBySize() {
		comp, err := s.maze.Component(idx)
		if err != nil {
			return err
		}
		order, err := s.maze.DepthOrder(comp[0])
		if err != nil {
			return err
		}

		color := s.palette.At(rank)
		for _, p := range order {
			if err := s.paint(p, color); err != nil {
				return err
			}
			if err := s.pause(ctx, s.timing.Step); err != nil {
				return err
			}
		}
	}
	return nil
}

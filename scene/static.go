package scene

import (
	"context"

	"github.com/lixenwraith/tenprint/maze"
)

// Components paints every cell in the color of its component, row by row
func Components(ctx context.Context, s *Stage) error {
	for i := 0; i < s.maze.Height(); i++ {
		for j := 0; j < s.maze.Width(); j++ {
			p := maze.Point{Row: i, Col: j}
			if err := s.paint(p, s.componentColor(p)); err != nil {
				return err
			}
		}
	}
	return ctx.Err()
}

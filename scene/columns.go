package scene

import (
	"context"
	"time"

	"github.com/lixenwraith/tenprint/maze"
	"github.com/lixenwraith/tenprint/palette"
	"github.com/lixenwraith/tenprint/terminal"
)

var hidden = terminal.SGR256(palette.Gray)

// showColumn paints column j in component colors
func (s *Stage) showColumn(j int) error {
	for i := 0; i < s.maze.Height(); i++ {
		p := maze.Point{Row: i, Col: j}
		if err := s.paint(p, s.componentColor(p)); err != nil {
			return err
		}
	}
	return nil
}

// hideColumn paints column j dim gray
func (s *Stage) hideColumn(j int) error {
	for i := 0; i < s.maze.Height(); i++ {
		if err := s.paint(maze.Point{Row: i, Col: j}, hidden); err != nil {
			return err
		}
	}
	return nil
}

// hideAll dims the whole maze and holds
func (s *Stage) hideAll(ctx context.Context) error {
	for j := 0; j < s.maze.Width(); j++ {
		if err := s.hideColumn(j); err != nil {
			return err
		}
	}
	return s.pause(ctx, s.timing.Hold)
}

// bandIn reveals columns [0, thick)
func (s *Stage) bandIn(ctx context.Context, thick int, dt time.Duration) error {
	for j := 0; j < thick; j++ {
		if err := s.showColumn(j); err != nil {
			return err
		}
		if err := s.pause(ctx, dt); err != nil {
			return err
		}
	}
	return nil
}

// bandOut hides the rightmost thick columns
func (s *Stage) bandOut(ctx context.Context, thick int, dt time.Duration) error {
	for j := s.maze.Width() - thick; j < s.maze.Width(); j++ {
		if err := s.hideColumn(j); err != nil {
			return err
		}
		if err := s.pause(ctx, dt); err != nil {
			return err
		}
	}
	return nil
}

// slideRight moves a band of thick columns from the left edge to the right edge
func (s *Stage) slideRight(ctx context.Context, thick int, dt time.Duration) error {
	for j := thick; j < s.maze.Width(); j++ {
		if err := s.showColumn(j); err != nil {
			return err
		}
		if err := s.hideColumn(j - thick); err != nil {
			return err
		}
		if err := s.pause(ctx, dt); err != nil {
			return err
		}
	}
	return nil
}

// slideLeft moves a band of thick columns from the right edge to the left edge
func (s *Stage) slideLeft(ctx context.Context, thick int, dt time.Duration) error {
	for j := s.maze.Width() - thick - 1; j >= 0; j-- {
		if err := s.showColumn(j); err != nil {
			return err
		}
		if err := s.hideColumn(j + thick); err != nil {
			return err
		}
		if err := s.pause(ctx, dt); err != nil {
			return err
		}
	}
	return nil
}

// Intro sweeps a growing band of color across the dimmed maze, then reveals all of it
// Each round widens the band and shortens the frame time by a fifth.
func Intro(ctx context.Context, s *Stage) error {
	if err := s.hideAll(ctx); err != nil {
		return err
	}

	width := s.maze.Width()
	dt := s.timing.Frame
	for t := 0; t < s.timing.Rounds; t++ {
		thick := min(s.timing.Thickness+5*t*t, width)
		if err := s.bandIn(ctx, thick, dt); err != nil {
			return err
		}
		if err := s.slideRight(ctx, thick, dt); err != nil {
			return err
		}
		if err := s.bandOut(ctx, thick, dt); err != nil {
			return err
		}
		dt = dt * 4 / 5
	}

	if err := s.bandIn(ctx, width, s.timing.Frame); err != nil {
		return err
	}
	return s.pause(ctx, s.timing.Hold)
}

// Bounce slides one band right and left across the dimmed maze, then reveals all of it
func Bounce(ctx context.Context, s *Stage) error {
	if err := s.hideAll(ctx); err != nil {
		return err
	}

	width := s.maze.Width()
	thick := min(max(s.timing.Thickness, 1), width)
	dt := s.timing.Frame
	if err := s.bandIn(ctx, thick, dt); err != nil {
		return err
	}

	for t := 0; t <= s.timing.Bounces; t++ {
		var err error
		if t%2 == 1 {
			err = s.slideLeft(ctx, thick, dt)
		} else {
			err = s.slideRight(ctx, thick, dt)
		}
		if err != nil {
			return err
		}
		if err := s.pause(ctx, dt); err != nil {
			return err
		}
	}

	if err := s.bandIn(ctx, width, dt); err != nil {
		return err
	}
	return s.pause(ctx, s.timing.Hold)
}

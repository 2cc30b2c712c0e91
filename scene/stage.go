// Package scene draws a maze onto a terminal.Screen: static colorings and
// column or traversal animations, all through relative cursor motion.
package scene

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/lixenwraith/tenprint/maze"
	"github.com/lixenwraith/tenprint/palette"
	"github.com/lixenwraith/tenprint/terminal"
)

// Layout offsets the maze inside the screen
type Layout struct {
	Top  int
	Left int
}

// Timing controls animation pacing
type Timing struct {
	Frame     time.Duration // per-column step of band animations
	Step      time.Duration // per-packet or per-cell step of traversal animations
	Hold      time.Duration // pause before the first and after the last frame
	Thickness int           // band width of the first round
	Rounds    int           // intro rounds
	Bounces   int           // passes after the first slide in the bounce scene
}

// DefaultTiming returns the pacing used when none is configured
func DefaultTiming() Timing {
	return Timing{
		Frame:     30 * time.Millisecond,
		Step:      3 * time.Millisecond,
		Hold:      time.Second,
		Thickness: 10,
		Rounds:    3,
		Bounces:   1,
	}
}

// Config holds everything a stage draws with
type Config struct {
	Maze    *maze.Maze
	Screen  *terminal.Screen
	Palette palette.Palette
	Layout  Layout
	Timing  Timing
	Pacer   Pacer              // nil means Sleeper
	Logger  logrus.FieldLogger // nil means the standard logger
}

// Stage binds a maze to a screen and tracks the active color
type Stage struct {
	maze    *maze.Maze
	screen  *terminal.Screen
	palette palette.Palette
	layout  Layout
	timing  Timing
	pacer   Pacer
	logger  logrus.FieldLogger

	belong [][]int
	color  string
}

// New validates cfg and creates a stage
func New(cfg Config) (*Stage, error) {
	if cfg.Maze == nil || cfg.Screen == nil {
		return nil, ErrMissing
	}
	if len(cfg.Palette) == 0 {
		return nil, palette.ErrEmptyPalette
	}
	if cfg.Layout.Top < 0 || cfg.Layout.Left < 0 {
		return nil, fmt.Errorf("%w: negative margin %+v", ErrLayout, cfg.Layout)
	}

	w, h := cfg.Screen.Size()
	if cfg.Layout.Left+cfg.Maze.Width() > w || cfg.Layout.Top+cfg.Maze.Height() > h {
		return nil, fmt.Errorf("%w: %dx%d maze at %+v on %dx%d screen",
			ErrLayout, cfg.Maze.Width(), cfg.Maze.Height(), cfg.Layout, w, h)
	}

	if cfg.Pacer == nil {
		cfg.Pacer = Sleeper{}
	}
	if cfg.Logger == nil {
		cfg.Logger = logrus.StandardLogger()
	}

	return &Stage{
		maze:    cfg.Maze,
		screen:  cfg.Screen,
		palette: cfg.Palette,
		layout:  cfg.Layout,
		timing:  cfg.Timing,
		pacer:   cfg.Pacer,
		logger:  cfg.Logger,
		belong:  cfg.Maze.VertexBelong(),
	}, nil
}

// Run reserves the drawing area and plays the named scene
// The cursor is parked below the area with attributes reset even when the scene fails.
func (s *Stage) Run(ctx context.Context, name string) error {
	play, err := Lookup(name)
	if err != nil {
		return err
	}

	log := s.logger.WithField("scene", name)
	log.Debug("scene start")
	start := time.Now()

	if err := s.screen.Reserve(); err != nil {
		return fmt.Errorf("reserve screen: %w", err)
	}

	err = play(ctx, s)
	if ferr := s.finish(); err == nil {
		err = ferr
	}

	log.WithFields(logrus.Fields{
		"elapsed": time.Since(start),
		"error":   err,
	}).Debug("scene end")
	return err
}

// paint draws the maze character of p in color, skipping a repeated color sequence
func (s *Stage) paint(p maze.Point, color string) error {
	row, col := p.Row+s.layout.Top, p.Col+s.layout.Left
	if color != s.color {
		if err := s.screen.WriteMarkupAt(row, col, color); err != nil {
			return err
		}
		s.color = color
	}
	return s.screen.WriteRuneAt(row, col, s.maze.At(p))
}

// componentColor is the palette entry of the component holding p
func (s *Stage) componentColor(p maze.Point) string {
	return s.palette.At(s.belong[p.Row][p.Col])
}

// pause flushes pending output and waits for d
func (s *Stage) pause(ctx context.Context, d time.Duration) error {
	if err := s.screen.Flush(); err != nil {
		return err
	}
	return s.pacer.Pause(ctx, d)
}

// finish parks the cursor below the drawing area and resets attributes
func (s *Stage) finish() error {
	if err := s.screen.MoveBelow(); err != nil {
		return err
	}
	if err := s.screen.WriteMarkup(terminal.Reset); err != nil {
		return err
	}
	s.color = ""
	return s.screen.Flush()
}

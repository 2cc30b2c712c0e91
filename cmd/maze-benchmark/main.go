package main

import (
	"context"
	"fmt"
	"io"
	"math/rand"
	"os"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"

	"github.com/lixenwraith/tenprint/maze"
	"github.com/lixenwraith/tenprint/palette"
	"github.com/lixenwraith/tenprint/pattern"
	"github.com/lixenwraith/tenprint/scene"
	"github.com/lixenwraith/tenprint/terminal"
)

type benchmark struct {
	name string
	fn   func(b *testing.B)
}

// instant is a scene pacer that never waits
type instant struct{}

func (instant) Pause(ctx context.Context, _ time.Duration) error { return ctx.Err() }

func main() {
	width := pflag.IntP("width", "W", 200, "maze width")
	height := pflag.IntP("height", "H", 100, "maze height")
	seed := pflag.Int64P("seed", "s", 12345, "maze seed")
	pflag.Parse()

	logrus.SetOutput(io.Discard)

	benches, err := benchmarks(*width, *height, *seed)
	if err != nil {
		fmt.Fprintf(os.Stderr, "maze-benchmark: %v\n", err)
		os.Exit(1)
	}

	cells := *width * *height
	fmt.Printf("Benchmark: %dx%d maze (%d cells), seed=%d\n\n", *width, *height, cells, *seed)
	fmt.Printf("%-32s %14s %12s\n", "Name", "ns/op", "ns/cell")
	fmt.Println("--------------------------------------------------------------")

	for _, bm := range benches {
		result := testing.Benchmark(bm.fn)
		nsPerOp := float64(result.T.Nanoseconds()) / float64(result.N)
		fmt.Printf("%-32s %12.0f ns %9.2f ns\n", bm.name, nsPerOp, nsPerOp/float64(cells))
	}
}

// benchmarks builds one reference maze and the stages to time against it
func benchmarks(width, height int, seed int64) ([]benchmark, error) {
	p, err := pattern.New(pattern.Classic())
	if err != nil {
		return nil, err
	}
	ref, err := maze.New(maze.Config{Width: width, Height: height, Seed: maze.Seed(seed), Pattern: p})
	if err != nil {
		return nil, err
	}
	grid := ref.Grid()
	start := maze.Point{}
	pal, err := palette.Named(terminal.ColorMode256, "blues+pinks")
	if err != nil {
		return nil, err
	}

	return []benchmark{
		{"Generate", func(b *testing.B) {
			for b.Loop() {
				if _, err := maze.Generate(width, height, rand.New(rand.NewSource(seed)), p.Symbols()); err != nil {
					b.Fatal(err)
				}
			}
		}},
		{"FromGrid (neighbours+components)", func(b *testing.B) {
			for b.Loop() {
				if _, err := maze.FromGrid(grid, p); err != nil {
					b.Fatal(err)
				}
			}
		}},
		{"New", func(b *testing.B) {
			for b.Loop() {
				if _, err := maze.New(maze.Config{Width: width, Height: height, Seed: maze.Seed(seed), Pattern: p}); err != nil {
					b.Fatal(err)
				}
			}
		}},
		{"Spread", func(b *testing.B) {
			for b.Loop() {
				if _, err := ref.Spread(start); err != nil {
					b.Fatal(err)
				}
			}
		}},
		{"DepthOrder", func(b *testing.B) {
			for b.Loop() {
				if _, err := ref.DepthOrder(start); err != nil {
					b.Fatal(err)
				}
			}
		}},
		{"Scene components to io.Discard", func(b *testing.B) {
			for b.Loop() {
				if err := render(ref, pal); err != nil {
					b.Fatal(err)
				}
			}
		}},
	}, nil
}

// render draws the components scene without pacing
func render(m *maze.Maze, pal palette.Palette) error {
	screen, err := terminal.NewScreen(io.Discard, m.Width(), m.Height())
	if err != nil {
		return err
	}
	stage, err := scene.New(scene.Config{Maze: m, Screen: screen, Palette: pal, Pacer: instant{}})
	if err != nil {
		return err
	}
	return stage.Run(context.Background(), "components")
}

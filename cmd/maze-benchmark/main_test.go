package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/tenprint/maze"
	"github.com/lixenwraith/tenprint/palette"
)

func TestBenchmarks_Run(t *testing.T) {
	benches, err := benchmarks(8, 4, 1)
	require.NoError(t, err)
	require.Len(t, benches, 6)

	for _, bm := range benches {
		t.Run(bm.name, func(t *testing.T) {
			result := testing.Benchmark(bm.fn)
			assert.Positive(t, result.N)
		})
	}
}

func TestBenchmarks_InvalidSize(t *testing.T) {
	_, err := benchmarks(0, 4, 1)
	assert.ErrorIs(t, err, maze.ErrInvalidSize)
}

func TestRender(t *testing.T) {
	m, err := maze.New(maze.Config{Width: 3, Height: 2, Seed: maze.Seed(2)})
	require.NoError(t, err)
	assert.NoError(t, render(m, palette.Palette{"\x1b[31m"}))
}

package scene

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/x/ansi"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/tenprint/maze"
	"github.com/lixenwraith/tenprint/palette"
	"github.com/lixenwraith/tenprint/pattern"
	"github.com/lixenwraith/tenprint/terminal"
)

const (
	red    = "\x1b[31m"
	green  = "\x1b[32m"
	yellow = "\x1b[33m"
)

// recorder is a Pacer that logs requested pauses without sleeping
type recorder struct {
	pauses []time.Duration
}

func (r *recorder) Pause(ctx context.Context, d time.Duration) error {
	r.pauses = append(r.pauses, d)
	return ctx.Err()
}

type fixture struct {
	stage *Stage
	out   *bytes.Buffer
	pacer *recorder
}

func newFixture(t *testing.T, m *maze.Maze, pal palette.Palette, layout Layout, timing Timing) fixture {
	t.Helper()
	var out bytes.Buffer
	scr, err := terminal.NewScreen(&out, m.Width()+2*layout.Left, m.Height()+2*layout.Top)
	require.NoError(t, err)

	rec := &recorder{}
	logger, _ := test.NewNullLogger()
	st, err := New(Config{
		Maze:    m,
		Screen:  scr,
		Palette: pal,
		Layout:  layout,
		Timing:  timing,
		Pacer:   rec,
		Logger:  logger,
	})
	require.NoError(t, err)
	return fixture{stage: st, out: &out, pacer: rec}
}

func seeded(t *testing.T, width, height int, seed int64) *maze.Maze {
	t.Helper()
	logger, _ := test.NewNullLogger()
	m, err := maze.New(maze.Config{Width: width, Height: height, Seed: maze.Seed(seed), Logger: logger})
	require.NoError(t, err)
	return m
}

func ascii(t *testing.T, rows ...string) *maze.Maze {
	t.Helper()
	g := make(maze.Grid, len(rows))
	for i, r := range rows {
		g[i] = []rune(r)
	}
	m, err := maze.FromGrid(g, pattern.MustNew(pattern.ASCII()))
	require.NoError(t, err)
	return m
}

// drawn strips escape sequences and the reserved blank rows
func drawn(t *testing.T, m *maze.Maze, layout Layout, out string) string {
	t.Helper()
	blank := strings.Repeat(strings.Repeat(" ", m.Width()+2*layout.Left)+"\n", m.Height()+2*layout.Top)
	plain := ansi.Strip(out)
	require.True(t, strings.HasPrefix(plain, blank), "output must start with the reserved area")
	return strings.TrimPrefix(plain, blank)
}

func TestRun_ComponentsDeterministic(t *testing.T) {
	render := func() string {
		m := seeded(t, 4, 4, 7)
		f := newFixture(t, m, palette.Palette{red}, Layout{}, DefaultTiming())
		require.NoError(t, f.stage.Run(context.Background(), "components"))
		return f.out.String()
	}

	first := render()
	assert.Equal(t, first, render())

	m := seeded(t, 4, 4, 7)
	rows := strings.ReplaceAll(m.String(), "\n", "")
	assert.Equal(t, rows, drawn(t, m, Layout{}, first))
	assert.Equal(t, 1, strings.Count(first, red), "repeated color must be coalesced")
	assert.True(t, strings.HasSuffix(first, terminal.Reset))
}

func TestComponents_ColorsByComponent(t *testing.T) {
	m := ascii(t, "//", "//")
	f := newFixture(t, m, palette.Palette{red, green, yellow}, Layout{}, DefaultTiming())

	require.NoError(t, f.stage.Run(context.Background(), "components"))

	want := "  \n  \n\x1b[2A" +
		red + "/" +
		green + "/" +
		"\x1b[B\x1b[2D/" +
		yellow + "/" +
		"\x1b[2D\x1b[B" + terminal.Reset
	assert.Equal(t, want, f.out.String())
	assert.Empty(t, f.pacer.pauses)
}

func TestComponents_Layout(t *testing.T) {
	m := ascii(t, "/\\", "\\/")
	layout := Layout{Top: 1, Left: 2}
	f := newFixture(t, m, palette.Palette{red}, layout, DefaultTiming())

	require.NoError(t, f.stage.Run(context.Background(), "components"))

	out := f.out.String()
	assert.Contains(t, out, "\x1b[4A\x1b[B\x1b[2C"+red+"/")
	assert.Equal(t, "/\\\\/", drawn(t, m, layout, out))
}

func TestNew_Errors(t *testing.T) {
	m := ascii(t, "//", "//")
	scr, err := terminal.NewScreen(&bytes.Buffer{}, 2, 2)
	require.NoError(t, err)

	_, err = New(Config{Screen: scr, Palette: palette.Palette{red}})
	assert.ErrorIs(t, err, ErrMissing)

	_, err = New(Config{Maze: m, Screen: scr})
	assert.ErrorIs(t, err, palette.ErrEmptyPalette)

	_, err = New(Config{Maze: m, Screen: scr, Palette: palette.Palette{red}, Layout: Layout{Left: 1}})
	assert.ErrorIs(t, err, ErrLayout)

	_, err = New(Config{Maze: m, Screen: scr, Palette: palette.Palette{red}, Layout: Layout{Top: -1}})
	assert.ErrorIs(t, err, ErrLayout)
}

func TestRun_UnknownScene(t *testing.T) {
	f := newFixture(t, ascii(t, "/"), palette.Palette{red}, Layout{}, DefaultTiming())
	err := f.stage.Run(context.Background(), "fireworks")
	assert.ErrorIs(t, err, ErrUnknownScene)
	assert.Empty(t, f.out.String())
}

func TestRun_CancelRestoresTerminal(t *testing.T) {
	m := seeded(t, 6, 3, 1)
	var out bytes.Buffer
	scr, err := terminal.NewScreen(&out, 6, 3)
	require.NoError(t, err)
	logger, _ := test.NewNullLogger()
	st, err := New(Config{Maze: m, Screen: scr, Palette: palette.Palette{red}, Timing: DefaultTiming(), Logger: logger})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	start := time.Now()
	err = st.Run(ctx, "wave")
	assert.ErrorIs(t, err, context.Canceled)
	assert.Less(t, time.Since(start), time.Second)
	assert.True(t, strings.HasSuffix(out.String(), terminal.Reset))

	row, _ := scr.Position()
	assert.Equal(t, 3, row, "cursor must be parked below the area")
}

func TestRun_Logs(t *testing.T) {
	m := ascii(t, "//")
	scr, err := terminal.NewScreen(&bytes.Buffer{}, 2, 1)
	require.NoError(t, err)
	logger, hook := test.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)

	st, err := New(Config{Maze: m, Screen: scr, Palette: palette.Palette{red}, Pacer: &recorder{}, Logger: logger})
	require.NoError(t, err)
	require.NoError(t, st.Run(context.Background(), "Components"))

	entries := hook.AllEntries()
	require.Len(t, entries, 2)
	assert.Equal(t, "scene start", entries[0].Message)
	assert.Equal(t, "scene end", entries[1].Message)
	assert.Equal(t, "Components", entries[1].Data["scene"])
	assert.Nil(t, entries[1].Data["error"])
}

func TestRegistry(t *testing.T) {
	assert.Equal(t, []string{"bounce", "components", "intro", "trace", "wave"}, Names())
	assert.False(t, Animated("components"))
	assert.True(t, Animated("Intro"))
	assert.False(t, Animated("missing"))

	_, err := Lookup("WAVE")
	assert.NoError(t, err)
}

func TestSleeper(t *testing.T) {
	var s Sleeper
	assert.NoError(t, s.Pause(context.Background(), 0))
	assert.NoError(t, s.Pause(context.Background(), time.Millisecond))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	start := time.Now()
	assert.ErrorIs(t, s.Pause(ctx, time.Hour), context.Canceled)
	assert.Less(t, time.Since(start), time.Second)
}

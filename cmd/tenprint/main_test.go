package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/tenprint/config"
	"github.com/lixenwraith/tenprint/maze"
	"github.com/lixenwraith/tenprint/terminal"
)

// runToFile runs the command with a regular file as stdout and returns what it wrote
func runToFile(t *testing.T, args ...string) (string, error) {
	t.Helper()
	for _, key := range []string{config.EnvSeed, config.EnvWidth, config.EnvHeight, config.EnvScene, config.EnvPalette, config.EnvColor} {
		t.Setenv(key, "")
	}

	out, err := os.Create(filepath.Join(t.TempDir(), "stdout"))
	require.NoError(t, err)
	defer out.Close()

	runErr := run(args, out)
	data, err := os.ReadFile(out.Name())
	require.NoError(t, err)
	return string(data), runErr
}

func TestRun_Components(t *testing.T) {
	out, err := runToFile(t, "--seed", "4", "-W", "6", "-H", "3", "--color", "256", "-p", "reds")
	require.NoError(t, err)

	m, err := maze.New(maze.Config{Width: 6, Height: 3, Seed: maze.Seed(4)})
	require.NoError(t, err)

	plain := ansi.Strip(out)
	assert.True(t, strings.HasSuffix(plain, strings.ReplaceAll(m.String(), "\n", "")), plain)
	assert.Contains(t, out, "\x1b[38;5;")
	assert.True(t, strings.HasSuffix(out, terminal.Reset))

	again, err := runToFile(t, "--seed", "4", "-W", "6", "-H", "3", "--color", "256", "-p", "reds")
	require.NoError(t, err)
	assert.Equal(t, out, again)
}

func TestRun_ConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tenprint.yaml")
	require.NoError(t, os.WriteFile(path, []byte("width: 5\nheight: 2\nseed: 9\npattern:\n  preset: ascii\n"), 0644))

	out, err := runToFile(t, "-c", path, "--color", "256", "--margin-left", "1")
	require.NoError(t, err)

	plain := ansi.Strip(out)
	assert.True(t, strings.HasPrefix(plain, strings.Repeat("       \n", 2)), "screen includes both margins")
	assert.NotContains(t, plain, string([]rune{'╱'}))
}

func TestRun_FillCollisionWarns(t *testing.T) {
	var stderr bytes.Buffer
	saved := logStderr
	logStderr = &stderr
	defer func() { logStderr = saved; setupLogging(false) }()

	path := filepath.Join(t.TempDir(), "tenprint.yaml")
	cfg := "width: 3\nheight: 2\nseed: 1\npattern:\n  symbols: ab\n  fill: a\n  rules: aaaaaaaaabbbbbbbbb\n"
	require.NoError(t, os.WriteFile(path, []byte(cfg), 0644))

	out, err := runToFile(t, "-c", path, "--color", "256")
	require.NoError(t, err)

	assert.Contains(t, stderr.String(), "level=warning")
	assert.Contains(t, stderr.String(), "fill character matches maze character")
	assert.NotContains(t, out, "fill character")
}

func TestRun_RefusesAnimationWithoutTerminal(t *testing.T) {
	out, err := runToFile(t, "--scene", "intro", "-W", "4", "-H", "4")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "needs a terminal")
	assert.Empty(t, out)
}

func TestRun_FitNeedsTerminal(t *testing.T) {
	_, err := runToFile(t, "--fit")
	assert.ErrorIs(t, err, terminal.ErrNotTerminal)
}

func TestRun_InvalidSettings(t *testing.T) {
	_, err := runToFile(t, "--scene", "fireworks", "-p", "teal")
	require.ErrorIs(t, err, config.ErrInvalid)
	assert.Contains(t, err.Error(), "fireworks")
	assert.Contains(t, err.Error(), "teal")

	_, err = runToFile(t, "--no-such-flag")
	assert.Error(t, err)
}

func TestRun_List(t *testing.T) {
	out, err := runToFile(t, "--list")
	require.NoError(t, err)
	assert.Contains(t, out, "scenes:   bounce components intro trace wave")
	assert.Contains(t, out, "patterns: ascii classic")
}

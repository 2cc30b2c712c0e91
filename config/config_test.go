package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/tenprint/pattern"
	"github.com/lixenwraith/tenprint/scene"
)

func writeFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "tenprint.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())

	assert.Equal(t, 80, cfg.Width)
	assert.Equal(t, 28, cfg.Height)
	assert.Nil(t, cfg.Seed)
	assert.Equal(t, "components", cfg.Scene)
	assert.Equal(t, []string{"reds", "yellows"}, cfg.Palettes)
	assert.Equal(t, scene.DefaultTiming(), cfg.SceneTiming())

	// Each call returns an independent value
	cfg.Palettes[0] = "blues"
	assert.Equal(t, "reds", Default().Palettes[0])
}

func TestLoad(t *testing.T) {
	path := writeFile(t, `
width: 40
height: 12
seed: 7
scene: intro
palettes: [blues, pinks]
margin:
  top: 2
  left: 5
timing:
  frame: 10ms
  hold: 2s
  rounds: 5
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	assert.Equal(t, 40, cfg.Width)
	assert.Equal(t, 12, cfg.Height)
	require.NotNil(t, cfg.Seed)
	assert.Equal(t, int64(7), *cfg.Seed)
	assert.Equal(t, "intro", cfg.Scene)
	assert.Equal(t, []string{"blues", "pinks"}, cfg.Palettes)
	assert.Equal(t, scene.Layout{Top: 2, Left: 5}, cfg.SceneLayout())
	assert.Equal(t, 10*time.Millisecond, cfg.Timing.Frame)
	assert.Equal(t, 2*time.Second, cfg.Timing.Hold)
	assert.Equal(t, 5, cfg.Timing.Rounds)

	// Untouched keys keep their defaults
	assert.Equal(t, "classic", cfg.Pattern.Preset)
	assert.Equal(t, 3*time.Millisecond, cfg.Timing.Step)
}

func TestLoad_Empty(t *testing.T) {
	cfg, err := Load(writeFile(t, ""))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_Errors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, ErrRead)
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, err = Load(writeFile(t, "widht: 10\n"))
	assert.ErrorIs(t, err, ErrRead)

	_, err = Load(writeFile(t, "timing:\n  frame: fast\n"))
	assert.ErrorIs(t, err, ErrRead)
}

func TestFromEnv(t *testing.T) {
	t.Setenv(EnvSeed, "-3")
	t.Setenv(EnvWidth, "20")
	t.Setenv(EnvHeight, "abc")
	t.Setenv(EnvScene, "wave")
	t.Setenv(EnvPalette, "blues+pinks")
	t.Setenv(EnvColor, "truecolor")

	logger, hook := test.NewNullLogger()
	cfg := FromEnv(Default(), logger)

	require.NotNil(t, cfg.Seed)
	assert.Equal(t, int64(-3), *cfg.Seed)
	assert.Equal(t, 20, cfg.Width)
	assert.Equal(t, 28, cfg.Height, "malformed value is ignored")
	assert.Equal(t, "wave", cfg.Scene)
	assert.Equal(t, []string{"blues+pinks"}, cfg.Palettes)
	assert.Equal(t, "truecolor", cfg.ColorMode)
	require.NoError(t, cfg.Validate())

	require.Len(t, hook.AllEntries(), 1)
	assert.Equal(t, logrus.WarnLevel, hook.LastEntry().Level)
	assert.Equal(t, EnvHeight, hook.LastEntry().Data["env"])
}

func TestFromEnv_Unset(t *testing.T) {
	for _, key := range []string{EnvSeed, EnvWidth, EnvHeight, EnvScene, EnvPalette, EnvColor} {
		t.Setenv(key, "")
	}
	logger, _ := test.NewNullLogger()
	assert.Equal(t, Default(), FromEnv(Default(), logger))
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
	}{
		{"zero width", func(c *Config) { c.Width = 0 }},
		{"negative margin", func(c *Config) { c.Margin.Left = -1 }},
		{"unknown scene", func(c *Config) { c.Scene = "fireworks" }},
		{"no palette", func(c *Config) { c.Palettes = nil }},
		{"unknown palette", func(c *Config) { c.Palettes = []string{"reds+teal"} }},
		{"bad color mode", func(c *Config) { c.ColorMode = "16" }},
		{"unknown preset", func(c *Config) { c.Pattern.Preset = "hex" }},
		{"symbols without rules", func(c *Config) { c.Pattern.Symbols = "ab" }},
		{"negative frame", func(c *Config) { c.Timing.Frame = -time.Second }},
		{"thin band", func(c *Config) { c.Timing.Thickness = 0 }},
		{"negative rounds", func(c *Config) { c.Timing.Rounds = -1 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.modify(&cfg)
			assert.ErrorIs(t, cfg.Validate(), ErrInvalid)
		})
	}
}

func TestValidate_CollectsAll(t *testing.T) {
	cfg := Default()
	cfg.Width = -1
	cfg.Scene = "nope"

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "size -1x28")
	assert.Contains(t, err.Error(), `scene "nope"`)
}

func TestValidate_FitIgnoresSize(t *testing.T) {
	cfg := Default()
	cfg.Fit = true
	cfg.Width, cfg.Height = 0, 0
	assert.NoError(t, cfg.Validate())
}

func TestPatternConfig(t *testing.T) {
	logger, _ := test.NewNullLogger()

	cfg := Default()
	pc, err := cfg.PatternConfig(logger)
	require.NoError(t, err)
	assert.Equal(t, pattern.Classic().Rules, pc.Rules)
	assert.Equal(t, logger, pc.Logger)

	cfg.Pattern.Preset = "ASCII"
	pc, err = cfg.PatternConfig(logger)
	require.NoError(t, err)
	assert.Equal(t, `/\`, pc.Symbols)

	cfg.Pattern = Pattern{Symbols: "ab", Rules: "aaaaaaaaa" + "bbbbbbbbb"}
	pc, err = cfg.PatternConfig(logger)
	require.NoError(t, err)
	assert.Equal(t, " ", pc.Fill)
	_, err = pattern.New(pc)
	assert.NoError(t, err)

	cfg.Pattern = Pattern{Preset: "hex"}
	_, err = cfg.PatternConfig(logger)
	assert.ErrorIs(t, err, pattern.ErrUnknownPreset)
}

func TestFitTo(t *testing.T) {
	cfg := Default()
	cfg.Margin = Margin{Top: 4, Left: 10}

	fitted := cfg.FitTo(100, 40)
	assert.Equal(t, 80, fitted.Width)
	assert.Equal(t, 30, fitted.Height)
	assert.Equal(t, 80, cfg.Width, "receiver is a copy")
}

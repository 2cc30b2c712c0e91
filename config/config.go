// Package config resolves run settings from defaults, a YAML file, the
// environment and command-line flags, in that order of precedence.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/tenprint/palette"
	"github.com/lixenwraith/tenprint/pattern"
	"github.com/lixenwraith/tenprint/scene"
	"github.com/lixenwraith/tenprint/terminal"
)

// Environment variable names
const (
	EnvSeed    = "TENPRINT_SEED"
	EnvWidth   = "TENPRINT_WIDTH"
	EnvHeight  = "TENPRINT_HEIGHT"
	EnvScene   = "TENPRINT_SCENE"
	EnvPalette = "TENPRINT_PALETTE"
	EnvColor   = "TENPRINT_COLOR"
)

// Config holds everything one run needs
type Config struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Seed   *int64 `yaml:"seed"`

	Scene     string   `yaml:"scene"`
	Palettes  []string `yaml:"palettes"`
	ColorMode string   `yaml:"color"`
	// Shuffle permutes the palette with the maze seed
	Shuffle bool `yaml:"shuffle"`

	Margin Margin `yaml:"margin"`
	// Fit sizes the maze to the terminal minus margins
	Fit bool `yaml:"fit"`

	Pattern Pattern `yaml:"pattern"`
	Timing  Timing  `yaml:"timing"`

	Debug bool `yaml:"debug"`
}

// Margin offsets the maze from the top-left of the drawing area
type Margin struct {
	Top  int `yaml:"top"`
	Left int `yaml:"left"`
}

// Pattern selects a preset or spells out a custom pattern
// Symbols takes precedence over Preset when set.
type Pattern struct {
	Preset  string `yaml:"preset"`
	Symbols string `yaml:"symbols"`
	Fill    string `yaml:"fill"`
	Rules   string `yaml:"rules"`
}

// Timing mirrors scene.Timing; durations are Go duration strings in YAML
type Timing struct {
	Frame     time.Duration `yaml:"frame"`
	Step      time.Duration `yaml:"step"`
	Hold      time.Duration `yaml:"hold"`
	Thickness int           `yaml:"thickness"`
	Rounds    int           `yaml:"rounds"`
	Bounces   int           `yaml:"bounces"`
}

// Default returns a fresh configuration with built-in values
func Default() Config {
	t := scene.DefaultTiming()
	return Config{
		Width:     80,
		Height:    28,
		Scene:     "components",
		Palettes:  []string{"reds", "yellows"},
		ColorMode: "auto",
		Pattern:   Pattern{Preset: "classic"},
		Timing: Timing{
			Frame:     t.Frame,
			Step:      t.Step,
			Hold:      t.Hold,
			Thickness: t.Thickness,
			Rounds:    t.Rounds,
			Bounces:   t.Bounces,
		},
	}
}

// Load reads a YAML file over the defaults
// Unknown keys are rejected; an empty file yields the defaults.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("%w: %w", ErrRead, err)
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return cfg, fmt.Errorf("%w: %s: %w", ErrRead, path, err)
	}
	return cfg, nil
}

// FromEnv applies TENPRINT_* variables to cfg
// Malformed numbers are logged and ignored.
func FromEnv(cfg Config, logger logrus.FieldLogger) Config {
	if logger == nil {
		logger = logrus.StandardLogger()
	}

	if v, ok := os.LookupEnv(EnvSeed); ok && v != "" {
		if seed, err := strconv.ParseInt(v, 10, 64); err == nil {
			cfg.Seed = &seed
		} else {
			logger.WithField("env", EnvSeed).WithError(err).Warn("ignoring malformed value")
		}
	}
	for key, dst := range map[string]*int{EnvWidth: &cfg.Width, EnvHeight: &cfg.Height} {
		v, ok := os.LookupEnv(key)
		if !ok || v == "" {
			continue
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			logger.WithField("env", key).WithError(err).Warn("ignoring malformed value")
			continue
		}
		*dst = n
	}
	if v := os.Getenv(EnvScene); v != "" {
		cfg.Scene = v
	}
	if v := os.Getenv(EnvPalette); v != "" {
		cfg.Palettes = []string{v}
	}
	if v := os.Getenv(EnvColor); v != "" {
		cfg.ColorMode = v
	}
	return cfg
}

// Validate reports every out-of-range or unknown setting at once
func (c Config) Validate() error {
	var errs []error
	bad := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalid}, args...)...))
	}

	if !c.Fit && (c.Width <= 0 || c.Height <= 0) {
		bad("size %dx%d must be positive", c.Width, c.Height)
	}
	if c.Margin.Top < 0 || c.Margin.Left < 0 {
		bad("margin %+v must not be negative", c.Margin)
	}
	if _, err := scene.Lookup(c.Scene); err != nil {
		bad("scene %q (one of %s)", c.Scene, strings.Join(scene.Names(), ", "))
	}
	if len(c.Palettes) == 0 {
		bad("no palette")
	}
	for _, name := range c.Palettes {
		if !palette.Valid(name) {
			bad("palette %q (from %s)", name, strings.Join(palette.Names(), ", "))
		}
	}
	if _, err := terminal.ParseColorMode(c.ColorMode); err != nil {
		bad("color mode %q", c.ColorMode)
	}
	if c.Pattern.Symbols == "" {
		if _, err := pattern.Preset(c.Pattern.Preset); err != nil {
			bad("pattern preset %q (one of %s)", c.Pattern.Preset, strings.Join(pattern.PresetNames(), ", "))
		}
	} else if c.Pattern.Rules == "" {
		bad("pattern symbols %q given without rules", c.Pattern.Symbols)
	}

	t := c.Timing
	if t.Frame < 0 || t.Step < 0 || t.Hold < 0 {
		bad("negative duration in timing")
	}
	if t.Thickness < 1 {
		bad("band thickness %d must be at least 1", t.Thickness)
	}
	if t.Rounds < 0 || t.Bounces < 0 {
		bad("rounds %d and bounces %d must not be negative", t.Rounds, t.Bounces)
	}

	return errors.Join(errs...)
}

// PatternConfig resolves the pattern section into a pattern.Config
func (c Config) PatternConfig(logger logrus.FieldLogger) (pattern.Config, error) {
	if c.Pattern.Symbols != "" {
		fill := c.Pattern.Fill
		if fill == "" {
			fill = " "
		}
		return pattern.Config{
			Symbols: c.Pattern.Symbols,
			Fill:    fill,
			Rules:   c.Pattern.Rules,
			Logger:  logger,
		}, nil
	}

	pc, err := pattern.Preset(c.Pattern.Preset)
	if err != nil {
		return pattern.Config{}, err
	}
	pc.Logger = logger
	return pc, nil
}

// SceneTiming converts the timing section
func (c Config) SceneTiming() scene.Timing {
	return scene.Timing{
		Frame:     c.Timing.Frame,
		Step:      c.Timing.Step,
		Hold:      c.Timing.Hold,
		Thickness: c.Timing.Thickness,
		Rounds:    c.Timing.Rounds,
		Bounces:   c.Timing.Bounces,
	}
}

// SceneLayout converts the margin section
func (c Config) SceneLayout() scene.Layout {
	return scene.Layout{Top: c.Margin.Top, Left: c.Margin.Left}
}

// FitTo sizes the maze to a terminal of width x height cells
// Two rows stay free below the drawing area for the shell prompt.
func (c Config) FitTo(width, height int) Config {
	c.Width = width - 2*c.Margin.Left
	c.Height = height - 2*c.Margin.Top - 2
	return c
}

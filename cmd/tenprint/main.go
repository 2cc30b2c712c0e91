// Command tenprint draws a 10PRINT maze and colors or animates its connected components.
package main

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"os"
	"os/signal"
	"runtime/debug"
	"strings"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"

	"github.com/lixenwraith/tenprint/config"
	"github.com/lixenwraith/tenprint/maze"
	"github.com/lixenwraith/tenprint/palette"
	"github.com/lixenwraith/tenprint/pattern"
	"github.com/lixenwraith/tenprint/scene"
	"github.com/lixenwraith/tenprint/terminal"
)

func main() {
	// Reset attributes and cursor visibility even if drawing panics
	defer func() {
		if r := recover(); r != nil {
			terminal.EmergencyReset(os.Stdout)
			fmt.Fprintf(os.Stderr, "\n\x1b[31mTENPRINT CRASHED: %v\x1b[0m\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()

	if err := run(os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "tenprint: %v\n", err)
		os.Exit(1)
	}
}

// run parses args and draws to out
func run(args []string, out *os.File) error {
	fs := pflag.NewFlagSet("tenprint", pflag.ContinueOnError)
	configPath := fs.StringP("config", "c", "", "YAML configuration file")
	width := fs.IntP("width", "W", 0, "maze width in cells")
	height := fs.IntP("height", "H", 0, "maze height in cells")
	seed := fs.Int64P("seed", "s", 0, "random seed (default: time based)")
	sceneName := fs.String("scene", "", "scene: "+strings.Join(scene.Names(), ", "))
	palettes := fs.StringSliceP("palette", "p", nil, "palette presets, joined with '+' or repeated: "+strings.Join(palette.Names(), ", "))
	colorMode := fs.String("color", "", "color mode: auto, truecolor, 256")
	shuffle := fs.Bool("shuffle", false, "shuffle the palette with the maze seed")
	preset := fs.String("pattern", "", "pattern preset: "+strings.Join(pattern.PresetNames(), ", "))
	marginTop := fs.Int("margin-top", 0, "rows above the maze")
	marginLeft := fs.Int("margin-left", 0, "columns left of the maze")
	fit := fs.Bool("fit", false, "size the maze to the terminal")
	frame := fs.Duration("frame", 0, "column step of band animations")
	hold := fs.Duration("hold", 0, "pause before and after animations")
	debugLog := fs.Bool("debug", false, "write debug log to "+logDir+"/"+logFileName)
	list := fs.Bool("list", false, "list scenes, palettes and patterns, then exit")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return nil
		}
		return err
	}

	if *list {
		fmt.Fprintf(out, "scenes:   %s\n", strings.Join(scene.Names(), " "))
		fmt.Fprintf(out, "palettes: %s\n", strings.Join(palette.Names(), " "))
		fmt.Fprintf(out, "patterns: %s\n", strings.Join(pattern.PresetNames(), " "))
		return nil
	}

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			return err
		}
		cfg = loaded
	}
	cfg = config.FromEnv(cfg, nil)

	// Flags override file and environment only when given
	changed := fs.Changed
	if changed("width") {
		cfg.Width = *width
	}
	if changed("height") {
		cfg.Height = *height
	}
	if changed("seed") {
		cfg.Seed = maze.Seed(*seed)
	}
	if changed("scene") {
		cfg.Scene = *sceneName
	}
	if changed("palette") {
		cfg.Palettes = *palettes
	}
	if changed("color") {
		cfg.ColorMode = *colorMode
	}
	if changed("shuffle") {
		cfg.Shuffle = *shuffle
	}
	if changed("pattern") {
		cfg.Pattern = config.Pattern{Preset: *preset}
	}
	if changed("margin-top") {
		cfg.Margin.Top = *marginTop
	}
	if changed("margin-left") {
		cfg.Margin.Left = *marginLeft
	}
	if changed("fit") {
		cfg.Fit = *fit
	}
	if changed("frame") {
		cfg.Timing.Frame = *frame
	}
	if changed("hold") {
		cfg.Timing.Hold = *hold
	}
	if changed("debug") {
		cfg.Debug = *debugLog
	}

	if logFile := setupLogging(cfg.Debug); logFile != nil {
		defer logFile.Close()
	}
	logger := logrus.StandardLogger()

	if err := cfg.Validate(); err != nil {
		return err
	}

	fd := int(out.Fd())
	tty := terminal.IsTerminal(fd)
	if cfg.Fit {
		w, h, err := terminal.Size(fd)
		if err != nil {
			return fmt.Errorf("--fit: %w", err)
		}
		cfg = cfg.FitTo(w, h)
		if cfg.Width <= 0 || cfg.Height <= 0 {
			return fmt.Errorf("%w: terminal %dx%d leaves no room for the maze", config.ErrInvalid, w, h)
		}
	}
	if scene.Animated(cfg.Scene) && !tty {
		return fmt.Errorf("scene %q animates and needs a terminal on stdout", cfg.Scene)
	}

	mode, err := terminal.ParseColorMode(cfg.ColorMode)
	if err != nil {
		return err
	}

	pc, err := cfg.PatternConfig(logger)
	if err != nil {
		return err
	}
	p, err := pattern.New(pc)
	if err != nil {
		return fmt.Errorf("pattern: %w", err)
	}

	m, err := maze.New(maze.Config{
		Width:   cfg.Width,
		Height:  cfg.Height,
		Seed:    cfg.Seed,
		Pattern: p,
		Logger:  logger,
	})
	if err != nil {
		return fmt.Errorf("maze: %w", err)
	}

	pal, err := palette.Named(mode, cfg.Palettes...)
	if err != nil {
		return err
	}
	if cfg.Shuffle {
		pal = pal.Shuffled(rand.New(rand.NewSource(m.Seed())))
	}

	layout := cfg.SceneLayout()
	screen, err := terminal.NewScreen(out, m.Width()+2*layout.Left, m.Height()+2*layout.Top)
	if err != nil {
		return err
	}

	stage, err := scene.New(scene.Config{
		Maze:    m,
		Screen:  screen,
		Palette: pal,
		Layout:  layout,
		Timing:  cfg.SceneTiming(),
		Logger:  logger,
	})
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	start := time.Now()
	err = stage.Run(ctx, cfg.Scene)
	logger.WithFields(logrus.Fields{
		"seed":    m.Seed(),
		"scene":   cfg.Scene,
		"elapsed": time.Since(start),
	}).Info("done")

	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/lixenwraith/tenprint/maze"
	"github.com/lixenwraith/tenprint/pattern"
)

func main() {
	logrus.SetOutput(io.Discard)
	inspect(bufio.NewReader(os.Stdin), os.Stdout)
}

// inspect prompts for maze parameters until the user declines another round
func inspect(r *bufio.Reader, w io.Writer) {
	for {
		fmt.Fprintln(w, "\n=== 10PRINT MAZE INSPECTOR ===")

		width := getInt(r, w, "Width (default 20): ", 20)
		height := getInt(r, w, "Height (default 10): ", 10)
		seed := getSeed(r, w, "Seed (default: time based): ")
		presetName := getString(r, w, "Pattern ["+strings.Join(pattern.PresetNames(), "/")+"] (default classic): ", "classic")

		pc, err := pattern.Preset(presetName)
		if err != nil {
			fmt.Fprintf(w, "Error: %v\n", err)
			pc = pattern.Classic()
		}
		p, err := pattern.New(pc)
		if err != nil {
			fmt.Fprintf(w, "Error: %v\n", err)
			return
		}

		fmt.Fprintln(w, "\nGenerating...")
		startT := time.Now()
		m, err := maze.New(maze.Config{Width: width, Height: height, Seed: seed, Pattern: p})
		dur := time.Since(startT)
		if err != nil {
			fmt.Fprintf(w, "Error: %v\n", err)
		} else {
			report(w, m, dur)
		}

		fmt.Fprint(w, "\nGenerate another? [Y/n]: ")
		cont, err := r.ReadString('\n')
		if err != nil || strings.ToLower(strings.TrimSpace(cont)) == "n" {
			break
		}
	}
}

// report prints the grid and its connectivity summary
func report(w io.Writer, m *maze.Maze, dur time.Duration) {
	fmt.Fprintf(w, "Done in %v\n", dur)
	fmt.Fprintf(w, "Grid Dimensions: %dx%d\n", m.Width(), m.Height())
	fmt.Fprintf(w, "Seed: %d\n", m.Seed())
	fmt.Fprintf(w, "Components: %d\n", m.ComponentCount())

	if order := m.ComponentsBySize(); len(order) > 0 {
		largest, _ := m.Component(order[0])
		fmt.Fprintf(w, "Largest Component: %d cells (#%d)\n", len(largest), order[0])
	}
	if m.Symmetric() {
		fmt.Fprintln(w, "Relation: symmetric")
	} else {
		fmt.Fprintln(w, "Relation: directed (components depend on scan order)")
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, m.String())
}

// --- Input Helpers ---

func getString(r *bufio.Reader, w io.Writer, prompt, def string) string {
	fmt.Fprint(w, prompt)
	s, _ := r.ReadString('\n')
	s = strings.TrimSpace(s)
	if s == "" {
		return def
	}
	return s
}

func getInt(r *bufio.Reader, w io.Writer, prompt string, def int) int {
	s := getString(r, w, prompt, "")
	if s == "" {
		return def
	}
	v, err := strconv.Atoi(s)
	if err != nil || v <= 0 {
		return def
	}
	return v
}

// getSeed returns nil for an empty or malformed answer, selecting a time based seed
func getSeed(r *bufio.Reader, w io.Writer, prompt string) *int64 {
	s := getString(r, w, prompt, "")
	if s == "" {
		return nil
	}
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return nil
	}
	return maze.Seed(v)
}

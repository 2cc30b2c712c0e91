package terminal

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
)

// ColorMode indicates terminal color capability
type ColorMode uint8

const (
	ColorMode256       ColorMode = iota // xterm-256 palette
	ColorModeTrueColor                  // 24-bit RGB
)

func (m ColorMode) String() string {
	switch m {
	case ColorModeTrueColor:
		return "truecolor"
	default:
		return "256"
	}
}

// ParseColorMode resolves a color mode name; "auto" and "" detect from the environment
func ParseColorMode(s string) (ColorMode, error) {
	switch strings.ToLower(s) {
	case "", "auto":
		return DetectColorMode(), nil
	case "256":
		return ColorMode256, nil
	case "truecolor", "true", "24bit":
		return ColorModeTrueColor, nil
	}
	return ColorMode256, fmt.Errorf("%w: %q", ErrColorMode, s)
}

// Foreground returns the SGR sequence selecting c as foreground color
// Base palette colors use the short 3N form, other palette entries 38;5;N.
// RGB colors use 38;2;R;G;B in true color mode and the nearest palette index otherwise.
func Foreground(c tcell.Color, mode ColorMode) string {
	if !c.Valid() {
		return csiDefaultFg
	}

	if c.IsRGB() {
		r, g, b := c.RGB()
		if mode == ColorModeTrueColor {
			return SGRRGB(uint8(r), uint8(g), uint8(b))
		}
		return SGR256(RGBTo256(uint8(r), uint8(g), uint8(b)))
	}

	index := int(c &^ tcell.ColorValid)
	if index < 8 {
		return SGRBasic(index)
	}
	return SGR256(uint8(index))
}

// Color cube values for 6x6x6 palette (indices 16-231)
// Levels: 0, 95, 135, 175, 215, 255
var cubeValues = [6]uint8{0, 95, 135, 175, 215, 255}

// cubeIndex maps a channel value to the nearest cube level
func cubeIndex(v uint8) uint8 {
	best := 0
	bestDist := abs(int(v) - int(cubeValues[0]))
	for j := 1; j < len(cubeValues); j++ {
		if d := abs(int(v) - int(cubeValues[j])); d < bestDist {
			bestDist = d
			best = j
		}
	}
	return uint8(best)
}

// RGBTo256 finds the nearest 256-color palette index for an RGB value
func RGBTo256(r, g, b uint8) uint8 {
	cr, cg, cb := cubeIndex(r), cubeIndex(g), cubeIndex(b)

	// Check if grayscale is a better match (when r ≈ g ≈ b)
	// Grayscale ramp: 232-255 maps to luminance 8, 18, 28, ..., 238
	gray := (int(r) + int(g) + int(b)) / 3
	maxDiff := max(abs(int(r)-gray), abs(int(g)-gray), abs(int(b)-gray))

	if maxDiff < 10 {
		if gray < 4 {
			return 16
		}
		if gray > 243 {
			return 231
		}
		grayIdx := 232 + (gray-8)/10
		if grayIdx > 255 {
			grayIdx = 255
		}

		grayLevel := 8 + (grayIdx-232)*10
		grayDist := abs(int(r)-grayLevel) + abs(int(g)-grayLevel) + abs(int(b)-grayLevel)
		cubeDist := abs(int(r)-int(cubeValues[cr])) +
			abs(int(g)-int(cubeValues[cg])) +
			abs(int(b)-int(cubeValues[cb]))

		if grayDist < cubeDist {
			return uint8(grayIdx)
		}
	}

	return 16 + 36*cr + 6*cg + cb
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// Package terminal renders onto an ANSI terminal with relative cursor motion.
//
// Features:
//   - Screen: logical cursor tracking over a fixed drawing area
//   - Minimal motion: one vertical then one horizontal relative move per jump
//   - 256-color and true color foreground sequences from tcell colors
//   - Color capability detection from the environment
//
// Only relative cursor motion (CUU/CUD/CUF/CUB) and SGR sequences are emitted.
// There is no absolute positioning, no alternate screen and no reading from
// the terminal, so drawing happens in place below the shell prompt and the
// logical cursor must always match the real one.
package terminal

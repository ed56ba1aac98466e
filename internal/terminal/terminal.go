// Package terminal inspects the output terminal: its width and whether
// colored output is appropriate.
package terminal

import (
	"os"
	"strconv"

	"golang.org/x/term"

	"github.com/username/cal/internal/config"
)

const (
	DefaultWidth = 80
	// MaxColumns is the number of months per row on a wide terminal
	MaxColumns = 3
)

// Width returns the width of the terminal attached to f, falling back to
// the COLUMNS environment variable and then DefaultWidth.
func Width(f *os.File) int {
	if f != nil {
		if w, _, err := term.GetSize(int(f.Fd())); err == nil && w > 0 {
			return w
		}
	}
	if cols := os.Getenv("COLUMNS"); cols != "" {
		if w, err := strconv.Atoi(cols); err == nil && w > 0 {
			return w
		}
	}
	return DefaultWidth
}

// Columns returns how many month blocks of blockWidth fit in width.
// Terminals at least DefaultWidth wide get MaxColumns.
func Columns(width, blockWidth int) int {
	if width >= DefaultWidth {
		return MaxColumns
	}
	if n := width / blockWidth; n > 1 {
		return n
	}
	return 1
}

// IsTerminal reports whether f is attached to a terminal
func IsTerminal(f *os.File) bool {
	return f != nil && term.IsTerminal(int(f.Fd()))
}

// UseColor resolves a color mode against the output and NO_COLOR
func UseColor(mode string, f *os.File) bool {
	switch mode {
	case config.ColorAlways:
		return true
	case config.ColorNever:
		return false
	}
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	return IsTerminal(f)
}

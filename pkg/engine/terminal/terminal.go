// Package terminal probes the attached terminal.
package terminal

import (
	"os"

	"golang.org/x/term"
)

const (
	DefaultWidth  = 80
	DefaultHeight = 24
)

// GetSize returns the current terminal width and height.
// Falls back to defaults if stdout is not a terminal.
func GetSize() (width, height int) {
	width, height, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 || height <= 0 {
		return DefaultWidth, DefaultHeight
	}
	return width, height
}

// GetWidth returns the current terminal width.
func GetWidth() int {
	width, _ := GetSize()
	return width
}

// CellScale returns how many characters each map cell can use so that a row
// of cols cells plus margin fits in width: 2 when doubled cells fit, else 1.
func CellScale(cols, margin, width int) int {
	if margin+cols*2 <= width {
		return 2
	}
	return 1
}

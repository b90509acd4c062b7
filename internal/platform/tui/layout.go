package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// FitBlockSize returns the smallest block size whose character grid for a
// canvasW x canvasH canvas fits a cols x rows terminal. The HUD is drawn
// over the grid's top and bottom rows, so it needs no extra room.
func FitBlockSize(canvasW, canvasH, cols, rows int) int {
	if cols <= 0 || rows <= 0 {
		return max(canvasW, canvasH, 1)
	}
	return max(ceilDiv(canvasW, cols), ceilDiv(canvasH, rows), 1)
}

func ceilDiv(a, b int) int {
	return (a + b - 1) / b
}

// centerText centers text within the given width.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}

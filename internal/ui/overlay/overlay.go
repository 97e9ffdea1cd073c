// Package overlay draws one block of styled text on top of another.
package overlay

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// Place draws layer over base with its top-left corner at column x, row y.
// Every cell the layer covers replaces the base cell, spaces included.
// Base lines shorter than x are padded. Parts of the layer that fall
// outside base (below the last line, left of column 0 or right of width)
// are clipped. Escape sequences in both inputs are preserved.
func Place(base, layer string, x, y, width int) string {
	if layer == "" || width <= 0 {
		return base
	}
	baseLines := strings.Split(base, "\n")
	for i, line := range strings.Split(layer, "\n") {
		row := y + i
		if row < 0 || row >= len(baseLines) {
			continue
		}
		baseLines[row] = placeLine(baseLines[row], line, x, width)
	}
	return strings.Join(baseLines, "\n")
}

func placeLine(base, layer string, x, width int) string {
	lw := ansi.StringWidth(layer)
	if x < 0 {
		layer = ansi.Cut(layer, -x, lw)
		lw += x
		x = 0
	}
	if x >= width || lw <= 0 {
		return base
	}
	if x+lw > width {
		layer = ansi.Truncate(layer, width-x, "")
		lw = width - x
	}

	if bw := ansi.StringWidth(base); bw < x+lw {
		base += strings.Repeat(" ", x+lw-bw)
	}
	bw := ansi.StringWidth(base)

	var b strings.Builder
	b.WriteString(ansi.Cut(base, 0, x))
	b.WriteString(layer)
	if x+lw < bw {
		b.WriteString(ansi.Cut(base, x+lw, bw))
	}
	return b.String()
}

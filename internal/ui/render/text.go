// Package render fits text into fixed-width terminal cells.
package render

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// Ellipsis marks text cut to fit a cell.
const Ellipsis = "…"

// Align is the horizontal placement of text inside a cell.
type Align int

const (
	AlignLeft Align = iota
	AlignRight
)

// Sanitize makes s safe to print on a single terminal line. Line breaks,
// tabs and non-breaking spaces become spaces; other control characters and
// invalid UTF-8 bytes are dropped.
func Sanitize(s string) string {
	if !needsSanitize(s) {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		i += size
		switch {
		case r == utf8.RuneError && size <= 1:
		case r == '\n' || r == '\r' || r == '\t' || r == '\u00a0':
			b.WriteByte(' ')
		case unicode.IsControl(r):
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

func needsSanitize(s string) bool {
	for i := range len(s) {
		c := s[i]
		if c < 0x20 || c == 0x7f {
			return true
		}
		if c >= 0x80 && c <= 0x9f { // C1 controls or stray continuation bytes
			return true
		}
		if c == 0xc2 && i+1 < len(s) && s[i+1] == 0xa0 {
			return true
		}
	}
	return !utf8.ValidString(s)
}

// Width is the display width of s once sanitized.
func Width(s string) int {
	return runewidth.StringWidth(Sanitize(s))
}

// Truncate cuts s to at most width cells, ending in an ellipsis when
// anything was removed.
func Truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	return runewidth.Truncate(Sanitize(s), width, Ellipsis)
}

// Pad fills s with trailing spaces up to width cells.
func Pad(s string, width int) string {
	return runewidth.FillRight(s, width)
}

// Cell renders s in exactly width cells.
func Cell(s string, width int, align Align) string {
	if width <= 0 {
		return ""
	}
	t := Truncate(s, width)
	if align == AlignRight {
		return runewidth.FillLeft(t, width)
	}
	return runewidth.FillRight(t, width)
}

// Row places left and right at the two ends of a line width cells wide.
// Styled input is measured without its escape codes. At least one space
// separates the two sides.
func Row(left, right string, width int) string {
	gap := max(width-lipgloss.Width(left)-lipgloss.Width(right), 1)
	return left + strings.Repeat(" ", gap) + right
}

// Blank is a line of width spaces.
func Blank(width int) string {
	if width <= 0 {
		return ""
	}
	return strings.Repeat(" ", width)
}

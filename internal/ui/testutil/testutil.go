// Package testutil provides helpers for testing rendered views and
// feeding input to Bubble Tea models.
package testutil

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// StripANSI removes every escape sequence from s, including zone markers
// and cursor controls, leaving only printable text.
func StripANSI(s string) string {
	return ansi.Strip(s)
}

// MeasureWidth returns the display width of s without its escape codes.
func MeasureWidth(s string) int {
	return lipgloss.Width(StripANSI(s))
}

// PlainLines strips s and splits it into lines.
func PlainLines(s string) []string {
	return strings.Split(StripANSI(s), "\n")
}

// ContainsLine reports whether any stripped line of output contains substr.
func ContainsLine(output, substr string) bool {
	return FindLine(output, substr) != ""
}

// FindLine returns the first stripped line containing substr, or "".
func FindLine(output, substr string) string {
	for _, line := range PlainLines(output) {
		if strings.Contains(line, substr) {
			return line
		}
	}
	return ""
}

// Slice returns the display cells [start, end) of a stripped line.
func Slice(line string, start, end int) string {
	return ansi.Cut(StripANSI(line), start, end)
}

// specialKeys maps key names to their tea key types.
var specialKeys = map[string]tea.KeyType{
	"left":   tea.KeyLeft,
	"right":  tea.KeyRight,
	"up":     tea.KeyUp,
	"down":   tea.KeyDown,
	"home":   tea.KeyHome,
	"end":    tea.KeyEnd,
	"pgup":   tea.KeyPgUp,
	"pgdown": tea.KeyPgDown,
	"enter":  tea.KeyEnter,
	"esc":    tea.KeyEsc,
	"tab":    tea.KeyTab,
	"ctrl+c": tea.KeyCtrlC,
	"ctrl+d": tea.KeyCtrlD,
	"ctrl+u": tea.KeyCtrlU,
}

// Key builds the KeyMsg whose String() is name.
func Key(name string) tea.KeyMsg {
	if t, ok := specialKeys[name]; ok {
		return tea.KeyMsg{Type: t}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(name)}
}

// Press, Motion and Release build left-button mouse events at (x, y).
func Press(x, y int) tea.MouseMsg {
	return mouse(x, y, tea.MouseActionPress, tea.MouseButtonLeft)
}

func Motion(x, y int) tea.MouseMsg {
	return mouse(x, y, tea.MouseActionMotion, tea.MouseButtonLeft)
}

func Release(x, y int) tea.MouseMsg {
	return mouse(x, y, tea.MouseActionRelease, tea.MouseButtonNone)
}

// Wheel builds a wheel event; positive steps scroll down.
func Wheel(x, y, steps int) tea.MouseMsg {
	button := tea.MouseButtonWheelDown
	if steps < 0 {
		button = tea.MouseButtonWheelUp
	}
	return mouse(x, y, tea.MouseActionPress, button)
}

func mouse(x, y int, action tea.MouseAction, button tea.MouseButton) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: action, Button: button}
}

package testutil

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestStripANSI(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"no ansi codes", "hello world", "hello world"},
		{"with color codes", "\x1b[31mred\x1b[0m text", "red text"},
		{"with multiple codes", "\x1b[1;32mbold green\x1b[0m", "bold green"},
		{"zone markers", "\x1b[1000z< Prev\x1b[1001z", "< Prev"},
		{"empty string", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := StripANSI(tt.input); got != tt.want {
				t.Errorf("StripANSI(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestFindLine(t *testing.T) {
	out := "first\n\x1b[1mName\x1b[0m | Q1\nlast"
	if got := FindLine(out, "Q1"); got != "Name | Q1" {
		t.Errorf("FindLine() = %q", got)
	}
	if got := FindLine(out, "missing"); got != "" {
		t.Errorf("FindLine(missing) = %q, want empty", got)
	}
	if !ContainsLine(out, "last") {
		t.Error("ContainsLine(last) = false")
	}
}

func TestSlice(t *testing.T) {
	if got := Slice("\x1b[31mabcdef\x1b[0m", 2, 4); got != "cd" {
		t.Errorf("Slice() = %q, want cd", got)
	}
}

func TestMeasureWidth(t *testing.T) {
	if got := MeasureWidth("\x1b[31m東京\x1b[0m"); got != 4 {
		t.Errorf("MeasureWidth() = %d, want 4", got)
	}
}

func TestKey(t *testing.T) {
	for _, name := range []string{"l", "h", "G", "left", "home", "end", "ctrl+c", "pgdown"} {
		if got := Key(name).String(); got != name {
			t.Errorf("Key(%q).String() = %q", name, got)
		}
	}
}

func TestMouse(t *testing.T) {
	p := Press(3, 4)
	if p.X != 3 || p.Y != 4 || p.Action != tea.MouseActionPress || p.Button != tea.MouseButtonLeft {
		t.Errorf("Press() = %+v", p)
	}
	if m := Motion(5, 4); m.Action != tea.MouseActionMotion {
		t.Errorf("Motion() action = %v", m.Action)
	}
	if r := Release(5, 4); r.Action != tea.MouseActionRelease {
		t.Errorf("Release() action = %v", r.Action)
	}
	if w := Wheel(0, 0, -1); w.Button != tea.MouseButtonWheelUp {
		t.Errorf("Wheel(-1) button = %v", w.Button)
	}
}

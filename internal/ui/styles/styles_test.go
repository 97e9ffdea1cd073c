package styles

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/lucasb-eyer/go-colorful"
)

func TestGradient_KeepsText(t *testing.T) {
	tests := []string{"", "x", "tablewizard", "東京 ✓"}
	for _, text := range tests {
		got := ansi.Strip(Gradient(text, T().Primary, T().Secondary))
		if got != text {
			t.Errorf("Gradient(%q) stripped = %q", text, got)
		}
	}
}

func TestBlend_Endpoints(t *testing.T) {
	from, to := lipgloss.Color("#000000"), lipgloss.Color("#ffffff")
	colors := Blend(5, from, to)
	if len(colors) != 5 {
		t.Fatalf("len = %d, want 5", len(colors))
	}
	if got := hex(colors[0]); got != "#000000" {
		t.Errorf("first = %s, want #000000", got)
	}
	if got := hex(colors[4]); got != "#ffffff" {
		t.Errorf("last = %s, want #ffffff", got)
	}
}

func TestBlend_Degenerate(t *testing.T) {
	if got := Blend(0, "#000000", "#ffffff"); got != nil {
		t.Errorf("Blend(0) = %v, want nil", got)
	}
	one := Blend(1, "#ff0000", "#0000ff")
	if len(one) != 1 || hex(one[0]) != "#ff0000" {
		t.Errorf("Blend(1) = %v, want [#ff0000]", one)
	}
}

func TestParse_NonHexFallsBackToGray(t *testing.T) {
	if got := parse(lipgloss.Color("240")); got != fallbackGray {
		t.Errorf("parse(240) = %v, want %v", got, fallbackGray)
	}
	want, _ := colorful.Hex("#a78bfa")
	if got := parse(T().Primary); got != want {
		t.Errorf("parse(primary) = %v, want %v", got, want)
	}
}

func TestTheme_StylesCached(t *testing.T) {
	if T().S() != T().S() {
		t.Error("S() rebuilt the styles")
	}
}

// Package styles holds the color theme and text effects of the UI.
package styles

import (
	"image/color"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/rivo/uniseg"
)

// fallbackGray stands in for colors that are not #rrggbb hex values.
var fallbackGray = colorful.Color{R: 0.5, G: 0.5, B: 0.5}

// Gradient renders text bold, blending its foreground from one color to
// another across its grapheme clusters.
func Gradient(text string, from, to lipgloss.Color) string {
	var clusters []string
	gr := uniseg.NewGraphemes(text)
	for gr.Next() {
		clusters = append(clusters, gr.Str())
	}

	switch len(clusters) {
	case 0:
		return ""
	case 1:
		return lipgloss.NewStyle().Foreground(from).Bold(true).Render(text)
	}

	var b strings.Builder
	for i, c := range Blend(len(clusters), from, to) {
		style := lipgloss.NewStyle().Foreground(lipgloss.Color(hex(c))).Bold(true)
		b.WriteString(style.Render(clusters[i]))
	}
	return b.String()
}

// Blend returns n colors going from one color to another in HCL space.
func Blend(n int, from, to lipgloss.Color) []color.Color {
	if n <= 0 {
		return nil
	}
	c1, c2 := parse(from), parse(to)
	if n == 1 {
		return []color.Color{c1}
	}
	out := make([]color.Color, n)
	for i := range n {
		out[i] = c1.BlendHcl(c2, float64(i)/float64(n-1)).Clamped()
	}
	return out
}

func parse(c lipgloss.Color) colorful.Color {
	col, err := colorful.Hex(string(c))
	if err != nil {
		return fallbackGray
	}
	return col
}

func hex(c color.Color) string {
	if cf, ok := c.(colorful.Color); ok {
		return cf.Hex()
	}
	cf, _ := colorful.MakeColor(c)
	return cf.Hex()
}

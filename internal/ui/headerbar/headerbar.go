// Package headerbar renders the status line above the table.
package headerbar

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/llehouerou/tablewizard/internal/breakpoint"
	"github.com/llehouerou/tablewizard/internal/ui"
	"github.com/llehouerou/tablewizard/internal/ui/render"
	"github.com/llehouerou/tablewizard/internal/ui/styles"
)

// Title is shown at the left of the bar.
const Title = "tablewizard"

// Info is what the bar reports about the table.
type Info struct {
	Source string // data file path

	Rows   int
	Cursor int // selected row, 0-based

	Enabled bool // a column window is active
	First   int  // first visible scrollable column, 0-based
	Last    int  // one past the last visible scrollable column
	Columns int  // total columns

	Rule           breakpoint.Rule
	ContainerWidth int
}

// Render returns the header bar string for the given width.
func Render(info Info, width int) string {
	if width < ui.MinTermWidth {
		return ""
	}
	t := styles.T()
	s := t.S()
	separator := s.Subtle.Render(" │ ")

	left := styles.Gradient(Title, t.Primary, t.Secondary)
	if info.Source != "" {
		left += separator + s.Muted.Render(filepath.Base(info.Source))
	}

	right := []string{
		lipgloss.NewStyle().Foreground(t.Secondary).Render(windowText(info)),
		s.Muted.Render(ruleText(info)),
		s.Base.Render(rowText(info)),
	}
	line := render.Row(left, strings.Join(right, separator), width)
	if lipgloss.Width(line) > width {
		// Too narrow for everything: keep the window range only.
		line = render.Row(left, right[0], width)
	}
	return line
}

func windowText(info Info) string {
	if !info.Enabled {
		return fmt.Sprintf("all %d columns", info.Columns)
	}
	return fmt.Sprintf("columns %d-%d of %d", info.First+1, info.Last, info.Columns)
}

func ruleText(info Info) string {
	if info.Rule.IsScalar() {
		return "fixed window"
	}
	if k, ok := info.Rule.Threshold(info.ContainerWidth); ok {
		return fmt.Sprintf("width %d <= %d", info.ContainerWidth, k)
	}
	return fmt.Sprintf("width %d", info.ContainerWidth)
}

func rowText(info Info) string {
	if info.Rows == 0 {
		return "no rows"
	}
	return fmt.Sprintf("row %s/%s", humanize.Comma(int64(info.Cursor+1)), humanize.Comma(int64(info.Rows)))
}

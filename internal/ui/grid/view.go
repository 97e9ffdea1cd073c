package grid

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/x/ansi"
	zone "github.com/lrstanley/bubblezone"

	"github.com/llehouerou/tablewizard/internal/colwindow"
	"github.com/llehouerou/tablewizard/internal/dataset"
	"github.com/llehouerou/tablewizard/internal/ui"
	"github.com/llehouerou/tablewizard/internal/ui/overlay"
	"github.com/llehouerou/tablewizard/internal/ui/render"
	"github.com/llehouerou/tablewizard/internal/ui/styles"
)

// maxIntrinsic caps a column's natural width while the window is disabled.
const maxIntrinsic = 24

// View renders the nav bar, when shown, followed by the table.
func (m Model) View() string {
	if !m.started || m.Width() == 0 || m.Height() == 0 {
		return ""
	}
	var parts []string
	if m.NavVisible() {
		parts = append(parts, m.renderNav())
	}
	if body := m.renderTable(); body != "" {
		parts = append(parts, body)
	}
	return strings.Join(parts, "\n")
}

func (m Model) renderNav() string {
	s := styles.T().S()
	nav := m.surf.navCells()
	labels := m.engine.Config().Labels

	prev := zone.Mark(m.prevZone(), navButton(labels.Prev, m.surf.buttons.PrevEnabled))
	next := zone.Mark(m.nextZone(), navButton(labels.Next, m.surf.buttons.NextEnabled))

	first, last := m.Range()
	info := s.Muted.Render(fmt.Sprintf("%d-%d of %d", first+1, last, m.engine.Config().TotalColumns))

	gap := nav - ansi.StringWidth(prev) - ansi.StringWidth(next)
	var content string
	if iw := ansi.StringWidth(info); gap >= iw+2 {
		left := (gap - iw) / 2
		content = prev + render.Blank(left) + info + render.Blank(gap-iw-left) + next
	} else {
		content = render.Row(prev, next, nav)
	}
	content = ansi.Truncate(content, nav, "")

	return render.Blank(m.surf.navLeft()) + content
}

func navButton(label string, enabled bool) string {
	s := styles.T().S()
	if enabled {
		return s.NavActive.Render(label)
	}
	return s.NavBlocked.Render(label)
}

func (m Model) renderTable() string {
	height := m.tableHeight()
	if height == 0 {
		return ""
	}
	start, end := m.cursor.VisibleLines(m.rows(), height)
	lines := make([]string, 0, height)
	for line := start; line < end; line++ {
		if m.surf.applied {
			lines = append(lines, m.windowedLine(line))
		} else {
			lines = append(lines, m.intrinsicLine(line))
		}
	}
	for len(lines) < height {
		lines = append(lines, "")
	}
	block := m.placeMirror(strings.Join(lines, "\n"), start)
	return zone.Mark(m.tableZone(), block)
}

// windowedLine renders content line n with pinned columns sized from the
// applied geometry and the scrollable strip cut at the current transform.
func (m Model) windowedLine(n int) string {
	cfg := m.engine.Config()
	width := m.surf.containerCells()
	cw := m.surf.columnCells()

	var pinned, strip strings.Builder
	for c := range cfg.SplitIndex {
		pinned.WriteString(m.cell(n, c, cw))
	}
	for c := cfg.SplitIndex; c < cfg.TotalColumns; c++ {
		strip.WriteString(m.cell(n, c, cw))
	}

	pinnedW := min(cfg.SplitIndex*cw, width)
	stripW := min((m.surf.geometry.Visible+m.surf.trailing)*cw, width-pinnedW)
	shift := shiftCells(m.surf.anim.Value(colwindow.TargetColumns), cw)
	return m.paint(n,
		ansi.Truncate(pinned.String(), pinnedW, ""),
		window(strip.String(), shift, stripW))
}

// intrinsicLine renders content line n at natural column widths, clipped
// to the container.
func (m Model) intrinsicLine(n int) string {
	split := m.engine.Config().SplitIndex
	width := m.surf.containerCells()

	var pinned, rest strings.Builder
	pinnedW := 0
	for c, w := range m.intrinsic {
		if c < split {
			pinned.WriteString(m.cell(n, c, w))
			pinnedW += w
		} else {
			rest.WriteString(m.cell(n, c, w))
		}
	}
	pinnedW = min(pinnedW, width)
	return m.paint(n,
		ansi.Truncate(pinned.String(), pinnedW, ""),
		ansi.Truncate(rest.String(), width-pinnedW, ""))
}

// cell renders column c of content line n in w cells, the last ColumnGap
// of them blank.
func (m Model) cell(n, c, w int) string {
	if w <= 0 {
		return ""
	}
	inner := w
	if w > ui.ColumnGap {
		inner = w - ui.ColumnGap
	}
	var text string
	align := render.AlignLeft
	if n < ui.HeaderLines {
		text = m.table.Header(c)
	} else {
		text = m.table.Cell(n-ui.HeaderLines, c)
		if m.table.IsNumeric(c) {
			align = render.AlignRight
		}
	}
	return render.Cell(text, inner, align) + render.Blank(w-inner)
}

func (m Model) paint(n int, pinned, rest string) string {
	s := styles.T().S()
	indent := render.Blank(m.surf.margin)
	switch {
	case n < ui.HeaderLines:
		return indent + s.Header.Render(pinned+rest)
	case n-ui.HeaderLines == m.cursor.Pos():
		return indent + s.Cursor.Render(pinned+rest)
	default:
		return indent + s.Pinned.Render(pinned) + s.Base.Render(rest)
	}
}

// placeMirror draws the mirrored headers over block. Relative mirrors sit
// on the header line and are only drawn while it is on screen; fixed
// mirrors sit on the first visible line at the offset the engine measured.
func (m Model) placeMirror(block string, start int) string {
	if !m.surf.mirrorShown || !m.surf.applied || len(m.surf.headers) == 0 {
		return block
	}
	w := m.surf.mirrorWidth
	var x, width int
	if w.Unit == colwindow.UnitCells {
		width = int(w.Width)
		x = m.surf.width - int(w.Right) - width
	} else {
		if start != 0 {
			return block
		}
		width = m.surf.navCells()
		x = m.surf.navLeft()
	}
	layer := m.renderMirror(width)
	if layer == "" {
		return block
	}
	return overlay.Place(block, layer, x, 0, m.surf.width)
}

// renderMirror draws the mirrored headers at the table's column width so
// that each one sits over its column.
func (m Model) renderMirror(width int) string {
	elem := m.surf.columnCells()
	if elem <= 0 {
		return ""
	}
	var b strings.Builder
	for _, h := range m.surf.headers {
		in := elem
		if elem > ui.ColumnGap {
			in = elem - ui.ColumnGap
		}
		b.WriteString(render.Cell(h, in, render.AlignLeft) + render.Blank(elem-in))
	}
	shift := shiftCells(m.surf.anim.Value(colwindow.TargetMirror), elem)
	return styles.T().S().Mirror.Render(window(b.String(), shift, width))
}

// shiftCells converts a transform in percent of one column into the
// number of cells the strip moves left.
func shiftCells(offsetPercent float64, columnCells int) int {
	return int(math.Round(-offsetPercent / 100 * float64(columnCells)))
}

// window returns width cells of strip starting at shift. A negative shift
// leaves blank cells on the left, as when a drag pulls past the first
// column.
func window(strip string, shift, width int) string {
	if width <= 0 {
		return ""
	}
	var out string
	if shift < 0 {
		lead := min(-shift, width)
		out = render.Blank(lead) + ansi.Cut(strip, 0, width-lead)
	} else {
		out = ansi.Cut(strip, shift, shift+width)
	}
	return render.Pad(out, width)
}

// intrinsicWidths sizes each column to its widest cell plus the gap,
// capped at maxIntrinsic.
func intrinsicWidths(t *dataset.Table, columns int) []int {
	widths := make([]int, columns)
	for c := range columns {
		w := render.Width(t.Header(c))
		for r := range t.Rows {
			w = max(w, render.Width(t.Cell(r, c)))
		}
		widths[c] = max(min(w, maxIntrinsic), 1) + ui.ColumnGap
	}
	return widths
}

// Package layout provides pure functions for UI dimension calculations.
package layout

import "math"

// StatusBarHeight is the height of the status bar above the table.
const StatusBarHeight = 1

// NavBarHeight is the height of the prev/next navigation bar.
const NavBarHeight = 1

// HelpBarHeight is the height of the key help footer.
const HelpBarHeight = 1

// ErrorLineHeight is the height of the error line when an error is shown.
const ErrorLineHeight = 1

// Geometry holds every percentage derived from the current window size.
// All values are relative to the container width except MirrorInner,
// which is relative to the mirror wrapper, and MirrorElement, which is
// relative to the mirror inner wrapper.
type Geometry struct {
	Visible       int
	Column        float64 // width of one column
	NavWrapper    float64 // visible * Column
	Table         float64 // totalColumns * Column
	MirrorWrapper float64 // same as NavWrapper, anchored to the right edge
	MirrorInner   float64 // 100 * totalScrollable / visible
	MirrorElement float64 // 100 / totalScrollable
}

// ColumnWidthPercent returns the width of one column so that the visible
// scrollable columns plus every non-scrollable column fill the container.
func ColumnWidthPercent(visible, totalColumns, totalScrollable int) float64 {
	return 100 / float64(visible+(totalColumns-totalScrollable))
}

// StickyElementWidthPercent returns the width of one mirrored header
// element relative to the mirror inner wrapper.
func StickyElementWidthPercent(totalScrollable int) float64 {
	return 100 / float64(totalScrollable)
}

// Compute returns the geometry for the given window size. ok is false when
// the inputs do not describe a usable window (nothing visible, no
// scrollable columns, or a non-finite result).
func Compute(visible, totalColumns, totalScrollable int) (g Geometry, ok bool) {
	if visible <= 0 || totalScrollable <= 0 {
		return Geometry{}, false
	}
	col := ColumnWidthPercent(visible, totalColumns, totalScrollable)
	if !finite(col) || col <= 0 {
		return Geometry{}, false
	}
	g = Geometry{
		Visible:       visible,
		Column:        col,
		NavWrapper:    float64(visible) * col,
		Table:         float64(totalColumns) * col,
		MirrorWrapper: float64(visible) * col,
		MirrorInner:   100 * float64(totalScrollable) / float64(visible),
		MirrorElement: StickyElementWidthPercent(totalScrollable),
	}
	return g, true
}

// cellEpsilon absorbs float error so that 100/3 % of 78 is 26 cells.
const cellEpsilon = 1e-9

// Cells converts a percentage of width into whole cells, rounding down.
func Cells(percent float64, width int) int {
	if width <= 0 || percent <= 0 || !finite(percent) {
		return 0
	}
	return int(math.Floor(percent*float64(width)/100 + cellEpsilon))
}

func finite(f float64) bool {
	return !math.IsInf(f, 0) && !math.IsNaN(f)
}

// ContentOpts contains the parameters needed to calculate table height.
type ContentOpts struct {
	HelpLines    int // lines taken by the help footer, HelpBarHeight if 0
	ErrorVisible bool
}

// ContentHeight calculates the available height for the table area,
// nav bar included. This is the terminal height minus the status bar, the
// help footer and the error line.
func ContentHeight(windowHeight int, opts ContentOpts) int {
	help := opts.HelpLines
	if help <= 0 {
		help = HelpBarHeight
	}
	height := windowHeight - StatusBarHeight - help
	if opts.ErrorVisible {
		height -= ErrorLineHeight
	}
	return max(height, 0)
}

// ContainerWidth returns the table width once the horizontal margins on
// both sides are removed.
func ContainerWidth(windowWidth, margin int) int {
	return max(windowWidth-2*max(margin, 0), 0)
}

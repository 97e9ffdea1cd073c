package colwindow

import (
	"time"

	"github.com/llehouerou/tablewizard/internal/ui/layout"
)

// Target identifies a set of elements that moves as one.
type Target int

const (
	// TargetColumns is the primary scrollable column set.
	TargetColumns Target = iota
	// TargetMirror is the mirrored header layer.
	TargetMirror
)

func (t Target) String() string {
	switch t {
	case TargetColumns:
		return "columns"
	case TargetMirror:
		return "mirror"
	default:
		return "unknown"
	}
}

// Measurer reports the current width of the container holding the table.
type Measurer interface {
	ContainerWidth() float64
}

// ColumnMeasurer is an optional Measurer extension for surfaces that draw
// columns in whole units. ColumnWidth returns the drawn width of one
// column, in container units, or 0 when unknown. Drags use it so the
// window follows the pointer exactly.
type ColumnMeasurer interface {
	ColumnWidth() float64
}

// Transformer moves a target horizontally. Offsets are percentages of one
// column width: -100 shifts the target left by exactly one column.
// A new transform must replace any animation still in flight.
type Transformer interface {
	SetTransform(t Target, offsetPercent float64)
	AnimateTransform(t Target, offsetPercent float64, d time.Duration)
}

// Layout sizes the nav controls, the table, its columns and the overflow
// wrapper.
type Layout interface {
	// Apply sizes everything from g, shows the nav controls and clips
	// overflow.
	Apply(g layout.Geometry)
	// Reset returns to intrinsic sizing, hides the nav controls and stops
	// clipping.
	Reset()
}

// WidthUnit says how a MirrorWidth should be interpreted.
type WidthUnit int

const (
	// UnitPercent is a percentage of the parent, used while the mirror
	// flows with the table.
	UnitPercent WidthUnit = iota
	// UnitCells is an absolute size, used while the mirror is fixed to the
	// viewport.
	UnitCells
)

// MirrorWidth is the size and right-edge offset of the mirror wrapper.
// Inner is the inner wrapper width as a percentage of the wrapper and
// Element the width of one mirrored header as a percentage of the inner
// wrapper; both only change on Refresh.
type MirrorWidth struct {
	Unit    WidthUnit
	Width   float64
	Right   float64
	Inner   float64
	Element float64
}

// Mirror is the mirrored header layer. It is only required when the
// mirror is enabled.
type Mirror interface {
	// Attach creates one mirror element per header and returns how many
	// were created.
	Attach(headers []string) int
	SetWidth(w MirrorWidth)
	Show()
	Hide()
	// NotifyGeometryChanged asks the sticky engine to drop cached
	// measurements.
	NotifyGeometryChanged()
}

// Probe measures absolute positions needed while the mirror is fixed.
type Probe interface {
	// NavBounds returns the left edge and width of the nav controls, in
	// viewport cells.
	NavBounds() (left, width float64)
	ViewportWidth() float64
}

// GestureBinder installs and removes drag listeners as a unit.
type GestureBinder interface {
	BindGestures()
	UnbindGestures()
}

// Observer receives state notifications.
type Observer interface {
	ButtonsChanged(b ButtonState)
	PositionChanged(position int)
	VisibleCountChanged(visible int)
}

// Collaborators are the render targets and services an Engine drives.
// Measurer, Transformer and Layout are required; Probe is required when
// the mirror is enabled. Everything else may be nil.
type Collaborators struct {
	Measurer    Measurer
	Transformer Transformer
	Layout      Layout
	Mirror      Mirror
	Probe       Probe
	Gestures    GestureBinder
	Observer    Observer
}

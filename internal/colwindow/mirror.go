package colwindow

import (
	"math"

	"github.com/llehouerou/tablewizard/internal/ui/layout"
)

// StickyEvent is a state change reported by the sticky positioning
// engine that pins the mirror to the viewport.
type StickyEvent int

const (
	// Stick: the mirror became fixed to the viewport.
	Stick StickyEvent = iota
	// Unstick: the mirror returned to its place above the table.
	Unstick
	// Bottom: the table end was reached and the mirror is parked at the
	// bottom of its parent.
	Bottom
	// Unbottom: the mirror left the bottom of its parent and is fixed
	// again.
	Unbottom
)

// Fixed reports whether the mirror is fixed to the viewport after e.
func (ev StickyEvent) Fixed() bool {
	return ev == Stick || ev == Unbottom
}

func (ev StickyEvent) String() string {
	switch ev {
	case Stick:
		return "stick"
	case Unstick:
		return "unstick"
	case Bottom:
		return "bottom"
	case Unbottom:
		return "unbottom"
	default:
		return "unknown"
	}
}

// mirrorSync keeps the mirror layer sized like the primary columns. It
// never holds a position: offsets come from Engine.applyOffset.
type mirrorSync struct {
	engine   *Engine
	mirror   Mirror
	probe    Probe
	elements int
	fixed    bool

	// Measured by refresh.
	percentWidth float64
	cellWidth    float64
	cellRight    float64
	inner        float64
	element      float64
}

func newMirrorSync(e *Engine, m Mirror, p Probe) *mirrorSync {
	s := &mirrorSync{engine: e, mirror: m, probe: p}
	s.elements = m.Attach(e.cfg.Headers)
	return s
}

func (s *mirrorSync) show(g layout.Geometry) {
	s.percentWidth = g.MirrorWrapper
	s.inner = g.MirrorInner
	s.element = g.MirrorElement
	s.mirror.Show()
	// Layout.Apply has already run, so the probe measures the new layout.
	s.measure()
	s.mirror.SetWidth(s.current())
}

func (s *mirrorSync) hide() {
	s.mirror.Hide()
}

func (s *mirrorSync) relativeWidth() MirrorWidth {
	return MirrorWidth{
		Unit:    UnitPercent,
		Width:   s.percentWidth,
		Right:   0,
		Inner:   s.inner,
		Element: s.element,
	}
}

func (s *mirrorSync) fixedWidth() MirrorWidth {
	return MirrorWidth{
		Unit:    UnitCells,
		Width:   s.cellWidth,
		Right:   s.cellRight,
		Inner:   s.inner,
		Element: s.element,
	}
}

func (s *mirrorSync) current() MirrorWidth {
	if s.fixed {
		return s.fixedWidth()
	}
	return s.relativeWidth()
}

// refresh re-measures the wrapper in both units, re-applies the values for
// the current sticky state and invalidates the sticky engine's cache.
func (s *mirrorSync) refresh() {
	g := s.engine.geometry
	s.percentWidth = float64(s.engine.visible) * g.Column
	s.inner = g.MirrorInner
	s.element = g.MirrorElement
	s.measure()

	s.mirror.SetWidth(s.current())
	s.mirror.NotifyGeometryChanged()
}

// measure reads the fixed-mode width and right offset from the probe.
func (s *mirrorSync) measure() {
	left, width := s.probe.NavBounds()
	s.cellWidth = width
	s.cellRight = math.Round(s.probe.ViewportWidth() - (left + width))
}

func (s *mirrorSync) stickyChanged(ev StickyEvent) {
	s.fixed = ev.Fixed()
	s.mirror.SetWidth(s.current())
}

// StickyChanged applies a sticky engine state change to the mirror. It is
// a no-op without a mirror or while disabled.
func (e *Engine) StickyChanged(ev StickyEvent) {
	if e.mirror == nil {
		return
	}
	if !e.Enabled() {
		// Remember the state so the next refresh applies the right unit.
		e.mirror.fixed = ev.Fixed()
		return
	}
	e.mirror.stickyChanged(ev)
}

// RefreshMirror re-measures the mirror. It is a no-op without a mirror or
// while disabled.
func (e *Engine) RefreshMirror() {
	if e.mirror == nil || !e.Enabled() {
		return
	}
	e.mirror.refresh()
}

// MirrorWidth returns the width last pushed to the mirror.
func (e *Engine) MirrorWidth() (MirrorWidth, bool) {
	if e.mirror == nil {
		return MirrorWidth{}, false
	}
	return e.mirror.current(), true
}

// MirrorElements returns how many mirror elements were attached.
func (e *Engine) MirrorElements() int {
	if e.mirror == nil {
		return 0
	}
	return e.mirror.elements
}

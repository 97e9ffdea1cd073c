package colwindow

import (
	"time"

	"github.com/llehouerou/tablewizard/internal/ui/layout"
)

// fakeSurface records every call the engine makes to its collaborators.
type fakeSurface struct {
	width    float64
	column   float64 // drawn column width, 0 to use the percentage
	navLeft  float64
	navWidth float64
	viewport float64

	transforms map[Target]float64
	animated   map[Target]bool
	durations  map[Target]time.Duration

	applied []layout.Geometry
	resets  int

	mirrorHeaders []string
	mirrorWidths  []MirrorWidth
	mirrorVisible bool
	recalcs       int

	bound   bool
	binds   int
	unbinds int

	buttons        ButtonState
	positions      []int
	visibleNotices []int
}

func newFakeSurface(width float64) *fakeSurface {
	return &fakeSurface{
		width:      width,
		viewport:   width,
		transforms: make(map[Target]float64),
		animated:   make(map[Target]bool),
		durations:  make(map[Target]time.Duration),
	}
}

func (f *fakeSurface) collaborators() Collaborators {
	return Collaborators{
		Measurer:    f,
		Transformer: f,
		Layout:      f,
		Mirror:      f,
		Probe:       f,
		Gestures:    f,
		Observer:    f,
	}
}

func (f *fakeSurface) ContainerWidth() float64 { return f.width }
func (f *fakeSurface) ColumnWidth() float64    { return f.column }

func (f *fakeSurface) SetTransform(t Target, offset float64) {
	f.transforms[t] = offset
	f.animated[t] = false
}

func (f *fakeSurface) AnimateTransform(t Target, offset float64, d time.Duration) {
	f.transforms[t] = offset
	f.animated[t] = true
	f.durations[t] = d
}

func (f *fakeSurface) Apply(g layout.Geometry) {
	f.applied = append(f.applied, g)
	// The nav controls sit over the scrollable window on the right.
	f.navWidth = float64(layout.Cells(g.NavWrapper, int(f.width)))
	f.navLeft = f.width - f.navWidth
}

func (f *fakeSurface) Reset() { f.resets++ }

func (f *fakeSurface) Attach(headers []string) int {
	f.mirrorHeaders = append([]string(nil), headers...)
	return len(headers)
}

func (f *fakeSurface) SetWidth(w MirrorWidth) { f.mirrorWidths = append(f.mirrorWidths, w) }
func (f *fakeSurface) Show()                  { f.mirrorVisible = true }
func (f *fakeSurface) Hide()                  { f.mirrorVisible = false }
func (f *fakeSurface) NotifyGeometryChanged() { f.recalcs++ }

func (f *fakeSurface) NavBounds() (left, width float64) { return f.navLeft, f.navWidth }
func (f *fakeSurface) ViewportWidth() float64           { return f.viewport }

func (f *fakeSurface) BindGestures() {
	f.bound = true
	f.binds++
}

func (f *fakeSurface) UnbindGestures() {
	f.bound = false
	f.unbinds++
}

func (f *fakeSurface) ButtonsChanged(b ButtonState)  { f.buttons = b }
func (f *fakeSurface) PositionChanged(p int)         { f.positions = append(f.positions, p) }
func (f *fakeSurface) VisibleCountChanged(n int)     { f.visibleNotices = append(f.visibleNotices, n) }
func (f *fakeSurface) lastMirrorWidth() MirrorWidth  { return f.mirrorWidths[len(f.mirrorWidths)-1] }
func (f *fakeSurface) lastGeometry() layout.Geometry { return f.applied[len(f.applied)-1] }

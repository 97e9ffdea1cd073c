package grid

import (
	"time"

	"github.com/llehouerou/tablewizard/internal/colwindow"
	"github.com/llehouerou/tablewizard/internal/ui/anim"
	"github.com/llehouerou/tablewizard/internal/ui/layout"
	"github.com/llehouerou/tablewizard/internal/ui/sticky"
)

// surface is the terminal side of a column window. It implements every
// colwindow collaborator and records what the engine asked for; View reads
// it back. It lives behind a pointer so copies of the Model share it.
type surface struct {
	width  int // terminal width
	margin int

	split    int // pinned columns on the left
	trailing int // non-scrollable columns after the scrollable ones

	anim    *anim.Animator[colwindow.Target]
	now     func() time.Time
	ticking bool

	geometry layout.Geometry
	applied  bool

	headers     []string
	mirrorShown bool
	mirrorWidth colwindow.MirrorWidth
	tracker     *sticky.Tracker

	gesturesBound bool

	buttons  colwindow.ButtonState
	position int
	visible  int
	changed  bool
}

func newSurface(margin, fps int, cfg colwindow.Config) *surface {
	return &surface{
		margin:   margin,
		split:    cfg.SplitIndex,
		trailing: max(cfg.TotalColumns-cfg.SplitIndex-cfg.TotalScrollable, 0),
		anim:   anim.New[colwindow.Target](nextAnimID(), fps),
		now:    time.Now,
	}
}

// containerCells is the table width in cells.
func (s *surface) containerCells() int {
	return layout.ContainerWidth(s.width, s.margin)
}

// columnCells is the width of every column while a window is applied.
// All layers are laid out in whole multiples of it; the cells it leaves
// over stay blank after the table.
func (s *surface) columnCells() int {
	if !s.applied {
		return 0
	}
	return layout.Cells(s.geometry.Column, s.containerCells())
}

// navCells is the width of the nav controls, which span the visible
// scrollable columns.
func (s *surface) navCells() int {
	return s.geometry.Visible * s.columnCells()
}

// navLeft is the viewport cell where the scrollable window starts.
func (s *surface) navLeft() int {
	return s.margin + s.split*s.columnCells()
}

// Measurer

func (s *surface) ContainerWidth() float64 {
	return float64(s.containerCells())
}

func (s *surface) ColumnWidth() float64 {
	return float64(s.columnCells())
}

// Transformer

func (s *surface) SetTransform(t colwindow.Target, offsetPercent float64) {
	s.anim.Set(t, offsetPercent)
}

func (s *surface) AnimateTransform(t colwindow.Target, offsetPercent float64, d time.Duration) {
	s.anim.AnimateTo(t, offsetPercent, d, s.now())
}

// Layout

func (s *surface) Apply(g layout.Geometry) {
	s.geometry = g
	s.applied = true
}

func (s *surface) Reset() {
	s.geometry = layout.Geometry{}
	s.applied = false
}

// Mirror

func (s *surface) Attach(headers []string) int {
	s.headers = append([]string(nil), headers...)
	return len(s.headers)
}

func (s *surface) SetWidth(w colwindow.MirrorWidth) {
	s.mirrorWidth = w
}

func (s *surface) Show() {
	s.mirrorShown = true
}

func (s *surface) Hide() {
	s.mirrorShown = false
}

func (s *surface) NotifyGeometryChanged() {
	if s.tracker != nil {
		s.tracker.Recalc()
	}
}

// Probe

func (s *surface) NavBounds() (left, width float64) {
	return float64(s.navLeft()), float64(s.navCells())
}

func (s *surface) ViewportWidth() float64 {
	return float64(s.width)
}

// GestureBinder

func (s *surface) BindGestures() {
	s.gesturesBound = true
}

func (s *surface) UnbindGestures() {
	s.gesturesBound = false
}

// Observer

func (s *surface) ButtonsChanged(b colwindow.ButtonState) {
	s.buttons = b
	s.changed = true
}

func (s *surface) PositionChanged(position int) {
	s.position = position
	s.changed = true
}

func (s *surface) VisibleCountChanged(visible int) {
	s.visible = visible
	s.changed = true
}

func (s *surface) collaborators() colwindow.Collaborators {
	return colwindow.Collaborators{
		Measurer:    s,
		Transformer: s,
		Layout:      s,
		Mirror:      s,
		Probe:       s,
		Gestures:    s,
		Observer:    s,
	}
}

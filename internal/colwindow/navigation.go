package colwindow

import "github.com/llehouerou/tablewizard/internal/ui/layout"

// ButtonState is the enablement of the prev/next controls.
type ButtonState struct {
	PrevEnabled bool
	NextEnabled bool
}

// Buttons computes the enablement of the prev/next controls from the
// current state. The next check is made against the total column count,
// not the scrollable count, so tables with pinned or excluded columns can
// disable next before or after the right edge.
//
// TODO: compare against TotalScrollable once tables with excluded
// scrollable columns have been checked against the rendered output.
func (e *Engine) Buttons() ButtonState {
	if !e.Enabled() {
		return ButtonState{}
	}
	return ButtonState{
		PrevEnabled: e.position >= 1,
		NextEnabled: e.position+1 < e.cfg.TotalColumns-e.visible,
	}
}

// maxPosition is the right edge of the window.
func (e *Engine) maxPosition() int {
	return max(e.cfg.TotalScrollable-e.visible, 0)
}

// MoveTo moves the window so that target is the leftmost visible
// scrollable column. Targets past either edge snap to that edge. The move
// is animated over the configured duration unless instant is set.
func (e *Engine) MoveTo(target int, instant bool) {
	if !e.Enabled() {
		return
	}
	if target+e.visible > e.cfg.TotalScrollable {
		target = e.cfg.TotalScrollable - e.visible
	}
	e.position = max(target, 0)
	e.applyOffset(-float64(e.position)*100, instant)

	if e.collab.Observer != nil {
		e.collab.Observer.PositionChanged(e.position)
	}
	e.updateButtons()
}

// MoveBy moves the window by delta columns with animation.
func (e *Engine) MoveBy(delta int) {
	e.MoveTo(e.position+delta, false)
}

// Prev moves one column left if the prev control is enabled.
func (e *Engine) Prev() bool {
	if !e.Buttons().PrevEnabled {
		return false
	}
	e.MoveBy(-1)
	return true
}

// Next moves one column right if the next control is enabled.
func (e *Engine) Next() bool {
	if !e.Buttons().NextEnabled {
		return false
	}
	e.MoveBy(1)
	return true
}

// First moves to the left edge.
func (e *Engine) First() {
	e.MoveTo(0, false)
}

// Last moves to the right edge.
func (e *Engine) Last() {
	e.MoveTo(e.maxPosition(), false)
}

// applyOffset pushes one offset to the columns and, when present, the
// mirror. The mirror never moves on its own.
func (e *Engine) applyOffset(offsetPercent float64, instant bool) {
	targets := []Target{TargetColumns}
	if e.mirror != nil {
		targets = append(targets, TargetMirror)
	}
	for _, t := range targets {
		if instant || e.cfg.AnimationDuration <= 0 {
			e.collab.Transformer.SetTransform(t, offsetPercent)
		} else {
			e.collab.Transformer.AnimateTransform(t, offsetPercent, e.cfg.AnimationDuration)
		}
	}
}

func (e *Engine) updateButtons() {
	if e.collab.Observer != nil {
		e.collab.Observer.ButtonsChanged(e.Buttons())
	}
}

// Refresh resizes everything for a new visible count. A count of zero, or
// a count the table cannot lay out, disables windowing and restores
// intrinsic sizing. Calling Refresh twice with the same count produces
// the same output both times.
func (e *Engine) Refresh(newVisible int) {
	newVisible = e.effectiveVisible(newVisible)
	g, ok := layout.Compute(newVisible, e.cfg.TotalColumns, e.cfg.TotalScrollable)
	if !ok {
		e.disable()
	} else {
		e.enable(g)
	}
	if e.collab.Observer != nil {
		e.collab.Observer.VisibleCountChanged(e.visible)
	}
}

func (e *Engine) disable() {
	e.visible = 0
	e.geometry = layout.Geometry{}
	e.state = Disabled
	e.drag = nil

	e.collab.Layout.Reset()
	e.collab.Transformer.SetTransform(TargetColumns, 0)
	if e.mirror != nil {
		e.collab.Transformer.SetTransform(TargetMirror, 0)
		e.mirror.hide()
	}
	e.unbindGestures()
	e.updateButtons()
}

func (e *Engine) enable(g layout.Geometry) {
	e.visible = g.Visible
	e.geometry = g
	e.state = Enabled

	e.collab.Layout.Apply(g)
	if e.mirror != nil {
		e.mirror.show(g)
	}
	if e.cfg.GestureEnabled {
		e.bindGestures()
	}
}

func (e *Engine) bindGestures() {
	if e.collab.Gestures != nil {
		// Rebinding replaces the previous listeners as a unit.
		e.collab.Gestures.UnbindGestures()
		e.collab.Gestures.BindGestures()
	}
	e.gesturesBound = true
}

func (e *Engine) unbindGestures() {
	if e.gesturesBound && e.collab.Gestures != nil {
		e.collab.Gestures.UnbindGestures()
	}
	e.gesturesBound = false
}

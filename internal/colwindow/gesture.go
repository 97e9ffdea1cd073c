package colwindow

import "math"

// dragSession exists only between DragStart and DragEnd.
type dragSession struct {
	startOffset  float64 // pointer X at start, biased by the scrolled distance
	fraction     float64 // signed net drag in column widths
	elementWidth float64
}

// elementWidth is the width of one scrollable column in container units,
// as drawn when the measurer knows it.
func (e *Engine) elementWidth() float64 {
	if cm, ok := e.collab.Measurer.(ColumnMeasurer); ok {
		if w := cm.ColumnWidth(); w > 0 {
			return w
		}
	}
	return e.containerWidth() * e.geometry.Column / 100
}

func (e *Engine) acceptsGestures() bool {
	return e.Enabled() && e.gesturesBound
}

// DragStart begins a drag at pointer position x. It is ignored while
// disabled, while gestures are unbound, or if a drag is already active.
func (e *Engine) DragStart(x float64) {
	if !e.acceptsGestures() || e.drag != nil {
		return
	}
	w := e.elementWidth()
	if w <= 0 {
		return
	}
	e.drag = &dragSession{
		startOffset:  x + float64(e.position)*w,
		fraction:     -float64(e.position),
		elementWidth: w,
	}
}

// DragMove tracks the pointer with an instant transform; drags never
// animate.
func (e *Engine) DragMove(x float64) {
	if !e.acceptsGestures() || e.drag == nil {
		return
	}
	e.drag.fraction = (x - e.drag.startOffset) / e.drag.elementWidth
	offset := e.drag.fraction * 100
	e.collab.Transformer.SetTransform(TargetColumns, offset)
	if e.mirror != nil {
		e.collab.Transformer.SetTransform(TargetMirror, offset)
	}
}

// DragEnd snaps to the nearest whole column and ends the session.
func (e *Engine) DragEnd() {
	if e.drag == nil {
		return
	}
	d := e.drag
	e.drag = nil
	if !e.Enabled() {
		return
	}
	pos := max(int(-math.Round(d.fraction)), 0)
	e.MoveTo(pos, true)
}

// DragFraction returns the net drag of the active session in column
// widths, or false when no drag is active.
func (e *Engine) DragFraction() (float64, bool) {
	if e.drag == nil {
		return 0, false
	}
	return e.drag.fraction, true
}

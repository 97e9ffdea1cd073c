package colwindow

// HandleResize re-samples the container after a resize. When the resolved
// visible count changes the table is refreshed and, if still enabled, the
// window is re-clamped at its current position. The mirror is always
// re-measured while enabled, since a resize can move it without crossing
// a breakpoint.
//
// Resize notifications are not coalesced here; callers deliver them at
// the rate they want them sampled.
func (e *Engine) HandleResize() (changed bool) {
	next := e.resolve()
	if next != e.visible {
		changed = true
		e.Refresh(next)
		if e.Enabled() {
			e.MoveTo(e.position, true)
		}
	}
	if e.mirror != nil && e.Enabled() {
		e.mirror.refresh()
	}
	return changed
}

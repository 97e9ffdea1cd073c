// Package sticky tracks whether a table's header line has scrolled out of
// view and reports the transitions a floating header needs to follow.
package sticky

import "github.com/llehouerou/tablewizard/internal/colwindow"

type zone int

const (
	zoneAbove  zone = iota // header line on screen
	zoneStuck              // header scrolled off, table body still on screen
	zoneBottom             // scrolled past the table's last line
)

// Tracker turns vertical scroll offsets into sticky events.
type Tracker struct {
	locate func() (header, last int)

	header, last int
	cached       bool
	zone         zone
}

// New creates a tracker. locate returns the content line of the header and
// of the table's last line; it is called lazily and cached until Recalc.
func New(locate func() (header, last int)) *Tracker {
	return &Tracker{locate: locate}
}

// Recalc drops the cached line positions. The next Update asks locate again.
func (t *Tracker) Recalc() {
	t.cached = false
}

// Fixed reports whether the header is currently detached from the table.
func (t *Tracker) Fixed() bool {
	return t.zone == zoneStuck
}

// Update records the first visible content line and returns the events
// produced by crossing the header or bottom threshold, in order.
func (t *Tracker) Update(offset int) []colwindow.StickyEvent {
	if !t.cached {
		t.header, t.last = t.locate()
		t.cached = true
	}

	next := t.zoneFor(offset)
	if next == t.zone {
		return nil
	}

	var events []colwindow.StickyEvent
	switch {
	case t.zone == zoneAbove && next == zoneStuck:
		events = append(events, colwindow.Stick)
	case t.zone == zoneStuck && next == zoneAbove:
		events = append(events, colwindow.Unstick)
	case t.zone == zoneStuck && next == zoneBottom:
		events = append(events, colwindow.Bottom)
	case t.zone == zoneBottom && next == zoneStuck:
		events = append(events, colwindow.Unbottom)
	case t.zone == zoneAbove && next == zoneBottom:
		events = append(events, colwindow.Stick, colwindow.Bottom)
	case t.zone == zoneBottom && next == zoneAbove:
		events = append(events, colwindow.Unbottom, colwindow.Unstick)
	}
	t.zone = next
	return events
}

func (t *Tracker) zoneFor(offset int) zone {
	switch {
	case offset <= t.header:
		return zoneAbove
	case offset >= t.last:
		return zoneBottom
	default:
		return zoneStuck
	}
}

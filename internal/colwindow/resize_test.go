package colwindow

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/llehouerou/tablewizard/internal/breakpoint"
)

func TestHandleResize_CrossingBreakpointReclamps(t *testing.T) {
	e, f := startEngine(t, testConfig(), 80)
	e.MoveTo(3, true) // right edge with two visible

	f.width = 100 // three visible, right edge is now 2
	changed := e.HandleResize()

	assert.True(t, changed)
	assert.Equal(t, 3, e.VisibleCount())
	assert.Equal(t, 2, e.Position())
	assert.Equal(t, -200.0, f.transforms[TargetColumns])
	assert.False(t, f.animated[TargetColumns], "re-clamping after a resize is instant")
	assert.InDelta(t, 25.0, e.Geometry().Column, 1e-9)
}

func TestHandleResize_SameBreakpointOnlyRefreshesMirror(t *testing.T) {
	e, f := startEngine(t, testConfig(), 80)
	applied := len(f.applied)
	recalcs := f.recalcs

	f.width = 75
	changed := e.HandleResize()

	assert.False(t, changed)
	assert.Len(t, f.applied, applied)
	assert.Equal(t, recalcs+1, f.recalcs)
}

func TestHandleResize_DisableThenRestorePosition(t *testing.T) {
	e, f := startEngine(t, testConfig(), 80)
	e.MoveTo(2, true)

	f.width = 500
	assert.True(t, e.HandleResize())
	assert.False(t, e.Enabled())
	recalcs := f.recalcs

	// Resizing while disabled must not touch the mirror.
	f.width = 600
	assert.False(t, e.HandleResize())
	assert.Equal(t, recalcs, f.recalcs)

	f.width = 80
	assert.True(t, e.HandleResize())
	assert.True(t, e.Enabled())
	assert.Equal(t, 2, e.Position(), "position survives a disabled period")
	assert.Equal(t, -200.0, f.transforms[TargetColumns])
}

func TestHandleResize_ScalarRuleNeverChanges(t *testing.T) {
	cfg := testConfig()
	cfg.Rule = breakpoint.NewScalar(2)
	e, f := startEngine(t, cfg, 80)

	for _, w := range []float64{20, 500, 80} {
		f.width = w
		assert.False(t, e.HandleResize(), "width %v", w)
		assert.Equal(t, 2, e.VisibleCount())
	}
}

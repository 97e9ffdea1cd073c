// Package colwindow implements responsive column windowing: a fixed set of
// pinned columns plus a window of scrollable columns whose size follows a
// breakpoint rule and whose position is driven by buttons, keys and drags.
//
// The Engine never renders anything. It drives the collaborators it was
// given (see Collaborators) and is meant to be called from a single event
// loop; none of its methods are safe for concurrent use.
package colwindow

import (
	"errors"
	"fmt"
	"time"

	"github.com/llehouerou/tablewizard/internal/breakpoint"
	"github.com/llehouerou/tablewizard/internal/ui/layout"
)

// Configuration errors returned by New.
var (
	ErrInvalidSplit        = errors.New("split index out of range")
	ErrInvalidScrollable   = errors.New("scrollable column count out of range")
	ErrInvalidDuration     = errors.New("animation duration is negative")
	ErrMissingCollaborator = errors.New("missing collaborator")
)

// Labels are the prev/next button captions. The engine only passes them
// through.
type Labels struct {
	Prev string
	Next string
}

// Config describes one table. It is validated by New and never changes
// afterwards.
type Config struct {
	SplitIndex        int // first scrollable column
	TotalColumns      int // widest row of the table
	TotalScrollable   int // scrollable columns the window moves over
	Rule              breakpoint.Rule
	Labels            Labels
	AnimationDuration time.Duration
	MirrorEnabled     bool
	GestureEnabled    bool

	// Headers are the header cells of the scrollable columns, mirrored
	// when MirrorEnabled is set.
	Headers []string
}

// Validate reports configuration errors.
func (c Config) Validate() error {
	if err := c.Rule.Validate(); err != nil {
		return err
	}
	if c.SplitIndex < 0 || c.SplitIndex > c.TotalColumns {
		return fmt.Errorf("%w: %d not in [0, %d]", ErrInvalidSplit, c.SplitIndex, c.TotalColumns)
	}
	if limit := c.TotalColumns - c.SplitIndex; c.TotalScrollable < 0 || c.TotalScrollable > limit {
		return fmt.Errorf("%w: %d not in [0, %d]", ErrInvalidScrollable, c.TotalScrollable, limit)
	}
	if c.AnimationDuration < 0 {
		return fmt.Errorf("%w: %s", ErrInvalidDuration, c.AnimationDuration)
	}
	return nil
}

// State is the engine's top-level mode.
type State int

const (
	// Disabled shows pinned columns only at intrinsic size.
	Disabled State = iota
	// Enabled shows a window of scrollable columns.
	Enabled
)

func (s State) String() string {
	if s == Enabled {
		return "enabled"
	}
	return "disabled"
}

// Engine owns the window state of one table.
type Engine struct {
	cfg    Config
	collab Collaborators

	visible  int
	position int
	geometry layout.Geometry
	state    State

	gesturesBound bool
	drag          *dragSession
	mirror        *mirrorSync
}

// New validates cfg and returns an engine in the Disabled state. Call
// Start once the render targets exist.
func New(cfg Config, collab Collaborators) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("colwindow config: %w", err)
	}
	if collab.Measurer == nil || collab.Transformer == nil || collab.Layout == nil {
		return nil, fmt.Errorf("%w: measurer, transformer and layout are required", ErrMissingCollaborator)
	}
	e := &Engine{cfg: cfg, collab: collab}
	if cfg.MirrorEnabled {
		if collab.Mirror == nil || collab.Probe == nil {
			return nil, fmt.Errorf("%w: mirror enabled without mirror and probe", ErrMissingCollaborator)
		}
		e.mirror = newMirrorSync(e, collab.Mirror, collab.Probe)
	}
	return e, nil
}

// Config returns the engine configuration.
func (e *Engine) Config() Config {
	return e.cfg
}

// State returns the current mode.
func (e *Engine) State() State {
	return e.state
}

// Enabled reports whether a window of scrollable columns is active.
func (e *Engine) Enabled() bool {
	return e.state == Enabled
}

// Position returns the index of the leftmost visible scrollable column.
func (e *Engine) Position() int {
	return e.position
}

// VisibleCount returns how many scrollable columns are shown at once.
func (e *Engine) VisibleCount() int {
	return e.visible
}

// Geometry returns the geometry applied by the last Refresh. It is the
// zero value while disabled.
func (e *Engine) Geometry() layout.Geometry {
	return e.geometry
}

// Dragging reports whether a drag session is active.
func (e *Engine) Dragging() bool {
	return e.drag != nil
}

// GesturesBound reports whether drag listeners are installed.
func (e *Engine) GesturesBound() bool {
	return e.gesturesBound
}

// effectiveVisible caps a resolved count to what the table can show.
func (e *Engine) effectiveVisible(resolved int) int {
	if resolved <= 0 || e.cfg.TotalScrollable <= 0 {
		return 0
	}
	return min(resolved, e.cfg.TotalScrollable)
}

func (e *Engine) containerWidth() float64 {
	return e.collab.Measurer.ContainerWidth()
}

// resolve samples the container and returns the effective visible count.
func (e *Engine) resolve() int {
	return e.effectiveVisible(e.cfg.Rule.Resolve(int(e.containerWidth())))
}

// Start performs the initial layout: measure, resolve, size everything
// and, when enabled, move to the first column.
func (e *Engine) Start() {
	e.Refresh(e.resolve())
	if !e.Enabled() {
		return
	}
	e.position = 0
	e.MoveTo(0, true)
	if e.mirror != nil {
		e.mirror.refresh()
	}
}

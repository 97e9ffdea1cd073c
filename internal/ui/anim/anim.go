// Package anim animates numeric values toward targets with damped springs.
// Each key holds at most one animation: a new target replaces the one in
// flight instead of stacking on top of it.
package anim

import (
	"math"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/harmonica"
)

// DefaultFPS is the frame rate used when none is configured.
const DefaultFPS = 60

// settleEpsilon is how close to the target a value must be, with a
// near-zero velocity, to be considered at rest.
const settleEpsilon = 0.01

// FrameMsg advances running animations by one frame.
type FrameMsg struct {
	ID   int
	Time time.Time
}

type value struct {
	pos      float64
	vel      float64
	target   float64
	spring   harmonica.Spring
	deadline time.Time
	moving   bool
}

// Animator holds one animated value per key.
type Animator[K comparable] struct {
	id     int
	fps    int
	values map[K]*value
}

// New creates an animator stepping at fps frames per second. id tags the
// FrameMsgs it schedules so several animators can share a program.
func New[K comparable](id, fps int) *Animator[K] {
	if fps <= 0 {
		fps = DefaultFPS
	}
	return &Animator[K]{id: id, fps: fps, values: make(map[K]*value)}
}

func (a *Animator[K]) get(key K) *value {
	v, ok := a.values[key]
	if !ok {
		v = &value{}
		a.values[key] = v
	}
	return v
}

// Set jumps key to target immediately, cancelling any animation on it.
func (a *Animator[K]) Set(key K, target float64) {
	v := a.get(key)
	v.pos = target
	v.target = target
	v.vel = 0
	v.moving = false
}

// AnimateTo starts moving key toward target over roughly d. The current
// velocity is kept, so retargeting mid-flight stays smooth.
func (a *Animator[K]) AnimateTo(key K, target float64, d time.Duration, now time.Time) {
	if d <= 0 {
		a.Set(key, target)
		return
	}
	v := a.get(key)
	v.target = target
	v.spring = harmonica.NewSpring(harmonica.FPS(a.fps), angularFrequency(d), 1.0)
	v.deadline = now.Add(d)
	v.moving = v.pos != target || v.vel != 0
}

// angularFrequency picks a critically damped spring that settles within
// about d.
func angularFrequency(d time.Duration) float64 {
	return 6.0 / d.Seconds()
}

// Step advances every moving value by one frame. Values snap to their
// target once they settle or their deadline passes. It reports whether
// any value is still moving.
func (a *Animator[K]) Step(now time.Time) bool {
	active := false
	for _, v := range a.values {
		if !v.moving {
			continue
		}
		v.pos, v.vel = v.spring.Update(v.pos, v.vel, v.target)
		settled := math.Abs(v.pos-v.target) < settleEpsilon && math.Abs(v.vel) < settleEpsilon
		if settled || !now.Before(v.deadline) {
			v.pos = v.target
			v.vel = 0
			v.moving = false
			continue
		}
		active = true
	}
	return active
}

// Active reports whether any value is moving.
func (a *Animator[K]) Active() bool {
	for _, v := range a.values {
		if v.moving {
			return true
		}
	}
	return false
}

// Value returns the current value of key, zero if it was never set.
func (a *Animator[K]) Value(key K) float64 {
	if v, ok := a.values[key]; ok {
		return v.pos
	}
	return 0
}

// Target returns where key is heading.
func (a *Animator[K]) Target(key K) float64 {
	if v, ok := a.values[key]; ok {
		return v.target
	}
	return 0
}

// ID returns the tag used on this animator's FrameMsgs.
func (a *Animator[K]) ID() int {
	return a.id
}

// Tick schedules the next frame.
func (a *Animator[K]) Tick() tea.Cmd {
	id := a.id
	return tea.Tick(time.Second/time.Duration(a.fps), func(t time.Time) tea.Msg {
		return FrameMsg{ID: id, Time: t}
	})
}

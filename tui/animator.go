package tui

import (
	"time"

	"github.com/lixenwraith/stagger"
	"github.com/lixenwraith/stagger/ease"
)

// DefaultEntranceDuration is how long one view's entrance transition runs
// once its delay has elapsed
const DefaultEntranceDuration = 250 * time.Millisecond

// Animator turns the delay engine's id->delay mapping into per-frame entrance
// progress. Apply schedules newly assigned views; Progress answers, at render
// time, how far along a view's entrance is: 0 before its delay elapses, a
// curve-shaped ramp over Duration, 1 after.
//
// Views never applied report progress 0 — "no delay assigned" means not
// visible yet, never "enter immediately".
type Animator struct {
	// Duration of one entrance transition, DefaultEntranceDuration if zero
	Duration time.Duration

	// Curve shapes the ramp, ease.OutCubic if nil
	Curve ease.Curve

	// ReducedMotion skips transitions: applied views report progress 1
	// immediately, matching platform accessibility settings
	ReducedMotion bool

	clock  TimeProvider
	starts map[stagger.ViewID]time.Time
}

// NewAnimator creates an animator reading time from clock
func NewAnimator(clock TimeProvider) *Animator {
	return &Animator{
		clock:  clock,
		starts: make(map[stagger.ViewID]time.Time),
	}
}

// Apply schedules every view in delays to start its entrance at
// start + delay. Already scheduled ids keep their original schedule.
func (a *Animator) Apply(delays map[stagger.ViewID]time.Duration, start time.Time) {
	for id, d := range delays {
		if _, ok := a.starts[id]; ok {
			continue
		}
		a.starts[id] = start.Add(d)
	}
}

// Progress returns entrance progress for id in [0,1] at the current time
// (OutBack and similar overshooting curves may exceed 1 mid-transition)
func (a *Animator) Progress(id stagger.ViewID) float64 {
	begin, ok := a.starts[id]
	if !ok {
		return 0
	}
	if a.ReducedMotion {
		return 1
	}

	elapsed := a.clock.Now().Sub(begin)
	if elapsed <= 0 {
		return 0
	}
	dur := a.Duration
	if dur <= 0 {
		dur = DefaultEntranceDuration
	}
	if elapsed >= dur {
		return 1
	}

	curve := a.Curve
	if curve == nil {
		curve = ease.OutCubic
	}
	return curve(float64(elapsed) / float64(dur))
}

// Scheduled reports whether id has been assigned an entrance
func (a *Animator) Scheduled(id stagger.ViewID) bool {
	_, ok := a.starts[id]
	return ok
}

// Done reports whether every scheduled entrance has finished
func (a *Animator) Done() bool {
	if a.ReducedMotion {
		return true
	}
	now := a.clock.Now()
	dur := a.Duration
	if dur <= 0 {
		dur = DefaultEntranceDuration
	}
	for _, begin := range a.starts {
		if now.Sub(begin) < dur {
			return false
		}
	}
	return true
}

// Reset forgets every schedule, for container teardown or re-activation
func (a *Animator) Reset() {
	a.starts = make(map[stagger.ViewID]time.Time)
}

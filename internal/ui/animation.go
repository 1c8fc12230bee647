// Package ui holds presentation helpers shared by the desk renderer:
// window animations and the snap preview overlay.
package ui

import (
	"math"
	"time"

	"github.com/christopherAlberts/storydesk/internal/geometry"
)

// AnimationType distinguishes why a window is in flight.
type AnimationType int

const (
	// AnimationSnap moves a window onto a snap rectangle.
	AnimationSnap AnimationType = iota
	// AnimationMinimize shrinks a window into its dock chip.
	AnimationMinimize
	// AnimationRestore grows a window back out of the dock.
	AnimationRestore
)

// Animation is an in-flight geometry transition for one window.
type Animation struct {
	WindowID  string
	Type      AnimationType
	StartTime time.Time
	Duration  time.Duration
	From      geometry.Rect
	To        geometry.Rect

	// Meta carries a type-specific payload, such as the snap zone to
	// commit when a snap animation completes.
	Meta int
}

// NewAnimation starts a transition from the window's current rectangle to
// the target. A zero duration returns nil so callers can skip animation
// entirely when it is disabled.
func NewAnimation(id string, typ AnimationType, from, to geometry.Rect, duration time.Duration) *Animation {
	if duration <= 0 || from == to {
		return nil
	}
	return &Animation{
		WindowID:  id,
		Type:      typ,
		StartTime: time.Now(),
		Duration:  duration,
		From:      from,
		To:        to,
	}
}

// RectAt returns the eased rectangle at the given time and whether the
// animation has finished.
func (a *Animation) RectAt(now time.Time) (geometry.Rect, bool) {
	progress := float64(now.Sub(a.StartTime)) / float64(a.Duration)
	done := progress >= 1.0
	if done {
		return a.To, true
	}
	if progress < 0 {
		progress = 0
	}
	eased := easeInOutCubic(progress)
	return geometry.Rect{
		X:      interpolate(a.From.X, a.To.X, eased),
		Y:      interpolate(a.From.Y, a.To.Y, eased),
		Width:  interpolate(a.From.Width, a.To.Width, eased),
		Height: interpolate(a.From.Height, a.To.Height, eased),
	}, false
}

// Animator tracks active animations keyed by window id. Starting a new
// animation for a window replaces the previous one.
type Animator struct {
	active map[string]*Animation
}

// NewAnimator returns an empty animator.
func NewAnimator() *Animator {
	return &Animator{active: make(map[string]*Animation)}
}

// Start registers an animation, ignoring nil.
func (an *Animator) Start(a *Animation) {
	if a == nil {
		return
	}
	an.active[a.WindowID] = a
}

// Cancel drops any animation for the window.
func (an *Animator) Cancel(id string) {
	delete(an.active, id)
}

// Active reports whether any animation is running.
func (an *Animator) Active() bool {
	return len(an.active) > 0
}

// Step advances all animations to now, invoking apply with each window's
// current rectangle. Completed animations are removed after a final apply
// of their target rectangle, with onDone called for cleanup.
func (an *Animator) Step(now time.Time, apply func(id string, r geometry.Rect), onDone func(a *Animation)) {
	for id, a := range an.active {
		r, done := a.RectAt(now)
		apply(id, r)
		if done {
			delete(an.active, id)
			if onDone != nil {
				onDone(a)
			}
		}
	}
}

func easeInOutCubic(t float64) float64 {
	if t < 0.5 {
		return 4 * t * t * t
	}
	p := 2*t - 2
	return 1 + p*p*p/2
}

func interpolate(start, end int, progress float64) int {
	return start + int(math.Round(float64(end-start)*progress))
}

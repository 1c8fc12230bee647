package ui

import (
	"testing"
	"time"

	"github.com/christopherAlberts/storydesk/internal/geometry"
)

func TestNewAnimationSkipsDegenerate(t *testing.T) {
	r := geometry.Rect{X: 0, Y: 0, Width: 10, Height: 10}

	if a := NewAnimation("w", AnimationSnap, r, r, time.Second); a != nil {
		t.Error("expected nil animation when from == to")
	}
	to := geometry.Rect{X: 5, Y: 5, Width: 10, Height: 10}
	if a := NewAnimation("w", AnimationSnap, r, to, 0); a != nil {
		t.Error("expected nil animation for zero duration")
	}
}

func TestAnimationRectAtEndpoints(t *testing.T) {
	from := geometry.Rect{X: 0, Y: 0, Width: 10, Height: 10}
	to := geometry.Rect{X: 100, Y: 50, Width: 40, Height: 20}
	a := NewAnimation("w", AnimationSnap, from, to, 200*time.Millisecond)

	r, done := a.RectAt(a.StartTime)
	if done {
		t.Error("done at start")
	}
	if r != from {
		t.Errorf("rect at start = %+v, want %+v", r, from)
	}

	r, done = a.RectAt(a.StartTime.Add(time.Second))
	if !done {
		t.Error("not done past duration")
	}
	if r != to {
		t.Errorf("rect at end = %+v, want %+v", r, to)
	}
}

func TestAnimationRectAtMidpoint(t *testing.T) {
	from := geometry.Rect{X: 0, Y: 0, Width: 10, Height: 10}
	to := geometry.Rect{X: 100, Y: 0, Width: 10, Height: 10}
	a := NewAnimation("w", AnimationSnap, from, to, 200*time.Millisecond)

	// easeInOutCubic(0.5) == 0.5, so the midpoint is halfway.
	r, done := a.RectAt(a.StartTime.Add(100 * time.Millisecond))
	if done {
		t.Error("done at midpoint")
	}
	if r.X != 50 {
		t.Errorf("X at midpoint = %d, want 50", r.X)
	}
}

func TestAnimatorStepRemovesDone(t *testing.T) {
	an := NewAnimator()
	from := geometry.Rect{X: 0, Y: 0, Width: 10, Height: 10}
	to := geometry.Rect{X: 20, Y: 0, Width: 10, Height: 10}
	a := NewAnimation("w", AnimationMinimize, from, to, 50*time.Millisecond)
	an.Start(a)

	if !an.Active() {
		t.Fatal("animator not active after Start")
	}

	var applied geometry.Rect
	var finished *Animation
	an.Step(a.StartTime.Add(time.Second),
		func(id string, r geometry.Rect) { applied = r },
		func(a *Animation) { finished = a },
	)

	if applied != to {
		t.Errorf("final applied rect = %+v, want %+v", applied, to)
	}
	if finished == nil || finished.WindowID != "w" {
		t.Error("onDone not invoked for completed animation")
	}
	if an.Active() {
		t.Error("completed animation not removed")
	}
}

func TestAnimatorStartReplaces(t *testing.T) {
	an := NewAnimator()
	from := geometry.Rect{X: 0, Y: 0, Width: 10, Height: 10}
	an.Start(NewAnimation("w", AnimationSnap, from, geometry.Rect{X: 20, Y: 0, Width: 10, Height: 10}, time.Minute))
	an.Start(NewAnimation("w", AnimationSnap, from, geometry.Rect{X: 40, Y: 0, Width: 10, Height: 10}, time.Minute))

	if len(an.active) != 1 {
		t.Errorf("active animations = %d, want 1", len(an.active))
	}
	an.Cancel("w")
	if an.Active() {
		t.Error("Cancel left an active animation")
	}
}

func TestEaseInOutCubicBounds(t *testing.T) {
	if got := easeInOutCubic(0); got != 0 {
		t.Errorf("ease(0) = %f", got)
	}
	if got := easeInOutCubic(1); got != 1 {
		t.Errorf("ease(1) = %f", got)
	}
	if got := easeInOutCubic(0.5); got != 0.5 {
		t.Errorf("ease(0.5) = %f", got)
	}
}

func TestSnapPreviewSetClear(t *testing.T) {
	viewport := geometry.Size{Width: 120, Height: 40}
	var p SnapPreview

	p.Set(geometry.ZoneLeftHalf, viewport)
	if !p.Visible {
		t.Fatal("preview not visible after Set")
	}
	if p.Rect != geometry.SnapRect(geometry.ZoneLeftHalf, viewport) {
		t.Errorf("preview rect = %+v", p.Rect)
	}

	p.Clear()
	if p.Visible || p.Zone != geometry.ZoneNone {
		t.Error("Clear did not reset preview")
	}
}

func TestSnapPreviewRenderHiddenIsEmpty(t *testing.T) {
	var p SnapPreview
	if out := p.Render(); out != "" {
		t.Errorf("hidden preview rendered %q", out)
	}
}

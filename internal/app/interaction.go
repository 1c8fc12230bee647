package app

import (
	"time"

	"github.com/christopherAlberts/storydesk/internal/config"
	"github.com/christopherAlberts/storydesk/internal/geometry"
	"github.com/christopherAlberts/storydesk/internal/ui"
)

// StartDrag begins a header drag. The offset from the window's top-left
// corner is captured so the window tracks the pointer without jumping.
func (d *Desk) StartDrag(id string, pointerX, pointerY int) {
	w := d.Registry.Window(id)
	if w == nil {
		return
	}
	d.Registry.SetActive(id)
	d.Animator.Cancel(id)

	d.State = StateDragging
	d.GestureID = id
	d.DragOffsetX = pointerX - w.X
	d.DragOffsetY = pointerY - w.Y
	d.PendingZone = geometry.ZoneNone
	d.InteractionMode = true
}

// StartResize begins a border drag on the given handle. The starting
// geometry is captured so each move recomputes from the origin rather
// than accumulating rounding.
func (d *Desk) StartResize(id string, handle ResizeHandle, pointerX, pointerY int) {
	w := d.Registry.Window(id)
	if w == nil || handle == HandleNone {
		return
	}
	d.Registry.SetActive(id)
	d.Animator.Cancel(id)

	d.State = StateResizing
	d.ResizeHandle = handle
	d.GestureID = id
	d.ResizeStartX = pointerX
	d.ResizeStartY = pointerY
	d.PreResizeRect = w.Rect()
	d.InteractionMode = true
}

// PointerMove advances the active gesture. Moves with no active gesture
// are ignored.
func (d *Desk) PointerMove(pointerX, pointerY int) {
	switch d.State {
	case StateDragging:
		d.dragMove(pointerX, pointerY)
	case StateResizing:
		d.resizeMove(pointerX, pointerY)
	}
}

func (d *Desk) dragMove(pointerX, pointerY int) {
	w := d.Registry.Window(d.GestureID)
	if w == nil {
		d.AbortGesture()
		return
	}

	pos := geometry.Point{X: pointerX - d.DragOffsetX, Y: pointerY - d.DragOffsetY}
	size := geometry.Size{Width: w.Width, Height: w.Height}
	pos, size = geometry.ApplyConstraints(pos, size, d.Registry.Constraints())
	d.Registry.UpdatePosition(d.GestureID, pos.X, pos.Y)
	if size != (geometry.Size{Width: w.Width, Height: w.Height}) {
		d.Registry.UpdateSize(d.GestureID, size.Width, size.Height)
	}

	d.updateSnapPreview(geometry.Rect{X: pos.X, Y: pos.Y, Width: size.Width, Height: size.Height})
}

func (d *Desk) updateSnapPreview(win geometry.Rect) {
	snap := d.Registry.Snap()
	if !snap.Enabled {
		d.PendingZone = geometry.ZoneNone
		d.Preview.Clear()
		return
	}
	zone, _ := geometry.DetectSnapZone(win, d.Registry.Viewport(), snap.Threshold)
	d.PendingZone = zone
	if zone == geometry.ZoneNone {
		d.Preview.Clear()
		return
	}
	d.Preview.Set(zone, d.Registry.Viewport())
}

func (d *Desk) resizeMove(pointerX, pointerY int) {
	w := d.Registry.Window(d.GestureID)
	if w == nil {
		d.AbortGesture()
		return
	}

	dx := pointerX - d.ResizeStartX
	dy := pointerY - d.ResizeStartY
	start := d.PreResizeRect
	rect := start

	switch d.ResizeHandle {
	case HandleE:
		rect.Width = start.Width + dx
	case HandleW:
		rect.X = start.X + dx
		rect.Width = start.Width - dx
	case HandleS:
		rect.Height = start.Height + dy
	case HandleN:
		rect.Y = start.Y + dy
		rect.Height = start.Height - dy
	case HandleSE:
		rect.Width = start.Width + dx
		rect.Height = start.Height + dy
	case HandleSW:
		rect.X = start.X + dx
		rect.Width = start.Width - dx
		rect.Height = start.Height + dy
	case HandleNE:
		rect.Y = start.Y + dy
		rect.Width = start.Width + dx
		rect.Height = start.Height - dy
	case HandleNW:
		rect.X = start.X + dx
		rect.Y = start.Y + dy
		rect.Width = start.Width - dx
		rect.Height = start.Height - dy
	}

	c := d.Registry.Constraints()

	// Keep the opposite edge anchored when the minimum bites on a
	// left or top handle.
	if rect.Width < c.MinWidth {
		if d.ResizeHandle == HandleW || d.ResizeHandle == HandleNW || d.ResizeHandle == HandleSW {
			rect.X = start.X + start.Width - c.MinWidth
		}
		rect.Width = c.MinWidth
	}
	if rect.Height < c.MinHeight {
		if d.ResizeHandle == HandleN || d.ResizeHandle == HandleNW || d.ResizeHandle == HandleNE {
			rect.Y = start.Y + start.Height - c.MinHeight
		}
		rect.Height = c.MinHeight
	}

	pos, size := geometry.ApplyConstraints(
		geometry.Point{X: rect.X, Y: rect.Y},
		geometry.Size{Width: rect.Width, Height: rect.Height},
		c,
	)
	d.Registry.UpdateSize(d.GestureID, size.Width, size.Height)
	d.Registry.UpdatePosition(d.GestureID, pos.X, pos.Y)
}

// PointerUp ends the active gesture. A drag release inside a snap zone
// commits the snap; a release elsewhere from a previously snapped window
// releases the snap and leaves the window where it was dropped. Resizes
// never snap. The state machine always returns to idle.
func (d *Desk) PointerUp() {
	defer func() {
		d.State = StateIdle
		d.ResizeHandle = HandleNone
		d.GestureID = ""
		d.PendingZone = geometry.ZoneNone
		d.InteractionMode = false
		d.Preview.Clear()
	}()

	if d.State != StateDragging {
		return
	}
	w := d.Registry.Window(d.GestureID)
	if w == nil {
		return
	}

	if d.Registry.Snap().Enabled && d.PendingZone != geometry.ZoneNone {
		// The window is already hovering the zone, so the short transition
		// keeps a drag release feeling immediate.
		d.snapWindowIn(d.GestureID, d.PendingZone, config.GetFastAnimationDuration())
		return
	}
	if w.Snapped {
		d.Registry.Unsnap(d.GestureID)
	}
}

// AbortGesture drops any active gesture without committing, used when
// the gesture's window disappears or the terminal loses the pointer.
func (d *Desk) AbortGesture() {
	d.State = StateIdle
	d.ResizeHandle = HandleNone
	d.GestureID = ""
	d.PendingZone = geometry.ZoneNone
	d.InteractionMode = false
	d.Preview.Clear()
}

// HeaderPress records a press on a window's header and reports whether
// it completed a double press. A double press on a snapped window
// releases the snap in place.
func (d *Desk) HeaderPress(id string, now time.Time) bool {
	doubled := id == d.lastHeaderPressID && now.Sub(d.lastHeaderPress) <= doublePressWindow
	d.lastHeaderPressID = id
	d.lastHeaderPress = now
	if !doubled {
		return false
	}
	d.lastHeaderPressID = ""

	if w := d.Registry.Window(id); w != nil && w.Snapped {
		d.Registry.Unsnap(id)
	}
	return true
}

// SnapWindow commits a window to a zone, animating the transition when
// animations are enabled.
func (d *Desk) SnapWindow(id string, zone geometry.Zone) {
	d.snapWindowIn(id, zone, config.GetAnimationDuration())
}

func (d *Desk) snapWindowIn(id string, zone geometry.Zone, duration time.Duration) {
	w := d.Registry.Window(id)
	if w == nil || !d.Registry.Snap().Enabled {
		return
	}
	target := geometry.SnapRect(zone, d.Registry.Viewport())
	anim := ui.NewAnimation(id, ui.AnimationSnap, w.Rect(), target, duration)
	if anim == nil {
		d.Registry.SnapToZone(id, zone)
		return
	}
	anim.Meta = int(zone)
	d.Animator.Start(anim)
}

// ToggleFullscreenWindow toggles fullscreen with an animated transition.
func (d *Desk) ToggleFullscreenWindow(id string) {
	w := d.Registry.Window(id)
	if w == nil {
		return
	}
	d.Animator.Cancel(id)
	d.Registry.ToggleFullscreen(id)
}

// MinimizeWindow sends a window to the dock.
func (d *Desk) MinimizeWindow(id string) {
	if d.GestureID == id {
		d.AbortGesture()
	}
	d.Animator.Cancel(id)
	d.Registry.Minimize(id)
}

// StepAnimations advances in-flight animations, writing intermediate
// geometry through the registry and committing snap state on completion.
func (d *Desk) StepAnimations(now time.Time) {
	d.Animator.Step(now,
		func(id string, r geometry.Rect) {
			d.Registry.UpdateSize(id, r.Width, r.Height)
			d.Registry.UpdatePosition(id, r.X, r.Y)
		},
		func(a *ui.Animation) {
			if a.Type == ui.AnimationSnap {
				d.Registry.SnapToZone(a.WindowID, geometry.Zone(a.Meta))
			}
		},
	)
}

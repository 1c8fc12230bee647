package input

import (
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/christopherAlberts/storydesk/internal/app"
	"github.com/christopherAlberts/storydesk/internal/workspace"
)

// HandleMouseClick starts gestures, presses header buttons, and restores
// windows from the dock. Mouse Y is in screen coordinates; windows live
// below the status bar.
func HandleMouseClick(msg tea.MouseClickMsg, d *app.Desk) (tea.Model, tea.Cmd) {
	mouse := msg.Mouse()
	x := mouse.X
	y := mouse.Y

	if y >= d.Height-app.DockHeight {
		if chip := d.DockChipAt(x); chip != nil {
			d.Registry.Restore(chip.WindowID)
		}
		return d, nil
	}
	if y < d.StatusOffset() {
		return d, nil
	}

	vy := y - d.StatusOffset()
	w := d.WindowAt(x, vy)
	if w == nil {
		return d, nil
	}
	d.Registry.SetActive(w.ID)

	switch mouse.Button {
	case tea.MouseLeft:
		return handleLeftClick(d, w, x, vy)
	case tea.MouseRight:
		// Right drag resizes from the nearest corner, anywhere on the
		// window.
		d.StartResize(w.ID, nearestCorner(w, x, vy), x, vy)
	}
	return d, nil
}

func handleLeftClick(d *app.Desk, w *workspace.Window, x, vy int) (tea.Model, tea.Cmd) {
	switch d.RegionAt(w, x, vy) {
	case app.RegionButtonClose:
		d.CloseWindow(w.ID)
	case app.RegionButtonMinimize:
		d.MinimizeWindow(w.ID)
	case app.RegionButtonMaximize:
		d.ToggleFullscreenWindow(w.ID)
	case app.RegionHeader:
		if d.HeaderPress(w.ID, time.Now()) {
			return d, nil
		}
		d.StartDrag(w.ID, x, vy)
	case app.RegionBorder:
		d.StartResize(w.ID, app.HandleForPoint(w, x, vy), x, vy)
	}
	return d, nil
}

// nearestCorner picks the resize corner by which quadrant of the window
// the press landed in.
func nearestCorner(w *workspace.Window, x, y int) app.ResizeHandle {
	left := x < w.X+w.Width/2
	top := y < w.Y+w.Height/2
	switch {
	case top && left:
		return app.HandleNW
	case top:
		return app.HandleNE
	case left:
		return app.HandleSW
	default:
		return app.HandleSE
	}
}

// HandleMouseMotion advances any active drag or resize.
func HandleMouseMotion(msg tea.MouseMotionMsg, d *app.Desk) (tea.Model, tea.Cmd) {
	mouse := msg.Mouse()
	d.PointerMove(mouse.X, mouse.Y-d.StatusOffset())
	return d, nil
}

// HandleMouseRelease ends the active gesture.
func HandleMouseRelease(msg tea.MouseReleaseMsg, d *app.Desk) (tea.Model, tea.Cmd) {
	d.PointerUp()
	return d, nil
}

// HandleMouseWheel scrolls the help and log overlays.
func HandleMouseWheel(msg tea.MouseWheelMsg, d *app.Desk) (tea.Model, tea.Cmd) {
	mouse := msg.Mouse()
	switch {
	case d.ShowHelp:
		switch mouse.Button {
		case tea.MouseWheelUp:
			if d.HelpScrollOffset > 0 {
				d.HelpScrollOffset--
			}
		case tea.MouseWheelDown:
			d.HelpScrollOffset++
		}
	case d.ShowLogs:
		switch mouse.Button {
		case tea.MouseWheelUp:
			d.LogScrollOffset++
		case tea.MouseWheelDown:
			if d.LogScrollOffset > 0 {
				d.LogScrollOffset--
			}
		}
	}
	return d, nil
}

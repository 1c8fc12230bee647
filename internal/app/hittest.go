package app

import (
	"github.com/christopherAlberts/storydesk/internal/workspace"
)

// Region is what part of a window frame a pointer position falls on.
type Region int

const (
	RegionNone Region = iota
	RegionHeader
	RegionContent
	RegionBorder
	RegionButtonMinimize
	RegionButtonMaximize
	RegionButtonClose
)

// Header button block layout, measured from the right edge of the top
// border. The renderer and hit testing share these so clicks land on
// what is drawn.
const (
	buttonBlockWidth = 11
	buttonCellWidth  = 3
)

// WindowAt returns the topmost visible window containing the point, in
// viewport coordinates. Nil when the point hits the desktop.
func (d *Desk) WindowAt(x, y int) *workspace.Window {
	var best *workspace.Window
	for _, w := range d.Registry.Windows() {
		if w.Minimized {
			continue
		}
		if !w.Rect().Contains(x, y) {
			continue
		}
		if best == nil || w.Z > best.Z {
			best = w
		}
	}
	return best
}

// RegionAt classifies a point inside the given window.
func (d *Desk) RegionAt(w *workspace.Window, x, y int) Region {
	if w == nil || !w.Rect().Contains(x, y) {
		return RegionNone
	}

	if y == w.Y {
		if btn := headerButtonAt(w, x); btn != RegionNone {
			return btn
		}
		return RegionHeader
	}
	if y == w.Y+w.Height-1 || x == w.X || x == w.X+w.Width-1 {
		return RegionBorder
	}
	return RegionContent
}

// headerButtonAt maps a top-border cell to the minimize, maximize, or
// close button it lands on.
func headerButtonAt(w *workspace.Window, x int) Region {
	if w.Width < buttonBlockWidth+4 {
		return RegionNone
	}
	// Block sits just inside the top-right corner.
	blockStart := w.X + w.Width - 1 - buttonBlockWidth
	rel := x - blockStart
	switch {
	case rel >= 1 && rel < 1+buttonCellWidth:
		return RegionButtonMinimize
	case rel >= 1+buttonCellWidth && rel < 1+2*buttonCellWidth:
		return RegionButtonMaximize
	case rel >= 1+2*buttonCellWidth && rel < 1+3*buttonCellWidth:
		return RegionButtonClose
	}
	return RegionNone
}

// HandleForPoint picks the resize handle for a border cell. Corner cells
// resize both axes.
func HandleForPoint(w *workspace.Window, x, y int) ResizeHandle {
	onLeft := x == w.X
	onRight := x == w.X+w.Width-1
	onTop := y == w.Y
	onBottom := y == w.Y+w.Height-1

	switch {
	case onTop && onLeft:
		return HandleNW
	case onTop && onRight:
		return HandleNE
	case onBottom && onLeft:
		return HandleSW
	case onBottom && onRight:
		return HandleSE
	case onLeft:
		return HandleW
	case onRight:
		return HandleE
	case onTop:
		return HandleN
	case onBottom:
		return HandleS
	}
	return HandleNone
}

// DockChip is one minimized window's clickable span in the dock row.
type DockChip struct {
	WindowID string
	Label    string
	StartX   int
	EndX     int // exclusive
}

// DockLayout lays out the minimized window chips left to right, clipped
// to the screen width. Used by the dock renderer and dock click
// handling.
func (d *Desk) DockLayout() []DockChip {
	var chips []DockChip
	x := 1
	for _, w := range d.Registry.Windows() {
		if !w.Minimized {
			continue
		}
		label := " ● " + w.Title + " "
		width := len([]rune(label))
		if x+width > d.Width {
			break
		}
		chips = append(chips, DockChip{
			WindowID: w.ID,
			Label:    label,
			StartX:   x,
			EndX:     x + width,
		})
		x += width + 1
	}
	return chips
}

// DockChipAt returns the chip under a dock-row click, or nil.
func (d *Desk) DockChipAt(x int) *DockChip {
	chips := d.DockLayout()
	for i := range chips {
		if x >= chips[i].StartX && x < chips[i].EndX {
			return &chips[i]
		}
	}
	return nil
}

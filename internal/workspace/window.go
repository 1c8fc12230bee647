// Package workspace owns the canonical window state for a storydesk
// session: the ordered window list, focus and z-order, minimize and
// fullscreen toggles, and snap commits. It is a plain synchronous store;
// the interaction layer applies geometry constraints before writing.
package workspace

import (
	"github.com/google/uuid"

	"github.com/christopherAlberts/storydesk/internal/geometry"
)

// Kind selects which panel content a window hosts. Opaque to the
// workspace itself.
type Kind string

const (
	KindDocument     Kind = "document"
	KindStoryboard   Kind = "storyboard"
	KindDatabase     Kind = "database"
	KindMapBuilder   Kind = "map-builder"
	KindSettings     Kind = "settings"
	KindProjectFiles Kind = "project-files"
)

// Kinds lists every panel kind in menu order.
var Kinds = []Kind{
	KindDocument,
	KindStoryboard,
	KindDatabase,
	KindMapBuilder,
	KindSettings,
	KindProjectFiles,
}

// Window is one floating panel.
type Window struct {
	ID         string
	Kind       Kind
	Title      string
	X          int
	Y          int
	Width      int
	Height     int
	Z          int
	Minimized  bool
	Snapped    bool
	SnapZone   geometry.Zone
	Fullscreen bool

	// PrevGeometry holds the pre-fullscreen rectangle while Fullscreen
	// is set.
	PrevGeometry *geometry.Rect
}

// NewWindow creates an unplaced window with a fresh id.
func NewWindow(kind Kind, title string) *Window {
	return &Window{
		ID:    uuid.NewString(),
		Kind:  kind,
		Title: title,
	}
}

// Rect returns the window's current rectangle.
func (w *Window) Rect() geometry.Rect {
	return geometry.Rect{X: w.X, Y: w.Y, Width: w.Width, Height: w.Height}
}

// SetRect applies a rectangle to the window's geometry.
func (w *Window) SetRect(r geometry.Rect) {
	w.X = r.X
	w.Y = r.Y
	w.Width = r.Width
	w.Height = r.Height
}

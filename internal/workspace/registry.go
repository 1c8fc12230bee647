package workspace

import "github.com/christopherAlberts/storydesk/internal/geometry"

const (
	// DefaultWidth is the width of a freshly opened window.
	DefaultWidth = 800
	// DefaultHeight is the height of a freshly opened window.
	DefaultHeight = 600
)

// SnapSettings controls magnetic snapping for a registry.
type SnapSettings struct {
	Enabled   bool
	Threshold int
}

// Registry owns the ordered window list and the active window. All
// operations are synchronous and operations on unknown ids are silent
// no-ops. The registry is written from a single event loop and carries
// no lock.
type Registry struct {
	windows     []*Window
	activeID    string
	zCounter    int
	constraints geometry.Constraints
	defaultSize geometry.Size
	snap        SnapSettings
	onChange    func()
}

// Option configures a Registry.
type Option func(*Registry)

// WithConstraints overrides the geometry constraints.
func WithConstraints(c geometry.Constraints) Option {
	return func(r *Registry) { r.constraints = c }
}

// WithDefaultSize overrides the size of newly opened windows.
func WithDefaultSize(s geometry.Size) Option {
	return func(r *Registry) { r.defaultSize = s }
}

// WithSnapSettings sets the initial snap configuration.
func WithSnapSettings(s SnapSettings) Option {
	return func(r *Registry) { r.snap = s }
}

// WithOnChange registers a hook invoked after every mutating operation.
// Used to drive session persistence.
func WithOnChange(fn func()) Option {
	return func(r *Registry) { r.onChange = fn }
}

// NewRegistry creates an empty registry for the given viewport.
func NewRegistry(viewport geometry.Size, opts ...Option) *Registry {
	r := &Registry{
		constraints: geometry.DefaultConstraints(viewport),
		defaultSize: geometry.Size{Width: DefaultWidth, Height: DefaultHeight},
		snap:        SnapSettings{Enabled: true, Threshold: 50},
	}
	for _, opt := range opts {
		opt(r)
	}
	r.constraints.Viewport = viewport
	return r
}

// Windows returns the live ordered window list. Callers must not reorder
// it; paint order comes from Z.
func (r *Registry) Windows() []*Window {
	return r.windows
}

// Window returns the window with the given id, or nil.
func (r *Registry) Window(id string) *Window {
	for _, w := range r.windows {
		if w.ID == id {
			return w
		}
	}
	return nil
}

// ActiveID returns the id of the active window, or "" when none exists.
func (r *Registry) ActiveID() string {
	return r.activeID
}

// Active returns the active window, or nil.
func (r *Registry) Active() *Window {
	return r.Window(r.activeID)
}

// Viewport returns the current viewport size.
func (r *Registry) Viewport() geometry.Size {
	return r.constraints.Viewport
}

// Constraints returns the geometry constraints in effect.
func (r *Registry) Constraints() geometry.Constraints {
	return r.constraints
}

// Snap returns the current snap settings.
func (r *Registry) Snap() SnapSettings {
	return r.snap
}

// SetSnap replaces the snap settings.
func (r *Registry) SetSnap(s SnapSettings) {
	r.snap = s
	r.changed()
}

// Open creates a window of the given kind centered in the viewport,
// raises it above every other window, and makes it active. It returns
// the new window's id and always succeeds.
func (r *Registry) Open(kind Kind, title string) string {
	w := NewWindow(kind, title)
	w.SetRect(geometry.CenteredRect(r.defaultSize, r.constraints))
	r.zCounter++
	w.Z = r.zCounter
	r.windows = append(r.windows, w)
	r.activeID = w.ID
	r.changed()
	return w.ID
}

// Close removes the window. If it was active, the last remaining window
// in list order becomes active.
func (r *Registry) Close(id string) {
	idx := r.indexOf(id)
	if idx < 0 {
		return
	}
	r.windows = append(r.windows[:idx], r.windows[idx+1:]...)
	if r.activeID == id {
		r.activeID = ""
		if n := len(r.windows); n > 0 {
			r.activeID = r.windows[n-1].ID
		}
	}
	r.changed()
}

// Minimize hides the window into the dock.
func (r *Registry) Minimize(id string) {
	w := r.Window(id)
	if w == nil {
		return
	}
	w.Minimized = true
	if r.activeID == id {
		r.activeID = ""
		if top := r.topVisible(); top != nil {
			r.activeID = top.ID
		}
	}
	r.changed()
}

// Restore brings a minimized window back and makes it active.
func (r *Registry) Restore(id string) {
	w := r.Window(id)
	if w == nil {
		return
	}
	w.Minimized = false
	r.raise(w)
	r.changed()
}

// SetActive focuses the window and raises it above all others.
func (r *Registry) SetActive(id string) {
	w := r.Window(id)
	if w == nil {
		return
	}
	r.raise(w)
	r.changed()
}

// Rename sets the window's display title.
func (r *Registry) Rename(id, title string) {
	w := r.Window(id)
	if w == nil {
		return
	}
	w.Title = title
	r.changed()
}

// UpdatePosition writes an already-constrained position. Moving a snapped
// window off its snap rectangle clears the snap flag.
func (r *Registry) UpdatePosition(id string, x, y int) {
	w := r.Window(id)
	if w == nil {
		return
	}
	w.X = x
	w.Y = y
	r.reconcileSnap(w)
	r.changed()
}

// UpdateSize writes an already-constrained size. Resizing a snapped
// window off its snap rectangle clears the snap flag.
func (r *Registry) UpdateSize(id string, width, height int) {
	w := r.Window(id)
	if w == nil {
		return
	}
	w.Width = width
	w.Height = height
	r.reconcileSnap(w)
	r.changed()
}

// SnapToZone places the window on the zone's rectangle for the current
// viewport and marks it snapped. No-op while snapping is disabled.
func (r *Registry) SnapToZone(id string, zone geometry.Zone) {
	if !r.snap.Enabled || zone == geometry.ZoneNone {
		return
	}
	w := r.Window(id)
	if w == nil {
		return
	}
	w.SetRect(geometry.SnapRect(zone, r.constraints.Viewport))
	w.Snapped = true
	w.SnapZone = zone
	r.changed()
}

// Unsnap clears the snap flag without moving the window.
func (r *Registry) Unsnap(id string) {
	w := r.Window(id)
	if w == nil {
		return
	}
	w.Snapped = false
	w.SnapZone = geometry.ZoneNone
	r.changed()
}

// ToggleFullscreen grows the window to the full viewport, or restores
// the geometry saved when fullscreen was entered.
func (r *Registry) ToggleFullscreen(id string) {
	w := r.Window(id)
	if w == nil {
		return
	}
	if w.Fullscreen {
		if w.PrevGeometry != nil {
			w.SetRect(*w.PrevGeometry)
			w.PrevGeometry = nil
		}
		w.Fullscreen = false
	} else {
		prev := w.Rect()
		w.PrevGeometry = &prev
		w.SetRect(geometry.SnapRect(geometry.ZoneFullscreen, r.constraints.Viewport))
		w.Fullscreen = true
		r.raise(w)
	}
	r.changed()
}

// SetViewport records a new viewport size, re-derives snapped and
// fullscreen rectangles, and clamps free windows back on screen.
func (r *Registry) SetViewport(viewport geometry.Size) {
	r.constraints.Viewport = viewport
	for _, w := range r.windows {
		switch {
		case w.Fullscreen:
			w.SetRect(geometry.SnapRect(geometry.ZoneFullscreen, viewport))
		case w.Snapped:
			w.SetRect(geometry.SnapRect(w.SnapZone, viewport))
		default:
			pos, size := geometry.ApplyConstraints(
				geometry.Point{X: w.X, Y: w.Y},
				geometry.Size{Width: w.Width, Height: w.Height},
				r.constraints,
			)
			w.X, w.Y = pos.X, pos.Y
			w.Width, w.Height = size.Width, size.Height
		}
	}
	r.changed()
}

func (r *Registry) raise(w *Window) {
	r.zCounter++
	w.Z = r.zCounter
	r.activeID = w.ID
}

// reconcileSnap keeps the snapped and fullscreen flags honest after a raw
// geometry write. A window moved or resized off its derived rectangle is a
// free window again, so a later viewport change leaves it where the user
// put it.
func (r *Registry) reconcileSnap(w *Window) {
	if w.Fullscreen && w.Rect() != geometry.SnapRect(geometry.ZoneFullscreen, r.constraints.Viewport) {
		w.Fullscreen = false
		w.PrevGeometry = nil
	}
	if !w.Snapped {
		return
	}
	if w.Rect() != geometry.SnapRect(w.SnapZone, r.constraints.Viewport) {
		w.Snapped = false
		w.SnapZone = geometry.ZoneNone
	}
}

func (r *Registry) topVisible() *Window {
	var top *Window
	for _, w := range r.windows {
		if w.Minimized {
			continue
		}
		if top == nil || w.Z > top.Z {
			top = w
		}
	}
	return top
}

func (r *Registry) indexOf(id string) int {
	for i, w := range r.windows {
		if w.ID == id {
			return i
		}
	}
	return -1
}

func (r *Registry) changed() {
	if r.onChange != nil {
		r.onChange()
	}
}

// Package session snapshots the desk layout to disk so a project reopens
// with its windows where the writer left them. Snapshots are TOML files
// in the XDG state directory, written through a debouncer because drag
// gestures produce geometry changes at pointer rate.
package session

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/adrg/xdg"
	"github.com/pelletier/go-toml/v2"

	"github.com/christopherAlberts/storydesk/internal/geometry"
	"github.com/christopherAlberts/storydesk/internal/workspace"
)

// Layout is the persisted shape of a desk session.
type Layout struct {
	SavedAt time.Time      `toml:"saved_at"`
	Windows []WindowRecord `toml:"windows"`
}

// WindowRecord is one persisted window. Z order is recorded as the list
// position; ids are not persisted because they are session-scoped.
type WindowRecord struct {
	Kind      string `toml:"kind"`
	Title     string `toml:"title"`
	X         int    `toml:"x"`
	Y         int    `toml:"y"`
	Width     int    `toml:"width"`
	Height    int    `toml:"height"`
	Minimized bool   `toml:"minimized"`
	Snapped   bool   `toml:"snapped"`
	SnapZone  string `toml:"snap_zone,omitempty"`
	Active    bool   `toml:"active"`
}

// DefaultPath returns the layout file location for a project name.
func DefaultPath(project string) (string, error) {
	if project == "" {
		project = "default"
	}
	return xdg.StateFile(filepath.Join("storydesk", project+".toml"))
}

// Snapshot captures the registry's current state, ordered by z so the
// restore replays focus history.
func Snapshot(r *workspace.Registry) Layout {
	windows := append([]*workspace.Window(nil), r.Windows()...)
	// Replaying in ascending z restores both stacking and focus.
	for i := 1; i < len(windows); i++ {
		for j := i; j > 0 && windows[j-1].Z > windows[j].Z; j-- {
			windows[j-1], windows[j] = windows[j], windows[j-1]
		}
	}

	layout := Layout{SavedAt: time.Now()}
	for _, w := range windows {
		rect := w.Rect()
		// A fullscreen rect only means something at the viewport it was
		// derived from; persist the geometry the window returns to.
		if w.Fullscreen && w.PrevGeometry != nil {
			rect = *w.PrevGeometry
		}
		layout.Windows = append(layout.Windows, WindowRecord{
			Kind:      string(w.Kind),
			Title:     w.Title,
			X:         rect.X,
			Y:         rect.Y,
			Width:     rect.Width,
			Height:    rect.Height,
			Minimized: w.Minimized,
			Snapped:   w.Snapped,
			SnapZone:  zoneName(w.SnapZone),
			Active:    w.ID == r.ActiveID(),
		})
	}
	return layout
}

// Restore replays a layout into an empty registry. Geometry is re-clamped
// against the registry's viewport, and snapped windows land on the zone
// rectangle for the current viewport rather than the saved one.
func Restore(r *workspace.Registry, layout Layout) {
	var activeID string
	for _, rec := range layout.Windows {
		id := r.Open(workspace.Kind(rec.Kind), rec.Title)
		if rec.Snapped {
			if zone := zoneByName(rec.SnapZone); zone != geometry.ZoneNone {
				r.SnapToZone(id, zone)
			}
		} else {
			pos, size := geometry.ApplyConstraints(
				geometry.Point{X: rec.X, Y: rec.Y},
				geometry.Size{Width: rec.Width, Height: rec.Height},
				r.Constraints(),
			)
			r.UpdateSize(id, size.Width, size.Height)
			r.UpdatePosition(id, pos.X, pos.Y)
		}
		if rec.Minimized {
			r.Minimize(id)
		}
		if rec.Active {
			activeID = id
		}
	}
	if activeID != "" {
		r.SetActive(activeID)
	}
}

// Save writes a layout to the given path.
func Save(path string, layout Layout) error {
	data, err := toml.Marshal(layout)
	if err != nil {
		return fmt.Errorf("encode layout: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create state dir: %w", err)
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write layout: %w", err)
	}
	return os.Rename(tmp, path)
}

// Load reads a layout. A missing file returns an empty layout without
// error so first runs start clean.
func Load(path string) (Layout, error) {
	var layout Layout
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return layout, nil
	}
	if err != nil {
		return layout, fmt.Errorf("read layout: %w", err)
	}
	if err := toml.Unmarshal(data, &layout); err != nil {
		return layout, fmt.Errorf("parse %s: %w", path, err)
	}
	return layout, nil
}

// Saver debounces layout writes. Mark may be called from the event loop
// at pointer rate; the snapshot and write happen at most once per delay
// window, on a background timer.
type Saver struct {
	mu       sync.Mutex
	path     string
	delay    time.Duration
	snapshot func() Layout
	onError  func(error)
	pending  *time.Timer
	closed   bool
}

// NewSaver builds a debounced saver.
func NewSaver(path string, delay time.Duration, snapshot func() Layout, onError func(error)) *Saver {
	return &Saver{
		path:     path,
		delay:    delay,
		snapshot: snapshot,
		onError:  onError,
	}
}

// Mark schedules a save, resetting the debounce window.
func (s *Saver) Mark() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	if s.pending != nil {
		s.pending.Stop()
	}
	s.pending = time.AfterFunc(s.delay, s.flush)
}

// Close cancels any pending save and performs a final synchronous flush.
func (s *Saver) Close() {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.closed = true
	hadPending := s.pending != nil && s.pending.Stop()
	s.mu.Unlock()

	if hadPending {
		s.write()
	}
}

func (s *Saver) flush() {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.mu.Unlock()
	s.write()
}

func (s *Saver) write() {
	if err := Save(s.path, s.snapshot()); err != nil && s.onError != nil {
		s.onError(err)
	}
}

func zoneName(z geometry.Zone) string {
	if z == geometry.ZoneNone {
		return ""
	}
	return z.String()
}

func zoneByName(name string) geometry.Zone {
	for _, z := range []geometry.Zone{
		geometry.ZoneLeftHalf, geometry.ZoneRightHalf,
		geometry.ZoneTopHalf, geometry.ZoneBottomHalf,
		geometry.ZoneTopLeftQuarter, geometry.ZoneTopRightQuarter,
		geometry.ZoneBottomLeftQuarter, geometry.ZoneBottomRightQuarter,
		geometry.ZoneFullscreen,
	} {
		if z.String() == name {
			return z
		}
	}
	return geometry.ZoneNone
}

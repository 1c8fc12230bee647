package session

import (
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/christopherAlberts/storydesk/internal/geometry"
	"github.com/christopherAlberts/storydesk/internal/workspace"
)

func TestSnapshotRestoreRoundTrip(t *testing.T) {
	viewport := geometry.Size{Width: 1200, Height: 800}
	src := workspace.NewRegistry(viewport)

	a := src.Open(workspace.KindDocument, "Chapter 1")
	b := src.Open(workspace.KindStoryboard, "Board")
	c := src.Open(workspace.KindDatabase, "Cast")

	src.UpdatePosition(a, 50, 60)
	src.SnapToZone(b, geometry.ZoneRightHalf)
	src.Minimize(c)
	src.SetActive(a)

	layout := Snapshot(src)

	dst := workspace.NewRegistry(viewport)
	Restore(dst, layout)

	windows := dst.Windows()
	if len(windows) != 3 {
		t.Fatalf("restored %d windows, want 3", len(windows))
	}

	byTitle := map[string]*workspace.Window{}
	for _, w := range windows {
		byTitle[w.Title] = w
	}

	doc := byTitle["Chapter 1"]
	if doc == nil || doc.X != 50 || doc.Y != 60 {
		t.Errorf("document geometry not restored: %+v", doc)
	}
	if dst.ActiveID() != doc.ID {
		t.Errorf("active window not restored")
	}

	board := byTitle["Board"]
	if board == nil || !board.Snapped || board.SnapZone != geometry.ZoneRightHalf {
		t.Errorf("snap state not restored: %+v", board)
	}
	if board.Rect() != geometry.SnapRect(geometry.ZoneRightHalf, viewport) {
		t.Errorf("snapped geometry = %+v", board.Rect())
	}

	cast := byTitle["Cast"]
	if cast == nil || !cast.Minimized {
		t.Errorf("minimized state not restored: %+v", cast)
	}
}

func TestSnapshotRecordsPreFullscreenGeometry(t *testing.T) {
	viewport := geometry.Size{Width: 1200, Height: 800}
	src := workspace.NewRegistry(viewport)

	id := src.Open(workspace.KindDocument, "Chapter 1")
	src.UpdateSize(id, 600, 400)
	src.UpdatePosition(id, 100, 50)
	src.ToggleFullscreen(id)

	layout := Snapshot(src)
	if len(layout.Windows) != 1 {
		t.Fatalf("snapshot has %d windows, want 1", len(layout.Windows))
	}
	rec := layout.Windows[0]
	if rec.X != 100 || rec.Y != 50 || rec.Width != 600 || rec.Height != 400 {
		t.Errorf("record = %+v, want the pre-fullscreen geometry", rec)
	}

	dst := workspace.NewRegistry(geometry.Size{Width: 900, Height: 600})
	Restore(dst, layout)
	w := dst.Windows()[0]
	if w.Fullscreen {
		t.Error("restored window is fullscreen")
	}
	if w.Width != 600 || w.Height != 400 {
		t.Errorf("restored size = %dx%d, want 600x400", w.Width, w.Height)
	}
}

func TestRestoreReclampsToSmallerViewport(t *testing.T) {
	big := workspace.NewRegistry(geometry.Size{Width: 1200, Height: 800})
	id := big.Open(workspace.KindDocument, "Doc")
	big.UpdatePosition(id, 390, 190)

	layout := Snapshot(big)

	small := workspace.NewRegistry(geometry.Size{Width: 600, Height: 400})
	Restore(small, layout)

	w := small.Windows()[0]
	if w.X+w.Width > 600 || w.Y+w.Height > 400 {
		t.Errorf("restored window off-screen: %+v", w.Rect())
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "proj.toml")
	r := workspace.NewRegistry(geometry.Size{Width: 1200, Height: 800})
	r.Open(workspace.KindDocument, "Doc")
	r.Open(workspace.KindMapBuilder, "Map")

	if err := Save(path, Snapshot(r)); err != nil {
		t.Fatalf("Save: %v", err)
	}
	layout, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(layout.Windows) != 2 {
		t.Errorf("loaded %d windows, want 2", len(layout.Windows))
	}
}

func TestLoadMissingFile(t *testing.T) {
	layout, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(layout.Windows) != 0 {
		t.Errorf("expected empty layout, got %d windows", len(layout.Windows))
	}
}

func TestSaverDebounces(t *testing.T) {
	path := filepath.Join(t.TempDir(), "layout.toml")

	var mu sync.Mutex
	snapshots := 0
	saver := NewSaver(path, 30*time.Millisecond, func() Layout {
		mu.Lock()
		snapshots++
		mu.Unlock()
		return Layout{}
	}, func(err error) {
		t.Errorf("save error: %v", err)
	})

	// A burst of marks inside the window collapses to one write.
	for i := 0; i < 10; i++ {
		saver.Mark()
	}

	time.Sleep(100 * time.Millisecond)
	mu.Lock()
	got := snapshots
	mu.Unlock()
	if got != 1 {
		t.Errorf("snapshots = %d, want 1", got)
	}
	saver.Close()
}

func TestSaverCloseFlushesPending(t *testing.T) {
	path := filepath.Join(t.TempDir(), "layout.toml")

	var mu sync.Mutex
	snapshots := 0
	saver := NewSaver(path, time.Hour, func() Layout {
		mu.Lock()
		snapshots++
		mu.Unlock()
		return Layout{}
	}, nil)

	saver.Mark()
	saver.Close()

	mu.Lock()
	got := snapshots
	mu.Unlock()
	if got != 1 {
		t.Errorf("snapshots after Close = %d, want 1", got)
	}

	// Marks after Close are ignored.
	saver.Mark()
	time.Sleep(20 * time.Millisecond)
	mu.Lock()
	got = snapshots
	mu.Unlock()
	if got != 1 {
		t.Errorf("snapshots after post-Close Mark = %d, want 1", got)
	}
}

package app

import (
	"strings"
	"testing"
	"time"

	"github.com/christopherAlberts/storydesk/internal/config"
	"github.com/christopherAlberts/storydesk/internal/geometry"
	"github.com/christopherAlberts/storydesk/internal/workspace"
)

func TestUsableViewportReservesBars(t *testing.T) {
	d := newTestDesk(t)
	v := d.usableViewport()
	if v.Width != 120 || v.Height != 40 {
		t.Errorf("viewport = %dx%d, want 120x40", v.Width, v.Height)
	}
}

func TestHiddenStatusBarExpandsViewport(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Appearance.ShowStatusBar = false
	d := New(120, 42, cfg)

	if d.StatusOffset() != 0 {
		t.Errorf("StatusOffset() = %d, want 0", d.StatusOffset())
	}
	v := d.usableViewport()
	if v.Width != 120 || v.Height != 41 {
		t.Errorf("viewport = %dx%d, want 120x41", v.Width, v.Height)
	}

	d.OpenPanel(workspace.KindDocument)
	if out := d.GetCanvas().Render(); strings.Contains(out, " storydesk ") {
		t.Error("status bar rendered while hidden")
	}
}

func TestStatusBarRendersByDefault(t *testing.T) {
	d := newTestDesk(t)
	d.openTestWindow(t)
	if out := d.GetCanvas().Render(); !strings.Contains(out, " storydesk ") {
		t.Error("status bar missing from canvas")
	}
}

func TestWindowAtPicksTopmost(t *testing.T) {
	d := newTestDesk(t)
	a := d.openTestWindow(t)
	b := d.openTestWindow(t)

	// Both windows open centered and overlap fully.
	hit := d.WindowAt(a.X+5, a.Y+5)
	if hit == nil || hit.ID != b.ID {
		t.Fatalf("hit %v, want topmost window %s", hit, b.ID)
	}

	d.Registry.SetActive(a.ID)
	hit = d.WindowAt(a.X+5, a.Y+5)
	if hit == nil || hit.ID != a.ID {
		t.Errorf("hit %v after raise, want %s", hit, a.ID)
	}
}

func TestWindowAtIgnoresMinimized(t *testing.T) {
	d := newTestDesk(t)
	w := d.openTestWindow(t)
	d.Registry.Minimize(w.ID)
	if hit := d.WindowAt(w.X+1, w.Y+1); hit != nil {
		t.Errorf("hit minimized window %s", hit.ID)
	}
}

func TestRegionAtClassifiesFrame(t *testing.T) {
	d := newTestDesk(t)
	w := d.openTestWindow(t)

	cases := []struct {
		name string
		x, y int
		want Region
	}{
		{"header", w.X + 2, w.Y, RegionHeader},
		{"content", w.X + 5, w.Y + 3, RegionContent},
		{"left border", w.X, w.Y + 3, RegionBorder},
		{"right border", w.X + w.Width - 1, w.Y + 3, RegionBorder},
		{"bottom border", w.X + 5, w.Y + w.Height - 1, RegionBorder},
		{"outside", w.X - 1, w.Y, RegionNone},
	}
	for _, tc := range cases {
		if got := d.RegionAt(w, tc.x, tc.y); got != tc.want {
			t.Errorf("%s: region = %v, want %v", tc.name, got, tc.want)
		}
	}
}

func TestHeaderButtons(t *testing.T) {
	d := newTestDesk(t)
	w := d.openTestWindow(t)

	blockStart := w.X + w.Width - 1 - buttonBlockWidth
	if got := d.RegionAt(w, blockStart+2, w.Y); got != RegionButtonMinimize {
		t.Errorf("minimize cell = %v", got)
	}
	if got := d.RegionAt(w, blockStart+5, w.Y); got != RegionButtonMaximize {
		t.Errorf("maximize cell = %v", got)
	}
	if got := d.RegionAt(w, blockStart+8, w.Y); got != RegionButtonClose {
		t.Errorf("close cell = %v", got)
	}
	if got := d.RegionAt(w, w.X+1, w.Y); got != RegionHeader {
		t.Errorf("title cell = %v, want header", got)
	}
}

func TestHandleForPoint(t *testing.T) {
	d := newTestDesk(t)
	w := d.openTestWindow(t)

	cases := []struct {
		name string
		x, y int
		want ResizeHandle
	}{
		{"nw", w.X, w.Y, HandleNW},
		{"ne", w.X + w.Width - 1, w.Y, HandleNE},
		{"sw", w.X, w.Y + w.Height - 1, HandleSW},
		{"se", w.X + w.Width - 1, w.Y + w.Height - 1, HandleSE},
		{"w", w.X, w.Y + 5, HandleW},
		{"e", w.X + w.Width - 1, w.Y + 5, HandleE},
		{"n", w.X + 5, w.Y, HandleN},
		{"s", w.X + 5, w.Y + w.Height - 1, HandleS},
		{"interior", w.X + 5, w.Y + 5, HandleNone},
	}
	for _, tc := range cases {
		if got := HandleForPoint(w, tc.x, tc.y); got != tc.want {
			t.Errorf("%s: handle = %v, want %v", tc.name, got, tc.want)
		}
	}
}

func TestDockLayoutAndClicks(t *testing.T) {
	d := newTestDesk(t)
	a := d.openTestWindow(t)
	b := d.openTestWindow(t)
	d.Registry.Minimize(a.ID)
	d.Registry.Minimize(b.ID)

	chips := d.DockLayout()
	if len(chips) != 2 {
		t.Fatalf("chips = %d, want 2", len(chips))
	}
	if chips[0].EndX > chips[1].StartX {
		t.Error("chips overlap")
	}

	hit := d.DockChipAt(chips[1].StartX + 1)
	if hit == nil || hit.WindowID != b.ID {
		t.Fatalf("chip click hit %v, want %s", hit, b.ID)
	}
	if d.DockChipAt(chips[1].EndX+5) != nil {
		t.Error("click past chips hit something")
	}
}

func TestDockSeparatesChipsAndDimsCount(t *testing.T) {
	d := newTestDesk(t)
	a := d.openTestWindow(t)
	b := d.openTestWindow(t)
	d.Registry.Minimize(a.ID)
	d.Registry.Minimize(b.ID)

	out := d.GetCanvas().Render()
	if !strings.Contains(out, "│") {
		t.Error("no separator between dock chips")
	}
	if !strings.Contains(out, " 0 window(s) ") {
		t.Error("window count missing from dock")
	}
}

func TestCycleSkipsMinimized(t *testing.T) {
	d := newTestDesk(t)
	a := d.openTestWindow(t)
	b := d.openTestWindow(t)
	c := d.openTestWindow(t)
	d.Registry.Minimize(b.ID)

	d.Registry.SetActive(a.ID)
	d.CycleNextWindow()
	if d.Registry.ActiveID() != c.ID {
		t.Errorf("active = %s, want %s", d.Registry.ActiveID(), c.ID)
	}
	d.CycleNextWindow()
	if d.Registry.ActiveID() != a.ID {
		t.Errorf("active = %s, want wraparound to %s", d.Registry.ActiveID(), a.ID)
	}
	d.CyclePrevWindow()
	if d.Registry.ActiveID() != c.ID {
		t.Errorf("active = %s after prev, want %s", d.Registry.ActiveID(), c.ID)
	}
}

func TestRestoreAll(t *testing.T) {
	d := newTestDesk(t)
	a := d.openTestWindow(t)
	b := d.openTestWindow(t)
	d.Registry.Minimize(a.ID)
	d.Registry.Minimize(b.ID)

	d.RestoreAll()
	for _, w := range d.Registry.Windows() {
		if w.Minimized {
			t.Errorf("window %s still minimized", w.ID)
		}
	}
}

func TestNotificationsExpire(t *testing.T) {
	d := newTestDesk(t)
	d.ShowNotification("saved", "success", 10*time.Millisecond)
	if len(d.Notifications) != 1 {
		t.Fatalf("notifications = %d, want 1", len(d.Notifications))
	}

	d.Notifications[0].StartTime = time.Now().Add(-time.Second)
	d.CleanupNotifications()
	if len(d.Notifications) != 0 {
		t.Errorf("notifications = %d after expiry, want 0", len(d.Notifications))
	}
}

func TestLogRingCaps(t *testing.T) {
	d := newTestDesk(t)
	for i := 0; i < MaxLogMessages+50; i++ {
		d.LogInfo("entry %d", i)
	}
	if len(d.LogMessages) != MaxLogMessages {
		t.Errorf("log ring = %d, want %d", len(d.LogMessages), MaxLogMessages)
	}
	last := d.LogMessages[len(d.LogMessages)-1].Message
	if last != "entry 249" {
		t.Errorf("last entry = %q", last)
	}
}

func TestResizeRederivesLayout(t *testing.T) {
	d := newTestDesk(t)
	w := d.openTestWindow(t)
	d.SnapWindow(w.ID, geometry.ZoneRightHalf)

	d.Resize(80, 30)
	if v := d.Registry.Viewport(); v.Width != 80 || v.Height != 28 {
		t.Fatalf("viewport = %+v after resize", v)
	}
	if w.X != 40 || w.Width != 40 || w.Height != 28 {
		t.Errorf("snapped window = %+v, want right half of 80x28", w.Rect())
	}
}

func TestOpenPanelTitles(t *testing.T) {
	d := newTestDesk(t)
	id := d.OpenPanel(workspace.KindStoryboard)
	w := d.Registry.Window(id)
	if w.Title == "" || w.Kind != workspace.KindStoryboard {
		t.Errorf("window = %+v", w)
	}
}

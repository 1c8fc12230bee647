// Package app holds the desk model: the window registry, the pointer
// interaction state machine, the snap preview, and the overlays that make
// up a storydesk session.
package app

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/christopherAlberts/storydesk/internal/config"
	"github.com/christopherAlberts/storydesk/internal/geometry"
	"github.com/christopherAlberts/storydesk/internal/panel"
	"github.com/christopherAlberts/storydesk/internal/session"
	"github.com/christopherAlberts/storydesk/internal/ui"
	"github.com/christopherAlberts/storydesk/internal/workspace"
)

const (
	// DockHeight is the single reserved row at the bottom of the screen.
	DockHeight = 1
	// StatusHeight is the status bar row at the top.
	StatusHeight = 1

	// MinWindowWidth and MinWindowHeight are the smallest cell dimensions
	// a window frame can take and still draw a border plus one content
	// cell.
	MinWindowWidth  = 20
	MinWindowHeight = 6

	// MaxLogMessages bounds the in-memory log ring.
	MaxLogMessages = 200

	// NotificationDuration is how long a toast stays visible.
	NotificationDuration = 3 * time.Second

	// doublePressWindow is the maximum gap between two header presses
	// for them to count as a double press.
	doublePressWindow = 400 * time.Millisecond
)

// InteractionState is the pointer gesture state machine.
type InteractionState int

const (
	// StateIdle means no gesture is active.
	StateIdle InteractionState = iota
	// StateDragging means a header drag is moving a window.
	StateDragging
	// StateResizing means a border drag is resizing a window.
	StateResizing
)

// ResizeHandle identifies which window edge or corner a resize grabbed.
type ResizeHandle int

const (
	HandleNone ResizeHandle = iota
	HandleN
	HandleS
	HandleE
	HandleW
	HandleNE
	HandleNW
	HandleSE
	HandleSW
)

// Desk is the top-level model driven by the event loop.
type Desk struct {
	Registry *workspace.Registry
	Config   *config.Config
	Keybinds *config.KeybindRegistry

	Width  int
	Height int

	// Pointer gesture state.
	State         InteractionState
	ResizeHandle  ResizeHandle
	GestureID     string
	DragOffsetX   int
	DragOffsetY   int
	ResizeStartX  int
	ResizeStartY  int
	PreResizeRect geometry.Rect
	PendingZone   geometry.Zone

	// InteractionMode suppresses expensive content refreshes while a
	// gesture is active.
	InteractionMode bool

	lastHeaderPressID string
	lastHeaderPress   time.Time

	Preview  ui.SnapPreview
	Animator *ui.Animator

	RenamingWindow bool
	RenameBuffer   string

	// LeaderActive is set after the leader key, so the next key is
	// resolved as an action.
	LeaderActive bool

	ShowHelp         bool
	HelpScrollOffset int
	ShowLogs         bool
	LogScrollOffset  int
	ShowQuitConfirm  bool

	Notifications []Notification
	LogMessages   []LogMessage

	// System info for the status bar.
	CPUHistory    []float64
	LastCPUUpdate time.Time
	RAMUsage      float64
	LastRAMUpdate time.Time

	Saver *session.Saver

	// PendingLayout is a saved session waiting for the first terminal
	// size report before it can be restored.
	PendingLayout *session.Layout
}

// Notification is a temporary toast message.
type Notification struct {
	ID        string
	Message   string
	Type      string // "info", "success", "warning", "error"
	StartTime time.Time
	Duration  time.Duration
}

// LogMessage is one entry in the log overlay's ring.
type LogMessage struct {
	Time    time.Time
	Level   string
	Message string
}

// New builds a desk for the given screen size and configuration.
func New(width, height int, cfg *config.Config) *Desk {
	d := &Desk{
		Config:   cfg,
		Keybinds: config.NewKeybindRegistry(cfg),
		Width:    width,
		Height:   height,
		Animator: ui.NewAnimator(),
	}
	config.SetAnimationDuration(cfg.Snapping.AnimationDurationMS)
	d.Preview.Opacity = cfg.Snapping.PreviewOpacity

	viewport := d.usableViewport()
	d.Registry = workspace.NewRegistry(viewport,
		workspace.WithConstraints(geometry.Constraints{
			MinWidth:  MinWindowWidth,
			MinHeight: MinWindowHeight,
			Viewport:  viewport,
		}),
		workspace.WithDefaultSize(defaultWindowSize(viewport)),
		workspace.WithSnapSettings(workspace.SnapSettings{
			Enabled:   cfg.Snapping.Enabled,
			Threshold: cfg.Snapping.Threshold,
		}),
		workspace.WithOnChange(d.markDirty),
	)
	return d
}

// defaultWindowSize opens new windows at half the viewport, floored at
// the minimum so tiny screens still get usable windows.
func defaultWindowSize(viewport geometry.Size) geometry.Size {
	return geometry.Size{
		Width:  max(viewport.Width/2, MinWindowWidth),
		Height: max(viewport.Height/2, MinWindowHeight),
	}
}

// StatusOffset is the number of rows the status bar occupies at the top
// of the screen, zero when it is hidden. Window and pointer coordinates
// shift down by this much.
func (d *Desk) StatusOffset() int {
	if d.Config.Appearance.ShowStatusBar {
		return StatusHeight
	}
	return 0
}

// usableViewport is the window area: full screen minus status bar and
// dock. Window coordinates are relative to this region.
func (d *Desk) usableViewport() geometry.Size {
	return geometry.Size{
		Width:  d.Width,
		Height: max(d.Height-DockHeight-d.StatusOffset(), 1),
	}
}

// Resize handles a terminal size change. The first real size report
// also restores any pending saved session.
func (d *Desk) Resize(width, height int) {
	d.Width = width
	d.Height = height
	d.Registry.SetViewport(d.usableViewport())
	if d.PendingLayout != nil && width > 0 && height > 2 {
		layout := *d.PendingLayout
		d.PendingLayout = nil
		session.Restore(d.Registry, layout)
		if n := len(layout.Windows); n > 0 {
			d.LogInfo("restored %d window(s) from the last session", n)
		}
	}
	if d.Preview.Visible {
		d.Preview.Set(d.Preview.Zone, d.Registry.Viewport())
	}
}

// OpenPanel opens a window hosting the given panel kind.
func (d *Desk) OpenPanel(kind workspace.Kind) string {
	title := panel.Titles[kind]
	if title == "" {
		title = string(kind)
	}
	id := d.Registry.Open(kind, title)
	d.LogInfo("opened %s window %s", kind, shortID(id))
	return id
}

// CloseWindow closes a window, cancelling any animation it had.
func (d *Desk) CloseWindow(id string) {
	d.Animator.Cancel(id)
	if d.GestureID == id {
		d.AbortGesture()
	}
	d.Registry.Close(id)
}

// ApplyConfig swaps in a reloaded configuration. The viewport is
// re-derived because show_status_bar changes the usable area.
func (d *Desk) ApplyConfig(cfg *config.Config) {
	d.Config = cfg
	d.Keybinds = config.NewKeybindRegistry(cfg)
	config.SetAnimationDuration(cfg.Snapping.AnimationDurationMS)
	d.Preview.Opacity = cfg.Snapping.PreviewOpacity
	d.Registry.SetSnap(workspace.SnapSettings{
		Enabled:   cfg.Snapping.Enabled,
		Threshold: cfg.Snapping.Threshold,
	})
	d.Registry.SetViewport(d.usableViewport())
	d.ShowNotification("configuration reloaded", "info", NotificationDuration)
}

// ToggleSnapping flips the master snap switch.
func (d *Desk) ToggleSnapping() {
	s := d.Registry.Snap()
	s.Enabled = !s.Enabled
	d.Registry.SetSnap(s)
	if s.Enabled {
		d.ShowNotification("snapping enabled", "info", NotificationDuration)
	} else {
		d.Preview.Clear()
		d.PendingZone = geometry.ZoneNone
		d.ShowNotification("snapping disabled", "info", NotificationDuration)
	}
}

// markDirty is the registry change hook; it schedules a debounced
// session save when persistence is wired.
func (d *Desk) markDirty() {
	if d.Saver != nil {
		d.Saver.Mark()
	}
}

// Log appends to the log ring, dropping the oldest entries past the cap.
func (d *Desk) Log(level, format string, args ...any) {
	d.LogMessages = append(d.LogMessages, LogMessage{
		Time:    time.Now(),
		Level:   level,
		Message: fmt.Sprintf(format, args...),
	})
	if len(d.LogMessages) > MaxLogMessages {
		d.LogMessages = d.LogMessages[len(d.LogMessages)-MaxLogMessages:]
	}
}

// LogInfo logs an informational message.
func (d *Desk) LogInfo(format string, args ...any) {
	d.Log("INFO", format, args...)
}

// LogWarn logs a warning message.
func (d *Desk) LogWarn(format string, args ...any) {
	d.Log("WARN", format, args...)
}

// LogError logs an error message.
func (d *Desk) LogError(format string, args ...any) {
	d.Log("ERROR", format, args...)
}

// ShowNotification displays a temporary toast and mirrors it to the log.
func (d *Desk) ShowNotification(message, notifType string, duration time.Duration) {
	d.Notifications = append(d.Notifications, Notification{
		ID:        uuid.NewString(),
		Message:   message,
		Type:      notifType,
		StartTime: time.Now(),
		Duration:  duration,
	})

	switch notifType {
	case "error":
		d.LogError("%s", message)
	case "warning":
		d.LogWarn("%s", message)
	default:
		d.LogInfo("%s", message)
	}
}

// CleanupNotifications removes expired toasts.
func (d *Desk) CleanupNotifications() {
	now := time.Now()
	var active []Notification
	for _, n := range d.Notifications {
		if now.Sub(n.StartTime) < n.Duration {
			active = append(active, n)
		}
	}
	d.Notifications = active
}

// CycleNextWindow focuses the next non-minimized window in list order.
func (d *Desk) CycleNextWindow() {
	d.cycleWindow(1)
}

// CyclePrevWindow focuses the previous non-minimized window.
func (d *Desk) CyclePrevWindow() {
	d.cycleWindow(-1)
}

func (d *Desk) cycleWindow(step int) {
	windows := d.Registry.Windows()
	visible := make([]string, 0, len(windows))
	current := -1
	for _, w := range windows {
		if w.Minimized {
			continue
		}
		if w.ID == d.Registry.ActiveID() {
			current = len(visible)
		}
		visible = append(visible, w.ID)
	}
	if len(visible) == 0 {
		return
	}
	next := 0
	if current >= 0 {
		next = (current + step + len(visible)) % len(visible)
	}
	d.Registry.SetActive(visible[next])
}

// RestoreAll brings every minimized window back.
func (d *Desk) RestoreAll() {
	for _, w := range d.Registry.Windows() {
		if w.Minimized {
			d.Registry.Restore(w.ID)
		}
	}
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

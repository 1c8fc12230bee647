// Package input translates keyboard and mouse events into desk
// operations.
package input

import (
	tea "charm.land/bubbletea/v2"

	"github.com/christopherAlberts/storydesk/internal/app"
	"github.com/christopherAlberts/storydesk/internal/geometry"
	"github.com/christopherAlberts/storydesk/internal/workspace"
)

// ActionHandler handles one named action.
type ActionHandler func(d *app.Desk) tea.Cmd

// ActionDispatcher maps action names from the keybinding config to
// handler functions.
type ActionDispatcher struct {
	handlers map[string]ActionHandler
}

// NewActionDispatcher registers every bindable action.
func NewActionDispatcher() *ActionDispatcher {
	disp := &ActionDispatcher{handlers: make(map[string]ActionHandler)}
	disp.registerHandlers()
	return disp
}

// Register binds an action name to its handler.
func (disp *ActionDispatcher) Register(action string, handler ActionHandler) {
	disp.handlers[action] = handler
}

// Dispatch runs the handler for an action. Unknown actions report false.
func (disp *ActionDispatcher) Dispatch(action string, d *app.Desk) (tea.Cmd, bool) {
	handler, ok := disp.handlers[action]
	if !ok {
		return nil, false
	}
	return handler(d), true
}

func (disp *ActionDispatcher) registerHandlers() {
	disp.Register("close_window", handleCloseWindow)
	disp.Register("rename_window", handleRenameWindow)
	disp.Register("minimize_window", handleMinimizeWindow)
	disp.Register("restore_all", handleRestoreAll)
	disp.Register("next_window", handleNextWindow)
	disp.Register("prev_window", handlePrevWindow)
	disp.Register("toggle_fullscreen", handleToggleFullscreen)
	disp.Register("toggle_help", handleToggleHelp)
	disp.Register("quit", handleQuit)

	disp.Register("snap_left", makeSnapHandler(geometry.ZoneLeftHalf))
	disp.Register("snap_right", makeSnapHandler(geometry.ZoneRightHalf))
	disp.Register("snap_top", makeSnapHandler(geometry.ZoneTopHalf))
	disp.Register("snap_bottom", makeSnapHandler(geometry.ZoneBottomHalf))
	disp.Register("snap_top_left", makeSnapHandler(geometry.ZoneTopLeftQuarter))
	disp.Register("snap_top_right", makeSnapHandler(geometry.ZoneTopRightQuarter))
	disp.Register("snap_bottom_left", makeSnapHandler(geometry.ZoneBottomLeftQuarter))
	disp.Register("snap_bottom_right", makeSnapHandler(geometry.ZoneBottomRightQuarter))
	disp.Register("unsnap", handleUnsnap)
	disp.Register("toggle_snapping", handleToggleSnapping)

	disp.Register("open_document", makeOpenPanelHandler(workspace.KindDocument))
	disp.Register("open_storyboard", makeOpenPanelHandler(workspace.KindStoryboard))
	disp.Register("open_database", makeOpenPanelHandler(workspace.KindDatabase))
	disp.Register("open_map", makeOpenPanelHandler(workspace.KindMapBuilder))
	disp.Register("open_settings", makeOpenPanelHandler(workspace.KindSettings))
	disp.Register("open_project_files", makeOpenPanelHandler(workspace.KindProjectFiles))
}

func handleCloseWindow(d *app.Desk) tea.Cmd {
	if id := d.Registry.ActiveID(); id != "" {
		d.CloseWindow(id)
	}
	return nil
}

func handleRenameWindow(d *app.Desk) tea.Cmd {
	w := d.Registry.Active()
	if w == nil {
		return nil
	}
	d.RenamingWindow = true
	d.RenameBuffer = w.Title
	return nil
}

func handleMinimizeWindow(d *app.Desk) tea.Cmd {
	if id := d.Registry.ActiveID(); id != "" {
		d.MinimizeWindow(id)
	}
	return nil
}

func handleRestoreAll(d *app.Desk) tea.Cmd {
	d.RestoreAll()
	return nil
}

func handleNextWindow(d *app.Desk) tea.Cmd {
	d.CycleNextWindow()
	return nil
}

func handlePrevWindow(d *app.Desk) tea.Cmd {
	d.CyclePrevWindow()
	return nil
}

func handleToggleFullscreen(d *app.Desk) tea.Cmd {
	if id := d.Registry.ActiveID(); id != "" {
		d.ToggleFullscreenWindow(id)
	}
	return nil
}

func handleToggleHelp(d *app.Desk) tea.Cmd {
	d.ShowHelp = !d.ShowHelp
	d.HelpScrollOffset = 0
	return nil
}

func handleQuit(d *app.Desk) tea.Cmd {
	d.ShowQuitConfirm = true
	return nil
}

func makeSnapHandler(zone geometry.Zone) ActionHandler {
	return func(d *app.Desk) tea.Cmd {
		if id := d.Registry.ActiveID(); id != "" {
			d.SnapWindow(id, zone)
		}
		return nil
	}
}

func handleUnsnap(d *app.Desk) tea.Cmd {
	if id := d.Registry.ActiveID(); id != "" {
		d.Registry.Unsnap(id)
	}
	return nil
}

func handleToggleSnapping(d *app.Desk) tea.Cmd {
	d.ToggleSnapping()
	return nil
}

func makeOpenPanelHandler(kind workspace.Kind) ActionHandler {
	return func(d *app.Desk) tea.Cmd {
		d.OpenPanel(kind)
		return nil
	}
}

package app

import (
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/christopherAlberts/storydesk/internal/config"
)

// TickerMsg is the periodic tick driving animations and status updates.
type TickerMsg time.Time

// ConfigReloadMsg carries a freshly reloaded configuration from the
// file watcher.
type ConfigReloadMsg struct {
	Config *config.Config
}

// InputHandler handles keyboard and mouse messages. The concrete handler
// lives in the input package and is registered at startup, which keeps
// the app and input packages from importing each other.
type InputHandler func(msg tea.Msg, d *Desk) (tea.Model, tea.Cmd)

var inputHandler InputHandler

// SetInputHandler registers the input handler. Must be called before the
// update loop runs.
func SetInputHandler(handler InputHandler) {
	inputHandler = handler
}

// Init starts the tick timer.
func (d *Desk) Init() tea.Cmd {
	return TickCmd()
}

// TickCmd ticks at the normal refresh rate.
func TickCmd() tea.Cmd {
	return tea.Tick(time.Second/config.NormalFPS, func(t time.Time) tea.Msg {
		return TickerMsg(t)
	})
}

// SlowTickCmd ticks at the reduced rate used during gestures.
func SlowTickCmd() tea.Cmd {
	return tea.Tick(time.Second/config.InteractionFPS, func(t time.Time) tea.Msg {
		return TickerMsg(t)
	})
}

// Update processes timer, resize, and config messages itself and hands
// everything else to the registered input handler.
func (d *Desk) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case TickerMsg:
		d.StepAnimations(time.Time(msg))
		d.UpdateCPUHistory()
		d.UpdateRAMUsage()
		d.CleanupNotifications()

		if d.InteractionMode {
			return d, SlowTickCmd()
		}
		return d, TickCmd()

	case tea.WindowSizeMsg:
		d.Resize(msg.Width, msg.Height)
		return d, nil

	case ConfigReloadMsg:
		d.ApplyConfig(msg.Config)
		return d, nil
	}

	if inputHandler != nil {
		return inputHandler(msg, d)
	}
	return d, nil
}

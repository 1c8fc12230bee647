package input

import (
	tea "charm.land/bubbletea/v2"

	"github.com/christopherAlberts/storydesk/internal/app"
)

var dispatcher = NewActionDispatcher()

// HandleKey routes a key press through the overlay states, the leader
// prefix, and finally the action dispatcher.
func HandleKey(msg tea.KeyPressMsg, d *app.Desk) (tea.Model, tea.Cmd) {
	key := msg.String()

	if d.ShowQuitConfirm {
		return handleQuitConfirmKey(key, d)
	}
	if d.RenamingWindow {
		return handleRenameKey(msg, d)
	}
	if d.ShowHelp {
		return handleHelpKey(key, d)
	}
	if d.ShowLogs {
		return handleLogKey(key, d)
	}

	if d.LeaderActive {
		d.LeaderActive = false
		if action := d.Keybinds.GetAction(key); action != "" {
			cmd, _ := dispatcher.Dispatch(action, d)
			return d, cmd
		}
		return d, nil
	}

	switch key {
	case d.Config.Keybindings.LeaderKey:
		d.LeaderActive = true
	case "ctrl+c":
		d.ShowQuitConfirm = true
	case "ctrl+l":
		d.ShowLogs = true
		d.LogScrollOffset = 0
	case "?":
		d.ShowHelp = true
		d.HelpScrollOffset = 0
	}
	return d, nil
}

func handleQuitConfirmKey(key string, d *app.Desk) (tea.Model, tea.Cmd) {
	switch key {
	case "y", "enter":
		return d, tea.Quit
	default:
		d.ShowQuitConfirm = false
		return d, nil
	}
}

func handleRenameKey(msg tea.KeyPressMsg, d *app.Desk) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		if w := d.Registry.Active(); w != nil && d.RenameBuffer != "" {
			d.Registry.Rename(w.ID, d.RenameBuffer)
		}
		d.RenamingWindow = false
		d.RenameBuffer = ""
	case "esc":
		d.RenamingWindow = false
		d.RenameBuffer = ""
	case "backspace":
		if len(d.RenameBuffer) > 0 {
			runes := []rune(d.RenameBuffer)
			d.RenameBuffer = string(runes[:len(runes)-1])
		}
	case "space":
		d.RenameBuffer += " "
	default:
		key := msg.String()
		if len(key) == 1 && key[0] >= 32 && key[0] <= 126 {
			d.RenameBuffer += key
		}
	}
	return d, nil
}

func handleHelpKey(key string, d *app.Desk) (tea.Model, tea.Cmd) {
	switch key {
	case "esc", "q", "?":
		d.ShowHelp = false
	case "up", "k":
		if d.HelpScrollOffset > 0 {
			d.HelpScrollOffset--
		}
	case "down", "j":
		d.HelpScrollOffset++
	}
	return d, nil
}

func handleLogKey(key string, d *app.Desk) (tea.Model, tea.Cmd) {
	switch key {
	case "esc", "q", "ctrl+l":
		d.ShowLogs = false
	case "up", "k":
		d.LogScrollOffset++
	case "down", "j":
		if d.LogScrollOffset > 0 {
			d.LogScrollOffset--
		}
	}
	return d, nil
}

package input

import (
	tea "charm.land/bubbletea/v2"

	"github.com/christopherAlberts/storydesk/internal/app"
)

// Handle is the desk's input entry point, registered via
// app.SetInputHandler at startup.
func Handle(msg tea.Msg, d *app.Desk) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyPressMsg:
		return HandleKey(msg, d)
	case tea.MouseClickMsg:
		return HandleMouseClick(msg, d)
	case tea.MouseMotionMsg:
		return HandleMouseMotion(msg, d)
	case tea.MouseReleaseMsg:
		return HandleMouseRelease(msg, d)
	case tea.MouseWheelMsg:
		return HandleMouseWheel(msg, d)
	}
	return d, nil
}

package app

import (
	"fmt"
	"image/color"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/christopherAlberts/storydesk/internal/config"
	"github.com/christopherAlberts/storydesk/internal/panel"
	"github.com/christopherAlberts/storydesk/internal/theme"
	"github.com/christopherAlberts/storydesk/internal/workspace"
)

// Layer z-order bands. Windows use their registry Z below these.
const (
	zIndexPreview = 9000
	zIndexDock    = 9500
	zIndexOverlay = 10000
)

func (d *Desk) border() lipgloss.Border {
	switch d.Config.Appearance.BorderStyle {
	case "normal":
		return lipgloss.NormalBorder()
	case "thick":
		return lipgloss.ThickBorder()
	case "double":
		return lipgloss.DoubleBorder()
	default:
		return lipgloss.RoundedBorder()
	}
}

// View renders the whole desk.
func (d *Desk) View() tea.View {
	var view tea.View

	view.SetContent(lipgloss.Sprint(d.GetCanvas().Render()))
	view.AltScreen = true
	view.MouseMode = tea.MouseModeAllMotion

	return view
}

// GetCanvas composes the desk into layers: windows in registry Z order,
// then the snap preview, dock, status bar, and overlays above them.
func (d *Desk) GetCanvas() *lipgloss.Canvas {
	canvas := lipgloss.NewCanvas()
	var layers []*lipgloss.Layer

	windows := d.Registry.Windows()
	for _, w := range windows {
		if w.Minimized {
			continue
		}
		frame := d.renderWindow(w)
		layers = append(layers, lipgloss.NewLayer(frame).
			X(w.X).
			Y(w.Y + d.StatusOffset()).
			Z(w.Z).
			ID(w.ID))
	}

	if preview := d.Preview.Render(); preview != "" {
		layers = append(layers, lipgloss.NewLayer(preview).
			X(d.Preview.Rect.X).
			Y(d.Preview.Rect.Y+d.StatusOffset()).
			Z(zIndexPreview).
			ID("snap-preview"))
	}

	if len(windows) == 0 {
		layers = append(layers, d.renderWelcome())
	}

	if d.Config.Appearance.ShowStatusBar {
		layers = append(layers, d.renderStatusBar())
	}
	layers = append(layers, d.renderDock())
	layers = append(layers, d.renderOverlays()...)

	canvas.AddLayers(layers...)
	return canvas
}

func (d *Desk) renderWindow(w *workspace.Window) string {
	focused := w.ID == d.Registry.ActiveID()

	var borderColor color.Color
	switch {
	case focused:
		borderColor = theme.BorderFocused()
	case w.Snapped:
		borderColor = theme.BorderSnapped()
	default:
		borderColor = theme.BorderUnfocused()
	}

	innerWidth := max(w.Width-2, 1)
	innerHeight := max(w.Height-2, 1)
	content := panel.For(w.Kind).View(innerWidth, innerHeight)

	body := lipgloss.NewStyle().
		Align(lipgloss.Left).
		AlignVertical(lipgloss.Top).
		Border(d.border()).
		BorderTop(false).
		BorderForeground(borderColor).
		Width(innerWidth).
		Height(innerHeight).
		Render(content)

	return d.headerLine(w, borderColor, focused) + "\n" + body
}

// headerLine draws the top border with the title on the left and the
// minimize, maximize, and close buttons on the right. The button cells
// line up with headerButtonAt.
func (d *Desk) headerLine(w *workspace.Window, borderColor color.Color, focused bool) string {
	b := d.border()
	edge := lipgloss.NewStyle().Foreground(borderColor)

	title := w.Title
	if d.RenamingWindow && focused {
		title = d.RenameBuffer + "_"
	}

	buttons := ""
	buttonsWidth := 0
	if w.Width >= buttonBlockWidth+4 {
		btn := lipgloss.NewStyle().
			Background(borderColor).
			Foreground(theme.ButtonFg())
		buttons = edge.Render("") +
			btn.Render(" ─ ") + btn.Render(" □ ") + btn.Render(" ✕ ") +
			edge.Render("")
		buttonsWidth = buttonBlockWidth
	}

	// Space for the corners, one fill cell each side of the title, and
	// the button block.
	maxTitle := w.Width - 4 - buttonsWidth
	if len([]rune(title)) > maxTitle {
		if maxTitle > 1 {
			title = string([]rune(title)[:maxTitle-1]) + "…"
		} else {
			title = ""
		}
	}

	titleStyle := lipgloss.NewStyle().Foreground(borderColor)
	if focused {
		titleStyle = titleStyle.Bold(true)
	}

	fill := w.Width - 2 - buttonsWidth - len([]rune(title))
	if title != "" {
		fill -= 2
	}
	if fill < 0 {
		fill = 0
	}

	var sb strings.Builder
	sb.WriteString(edge.Render(b.TopLeft))
	if title != "" {
		sb.WriteString(edge.Render(b.Top))
		sb.WriteString(titleStyle.Render(title))
		sb.WriteString(edge.Render(b.Top))
	}
	sb.WriteString(edge.Render(strings.Repeat(b.Top, fill)))
	sb.WriteString(buttons)
	sb.WriteString(edge.Render(b.TopRight))
	return sb.String()
}

func (d *Desk) renderStatusBar() *lipgloss.Layer {
	bar := lipgloss.NewStyle().
		Background(theme.StatusBarBg()).
		Foreground(theme.StatusBarFg())
	accent := lipgloss.NewStyle().
		Background(theme.StatusBarBg()).
		Foreground(theme.StatusAccent()).
		Bold(true)

	left := accent.Render(" storydesk ")
	if w := d.Registry.Active(); w != nil {
		left += bar.Render("· " + w.Title + " ")
	}

	snapLabel := "snap off"
	if d.Registry.Snap().Enabled {
		snapLabel = "snap on"
	}
	right := bar.Render(fmt.Sprintf("%s  %s %3.0f%%  mem %3.0f%%  %s ",
		snapLabel,
		d.GetCPUGraph(),
		d.CurrentCPU(),
		d.RAMUsage,
		time.Now().Format("15:04"),
	))

	pad := d.Width - lipgloss.Width(left) - lipgloss.Width(right)
	if pad < 0 {
		pad = 0
	}
	line := left + bar.Render(strings.Repeat(" ", pad)) + right

	return lipgloss.NewLayer(line).X(0).Y(0).Z(zIndexOverlay).ID("status-bar")
}

func (d *Desk) renderDock() *lipgloss.Layer {
	bg := lipgloss.NewStyle().
		Background(theme.DockBg()).
		Foreground(theme.DockFg())
	chipStyle := lipgloss.NewStyle().
		Background(theme.DockBg()).
		Foreground(theme.DockHighlight())
	sep := lipgloss.NewStyle().
		Background(theme.DockBg()).
		Foreground(theme.DockSeparator())
	dimmed := lipgloss.NewStyle().
		Background(theme.DockBg()).
		Foreground(theme.DockDimmed())

	chips := d.DockLayout()
	var sb strings.Builder
	x := 0
	for i, chip := range chips {
		if gap := chip.StartX - x; gap > 0 {
			// The single cell between chips draws as a separator; wider
			// gaps (and the left margin) stay blank.
			if i > 0 {
				sb.WriteString(sep.Render("│"))
				gap--
			}
			if gap > 0 {
				sb.WriteString(bg.Render(strings.Repeat(" ", gap)))
			}
		}
		sb.WriteString(chipStyle.Render(chip.Label))
		x = chip.EndX
	}

	count := 0
	for _, w := range d.Registry.Windows() {
		if !w.Minimized {
			count++
		}
	}
	right := dimmed.Render(fmt.Sprintf(" %d window(s) ", count))

	pad := d.Width - x - lipgloss.Width(right)
	if pad < 0 {
		pad = 0
	}
	sb.WriteString(bg.Render(strings.Repeat(" ", pad)))
	sb.WriteString(right)

	return lipgloss.NewLayer(sb.String()).
		X(0).
		Y(d.Height - DockHeight).
		Z(zIndexDock).
		ID("dock")
}

func (d *Desk) renderOverlays() []*lipgloss.Layer {
	var layers []*lipgloss.Layer

	if d.ShowHelp {
		layers = append(layers, d.renderHelp())
	}
	if d.ShowLogs {
		layers = append(layers, d.renderLogViewer())
	}
	if d.ShowQuitConfirm {
		layers = append(layers, d.renderQuitConfirm())
	}
	layers = append(layers, d.renderNotifications()...)
	return layers
}

func (d *Desk) renderNotifications() []*lipgloss.Layer {
	var layers []*lipgloss.Layer
	y := d.StatusOffset() + 1
	for i, n := range d.Notifications {
		var border color.Color
		switch n.Type {
		case "error":
			border = theme.NotificationError()
		case "warning":
			border = theme.NotificationWarning()
		case "success":
			border = theme.NotificationSuccess()
		default:
			border = theme.NotificationInfo()
		}

		box := lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(border).
			Foreground(theme.NotificationFg()).
			Padding(0, 1).
			Render(n.Message)

		x := d.Width - lipgloss.Width(box) - 1
		if x < 0 {
			x = 0
		}
		layers = append(layers, lipgloss.NewLayer(box).
			X(x).
			Y(y).
			Z(zIndexOverlay+1+i).
			ID("notification-"+n.ID))
		y += lipgloss.Height(box)
	}
	return layers
}

func (d *Desk) renderHelp() *lipgloss.Layer {
	keyStyle := lipgloss.NewStyle().
		Background(theme.HelpKeyBadgeBg()).
		Foreground(theme.HelpKeyBadge()).
		Padding(0, 1)
	descStyle := lipgloss.NewStyle().Foreground(theme.HelpGray())
	titleStyle := lipgloss.NewStyle().Foreground(theme.HelpBorder()).Bold(true)

	var lines []string
	lines = append(lines, titleStyle.Render("storydesk keys"), "")
	for _, section := range config.HelpSections(d.Keybinds) {
		lines = append(lines, titleStyle.Render(section.Title))
		for _, b := range section.Bindings {
			lines = append(lines, fmt.Sprintf("  %s %s",
				keyStyle.Render(b.Key), descStyle.Render(b.Description)))
		}
		lines = append(lines, "")
	}

	// Scroll window over the full line list.
	maxLines := max(d.Height-8, 4)
	offset := d.HelpScrollOffset
	if offset > len(lines)-maxLines {
		offset = max(len(lines)-maxLines, 0)
	}
	if offset < 0 {
		offset = 0
	}
	end := min(offset+maxLines, len(lines))
	visible := lines[offset:end]

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.HelpBorder()).
		Padding(0, 2).
		Render(strings.Join(visible, "\n"))

	return d.centeredLayer(box, "help-overlay", zIndexOverlay+10)
}

func (d *Desk) renderLogViewer() *lipgloss.Layer {
	titleStyle := lipgloss.NewStyle().Foreground(theme.LogViewerTitle()).Bold(true)

	levelStyle := func(level string) lipgloss.Style {
		switch level {
		case "ERROR":
			return lipgloss.NewStyle().Foreground(theme.LogViewerError())
		case "WARN":
			return lipgloss.NewStyle().Foreground(theme.LogViewerWarn())
		default:
			return lipgloss.NewStyle().Foreground(theme.LogViewerInfo())
		}
	}

	maxLines := max(d.Height-8, 4)
	msgs := d.LogMessages
	offset := d.LogScrollOffset
	if offset > len(msgs)-maxLines {
		offset = max(len(msgs)-maxLines, 0)
	}
	if offset < 0 {
		offset = 0
	}
	start := max(len(msgs)-maxLines-offset, 0)
	end := len(msgs) - offset

	lines := []string{titleStyle.Render(fmt.Sprintf("logs (%d)", len(msgs))), ""}
	for _, m := range msgs[start:end] {
		lines = append(lines, fmt.Sprintf("%s %s %s",
			m.Time.Format("15:04:05"),
			levelStyle(m.Level).Render(fmt.Sprintf("%-5s", m.Level)),
			m.Message))
	}

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.LogViewerTitle()).
		Background(theme.LogViewerBg()).
		Padding(0, 1).
		Width(min(d.Width-4, 90)).
		Render(strings.Join(lines, "\n"))

	return d.centeredLayer(box, "log-overlay", zIndexOverlay+10)
}

func (d *Desk) renderQuitConfirm() *lipgloss.Layer {
	msg := lipgloss.NewStyle().Bold(true).Render("Quit storydesk?") +
		"\n\n" +
		lipgloss.NewStyle().Foreground(theme.HelpGray()).
			Render("The session layout is saved. y to quit, any other key to stay.")

	box := lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(theme.NotificationWarning()).
		Padding(1, 3).
		Render(msg)

	return d.centeredLayer(box, "quit-confirm", zIndexOverlay+20)
}

func (d *Desk) renderWelcome() *lipgloss.Layer {
	title := lipgloss.NewStyle().Foreground(theme.WelcomeTitle()).Bold(true).
		Render("s t o r y d e s k")
	subtitle := lipgloss.NewStyle().Foreground(theme.WelcomeSubtitle()).
		Render("a desk for long stories")
	hintKey := lipgloss.NewStyle().Foreground(theme.WelcomeHighlight())
	hints := lipgloss.NewStyle().Foreground(theme.WelcomeText()).Render(
		"press " + hintKey.Render(d.Config.Keybindings.LeaderKey) +
			" then a panel key to open a window\n" +
			hintKey.Render("?") + " for help")

	content := lipgloss.JoinVertical(lipgloss.Center, title, "", subtitle, "", hints)
	return d.centeredLayer(content, "welcome", 1)
}

func (d *Desk) centeredLayer(content, id string, z int) *lipgloss.Layer {
	x := max((d.Width-lipgloss.Width(content))/2, 0)
	y := max((d.Height-lipgloss.Height(content))/2, 0)
	return lipgloss.NewLayer(content).X(x).Y(y).Z(z).ID(id)
}

// Package theme provides the desk's color palette, optionally tinted by a
// named terminal theme.
package theme

import (
	"image/color"

	"charm.land/lipgloss/v2"
	tint "github.com/lrstanley/bubbletint/v2"
)

var enabled bool

// Initialize selects the named tint theme. An empty name disables
// theming and falls back to the built-in palette.
func Initialize(themeName string) error {
	if themeName == "" {
		enabled = false
		return nil
	}

	enabled = true
	tint.NewDefaultRegistry()
	if ok := tint.SetTintID(themeName); !ok {
		tint.SetTintID("default")
	}
	return nil
}

// IsEnabled reports whether a tint theme is active.
func IsEnabled() bool {
	return enabled
}

// Current returns the active tint, or nil when theming is disabled.
func Current() *tint.Tint {
	if !enabled {
		return nil
	}
	return tint.Current()
}

// Window border colors

func BorderUnfocused() color.Color {
	t := Current()
	if t == nil {
		return lipgloss.Color("8")
	}
	return t.BrightBlack
}

func BorderFocused() color.Color {
	t := Current()
	if t == nil {
		return lipgloss.Color("12")
	}
	return t.BrightBlue
}

func BorderSnapped() color.Color {
	t := Current()
	if t == nil {
		return lipgloss.Color("6")
	}
	return t.Cyan
}

// SnapPreviewColor is the ghost rectangle shown while dragging toward a
// snap zone.
func SnapPreviewColor() color.Color {
	t := Current()
	if t == nil {
		return lipgloss.Color("#5fafff")
	}
	return t.BrightCyan
}

func ButtonFg() color.Color {
	t := Current()
	if t == nil {
		return lipgloss.Color("0")
	}
	return t.Bg
}

// Status bar colors

func StatusBarBg() color.Color {
	return lipgloss.Color("#1a1a2e")
}

func StatusBarFg() color.Color {
	return lipgloss.Color("#a0a0a8")
}

func StatusAccent() color.Color {
	t := Current()
	if t == nil {
		return lipgloss.Color("#5fafff")
	}
	return t.BrightBlue
}

// Dock colors

func DockBg() color.Color {
	return lipgloss.Color("#2a2a3e")
}

func DockFg() color.Color {
	return lipgloss.Color("#a0a0a8")
}

func DockHighlight() color.Color {
	t := Current()
	if t == nil {
		return lipgloss.Color("#00ff00")
	}
	return t.BrightGreen
}

func DockDimmed() color.Color {
	return lipgloss.Color("#808090")
}

func DockSeparator() color.Color {
	return lipgloss.Color("#303040")
}

// Notification colors

func NotificationError() color.Color {
	t := Current()
	if t == nil {
		return lipgloss.Color("#cd0000")
	}
	return t.Red
}

func NotificationWarning() color.Color {
	t := Current()
	if t == nil {
		return lipgloss.Color("#cdcd00")
	}
	return t.Yellow
}

func NotificationSuccess() color.Color {
	t := Current()
	if t == nil {
		return lipgloss.Color("#00cd00")
	}
	return t.Green
}

func NotificationInfo() color.Color {
	t := Current()
	if t == nil {
		return lipgloss.Color("#0000ee")
	}
	return t.Blue
}

func NotificationFg() color.Color {
	t := Current()
	if t == nil {
		return lipgloss.Color("#e5e5e5")
	}
	return t.Fg
}

// Log viewer colors

func LogViewerTitle() color.Color {
	return lipgloss.Color("11")
}

func LogViewerError() color.Color {
	return lipgloss.Color("9")
}

func LogViewerWarn() color.Color {
	return lipgloss.Color("11")
}

func LogViewerInfo() color.Color {
	return lipgloss.Color("12")
}

func LogViewerBg() color.Color {
	return lipgloss.Color("#1a1a2a")
}

// Welcome screen colors

func WelcomeTitle() color.Color {
	t := Current()
	if t == nil {
		return lipgloss.Color("#5fafff")
	}
	return t.BrightBlue
}

func WelcomeSubtitle() color.Color {
	return lipgloss.Color("7")
}

func WelcomeText() color.Color {
	return lipgloss.Color("8")
}

func WelcomeHighlight() color.Color {
	t := Current()
	if t == nil {
		return lipgloss.Color("#ff6b6b")
	}
	return t.BrightRed
}

// Help menu colors

func HelpKeyBadge() color.Color {
	return lipgloss.Color("5")
}

func HelpKeyBadgeBg() color.Color {
	return lipgloss.Color("0")
}

func HelpGray() color.Color {
	return lipgloss.Color("8")
}

func HelpBorder() color.Color {
	return lipgloss.Color("14")
}

// Package panel renders the content hosted inside desk windows. The
// window manager treats every panel as an opaque block of text sized to
// the window's content region.
package panel

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/christopherAlberts/storydesk/internal/workspace"
)

// Renderer produces a panel's content for the given region size.
type Renderer interface {
	View(width, height int) string
}

// For returns the renderer for a window kind. Unknown kinds get a
// placeholder rather than an error; the desk never fails to draw.
func For(kind workspace.Kind) Renderer {
	switch kind {
	case workspace.KindDocument:
		return documentPanel{}
	case workspace.KindStoryboard:
		return storyboardPanel{}
	case workspace.KindDatabase:
		return databasePanel{}
	case workspace.KindMapBuilder:
		return mapPanel{}
	case workspace.KindSettings:
		return settingsPanel{}
	case workspace.KindProjectFiles:
		return projectFilesPanel{}
	default:
		return placeholderPanel{label: string(kind)}
	}
}

// Titles maps each kind to its default window title.
var Titles = map[workspace.Kind]string{
	workspace.KindDocument:     "Untitled Document",
	workspace.KindStoryboard:   "Storyboard",
	workspace.KindDatabase:     "Story Database",
	workspace.KindMapBuilder:   "Map Builder",
	workspace.KindSettings:     "Settings",
	workspace.KindProjectFiles: "Project Files",
}

var (
	dimStyle     = lipgloss.NewStyle().Faint(true)
	headingStyle = lipgloss.NewStyle().Bold(true)
)

type documentPanel struct{}

func (documentPanel) View(width, height int) string {
	lines := []string{
		headingStyle.Render("Chapter One"),
		"",
		"The rain had not stopped for three days when Maren finally",
		"opened the letter. The paper smelled of salt and engine oil,",
		"and the handwriting was unmistakably her brother's.",
		"",
		dimStyle.Render("— draft, 247 words —"),
	}
	return fit(lines, width, height)
}

type storyboardPanel struct{}

func (storyboardPanel) View(width, height int) string {
	card := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		Padding(0, 1)
	cards := lipgloss.JoinHorizontal(lipgloss.Top,
		card.Render("Act I\nThe letter"),
		" ",
		card.Render("Act II\nThe crossing"),
		" ",
		card.Render("Act III\nLandfall"),
	)
	return fit(strings.Split(cards, "\n"), width, height)
}

type databasePanel struct{}

func (databasePanel) View(width, height int) string {
	lines := []string{
		headingStyle.Render("CHARACTERS"),
		"  Maren Voss      protagonist   first seen ch. 1",
		"  Edrik Voss      brother       first seen ch. 3",
		"  The Harbormaster antagonist   first seen ch. 2",
		"",
		headingStyle.Render("LOCATIONS"),
		"  Graywater Port",
		"  The Ledger House",
	}
	return fit(lines, width, height)
}

type mapPanel struct{}

func (mapPanel) View(width, height int) string {
	lines := []string{
		"        ~ ~ ~ ~ ~ ~",
		"   ~ ~ ┌────────┐ ~ ~",
		"  ~ ~  │Graywatr│  ~",
		"   ~   └───┬────┘ ~ ~",
		"           │ coast road",
		"      ┌────┴─────┐",
		"      │ Ledger H.│",
		"      └──────────┘",
	}
	return fit(lines, width, height)
}

type settingsPanel struct{}

func (settingsPanel) View(width, height int) string {
	lines := []string{
		headingStyle.Render("SETTINGS"),
		"",
		"Edit the config file to change snapping, appearance,",
		"and keybindings. Changes apply live.",
		"",
		dimStyle.Render("storydesk config path  prints the file location"),
		dimStyle.Render("storydesk config edit  opens it in $EDITOR"),
	}
	return fit(lines, width, height)
}

type projectFilesPanel struct{}

func (projectFilesPanel) View(width, height int) string {
	lines := []string{
		headingStyle.Render("PROJECT"),
		"  manuscript/",
		"    ch01-the-letter.md",
		"    ch02-graywater.md",
		"    ch03-the-crossing.md",
		"  notes/",
		"    worldbuilding.md",
		"    timeline.md",
	}
	return fit(lines, width, height)
}

type placeholderPanel struct {
	label string
}

func (p placeholderPanel) View(width, height int) string {
	return fit([]string{fmt.Sprintf("(%s)", p.label)}, width, height)
}

// fit crops the content to the region, padding missing lines so the
// block is always exactly height lines of at most width cells.
func fit(lines []string, width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	crop := lipgloss.NewStyle().MaxWidth(width)
	out := make([]string, height)
	for i := range out {
		if i < len(lines) {
			out[i] = crop.Render(lines[i])
		}
	}
	return strings.Join(out, "\n")
}

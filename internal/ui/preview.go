package ui

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/christopherAlberts/storydesk/internal/geometry"
	"github.com/christopherAlberts/storydesk/internal/theme"
)

// SnapPreview is the shared ghost shown while a drag hovers a snap zone.
// There is exactly one per desk; it is cleared on release.
type SnapPreview struct {
	Visible bool
	Zone    geometry.Zone
	Rect    geometry.Rect

	// Opacity is the configured ghost opacity in [0,1]. A cell grid has
	// no alpha channel, so it maps onto the density of the dot fill.
	Opacity float64
}

// Set points the preview at a zone's rectangle.
func (p *SnapPreview) Set(zone geometry.Zone, viewport geometry.Size) {
	p.Visible = true
	p.Zone = zone
	p.Rect = geometry.SnapRect(zone, viewport)
}

// Clear hides the preview.
func (p *SnapPreview) Clear() {
	p.Visible = false
	p.Zone = geometry.ZoneNone
}

var previewFillStyle = lipgloss.NewStyle().
	Foreground(lipgloss.Color("60")).
	Faint(true)

// Render draws the preview ghost as a bordered box sized to the preview
// rectangle, with the zone name centered. Quarters get a normal border,
// halves a double border, and fullscreen a thick one, so the target reads
// at a glance. Returns "" when hidden or degenerate.
func (p *SnapPreview) Render() string {
	if !p.Visible || p.Rect.Width < 4 || p.Rect.Height < 3 {
		return ""
	}

	border := lipgloss.NormalBorder()
	switch {
	case p.Zone == geometry.ZoneFullscreen:
		border = lipgloss.ThickBorder()
	case p.Zone.IsHalf():
		border = lipgloss.DoubleBorder()
	}

	inner := fillPattern(p.Rect.Width-2, p.Rect.Height-2, p.Zone.String(), fillStep(p.Opacity))

	return lipgloss.NewStyle().
		Border(border).
		BorderForeground(theme.SnapPreviewColor()).
		Width(p.Rect.Width - 2).
		Height(p.Rect.Height - 2).
		Render(inner)
}

// fillStep maps the configured opacity onto dot spacing: a denser grid
// reads as a more solid ghost.
func fillStep(opacity float64) int {
	switch {
	case opacity >= 0.75:
		return 1
	case opacity >= 0.35, opacity == 0:
		return 2
	default:
		return 4
	}
}

// dotRow builds one fill row one cell at a time. The dot is a multibyte
// rune, so the row is assembled from runes rather than sliced as bytes.
func dotRow(width, step int) string {
	cells := make([]rune, width)
	for i := range cells {
		if i%step == 0 {
			cells[i] = '·'
		} else {
			cells[i] = ' '
		}
	}
	return string(cells)
}

// fillPattern paints a sparse dot grid with the zone label centered, so
// the ghost reads as translucent over whatever sits beneath it.
func fillPattern(width, height int, label string, step int) string {
	if width <= 0 || height <= 0 {
		return ""
	}

	row := previewFillStyle.Render(strings.TrimRight(dotRow(width, step), " "))
	rows := make([]string, height)
	for i := range rows {
		rows[i] = row
	}

	if len(label) <= width {
		mid := height / 2
		styled := lipgloss.NewStyle().
			Foreground(theme.SnapPreviewColor()).
			Bold(true).
			Render(label)
		pad := (width - len(label)) / 2
		rows[mid] = strings.Repeat(" ", pad) + styled
	}

	return strings.Join(rows, "\n")
}

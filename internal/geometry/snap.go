package geometry

import "math"

// Zone identifies a magnetic snap target within the viewport.
type Zone int

const (
	ZoneNone Zone = iota
	ZoneLeftHalf
	ZoneRightHalf
	ZoneTopHalf
	ZoneBottomHalf
	ZoneTopLeftQuarter
	ZoneTopRightQuarter
	ZoneBottomLeftQuarter
	ZoneBottomRightQuarter
	ZoneFullscreen
)

var zoneNames = map[Zone]string{
	ZoneNone:               "none",
	ZoneLeftHalf:           "left-half",
	ZoneRightHalf:          "right-half",
	ZoneTopHalf:            "top-half",
	ZoneBottomHalf:         "bottom-half",
	ZoneTopLeftQuarter:     "top-left-quarter",
	ZoneTopRightQuarter:    "top-right-quarter",
	ZoneBottomLeftQuarter:  "bottom-left-quarter",
	ZoneBottomRightQuarter: "bottom-right-quarter",
	ZoneFullscreen:         "fullscreen",
}

func (z Zone) String() string {
	if name, ok := zoneNames[z]; ok {
		return name
	}
	return "unknown"
}

// IsHalf reports whether the zone covers half the viewport.
func (z Zone) IsHalf() bool {
	return z == ZoneLeftHalf || z == ZoneRightHalf || z == ZoneTopHalf || z == ZoneBottomHalf
}

// IsQuarter reports whether the zone covers a viewport quarter.
func (z Zone) IsQuarter() bool {
	switch z {
	case ZoneTopLeftQuarter, ZoneTopRightQuarter, ZoneBottomLeftQuarter, ZoneBottomRightQuarter:
		return true
	}
	return false
}

// CornerThresholdRatio scales the edge threshold down for corner zones so a
// corner only claims the pointer when it is decisively close to both edges.
const CornerThresholdRatio = 0.8

// DetectSnapZone maps a window rectangle to the snap zone it activates, or
// ZoneNone, together with a distance metric callers may use for stability.
// Each side's distance is measured from the window edge to the matching
// viewport edge, floored at zero for windows hanging past the boundary.
// Corners are checked before edges: a corner matches when both of its edges
// are within the corner threshold (0.8 times the edge threshold), and the
// nearest such corner by straight-line distance wins. Otherwise a half zone
// matches only when exactly one edge is within the edge threshold; a window
// near two edges that did not qualify as a corner activates nothing. Corner
// distances are Euclidean, edge distances linear.
func DetectSnapZone(win Rect, viewport Size, threshold int) (Zone, float64) {
	if threshold <= 0 || viewport.Width <= 0 || viewport.Height <= 0 {
		return ZoneNone, 0
	}

	distLeft := max(win.X, 0)
	distRight := max(viewport.Width-(win.X+win.Width), 0)
	distTop := max(win.Y, 0)
	distBottom := max(viewport.Height-(win.Y+win.Height), 0)

	cornerThreshold := float64(threshold) * CornerThresholdRatio

	type corner struct {
		zone Zone
		dx   int
		dy   int
	}
	corners := []corner{
		{ZoneTopLeftQuarter, distLeft, distTop},
		{ZoneTopRightQuarter, distRight, distTop},
		{ZoneBottomLeftQuarter, distLeft, distBottom},
		{ZoneBottomRightQuarter, distRight, distBottom},
	}

	best := ZoneNone
	bestDist := math.Inf(1)
	for _, c := range corners {
		if float64(c.dx) > cornerThreshold || float64(c.dy) > cornerThreshold {
			continue
		}
		d := math.Hypot(float64(c.dx), float64(c.dy))
		if d < bestDist {
			best = c.zone
			bestDist = d
		}
	}
	if best != ZoneNone {
		return best, bestDist
	}

	type edge struct {
		zone Zone
		dist int
	}
	edges := []edge{
		{ZoneLeftHalf, distLeft},
		{ZoneRightHalf, distRight},
		{ZoneTopHalf, distTop},
		{ZoneBottomHalf, distBottom},
	}

	var hit Zone
	hitDist := 0
	hits := 0
	for _, e := range edges {
		if e.dist <= threshold {
			hit = e.zone
			hitDist = e.dist
			hits++
		}
	}
	if hits == 1 {
		return hit, float64(hitDist)
	}
	return ZoneNone, 0
}

// SnapRect returns the rectangle a zone occupies in the viewport. Halves
// split with the first half taking floor(extent/2) and the second half taking
// the remainder, so left+right and top+bottom always tile the viewport
// exactly, including odd extents. ZoneNone yields a centered rectangle at
// half the viewport size, used when restoring a window with no saved
// geometry.
func SnapRect(zone Zone, viewport Size) Rect {
	halfW := viewport.Width / 2
	halfH := viewport.Height / 2
	restW := viewport.Width - halfW
	restH := viewport.Height - halfH

	switch zone {
	case ZoneLeftHalf:
		return Rect{X: 0, Y: 0, Width: halfW, Height: viewport.Height}
	case ZoneRightHalf:
		return Rect{X: halfW, Y: 0, Width: restW, Height: viewport.Height}
	case ZoneTopHalf:
		return Rect{X: 0, Y: 0, Width: viewport.Width, Height: halfH}
	case ZoneBottomHalf:
		return Rect{X: 0, Y: halfH, Width: viewport.Width, Height: restH}
	case ZoneTopLeftQuarter:
		return Rect{X: 0, Y: 0, Width: halfW, Height: halfH}
	case ZoneTopRightQuarter:
		return Rect{X: halfW, Y: 0, Width: restW, Height: halfH}
	case ZoneBottomLeftQuarter:
		return Rect{X: 0, Y: halfH, Width: halfW, Height: restH}
	case ZoneBottomRightQuarter:
		return Rect{X: halfW, Y: halfH, Width: restW, Height: restH}
	case ZoneFullscreen:
		return Rect{X: 0, Y: 0, Width: viewport.Width, Height: viewport.Height}
	default:
		return Rect{
			X:      viewport.Width / 4,
			Y:      viewport.Height / 4,
			Width:  halfW,
			Height: halfH,
		}
	}
}

// Package geometry provides the pure window-geometry math for storydesk:
// viewport clamping, snap-zone detection, and snap-target rectangles.
// Every function takes the viewport as an explicit argument so the math is
// testable without a live screen.
package geometry

// Point is a viewport-relative position in cells.
type Point struct {
	X int
	Y int
}

// Size is a window or viewport extent in cells.
type Size struct {
	Width  int
	Height int
}

// Rect is a positioned rectangle.
type Rect struct {
	X      int
	Y      int
	Width  int
	Height int
}

// Contains reports whether the point (x, y) lies inside the rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.Width && y >= r.Y && y < r.Y+r.Height
}

// Center returns the center point of the rectangle.
func (r Rect) Center() Point {
	return Point{X: r.X + r.Width/2, Y: r.Y + r.Height/2}
}

// Constraints bounds window geometry. MaxWidth/MaxHeight of zero mean
// "limited by the viewport only".
type Constraints struct {
	MinWidth  int
	MinHeight int
	MaxWidth  int
	MaxHeight int
	Viewport  Size
}

const (
	// DefaultMinWidth is the smallest width a window may take.
	DefaultMinWidth = 300
	// DefaultMinHeight is the smallest height a window may take.
	DefaultMinHeight = 200
)

// DefaultConstraints returns the standard constraints for the given viewport.
func DefaultConstraints(viewport Size) Constraints {
	return Constraints{
		MinWidth:  DefaultMinWidth,
		MinHeight: DefaultMinHeight,
		Viewport:  viewport,
	}
}

// ApplyConstraints clamps a window's size into the constraint bounds and its
// position so the whole window stays inside the viewport. If the clamped size
// still exceeds the viewport on an axis, the size is forced down to the
// viewport extent and the position on that axis resets to zero. The function
// is idempotent and never rejects its input; out-of-range values are clamped.
func ApplyConstraints(pos Point, size Size, c Constraints) (Point, Size) {
	maxW := c.MaxWidth
	if maxW <= 0 || maxW > c.Viewport.Width {
		maxW = c.Viewport.Width
	}
	maxH := c.MaxHeight
	if maxH <= 0 || maxH > c.Viewport.Height {
		maxH = c.Viewport.Height
	}

	size.Width = clamp(size.Width, c.MinWidth, max(maxW, c.MinWidth))
	size.Height = clamp(size.Height, c.MinHeight, max(maxH, c.MinHeight))

	// The minimum may exceed the viewport on small screens. The viewport
	// always wins so the window remains fully visible.
	if size.Width > c.Viewport.Width {
		size.Width = c.Viewport.Width
		pos.X = 0
	} else {
		pos.X = clamp(pos.X, 0, c.Viewport.Width-size.Width)
	}
	if size.Height > c.Viewport.Height {
		size.Height = c.Viewport.Height
		pos.Y = 0
	} else {
		pos.Y = clamp(pos.Y, 0, c.Viewport.Height-size.Height)
	}

	return pos, size
}

// CenteredRect returns a rectangle of the given size centered in the
// viewport, clamped by the constraints.
func CenteredRect(size Size, c Constraints) Rect {
	pos := Point{
		X: (c.Viewport.Width - size.Width) / 2,
		Y: (c.Viewport.Height - size.Height) / 2,
	}
	pos, size = ApplyConstraints(pos, size, c)
	return Rect{X: pos.X, Y: pos.Y, Width: size.Width, Height: size.Height}
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

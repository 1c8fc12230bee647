package geometry

import "testing"

func TestDetectSnapZone(t *testing.T) {
	viewport := Size{Width: 1200, Height: 800}
	threshold := 50

	tests := []struct {
		name string
		win  Rect
		want Zone
	}{
		// Corner threshold is 0.8*50 = 40.
		{"top-left corner", Rect{X: 2, Y: 2, Width: 400, Height: 300}, ZoneTopLeftQuarter},
		{"top-right corner", Rect{X: 760, Y: 2, Width: 400, Height: 300}, ZoneTopRightQuarter},
		{"bottom-left corner", Rect{X: 30, Y: 470, Width: 400, Height: 300}, ZoneBottomLeftQuarter},
		{"bottom-right corner", Rect{X: 770, Y: 480, Width: 400, Height: 300}, ZoneBottomRightQuarter},
		// Right edge is 100 away: too far for the corner, top edge alone
		// is within threshold so the top half wins.
		{"near top but too far right for corner", Rect{X: 700, Y: 2, Width: 400, Height: 300}, ZoneTopHalf},
		{"left edge", Rect{X: 30, Y: 250, Width: 400, Height: 300}, ZoneLeftHalf},
		{"right edge", Rect{X: 770, Y: 250, Width: 400, Height: 300}, ZoneRightHalf},
		{"top edge", Rect{X: 400, Y: 20, Width: 400, Height: 300}, ZoneTopHalf},
		{"bottom edge", Rect{X: 400, Y: 480, Width: 400, Height: 300}, ZoneBottomHalf},
		{"edge threshold inclusive", Rect{X: 50, Y: 250, Width: 400, Height: 300}, ZoneLeftHalf},
		{"just past edge threshold", Rect{X: 51, Y: 250, Width: 400, Height: 300}, ZoneNone},
		{"center", Rect{X: 400, Y: 250, Width: 400, Height: 300}, ZoneNone},
		{"hanging past left edge floors to zero", Rect{X: -100, Y: 250, Width: 400, Height: 300}, ZoneLeftHalf},
		{"hanging past corner floors to zero", Rect{X: -100, Y: -100, Width: 400, Height: 300}, ZoneTopLeftQuarter},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, _ := DetectSnapZone(tt.win, viewport, threshold)
			if got != tt.want {
				t.Errorf("DetectSnapZone(%+v) = %v, want %v", tt.win, got, tt.want)
			}
		})
	}
}

func TestDetectSnapZoneCornerBeatsEdge(t *testing.T) {
	viewport := Size{Width: 1200, Height: 800}

	// 10 away from both top and left: well inside all thresholds, the
	// corner must win over either adjacent edge.
	got, dist := DetectSnapZone(Rect{X: 10, Y: 10, Width: 400, Height: 300}, viewport, 50)
	if got != ZoneTopLeftQuarter {
		t.Errorf("DetectSnapZone() = %v, want %v", got, ZoneTopLeftQuarter)
	}
	if dist <= 0 {
		t.Errorf("corner distance = %v, want positive Euclidean metric", dist)
	}
}

func TestDetectSnapZoneTwoEdgesNoCorner(t *testing.T) {
	viewport := Size{Width: 1200, Height: 800}

	// 45 from both top and left: inside both edge thresholds but outside
	// the 40 corner threshold, so neither edge may claim it alone.
	got, _ := DetectSnapZone(Rect{X: 45, Y: 45, Width: 400, Height: 300}, viewport, 50)
	if got != ZoneNone {
		t.Errorf("DetectSnapZone() = %v, want %v", got, ZoneNone)
	}
}

func TestDetectSnapZoneNearestCornerWins(t *testing.T) {
	viewport := Size{Width: 1200, Height: 800}

	// Both left corners qualify for this tall thin window; the bottom-left
	// corner is closer by straight-line distance.
	got, _ := DetectSnapZone(Rect{X: 10, Y: 30, Width: 400, Height: 765}, viewport, 50)
	if got != ZoneBottomLeftQuarter {
		t.Errorf("DetectSnapZone() = %v, want %v", got, ZoneBottomLeftQuarter)
	}
}

func TestDetectSnapZoneEdgeDistanceLinear(t *testing.T) {
	viewport := Size{Width: 1200, Height: 800}

	got, dist := DetectSnapZone(Rect{X: 30, Y: 250, Width: 400, Height: 300}, viewport, 50)
	if got != ZoneLeftHalf {
		t.Fatalf("DetectSnapZone() = %v, want %v", got, ZoneLeftHalf)
	}
	if dist != 30 {
		t.Errorf("edge distance = %v, want 30", dist)
	}
}

func TestDetectSnapZoneDisabled(t *testing.T) {
	viewport := Size{Width: 1200, Height: 800}
	win := Rect{X: 2, Y: 2, Width: 400, Height: 300}

	if got, _ := DetectSnapZone(win, viewport, 0); got != ZoneNone {
		t.Errorf("threshold 0: got %v, want %v", got, ZoneNone)
	}
	if got, _ := DetectSnapZone(win, Size{}, 50); got != ZoneNone {
		t.Errorf("empty viewport: got %v, want %v", got, ZoneNone)
	}
}

func TestSnapRect(t *testing.T) {
	viewport := Size{Width: 1200, Height: 800}

	tests := []struct {
		zone Zone
		want Rect
	}{
		{ZoneLeftHalf, Rect{X: 0, Y: 0, Width: 600, Height: 800}},
		{ZoneRightHalf, Rect{X: 600, Y: 0, Width: 600, Height: 800}},
		{ZoneTopHalf, Rect{X: 0, Y: 0, Width: 1200, Height: 400}},
		{ZoneBottomHalf, Rect{X: 0, Y: 400, Width: 1200, Height: 400}},
		{ZoneTopLeftQuarter, Rect{X: 0, Y: 0, Width: 600, Height: 400}},
		{ZoneTopRightQuarter, Rect{X: 600, Y: 0, Width: 600, Height: 400}},
		{ZoneBottomLeftQuarter, Rect{X: 0, Y: 400, Width: 600, Height: 400}},
		{ZoneBottomRightQuarter, Rect{X: 600, Y: 400, Width: 600, Height: 400}},
		{ZoneFullscreen, Rect{X: 0, Y: 0, Width: 1200, Height: 800}},
	}

	for _, tt := range tests {
		t.Run(tt.zone.String(), func(t *testing.T) {
			if got := SnapRect(tt.zone, viewport); got != tt.want {
				t.Errorf("SnapRect(%v) = %+v, want %+v", tt.zone, got, tt.want)
			}
		})
	}
}

func TestSnapRectOddViewportTilesExactly(t *testing.T) {
	viewport := Size{Width: 1201, Height: 801}

	left := SnapRect(ZoneLeftHalf, viewport)
	right := SnapRect(ZoneRightHalf, viewport)
	if left.Width+right.Width != viewport.Width {
		t.Errorf("halves overlap or gap: left %d + right %d != %d",
			left.Width, right.Width, viewport.Width)
	}
	if right.X != left.Width {
		t.Errorf("right half starts at %d, want %d", right.X, left.Width)
	}

	top := SnapRect(ZoneTopHalf, viewport)
	bottom := SnapRect(ZoneBottomHalf, viewport)
	if top.Height+bottom.Height != viewport.Height {
		t.Errorf("halves overlap or gap: top %d + bottom %d != %d",
			top.Height, bottom.Height, viewport.Height)
	}
	if bottom.Y != top.Height {
		t.Errorf("bottom half starts at %d, want %d", bottom.Y, top.Height)
	}

	quarters := []Zone{
		ZoneTopLeftQuarter, ZoneTopRightQuarter,
		ZoneBottomLeftQuarter, ZoneBottomRightQuarter,
	}
	area := 0
	for _, z := range quarters {
		r := SnapRect(z, viewport)
		area += r.Width * r.Height
	}
	if area != viewport.Width*viewport.Height {
		t.Errorf("quarters cover %d cells, want %d", area, viewport.Width*viewport.Height)
	}
}

func TestZoneString(t *testing.T) {
	if got := ZoneTopLeftQuarter.String(); got != "top-left-quarter" {
		t.Errorf("String() = %q", got)
	}
	if got := Zone(99).String(); got != "unknown" {
		t.Errorf("String() = %q", got)
	}
}

func TestZoneKindPredicates(t *testing.T) {
	if !ZoneLeftHalf.IsHalf() || ZoneLeftHalf.IsQuarter() {
		t.Error("ZoneLeftHalf misclassified")
	}
	if !ZoneBottomRightQuarter.IsQuarter() || ZoneBottomRightQuarter.IsHalf() {
		t.Error("ZoneBottomRightQuarter misclassified")
	}
	if ZoneFullscreen.IsHalf() || ZoneFullscreen.IsQuarter() {
		t.Error("ZoneFullscreen misclassified")
	}
}

package camera

import (
	"math"
	"testing"
)

func near(a, b float32) bool {
	return math.Abs(float64(a-b)) < 0.01
}

func TestNew(t *testing.T) {
	cam := New(780, 480)

	if cam.X != 390 || cam.Y != 240 {
		t.Errorf("expected camera at (390, 240), got (%f, %f)", cam.X, cam.Y)
	}
	if cam.Zoom != 1.0 {
		t.Errorf("expected zoom 1.0, got %f", cam.Zoom)
	}
	if fx, fy := cam.Origin(); fx != 0 || fy != 0 {
		t.Errorf("expected origin (0, 0), got (%f, %f)", fx, fy)
	}
}

func TestScreenToFieldRoundtrip(t *testing.T) {
	cam := New(780, 480)
	cam.Pan(-1000, 250)
	cam.SetZoom(2.5)

	testCases := []struct{ sx, sy float32 }{
		{390, 240}, // center
		{0, 0},     // top-left
		{770, 470}, // near bottom-right
	}

	for _, tc := range testCases {
		fx, fy := cam.ScreenToField(tc.sx, tc.sy)
		sx, sy := cam.FieldToScreen(fx, fy)
		if !near(sx, tc.sx) || !near(sy, tc.sy) {
			t.Errorf("roundtrip failed: (%f,%f) -> (%f,%f) -> (%f,%f)",
				tc.sx, tc.sy, fx, fy, sx, sy)
		}
	}
}

func TestPanDoesNotWrap(t *testing.T) {
	cam := New(780, 480)

	cam.Pan(-800, 0)
	if cam.X != -410 {
		t.Errorf("expected X -410, got %f", cam.X)
	}

	cam.SetZoom(2)
	cam.Pan(0, 100)
	if cam.Y != 290 {
		t.Errorf("expected pan scaled by zoom to give Y 290, got %f", cam.Y)
	}
}

func TestZoomClamp(t *testing.T) {
	cam := New(780, 480)

	cam.SetZoom(0.01)
	if cam.Zoom != 0.125 {
		t.Errorf("expected zoom clamped to 0.125, got %f", cam.Zoom)
	}

	cam.SetZoom(100)
	if cam.Zoom != 8 {
		t.Errorf("expected zoom clamped to 8, got %f", cam.Zoom)
	}

	cam.SetZoom(1)
	cam.ZoomBy(2)
	if cam.Zoom != 2 {
		t.Errorf("expected zoom 2, got %f", cam.Zoom)
	}
}

func TestZoomAtKeepsPointFixed(t *testing.T) {
	cam := New(780, 480)
	sx, sy := float32(100), float32(400)
	fx, fy := cam.ScreenToField(sx, sy)

	cam.ZoomAt(4, sx, sy)

	gx, gy := cam.ScreenToField(sx, sy)
	if !near(gx, fx) || !near(gy, fy) {
		t.Errorf("point under cursor moved from (%f,%f) to (%f,%f)", fx, fy, gx, gy)
	}
	if cam.Zoom != 4 {
		t.Errorf("expected zoom 4, got %f", cam.Zoom)
	}
}

func TestVisibleBounds(t *testing.T) {
	cam := New(800, 400)
	cam.SetZoom(2)

	minX, minY, maxX, maxY := cam.VisibleBounds()
	if minX != 200 || maxX != 600 || minY != 100 || maxY != 300 {
		t.Errorf("unexpected bounds (%f, %f)-(%f, %f)", minX, minY, maxX, maxY)
	}
}

func TestContains(t *testing.T) {
	cam := New(800, 400)
	if !cam.Contains(0, 0) || !cam.Contains(799, 399) {
		t.Error("expected corners inside viewport")
	}
	if cam.Contains(-1, 10) || cam.Contains(800, 10) || cam.Contains(10, 400) {
		t.Error("expected points outside viewport")
	}
}

func TestReset(t *testing.T) {
	cam := New(780, 480)
	cam.Pan(500, 500)
	cam.SetZoom(2.5)

	cam.Reset()

	if cam.X != 390 || cam.Y != 240 {
		t.Errorf("expected position (390, 240), got (%f, %f)", cam.X, cam.Y)
	}
	if cam.Zoom != 1.0 {
		t.Errorf("expected zoom 1.0, got %f", cam.Zoom)
	}
}

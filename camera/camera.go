// Package camera maps the preview viewport onto field coordinates.
package camera

// Camera controls which part of the noise field the preview shows.
// Supports pan and zoom; the field is unbounded so nothing wraps.
type Camera struct {
	// Position is the field coordinate at the viewport centre
	X, Y float32

	// Zoom level (1.0 = one field pixel per screen pixel, 2.0 = 2x magnification)
	Zoom float32

	// Viewport dimensions in screen pixels
	ViewportW, ViewportH float32

	// Zoom constraints
	MinZoom, MaxZoom float32
}

// New creates a camera at 1:1 zoom whose top-left corner is the field origin,
// matching the still image.
func New(viewportW, viewportH float32) *Camera {
	return &Camera{
		X:         viewportW / 2,
		Y:         viewportH / 2,
		Zoom:      1.0,
		ViewportW: viewportW,
		ViewportH: viewportH,
		MinZoom:   0.125,
		MaxZoom:   8.0,
	}
}

// FieldToScreen converts field coordinates to viewport coordinates.
func (c *Camera) FieldToScreen(fx, fy float32) (sx, sy float32) {
	sx = c.ViewportW/2 + (fx-c.X)*c.Zoom
	sy = c.ViewportH/2 + (fy-c.Y)*c.Zoom
	return sx, sy
}

// ScreenToField converts viewport coordinates to field coordinates.
func (c *Camera) ScreenToField(sx, sy float32) (fx, fy float32) {
	fx = c.X + (sx-c.ViewportW/2)/c.Zoom
	fy = c.Y + (sy-c.ViewportH/2)/c.Zoom
	return fx, fy
}

// Origin returns the field coordinate under the viewport's top-left corner.
func (c *Camera) Origin() (fx, fy float32) {
	return c.ScreenToField(0, 0)
}

// Contains reports whether a viewport coordinate lies inside the viewport.
func (c *Camera) Contains(sx, sy float32) bool {
	return sx >= 0 && sy >= 0 && sx < c.ViewportW && sy < c.ViewportH
}

// Pan moves the camera by the given delta in screen pixels.
func (c *Camera) Pan(dx, dy float32) {
	c.X += dx / c.Zoom
	c.Y += dy / c.Zoom
}

// SetZoom sets the zoom level, clamped to min/max.
func (c *Camera) SetZoom(zoom float32) {
	c.Zoom = clamp(zoom, c.MinZoom, c.MaxZoom)
}

// ZoomBy multiplies the current zoom by the given factor.
func (c *Camera) ZoomBy(factor float32) {
	c.SetZoom(c.Zoom * factor)
}

// ZoomAt zooms by factor keeping the field point under (sx, sy) fixed.
func (c *Camera) ZoomAt(factor, sx, sy float32) {
	fx, fy := c.ScreenToField(sx, sy)
	c.ZoomBy(factor)
	c.X = fx - (sx-c.ViewportW/2)/c.Zoom
	c.Y = fy - (sy-c.ViewportH/2)/c.Zoom
}

// Reset returns the camera to the default position and zoom.
func (c *Camera) Reset() {
	c.X = c.ViewportW / 2
	c.Y = c.ViewportH / 2
	c.Zoom = 1.0
}

// VisibleBounds returns the field-coordinate bounds of the visible area.
func (c *Camera) VisibleBounds() (minX, minY, maxX, maxY float32) {
	halfW := c.ViewportW / (2 * c.Zoom)
	halfH := c.ViewportH / (2 * c.Zoom)

	minX = c.X - halfW
	maxX = c.X + halfW
	minY = c.Y - halfH
	maxY = c.Y + halfH
	return
}

// clamp restricts a value to a range.
func clamp(x, lo, hi float32) float32 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}

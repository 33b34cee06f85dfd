package interact

// Zoomer manages the per-page pinch/scroll zoom transform. It reports
// only a boolean zoom state upward; the page coordinator reacts to that,
// never to raw deltas.
type Zoomer struct {
	// View transform applied on top of the fullscreen image box.
	OffsetX float64 // pan offset in screen pixels
	OffsetY float64
	Scale   float64 // 1.0 = fitted

	dragging bool
	lastX    float64
	lastY    float64
}

const (
	minZoom       = 1.0
	maxZoom       = 8.0
	doubleTapZoom = 2.0
	zoomedEpsilon = 1.001
)

// NewZoomer creates a zoomer at the fitted scale.
func NewZoomer() *Zoomer {
	return &Zoomer{Scale: 1}
}

// Reset returns to the fitted, centered view. Called on page change.
func (z *Zoomer) Reset() {
	z.OffsetX = 0
	z.OffsetY = 0
	z.Scale = 1
	z.dragging = false
}

// IsZoomed reports whether the image is scaled past the fitted view.
func (z *Zoomer) IsZoomed() bool { return z.Scale > zoomedEpsilon }

// ImageToScreen converts image-box coordinates to screen coordinates.
func (z *Zoomer) ImageToScreen(ix, iy float64) (sx, sy float64) {
	sx = ix*z.Scale + z.OffsetX
	sy = iy*z.Scale + z.OffsetY
	return
}

// ScreenToImage converts screen coordinates to image-box coordinates.
func (z *Zoomer) ScreenToImage(sx, sy float64) (ix, iy float64) {
	ix = (sx - z.OffsetX) / z.Scale
	iy = (sy - z.OffsetY) / z.Scale
	return
}

// ZoomBy scales by factor keeping the image point under (cx, cy) fixed
// on screen, clamped to the zoom range. At the fitted scale the pan
// offset is reset so the unzoomed image is always centered.
func (z *Zoomer) ZoomBy(factor, cx, cy float64) {
	ix, iy := z.ScreenToImage(cx, cy)

	z.Scale *= factor
	if z.Scale < minZoom {
		z.Scale = minZoom
	}
	if z.Scale > maxZoom {
		z.Scale = maxZoom
	}

	if !z.IsZoomed() {
		z.Reset()
		return
	}

	nx, ny := z.ImageToScreen(ix, iy)
	z.OffsetX += cx - nx
	z.OffsetY += cy - ny
}

// ToggleDoubleTap jumps between the fitted view and the double-tap zoom
// level centered on the tap point.
func (z *Zoomer) ToggleDoubleTap(cx, cy float64) {
	if z.IsZoomed() {
		z.Reset()
		return
	}
	z.ZoomBy(doubleTapZoom, cx, cy)
}

// StartPan begins a pan drag. Only meaningful while zoomed; the dismiss
// gesture owns unzoomed vertical drags.
func (z *Zoomer) StartPan(x, y float64) {
	if !z.IsZoomed() {
		return
	}
	z.dragging = true
	z.lastX = x
	z.lastY = y
}

// Pan updates an in-flight pan drag.
func (z *Zoomer) Pan(x, y float64) {
	if !z.dragging {
		return
	}
	z.OffsetX += x - z.lastX
	z.OffsetY += y - z.lastY
	z.lastX = x
	z.lastY = y
}

// EndPan finishes the pan drag.
func (z *Zoomer) EndPan() { z.dragging = false }

// Panning reports whether a zoom-pan drag is in flight.
func (z *Zoomer) Panning() bool { return z.dragging }

// Package core defines geometry and media models for the lightbox.
package core

import "math"

// Rect is an axis-aligned rectangle in screen coordinates (device pixels).
type Rect struct {
	X float64
	Y float64
	W float64
	H float64
}

// CenterX returns the horizontal center of the rectangle.
func (r Rect) CenterX() float64 { return r.X + r.W/2 }

// CenterY returns the vertical center of the rectangle.
func (r Rect) CenterY() float64 { return r.Y + r.H/2 }

// Aspect returns width/height, or 0 for a degenerate rectangle.
func (r Rect) Aspect() float64 {
	if r.H == 0 {
		return 0
	}
	return r.W / r.H
}

// Empty reports whether the rectangle has no area.
func (r Rect) Empty() bool { return r.W <= 0 || r.H <= 0 }

// Size is an intrinsic pixel dimension pair.
type Size struct {
	W float64
	H float64
}

// Aspect returns width/height, or 0 for a degenerate size.
func (s Size) Aspect() float64 {
	if s.H == 0 {
		return 0
	}
	return s.W / s.H
}

// DisplayShape tags how a thumbnail is masked when rendered inline.
type DisplayShape int

const (
	ShapeDefault DisplayShape = iota // plain rectangle
	ShapeCircle                      // avatar-style circle
	ShapeRounded                     // rounded-rect card
)

func (s DisplayShape) String() string {
	return [...]string{"Default", "Circle", "Rounded"}[s]
}

// ImageSource describes one image for the lifetime of a lightbox session.
// Dimensions and ThumbRect are optional; when either is missing the open
// morph is skipped and the image appears directly at fullscreen size.
type ImageSource struct {
	URI        string
	Dimensions *Size // intrinsic pixel dimensions, nil if unknown
	ThumbRect  *Rect // on-screen rect of the originating thumbnail, nil if unknown
	Alt        string
	Caption    string
	Shape      DisplayShape
}

// HasGeometry reports whether the source carries everything the morph
// animation needs.
func (s ImageSource) HasGeometry() bool {
	return s.Dimensions != nil && s.Dimensions.W > 0 && s.Dimensions.H > 0 &&
		s.ThumbRect != nil && !s.ThumbRect.Empty()
}

// Session is one lightbox viewing session: an ordered set of images and
// the index the viewer opens on. Sessions are immutable once created.
type Session struct {
	ID           string
	Images       []ImageSource
	InitialIndex int
}

// NewSession builds a session, clamping the initial index into range.
func NewSession(id string, images []ImageSource, initial int) *Session {
	if initial < 0 {
		initial = 0
	}
	if n := len(images); initial >= n && n > 0 {
		initial = n - 1
	}
	return &Session{ID: id, Images: images, InitialIndex: initial}
}

// Len returns the number of images in the session.
func (s *Session) Len() int { return len(s.Images) }

// At returns the image at index i, or a zero source if out of range.
func (s *Session) At(i int) ImageSource {
	if i < 0 || i >= len(s.Images) {
		return ImageSource{}
	}
	return s.Images[i]
}

// AllHaveGeometry reports whether every image in the session can morph.
// The open animation is only run when this holds; a single unmeasured
// image downgrades the whole session to a snap open.
func (s *Session) AllHaveGeometry() bool {
	for _, img := range s.Images {
		if !img.HasGeometry() {
			return false
		}
	}
	return len(s.Images) > 0
}

// SnapToPixel rounds v to the nearest physical pixel for the given pixel
// ratio (pixels per device-independent unit). Sub-pixel translate and size
// values shimmer during animation, so every interpolated output is snapped.
func SnapToPixel(v, pixelRatio float64) float64 {
	if pixelRatio <= 0 {
		return math.Round(v)
	}
	return math.Round(v*pixelRatio) / pixelRatio
}

// Clamp restricts v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Lerp linearly interpolates from a to b as t goes 0 to 1.
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

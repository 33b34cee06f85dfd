// Package geom computes the on-screen transform of a lightbox image as it
// morphs between its inline thumbnail rectangle and the fullscreen box.
// Interpolate is pure: the frame loop calls it every frame from the shared
// progress and drag values and draws exactly what it returns.
package geom

import (
	"github.com/elektrokombinacija/lightbox/internal/core"
)

// SizeStrategy selects how the image box size is produced during the
// morph. Continuous interpolation re-lays-out the box every frame, which
// is smooth where layout is cheap. Where per-frame layout is too slow the
// size instead snaps between the cropped and final boxes on the discrete
// progress target and the visual jump is smoothed by a cross-fade.
type SizeStrategy int

const (
	SizeContinuous SizeStrategy = iota
	SizeDiscrete
)

func (s SizeStrategy) String() string {
	return [...]string{"Continuous", "Discrete"}[s]
}

// Capabilities answers platform questions that pick strategies once at
// startup.
type Capabilities interface {
	// SmoothLayout reports whether per-frame size interpolation is cheap
	// enough to run continuously.
	SmoothLayout() bool
}

// ResolveStrategy picks the size strategy from platform capabilities.
// Called once when the lightbox is constructed, never per frame.
func ResolveStrategy(caps Capabilities) SizeStrategy {
	if caps == nil || caps.SmoothLayout() {
		return SizeContinuous
	}
	return SizeDiscrete
}

// Input carries everything one interpolation step depends on.
type Input struct {
	Progress float64    // open progress in [0,1]
	Target   int        // discrete progress target, 0 or 1
	Thumb    *core.Rect // originating thumbnail rect, nil if unknown
	SafeArea core.Rect
	Dims     *core.Size // intrinsic image dimensions, nil if unknown
	// DismissOffset is the live vertical drag offset. It is always
	// carried through so dismiss dragging composes with the morph.
	DismissOffset float64
	PixelRatio    float64
	Strategy      SizeStrategy
}

// Frame is the resolved transform for one frame. The rendered box is
// W×H scaled by Scale, centered on the safe area center displaced by
// (TranslateX + CropTranslateX, TranslateY + DismissOffset).
type Frame struct {
	TranslateX float64
	TranslateY float64
	// CropTranslateX compensates for the horizontal crop window so the
	// visible portion of the scaled-down box lines up with the thumbnail.
	CropTranslateX float64
	Scale          float64
	W              float64
	H              float64
	// ImageW and ImageH are the uncropped fullscreen box dimensions the
	// image itself is laid out at inside the crop window.
	ImageW        float64
	ImageH        float64
	DismissOffset float64
	// Morphing is false when thumbnail or dimensions were missing and the
	// image simply opens at fullscreen size.
	Morphing bool
}

// BoxW returns the on-screen width of the rendered box.
func (f Frame) BoxW() float64 { return f.W * f.Scale }

// BoxH returns the on-screen height of the rendered box.
func (f Frame) BoxH() float64 { return f.H * f.Scale }

// Interpolate computes the frame transform for the given inputs.
func Interpolate(in Input) Frame {
	if in.Thumb == nil || in.Thumb.Empty() || in.Dims == nil || in.Dims.H <= 0 || in.Dims.W <= 0 {
		return fullscreenFrame(in)
	}

	imageAspect := in.Dims.Aspect()
	thumbAspect := in.Thumb.Aspect()

	// Uncropped thumbnail-equivalent box. The thumbnail is a center crop;
	// the uncropped box is what the whole image would occupy at the
	// thumbnail's size.
	var uncroppedW, uncroppedH float64
	if imageAspect > thumbAspect {
		uncroppedH = in.Thumb.H
		uncroppedW = in.Thumb.H * imageAspect
	} else {
		uncroppedW = in.Thumb.W
		uncroppedH = in.Thumb.W / imageAspect
	}

	// Fullscreen box: width-constrained, aspect preserved.
	finalW := in.SafeArea.W
	finalH := finalW / imageAspect

	// Scale mapping the fullscreen box down to the uncropped thumb box.
	initialScale := min(uncroppedW/finalW, uncroppedH/finalH)

	// Portion of the fullscreen box visible through the thumbnail crop at
	// the initial instant.
	croppedFinalW := in.Thumb.W / initialScale
	croppedFinalH := in.Thumb.H / initialScale

	p := core.Clamp(in.Progress, 0, 1)

	initialTx := in.Thumb.CenterX() - in.SafeArea.CenterX()
	initialTy := in.Thumb.CenterY() - in.SafeArea.CenterY()

	var w, h float64
	switch in.Strategy {
	case SizeDiscrete:
		if in.Target >= 1 {
			w, h = finalW, finalH
		} else {
			w, h = croppedFinalW, croppedFinalH
		}
	default:
		w = core.Lerp(croppedFinalW, finalW, p)
		h = core.Lerp(croppedFinalH, finalH, p)
	}

	return Frame{
		TranslateX:     core.SnapToPixel(core.Lerp(initialTx, 0, p), in.PixelRatio),
		TranslateY:     core.SnapToPixel(core.Lerp(initialTy, 0, p), in.PixelRatio),
		CropTranslateX: core.SnapToPixel(core.Lerp((finalW-croppedFinalW)/2, 0, p), in.PixelRatio),
		Scale:          core.Lerp(initialScale, 1, p),
		W:              core.SnapToPixel(w, in.PixelRatio),
		H:              core.SnapToPixel(h, in.PixelRatio),
		ImageW:         core.SnapToPixel(finalW, in.PixelRatio),
		ImageH:         core.SnapToPixel(finalH, in.PixelRatio),
		DismissOffset:  in.DismissOffset,
		Morphing:       true,
	}
}

// fullscreenFrame is the degraded path when morph geometry is unknown:
// the fullscreen box with only the dismiss offset applied.
func fullscreenFrame(in Input) Frame {
	w := in.SafeArea.W
	h := in.SafeArea.H
	if in.Dims != nil && in.Dims.W > 0 && in.Dims.H > 0 {
		h = w / in.Dims.Aspect()
	}
	return Frame{
		Scale:         1,
		W:             core.SnapToPixel(w, in.PixelRatio),
		H:             core.SnapToPixel(h, in.PixelRatio),
		ImageW:        core.SnapToPixel(w, in.PixelRatio),
		ImageH:        core.SnapToPixel(h, in.PixelRatio),
		DismissOffset: in.DismissOffset,
	}
}

func min(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}

package widgets

import (
	"image"
	"image/color"

	"gioui.org/f32"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/op/paint"

	"github.com/elektrokombinacija/lightbox/internal/core"
	"github.com/elektrokombinacija/lightbox/internal/lightbox/geom"
	"github.com/elektrokombinacija/lightbox/internal/lightbox/interact"
)

var placeholderColor = color.NRGBA{R: 28, G: 30, B: 34, A: 255}

// pageView draws one page's image for the current frame transform.
// The crop window (the frame's box) is clipped and the full uncropped
// image is drawn centered inside it, which realizes the center-crop
// morph: at progress 0 only the thumbnail's crop shows, at progress 1
// the box and the image coincide.
type pageView struct {
	src   core.ImageSource
	frame geom.Frame
	safe  core.Rect
	// cornerRadius shrinks to 0 as the morph opens, so circle and
	// rounded thumbnails unmask smoothly.
	cornerRadius float64
	// zoom is non-nil only for the active page at steady state.
	zoom *interact.Zoomer
	// pageOffsetX displaces the whole page for carousel scrolling.
	pageOffsetX float64
}

func (v pageView) draw(gtx layout.Context, provider ImageProvider) {
	f := v.frame

	cx := v.safe.CenterX() + f.TranslateX + v.pageOffsetX
	cy := v.safe.CenterY() + f.TranslateY + f.DismissOffset

	boxW, boxH := f.BoxW(), f.BoxH()
	box := core.Rect{X: cx - boxW/2, Y: cy - boxH/2, W: boxW, H: boxH}

	imgW := f.ImageW * f.Scale
	imgH := f.ImageH * f.Scale
	dst := core.Rect{X: cx - imgW/2, Y: cy - imgH/2, W: imgW, H: imgH}

	clipRect := box
	radius := v.cornerRadius
	if v.zoom != nil && v.zoom.IsZoomed() {
		// While zoomed the page covers the viewport; the zoom transform
		// moves the image, not the clip.
		clipRect = v.safe
		radius = 0
		x0, y0 := v.zoom.ImageToScreen(dst.X, dst.Y)
		x1, y1 := v.zoom.ImageToScreen(dst.X+dst.W, dst.Y+dst.H)
		dst = core.Rect{X: x0, Y: y0, W: x1 - x0, H: y1 - y0}
	}

	rr := clip.RRect{
		Rect: roundRect(clipRect),
		SE:   int(radius), SW: int(radius), NE: int(radius), NW: int(radius),
	}
	defer rr.Push(gtx.Ops).Pop()

	texture, ok := provider.Acquire(v.src.URI)
	if !ok {
		paint.FillShape(gtx.Ops, placeholderColor, clip.Rect(roundRect(box)).Op())
		return
	}

	sz := texture.Size()
	if sz.X == 0 || sz.Y == 0 || dst.Empty() {
		return
	}

	tr := f32.Affine2D{}.
		Scale(f32.Pt(0, 0), f32.Pt(float32(dst.W/float64(sz.X)), float32(dst.H/float64(sz.Y)))).
		Offset(f32.Pt(float32(dst.X), float32(dst.Y)))
	defer op.Affine(tr).Push(gtx.Ops).Pop()

	texture.Add(gtx.Ops)
	paint.PaintOp{}.Add(gtx.Ops)
}

// shapeRadius returns the corner radius for a thumbnail shape at the
// given box size, before the morph shrinks it toward 0.
func shapeRadius(shape core.DisplayShape, boxW, boxH float64) float64 {
	switch shape {
	case core.ShapeCircle:
		if boxW < boxH {
			return boxW / 2
		}
		return boxH / 2
	case core.ShapeRounded:
		return 12
	default:
		return 0
	}
}

func roundRect(r core.Rect) image.Rectangle {
	return image.Rect(int(r.X), int(r.Y), int(r.X+r.W), int(r.Y+r.H))
}

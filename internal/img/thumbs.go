package img

import (
	"image"

	xdraw "golang.org/x/image/draw"
)

// Thumbnail center-crops src to the w:h aspect and scales it down to
// w by h. The crop keeps the middle of the image, matching how the
// fullscreen morph fills its box.
func Thumbnail(src image.Image, w, h int) *image.NRGBA {
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	crop := centerCrop(src.Bounds(), float64(w)/float64(h))
	dst := image.NewNRGBA(image.Rect(0, 0, w, h))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), src, crop, xdraw.Src, nil)
	return dst
}

// centerCrop returns the largest sub-rectangle of b with the given
// aspect ratio, centered.
func centerCrop(b image.Rectangle, aspect float64) image.Rectangle {
	bw := float64(b.Dx())
	bh := float64(b.Dy())
	if bw <= 0 || bh <= 0 || aspect <= 0 {
		return b
	}
	cw, ch := bw, bh
	if bw/bh > aspect {
		cw = bh * aspect
	} else {
		ch = bw / aspect
	}
	x0 := b.Min.X + int((bw-cw)/2)
	y0 := b.Min.Y + int((bh-ch)/2)
	return image.Rect(x0, y0, x0+int(cw), y0+int(ch))
}

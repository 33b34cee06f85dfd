// Package widgets provides the Gio widgets composing the lightbox
// overlay: the morphing image pages, the paged carousel, and the
// header/footer chrome.
package widgets

import "gioui.org/op/paint"

// ImageProvider supplies decoded textures for image URIs. Acquire must
// never block: while a texture is still loading it returns ok=false and
// the page renders a placeholder.
type ImageProvider interface {
	Acquire(uri string) (paint.ImageOp, bool)
}

package widgets

import (
	"fmt"
	"image"
	"image/color"

	"gioui.org/layout"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/unit"
	"gioui.org/widget"
	"gioui.org/widget/material"

	"github.com/elektrokombinacija/lightbox/internal/lightbox/state"
)

const headerHeight = 48

// headerSlide is how many pixels the bar slides up while hiding.
const headerSlide = 12.0

// Header is the top chrome bar: close button, page counter, save/share.
type Header struct {
	st *state.State

	closeBtn widget.Clickable
	saveBtn  widget.Clickable
	shareBtn widget.Clickable
}

// NewHeader creates the header bound to the shared state.
func NewHeader(st *state.State) *Header {
	return &Header{st: st}
}

// Layout renders the bar faded and slid by the chrome fraction. While
// fully hidden nothing is drawn and no click areas are registered, so
// the bar cannot swallow touches meant for the image.
func (h *Header) Layout(gtx layout.Context, th *material.Theme) layout.Dimensions {
	frac := h.st.Chrome.Fraction()
	if frac <= 0 {
		return layout.Dimensions{}
	}

	h.handleClicks(gtx)

	alpha := uint8(frac * 255)
	offY := -headerSlide * (1 - frac)

	rect := image.Rect(0, int(offY), gtx.Constraints.Max.X, int(offY)+headerHeight)
	paint.FillShape(gtx.Ops, color.NRGBA{A: alpha / 2}, clip.Rect(rect).Op())

	session := h.st.Session
	counter := ""
	if session != nil && session.Len() > 1 {
		counter = fmt.Sprintf("%d of %d", h.st.Pages.Active()+1, session.Len())
	}

	return layout.Inset{
		Top: unit.Dp(8 + float32(offY)), Left: unit.Dp(10), Right: unit.Dp(10),
	}.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
		return layout.Flex{Axis: layout.Horizontal, Alignment: layout.Middle}.Layout(gtx,
			layout.Rigid(func(gtx layout.Context) layout.Dimensions {
				return chromeButton(gtx, th, &h.closeBtn, "X", alpha)
			}),
			layout.Flexed(1, func(gtx layout.Context) layout.Dimensions {
				return layout.Center.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
					label := material.Label(th, 14, counter)
					label.Color = color.NRGBA{R: 230, G: 230, B: 230, A: alpha}
					return label.Layout(gtx)
				})
			}),
			layout.Rigid(func(gtx layout.Context) layout.Dimensions {
				return chromeButton(gtx, th, &h.saveBtn, "Save", alpha)
			}),
			layout.Rigid(layout.Spacer{Width: unit.Dp(6)}.Layout),
			layout.Rigid(func(gtx layout.Context) layout.Dimensions {
				return chromeButton(gtx, th, &h.shareBtn, "Share", alpha)
			}),
		)
	})
}

func (h *Header) handleClicks(gtx layout.Context) {
	if !h.st.Chrome.HitTestable() || h.st.Session == nil {
		return
	}
	uri := h.st.Session.At(h.st.Pages.Active()).URI

	for h.closeBtn.Clicked(gtx) {
		h.st.Close(gtx.Now)
	}
	for h.saveBtn.Clicked(gtx) {
		h.st.RequestSave(uri)
	}
	for h.shareBtn.Clicked(gtx) {
		h.st.RequestShare(uri)
	}
}

func chromeButton(gtx layout.Context, th *material.Theme, btn *widget.Clickable, text string, alpha uint8) layout.Dimensions {
	bg := color.NRGBA{R: 55, G: 58, B: 65, A: alpha}
	if btn.Hovered() {
		bg = color.NRGBA{R: 70, G: 73, B: 80, A: alpha}
	}

	return btn.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
		return layout.Background{}.Layout(gtx,
			func(gtx layout.Context) layout.Dimensions {
				gtx.Constraints.Min = image.Point{X: 44, Y: 30}
				rect := image.Rect(0, 0, gtx.Constraints.Min.X, gtx.Constraints.Min.Y)
				paint.FillShape(gtx.Ops, bg, clip.Rect(rect).Op())
				return layout.Dimensions{Size: gtx.Constraints.Min}
			},
			func(gtx layout.Context) layout.Dimensions {
				return layout.Center.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
					label := material.Label(th, 12, text)
					label.Color = color.NRGBA{R: 225, G: 225, B: 225, A: alpha}
					return label.Layout(gtx)
				})
			},
		)
	})
}

package main

import (
	"image"
	"image/color"
	"log"
	"path/filepath"
	"strings"
	"sync"

	"gioui.org/app"
	"gioui.org/f32"
	"gioui.org/io/event"
	"gioui.org/io/key"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/unit"
	"gioui.org/widget"
	"gioui.org/widget/material"

	"github.com/elektrokombinacija/lightbox/internal/config"
	"github.com/elektrokombinacija/lightbox/internal/core"
	"github.com/elektrokombinacija/lightbox/internal/img"
	"github.com/elektrokombinacija/lightbox/internal/lightbox"
)

const (
	gridCell = unit.Dp(160)
	gridGap  = unit.Dp(10)
)

// displayCaps reports the configured resize behavior of the surface.
type displayCaps struct {
	smooth bool
}

func (c displayCaps) SmoothLayout() bool { return c.smooth }

type demoApp struct {
	cfg      config.Config
	theme    *material.Theme
	store    *img.Store
	resolver *img.Resolver
	lb       *lightbox.Lightbox
	watcher  *img.Watcher

	mu    sync.Mutex
	paths []string

	clicks []widget.Clickable
	cells  []core.Rect
}

func newDemoApp(cfg config.Config, w *app.Window) (*demoApp, error) {
	paths, err := img.ScanDir(cfg.GalleryDir)
	if err != nil {
		return nil, err
	}

	a := &demoApp{
		cfg:      cfg,
		theme:    material.NewTheme(),
		store:    img.NewStore(4, w.Invalidate),
		resolver: img.NewResolver(4, w.Invalidate),
		paths:    paths,
	}
	a.lb = lightbox.New(lightbox.Options{
		Images:        a.store,
		Capabilities:  displayCaps{smooth: cfg.SmoothResize},
		ReducedMotion: func() bool { return cfg.ReducedMotion },
		Callbacks: lightbox.Callbacks{
			OnRequestClose: func() {
				if cfg.Debug {
					log.Printf("[INFO] close requested by fling")
				}
			},
			OnPressSave:  func(uri string) { log.Printf("[INFO] save %s", uri) },
			OnPressShare: func(uri string) { log.Printf("[INFO] share %s", uri) },
		},
		Debug: cfg.Debug,
	})

	watcher, err := img.WatchDir(cfg.GalleryDir, func(fresh []string) {
		a.mu.Lock()
		a.paths = fresh
		a.mu.Unlock()
		w.Invalidate()
	})
	if err != nil {
		log.Printf("[WARN] gallery watching disabled: %v", err)
	} else {
		a.watcher = watcher
	}
	return a, nil
}

// Run drives the window event loop.
func (a *demoApp) Run(w *app.Window) error {
	var ops op.Ops
	tag := new(int)

	for {
		switch e := w.Event().(type) {
		case app.DestroyEvent:
			if a.watcher != nil {
				a.watcher.Close()
			}
			return e.Err

		case app.FrameEvent:
			gtx := app.NewContext(&ops, e)

			for {
				ev, ok := gtx.Event(key.Filter{Focus: tag})
				if !ok {
					break
				}
				if ke, ok := ev.(key.Event); ok && ke.State == key.Press {
					a.handleKeyEvent(gtx, ke)
				}
			}
			event.Op(gtx.Ops, tag)

			animating := a.layout(gtx, frameInsets(gtx, e))
			e.Frame(gtx.Ops)

			a.lb.ProcessEffects()
			if animating {
				w.Invalidate()
			}
		}
	}
}

func (a *demoApp) handleKeyEvent(gtx layout.Context, e key.Event) {
	switch e.Name {
	case key.NameEscape:
		a.lb.Close(gtx.Now)
	case key.NameLeftArrow:
		a.lb.Step(-1, gtx.Now)
	case key.NameRightArrow:
		a.lb.Step(1, gtx.Now)
	}
}

func frameInsets(gtx layout.Context, e app.FrameEvent) lightbox.Insets {
	return lightbox.Insets{
		Top:    float64(gtx.Dp(e.Insets.Top)),
		Bottom: float64(gtx.Dp(e.Insets.Bottom)),
		Left:   float64(gtx.Dp(e.Insets.Left)),
		Right:  float64(gtx.Dp(e.Insets.Right)),
	}
}

func (a *demoApp) layout(gtx layout.Context, insets lightbox.Insets) bool {
	paint.Fill(gtx.Ops, color.NRGBA{R: 18, G: 18, B: 20, A: 255})

	a.resolver.Drain(nil)
	a.layoutGrid(gtx)

	if a.lb.Mounted() {
		return a.lb.Frame(gtx, a.theme, insets)
	}
	return false
}

// layoutGrid draws the thumbnail grid and records each cell's screen
// rect; those rects become the morph origins when a session opens.
func (a *demoApp) layoutGrid(gtx layout.Context) {
	a.mu.Lock()
	paths := make([]string, len(a.paths))
	copy(paths, a.paths)
	a.mu.Unlock()

	if len(a.clicks) != len(paths) {
		a.clicks = make([]widget.Clickable, len(paths))
		a.cells = make([]core.Rect, len(paths))
	}

	cell := gtx.Dp(gridCell)
	gap := gtx.Dp(gridGap)
	cols := (gtx.Constraints.Max.X - gap) / (cell + gap)
	if cols < 1 {
		cols = 1
	}

	for i, path := range paths {
		a.resolver.Request(path)

		col := i % cols
		row := i / cols
		x := gap + col*(cell+gap)
		y := gap + row*(cell+gap)
		rect := image.Rect(x, y, x+cell, y+cell)
		a.cells[i] = core.Rect{
			X: float64(x), Y: float64(y),
			W: float64(cell), H: float64(cell),
		}

		for a.clicks[i].Clicked(gtx) {
			a.openSession(gtx, paths, i)
		}

		off := op.Offset(rect.Min).Push(gtx.Ops)
		cgtx := gtx
		cgtx.Constraints = layout.Exact(image.Pt(cell, cell))
		a.clicks[i].Layout(cgtx, func(gtx layout.Context) layout.Dimensions {
			a.drawThumb(gtx, path, cell)
			return layout.Dimensions{Size: image.Pt(cell, cell)}
		})
		off.Pop()
	}
}

func (a *demoApp) drawThumb(gtx layout.Context, path string, cell int) {
	defer clip.Rect(image.Rect(0, 0, cell, cell)).Push(gtx.Ops).Pop()

	tex, ok := a.store.AcquireThumb(path, a.cfg.ThumbPx)
	if !ok {
		paint.ColorOp{Color: color.NRGBA{R: 40, G: 40, B: 44, A: 255}}.Add(gtx.Ops)
		paint.PaintOp{}.Add(gtx.Ops)
		return
	}

	sz := tex.Size()
	sx := float32(cell) / float32(sz.X)
	sy := float32(cell) / float32(sz.Y)
	tr := op.Affine(f32.Affine2D{}.Scale(f32.Point{}, f32.Pt(sx, sy))).Push(gtx.Ops)
	tex.Add(gtx.Ops)
	paint.PaintOp{}.Add(gtx.Ops)
	tr.Pop()
}

// openSession snapshots the grid into a session and hands it to the
// lightbox. Images without a finished probe open without geometry and
// snap instead of morphing.
func (a *demoApp) openSession(gtx layout.Context, paths []string, initial int) {
	images := make([]core.ImageSource, len(paths))
	for i, path := range paths {
		name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
		src := core.ImageSource{
			URI:     path,
			Alt:     name,
			Caption: name,
		}
		if sz, ok := a.resolver.Lookup(path); ok {
			dims := sz
			src.Dimensions = &dims
		}
		thumb := a.cells[i]
		src.ThumbRect = &thumb
		images[i] = src
	}
	a.lb.Open(core.NewSession(a.cfg.GalleryDir, images, initial), gtx.Now)
}

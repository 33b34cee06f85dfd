// Command lightbox is a demo gallery: a thumbnail grid where clicking
// an image morphs it to fullscreen, with paging, zoom, and gesture
// dismissal.
package main

import (
	"flag"
	"log"
	"os"

	"gioui.org/app"
	"gioui.org/unit"

	"github.com/elektrokombinacija/lightbox/internal/config"
)

func main() {
	cfgPath := flag.String("config", "", "path to YAML config")
	galleryDir := flag.String("gallery", "", "gallery directory (overrides config)")
	flag.Parse()

	cfg := config.Default()
	if *cfgPath != "" {
		var err error
		cfg, err = config.Load(*cfgPath)
		if err != nil {
			log.Fatal(err)
		}
	}
	if *galleryDir != "" {
		cfg.GalleryDir = *galleryDir
	}

	go func() {
		window := new(app.Window)
		window.Option(
			app.Title("Lightbox"),
			app.Size(unit.Dp(cfg.Window.Width), unit.Dp(cfg.Window.Height)),
		)

		application, err := newDemoApp(cfg, window)
		if err != nil {
			log.Fatal(err)
		}
		if err := application.Run(window); err != nil {
			log.Fatal(err)
		}
		os.Exit(0)
	}()
	app.Main()
}

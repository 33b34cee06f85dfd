package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMergesOverDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lightbox.yaml")
	doc := `
window:
  width: 1280
gallery_dir: /srv/photos
reduced_motion: true
`
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Window.Width != 1280 {
		t.Errorf("Width = %d, want 1280", cfg.Window.Width)
	}
	if cfg.Window.Height != Default().Window.Height {
		t.Errorf("Height = %d, want default %d", cfg.Window.Height, Default().Window.Height)
	}
	if cfg.GalleryDir != "/srv/photos" {
		t.Errorf("GalleryDir = %s", cfg.GalleryDir)
	}
	if !cfg.ReducedMotion {
		t.Error("ReducedMotion not set")
	}
	if cfg.ThumbPx != Default().ThumbPx {
		t.Errorf("ThumbPx = %d, want default", cfg.ThumbPx)
	}
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
	if cfg != Default() {
		t.Errorf("cfg = %+v, want defaults", cfg)
	}
}

func TestLoadRejectsBadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("window: ["), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestNormalizeClampsThumbSize(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lightbox.yaml")
	if err := os.WriteFile(path, []byte("thumb_px: 4"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.ThumbPx != Default().ThumbPx {
		t.Errorf("ThumbPx = %d, want default", cfg.ThumbPx)
	}
}

package core

import (
	"math"
	"testing"
)

func TestRectCenterAspect(t *testing.T) {
	r := Rect{X: 100, Y: 200, W: 80, H: 40}
	if got := r.CenterX(); got != 140 {
		t.Errorf("CenterX = %v, want 140", got)
	}
	if got := r.CenterY(); got != 220 {
		t.Errorf("CenterY = %v, want 220", got)
	}
	if got := r.Aspect(); got != 2 {
		t.Errorf("Aspect = %v, want 2", got)
	}
	if (Rect{W: 10, H: 0}).Aspect() != 0 {
		t.Error("degenerate rect should have aspect 0")
	}
}

func TestHasGeometry(t *testing.T) {
	tests := []struct {
		name string
		src  ImageSource
		want bool
	}{
		{"complete", ImageSource{
			Dimensions: &Size{W: 1600, H: 1200},
			ThumbRect:  &Rect{X: 0, Y: 0, W: 80, H: 80},
		}, true},
		{"no dimensions", ImageSource{
			ThumbRect: &Rect{X: 0, Y: 0, W: 80, H: 80},
		}, false},
		{"no thumb rect", ImageSource{
			Dimensions: &Size{W: 1600, H: 1200},
		}, false},
		{"zero height dimensions", ImageSource{
			Dimensions: &Size{W: 1600, H: 0},
			ThumbRect:  &Rect{X: 0, Y: 0, W: 80, H: 80},
		}, false},
		{"empty thumb", ImageSource{
			Dimensions: &Size{W: 1600, H: 1200},
			ThumbRect:  &Rect{X: 0, Y: 0, W: 0, H: 80},
		}, false},
	}

	for _, tt := range tests {
		if got := tt.src.HasGeometry(); got != tt.want {
			t.Errorf("%s: HasGeometry = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestNewSessionClampsIndex(t *testing.T) {
	images := []ImageSource{{URI: "a"}, {URI: "b"}, {URI: "c"}}

	if s := NewSession("s", images, -3); s.InitialIndex != 0 {
		t.Errorf("negative index clamped to %d, want 0", s.InitialIndex)
	}
	if s := NewSession("s", images, 7); s.InitialIndex != 2 {
		t.Errorf("overflow index clamped to %d, want 2", s.InitialIndex)
	}
	if s := NewSession("s", images, 1); s.InitialIndex != 1 {
		t.Errorf("in-range index changed to %d, want 1", s.InitialIndex)
	}
}

func TestSessionAt(t *testing.T) {
	s := NewSession("s", []ImageSource{{URI: "a"}}, 0)
	if s.At(0).URI != "a" {
		t.Error("At(0) should return first image")
	}
	if s.At(5).URI != "" {
		t.Error("out-of-range At should return zero source")
	}
	if s.At(-1).URI != "" {
		t.Error("negative At should return zero source")
	}
}

func TestAllHaveGeometry(t *testing.T) {
	full := ImageSource{
		Dimensions: &Size{W: 800, H: 600},
		ThumbRect:  &Rect{X: 10, Y: 10, W: 64, H: 64},
	}
	bare := ImageSource{URI: "bare"}

	if !NewSession("s", []ImageSource{full, full}, 0).AllHaveGeometry() {
		t.Error("all-measured session should report geometry")
	}
	if NewSession("s", []ImageSource{full, bare}, 0).AllHaveGeometry() {
		t.Error("one unmeasured image should disable geometry")
	}
	if NewSession("s", nil, 0).AllHaveGeometry() {
		t.Error("empty session should not report geometry")
	}
}

func TestSnapToPixel(t *testing.T) {
	tests := []struct {
		v, ratio, want float64
	}{
		{10.3, 1, 10},
		{10.6, 1, 11},
		{10.3, 2, 10.5},
		{10.1, 2, 10},
		{10.26, 3, 10.333333333333334},
		{7.4, 0, 7}, // unknown ratio falls back to whole pixels
	}

	for _, tt := range tests {
		got := SnapToPixel(tt.v, tt.ratio)
		if math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("SnapToPixel(%v, %v) = %v, want %v", tt.v, tt.ratio, got, tt.want)
		}
	}
}

func TestLerpClamp(t *testing.T) {
	if got := Lerp(10, 20, 0.5); got != 15 {
		t.Errorf("Lerp = %v, want 15", got)
	}
	if got := Lerp(10, 20, 0); got != 10 {
		t.Errorf("Lerp at 0 = %v, want 10", got)
	}
	if got := Lerp(10, 20, 1); got != 20 {
		t.Errorf("Lerp at 1 = %v, want 20", got)
	}
	if got := Clamp(5, 0, 1); got != 1 {
		t.Errorf("Clamp = %v, want 1", got)
	}
}

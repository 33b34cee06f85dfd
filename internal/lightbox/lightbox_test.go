package lightbox

import (
	"image"
	"testing"
	"time"

	"gioui.org/layout"
	"gioui.org/op"

	"github.com/elektrokombinacija/lightbox/internal/core"
)

func testContext(w, h int) layout.Context {
	return layout.Context{
		Ops:         new(op.Ops),
		Constraints: layout.Exact(image.Pt(w, h)),
		Now:         time.Unix(0, 0),
	}
}

func TestSafeAreaSubtractsInsets(t *testing.T) {
	lb := New(Options{})
	safe := lb.safeArea(testContext(800, 600), Insets{Top: 24, Bottom: 16, Left: 8, Right: 8})
	want := core.Rect{X: 8, Y: 24, W: 784, H: 560}
	if safe != want {
		t.Fatalf("safeArea = %+v, want %+v", safe, want)
	}
}

func TestSafeAreaFallsBackToCachedMeasurement(t *testing.T) {
	lb := New(Options{})
	good := lb.safeArea(testContext(800, 600), Insets{Top: 24})

	degenerate := lb.safeArea(testContext(0, 0), Insets{})
	if degenerate != good {
		t.Fatalf("degenerate frame returned %+v, want cached %+v", degenerate, good)
	}
}

func TestSafeAreaZeroBeforeFirstMeasurement(t *testing.T) {
	lb := New(Options{})
	if safe := lb.safeArea(testContext(0, 0), Insets{}); safe != (core.Rect{}) {
		t.Fatalf("safeArea = %+v before any measurement", safe)
	}
}

func TestOpenIgnoresEmptySessions(t *testing.T) {
	lb := New(Options{})
	now := time.Unix(0, 0)

	lb.Open(nil, now)
	if lb.Mounted() {
		t.Fatal("mounted after nil session")
	}
	lb.Open(core.NewSession("s", nil, 0), now)
	if lb.Mounted() {
		t.Fatal("mounted after empty session")
	}
	if got := lb.ActiveIndex(); got != -1 {
		t.Fatalf("ActiveIndex = %d while unmounted", got)
	}
}

func TestStepWhileUnmountedIsNoop(t *testing.T) {
	lb := New(Options{})
	lb.Step(1, time.Unix(0, 0)) // must not panic
}

package anim

import (
	"math"
	"testing"
	"time"
)

// runSpring advances a spring at 60fps until it settles or maxFrames pass.
// Returns the number of frames taken and whether it settled.
func runSpring(s *Spring, maxFrames int) (int, bool) {
	now := time.Unix(0, 0)
	for i := 0; i < maxFrames; i++ {
		now = now.Add(time.Second / 60)
		if !s.Advance(now) {
			return i + 1, true
		}
	}
	return maxFrames, false
}

func TestSpringConvergesToTarget(t *testing.T) {
	s := OpenSpring()
	s.Start(0, 1, time.Unix(0, 0))

	frames, settled := runSpring(s, 600)
	if !settled {
		t.Fatalf("spring did not settle within %d frames", frames)
	}
	if s.Value() != 1 {
		t.Errorf("settled value = %v, want exactly 1", s.Value())
	}
	if s.Running() {
		t.Error("spring still running after settle")
	}
}

func TestSpringNeverOvershoots(t *testing.T) {
	// Low damping would normally ring past the target; the clamp must
	// prevent the value from ever crossing it.
	s := NewSpring(800, 10)
	now := time.Unix(0, 0)
	s.Start(0, 1, now)

	for i := 0; i < 600; i++ {
		now = now.Add(time.Second / 60)
		running := s.Advance(now)
		if s.Value() > 1+1e-9 {
			t.Fatalf("frame %d: value %v exceeded target 1", i, s.Value())
		}
		if !running {
			break
		}
	}
	if s.Value() != 1 {
		t.Errorf("final value = %v, want 1", s.Value())
	}
}

func TestSpringNeverOvershootsDownward(t *testing.T) {
	s := NewSpring(800, 10)
	now := time.Unix(0, 0)
	s.Start(1, 0, now)

	for i := 0; i < 600; i++ {
		now = now.Add(time.Second / 60)
		running := s.Advance(now)
		if s.Value() < -1e-9 {
			t.Fatalf("frame %d: value %v crossed below target 0", i, s.Value())
		}
		if !running {
			break
		}
	}
}

func TestSpringSetSnapsAndCancels(t *testing.T) {
	s := OpenSpring()
	s.Start(0, 1, time.Unix(0, 0))
	s.Set(1)

	if s.Running() {
		t.Error("Set should cancel the running animation")
	}
	if s.Value() != 1 {
		t.Errorf("value = %v, want 1", s.Value())
	}
	// Advancing a snapped spring must not move it.
	s.Advance(time.Unix(1, 0))
	if s.Value() != 1 {
		t.Errorf("value moved after snap: %v", s.Value())
	}
}

func TestSpringRestartSupersedes(t *testing.T) {
	s := OpenSpring()
	now := time.Unix(0, 0)
	s.Start(0, 1, now)
	now = now.Add(50 * time.Millisecond)
	s.Advance(now)

	mid := s.Value()
	if mid <= 0 || mid >= 1 {
		t.Fatalf("expected mid-flight value, got %v", mid)
	}

	// Reverse toward 0 mid-flight.
	s.Start(mid, 0, now)
	_, settled := runSpring(s, 600)
	if !settled {
		t.Fatal("reversed spring did not settle")
	}
	if s.Value() != 0 {
		t.Errorf("reversed spring settled at %v, want 0", s.Value())
	}
}

func TestSettleSpringWithReleaseVelocity(t *testing.T) {
	s := SettleSpring()
	now := time.Unix(0, 0)
	// Drag released at 240px with a slow downward velocity.
	s.StartWithVelocity(240, 0, 500, now)

	_, settled := runSpring(s, 600)
	if !settled {
		t.Fatal("settle spring did not converge")
	}
	if s.Value() != 0 {
		t.Errorf("offset settled at %v, want 0", s.Value())
	}
}

func TestSpringLargeFrameGapIsStable(t *testing.T) {
	s := OpenSpring()
	now := time.Unix(0, 0)
	s.Start(0, 1, now)

	// Simulate a 2s stall followed by normal frames.
	now = now.Add(2 * time.Second)
	s.Advance(now)
	if v := s.Value(); math.IsNaN(v) || v < 0 || v > 1 {
		t.Fatalf("value after stall = %v", v)
	}
	_, settled := runSpring(s, 600)
	if !settled {
		t.Error("spring did not settle after stall")
	}
}

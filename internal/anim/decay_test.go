package anim

import (
	"math"
	"testing"
	"time"
)

func TestDecayAdvancesWithVelocity(t *testing.T) {
	d := NewDecay(DismissDecayRate)
	now := time.Unix(0, 0)
	d.Start(0, 1500, 0, now)

	now = now.Add(time.Second / 60)
	if !d.Advance(now) {
		t.Fatal("decay stopped immediately")
	}
	if d.Value() <= 0 {
		t.Errorf("value = %v, want positive movement", d.Value())
	}
	// One 60fps frame at 1500px/s covers roughly 25px.
	if d.Value() > 26 {
		t.Errorf("value = %v, moved too far in one frame", d.Value())
	}
}

func TestDecayWithGentleRateKeepsRunning(t *testing.T) {
	d := NewDecay(DismissDecayRate)
	now := time.Unix(0, 0)
	d.Start(0, 1500, 0, now)

	// Ten simulated seconds of frames: with the dismissal rate the decay
	// must still be in flight. Termination is the watcher's job.
	for i := 0; i < 600; i++ {
		now = now.Add(time.Second / 60)
		if !d.Advance(now) {
			t.Fatalf("unbounded decay stopped on its own at frame %d", i)
		}
	}
	if !d.Running() {
		t.Error("decay not running after 10s")
	}
}

func TestDecayStopCancelsInPlace(t *testing.T) {
	d := NewDecay(DismissDecayRate)
	now := time.Unix(0, 0)
	d.Start(0, 1500, 0, now)

	now = now.Add(100 * time.Millisecond)
	d.Advance(now)
	v := d.Value()

	d.Stop()
	if d.Running() {
		t.Error("decay running after Stop")
	}
	now = now.Add(time.Second)
	d.Advance(now)
	if d.Value() != v {
		t.Errorf("value moved after Stop: %v -> %v", v, d.Value())
	}
}

func TestDecayTravelBound(t *testing.T) {
	d := NewDecay(DismissDecayRate)
	now := time.Unix(0, 0)
	d.Start(0, 3000, 1600, now)

	for i := 0; i < 6000 && d.Running(); i++ {
		now = now.Add(time.Second / 60)
		d.Advance(now)
	}

	if d.Running() {
		t.Fatal("bounded decay never terminated")
	}
	if math.Abs(d.Value()-1600) > 1e-6 {
		t.Errorf("bounded decay stopped at %v, want 1600", d.Value())
	}
}

func TestDecayNegativeVelocity(t *testing.T) {
	d := NewDecay(DismissDecayRate)
	now := time.Unix(0, 0)
	d.Start(0, -2000, 1600, now)

	for i := 0; i < 6000 && d.Running(); i++ {
		now = now.Add(time.Second / 60)
		d.Advance(now)
	}
	if d.Value() != -1600 {
		t.Errorf("upward fling stopped at %v, want -1600", d.Value())
	}
}

func TestDecayClosedFormMatchesAnalytic(t *testing.T) {
	// After time T the traveled distance is v0*(1-exp(-rate*T))/rate,
	// independent of frame subdivision.
	const v0, rate = 1200.0, 0.5
	elapsed := 2.0

	d := NewDecay(rate)
	now := time.Unix(0, 0)
	d.Start(0, v0, 0, now)
	steps := 120
	for i := 0; i < steps; i++ {
		now = now.Add(time.Duration(elapsed/float64(steps)*1e9) * time.Nanosecond)
		d.Advance(now)
	}

	want := v0 * (1 - math.Exp(-rate*elapsed)) / rate
	if math.Abs(d.Value()-want) > 1.0 {
		t.Errorf("traveled %v, analytic %v", d.Value(), want)
	}
}

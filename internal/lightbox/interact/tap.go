package interact

import (
	"math"
	"time"
)

// Pointer movement below this many pixels still counts as a tap.
const tapSlop = 12.0

const tapMaxDuration = 300 * time.Millisecond

// doubleTapGap is the longest pause between two taps that still reads as
// a double tap.
const doubleTapGap = 300 * time.Millisecond

// TapKind classifies a completed press/release pair.
type TapKind int

const (
	TapNone TapKind = iota
	TapSingle
	TapDouble
)

// TapDetector classifies press/release pairs into taps and double taps.
// A press that moves past the slop or outlives the duration limit is a
// drag, not a tap.
type TapDetector struct {
	pressed  bool
	pressX   float64
	pressY   float64
	pressAt  time.Duration
	moved    bool
	lastTap  time.Duration
	hasPrior bool
}

// Press records a pointer press at the event position and timestamp.
func (t *TapDetector) Press(x, y float64, at time.Duration) {
	t.pressed = true
	t.pressX = x
	t.pressY = y
	t.pressAt = at
	t.moved = false
}

// Move accumulates pointer motion during the press.
func (t *TapDetector) Move(x, y float64) {
	if !t.pressed {
		return
	}
	if math.Hypot(x-t.pressX, y-t.pressY) > tapSlop {
		t.moved = true
	}
}

// Release classifies the gesture end.
func (t *TapDetector) Release(at time.Duration) TapKind {
	if !t.pressed {
		return TapNone
	}
	t.pressed = false

	if t.moved || at-t.pressAt > tapMaxDuration {
		t.hasPrior = false
		return TapNone
	}

	if t.hasPrior && at-t.lastTap <= doubleTapGap {
		t.hasPrior = false
		return TapDouble
	}
	t.hasPrior = true
	t.lastTap = at
	return TapSingle
}

// Cancel aborts any in-flight press, e.g. when another gesture claims
// the pointer.
func (t *TapDetector) Cancel() {
	t.pressed = false
	t.hasPrior = false
}

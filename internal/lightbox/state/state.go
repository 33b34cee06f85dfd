// Package state manages the lightbox's shared animated state. Each value
// has exactly one writer: the progress controller owns the open progress
// pair, the dismiss machine owns the drag offset and fly-away flag. All
// other components only read. Side effects visible outside the frame loop
// travel through a one-directional effect queue, never by direct call.
package state

import (
	"time"

	"github.com/elektrokombinacija/lightbox/internal/core"
)

// EffectKind identifies an application-level side effect requested from
// the frame context.
type EffectKind int

const (
	// EffectDismissed fires once when the open progress returns to zero
	// from a nonzero value. It is the sole trigger for unmounting the
	// session content.
	EffectDismissed EffectKind = iota
	// EffectCloseRequested fires once when a fling dismissal completes.
	EffectCloseRequested
	EffectSave
	EffectShare
)

func (k EffectKind) String() string {
	return [...]string{"Dismissed", "CloseRequested", "Save", "Share"}[k]
}

// Effect is one queued side effect.
type Effect struct {
	Kind EffectKind
	URI  string
}

// State holds all lightbox state for one window.
type State struct {
	Session *core.Session // nil while no lightbox is mounted

	Progress *Progress
	Dismiss  *Dismiss
	Pages    *Pages
	Chrome   *Chrome
	Caption  *Caption

	// ReducedMotion mirrors the platform preference; resolved by the
	// caller at open time.
	ReducedMotion bool

	effects chan Effect
}

// NewState creates an empty lightbox state.
func NewState() *State {
	return &State{
		Progress: NewProgress(),
		Dismiss:  NewDismiss(),
		Pages:    NewPages(),
		Chrome:   NewChrome(),
		Caption:  NewCaption(),
		effects:  make(chan Effect, 16),
	}
}

// Open mounts a session and starts the open animation. The morph only
// animates when motion is allowed and every image carries geometry;
// otherwise the progress pair snaps straight to open.
func (s *State) Open(session *core.Session, now time.Time) {
	s.Session = session
	s.Pages.Reset(session.Len(), session.InitialIndex)
	s.Dismiss.Reset()
	s.Chrome.Reset()
	s.Caption.Reset(session.At(session.InitialIndex).Caption != "")

	animate := !s.ReducedMotion && session.AllHaveGeometry()
	s.Progress.SetTarget(1, animate, now)
}

// Close starts the close animation (or snaps when motion is off). The
// session stays mounted until the progress pair reaches zero.
func (s *State) Close(now time.Time) {
	if s.Session == nil {
		return
	}
	animate := !s.ReducedMotion && s.Session.AllHaveGeometry()
	s.Progress.SetTarget(0, animate, now)
}

// Mounted reports whether session content should be in the tree. The
// overlay stays mounted while the close animation runs so the image does
// not flash on the next open.
func (s *State) Mounted() bool { return s.Session != nil }

// ClearSession unmounts the session content. Called from the application
// context in response to EffectDismissed, never from the frame context.
func (s *State) ClearSession() {
	s.Session = nil
	s.Dismiss.Reset()
	s.Pages.Reset(0, 0)
	s.Chrome.Reset()
}

// Advance drives every animation one frame and runs the frame-side
// observers. screenH is the current viewport height for the dismissal
// magnitude watcher; pass 0 when unavailable, which dismisses immediately
// rather than letting a fling run forever. Returns true while any
// animation still needs frames.
func (s *State) Advance(now time.Time, screenH float64) bool {
	running := s.Progress.Advance(now)

	if s.Dismiss.Advance(now, screenH) {
		running = true
	}
	if s.Dismiss.ConsumeFlyAway() {
		// Fly-away completion: snap the progress pair shut and tell the
		// caller. The decay was already cancelled by the watcher.
		s.Progress.SetTarget(0, false, now)
		s.emit(Effect{Kind: EffectCloseRequested})
	}

	if s.Progress.ConsumeClosedEdge() {
		s.emit(Effect{Kind: EffectDismissed})
	}

	if s.Chrome.Advance(now) {
		running = true
	}
	if s.Caption.Advance(now) {
		running = true
	}
	return running
}

// RequestSave queues a save callback for the given image.
func (s *State) RequestSave(uri string) { s.emit(Effect{Kind: EffectSave, URI: uri}) }

// RequestShare queues a share callback for the given image.
func (s *State) RequestShare(uri string) { s.emit(Effect{Kind: EffectShare, URI: uri}) }

// PollEffect drains one queued effect. Called from the application
// context after each frame.
func (s *State) PollEffect() (Effect, bool) {
	select {
	case e := <-s.effects:
		return e, true
	default:
		return Effect{}, false
	}
}

func (s *State) emit(e Effect) {
	select {
	case s.effects <- e:
	default:
		// The queue only backs up if the application context stopped
		// draining; dropping is preferable to blocking the frame.
	}
}

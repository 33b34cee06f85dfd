package img

import (
	"fmt"
	"image"
	"log"
	"os"
	"sync"

	"gioui.org/op/paint"
	"golang.org/x/sync/errgroup"
)

type decoded struct {
	key string
	img image.Image
	err error
}

// Store decodes images off the frame loop and hands out paint.ImageOps.
// Acquire never blocks: a miss schedules a decode and returns false, and
// the texture shows up a frame or two later. Full-size images and
// thumbnails share the store under different keys.
type Store struct {
	mu      sync.Mutex
	pending map[string]bool

	ops     map[string]paint.ImageOp
	failed  map[string]bool
	group   errgroup.Group
	results chan decoded
	wake    func()
}

// NewStore creates a store with at most workers concurrent decodes.
// wake is called after each decode lands (may be nil).
func NewStore(workers int, wake func()) *Store {
	s := &Store{
		pending: make(map[string]bool),
		ops:     make(map[string]paint.ImageOp),
		failed:  make(map[string]bool),
		results: make(chan decoded, 16),
		wake:    wake,
	}
	if workers < 1 {
		workers = 1
	}
	s.group.SetLimit(workers)
	return s
}

// Acquire implements widgets.ImageProvider. Frame context only.
func (s *Store) Acquire(uri string) (paint.ImageOp, bool) {
	s.absorb()
	if op, ok := s.ops[uri]; ok {
		return op, true
	}
	if !s.failed[uri] {
		s.schedule(uri, func() (image.Image, error) { return decodeFile(uri) })
	}
	return paint.ImageOp{}, false
}

// AcquireThumb is Acquire for a square thumbnail of the image, decoded
// and downscaled off the frame loop.
func (s *Store) AcquireThumb(uri string, px int) (paint.ImageOp, bool) {
	s.absorb()
	key := fmt.Sprintf("%s#%d", uri, px)
	if op, ok := s.ops[key]; ok {
		return op, true
	}
	if !s.failed[key] {
		s.schedule(key, func() (image.Image, error) {
			src, err := decodeFile(uri)
			if err != nil {
				return nil, err
			}
			return Thumbnail(src, px, px), nil
		})
	}
	return paint.ImageOp{}, false
}

func (s *Store) schedule(key string, load func() (image.Image, error)) {
	s.mu.Lock()
	if s.pending[key] {
		s.mu.Unlock()
		return
	}
	s.pending[key] = true
	s.mu.Unlock()

	s.group.Go(func() error {
		m, err := load()
		s.results <- decoded{key: key, img: m, err: err}
		if s.wake != nil {
			s.wake()
		}
		return nil
	})
}

// absorb uploads finished decodes. Runs in the frame context, which is
// the only writer of ops and failed.
func (s *Store) absorb() {
	for {
		select {
		case d := <-s.results:
			s.mu.Lock()
			delete(s.pending, d.key)
			s.mu.Unlock()
			if d.err != nil {
				log.Printf("[WARN] decode %s: %v", d.key, d.err)
				s.failed[d.key] = true
				continue
			}
			s.ops[d.key] = paint.NewImageOp(d.img)
		default:
			return
		}
	}
}

// Forget drops a cached texture, for files the watcher saw change.
func (s *Store) Forget(uri string) {
	for key := range s.ops {
		if key == uri || len(key) > len(uri) && key[:len(uri)+1] == uri+"#" {
			delete(s.ops, key)
		}
	}
	delete(s.failed, uri)
}

func decodeFile(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	m, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return m, nil
}

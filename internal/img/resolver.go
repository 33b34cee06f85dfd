package img

import (
	"fmt"
	"image"
	"os"
	"sync"

	"golang.org/x/sync/errgroup"

	// Register decoders for every gallery format. DecodeConfig and
	// Decode both dispatch on these.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/webp"

	"github.com/elektrokombinacija/lightbox/internal/core"
)

// Probe is one finished dimension lookup.
type Probe struct {
	URI  string
	Size core.Size
	Err  error
}

// Resolver reads intrinsic image dimensions from file headers without
// decoding pixel data. Probes run on a bounded worker pool; results are
// drained from the frame context, so the cache has a single writer.
type Resolver struct {
	mu      sync.Mutex
	pending map[string]bool

	cache   map[string]core.Size
	group   errgroup.Group
	results chan Probe
	wake    func()
}

// NewResolver creates a resolver with at most workers concurrent
// probes. wake is called after each probe finishes (may be nil).
func NewResolver(workers int, wake func()) *Resolver {
	r := &Resolver{
		pending: make(map[string]bool),
		cache:   make(map[string]core.Size),
		results: make(chan Probe, 64),
		wake:    wake,
	}
	if workers < 1 {
		workers = 1
	}
	r.group.SetLimit(workers)
	return r
}

// Lookup returns the cached dimensions for uri. Frame context only.
func (r *Resolver) Lookup(uri string) (core.Size, bool) {
	sz, ok := r.cache[uri]
	return sz, ok
}

// Request schedules a probe for uri unless one is cached or in flight.
func (r *Resolver) Request(uri string) {
	if _, ok := r.cache[uri]; ok {
		return
	}
	r.mu.Lock()
	if r.pending[uri] {
		r.mu.Unlock()
		return
	}
	r.pending[uri] = true
	r.mu.Unlock()

	r.group.Go(func() error {
		sz, err := probeFile(uri)
		r.results <- Probe{URI: uri, Size: sz, Err: err}
		if r.wake != nil {
			r.wake()
		}
		return nil
	})
}

// Drain folds finished probes into the cache and reports each one to
// visit (may be nil). Frame context only. Returns the number absorbed.
func (r *Resolver) Drain(visit func(Probe)) int {
	n := 0
	for {
		select {
		case p := <-r.results:
			r.mu.Lock()
			delete(r.pending, p.URI)
			r.mu.Unlock()
			if p.Err == nil {
				r.cache[p.URI] = p.Size
			}
			if visit != nil {
				visit(p)
			}
			n++
		default:
			return n
		}
	}
}

// Wait blocks until every scheduled probe has been delivered.
func (r *Resolver) Wait() { _ = r.group.Wait() }

func probeFile(path string) (core.Size, error) {
	f, err := os.Open(path)
	if err != nil {
		return core.Size{}, fmt.Errorf("probe %s: %w", path, err)
	}
	defer f.Close()
	cfg, _, err := image.DecodeConfig(f)
	if err != nil {
		return core.Size{}, fmt.Errorf("probe %s: %w", path, err)
	}
	return core.Size{W: float64(cfg.Width), H: float64(cfg.Height)}, nil
}

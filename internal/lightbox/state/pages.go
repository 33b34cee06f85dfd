package state

// Pages coordinates the active page index and per-page zoom state.
// While any page is zoomed the dismiss gesture, the pager's own swiping,
// and the chrome are all suppressed.
type Pages struct {
	active int
	count  int
	scaled map[int]bool
}

// NewPages creates an empty coordinator.
func NewPages() *Pages {
	return &Pages{scaled: make(map[int]bool)}
}

// Reset reinitializes for a session of count pages starting at initial.
func (p *Pages) Reset(count, initial int) {
	p.count = count
	p.active = initial
	p.scaled = make(map[int]bool)
}

// SetActive records a completed page change and clears the new page's
// zoom state, so every page is entered unzoomed.
func (p *Pages) SetActive(i int) {
	if i < 0 || i >= p.count {
		return
	}
	p.active = i
	p.scaled[i] = false
}

// Active returns the active page index.
func (p *Pages) Active() int { return p.active }

// Count returns the number of pages.
func (p *Pages) Count() int { return p.count }

// SetScaled records the zoom flag reported by page i's pinch handler.
func (p *Pages) SetScaled(i int, scaled bool) {
	if i < 0 || i >= p.count {
		return
	}
	p.scaled[i] = scaled
}

// Scaled reports whether page i is zoomed.
func (p *Pages) Scaled(i int) bool { return p.scaled[i] }

// ActiveScaled reports whether the active page is zoomed.
func (p *Pages) ActiveScaled() bool { return p.scaled[p.active] }

// AnyScaled reports whether any page is zoomed.
func (p *Pages) AnyScaled() bool {
	for _, s := range p.scaled {
		if s {
			return true
		}
	}
	return false
}

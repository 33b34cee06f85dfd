package interact

import (
	"math"
	"time"

	"github.com/elektrokombinacija/lightbox/internal/anim"
)

// pageFlingVelocity is the horizontal release speed, in pixels per
// second, that advances a page even when the drag covered less than half
// the width.
const pageFlingVelocity = 500.0

// Pager owns the continuous page position of the carousel. Position is
// measured in page units: 0 is the first page centered, 1 the second.
// Releases settle to the nearest page with a spring, with a velocity
// assist so quick swipes advance.
type Pager struct {
	count int
	pos   float64

	settle *anim.Spring

	dragging     bool
	dragStartX   float64
	dragStartPos float64

	// OnPageChange fires when a swipe or jump commits to a new page.
	OnPageChange func(page int)

	active int
}

// NewPager creates a pager for count pages starting at initial.
func NewPager(count, initial int) *Pager {
	p := &Pager{count: count, settle: anim.SettleSpring()}
	p.active = clampPage(initial, count)
	p.pos = float64(p.active)
	p.settle.Set(p.pos)
	return p
}

// Reset reinitializes for a new session.
func (p *Pager) Reset(count, initial int) {
	p.count = count
	p.active = clampPage(initial, count)
	p.pos = float64(p.active)
	p.dragging = false
	p.settle.Set(p.pos)
}

// StartDrag begins a horizontal swipe at screen x.
func (p *Pager) StartDrag(x float64) {
	if p.count < 2 {
		return
	}
	p.dragging = true
	p.dragStartX = x
	p.dragStartPos = p.pos
	p.settle.Set(p.pos)
}

// MoveDrag updates the swipe. width is the current page width in pixels.
func (p *Pager) MoveDrag(x, width float64) {
	if !p.dragging || width <= 0 {
		return
	}
	p.pos = clampPos(p.dragStartPos-(x-p.dragStartX)/width, p.count)
}

// EndDrag releases the swipe. A fast release advances one page in the
// fling direction; otherwise the nearest page wins. The committed page
// is reported immediately; the spring then carries the position there.
func (p *Pager) EndDrag(velocityX, width float64, now time.Time) {
	if !p.dragging {
		return
	}
	p.dragging = false

	target := int(math.Round(p.pos))
	if math.Abs(velocityX) > pageFlingVelocity {
		if velocityX < 0 {
			target = int(math.Floor(p.pos)) + 1
		} else {
			target = int(math.Ceil(p.pos)) - 1
		}
	}
	target = clampPage(target, p.count)

	var pageVel float64
	if width > 0 {
		pageVel = -velocityX / width
	}
	p.settle.StartWithVelocity(p.pos, float64(target), pageVel, now)
	p.commit(target)
}

// SetPage jumps to a page, animated or snapped.
func (p *Pager) SetPage(page int, animate bool, now time.Time) {
	page = clampPage(page, p.count)
	if animate {
		p.settle.Start(p.pos, float64(page), now)
	} else {
		p.pos = float64(page)
		p.settle.Set(p.pos)
	}
	p.commit(page)
}

// Advance drives the settle spring. Returns true while moving.
func (p *Pager) Advance(now time.Time) bool {
	if p.dragging {
		return false
	}
	running := p.settle.Advance(now)
	p.pos = p.settle.Value()
	return running
}

func (p *Pager) commit(page int) {
	if page == p.active {
		return
	}
	p.active = page
	if p.OnPageChange != nil {
		p.OnPageChange(page)
	}
}

// Pos returns the continuous page position in page units.
func (p *Pager) Pos() float64 { return p.pos }

// Active returns the committed page index.
func (p *Pager) Active() int { return p.active }

// Dragging reports whether a swipe is tracking the pointer.
func (p *Pager) Dragging() bool { return p.dragging }

func clampPage(page, count int) int {
	if page < 0 {
		return 0
	}
	if page >= count && count > 0 {
		return count - 1
	}
	return page
}

func clampPos(pos float64, count int) float64 {
	if pos < 0 {
		return 0
	}
	if max := float64(count - 1); pos > max && max >= 0 {
		return max
	}
	return pos
}

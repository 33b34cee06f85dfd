package interact

import (
	"math"
	"testing"
	"time"
)

const pageW = 400.0

func settlePager(p *Pager, now *time.Time) {
	for i := 0; i < 600; i++ {
		*now = now.Add(time.Second / 60)
		if !p.Advance(*now) {
			return
		}
	}
}

func TestPagerSlowDragSettlesToNearest(t *testing.T) {
	p := NewPager(3, 0)
	now := time.Unix(0, 0)

	// Drag 30% of a page width: not enough, snaps back.
	p.StartDrag(300)
	p.MoveDrag(300-0.3*pageW, pageW)
	p.EndDrag(-100, pageW, now)
	settlePager(p, &now)

	if p.Active() != 0 {
		t.Errorf("active = %d, want 0 after an undercommitted drag", p.Active())
	}
	if p.Pos() != 0 {
		t.Errorf("pos = %v, want 0", p.Pos())
	}

	// Drag 70%: commits to the next page.
	p.StartDrag(300)
	p.MoveDrag(300-0.7*pageW, pageW)
	p.EndDrag(-100, pageW, now)
	settlePager(p, &now)

	if p.Active() != 1 {
		t.Errorf("active = %d, want 1 after a committed drag", p.Active())
	}
}

func TestPagerFlingAdvancesPage(t *testing.T) {
	p := NewPager(3, 0)
	now := time.Unix(0, 0)

	// A short but fast leftward swipe advances despite covering only 10%.
	p.StartDrag(300)
	p.MoveDrag(300-0.1*pageW, pageW)
	p.EndDrag(-900, pageW, now)

	if p.Active() != 1 {
		t.Fatalf("active = %d, want 1 committed at release", p.Active())
	}
	settlePager(p, &now)
	if p.Pos() != 1 {
		t.Errorf("pos = %v, want 1", p.Pos())
	}
}

func TestPagerFlingBackward(t *testing.T) {
	p := NewPager(3, 2)
	now := time.Unix(0, 0)

	p.StartDrag(100)
	p.MoveDrag(100+0.1*pageW, pageW)
	p.EndDrag(900, pageW, now)
	settlePager(p, &now)

	if p.Active() != 1 {
		t.Errorf("active = %d, want 1", p.Active())
	}
}

func TestPagerClampsAtEnds(t *testing.T) {
	p := NewPager(2, 1)
	now := time.Unix(0, 0)

	p.StartDrag(100)
	p.MoveDrag(100-pageW, pageW) // try to drag past the last page
	if p.Pos() > 1 {
		t.Errorf("pos = %v, dragged past the last page", p.Pos())
	}
	p.EndDrag(-2000, pageW, now)
	settlePager(p, &now)
	if p.Active() != 1 {
		t.Errorf("active = %d, want clamped to 1", p.Active())
	}
}

func TestPagerPageChangeCallback(t *testing.T) {
	p := NewPager(3, 0)
	now := time.Unix(0, 0)

	var changes []int
	p.OnPageChange = func(page int) { changes = append(changes, page) }

	p.StartDrag(300)
	p.MoveDrag(300-0.8*pageW, pageW)
	p.EndDrag(-100, pageW, now)
	settlePager(p, &now)

	// Settling back without crossing must not refire.
	p.StartDrag(300)
	p.MoveDrag(290, pageW)
	p.EndDrag(0, pageW, now)
	settlePager(p, &now)

	if len(changes) != 1 || changes[0] != 1 {
		t.Errorf("changes = %v, want [1]", changes)
	}
}

func TestPagerSinglePageIgnoresDrags(t *testing.T) {
	p := NewPager(1, 0)
	p.StartDrag(200)
	p.MoveDrag(0, pageW)
	if p.Dragging() || p.Pos() != 0 {
		t.Error("single-page sessions must not page")
	}
}

func TestPagerSetPageSnap(t *testing.T) {
	p := NewPager(5, 0)
	p.SetPage(3, false, time.Unix(0, 0))
	if p.Pos() != 3 || p.Active() != 3 {
		t.Errorf("pos=%v active=%d, want 3/3", p.Pos(), p.Active())
	}
	// Out of range clamps.
	p.SetPage(9, false, time.Unix(0, 0))
	if p.Active() != 4 {
		t.Errorf("active = %d, want 4", p.Active())
	}
}

func TestPagerSettlePositionMonotonicApproach(t *testing.T) {
	p := NewPager(2, 0)
	now := time.Unix(0, 0)
	p.StartDrag(300)
	p.MoveDrag(300-0.6*pageW, pageW)
	p.EndDrag(-50, pageW, now)

	prev := p.Pos()
	for i := 0; i < 600; i++ {
		now = now.Add(time.Second / 60)
		running := p.Advance(now)
		if p.Pos() > 1+1e-9 {
			t.Fatalf("pos %v overshot the target page", p.Pos())
		}
		if math.Abs(p.Pos()-1) > math.Abs(prev-1)+1e-9 {
			t.Fatalf("pos %v moved away from target (prev %v)", p.Pos(), prev)
		}
		prev = p.Pos()
		if !running {
			break
		}
	}
	if p.Pos() != 1 {
		t.Errorf("pos = %v, want settled at 1", p.Pos())
	}
}

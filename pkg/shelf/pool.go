package shelf

import (
	"go.uber.org/atomic"
)

// LayoutHandle refers to a realized layout instance in a container's pool.
// The zero handle means "not realized".
type LayoutHandle int

// LayoutInstance is one item's realized copy of a template.
type LayoutInstance struct {
	Template *Template
	Index    int // Store index the instance was realized for
	Focused  bool

	subFocus int
}

// SubFocus returns the focused sub-item inside the layout.
func (l *LayoutInstance) SubFocus() int {
	return l.subFocus
}

// MoveLeft moves the intra-item sub-focus one step back.
func (l *LayoutInstance) MoveLeft() bool {
	if l.subFocus > 0 {
		l.subFocus--
		return true
	}
	return false
}

// MoveRight moves the intra-item sub-focus one step forward.
func (l *LayoutInstance) MoveRight() bool {
	if l.Template != nil && l.subFocus+1 < l.Template.SubFocusCount {
		l.subFocus++
		return true
	}
	return false
}

// PoolStats counts layout instance churn. The counters may be read from
// any goroutine, for example by a debug overlay.
type PoolStats struct {
	Live    atomic.Int64
	Created atomic.Uint64
	Freed   atomic.Uint64
}

// layoutPool is an arena of layout instances. Freed slots go on a free list
// and are reused; handles are slot index + 1. Instances are allocated
// individually so a pointer from get stays valid while the arena grows.
type layoutPool struct {
	slots []*LayoutInstance
	free  []int
	stats *PoolStats
}

func newLayoutPool(stats *PoolStats) *layoutPool {
	if stats == nil {
		stats = &PoolStats{}
	}
	return &layoutPool{stats: stats}
}

func (p *layoutPool) acquire(t *Template, index int, focused bool) LayoutHandle {
	inst := &LayoutInstance{Template: t, Index: index, Focused: focused}

	var slot int
	if n := len(p.free); n > 0 {
		slot = p.free[n-1]
		p.free = p.free[:n-1]
		p.slots[slot] = inst
	} else {
		slot = len(p.slots)
		p.slots = append(p.slots, inst)
	}

	p.stats.Live.Inc()
	p.stats.Created.Inc()
	return LayoutHandle(slot + 1)
}

func (p *layoutPool) get(h LayoutHandle) *LayoutInstance {
	slot := int(h) - 1
	if slot < 0 || slot >= len(p.slots) {
		return nil
	}
	return p.slots[slot]
}

func (p *layoutPool) release(h LayoutHandle) {
	slot := int(h) - 1
	if slot < 0 || slot >= len(p.slots) || p.slots[slot] == nil {
		return
	}
	p.slots[slot] = nil
	p.free = append(p.free, slot)

	p.stats.Live.Dec()
	p.stats.Freed.Inc()
}


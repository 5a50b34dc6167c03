package shelf

import (
	"time"

	"github.com/BrandonKowalski/shelf/pkg/shelf/constants"
)

// Rect is a viewport or slot rectangle in pixels.
type Rect struct {
	X      float64 `toml:"x"`
	Y      float64 `toml:"y"`
	Width  float64 `toml:"width"`
	Height float64 `toml:"height"`
}

// Slot describes one item drawn during a render pass.
type Slot struct {
	Index   int             // Store index
	Logical int             // Index of the real item (differs for filler copies)
	Item    Item            // The bound item, shared with filler copies
	Layout  *LayoutInstance // Realized layout, owned by the container until freed
	Bounds  Rect            // Position and size in viewport pixels
	Focused bool            // The cursor slot; drawn with the focused layout
	Active  bool            // The container has input focus
}

// RenderContext is the graphics collaborator handed to Render. It carries
// whatever font and texture lookup the backend needs. The container
// compares contexts to notice a switch, so implementations are usually
// pointers.
type RenderContext interface {
	// Measure returns a template's extent along o.
	Measure(t *Template, o constants.Orientation) float64
	// Begin starts a pass clipped to the container's content rectangle.
	Begin(clip Rect)
	Draw(s Slot, now time.Duration)
	End()
}

// cacheOffsets returns how many extra units to keep realized before and
// after the viewport, biased toward the scroll direction.
func (c *Container) cacheOffsets() (before, after int) {
	n := c.cfg.PreloadItems
	switch {
	case c.scroll.Speed() > 0:
		return 0, n
	case c.scroll.Speed() < 0:
		return n, 0
	default:
		return n / 2, n / 2
	}
}

// Render advances the scroll animation to now, frees layouts that left the
// kept window, then draws every visible slot. The cursor slot is drawn last
// so it can overlap its neighbours.
func (c *Container) Render(rc RenderContext, now time.Duration) {
	c.Tick(now)
	if rc != nil && rc != c.rc {
		// Metrics so far came from the template sizes or another
		// context; remeasure through this one.
		c.rc = rc
		c.updateLayout()
	}
	c.refreshLayout()
	defer c.syncPageControl()

	n := c.store.len()
	if c.layout == nil || n == 0 || rc == nil {
		return
	}

	o := c.cfg.Orientation
	perRow := c.itemsPerRow
	extent := c.scroll.Extent()
	crossExtent := c.layout.CrossSize(o)
	focusedExtent := c.measure(c.focusedLayout)
	first := c.scroll.FirstVisible()
	before, after := c.cacheOffsets()

	if n > (c.itemsPerPage+2+before+after)*perRow {
		c.FreeMemory(
			c.mapping.CorrectOffset(c, first-before, 0),
			c.mapping.CorrectOffset(c, first+c.itemsPerPage+1+after, 0),
		)
	}

	content := c.contentRect()
	mainOrigin, crossOrigin, mainLen := content.Y, content.X, content.Height
	if o == constants.Horizontal {
		mainOrigin, crossOrigin, mainLen = content.X, content.Y, content.Width
	}

	focusedUnit := c.scroll.Offset
	focusedCombined := panelIndex(c.scroll.Offset, c.scroll.Cursor, perRow)
	if perRow == 1 {
		focusedUnit = c.scroll.Combined()
	}

	pos := float64(first-before)*extent - c.scroll.Position()
	if perRow == 1 && focusedUnit < first {
		pos += focusedExtent - extent
	}
	end := mainLen + float64(after)*extent

	rc.Begin(content)
	var (
		focusedSlot Slot
		haveFocused bool
	)

rows:
	for unit := first - before; pos < end; unit++ {
		unitExtent := extent
		for col := 0; col < perRow; col++ {
			idx := c.mapping.CorrectOffset(c, unit, col)
			if !c.mapping.Wraps() {
				if idx >= n {
					break rows
				}
				if idx < 0 {
					continue
				}
			}

			focused := panelIndex(unit, col, perRow) == focusedCombined
			if focused && perRow == 1 {
				unitExtent = focusedExtent
			}

			cross := float64(col) * crossExtent
			bounds := Rect{X: crossOrigin + cross, Y: mainOrigin + pos, Width: c.layout.Width, Height: c.layout.Height}
			if o == constants.Horizontal {
				bounds = Rect{X: mainOrigin + pos, Y: crossOrigin + cross, Width: c.layout.Width, Height: c.layout.Height}
			}

			slot := c.realize(idx, focused)
			slot.Bounds = bounds
			if focused {
				slot.Bounds.Width, slot.Bounds.Height = c.focusedLayout.Width, c.focusedLayout.Height
				focusedSlot, haveFocused = slot, true
				continue
			}
			rc.Draw(slot, now)
		}
		pos += unitExtent
	}

	if haveFocused {
		rc.Draw(focusedSlot, now)
	}
	rc.End()
}

// realize returns the slot for store index idx, creating its layout
// instance on first use.
func (c *Container) realize(idx int, focused bool) Slot {
	e := c.store.at(idx)
	slot := Slot{Index: idx, Logical: idx, Item: e.item, Focused: focused, Active: c.hasFocus}
	if l := c.store.logicalLen(); l > 0 {
		slot.Logical = idx % l
	}

	handle, tmpl := &e.layout, c.layout
	if focused {
		handle, tmpl = &e.focused, c.focusedLayout
	}
	if c.pool.get(*handle) == nil {
		*handle = c.pool.acquire(tmpl, idx, focused)
	}
	slot.Layout = c.pool.get(*handle)
	return slot
}

// FreeMemory destroys the layout instances of every store entry outside the
// inclusive range [keepStart, keepEnd]. When keepStart > keepEnd the kept
// range wraps past the end of the store.
func (c *Container) FreeMemory(keepStart, keepEnd int) {
	n := c.store.len()
	if keepStart <= keepEnd {
		for i := 0; i < keepStart && i < n; i++ {
			c.freeEntry(i)
		}
		for i := max(keepEnd+1, 0); i < n; i++ {
			c.freeEntry(i)
		}
		return
	}
	for i := max(keepEnd+1, 0); i < keepStart && i < n; i++ {
		c.freeEntry(i)
	}
}

func (c *Container) freeEntry(i int) {
	e := c.store.at(i)
	if e == nil {
		return
	}
	c.releaseEntry(e)
}

func (c *Container) releaseEntry(e *entry) {
	if e.layout != 0 {
		c.pool.release(e.layout)
		e.layout = 0
	}
	if e.focused != 0 {
		c.pool.release(e.focused)
		e.focused = 0
	}
}

func (c *Container) freeAll() {
	for i := range c.store.entries {
		c.releaseEntry(&c.store.entries[i])
	}
}

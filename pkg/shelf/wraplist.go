package shelf

// wrapMapping is the circular list. The offset is unbounded in both
// directions and resolved modulo the store size; the cursor stays on the
// configured focus position while the items move past it. Short lists are
// padded with filler copies so the page is always full.
type wrapMapping struct{}

func (wrapMapping) Kind() Kind {
	return KindWrapList
}

func (wrapMapping) Wraps() bool {
	return true
}

func (wrapMapping) CorrectOffset(c *Container, offset, cursor int) int {
	return wrapIndex(offset, cursor, c.store.len())
}

// MoveUp never reaches an edge.
func (wrapMapping) MoveUp(c *Container, _ bool) bool {
	c.scrollTo(c.scroll.Offset - 1)
	return true
}

// MoveDown never reaches an edge.
func (wrapMapping) MoveDown(c *Container, _ bool) bool {
	c.scrollTo(c.scroll.Offset + 1)
	return true
}

func (wrapMapping) MoveLeft(*Container, bool) bool {
	return false
}

func (wrapMapping) MoveRight(*Container, bool) bool {
	return false
}

// ValidateOffset only pins the cursor; every offset is valid.
func (wrapMapping) ValidateOffset(c *Container) {
	c.scroll.Cursor = clamp(c.cfg.FocusPosition, 0, c.itemsPerPage-1)
}

// SelectItem scrolls the shortest way round to the nearest store entry
// holding the item.
func (wrapMapping) SelectItem(c *Container, index int) {
	s := &c.scroll
	n := c.store.len()
	if n == 0 {
		return
	}

	from := s.Combined()
	target := wrapPosition(index, from, n)
	if l := c.store.logicalLen(); l < n {
		// Filler copies of the item sit at index + k*l.
		for copyIdx := index + l; copyIdx < n; copyIdx += l {
			cand := wrapPosition(copyIdx, from, n)
			if abs(cand-from) < abs(target-from) {
				target = cand
			}
		}
	}
	if target != from {
		c.scrollTo(target - s.Cursor)
	}
}

// SelectedIndex reports the logical item under the cursor, so filler
// copies map back to their originals.
func (wrapMapping) SelectedIndex(c *Container) int {
	idx := wrapIndex(c.scroll.Offset, c.scroll.Cursor, c.store.len())
	if l := c.store.logicalLen(); l > 0 {
		return idx % l
	}
	return idx
}

func (wrapMapping) Rows(c *Container) int {
	return c.store.logicalLen()
}

func (wrapMapping) Scroll(c *Container, amount int) bool {
	if amount == 0 {
		return false
	}
	c.scrollTo(c.scroll.Offset + amount)
	return true
}

// CalculateLayout sizes the page like a list, then re-pads the store to
// fill it.
func (wrapMapping) CalculateLayout(c *Container, m Metrics) {
	c.itemsPerRow = 1
	c.itemsPerPage = max(int((m.Main-m.FocusedExtent)/m.Extent)+1, 1)

	for _, e := range c.store.unpad() {
		c.releaseEntry(&e)
	}
	c.store.pad(c.itemsPerPage)
	c.scroll.Cursor = clamp(c.cfg.FocusPosition, 0, c.itemsPerPage-1)
}

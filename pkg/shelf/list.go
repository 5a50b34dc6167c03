package shelf

// listMapping is the identity mapping: offset and cursor both count items.
type listMapping struct{}

func (listMapping) Kind() Kind {
	return KindList
}

func (listMapping) Wraps() bool {
	return false
}

func (listMapping) CorrectOffset(_ *Container, offset, cursor int) int {
	return listIndex(offset, cursor)
}

func (listMapping) MoveUp(c *Container, wrap bool) bool {
	s := &c.scroll
	switch {
	case s.Cursor > 0:
		c.setCursor(s.Cursor - 1)
	case s.Offset > 0:
		c.scrollTo(s.Offset - 1)
	case wrap:
		n := c.store.len()
		offset := max(n-c.itemsPerPage, 0)
		c.scrollTo(offset)
		c.setCursor(n - 1 - offset)
	default:
		return false
	}
	return true
}

func (listMapping) MoveDown(c *Container, wrap bool) bool {
	s := &c.scroll
	n := c.store.len()
	switch {
	case s.Offset+s.Cursor+1 < n:
		if s.Cursor+1 < c.itemsPerPage {
			c.setCursor(s.Cursor + 1)
		} else {
			c.scrollTo(s.Offset + 1)
		}
	case wrap:
		c.scrollTo(0)
		c.setCursor(0)
	default:
		return false
	}
	return true
}

// A list has no cross axis; left and right go to the item's sub-focus.
func (listMapping) MoveLeft(*Container, bool) bool {
	return false
}

func (listMapping) MoveRight(*Container, bool) bool {
	return false
}

// ValidateOffset pulls the offset back so the last page is full and keeps
// the cursor on an existing item.
func (listMapping) ValidateOffset(c *Container) {
	s := &c.scroll
	offset := clamp(s.Offset, 0, c.store.len()-c.itemsPerPage)
	if offset != s.Offset {
		s.Offset = offset
		s.Snap()
	}
	c.setCursor(s.Cursor)
}

func (listMapping) SelectItem(c *Container, index int) {
	offset, cursor := listPosition(index, c.scroll.Offset, c.itemsPerPage)
	if offset != c.scroll.Offset {
		c.scrollTo(offset)
	}
	c.setCursor(cursor)
}

func (listMapping) SelectedIndex(c *Container) int {
	return listIndex(c.scroll.Offset, c.scroll.Cursor)
}

func (listMapping) Rows(c *Container) int {
	return c.store.len()
}

func (listMapping) Scroll(c *Container, amount int) bool {
	offset := clamp(c.scroll.Offset+amount, 0, c.store.len()-c.itemsPerPage)
	if offset == c.scroll.Offset {
		return false
	}
	c.scrollTo(offset)
	return true
}

// CalculateLayout fits as many unfocused items as possible beside one
// focused item.
func (listMapping) CalculateLayout(c *Container, m Metrics) {
	c.itemsPerRow = 1
	c.itemsPerPage = max(int((m.Main-m.FocusedExtent)/m.Extent)+1, 1)
}

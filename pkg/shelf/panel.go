package shelf

// panelMapping lays the items out in rows of itemsPerRow. The offset counts
// rows and the cursor counts cells within the visible page, so the focused
// cell is at (cursor / itemsPerRow, cursor % itemsPerRow).
type panelMapping struct{}

func (panelMapping) Kind() Kind {
	return KindPanel
}

func (panelMapping) Wraps() bool {
	return false
}

func (panelMapping) CorrectOffset(c *Container, offset, cursor int) int {
	return panelIndex(offset, cursor, c.itemsPerRow)
}

func (p panelMapping) MoveUp(c *Container, wrap bool) bool {
	s := &c.scroll
	perRow := c.itemsPerRow
	switch {
	case s.Cursor >= perRow:
		c.setCursor(s.Cursor - perRow)
	case s.Offset > 0:
		c.scrollTo(s.Offset - 1)
	case wrap:
		rows := p.Rows(c)
		offset := max(rows-c.itemsPerPage, 0)
		lastRow := min(c.itemsPerPage, rows) - 1
		c.scrollTo(offset)
		c.setCursor(lastRow*perRow + s.Cursor%perRow)
	default:
		return false
	}
	return true
}

func (panelMapping) MoveDown(c *Container, wrap bool) bool {
	s := &c.scroll
	perRow := c.itemsPerRow
	n := c.store.len()
	nextRowExists := (s.Offset+1+s.Cursor/perRow)*perRow < n

	switch {
	case s.Cursor+perRow < c.itemsPerPage*perRow && nextRowExists:
		// Room on the page; land on the last item of a short final row.
		c.setCursor(min(s.Cursor+perRow, n-1-s.Offset*perRow))
	case nextRowExists:
		cursor := s.Cursor
		if (s.Offset+1)*perRow+cursor >= n {
			cursor = n - 1 - (s.Offset+1)*perRow
		}
		c.scrollTo(s.Offset + 1)
		c.setCursor(cursor)
	case wrap:
		col := s.Cursor % perRow
		c.scrollTo(0)
		c.setCursor(col)
	default:
		return false
	}
	return true
}

func (panelMapping) MoveLeft(c *Container, wrap bool) bool {
	s := &c.scroll
	perRow := c.itemsPerRow
	if perRow == 1 {
		return false
	}
	switch {
	case s.Cursor%perRow > 0:
		c.setCursor(s.Cursor - 1)
	case wrap:
		c.setCursor(s.Cursor + perRow - 1)
	default:
		return false
	}
	return true
}

func (panelMapping) MoveRight(c *Container, wrap bool) bool {
	s := &c.scroll
	perRow := c.itemsPerRow
	if perRow == 1 {
		return false
	}
	col := s.Cursor % perRow
	switch {
	case col+1 < perRow && panelIndex(s.Offset, s.Cursor+1, perRow) < c.store.len():
		c.setCursor(s.Cursor + 1)
	case wrap:
		c.setCursor(s.Cursor - col)
	default:
		return false
	}
	return true
}

func (p panelMapping) ValidateOffset(c *Container) {
	s := &c.scroll
	offset := clamp(s.Offset, 0, p.Rows(c)-c.itemsPerPage)
	if offset != s.Offset {
		s.Offset = offset
		s.Snap()
	}
	c.setCursor(s.Cursor)
}

func (panelMapping) SelectItem(c *Container, index int) {
	offset, cursor := panelPosition(index, c.scroll.Offset, c.itemsPerRow, c.itemsPerPage)
	if offset != c.scroll.Offset {
		c.scrollTo(offset)
	}
	c.setCursor(cursor)
}

func (panelMapping) SelectedIndex(c *Container) int {
	return panelIndex(c.scroll.Offset, c.scroll.Cursor, c.itemsPerRow)
}

func (panelMapping) Rows(c *Container) int {
	return (c.store.len() + c.itemsPerRow - 1) / c.itemsPerRow
}

func (p panelMapping) Scroll(c *Container, amount int) bool {
	offset := clamp(c.scroll.Offset+amount, 0, p.Rows(c)-c.itemsPerPage)
	if offset == c.scroll.Offset {
		return false
	}
	c.scrollTo(offset)
	c.setCursor(c.scroll.Cursor)
	return true
}

func (panelMapping) CalculateLayout(c *Container, m Metrics) {
	c.itemsPerRow = 1
	if m.CrossExtent > 0 {
		c.itemsPerRow = max(int(m.Cross/m.CrossExtent), 1)
	}
	c.itemsPerPage = max(int(m.Main/m.Extent), 1)
}

package shelf

// Mapping is the index strategy that gives a container its shape. It maps
// (offset, cursor) to store indices and implements the single-step moves.
//
// MoveUp/MoveDown move along the scroll axis (backward/forward) and
// MoveLeft/MoveRight move across it; the container translates screen
// directions according to its orientation. Each move returns false when it
// would leave the item range and wrapping is not allowed.
type Mapping interface {
	Kind() Kind
	CorrectOffset(c *Container, offset, cursor int) int
	MoveUp(c *Container, wrap bool) bool
	MoveDown(c *Container, wrap bool) bool
	MoveLeft(c *Container, wrap bool) bool
	MoveRight(c *Container, wrap bool) bool
	ValidateOffset(c *Container)
	SelectItem(c *Container, index int)
	SelectedIndex(c *Container) int
	// Rows is the number of scroll units the bound items occupy.
	Rows(c *Container) int
	// Scroll moves the offset by amount units, reporting whether it moved.
	Scroll(c *Container, amount int) bool
	CalculateLayout(c *Container, m Metrics)
	// Wraps reports whether offsets are resolved modulo the store size.
	Wraps() bool
}

// Metrics are the measured sizes a mapping derives its page shape from.
type Metrics struct {
	Main          float64 // viewport extent along the scroll axis
	Cross         float64 // viewport extent across the scroll axis
	Extent        float64 // unfocused item extent along the axis
	CrossExtent   float64 // unfocused item extent across the axis
	FocusedExtent float64 // focused item extent along the axis
}

func listIndex(offset, cursor int) int {
	return offset + cursor
}

// listPosition inverts listIndex: it keeps offset when index is visible
// from it and otherwise scrolls the minimum distance.
func listPosition(index, offset, perPage int) (int, int) {
	switch {
	case index >= offset && index < offset+perPage:
		return offset, index - offset
	case index < offset:
		return index, 0
	default:
		return index - perPage + 1, perPage - 1
	}
}

func panelIndex(offset, cursor, perRow int) int {
	return offset*perRow + cursor
}

// panelPosition inverts panelIndex with the same minimum-scroll rule, in
// rows.
func panelPosition(index, offset, perRow, rowsPerPage int) (int, int) {
	row := index / perRow
	switch {
	case row < offset:
		offset = row
	case row >= offset+rowsPerPage:
		offset = row - rowsPerPage + 1
	}
	return offset, index - offset*perRow
}

// wrapIndex resolves an unbounded combined index into [0, n). offset+cursor
// may be negative, hence the double modulo.
func wrapIndex(offset, cursor, n int) int {
	if n <= 0 {
		return 0
	}
	return ((offset+cursor)%n + n) % n
}

// wrapPosition returns the combined index nearest to from that resolves to
// index modulo n.
func wrapPosition(index, from, n int) int {
	if n <= 0 {
		return index
	}
	base := from - wrapIndex(from, 0, n)
	best := base + index
	for _, cand := range []int{base + index - n, base + index + n} {
		if abs(cand-from) < abs(best-from) {
			best = cand
		}
	}
	return best
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func clamp(v, lo, hi int) int {
	if hi < lo {
		hi = lo
	}
	return min(max(v, lo), hi)
}

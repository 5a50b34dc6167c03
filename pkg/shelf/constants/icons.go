package constants

// Scroll hint glyphs drawn by render contexts at the edges of a viewport
// when more content exists in that direction.
const (
	ArrowUp    = "▲" // More items above
	ArrowDown  = "▼" // More items below
	ArrowLeft  = "◀" // More items to the left
	ArrowRight = "▶" // More items to the right

	Ellipsis = "…" // Truncated label marker
)

// ScrollHint returns the glyph hinting at hidden content in direction d.
func ScrollHint(d Direction) string {
	switch d {
	case DirectionUp:
		return ArrowUp
	case DirectionDown:
		return ArrowDown
	case DirectionLeft:
		return ArrowLeft
	case DirectionRight:
		return ArrowRight
	default:
		return ""
	}
}

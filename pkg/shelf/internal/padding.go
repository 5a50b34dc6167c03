package internal

// Padding defines spacing on all four sides of a viewport.
type Padding struct {
	Top    float64 `toml:"top"`
	Right  float64 `toml:"right"`
	Bottom float64 `toml:"bottom"`
	Left   float64 `toml:"left"`
}

// UniformPadding creates a Padding with the same value on all sides.
func UniformPadding(value float64) Padding {
	return Padding{
		Top:    value,
		Right:  value,
		Bottom: value,
		Left:   value,
	}
}

// Inset shrinks the rectangle (x, y, w, h) by the padding. Width and height
// never go below zero.
func (p Padding) Inset(x, y, w, h float64) (float64, float64, float64, float64) {
	w -= p.Left + p.Right
	h -= p.Top + p.Bottom
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return x + p.Left, y + p.Top, w, h
}

package shelf

import (
	"math"
	"time"
)

// ScrollState is the offset/cursor/speed state shared by every container
// shape. Offset and Cursor are authoritative; the pixel position chases
// Offset*extent at a constant speed and never overshoots.
//
// Offset counts scroll units: items for lists, rows for panels.
type ScrollState struct {
	Offset int
	Cursor int

	position float64 // pixels
	speed    float64 // pixels per millisecond
	extent   float64 // pixels per scroll unit
	perPage  int     // scroll units per page
	duration time.Duration

	lastTick time.Duration
	ticked   bool
}

// NewScrollState returns a state that animates each scroll over duration.
func NewScrollState(duration time.Duration) ScrollState {
	return ScrollState{duration: duration, extent: 1, perPage: 1}
}

// SetMetrics updates the unit extent and page size. The pixel position is
// rescaled so an in-flight animation keeps its relative progress.
func (s *ScrollState) SetMetrics(extent float64, perPage int) {
	if extent <= 0 {
		extent = 1
	}
	if perPage < 1 {
		perPage = 1
	}
	if s.extent > 0 && s.extent != extent {
		s.position = s.position / s.extent * extent
		s.speed = s.speed / s.extent * extent
	}
	s.extent = extent
	s.perPage = perPage
}

// SetDuration changes the animation time for subsequent scrolls.
func (s *ScrollState) SetDuration(d time.Duration) {
	s.duration = d
}

// Extent returns the pixel size of one scroll unit.
func (s *ScrollState) Extent() float64 {
	return s.extent
}

// PerPage returns the number of scroll units in one page.
func (s *ScrollState) PerPage() int {
	return s.perPage
}

// Position returns the current interpolated pixel position.
func (s *ScrollState) Position() float64 {
	return s.position
}

// Target returns the pixel position the animation converges to.
func (s *ScrollState) Target() float64 {
	return float64(s.Offset) * s.extent
}

// Speed returns the current scroll speed in pixels per millisecond.
func (s *ScrollState) Speed() float64 {
	return s.speed
}

// Scrolling reports whether an animation is in flight.
func (s *ScrollState) Scrolling() bool {
	return s.speed != 0
}

// Combined returns Offset+Cursor, the unwrapped combined index.
func (s *ScrollState) Combined() int {
	return s.Offset + s.Cursor
}

// JumpRange is the distance in units beyond which ScrollToOffset teleports
// before animating: a quarter page, at least one unit.
func (s *ScrollState) JumpRange() int {
	r := s.perPage / 4
	if r <= 0 {
		r = 1
	}
	return r
}

// ScrollToOffset makes target the new offset and starts animating toward
// it. Jumps longer than JumpRange first move the position to within
// JumpRange of the target so long jumps take as long as short ones.
// A new call supersedes any animation in flight.
func (s *ScrollState) ScrollToOffset(target int) {
	dest := float64(target) * s.extent
	limit := float64(s.JumpRange()) * s.extent

	if dest < s.position && s.position-dest > limit {
		s.position = dest + limit
	}
	if dest > s.position && dest-s.position > limit {
		s.position = dest - limit
	}

	s.Offset = target
	if s.duration <= 0 {
		s.Snap()
		return
	}
	s.speed = (dest - s.position) / (float64(s.duration) / float64(time.Millisecond))
}

// Snap ends any animation at the current target.
func (s *ScrollState) Snap() {
	s.position = s.Target()
	s.speed = 0
}

// Tick advances the animation to time now. The first call only records the
// time. Crossing the target clamps onto it and stops the animation.
func (s *ScrollState) Tick(now time.Duration) {
	if !s.ticked {
		s.ticked = true
		s.lastTick = now
	}
	elapsed := float64(now-s.lastTick) / float64(time.Millisecond)
	s.lastTick = now
	if elapsed <= 0 || s.speed == 0 {
		return
	}

	target := s.Target()
	s.position += s.speed * elapsed
	if (s.speed < 0 && s.position < target) || (s.speed > 0 && s.position > target) {
		s.position = target
		s.speed = 0
	}
}

// FirstVisible returns the scroll unit at the leading edge of the viewport.
func (s *ScrollState) FirstVisible() int {
	return int(math.Floor(s.position / s.extent))
}

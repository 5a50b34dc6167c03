package shelf

import (
	"time"

	"github.com/BrandonKowalski/shelf/pkg/shelf/constants"
)

const itemSize = 10

func itemTemplate() *Template {
	return &Template{Name: "item", Width: 100, Height: itemSize}
}

// listConfig returns a vertical config showing perPage items of itemSize
// and snapping instead of animating.
func listConfig(perPage int) Config {
	return Config{
		ID:       1,
		Layouts:  LayoutSet{{Template: itemTemplate()}},
		Viewport: Rect{Width: 100, Height: float64(perPage * itemSize)},
	}
}

// panelConfig returns a grid config with perRow columns and rows visible
// rows of 100x10 cells.
func panelConfig(perRow, rows int) Config {
	cfg := listConfig(rows)
	cfg.Viewport.Width = float64(perRow * 100)
	return cfg
}

func letters(labels ...string) []Item {
	return MenuItems(labels...)
}

type recordingContext struct {
	clips []Rect
	slots []Slot
	ended int
}

func (r *recordingContext) Measure(t *Template, o constants.Orientation) float64 {
	return t.Size(o)
}

func (r *recordingContext) Begin(clip Rect) {
	r.clips = append(r.clips, clip)
	r.slots = r.slots[:0]
}

func (r *recordingContext) Draw(s Slot, _ time.Duration) {
	r.slots = append(r.slots, s)
}

func (r *recordingContext) End() {
	r.ended++
}

func (r *recordingContext) focused() []Slot {
	var out []Slot
	for _, s := range r.slots {
		if s.Focused {
			out = append(out, s)
		}
	}
	return out
}

type recordingPageControl struct {
	ranges    [][2]int
	positions []int
}

func (p *recordingPageControl) SetRange(perPage, rows int) {
	p.ranges = append(p.ranges, [2]int{perPage, rows})
}

func (p *recordingPageControl) SetPosition(page int) {
	p.positions = append(p.positions, page)
}

// Package termrender draws containers as text for terminal front ends.
// Pixel geometry is mapped onto a character grid, one cell per
// CellWidth x CellHeight pixels.
package termrender

import (
	"slices"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/BrandonKowalski/shelf/pkg/shelf"
	"github.com/BrandonKowalski/shelf/pkg/shelf/constants"
)

// Styles holds the lipgloss styles for the three slot states.
type Styles struct {
	Item     lipgloss.Style
	Focused  lipgloss.Style // Cursor slot of a focused container
	Inactive lipgloss.Style // Cursor slot while the container lacks focus
}

func DefaultStyles() Styles {
	return Styles{
		Item:     lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		Focused:  lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("255")).Bold(true),
		Inactive: lipgloss.NewStyle().Foreground(lipgloss.Color("252")).Background(lipgloss.Color("240")),
	}
}

type cell struct {
	col, width int
	text       string
	focused    bool
}

// Context collects the slots of one render pass and composes them into a
// string on End.
type Context struct {
	styles     Styles
	cellWidth  float64
	cellHeight float64
	clip       shelf.Rect
	slots      []shelf.Slot
	view       string
}

func NewContext(cellWidth, cellHeight float64, styles Styles) *Context {
	return &Context{
		styles:     styles,
		cellWidth:  max(cellWidth, 1),
		cellHeight: max(cellHeight, 1),
	}
}

func (c *Context) Measure(t *shelf.Template, o constants.Orientation) float64 {
	return t.Size(o)
}

func (c *Context) Begin(clip shelf.Rect) {
	c.clip = clip
	c.slots = c.slots[:0]
}

func (c *Context) Draw(s shelf.Slot, _ time.Duration) {
	c.slots = append(c.slots, s)
}

func (c *Context) End() {
	c.view = c.compose()
}

// View returns the text of the last completed pass.
func (c *Context) View() string {
	return c.view
}

// Lines is the height of the grid in rows.
func (c *Context) Lines() int {
	return max(int(c.clip.Height/c.cellHeight), 1)
}

func (c *Context) compose() string {
	rows := make([][]cell, c.Lines())
	cols := int(c.clip.Width / c.cellWidth)

	for _, s := range c.slots {
		row := int((s.Bounds.Y - c.clip.Y) / c.cellHeight)
		col := int((s.Bounds.X - c.clip.X) / c.cellWidth)
		if row < 0 || row >= len(rows) || col < 0 || col >= cols {
			continue
		}
		width := min(max(int(s.Bounds.Width/c.cellWidth), 1), cols-col)
		rows[row] = append(rows[row], cell{
			col:     col,
			width:   width,
			text:    c.style(s).Width(width).Render(truncate(s.Item.Label(), width)),
			focused: s.Focused,
		})
	}

	lines := make([]string, len(rows))
	for i, cells := range rows {
		lines[i] = joinCells(cells)
	}
	return strings.Join(lines, "\n")
}

func (c *Context) style(s shelf.Slot) lipgloss.Style {
	switch {
	case s.Focused && s.Active:
		return c.styles.Focused
	case s.Focused:
		return c.styles.Inactive
	default:
		return c.styles.Item
	}
}

// joinCells lays the cells of one row out left to right. Where two cells
// overlap the focused one wins.
func joinCells(cells []cell) string {
	slices.SortStableFunc(cells, func(a, b cell) int {
		return a.col - b.col
	})

	var b strings.Builder
	pos := 0
	for i, cl := range cells {
		if cl.col < pos {
			continue
		}
		if i+1 < len(cells) && cells[i+1].focused && cells[i+1].col < cl.col+cl.width {
			continue
		}
		b.WriteString(strings.Repeat(" ", cl.col-pos))
		b.WriteString(cl.text)
		pos = cl.col + cl.width
	}
	return b.String()
}

// truncate shortens s to width cells, marking the cut with an ellipsis.
func truncate(s string, width int) string {
	if lipgloss.Width(s) <= width {
		return s
	}
	if width <= 1 {
		return string([]rune(s)[:max(width, 0)])
	}
	r := []rune(s)
	for len(r) > 0 && lipgloss.Width(string(r))+1 > width {
		r = r[:len(r)-1]
	}
	return string(r) + constants.Ellipsis
}

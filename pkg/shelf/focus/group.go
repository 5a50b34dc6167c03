package focus

import (
	"fmt"
	"log/slog"

	"github.com/BrandonKowalski/shelf/pkg/shelf/constants"
	"github.com/BrandonKowalski/shelf/pkg/shelf/internal"
)

// Control is a focusable widget. *shelf.Container implements it.
type Control interface {
	ID() int
	// OnDirection handles a move inside the control, returning false when
	// focus should leave it.
	OnDirection(d constants.Direction) bool
	SetFocus(focused bool)
	// Neighbor returns the id focus moves to in direction d, or 0.
	Neighbor(d constants.Direction) int
}

// TransitionFunc is called after focus moved from one control to another.
// from is 0 for the first Focus call.
type TransitionFunc func(from, to int, stack *Stack)

// Group routes directional input to the focused control and moves focus
// between controls along their configured neighbours.
type Group struct {
	controls   map[int]Control
	focused    int
	transition TransitionFunc
	stack      *Stack
	logger     *slog.Logger
}

// New creates an empty Group.
func New() *Group {
	return &Group{
		controls: make(map[int]Control),
		stack:    NewStack(),
		logger:   internal.GetInternalLogger().With("component", "focus"),
	}
}

// Register adds a control to the group. A control registered under an id
// already in use replaces the old one.
func (g *Group) Register(c Control) *Group {
	g.controls[c.ID()] = c
	return g
}

// OnTransition sets the function called after every focus change.
func (g *Group) OnTransition(fn TransitionFunc) *Group {
	g.transition = fn
	return g
}

// Focus moves focus to the control with the given id without touching the
// history.
func (g *Group) Focus(id int) error {
	next, ok := g.controls[id]
	if !ok {
		return fmt.Errorf("focus: control %d not registered", id)
	}
	if id == g.focused {
		return nil
	}

	from := g.focused
	if prev, ok := g.controls[from]; ok {
		prev.SetFocus(false)
	}
	next.SetFocus(true)
	g.focused = id

	g.logger.Debug("Focus moved", "from", from, "to", id)
	if g.transition != nil {
		g.transition(from, id, g.stack)
	}
	return nil
}

// Focused returns the focused control, or nil before the first Focus.
func (g *Group) Focused() Control {
	return g.controls[g.focused]
}

// OnDirection gives the move to the focused control and, when it declines,
// moves focus to the neighbour in d. Returns false when neither happened.
func (g *Group) OnDirection(d constants.Direction) bool {
	current, ok := g.controls[g.focused]
	if !ok {
		return false
	}
	if current.OnDirection(d) {
		return true
	}

	neighbor := current.Neighbor(d)
	if neighbor == 0 || neighbor == g.focused {
		return false
	}
	if _, ok := g.controls[neighbor]; !ok {
		g.logger.Warn("Neighbor not registered", "control", g.focused, "direction", d.String(), "neighbor", neighbor)
		return false
	}

	g.stack.Push(g.focused, d.String())
	return g.Focus(neighbor) == nil
}

// Back returns focus to the control it last came from.
func (g *Group) Back() bool {
	entry := g.stack.Pop()
	if entry == nil {
		return false
	}
	return g.Focus(entry.Control) == nil
}

// Stack returns the focus history.
func (g *Group) Stack() *Stack {
	return g.stack
}

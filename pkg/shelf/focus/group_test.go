package focus

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BrandonKowalski/shelf/pkg/shelf/constants"
)

type stubControl struct {
	id        int
	handles   bool
	focused   bool
	neighbors map[constants.Direction]int
	moves     int
}

func (s *stubControl) ID() int { return s.id }

func (s *stubControl) OnDirection(constants.Direction) bool {
	s.moves++
	return s.handles
}

func (s *stubControl) SetFocus(focused bool) { s.focused = focused }

func (s *stubControl) Neighbor(d constants.Direction) int { return s.neighbors[d] }

func TestGroup_FocusUnknown(t *testing.T) {
	g := New()
	err := g.Focus(3)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not registered")
	assert.Nil(t, g.Focused())
	assert.False(t, g.OnDirection(constants.DirectionUp))
}

func TestGroup_HandledMovesStay(t *testing.T) {
	a := &stubControl{id: 1, handles: true, neighbors: map[constants.Direction]int{constants.DirectionDown: 2}}
	b := &stubControl{id: 2}
	g := New().Register(a).Register(b)
	require.NoError(t, g.Focus(1))

	assert.True(t, g.OnDirection(constants.DirectionDown))
	assert.Equal(t, 1, g.Focused().ID())
	assert.Equal(t, 1, a.moves)
	assert.True(t, g.Stack().IsEmpty())
}

func TestGroup_UnhandledMovesToNeighbor(t *testing.T) {
	a := &stubControl{id: 1, neighbors: map[constants.Direction]int{constants.DirectionDown: 2}}
	b := &stubControl{id: 2, neighbors: map[constants.Direction]int{constants.DirectionUp: 1}}
	g := New().Register(a).Register(b)
	require.NoError(t, g.Focus(1))

	var transitions [][2]int
	g.OnTransition(func(from, to int, _ *Stack) {
		transitions = append(transitions, [2]int{from, to})
	})

	assert.True(t, g.OnDirection(constants.DirectionDown))
	assert.Equal(t, 2, g.Focused().ID())
	assert.False(t, a.focused)
	assert.True(t, b.focused)
	require.Equal(t, 1, g.Stack().Len())
	assert.Equal(t, StackEntry{Control: 1, Direction: "down"}, *g.Stack().Peek())

	assert.True(t, g.Back())
	assert.Equal(t, 1, g.Focused().ID())
	assert.False(t, g.Back())
	assert.Equal(t, [][2]int{{1, 2}, {2, 1}}, transitions)
}

func TestGroup_NoNeighbor(t *testing.T) {
	self := &stubControl{id: 1, neighbors: map[constants.Direction]int{constants.DirectionLeft: 1, constants.DirectionRight: 9}}
	g := New().Register(self)
	require.NoError(t, g.Focus(1))

	assert.False(t, g.OnDirection(constants.DirectionUp), "no neighbor")
	assert.False(t, g.OnDirection(constants.DirectionLeft), "neighbor is itself")
	assert.False(t, g.OnDirection(constants.DirectionRight), "neighbor not registered")
	assert.Equal(t, 1, g.Focused().ID())
}

func TestStack(t *testing.T) {
	s := NewStack()
	assert.Nil(t, s.Pop())
	assert.Nil(t, s.Peek())

	s.Push(1, "up")
	s.Push(2, "down")
	assert.Equal(t, 2, s.Len())
	assert.Equal(t, 2, s.Pop().Control)
	assert.Equal(t, 1, s.Peek().Control)

	s.Clear()
	assert.True(t, s.IsEmpty())
}

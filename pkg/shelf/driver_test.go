package shelf

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/BrandonKowalski/shelf/pkg/shelf/constants"
)

type recordingNavigator struct {
	moves []constants.Direction
}

func (n *recordingNavigator) OnDirection(d constants.Direction) bool {
	n.moves = append(n.moves, d)
	return true
}

func TestDriver_RepeatsHeldDirection(t *testing.T) {
	nav := &recordingNavigator{}
	d := NewDriver(nav)

	assert.True(t, d.Press(constants.DirectionDown, 0))
	assert.Len(t, nav.moves, 1)

	_, fired := d.Update(100 * time.Millisecond)
	assert.False(t, fired, "still inside the repeat delay")

	dir, fired := d.Update(constants.DefaultRepeatDelay)
	assert.True(t, fired)
	assert.Equal(t, constants.DirectionDown, dir)

	_, fired = d.Update(constants.DefaultRepeatDelay + constants.DefaultRepeatInterval)
	assert.True(t, fired)
	assert.Len(t, nav.moves, 3)

	d.Release(constants.DirectionDown, time.Second)
	_, fired = d.Update(2 * time.Second)
	assert.False(t, fired)
	assert.Len(t, nav.moves, 3)
}

func TestDriver_DrivesContainer(t *testing.T) {
	c := newList(t, 3, "a", "b", "c", "d", "e")
	d := NewDriverWithTiming(c, 100*time.Millisecond, 20*time.Millisecond)

	d.Press(constants.DirectionDown, 0)
	for now := time.Duration(0); now <= 140*time.Millisecond; now += 10 * time.Millisecond {
		d.Update(now)
	}

	assert.Equal(t, 4, c.SelectedIndex())
}

func TestDriver_IgnoresNone(t *testing.T) {
	nav := &recordingNavigator{}
	d := NewDriver(nav)

	assert.False(t, d.Press(constants.DirectionNone, 0))
	assert.Empty(t, nav.moves)
}

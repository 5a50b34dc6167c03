package shelf

import (
	"time"

	"github.com/BrandonKowalski/shelf/pkg/shelf/constants"
	"github.com/BrandonKowalski/shelf/pkg/shelf/internal"
)

// Navigator receives directional moves. *Container and *focus.Group both
// implement it.
type Navigator interface {
	OnDirection(d constants.Direction) bool
}

// Driver turns press/release events into navigation moves, repeating a
// held direction after an initial delay.
type Driver struct {
	target Navigator
	input  internal.DirectionalInput
}

// NewDriver creates a driver with the default repeat timing.
func NewDriver(target Navigator) *Driver {
	return &Driver{target: target, input: internal.NewDirectionalInput()}
}

// NewDriverWithTiming creates a driver that repeats after delay and then
// every interval.
func NewDriverWithTiming(target Navigator, delay, interval time.Duration) *Driver {
	return &Driver{target: target, input: internal.NewDirectionalInputWithTiming(delay, interval)}
}

// SetTarget redirects subsequent moves.
func (d *Driver) SetTarget(target Navigator) {
	d.target = target
}

// Press moves once in dir and starts the repeat timer.
func (d *Driver) Press(dir constants.Direction, now time.Duration) bool {
	if !d.input.SetHeld(dir, true, now) || d.target == nil {
		return false
	}
	return d.target.OnDirection(dir)
}

// Release stops repeating dir.
func (d *Driver) Release(dir constants.Direction, now time.Duration) {
	d.input.SetHeld(dir, false, now)
}

// Update fires a repeat move when one is due. Call it once per frame.
func (d *Driver) Update(now time.Duration) (constants.Direction, bool) {
	dir := d.input.Update(now)
	if dir == constants.DirectionNone || d.target == nil {
		return constants.DirectionNone, false
	}
	return dir, d.target.OnDirection(dir)
}

// Reset forgets all held directions.
func (d *Driver) Reset(now time.Duration) {
	d.input.Reset(now)
}

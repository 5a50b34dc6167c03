package internal

import (
	"time"

	"github.com/BrandonKowalski/shelf/pkg/shelf/constants"
)

// DirectionalInput tracks held directions and handles repeat timing.
// Time is supplied by the caller as a monotonic offset so the frame loop
// and tests share one clock.
type DirectionalInput struct {
	held struct {
		up, down, left, right bool
	}
	lastRepeatTime time.Duration
	repeatDelay    time.Duration
	repeatInterval time.Duration
	hasRepeated    bool
}

// NewDirectionalInput creates a DirectionalInput with default timing.
func NewDirectionalInput() DirectionalInput {
	return NewDirectionalInputWithTiming(constants.DefaultRepeatDelay, constants.DefaultRepeatInterval)
}

// NewDirectionalInputWithTiming creates a DirectionalInput with custom timing.
func NewDirectionalInputWithTiming(delay, interval time.Duration) DirectionalInput {
	return DirectionalInput{
		repeatDelay:    delay,
		repeatInterval: interval,
	}
}

// SetHeld updates the held state for a direction at time now.
// Pressing a direction restarts the repeat delay.
func (d *DirectionalInput) SetHeld(dir constants.Direction, held bool, now time.Duration) bool {
	switch dir {
	case constants.DirectionUp:
		d.held.up = held
	case constants.DirectionDown:
		d.held.down = held
	case constants.DirectionLeft:
		d.held.left = held
	case constants.DirectionRight:
		d.held.right = held
	default:
		return false
	}
	d.hasRepeated = false
	d.lastRepeatTime = now
	return true
}

// IsHeld returns true if any direction is currently held.
func (d *DirectionalInput) IsHeld() bool {
	return d.held.up || d.held.down || d.held.left || d.held.right
}

// HeldDirection returns the currently held direction.
// If multiple directions are held, priority is: up, down, left, right.
func (d *DirectionalInput) HeldDirection() constants.Direction {
	if d.held.up {
		return constants.DirectionUp
	}
	if d.held.down {
		return constants.DirectionDown
	}
	if d.held.left {
		return constants.DirectionLeft
	}
	if d.held.right {
		return constants.DirectionRight
	}
	return constants.DirectionNone
}

// Update checks if a repeat event should fire at time now.
// Call this every frame. The first repeat occurs after repeatDelay,
// subsequent repeats after repeatInterval.
func (d *DirectionalInput) Update(now time.Duration) constants.Direction {
	if !d.IsHeld() {
		d.lastRepeatTime = now
		d.hasRepeated = false
		return constants.DirectionNone
	}

	threshold := d.repeatInterval
	if !d.hasRepeated {
		threshold = d.repeatDelay
	}

	if now-d.lastRepeatTime >= threshold {
		d.lastRepeatTime = now
		d.hasRepeated = true
		return d.HeldDirection()
	}

	return constants.DirectionNone
}

// Reset clears all held directions and timing state.
func (d *DirectionalInput) Reset(now time.Duration) {
	d.held.up = false
	d.held.down = false
	d.held.left = false
	d.held.right = false
	d.hasRepeated = false
	d.lastRepeatTime = now
}

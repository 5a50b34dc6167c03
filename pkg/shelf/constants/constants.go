// Package constants defines shared constants, types, and configuration values
// used throughout the shelf container engine.
package constants

import (
	"fmt"
	"os"
	"strings"
	"time"
)

// Development is the environment variable value for development mode.
const Development = "DEV"

// DebugEnvVar enables debug logging on the internal logger when set.
const DebugEnvVar = "SHELF_DEBUG"

// IsDevMode returns true if running in development mode (ENVIRONMENT=DEV).
func IsDevMode() bool {
	return os.Getenv("ENVIRONMENT") == Development
}

// Orientation is the axis a container scrolls along.
type Orientation int

const (
	Vertical   Orientation = iota // Items stack top to bottom
	Horizontal                    // Items stack left to right
)

func (o Orientation) String() string {
	switch o {
	case Vertical:
		return "vertical"
	case Horizontal:
		return "horizontal"
	default:
		return "unknown"
	}
}

// MarshalText implements encoding.TextMarshaler.
func (o Orientation) MarshalText() ([]byte, error) {
	return []byte(o.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler so orientations can be
// written as "vertical" or "horizontal" in config files.
func (o *Orientation) UnmarshalText(text []byte) error {
	switch strings.ToLower(strings.TrimSpace(string(text))) {
	case "", "vertical", "v":
		*o = Vertical
	case "horizontal", "h":
		*o = Horizontal
	default:
		return fmt.Errorf("unknown orientation %q", string(text))
	}
	return nil
}

// Direction represents a cardinal direction for navigation.
type Direction int

const (
	DirectionNone Direction = iota
	DirectionUp
	DirectionDown
	DirectionLeft
	DirectionRight
)

// String returns a string representation of the direction.
func (d Direction) String() string {
	switch d {
	case DirectionUp:
		return "up"
	case DirectionDown:
		return "down"
	case DirectionLeft:
		return "left"
	case DirectionRight:
		return "right"
	default:
		return ""
	}
}

// Opposite returns the direction pointing the other way.
func (d Direction) Opposite() Direction {
	switch d {
	case DirectionUp:
		return DirectionDown
	case DirectionDown:
		return DirectionUp
	case DirectionLeft:
		return DirectionRight
	case DirectionRight:
		return DirectionLeft
	default:
		return DirectionNone
	}
}

// Default timing and sizing constants.
const (
	DefaultScrollTime     = 200 * time.Millisecond  // Duration of a one-step scroll animation
	PageFlipWindow        = 200 * time.Millisecond  // Animation suppression after a page-control change
	LetterMatchTimeout    = 1000 * time.Millisecond // Type-ahead accumulation window
	DefaultRepeatDelay    = 300 * time.Millisecond  // Held direction: delay before the first repeat
	DefaultRepeatInterval = 50 * time.Millisecond   // Held direction: delay between repeats
)

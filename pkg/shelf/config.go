package shelf

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/BrandonKowalski/shelf/pkg/shelf/constants"
	"github.com/BrandonKowalski/shelf/pkg/shelf/internal"
)

// Kind names a container shape.
type Kind string

const (
	KindList     Kind = "list"
	KindPanel    Kind = "panel"
	KindWrapList Kind = "wraplist"
)

// Padding is the space kept free between the viewport edge and the items.
type Padding = internal.Padding

// UniformPadding creates a Padding with the same value on all sides.
func UniformPadding(value float64) Padding {
	return internal.UniformPadding(value)
}

// Navigation holds a container's neighbours and registered actions. A
// neighbour id of 0 means none.
type Navigation struct {
	Up      int                 `toml:"up"`
	Down    int                 `toml:"down"`
	Left    int                 `toml:"left"`
	Right   int                 `toml:"right"`
	Actions map[string][]string `toml:"actions"` // Keyed by direction name
}

// Neighbor returns the configured neighbour id for d.
func (n Navigation) Neighbor(d constants.Direction) int {
	switch d {
	case constants.DirectionUp:
		return n.Up
	case constants.DirectionDown:
		return n.Down
	case constants.DirectionLeft:
		return n.Left
	case constants.DirectionRight:
		return n.Right
	default:
		return 0
	}
}

// Config describes one container.
type Config struct {
	Kind          Kind                  `toml:"kind"`
	ID            int                   `toml:"id"`
	Orientation   constants.Orientation `toml:"orientation"`
	ScrollTime    time.Duration         `toml:"scroll_time"`    // Zero snaps instead of animating
	PreloadItems  int                   `toml:"preload_items"`  // Extra units kept realized outside the viewport
	FocusPosition int                   `toml:"focus_position"` // Cursor slot of a wrapping list
	PageControl   int                   `toml:"page_control"`   // Id of the companion page control, 0 for none
	Navigation    Navigation            `toml:"navigation"`
	Viewport      Rect                  `toml:"viewport"`
	Padding       Padding               `toml:"padding"`

	Layouts        LayoutSet `toml:"-"`
	FocusedLayouts LayoutSet `toml:"-"`
}

// DefaultConfig returns a vertical list config with the default scroll time.
func DefaultConfig() Config {
	return Config{
		Kind:       KindList,
		ScrollTime: constants.DefaultScrollTime,
	}
}

// layoutEntry is the file form of a Variant.
type layoutEntry struct {
	Condition string `toml:"condition"`
	Template
}

type fileConfig struct {
	Config
	Layouts        []layoutEntry `toml:"layout"`
	FocusedLayouts []layoutEntry `toml:"focused_layout"`
}

func (e layoutEntry) variant() Variant {
	t := e.Template
	return Variant{Condition: e.Condition, Template: &t}
}

// LoadConfig reads a container description from a TOML file.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, NewConfigError("load_config", err)
	}
	return ParseConfig(data)
}

// ParseConfig decodes a container description. Keys missing from data keep
// their DefaultConfig values. Layout variants come from [[layout]] and
// [[focused_layout]] tables; when no focused variants are given the
// unfocused ones are reused.
func ParseConfig(data []byte) (Config, error) {
	fc := fileConfig{Config: DefaultConfig()}
	if _, err := toml.Decode(string(data), &fc); err != nil {
		return Config{}, NewConfigError("parse_config", err)
	}

	cfg := fc.Config
	for _, e := range fc.Layouts {
		cfg.Layouts = append(cfg.Layouts, e.variant())
	}
	for _, e := range fc.FocusedLayouts {
		cfg.FocusedLayouts = append(cfg.FocusedLayouts, e.variant())
	}
	if len(cfg.FocusedLayouts) == 0 {
		cfg.FocusedLayouts = cfg.Layouts
	}

	internal.GetInternalLogger().Debug("Parsed container config",
		"id", cfg.ID,
		"kind", cfg.Kind,
		"layouts", len(cfg.Layouts),
		"focused_layouts", len(cfg.FocusedLayouts))

	return cfg, nil
}

// Validate reports every configuration problem at once. A config that fails
// validation still produces a working container; the problems show up as
// fallbacks.
func (c Config) Validate() error {
	var errs []error

	switch c.Kind {
	case KindList, KindPanel, KindWrapList, "":
	default:
		errs = append(errs, fmt.Errorf("%w: %q", ErrUnknownKind, c.Kind))
	}

	for _, set := range []struct {
		name string
		ls   LayoutSet
	}{{"layout", c.Layouts}, {"focused_layout", c.FocusedLayouts}} {
		if len(set.ls) == 0 {
			errs = append(errs, fmt.Errorf("%s: %w", set.name, ErrNoTemplate))
			continue
		}
		for i, v := range set.ls {
			if v.Template == nil {
				errs = append(errs, fmt.Errorf("%s[%d]: %w", set.name, i, ErrNoTemplate))
				continue
			}
			if v.Template.Size(c.Orientation) <= 0 {
				errs = append(errs, fmt.Errorf("%s[%d] %q: %w", set.name, i, v.Template.Name, ErrInvalidExtent))
			}
		}
	}

	if c.ScrollTime < 0 {
		errs = append(errs, fmt.Errorf("scroll_time must not be negative, got %s", c.ScrollTime))
	}
	if c.PreloadItems < 0 {
		errs = append(errs, fmt.Errorf("preload_items must not be negative, got %d", c.PreloadItems))
	}

	if len(errs) == 0 {
		return nil
	}
	return NewConfigError("validate_config", errors.Join(errs...))
}

// New builds the container shape named by cfg.Kind. An empty kind builds a
// list.
func New(cfg Config) (*Container, error) {
	switch cfg.Kind {
	case KindList, "":
		return NewList(cfg), nil
	case KindPanel:
		return NewPanel(cfg), nil
	case KindWrapList:
		return NewWrappingList(cfg), nil
	default:
		return nil, NewConfigError("new_container", fmt.Errorf("%w: %q", ErrUnknownKind, cfg.Kind))
	}
}

package shelf

import (
	"errors"
	"fmt"
)

// Sentinel errors for configuration problems. None of them are fatal: the
// container logs them and falls back to the first usable template.
var (
	// ErrNoTemplate indicates a layout set without any template.
	ErrNoTemplate = errors.New("layout set has no template")

	// ErrInvalidExtent indicates a template whose size along the scroll
	// axis is zero or negative.
	ErrInvalidExtent = errors.New("template extent must be positive")

	// ErrUnknownKind indicates a config naming an unknown container kind.
	ErrUnknownKind = errors.New("unknown container kind")
)

// ConfigError reports a configuration problem detected while loading a
// config file or resolving a container's layouts.
type ConfigError struct {
	Op  string // Operation that failed (e.g., "load_config", "resolve_layout")
	Err error  // Underlying error
}

func (e *ConfigError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("shelf: %s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("shelf: %s", e.Op)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

// NewConfigError creates a new configuration error.
func NewConfigError(op string, err error) *ConfigError {
	return &ConfigError{Op: op, Err: err}
}

// IsConfigError checks if an error is a configuration error.
func IsConfigError(err error) bool {
	var cfgErr *ConfigError
	return errors.As(err, &cfgErr)
}

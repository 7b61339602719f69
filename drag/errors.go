package drag

import (
	"errors"
	"fmt"
)

// ErrInvalidConfiguration is matched by every error New returns.
var ErrInvalidConfiguration = errors.New("drag: invalid configuration")

// ConfigError reports which option was rejected.
type ConfigError struct {
	Field string
	Value string
}

func (e *ConfigError) Error() string {
	if e.Value == "" {
		return fmt.Sprintf("drag: invalid configuration: missing %s", e.Field)
	}
	return fmt.Sprintf("drag: invalid configuration: unknown %s %q", e.Field, e.Value)
}

// Unwrap lets errors.Is match ErrInvalidConfiguration.
func (e *ConfigError) Unwrap() error {
	return ErrInvalidConfiguration
}

package tstype

import (
	"errors"
	"fmt"
)

// ErrNoDefault is returned by DefaultValue for types that have no
// synthesized initializer. Raw types fall in this category: an attribute of
// raw type needs an explicit default outside a type literal.
var ErrNoDefault = errors.New("no default value for type")

// ConfigurationError reports a descriptor that cannot be rendered because it
// was not built through this package's constructors.
type ConfigurationError struct {
	// Primitive is the unrecognized primitive name, if that was the cause.
	Primitive string

	// Reason describes any other malformed descriptor.
	Reason string
}

func (e *ConfigurationError) Error() string {
	if e.Reason != "" {
		return "tstype: " + e.Reason
	}
	return fmt.Sprintf("tstype: unknown primitive %q", e.Primitive)
}

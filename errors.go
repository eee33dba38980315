package tsgen

import "errors"

// ErrInvalidConfig is returned when a Config fails validation or decoding.
var ErrInvalidConfig = errors.New("invalid config")

// ABOUTME: Sentinel errors for the reasoning package

package reasoning

import "errors"

// ErrInvalidLevel is returned when a level string is not one of the closed
// enum values.
var ErrInvalidLevel = errors.New("invalid reasoning level")

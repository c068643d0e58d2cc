package implicit

import "errors"

// ErrInvalidSegment is returned when a segment cannot be turned into a finite equation
// by any of the closed-form branches (e.g. zero-length or non-finite segments).
var ErrInvalidSegment = errors.New("invalid segment")

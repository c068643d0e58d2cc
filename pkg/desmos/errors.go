package desmos

import "errors"

var ErrUnknownOutput = errors.New("unknown output format")

package path

import "errors"

var (
	ErrUnsupportedCommand = errors.New("unsupported command")
	ErrArgumentCount      = errors.New("wrong number of arguments")
)

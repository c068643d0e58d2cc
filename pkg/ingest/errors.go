package ingest

import "errors"

var (
	ErrSyntax         = errors.New("path data syntax error")
	ErrNoInstructions = errors.New("svg produced no drawing instructions")
	ErrNoPaths        = errors.New("no path elements found")
)

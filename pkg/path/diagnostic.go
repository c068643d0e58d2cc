package path

import "fmt"

// Diagnostic records a command or segment that was skipped.
type Diagnostic struct {
	// Index is the position of the command (Normalize) or segment (Implicitize) in its input.
	Index   int
	Subject string
	Err     error
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("#%d %s: %v", d.Index, d.Subject, d.Err)
}

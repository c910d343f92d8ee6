package shell

import (
	"errors"
	"fmt"
)

// Termination is the error an Application returns from Update to request a
// clean stop. Run treats it as a normal exit and returns nil.
var Termination = errors.New("shell: termination requested")

// StartupError reports a failed window or context creation. It aborts the
// run before Initialize is ever called.
type StartupError struct {
	Stage string // "window" or "context"
	Err   error
}

func (e *StartupError) Error() string {
	return fmt.Sprintf("shell: %s creation failed: %v", e.Stage, e.Err)
}

func (e *StartupError) Unwrap() error { return e.Err }

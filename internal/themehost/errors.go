package themehost

import (
	"errors"
	"fmt"
	"syscall"
)

// FatalError is a failure that ends the host.  Context is the phrase reported
// to the browser ahead of the OS error description.
type FatalError struct {
	Context string
	Err     error
}

func (e *FatalError) Error() string {
	return fmt.Sprintf("%s: %v", e.Context, e.Err)
}

func (e *FatalError) Unwrap() error {
	return e.Err
}

// ExitCode returns the process exit status for err: its OS error code, or
// EIO if it doesn't carry one.  A nil error is status 0.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	var errno syscall.Errno
	if errors.As(err, &errno) && errno != 0 {
		return int(errno)
	}
	return int(syscall.EIO)
}

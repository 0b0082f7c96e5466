// Package omarchy locates and reads the Omarchy theme files that the host
// forwards to the browser.
//
// The layout is fixed:
//
//	<home>/.config/omarchy/current                        (watched directory)
//	<home>/.config/omarchy/current/theme/chromium.theme   (color file)
//
// Paths are limited to PathMax bytes including a terminator.  A path that
// doesn't fit is an error, never a truncation.
package omarchy

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"os/user"
	"syscall"
)

// PathMax is the capacity of a path buffer, including the terminator.
const PathMax = 256

const (
	currentPathFmt   = "%s/.config/omarchy/current"
	themeFilePathFmt = "%s/theme/chromium.theme"
)

// ResolutionError describes a failure to resolve one of the host's paths.
// Err is the underlying OS error where one is available.
type ResolutionError struct {
	Op   string
	Path string
	Err  error
}

func (e *ResolutionError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *ResolutionError) Unwrap() error {
	return e.Err
}

// lookupUser reads the invoking user's account record.  Replaced in tests.
var lookupUser = user.Current

// HomeDir returns the user's home directory from $HOME, falling back to the
// account database when $HOME is unset or empty.
func HomeDir() (string, error) {
	home := os.Getenv("HOME")
	if home == "" {
		usr, err := lookupUser()
		if err != nil {
			return "", &ResolutionError{Op: "lookup home", Err: withErrno(err, syscall.ENOENT)}
		}
		home = usr.HomeDir
	}
	if home == "" {
		return "", &ResolutionError{Op: "lookup home", Err: syscall.ENOENT}
	}
	if len(home) >= PathMax {
		return "", &ResolutionError{Op: "lookup home", Path: home, Err: syscall.ERANGE}
	}
	return home, nil
}

// CurrentDir returns the watched directory under home, after checking that
// it can be opened as a directory.
func CurrentDir(home string) (string, error) {
	path, err := format(currentPathFmt, home)
	if err != nil {
		return "", err
	}
	if err := checkDir(path); err != nil {
		return "", err
	}
	return path, nil
}

// ThemeFile returns the color file under the watched directory, after
// checking that it can be opened for reading.
func ThemeFile(currentDir string) (string, error) {
	path, err := format(themeFilePathFmt, currentDir)
	if err != nil {
		return "", err
	}
	f, err := os.Open(path)
	if err != nil {
		return "", &ResolutionError{Op: "open", Path: path, Err: unwrapPath(err)}
	}
	f.Close()
	return path, nil
}

// format fills a path template, failing with ERANGE if the result does not
// fit in PathMax.
func format(template string, base string) (string, error) {
	path := fmt.Sprintf(template, base)
	if len(path) >= PathMax {
		return "", &ResolutionError{Op: "format", Path: path, Err: syscall.ERANGE}
	}
	return path, nil
}

// checkDir opens and immediately closes path, which must be a directory.
func checkDir(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return &ResolutionError{Op: "opendir", Path: path, Err: unwrapPath(err)}
	}
	defer f.Close()

	fi, err := f.Stat()
	if err != nil {
		return &ResolutionError{Op: "opendir", Path: path, Err: unwrapPath(err)}
	}
	if !fi.IsDir() {
		return &ResolutionError{Op: "opendir", Path: path, Err: syscall.ENOTDIR}
	}
	return nil
}

// unwrapPath strips the *fs.PathError wrapper, since ResolutionError already
// records the operation and path.
func unwrapPath(err error) error {
	var pathErr *fs.PathError
	if errors.As(err, &pathErr) {
		return pathErr.Err
	}
	return err
}

// withErrno returns err unchanged if it carries an OS error code, otherwise
// attaches errno so that callers always have a code to report.
func withErrno(err error, errno syscall.Errno) error {
	var e syscall.Errno
	if errors.As(err, &e) {
		return err
	}
	return fmt.Errorf("%w (%v)", errno, err)
}

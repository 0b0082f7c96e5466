//go:build linux

package watch

import "os"

import "golang.org/x/sys/unix"

// Session is an inotify instance watching a single directory.
type Session struct {
	fd int
	wd int
}

// New creates an inotify instance.  Reads on it block until events arrive.
func New() (*Session, error) {
	fd, err := unix.InotifyInit1(unix.IN_CLOEXEC)
	if err != nil {
		return nil, os.NewSyscallError("inotify_init1", err)
	}
	return &Session{fd: fd, wd: -1}, nil
}

// Add registers interest in entries being moved into dir.
func (s *Session) Add(dir string) error {
	wd, err := unix.InotifyAddWatch(s.fd, dir, unix.IN_MOVED_TO)
	if err != nil {
		return &os.PathError{Op: "inotify_add_watch", Path: dir, Err: err}
	}
	s.wd = wd
	return nil
}

// Read fills buf with raw event records.  The error is the bare errno, so
// EINTR can be recognized and retried by the caller.
func (s *Session) Read(buf []byte) (int, error) {
	n, err := unix.Read(s.fd, buf)
	if err != nil {
		return 0, err
	}
	return n, nil
}

// Close releases the inotify instance.  Subsequent calls do nothing.
func (s *Session) Close() error {
	if s.fd < 0 {
		return nil
	}
	err := unix.Close(s.fd)
	s.fd, s.wd = -1, -1
	return err
}

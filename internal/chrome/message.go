package chrome

import (
	"errors"
	"syscall"
)

// Message is one update for the browser:
//
//	{"rgb": [r,g,b] | null, "error": "<context>: <reason>" | null}
//
// The color is embedded verbatim as the body of a JSON array, so it must
// already be restricted to digits and commas.
type Message struct {
	// RGB is the sanitized color string.  Only sent if HasRGB is set.
	RGB    string
	HasRGB bool

	// Context is a human-readable phrase describing what failed.  The message
	// carries an error iff Context is non-empty.
	Context string

	// Err supplies the reason text after Context.
	Err error
}

// ColorMessage returns a message carrying just a color.
func ColorMessage(rgb string) Message {
	return Message{RGB: rgb, HasRGB: true}
}

// ErrorMessage returns a message carrying just an error.
func ErrorMessage(context string, err error) Message {
	return Message{Context: context, Err: err}
}

// Describe returns the OS description of err's error code as strerror(3)
// spells it, e.g. "No such file or directory", falling back to the error's
// own text if it has no code.
func Describe(err error) string {
	if err == nil {
		return "Unknown error"
	}
	var errno syscall.Errno
	if errors.As(err, &errno) {
		return capitalize(errno.Error())
	}
	return err.Error()
}

// capitalize upper-cases a leading ASCII letter.  Go's errno table is glibc's
// with the first letter lowered.
func capitalize(s string) string {
	if s == "" || s[0] < 'a' || s[0] > 'z' {
		return s
	}
	return string(s[0]-'a'+'A') + s[1:]
}

// Package chrome implements the sending side of a Chrome native messaging
// host.
//
// Each message is a JSON body preceded by a 4-byte length header.  The host
// only ever writes; nothing is read back from Chrome.
//
// Sending is best-effort: a message that can't be composed or written is
// logged and dropped, and the Host remains usable for the next one.
package chrome

import (
	"fmt"
	"io"
	"syscall"
)

import "github.com/sirupsen/logrus"

// headerLen is the number of bytes in the Chrome native messaging header.
const headerLen = 4

// MessageMax is the capacity of the message buffer, including a terminator.
// JSON bodies are at most MessageMax-1 bytes.
const MessageMax = 512

// ErrMessageTooLong is returned by Send when a composed body doesn't fit in
// the message buffer.  Nothing is written in that case.
var ErrMessageTooLong = fmt.Errorf("message exceeds %d bytes: %w", MessageMax-1, syscall.ERANGE)

// Host writes messages to Chrome.
//
// The scratch buffers are reused for every message; a Host must not be used
// from more than one goroutine.
type Host struct {
	// out is the file for writing to Chrome (typically stdout).
	out io.Writer

	log *logrus.Entry

	// frame holds the header followed by the body being composed.
	frame      [headerLen + MessageMax]byte
	escContext [MessageMax]byte
	escReason  [MessageMax]byte
}

// NewHost returns a Chrome native messaging host that will send messages on
// the given writer.  The I/O must not be buffered: each frame is handed to
// out in a single write, and nothing is flushed.  Diagnostics go to log.
func NewHost(out io.Writer, log *logrus.Entry) *Host {
	return &Host{
		out: out,
		log: log,
	}
}

// Send composes m and writes it to Chrome as a single frame.
//
// Failures are logged and returned, but are never fatal: callers may ignore
// the error and keep sending.
func (h *Host) Send(m Message) error {
	body, err := h.compose(m)
	if err == nil {
		err = h.writeFrame(body)
	}
	if err != nil {
		h.log.WithError(err).Error("could not send message")
		return err
	}
	h.log.WithField("len", len(body)).Debugf("sent %s", body)
	return nil
}

// compose formats m into the message buffer.
func (h *Host) compose(m Message) ([]byte, error) {
	var context, reason []byte
	if m.Context != "" {
		context = h.escape(h.escContext[:], m.Context)
		reason = h.escape(h.escReason[:], Describe(m.Err))
	}

	body := h.frame[headerLen:headerLen]
	switch {
	case m.HasRGB && m.Context != "":
		body = fmt.Appendf(body, `{"rgb":[%s],"error":"%s: %s"}`, m.RGB, context, reason)
	case m.HasRGB:
		body = fmt.Appendf(body, `{"rgb":[%s],"error":null}`, m.RGB)
	case m.Context != "":
		body = fmt.Appendf(body, `{"rgb":null,"error":"%s: %s"}`, context, reason)
	default:
		body = append(body, `{"rgb":null,"error":null}`...)
	}

	if len(body) >= MessageMax {
		return nil, ErrMessageTooLong
	}
	return body, nil
}

// escape escapes s into dst, substituting escapeFallback if it doesn't fit.
func (h *Host) escape(dst []byte, s string) []byte {
	n, err := Escape(dst, []byte(s))
	if err != nil {
		h.log.WithError(err).Warnf("substituting %q for %d-byte string", escapeFallback, len(s))
		return dst[:copy(dst, escapeFallback)]
	}
	return dst[:n]
}

// writeFrame prefixes the composed body with its length and writes both in
// one go.  body must be the slice returned by compose.
func (h *Host) writeFrame(body []byte) error {
	byteOrder.PutUint32(h.frame[:headerLen], uint32(len(body)))
	if err := writeFull(h.out, h.frame[:headerLen+len(body)]); err != nil {
		return fmt.Errorf("writing frame: %w", err)
	}
	return nil
}

// writeFull writes all of buf, treating a zero-length write as EOF.
func writeFull(out io.Writer, buf []byte) error {
	for len(buf) > 0 {
		switch n, err := out.Write(buf); {
		case err != nil:
			return err
		case n == 0:
			return io.EOF
		default:
			buf = buf[n:]
		}
	}
	return nil
}

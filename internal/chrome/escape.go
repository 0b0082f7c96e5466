package chrome

import "errors"

// ErrEscapeOverflow is returned by Escape when the destination can't hold the
// worst-case expansion of the source.
var ErrEscapeOverflow = errors.New("escaped string does not fit buffer")

// escapeFallback replaces a string that could not be escaped.
const escapeFallback = "error too long"

// maxEscapeLen is the longest escape sequence for a single byte (\u00XX).
const maxEscapeLen = 6

const hexDigits = "0123456789abcdef"

// Escape writes src into dst as the contents of a JSON string (without the
// surrounding quotes), and returns the number of bytes written.
//
// Quote, backslash and the short control escapes are escaped as such, other
// bytes below 0x20 as \u00XX.  Everything else, including bytes >= 0x80, is
// copied as-is: invalid UTF-8 in src is forwarded unchanged.
//
// dst is treated as having room for a terminator, and before each byte there
// must be room for a full 6-byte escape; otherwise Escape returns
// ErrEscapeOverflow.
func Escape(dst, src []byte) (int, error) {
	if len(dst) == 0 {
		return 0, ErrEscapeOverflow
	}

	n := 0
	for _, c := range src {
		if n+maxEscapeLen >= len(dst) {
			return 0, ErrEscapeOverflow
		}

		switch c {
		case '"', '\\':
			dst[n], dst[n+1] = '\\', c
			n += 2
		case '\b':
			dst[n], dst[n+1] = '\\', 'b'
			n += 2
		case '\f':
			dst[n], dst[n+1] = '\\', 'f'
			n += 2
		case '\n':
			dst[n], dst[n+1] = '\\', 'n'
			n += 2
		case '\r':
			dst[n], dst[n+1] = '\\', 'r'
			n += 2
		case '\t':
			dst[n], dst[n+1] = '\\', 't'
			n += 2
		default:
			if c < 0x20 {
				copy(dst[n:], `\u00`)
				dst[n+4] = hexDigits[c>>4]
				dst[n+5] = hexDigits[c&0xf]
				n += maxEscapeLen
			} else {
				dst[n] = c
				n++
			}
		}
	}

	if n >= len(dst) {
		return 0, ErrEscapeOverflow
	}
	return n, nil
}

package omarchy

import (
	"io"
	"os"
)

// ColorMax is the longest color string kept, e.g. "255,255,255".
const ColorMax = 11

// lineMax is how much of the color file's first line is ever examined.
const lineMax = PathMax - 1

// ReadColor opens the color file and returns the sanitized color string from
// its first line.  Only I/O failures are errors; malformed content yields
// whatever digits and commas it contains (possibly nothing).
func ReadColor(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	var line [lineMax]byte
	n, err := io.ReadFull(f, line[:])
	switch err {
	case nil, io.EOF, io.ErrUnexpectedEOF:
		// Short files and long lines are both fine.
	default:
		return "", err
	}
	return SanitizeColor(line[:n]), nil
}

// SanitizeColor keeps the ASCII digits and commas of the first line of b, in
// order, stopping after ColorMax of them.  Scanning also stops at a NUL byte.
// The values are not parsed or range-checked.
func SanitizeColor(b []byte) string {
	var color [ColorMax]byte
	n := 0
	for _, c := range b {
		if c == '\n' || c == 0 {
			break
		}
		if (c >= '0' && c <= '9') || c == ',' {
			if n >= ColorMax {
				break
			}
			color[n] = c
			n++
		}
	}
	return string(color[:n])
}

// Package watch delivers directory change notifications as raw records in the
// inotify(7) layout:
//
//	struct inotify_event {
//	    int32_t  wd;     // offset 0
//	    uint32_t mask;   // offset 4
//	    uint32_t cookie; // offset 8
//	    uint32_t len;    // offset 12
//	    char     name[]; // offset 16, NUL-padded to len bytes
//	};
//
// On Linux the records come straight from the kernel.  Elsewhere they are
// synthesized from fsnotify events, so that callers decode one format.
package watch

import (
	"encoding/binary"
	"iter"
)

// Event masks, as defined by inotify(7).
const (
	InMovedTo uint32 = 0x00000080
	InCreate  uint32 = 0x00000100
)

// HeaderLen is the size of a record header, not including the name.
const HeaderLen = 16

// BufferLen is the size of the buffer events are read into.
const BufferLen = 4096

// nameAlign is the boundary names are padded to.
const nameAlign = HeaderLen

// Event is one decoded record.
type Event struct {
	Wd     int32
	Mask   uint32
	Cookie uint32
	Name   string
}

// Events returns the records in buf, in order.
//
// Decoding stops at the first record whose header or declared name length
// runs past the end of buf; that record and anything after it are dropped.
// A short or garbled read is therefore never an error.
func Events(buf []byte) iter.Seq[Event] {
	return func(yield func(Event) bool) {
		for offset := 0; offset+HeaderLen <= len(buf); {
			header := buf[offset : offset+HeaderLen]
			nameLen := binary.NativeEndian.Uint32(header[12:16])
			if uint64(nameLen) > uint64(len(buf)-offset-HeaderLen) {
				return
			}
			size := HeaderLen + int(nameLen)

			ev := Event{
				Wd:     int32(binary.NativeEndian.Uint32(header[0:4])),
				Mask:   binary.NativeEndian.Uint32(header[4:8]),
				Cookie: binary.NativeEndian.Uint32(header[8:12]),
				Name:   nullTerminated(buf[offset+HeaderLen : offset+size]),
			}
			if !yield(ev) {
				return
			}
			offset += size
		}
	}
}

// AppendEvent appends ev to buf as a record, padding the name with NULs the
// way the kernel does.
func AppendEvent(buf []byte, ev Event) []byte {
	nameLen := 0
	if ev.Name != "" {
		nameLen = (len(ev.Name) + 1 + nameAlign - 1) / nameAlign * nameAlign
	}

	var header [HeaderLen]byte
	binary.NativeEndian.PutUint32(header[0:4], uint32(ev.Wd))
	binary.NativeEndian.PutUint32(header[4:8], ev.Mask)
	binary.NativeEndian.PutUint32(header[8:12], ev.Cookie)
	binary.NativeEndian.PutUint32(header[12:16], uint32(nameLen))

	buf = append(buf, header[:]...)
	buf = append(buf, ev.Name...)
	for i := len(ev.Name); i < nameLen; i++ {
		buf = append(buf, 0)
	}
	return buf
}

// nullTerminated extracts a string from a NUL-padded byte slice.
func nullTerminated(data []byte) string {
	for i, b := range data {
		if b == 0 {
			return string(data[:i])
		}
	}
	return string(data)
}

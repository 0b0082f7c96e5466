package chrome

import "encoding/binary"

// byteOrder is the order of the frame length header.  Chrome reads the header
// in native order; the host only targets little-endian machines, so the
// header is written little-endian regardless of where the host was built.
var byteOrder = binary.LittleEndian

package hap

import (
	"encoding/binary"
	"fmt"
)

const (
	// shortHeaderLen is the 3-byte length + type header.
	shortHeaderLen = 4
	// longHeaderLen adds a 4-byte length after a zero short length.
	longHeaderLen = 8

	maxUint24 = 0x00FFFFFF
)

// sectionHeader describes one length-prefixed, typed section.
type sectionHeader struct {
	headerLen int
	length    uint32
	typ       byte
}

// end returns the offset just past the section payload.
func (h sectionHeader) end() int {
	return h.headerLen + int(h.length)
}

// payload returns the section payload within buf. readSectionHeader has
// already proven it fits.
func (h sectionHeader) payload(buf []byte) []byte {
	return buf[h.headerLen:h.end():h.end()]
}

// readSectionHeader parses the section header at the start of buf and checks
// that the section fits inside buf.
func readSectionHeader(buf []byte) (sectionHeader, error) {
	if len(buf) < shortHeaderLen {
		return sectionHeader{}, fmt.Errorf("%w: %d bytes is too short for a section header", ErrBadFrame, len(buf))
	}

	h := sectionHeader{
		headerLen: shortHeaderLen,
		length:    readUint24(buf),
		typ:       buf[3],
	}

	// A zero short length means the real length follows the type byte.
	if h.length == 0 {
		if len(buf) < longHeaderLen {
			return sectionHeader{}, fmt.Errorf("%w: %d bytes is too short for a long section header", ErrBadFrame, len(buf))
		}
		h.length = binary.LittleEndian.Uint32(buf[4:8])
		h.headerLen = longHeaderLen
	}

	if uint64(h.headerLen)+uint64(h.length) > uint64(len(buf)) {
		return sectionHeader{}, fmt.Errorf("%w: section of %d bytes overruns buffer of %d", ErrBadFrame, h.length, len(buf)-h.headerLen)
	}

	return h, nil
}

// headerLenFor returns the header length needed to store a section of n bytes.
// A zero short length is reserved for the long form, so empty sections also
// need the long header.
func headerLenFor(n int) int {
	if n == 0 || n > maxUint24 {
		return longHeaderLen
	}
	return shortHeaderLen
}

// writeSectionHeader writes a section header into buf, which must hold at
// least headerLen bytes. Lengths above 0xFFFFFF require headerLen 8.
func writeSectionHeader(buf []byte, headerLen int, length uint32, typ byte) {
	if headerLen == shortHeaderLen {
		putUint24(buf, length)
	} else {
		putUint24(buf, 0)
		binary.LittleEndian.PutUint32(buf[4:8], length)
	}
	buf[3] = typ
}

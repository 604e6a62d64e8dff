package hap

import (
	"encoding/binary"
	"fmt"
)

// decodeInstructions holds the chunk tables of a complex frame. The tables
// alias the input buffer.
type decodeInstructions struct {
	compressors []byte
	sizes       []byte
	offsets     []byte // nil when chunks are contiguous
	count       int
}

func (d *decodeInstructions) compressor(i int) byte { return d.compressors[i] }

func (d *decodeInstructions) size(i int) uint32 {
	return binary.LittleEndian.Uint32(d.sizes[i*4:])
}

func (d *decodeInstructions) offset(i int) (uint32, bool) {
	if d.offsets == nil {
		return 0, false
	}
	return binary.LittleEndian.Uint32(d.offsets[i*4:]), true
}

// parseComplex splits the payload of a complex frame into its decode
// instructions and the chunk data region that follows them.
func parseComplex(payload []byte) (*decodeInstructions, []byte, error) {
	h, err := readSectionHeader(payload)
	if err != nil {
		return nil, nil, fmt.Errorf("decode instructions: %w", err)
	}
	if h.typ != sectionDecodeInstructions {
		return nil, nil, fmt.Errorf("%w: expected decode instructions, got section type 0x%02X", ErrBadFrame, h.typ)
	}

	instr, err := parseInstructions(h.payload(payload))
	if err != nil {
		return nil, nil, err
	}
	return instr, payload[h.end():], nil
}

// parseInstructions walks the child sections of a Decode Instructions
// Container. Each table implies a chunk count and all counts must agree.
// Unrecognized children are skipped.
func parseInstructions(container []byte) (*decodeInstructions, error) {
	var instr decodeInstructions
	haveCompressors, haveSizes := false, false

	for rest := container; len(rest) > 0; {
		h, err := readSectionHeader(rest)
		if err != nil {
			return nil, fmt.Errorf("decode instructions: %w", err)
		}
		body := h.payload(rest)
		rest = rest[h.end():]

		count := 0
		_, kind := splitType(h.typ)
		switch kind {
		case sectionCompressorTable:
			instr.compressors = body
			haveCompressors = true
			count = len(body)
		case sectionChunkSizeTable:
			instr.sizes = body
			haveSizes = true
			count = len(body) / 4
		case sectionChunkOffsetTable:
			instr.offsets = body
			count = len(body) / 4
		}

		if count == 0 {
			continue
		}
		if instr.count != 0 && count != instr.count {
			return nil, fmt.Errorf("%w: section type 0x%02X implies %d chunks, expected %d", ErrBadFrame, h.typ, count, instr.count)
		}
		instr.count = count
	}

	if !haveCompressors || !haveSizes {
		return nil, fmt.Errorf("%w: decode instructions lack compressor or chunk size table", ErrBadFrame)
	}

	// A table may be empty while another is not; every table must cover
	// every chunk before it is indexed.
	if len(instr.compressors) < instr.count || len(instr.sizes) < instr.count*4 ||
		(instr.offsets != nil && len(instr.offsets) < instr.count*4) {
		return nil, fmt.Errorf("%w: chunk tables do not cover %d chunks", ErrBadFrame, instr.count)
	}

	return &instr, nil
}

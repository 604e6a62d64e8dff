package hap

import (
	"encoding/binary"
	"math/rand/v2"
	"slices"

	"github.com/golang/snappy"
)

// testChunk is one chunk of a complex test frame before compression.
type testChunk struct {
	code byte
	raw  []byte
}

func (c testChunk) stored() []byte {
	if c.code == codeCompressorSnappy {
		return snappy.Encode(nil, c.raw)
	}
	return c.raw
}

// appendSection appends a section with the shortest valid header.
func appendSection(dst []byte, typ byte, payload []byte) []byte {
	hl := headerLenFor(len(payload))
	var hdr [longHeaderLen]byte
	writeSectionHeader(hdr[:], hl, uint32(len(payload)), typ)
	dst = append(dst, hdr[:hl]...)
	return append(dst, payload...)
}

// complexFrame wraps decode instructions and chunk data in a complex frame.
func complexFrame(formatCode byte, instructions, region []byte) []byte {
	payload := appendSection(nil, sectionDecodeInstructions, instructions)
	payload = append(payload, region...)
	return appendSection(nil, packType(codeCompressorComplex, formatCode), payload)
}

// buildComplex encodes chunks as a complex frame. With reverse the chunk data
// is stored back to front, which only decodes correctly with offsets.
func buildComplex(formatCode byte, chunks []testChunk, withOffsets, reverse bool) []byte {
	stored := make([][]byte, len(chunks))
	compressors := make([]byte, len(chunks))
	sizes := make([]byte, 4*len(chunks))
	offsets := make([]byte, 4*len(chunks))
	for i, c := range chunks {
		stored[i] = c.stored()
		compressors[i] = c.code
		binary.LittleEndian.PutUint32(sizes[i*4:], uint32(len(stored[i])))
	}

	order := make([]int, len(chunks))
	for i := range order {
		order[i] = i
	}
	if reverse {
		slices.Reverse(order)
	}

	var region []byte
	for _, i := range order {
		binary.LittleEndian.PutUint32(offsets[i*4:], uint32(len(region)))
		region = append(region, stored[i]...)
	}

	var instr []byte
	instr = appendSection(instr, sectionCompressorTable, compressors)
	instr = appendSection(instr, sectionChunkSizeTable, sizes)
	if withOffsets {
		instr = appendSection(instr, sectionChunkOffsetTable, offsets)
	}

	return complexFrame(formatCode, instr, region)
}

// joinRaw concatenates the raw chunk data in table order.
func joinRaw(chunks []testChunk) []byte {
	var out []byte
	for _, c := range chunks {
		out = append(out, c.raw...)
	}
	return out
}

// blockPattern builds compressible data resembling repeated BCn blocks.
func blockPattern(n int, seed byte) []byte {
	data := make([]byte, n)
	for i := range data {
		data[i] = byte((i/16)*3) ^ byte(i%8) ^ seed
	}
	return data
}

// noise builds incompressible data.
func noise(n int, seed uint64) []byte {
	r := rand.New(rand.NewPCG(seed, seed^0x9E3779B97F4A7C15))
	data := make([]byte, n)
	for i := range data {
		data[i] = byte(r.Uint32())
	}
	return data
}

func mixedChunks() []testChunk {
	return []testChunk{
		{code: codeCompressorSnappy, raw: blockPattern(4096, 1)},
		{code: codeCompressorNone, raw: noise(1000, 2)},
		{code: codeCompressorSnappy, raw: blockPattern(777, 3)},
		{code: codeCompressorNone, raw: blockPattern(64, 4)},
	}
}

package hap

import (
	"fmt"
	"slices"
)

// chunk is one independently compressed span of a complex frame. src and dst
// never overlap those of another chunk.
type chunk struct {
	compressor byte
	at         int // offset of src in the chunk data region
	src        []byte
	dst        []byte
}

// decode inflates the chunk into its output span.
func (c *chunk) decode() error {
	switch c.compressor {
	case codeCompressorSnappy:
		return decompress(c.dst, c.src)
	case codeCompressorNone:
		copy(c.dst, c.src)
		return nil
	default:
		return fmt.Errorf("%w: chunk compressor 0x%X", ErrBadFrame, c.compressor)
	}
}

// chunkLayout locates every chunk in the data region and returns the chunk
// descriptors (without output spans) and their uncompressed sizes.
func chunkLayout(instr *decodeInstructions, region []byte) ([]chunk, []int, error) {
	chunks := make([]chunk, instr.count)
	sizes := make([]int, instr.count)

	next := 0
	for i := range chunks {
		c := &chunks[i]
		c.compressor = instr.compressor(i)
		if compressorForCode(c.compressor) == CompressorUnknown {
			return nil, nil, fmt.Errorf("%w: chunk %d: compressor 0x%X", ErrBadFrame, i, c.compressor)
		}

		size := int(instr.size(i))
		start := next
		if off, ok := instr.offset(i); ok {
			start = int(off)
		}
		next += size

		if start > len(region) || size > len(region)-start {
			return nil, nil, fmt.Errorf("%w: chunk %d: %d bytes at %d overrun data of %d", ErrBadFrame, i, size, start, len(region))
		}
		c.at = start
		c.src = region[start : start+size : start+size]

		sizes[i] = size
		if c.compressor == codeCompressorSnappy {
			n, err := decompressedLength(c.src)
			if err != nil {
				return nil, nil, fmt.Errorf("chunk %d: %w", i, err)
			}
			sizes[i] = n
		}
	}

	return chunks, sizes, nil
}

// decodeChunks decodes every chunk of a complex frame into dst, laid out
// contiguously in table order, and returns the number of bytes written.
// Capacity is checked before any chunk is decoded.
func decodeChunks(dst []byte, instr *decodeInstructions, region []byte, d Dispatcher) (int, error) {
	if instr.count == 0 {
		return 0, nil
	}

	chunks, sizes, err := chunkLayout(instr, region)
	if err != nil {
		return 0, err
	}

	total := sum(sizes)
	if total > len(dst) {
		return 0, fmt.Errorf("%w: need %d bytes, have %d", ErrBufferTooSmall, total, len(dst))
	}

	out := 0
	for i := range chunks {
		chunks[i].dst = dst[out : out+sizes[i] : out+sizes[i]]
		out += sizes[i]
	}

	results := make([]error, len(chunks))
	d.Dispatch(func(i int) {
		if i < 0 || i >= len(chunks) {
			return
		}
		results[i] = chunks[i].decode()
	}, len(chunks))

	if err := firstError(results); err != nil {
		return 0, err
	}
	return total, nil
}

// firstError returns the first non-nil result in index order.
func firstError(results []error) error {
	i := slices.IndexFunc(results, func(err error) bool { return err != nil })
	if i < 0 {
		return nil
	}
	return fmt.Errorf("chunk %d: %w", i, results[i])
}

func sum(sizes []int) int {
	total := 0
	for _, n := range sizes {
		total += n
	}
	return total
}

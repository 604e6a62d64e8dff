package ddsfile

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/pierrec/lz4/v4"
)

const (
	// blockMagicCOPY marks an uncompressed EDDS block.
	blockMagicCOPY = "COPY"
	// blockMagicLZ4 marks an LZ4 chunk-stream EDDS block.
	blockMagicLZ4 = "LZ4 "

	// lz4ChunkSize is the uncompressed size of every chunk but the last.
	lz4ChunkSize = 64 * 1024
	// lz4DictSize is the rolling dictionary window of the chunk stream.
	lz4DictSize = 64 * 1024

	lz4FlagLast = 0x80

	// maxMipLevels bounds the block table of a 2^31 texture.
	maxMipLevels = 32
)

type blockHeader struct {
	magic string
	size  int32
}

func isBlockMagic(magic string) bool {
	return magic == blockMagicCOPY || magic == blockMagicLZ4
}

// readBlockTable reads count EDDS block table entries.
func readBlockTable(r io.Reader, count uint32) ([]blockHeader, error) {
	if count == 0 || count > maxMipLevels {
		return nil, fmt.Errorf("%w: %d entries", ErrBlockTableRead, count)
	}

	table := make([]blockHeader, 0, count)
	for i := range count {
		var entry [8]byte
		if _, err := io.ReadFull(r, entry[:]); err != nil {
			return nil, fmt.Errorf("%w: entry %d: %v", ErrBlockTableRead, i, err)
		}

		h := blockHeader{
			magic: string(entry[:4]),
			size:  int32(binary.LittleEndian.Uint32(entry[4:])), // #nosec G115 -- signed on disk
		}
		if !isBlockMagic(h.magic) {
			return nil, fmt.Errorf("%w: entry %d: %q", ErrUnknownBlockMagic, i, h.magic)
		}
		if h.size < 0 {
			return nil, fmt.Errorf("%w: entry %d: %d", ErrInvalidBlockSize, i, h.size)
		}

		table = append(table, h)
	}

	return table, nil
}

// readLargestBlock skips every block but the last one in the table (mip level
// 0, EDDS stores smallest first) and returns its decoded payload.
func readLargestBlock(r io.ReadSeeker, table []blockHeader, size int) ([]byte, error) {
	for _, h := range table[:len(table)-1] {
		if _, err := r.Seek(int64(h.size), io.SeekCurrent); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrReadData, err)
		}
	}

	last := table[len(table)-1]
	body := make([]byte, last.size)
	if _, err := io.ReadFull(r, body); err != nil {
		return nil, fmt.Errorf("%w: %s block: %v", ErrReadData, last.magic, err)
	}

	if last.magic == blockMagicCOPY {
		if len(body) != size {
			return nil, fmt.Errorf("%w: COPY block of %d bytes, expected %d", ErrDataSizeMismatch, len(body), size)
		}
		return body, nil
	}

	if len(body) < 4 {
		return nil, fmt.Errorf("%w: missing uncompressed size", ErrChunkStreamTruncated)
	}
	if declared := int(binary.LittleEndian.Uint32(body)); declared != size {
		return nil, fmt.Errorf("%w: declared %d, expected %d", ErrDataSizeMismatch, declared, size)
	}

	return inflateChunkStream(body[4:], size)
}

// inflateChunkStream decodes an Enfusion LZ4 chunk stream: chunks of
// 3-byte compressed size + flags byte, each inflating to at most 64KB and
// referencing the preceding 64KB of output as dictionary.
func inflateChunkStream(data []byte, size int) ([]byte, error) {
	out := make([]byte, size)
	n := 0

	for {
		if len(data) < 4 {
			return nil, fmt.Errorf("%w: need 4 bytes header, have %d", ErrChunkStreamTruncated, len(data))
		}
		cSize := int(data[0]) | int(data[1])<<8 | int(data[2])<<16
		flags := data[3]
		data = data[4:]

		if flags&^lz4FlagLast != 0 {
			return nil, fmt.Errorf("%w: 0x%02x", ErrUnknownLZ4Flags, flags)
		}
		if cSize <= 0 || cSize > len(data) {
			return nil, fmt.Errorf("%w: chunk of %d bytes, %d remaining", ErrChunkStreamTruncated, cSize, len(data))
		}
		if n >= size {
			return nil, fmt.Errorf("%w: data past %d bytes", ErrDecodedSizeMismatch, size)
		}

		want := min(lz4ChunkSize, size-n)
		dict := out[max(0, n-lz4DictSize):n]
		m, err := lz4.UncompressBlockWithDict(data[:cSize], out[n:n+want], dict)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrLZ4Decode, err)
		}
		n += m
		data = data[cSize:]

		if flags&lz4FlagLast != 0 {
			break
		}
	}

	if n != size || len(data) != 0 {
		return nil, fmt.Errorf("%w: decoded %d of %d, %d bytes left", ErrDecodedSizeMismatch, n, size, len(data))
	}

	return out, nil
}

package hap

import (
	"errors"
	"fmt"

	"github.com/golang/snappy"
)

// maxCompressedLength returns the snappy worst case for n bytes, never less
// than n.
func maxCompressedLength(n int) int {
	m := snappy.MaxEncodedLen(n)
	if m < n {
		// MaxEncodedLen reports -1 for inputs it cannot bound; a future
		// encoder could also promise less than the input size.
		return n
	}
	return m
}

// compress snappy-compresses src into dst and returns the compressed length.
func compress(dst, src []byte) (int, error) {
	n := snappy.MaxEncodedLen(len(src))
	if n < 0 {
		return 0, fmt.Errorf("%w: snappy: %v", ErrInternal, snappy.ErrTooLarge)
	}
	// Encode allocates when dst is short; the result must land in dst.
	if len(dst) < n {
		return 0, fmt.Errorf("%w: snappy needs %d bytes, have %d", ErrInternal, n, len(dst))
	}
	return len(snappy.Encode(dst, src)), nil
}

// decompressedLength returns the length declared by a snappy block.
func decompressedLength(src []byte) (int, error) {
	n, err := snappy.DecodedLen(src)
	if err != nil {
		return 0, snappyError(err)
	}
	return n, nil
}

// decompress inflates src into dst, which must be exactly the declared
// decompressed length.
func decompress(dst, src []byte) error {
	out, err := snappy.Decode(dst, src)
	if err != nil {
		return snappyError(err)
	}
	if len(out) != len(dst) {
		return fmt.Errorf("%w: snappy decoded %d bytes, expected %d", ErrBadFrame, len(out), len(dst))
	}
	return nil
}

// snappyError classifies snappy failures: corrupt input is a bad frame,
// anything else is internal.
func snappyError(err error) error {
	if errors.Is(err, snappy.ErrCorrupt) {
		return fmt.Errorf("%w: snappy: %v", ErrBadFrame, err)
	}
	return fmt.Errorf("%w: snappy: %v", ErrInternal, err)
}

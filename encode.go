package hap

import "fmt"

// MaxEncodedLength returns an upper bound on the encoded size of n input
// bytes, for sizing the destination passed to Encode.
func MaxEncodedLength(n int) int {
	return maxCompressedLength(n) + longHeaderLen
}

// Encode frames src as a single section in dst and returns the number of
// bytes written. dst must hold at least the header plus the worst-case
// compressed size; MaxEncodedLength always suffices.
//
// Compression that does not shrink the payload is discarded and the payload
// is stored uncompressed, so the stored length never exceeds len(src).
func Encode(dst, src []byte, format TextureFormat, compressor Compressor) (int, error) {
	formatCode := codeForTextureFormat(format)
	if len(src) == 0 || formatCode == 0 || codeForCompressor(compressor) == 0 {
		return 0, fmt.Errorf("%w: input %d bytes, format %s, compressor %s", ErrBadArguments, len(src), format, compressor)
	}
	srcLen, err := u32FromInt(len(src))
	if err != nil {
		return 0, fmt.Errorf("%w: input %d bytes: %v", ErrBadArguments, len(src), err)
	}

	maxLen := len(src)
	if compressor == CompressorSnappy {
		maxLen = maxCompressedLength(len(src))
	}

	// The compressed size is unknown up front, so the header length is
	// chosen from the worst case that will actually be stored: len(src).
	headerLen := headerLenFor(len(src))
	if len(dst) < headerLen+maxLen {
		return 0, fmt.Errorf("%w: need %d bytes, have %d", ErrBufferTooSmall, headerLen+maxLen, len(dst))
	}
	body := dst[headerLen:]

	storedLen := 0
	storedCode := byte(codeCompressorNone)
	if compressor == CompressorSnappy {
		storedLen, err = compress(body, src)
		if err != nil {
			return 0, err
		}
		storedCode = codeCompressorSnappy
	}

	if storedLen == 0 || storedLen >= len(src) {
		copy(body, src)
		storedLen = len(src)
		storedCode = codeCompressorNone
	}

	length := srcLen
	if storedCode != codeCompressorNone {
		// storedLen < len(src), so it fits.
		length = uint32(storedLen) // #nosec G115
	}
	writeSectionHeader(dst, headerLen, length, packType(storedCode, formatCode))

	return headerLen + storedLen, nil
}

// AppendEncode appends the encoded frame of src to dst and returns the
// extended slice.
func AppendEncode(dst, src []byte, format TextureFormat, compressor Compressor) ([]byte, error) {
	start := len(dst)
	need := MaxEncodedLength(len(src))
	if cap(dst)-start < need {
		grown := make([]byte, start, start+need)
		copy(grown, dst)
		dst = grown
	}

	n, err := Encode(dst[start:start+need], src, format, compressor)
	if err != nil {
		return dst, err
	}
	return dst[:start+n], nil
}

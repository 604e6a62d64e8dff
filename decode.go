package hap

import "fmt"

// frame is the parsed top-level section of an encoded frame.
type frame struct {
	header  sectionHeader
	code    byte // compressor nibble
	format  TextureFormat
	payload []byte
}

// readFrame parses the top-level section and resolves its texture format.
func readFrame(src []byte) (*frame, error) {
	h, err := readSectionHeader(src)
	if err != nil {
		return nil, err
	}

	code, formatCode := splitType(h.typ)
	format := textureFormatForCode(formatCode)
	if format == TextureFormatUnknown {
		return nil, fmt.Errorf("%w: texture format code 0x%X", ErrBadFrame, formatCode)
	}

	return &frame{
		header:  h,
		code:    code,
		format:  format,
		payload: h.payload(src),
	}, nil
}

// Decode decodes the frame in src into dst and returns the number of bytes
// written and the frame's texture format. Chunks of complex frames are
// decoded through d; use Sequential when no parallelism is wanted.
//
// For complex frames, ErrBufferTooSmall is reported before anything is
// written to dst.
func Decode(dst, src []byte, d Dispatcher) (int, TextureFormat, error) {
	if src == nil || dst == nil || d == nil {
		return 0, TextureFormatUnknown, fmt.Errorf("%w: nil input, output or dispatcher", ErrBadArguments)
	}

	f, err := readFrame(src)
	if err != nil {
		return 0, TextureFormatUnknown, err
	}

	var n int
	switch f.code {
	case codeCompressorNone:
		n = len(f.payload)
		if n > len(dst) {
			return 0, TextureFormatUnknown, fmt.Errorf("%w: need %d bytes, have %d", ErrBufferTooSmall, n, len(dst))
		}
		copy(dst, f.payload)

	case codeCompressorSnappy:
		// The container itself is valid here, so snappy failures are
		// reported as internal rather than as a bad frame.
		n, err = decompressedLength(f.payload)
		if err != nil {
			return 0, TextureFormatUnknown, fmt.Errorf("%w: %v", ErrInternal, err)
		}
		if n > len(dst) {
			return 0, TextureFormatUnknown, fmt.Errorf("%w: need %d bytes, have %d", ErrBufferTooSmall, n, len(dst))
		}
		if err := decompress(dst[:n], f.payload); err != nil {
			return 0, TextureFormatUnknown, fmt.Errorf("%w: %v", ErrInternal, err)
		}

	case codeCompressorComplex:
		instr, region, err := parseComplex(f.payload)
		if err != nil {
			return 0, TextureFormatUnknown, err
		}
		n, err = decodeChunks(dst, instr, region, d)
		if err != nil {
			return 0, TextureFormatUnknown, err
		}

	default:
		return 0, TextureFormatUnknown, fmt.Errorf("%w: compressor code 0x%X", ErrBadFrame, f.code)
	}

	return n, f.format, nil
}

// DecodedLength returns the number of bytes Decode will write for the frame
// in src, without decoding it.
func DecodedLength(src []byte) (int, error) {
	if src == nil {
		return 0, fmt.Errorf("%w: nil input", ErrBadArguments)
	}

	f, err := readFrame(src)
	if err != nil {
		return 0, err
	}

	switch f.code {
	case codeCompressorNone:
		return len(f.payload), nil
	case codeCompressorSnappy:
		n, err := decompressedLength(f.payload)
		if err != nil {
			return 0, fmt.Errorf("%w: %v", ErrInternal, err)
		}
		return n, nil
	case codeCompressorComplex:
		instr, region, err := parseComplex(f.payload)
		if err != nil {
			return 0, err
		}
		if instr.count == 0 {
			return 0, nil
		}
		_, sizes, err := chunkLayout(instr, region)
		if err != nil {
			return 0, err
		}
		return sum(sizes), nil
	default:
		return 0, fmt.Errorf("%w: compressor code 0x%X", ErrBadFrame, f.code)
	}
}

// PeekTextureFormat returns the texture format of the frame in src without
// decoding it.
func PeekTextureFormat(src []byte) (TextureFormat, error) {
	if src == nil {
		return TextureFormatUnknown, fmt.Errorf("%w: nil input", ErrBadArguments)
	}

	f, err := readFrame(src)
	if err != nil {
		return TextureFormatUnknown, err
	}
	return f.format, nil
}

package hap

import "fmt"

// FrameInfo describes the layout of an encoded frame.
type FrameInfo struct {
	HeaderLength  int           `json:"header_length"`
	SectionLength uint32        `json:"section_length"`
	Compressor    string        `json:"compressor"`
	Format        TextureFormat `json:"format"`
	FormatName    string        `json:"format_name"`
	Chunks        []ChunkInfo   `json:"chunks,omitempty"`
}

// ChunkInfo describes one chunk of a complex frame. Offset is relative to the
// chunk data that follows the decode instructions.
type ChunkInfo struct {
	Compressor string `json:"compressor"`
	Offset     int    `json:"offset"`
	Size       int    `json:"size"`
}

// Inspect parses the frame structure in src without decoding chunk data.
func Inspect(src []byte) (*FrameInfo, error) {
	if src == nil {
		return nil, fmt.Errorf("%w: nil input", ErrBadArguments)
	}

	f, err := readFrame(src)
	if err != nil {
		return nil, err
	}

	info := &FrameInfo{
		HeaderLength:  f.header.headerLen,
		SectionLength: f.header.length,
		Format:        f.format,
		FormatName:    f.format.String(),
	}

	switch f.code {
	case codeCompressorNone, codeCompressorSnappy:
		info.Compressor = compressorForCode(f.code).String()
	case codeCompressorComplex:
		info.Compressor = "complex"
		instr, region, err := parseComplex(f.payload)
		if err != nil {
			return nil, err
		}
		chunks, _, err := chunkLayout(instr, region)
		if err != nil {
			return nil, err
		}
		info.Chunks = make([]ChunkInfo, len(chunks))
		for i, c := range chunks {
			info.Chunks[i] = ChunkInfo{
				Compressor: compressorForCode(c.compressor).String(),
				Offset:     c.at,
				Size:       len(c.src),
			}
		}
	default:
		return nil, fmt.Errorf("%w: compressor code 0x%X", ErrBadFrame, f.code)
	}

	return info, nil
}

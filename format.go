package hap

import (
	"fmt"

	"github.com/woozymasta/bcn"
)

// TextureFormat identifies the BCn layout of a frame payload.
// The values match the OpenGL internal format constants used by Hap.
type TextureFormat uint32

const (
	// TextureFormatUnknown is the zero value for unrecognized formats.
	TextureFormatUnknown TextureFormat = 0
	// TextureFormatRGBDXT1 is RGB DXT1 (Hap).
	TextureFormatRGBDXT1 TextureFormat = 0x83F0
	// TextureFormatRGBADXT5 is RGBA DXT5 (Hap Alpha).
	TextureFormatRGBADXT5 TextureFormat = 0x83F3
	// TextureFormatYCoCgDXT5 is scaled YCoCg stored in DXT5 (Hap Q).
	TextureFormatYCoCgDXT5 TextureFormat = 0x01
)

// Compressor selects the second-stage compressor requested on encode.
type Compressor uint8

const (
	// CompressorUnknown is the zero value for unrecognized compressors.
	CompressorUnknown Compressor = iota
	// CompressorNone stores the payload as is.
	CompressorNone
	// CompressorSnappy compresses the payload with snappy.
	CompressorSnappy
)

// Wire codes, high nibble of the type byte.
const (
	codeCompressorNone    = 0xA
	codeCompressorSnappy  = 0xB
	codeCompressorComplex = 0xC
)

// Wire codes, low nibble of a top-level type byte.
const (
	codeFormatRGBDXT1   = 0xB
	codeFormatRGBADXT5  = 0xE
	codeFormatYCoCgDXT5 = 0xF
)

// Section kinds inside a complex frame.
const (
	sectionDecodeInstructions = 0x01
	sectionCompressorTable    = 0x02
	sectionChunkSizeTable     = 0x03
	sectionChunkOffsetTable   = 0x04
)

func packType(high, low byte) byte { return high<<4 | low&0x0F }

func splitType(t byte) (high, low byte) { return t >> 4, t & 0x0F }

// textureFormatForCode returns the format for a wire code or TextureFormatUnknown.
func textureFormatForCode(code byte) TextureFormat {
	switch code {
	case codeFormatRGBDXT1:
		return TextureFormatRGBDXT1
	case codeFormatRGBADXT5:
		return TextureFormatRGBADXT5
	case codeFormatYCoCgDXT5:
		return TextureFormatYCoCgDXT5
	default:
		return TextureFormatUnknown
	}
}

// codeForTextureFormat returns the wire code for a format or 0.
func codeForTextureFormat(f TextureFormat) byte {
	switch f {
	case TextureFormatRGBDXT1:
		return codeFormatRGBDXT1
	case TextureFormatRGBADXT5:
		return codeFormatRGBADXT5
	case TextureFormatYCoCgDXT5:
		return codeFormatYCoCgDXT5
	default:
		return 0
	}
}

// compressorForCode returns the compressor for a wire code or CompressorUnknown.
// The complex code has no Compressor value; it is a frame layout, not a request.
func compressorForCode(code byte) Compressor {
	switch code {
	case codeCompressorNone:
		return CompressorNone
	case codeCompressorSnappy:
		return CompressorSnappy
	default:
		return CompressorUnknown
	}
}

// codeForCompressor returns the wire code for a compressor or 0.
func codeForCompressor(c Compressor) byte {
	switch c {
	case CompressorNone:
		return codeCompressorNone
	case CompressorSnappy:
		return codeCompressorSnappy
	default:
		return 0
	}
}

// String returns the format name.
func (f TextureFormat) String() string {
	switch f {
	case TextureFormatRGBDXT1:
		return "RGB_DXT1"
	case TextureFormatRGBADXT5:
		return "RGBA_DXT5"
	case TextureFormatYCoCgDXT5:
		return "YCoCg_DXT5"
	default:
		return fmt.Sprintf("TextureFormat(0x%X)", uint32(f))
	}
}

// BCn returns the block compression layout of the format.
func (f TextureFormat) BCn() bcn.Format {
	switch f {
	case TextureFormatRGBDXT1:
		return bcn.FormatDXT1
	case TextureFormatRGBADXT5, TextureFormatYCoCgDXT5:
		return bcn.FormatDXT5
	default:
		return bcn.FormatUnknown
	}
}

// TextureFormatFromBCn maps a BCn layout to a Hap format.
// ycocg selects TextureFormatYCoCgDXT5 for DXT5 payloads.
func TextureFormatFromBCn(format bcn.Format, ycocg bool) TextureFormat {
	switch format {
	case bcn.FormatDXT1:
		return TextureFormatRGBDXT1
	case bcn.FormatDXT5:
		if ycocg {
			return TextureFormatYCoCgDXT5
		}
		return TextureFormatRGBADXT5
	default:
		return TextureFormatUnknown
	}
}

// ExpectedLength returns the payload size of a width x height image in the
// format, or -1 for unknown formats.
func (f TextureFormat) ExpectedLength(width, height int) int {
	blocksW := (width + 3) / 4
	blocksH := (height + 3) / 4
	switch f.BCn() {
	case bcn.FormatDXT1:
		return blocksW * blocksH * 8
	case bcn.FormatDXT5:
		return blocksW * blocksH * 16
	default:
		return -1
	}
}

// String returns the compressor name.
func (c Compressor) String() string {
	switch c {
	case CompressorNone:
		return "none"
	case CompressorSnappy:
		return "snappy"
	default:
		return fmt.Sprintf("Compressor(%d)", uint8(c))
	}
}

// ParseCompressor parses a compressor name as printed by String.
func ParseCompressor(s string) (Compressor, error) {
	switch s {
	case "none":
		return CompressorNone, nil
	case "snappy":
		return CompressorSnappy, nil
	default:
		return CompressorUnknown, fmt.Errorf("%w: compressor %q", ErrBadArguments, s)
	}
}

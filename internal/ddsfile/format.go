package ddsfile

import (
	"github.com/woozymasta/bcn"
)

// detectFormat returns the BCn layout of a DDS header, or bcn.FormatUnknown
// for anything other than DXT1/DXT5.
func detectFormat(header *bcn.DDSHeader, dx10 *bcn.DDSHeaderDX10) bcn.Format {
	if dx10 != nil {
		switch dx10.DXGIFormat {
		case 71, 72: // BC1_UNORM, BC1_UNORM_SRGB
			return bcn.FormatDXT1
		case 77, 78: // BC3_UNORM, BC3_UNORM_SRGB
			return bcn.FormatDXT5
		default:
			return bcn.FormatUnknown
		}
	}

	pf := header.PixelFormat
	if (pf.Flags & bcn.DDSPFFourCC) == 0 {
		return bcn.FormatUnknown
	}
	switch pf.FourCC {
	case makeFourCC('D', 'X', 'T', '1'):
		return bcn.FormatDXT1
	case makeFourCC('D', 'X', 'T', '4'), makeFourCC('D', 'X', 'T', '5'):
		return bcn.FormatDXT5
	default:
		return bcn.FormatUnknown
	}
}

// dataLength returns the size of one DXT image, or -1 for other formats.
func dataLength(format bcn.Format, width, height int) int {
	blocksW := (width + 3) / 4
	blocksH := (height + 3) / 4
	switch format {
	case bcn.FormatDXT1:
		return blocksW * blocksH * 8
	case bcn.FormatDXT5:
		return blocksW * blocksH * 16
	default:
		return -1
	}
}

func makeFourCC(a, b, c, d byte) uint32 {
	return uint32(a) | uint32(b)<<8 | uint32(c)<<16 | uint32(d)<<24
}

// makeHeader builds a single-level DDS header for a DXT payload.
func makeHeader(width, height uint32, format bcn.Format, linearSize uint32) (*bcn.DDSHeader, error) {
	hdr := &bcn.DDSHeader{
		Size:              bcn.DDSHeaderSize,
		Flags:             uint32(bcn.DDSFlagCaps | bcn.DDSFlagHeight | bcn.DDSFlagWidth | bcn.DDSFlagPixelFormat | bcn.DDSFlagLinearSize),
		Height:            height,
		Width:             width,
		Depth:             1,
		MipMapCount:       1,
		PitchOrLinearSize: linearSize,
		Caps:              uint32(bcn.DDSCapsTexture),
	}
	hdr.PixelFormat.Size = bcn.DDSPixelFormatSize
	hdr.PixelFormat.Flags = bcn.DDSPFFourCC

	switch format {
	case bcn.FormatDXT1:
		hdr.PixelFormat.FourCC = makeFourCC('D', 'X', 'T', '1')
	case bcn.FormatDXT5:
		hdr.PixelFormat.FourCC = makeFourCC('D', 'X', 'T', '5')
	default:
		return nil, ErrUnsupportedFormat
	}

	return hdr, nil
}

/*
Package ddsfile reads and writes the DXT1/DXT5 payloads of DDS and Arma/DayZ
EDDS texture files.

Only the largest mip level is read. EDDS block tables with COPY and LZ4
chunk-stream blocks are supported. The payload is returned as opaque bytes;
no pixel decoding happens here.
*/
package ddsfile

import (
	"fmt"
	"io"
	"os"

	"github.com/woozymasta/bcn"
)

// Texture is one BCn image payload.
type Texture struct {
	Format bcn.Format
	Width  int
	Height int
	Data   []byte
}

// ReadFile reads the largest mip level of a DDS or EDDS file.
func ReadFile(path string) (*Texture, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrOpenFile, path, err)
	}
	defer func() { _ = f.Close() }()

	return Read(f)
}

// Read reads the largest mip level from a DDS or EDDS stream.
func Read(r io.ReadSeeker) (*Texture, error) {
	header, err := bcn.ReadDDSHeader(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDDSHeaderRead, err)
	}
	dx10, err := bcn.ReadDDSHeaderDX10(r, header)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDDSDX10Read, err)
	}

	tex := &Texture{
		Format: detectFormat(header, dx10),
		Width:  int(header.Width),
		Height: int(header.Height),
	}
	size := dataLength(tex.Format, tex.Width, tex.Height)
	if size <= 0 {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, tex.Format)
	}

	mipMapCount := uint32(1)
	if (header.Caps&bcn.DDSCapsMipmap) != 0 && header.MipMapCount > 0 {
		mipMapCount = header.MipMapCount
	}

	var magic [4]byte
	if _, err := io.ReadFull(r, magic[:]); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrReadData, err)
	}
	if _, err := r.Seek(-int64(len(magic)), io.SeekCurrent); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrReadData, err)
	}

	if isBlockMagic(string(magic[:])) {
		table, err := readBlockTable(r, mipMapCount)
		if err != nil {
			return nil, err
		}
		tex.Data, err = readLargestBlock(r, table, size)
		if err != nil {
			return nil, err
		}
		return tex, nil
	}

	// Plain DDS: level 0 comes first.
	tex.Data = make([]byte, size)
	if _, err := io.ReadFull(r, tex.Data); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrReadData, err)
	}

	return tex, nil
}

// WriteFile writes tex as a single-level DDS file.
func WriteFile(path string, tex *Texture) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%w: %q: %v", ErrCreateFile, path, err)
	}

	if err := Write(f, tex); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

// Write writes tex as a single-level DDS stream.
func Write(w io.Writer, tex *Texture) error {
	size := dataLength(tex.Format, tex.Width, tex.Height)
	if size <= 0 {
		return fmt.Errorf("%w: %s", ErrUnsupportedFormat, tex.Format)
	}
	if len(tex.Data) != size {
		return fmt.Errorf("%w: expected %d, got %d", ErrDataSizeMismatch, size, len(tex.Data))
	}

	w32, err := u32FromInt(tex.Width)
	if err != nil {
		return err
	}
	h32, err := u32FromInt(tex.Height)
	if err != nil {
		return err
	}
	s32, err := u32FromInt(size)
	if err != nil {
		return err
	}

	header, err := makeHeader(w32, h32, tex.Format, s32)
	if err != nil {
		return err
	}

	if err := bcn.WriteDDSMagic(w); err != nil {
		return fmt.Errorf("%w: %v", ErrWriteHeader, err)
	}
	if err := bcn.WriteDDSHeader(w, header); err != nil {
		return fmt.Errorf("%w: %v", ErrWriteHeader, err)
	}
	if _, err := w.Write(tex.Data); err != nil {
		return fmt.Errorf("%w: %v", ErrWriteData, err)
	}

	return nil
}

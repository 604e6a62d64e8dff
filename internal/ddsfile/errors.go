package ddsfile

import "errors"

var (
	// ErrUnsupportedFormat indicates a pixel format other than DXT1/DXT5.
	ErrUnsupportedFormat = errors.New("unsupported texture format")
	// ErrDataSizeMismatch indicates payload size does not match dimensions.
	ErrDataSizeMismatch = errors.New("texture data size mismatch")
	// ErrDDSHeaderRead indicates DDS header read failed.
	ErrDDSHeaderRead = errors.New("reading DDS header failed")
	// ErrDDSDX10Read indicates DDS DX10 header read failed.
	ErrDDSDX10Read = errors.New("reading DDS DX10 header failed")
	// ErrReadData indicates reading texture data failed.
	ErrReadData = errors.New("reading texture data failed")
	// ErrBlockTableRead indicates EDDS block table read failed.
	ErrBlockTableRead = errors.New("reading block table failed")
	// ErrUnknownBlockMagic indicates an unknown EDDS block magic.
	ErrUnknownBlockMagic = errors.New("unknown block magic")
	// ErrInvalidBlockSize indicates a negative or oversized block size.
	ErrInvalidBlockSize = errors.New("invalid block size")
	// ErrChunkStreamTruncated indicates an LZ4 chunk stream is truncated.
	ErrChunkStreamTruncated = errors.New("LZ4 chunk-stream truncated")
	// ErrUnknownLZ4Flags indicates unknown LZ4 chunk flags.
	ErrUnknownLZ4Flags = errors.New("unknown LZ4 flags")
	// ErrLZ4Decode indicates LZ4 decode failed.
	ErrLZ4Decode = errors.New("LZ4 decode failed")
	// ErrDecodedSizeMismatch indicates the LZ4 stream decoded to the wrong size.
	ErrDecodedSizeMismatch = errors.New("LZ4 decoded size mismatch")
	// ErrWriteHeader indicates writing the DDS header failed.
	ErrWriteHeader = errors.New("writing DDS header failed")
	// ErrWriteData indicates writing texture data failed.
	ErrWriteData = errors.New("writing texture data failed")
	// ErrOpenFile indicates file open failed.
	ErrOpenFile = errors.New("open file failed")
	// ErrSizeOverflow indicates a size or dimension exceeds supported limits.
	ErrSizeOverflow = errors.New("size overflow")
	// ErrCreateFile indicates file creation failed.
	ErrCreateFile = errors.New("create file failed")
)

package hap

import "errors"

var (
	// ErrBadArguments indicates a caller contract violation (missing buffers,
	// unrecognized format or compressor request).
	ErrBadArguments = errors.New("bad arguments")
	// ErrBadFrame indicates structurally invalid or inconsistent frame bytes.
	ErrBadFrame = errors.New("bad frame")
	// ErrBufferTooSmall indicates the destination buffer is too small.
	ErrBufferTooSmall = errors.New("buffer too small")
	// ErrInternal indicates the second-stage compressor failed.
	ErrInternal = errors.New("internal error")
	// ErrSizeOverflow indicates a size exceeds the 32-bit range of the format.
	ErrSizeOverflow = errors.New("size overflow")
)

// Result is the stable status enumeration of the codec.
type Result uint8

const (
	// ResultNoError reports success.
	ResultNoError Result = iota
	// ResultBadArguments corresponds to ErrBadArguments.
	ResultBadArguments
	// ResultBufferTooSmall corresponds to ErrBufferTooSmall.
	ResultBufferTooSmall
	// ResultBadFrame corresponds to ErrBadFrame.
	ResultBadFrame
	// ResultInternalError corresponds to ErrInternal and any unclassified error.
	ResultInternalError
)

// ResultOf maps an error returned by this package to its Result.
func ResultOf(err error) Result {
	switch {
	case err == nil:
		return ResultNoError
	case errors.Is(err, ErrBadArguments):
		return ResultBadArguments
	case errors.Is(err, ErrBufferTooSmall):
		return ResultBufferTooSmall
	case errors.Is(err, ErrBadFrame):
		return ResultBadFrame
	default:
		return ResultInternalError
	}
}

// String returns the result name.
func (r Result) String() string {
	switch r {
	case ResultNoError:
		return "no error"
	case ResultBadArguments:
		return "bad arguments"
	case ResultBufferTooSmall:
		return "buffer too small"
	case ResultBadFrame:
		return "bad frame"
	default:
		return "internal error"
	}
}

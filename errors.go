package bcfnt

import (
	"errors"
	"log/slog"
)

var (
	// ErrUnsupportedEndianness is returned when a container's byte-order-mark
	// is not the little-endian 0xFEFF this codec supports.
	ErrUnsupportedEndianness = errors.New("bcfnt: unsupported endianness (expected little-endian BOM 0xFEFF)")
	// ErrUnsupportedPixelFormat is returned when a TGLP block names a sheet
	// pixel format other than 4-bit alpha (0x0B).
	ErrUnsupportedPixelFormat = errors.New("bcfnt: unsupported pixel format (only 4-bit alpha is supported)")
	// ErrTruncated is returned when a container ends, or a block's internal
	// offsets point, before all declared data has been read.
	ErrTruncated = errors.New("bcfnt: truncated or inconsistent container data")
	// ErrInvalidBlockSize is returned when a block declares an internally
	// inconsistent size, such as a CMAP range with codeEnd < codeBegin.
	ErrInvalidBlockSize = errors.New("bcfnt: invalid block size")
	// ErrEmptyFont is returned by Serialize when the aggregate has no glyphs.
	ErrEmptyFont = errors.New("bcfnt: cannot serialize a font with no glyphs")
)

// IOError wraps a failure from the output sink passed to Serialize, tagging
// which phase of the write failed.
type IOError struct {
	Op  string
	Err error
}

func (e *IOError) Error() string { return "bcfnt: " + e.Op + ": " + e.Err.Error() }
func (e *IOError) Unwrap() error { return e.Err }

var defaultLogger = slog.Default()

func logger() *slog.Logger { return defaultLogger }

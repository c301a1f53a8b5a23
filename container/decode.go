package container

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/zhimiaox/mkbcfnt/cmap"
	"github.com/zhimiaox/mkbcfnt/stream"
)

var (
	// ErrUnsupportedEndianness mirrors bcfnt.ErrUnsupportedEndianness; kept
	// local so this package does not import its own consumer.
	ErrUnsupportedEndianness = errors.New("container: unsupported endianness (expected little-endian BOM 0xFEFF)")
	ErrUnsupportedPixelFormat = errors.New("container: unsupported pixel format (only 4-bit alpha is supported)")
	ErrTruncated              = errors.New("container: truncated or inconsistent container data")
	ErrInvalidBlockSize       = errors.New("container: invalid block size")
)

func short(err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%w: %v", ErrTruncated, err)
}

// Decode parses a complete BCFNT container byte stream into a Document.
func Decode(data []byte) (*Document, error) {
	r := stream.NewReader(data)

	if _, err := r.Raw(4); err != nil { // CFNT magic
		return nil, short(err)
	}
	bom, err := r.U16()
	if err != nil {
		return nil, short(err)
	}
	if bom != 0xFEFF {
		return nil, ErrUnsupportedEndianness
	}
	if err := r.Skip(2); err != nil { // header size
		return nil, short(err)
	}
	if err := r.Skip(4); err != nil { // version
		return nil, short(err)
	}
	fileSize, err := r.U32()
	if err != nil {
		return nil, short(err)
	}
	if int(fileSize) > len(data) {
		return nil, ErrTruncated
	}
	if err := r.Skip(4); err != nil { // num blocks
		return nil, short(err)
	}

	if _, err := r.Raw(4); err != nil { // FINF magic
		return nil, short(err)
	}
	if err := r.Skip(4); err != nil { // section size
		return nil, short(err)
	}
	if err := r.Skip(1); err != nil { // font type
		return nil, short(err)
	}
	lineFeed, err := r.U8()
	if err != nil {
		return nil, short(err)
	}
	altIndex, err := r.U16()
	if err != nil {
		return nil, short(err)
	}
	left, err := r.I8()
	if err != nil {
		return nil, short(err)
	}
	glyphWidth, err := r.U8()
	if err != nil {
		return nil, short(err)
	}
	charWidth, err := r.U8()
	if err != nil {
		return nil, short(err)
	}
	if err := r.Skip(1); err != nil { // encoding
		return nil, short(err)
	}
	tglpOffset, err := r.U32()
	if err != nil {
		return nil, short(err)
	}
	cwdhOffset, err := r.U32()
	if err != nil {
		return nil, short(err)
	}
	cmapOffset, err := r.U32()
	if err != nil {
		return nil, short(err)
	}
	height, err := r.U8()
	if err != nil {
		return nil, short(err)
	}
	width, err := r.U8()
	if err != nil {
		return nil, short(err)
	}
	ascent, err := r.U8()
	if err != nil {
		return nil, short(err)
	}
	if err := r.Skip(1); err != nil { // padding
		return nil, short(err)
	}

	doc := &Document{
		LineFeed:     lineFeed,
		AltIndex:     altIndex,
		DefaultWidth: CharWidthInfo{Left: left, GlyphWidth: glyphWidth, CharWidth: charWidth},
		Height:       height,
		Width:        width,
		Ascent:       ascent,
	}

	for cmapOffset != 0 {
		// cmapOffset is stored as the block's body start (tag+size+8); back up
		// 4 bytes to land on the size field.
		if err := r.Seek(int(cmapOffset) - 4); err != nil {
			return nil, ErrTruncated
		}
		size, err := r.U32()
		if err != nil {
			return nil, short(err)
		}
		if int(size) < cmapHeaderSize {
			return nil, ErrInvalidBlockSize
		}
		if (int(size)-cmapHeaderSize)%4 != 0 {
			slog.Warn("cmap section payload size is not a multiple of 4, continuing", "size", size)
		}
		codeBegin, err := r.U16()
		if err != nil {
			return nil, short(err)
		}
		codeEnd, err := r.U16()
		if err != nil {
			return nil, short(err)
		}
		method, err := r.U16()
		if err != nil {
			return nil, short(err)
		}
		if _, err := r.U16(); err != nil { // reserved
			return nil, short(err)
		}
		nextOffset, err := r.U32()
		if err != nil {
			return nil, short(err)
		}
		if codeEnd < codeBegin {
			return nil, ErrInvalidBlockSize
		}
		numCodes := int(codeEnd) - int(codeBegin) + 1

		var mapping cmap.Mapping
		switch method {
		case cmap.MethodDirect:
			off, err := r.U16()
			if err != nil {
				return nil, short(err)
			}
			mapping = cmap.Direct{Offset: off}
		case cmap.MethodTable:
			entries := make([]uint16, numCodes)
			for i := range entries {
				v, err := r.U16()
				if err != nil {
					return nil, short(err)
				}
				entries[i] = v
			}
			mapping = cmap.Table{Entries: entries}
		case cmap.MethodScan:
			count, err := r.U16()
			if err != nil {
				return nil, short(err)
			}
			pairs := make([]cmap.ScanPair, count)
			for i := range pairs {
				code, err := r.U16()
				if err != nil {
					return nil, short(err)
				}
				idx, err := r.U16()
				if err != nil {
					return nil, short(err)
				}
				pairs[i] = cmap.ScanPair{Code: code, Index: idx}
			}
			mapping = cmap.Scan{Entries: pairs}
		default:
			return nil, fmt.Errorf("%w: unknown cmap mapping method %d", ErrInvalidBlockSize, method)
		}

		doc.CMaps = append(doc.CMaps, cmap.Entry{CodeBegin: codeBegin, CodeEnd: codeEnd, Data: mapping})
		cmapOffset = nextOffset
	}

	if err := r.Seek(int(tglpOffset)); err != nil {
		return nil, ErrTruncated
	}
	cellWidth, err := r.U8()
	if err != nil {
		return nil, short(err)
	}
	cellHeight, err := r.U8()
	if err != nil {
		return nil, short(err)
	}
	if err := r.Skip(1); err != nil { // baseline; FINF ascent is authoritative
		return nil, short(err)
	}
	maxWidth, err := r.U8()
	if err != nil {
		return nil, short(err)
	}
	sheetSize, err := r.U32()
	if err != nil {
		return nil, short(err)
	}
	numSheets, err := r.U16()
	if err != nil {
		return nil, short(err)
	}
	format, err := r.U16()
	if err != nil {
		return nil, short(err)
	}
	if format != pixelFormat4A {
		return nil, ErrUnsupportedPixelFormat
	}
	gpr, err := r.U16()
	if err != nil {
		return nil, short(err)
	}
	gpc, err := r.U16()
	if err != nil {
		return nil, short(err)
	}
	sw, err := r.U16()
	if err != nil {
		return nil, short(err)
	}
	sh, err := r.U16()
	if err != nil {
		return nil, short(err)
	}
	sheetDataOffset, err := r.U32()
	if err != nil {
		return nil, short(err)
	}

	doc.Sheet = SheetInfo{
		CellWidth: cellWidth, CellHeight: cellHeight, MaxWidth: maxWidth,
		SheetSize: sheetSize, NumSheets: numSheets,
		GlyphsPerRow: gpr, GlyphsPerCol: gpc, SheetWidth: sw, SheetHeight: sh,
	}

	if err := r.Seek(int(sheetDataOffset)); err != nil {
		return nil, ErrTruncated
	}
	doc.Sheet.Sheets = make([][]byte, numSheets)
	for i := range doc.Sheet.Sheets {
		b, err := r.Raw(int(sheetSize))
		if err != nil {
			return nil, ErrTruncated
		}
		doc.Sheet.Sheets[i] = append([]byte(nil), b...)
	}

	for cwdhOffset != 0 {
		if err := r.Seek(int(cwdhOffset) - 4); err != nil {
			return nil, ErrTruncated
		}
		if _, err := r.U32(); err != nil { // section size
			return nil, short(err)
		}
		startIndex, err := r.U16()
		if err != nil {
			return nil, short(err)
		}
		endIndex, err := r.U16()
		if err != nil {
			return nil, short(err)
		}
		next, err := r.U32()
		if err != nil {
			return nil, short(err)
		}

		if int(endIndex) > len(doc.Widths) {
			grown := make([]CharWidthInfo, endIndex)
			copy(grown, doc.Widths)
			doc.Widths = grown
		}
		for i := startIndex; i < endIndex; i++ {
			l, err := r.I8()
			if err != nil {
				return nil, short(err)
			}
			gw, err := r.U8()
			if err != nil {
				return nil, short(err)
			}
			cw, err := r.U8()
			if err != nil {
				return nil, short(err)
			}
			doc.Widths[i] = CharWidthInfo{Left: l, GlyphWidth: gw, CharWidth: cw}
		}
		cwdhOffset = next
	}

	return doc, nil
}

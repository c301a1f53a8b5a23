package container

import (
	"fmt"

	"github.com/zhimiaox/mkbcfnt/cmap"
	"github.com/zhimiaox/mkbcfnt/stream"
)

const (
	cfntHeaderSize = 0x14
	finfHeaderSize = 0x20
	tglpHeaderSize = 0x20
	cwdhHeaderSize = 0x10
	cmapHeaderSize = 0x14
	sheetAlign     = 0x80
	pixelFormat4A  = 0x000B
)

func cmapMethodAndSize(e cmap.Entry) (uint16, int, error) {
	switch d := e.Data.(type) {
	case cmap.Direct:
		return cmap.MethodDirect, 4, nil
	case cmap.Table:
		n := len(d.Entries)
		size := n * 2
		if n%2 != 0 {
			size += 2
		}
		return cmap.MethodTable, size, nil
	case cmap.Scan:
		return cmap.MethodScan, 2 + len(d.Entries)*4 + 2, nil
	default:
		return 0, 0, fmt.Errorf("container: unknown cmap mapping variant %T", e.Data)
	}
}

// Encode serializes doc into a complete BCFNT container byte stream.
func Encode(doc *Document) ([]byte, error) {
	fileSize := cfntHeaderSize
	finfOffset := fileSize
	fileSize += finfHeaderSize
	tglpOffset := fileSize
	fileSize += tglpHeaderSize

	sheetOffset := fileSize
	for sheetOffset%sheetAlign != 0 {
		sheetOffset++
	}
	fileSize = sheetOffset + len(doc.Sheet.Sheets)*int(doc.Sheet.SheetSize)

	cwdhOffset := fileSize
	fileSize += cwdhHeaderSize
	cwdhDataSize := 3 * len(doc.Widths)
	for cwdhDataSize%4 != 0 {
		cwdhDataSize++
	}
	fileSize += cwdhDataSize

	cmapOffset := fileSize
	cmapSizes := make([]int, len(doc.CMaps))
	cmapMethods := make([]uint16, len(doc.CMaps))
	for i, e := range doc.CMaps {
		method, payload, err := cmapMethodAndSize(e)
		if err != nil {
			return nil, err
		}
		cmapMethods[i] = method
		cmapSizes[i] = cmapHeaderSize + payload
		fileSize += cmapSizes[i]
	}

	numBlocks := 3 + len(doc.CMaps)

	w := stream.NewWriter()

	w.Tag("CFNT").U16(0xFEFF).U16(cfntHeaderSize).U8(0).U8(0).U8(0).U8(3).
		U32(uint32(fileSize)).U32(uint32(numBlocks))
	if w.Len() != finfOffset {
		return nil, fmt.Errorf("container: internal offset mismatch before FINF")
	}

	w.Tag("FINF").U32(finfHeaderSize).U8(1).U8(doc.LineFeed).U16(doc.AltIndex).
		I8(doc.DefaultWidth.Left).U8(doc.DefaultWidth.GlyphWidth).U8(doc.DefaultWidth.CharWidth).
		U8(1).
		U32(uint32(tglpOffset+8)).U32(uint32(cwdhOffset+8)).U32(uint32(cmapOffset+8)).
		U8(doc.Height).U8(doc.Width).U8(doc.Ascent).U8(0)
	if w.Len() != tglpOffset {
		return nil, fmt.Errorf("container: internal offset mismatch before TGLP")
	}

	w.Tag("TGLP").U32(tglpHeaderSize).
		U8(doc.Sheet.CellWidth).U8(doc.Sheet.CellHeight).U8(doc.Ascent).U8(doc.Sheet.MaxWidth).
		U32(doc.Sheet.SheetSize).U16(doc.Sheet.NumSheets).U16(pixelFormat4A).
		U16(doc.Sheet.GlyphsPerRow).U16(doc.Sheet.GlyphsPerCol).
		U16(doc.Sheet.SheetWidth).U16(doc.Sheet.SheetHeight).
		U32(uint32(sheetOffset))
	if w.Len() > sheetOffset {
		return nil, fmt.Errorf("container: TGLP header overruns sheet data offset")
	}
	w.PadTo(sheetAlign)

	for _, sh := range doc.Sheet.Sheets {
		if len(sh) != int(doc.Sheet.SheetSize) {
			return nil, fmt.Errorf("container: sheet size %d does not match declared %d", len(sh), doc.Sheet.SheetSize)
		}
		w.Raw(sh)
	}
	if w.Len() != cwdhOffset {
		return nil, fmt.Errorf("container: internal offset mismatch before CWDH")
	}

	w.Tag("CWDH").U32(uint32(cwdhHeaderSize + cwdhDataSize)).
		U16(0).U16(uint16(len(doc.Widths))).U32(0)
	for _, info := range doc.Widths {
		w.I8(info.Left).U8(info.GlyphWidth).U8(info.CharWidth)
	}
	w.PadTo(4)
	if w.Len() != cmapOffset {
		return nil, fmt.Errorf("container: internal offset mismatch before CMAP")
	}

	offset := cmapOffset
	for i, e := range doc.CMaps {
		size := cmapSizes[i]
		var next uint32
		if i != len(doc.CMaps)-1 {
			next = uint32(offset + size + 8)
		}

		w.Tag("CMAP").U32(uint32(size)).
			U16(e.CodeBegin).U16(e.CodeEnd).U16(cmapMethods[i]).U16(0).
			U32(next)

		switch d := e.Data.(type) {
		case cmap.Direct:
			w.U16(d.Offset).U16(0)
		case cmap.Table:
			for _, v := range d.Entries {
				w.U16(v)
			}
			if len(d.Entries)%2 != 0 {
				w.U16(0)
			}
		case cmap.Scan:
			w.U16(uint16(len(d.Entries)))
			for _, p := range d.Entries {
				w.U16(p.Code).U16(p.Index)
			}
			w.U16(0)
		}
		offset += size
	}

	if w.Len() != fileSize {
		return nil, fmt.Errorf("container: computed size %d does not match written size %d", fileSize, w.Len())
	}
	return w.Bytes(), nil
}

package container_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zhimiaox/mkbcfnt/cmap"
	"github.com/zhimiaox/mkbcfnt/container"
)

func sheetOf(size uint32) []byte {
	return make([]byte, size)
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	doc := &container.Document{
		LineFeed:     10,
		AltIndex:     0,
		DefaultWidth: container.CharWidthInfo{Left: 0, GlyphWidth: 5, CharWidth: 5},
		Height:       8,
		Width:        6,
		Ascent:       7,
		Sheet: container.SheetInfo{
			CellWidth: 5, CellHeight: 6, MaxWidth: 5,
			SheetSize: 32768, NumSheets: 1,
			GlyphsPerRow: 42, GlyphsPerCol: 36,
			SheetWidth: 256, SheetHeight: 256,
			Sheets: [][]byte{sheetOf(32768)},
		},
		Widths: []container.CharWidthInfo{
			{Left: 0, GlyphWidth: 4, CharWidth: 5},
		},
		CMaps: []cmap.Entry{
			{CodeBegin: 0x41, CodeEnd: 0x41, Data: cmap.Direct{Offset: 0}},
		},
	}

	data, err := container.Encode(doc)
	require.NoError(t, err)

	decoded, err := container.Decode(data)
	require.NoError(t, err)

	assert.Equal(t, doc.LineFeed, decoded.LineFeed)
	assert.Equal(t, doc.AltIndex, decoded.AltIndex)
	assert.Equal(t, doc.Height, decoded.Height)
	assert.Equal(t, doc.Width, decoded.Width)
	assert.Equal(t, doc.Ascent, decoded.Ascent)
	assert.Equal(t, doc.Sheet.CellWidth, decoded.Sheet.CellWidth)
	assert.Equal(t, doc.Sheet.CellHeight, decoded.Sheet.CellHeight)
	assert.Equal(t, doc.Sheet.NumSheets, decoded.Sheet.NumSheets)
	assert.Equal(t, doc.Sheet.Sheets, decoded.Sheet.Sheets)
	assert.Equal(t, doc.Widths, decoded.Widths)
	require.Len(t, decoded.CMaps, 1)
	assert.Equal(t, cmap.Direct{Offset: 0}, decoded.CMaps[0].Data)
}

func TestEncodeDecodeMultipleCMAPChain(t *testing.T) {
	doc := &container.Document{
		Height: 1, Width: 1, Ascent: 1,
		Sheet: container.SheetInfo{
			CellWidth: 1, CellHeight: 1, MaxWidth: 1,
			SheetSize: 32768, NumSheets: 0,
			SheetWidth: 256, SheetHeight: 256,
		},
		CMaps: []cmap.Entry{
			{CodeBegin: 0x10, CodeEnd: 0x10, Data: cmap.Direct{Offset: 0}},
			{CodeBegin: 0x20, CodeEnd: 0x21, Data: cmap.Table{Entries: []uint16{1, 2}}},
			{CodeBegin: 0x30, CodeEnd: 0x31, Data: cmap.Scan{Entries: []cmap.ScanPair{{Code: 0x30, Index: 3}, {Code: 0x31, Index: 4}}}},
		},
	}

	data, err := container.Encode(doc)
	require.NoError(t, err)

	decoded, err := container.Decode(data)
	require.NoError(t, err)
	require.Len(t, decoded.CMaps, 3)
	assert.Equal(t, cmap.Direct{Offset: 0}, decoded.CMaps[0].Data)
	assert.Equal(t, cmap.Table{Entries: []uint16{1, 2}}, decoded.CMaps[1].Data)
	assert.Equal(t, cmap.Scan{Entries: []cmap.ScanPair{{Code: 0x30, Index: 3}, {Code: 0x31, Index: 4}}}, decoded.CMaps[2].Data)
}

func TestDecodeRejectsBadBOM(t *testing.T) {
	data := make([]byte, 20)
	copy(data, []byte("CFNT"))
	data[4], data[5] = 0x00, 0x00 // not 0xFEFF
	_, err := container.Decode(data)
	assert.ErrorIs(t, err, container.ErrUnsupportedEndianness)
}

func TestCWDHSingleLinkRoundTrip(t *testing.T) {
	doc := &container.Document{
		Height: 1, Width: 1, Ascent: 1,
		Sheet: container.SheetInfo{
			CellWidth: 1, CellHeight: 1, MaxWidth: 1,
			SheetSize: 32768, NumSheets: 0,
			SheetWidth: 256, SheetHeight: 256,
		},
		Widths: []container.CharWidthInfo{
			{CharWidth: 1}, {CharWidth: 2}, {CharWidth: 3},
		},
	}

	data, err := container.Encode(doc)
	require.NoError(t, err)
	decoded, err := container.Decode(data)
	require.NoError(t, err)
	assert.Equal(t, doc.Widths, decoded.Widths)
}

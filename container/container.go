/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

// Package container implements the CFNT/FINF/TGLP/CWDH/CMAP binary block
// layout of a BCFNT font file: pure encode/decode between a Document value
// and its wire bytes, with no knowledge of glyph rasterization or merging.
package container

import "github.com/zhimiaox/mkbcfnt/cmap"

// CharWidthInfo is one glyph's horizontal metrics as stored in a CWDH block.
type CharWidthInfo struct {
	Left       int8
	GlyphWidth uint8
	CharWidth  uint8
}

// SheetInfo describes the TGLP block: sheet geometry plus the packed pixel
// data for every sheet, in order.
type SheetInfo struct {
	CellWidth, CellHeight, MaxWidth uint8
	SheetSize                       uint32
	NumSheets                       uint16
	GlyphsPerRow, GlyphsPerCol      uint16
	SheetWidth, SheetHeight         uint16
	Sheets                          [][]byte
}

// Document is the fully decoded (or not-yet-encoded) content of a BCFNT
// container: every field a Font needs to reconstruct or produce its wire
// bytes.
type Document struct {
	LineFeed     uint8
	AltIndex     uint16
	DefaultWidth CharWidthInfo
	Height       uint8
	Width        uint8
	Ascent       uint8
	Sheet        SheetInfo
	Widths       []CharWidthInfo
	CMaps        []cmap.Entry
}

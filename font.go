/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package bcfnt

import (
	"errors"
	"fmt"
	"image"
	"io"

	"github.com/zhimiaox/mkbcfnt/canvas"
	"github.com/zhimiaox/mkbcfnt/cmap"
	"github.com/zhimiaox/mkbcfnt/codepoints"
	"github.com/zhimiaox/mkbcfnt/container"
	"github.com/zhimiaox/mkbcfnt/sheet"
)

// Font is a BCFNT aggregate: a merged glyph store, its CMAP list, and the
// derived geometry that follows from the glyphs currently in it. It
// accumulates glyphs through repeated AddFontFromRaster/AddFontFromContainer
// calls and owns its glyphs and CMAPs exclusively.
type Font struct {
	glyphs *GlyphStore
	cmaps  []cmap.Entry

	defaultWidth CharWidthInfo

	lineFeed, height, width int
	maxWidth, ascent        int
	descent                 int

	cellWidth, cellHeight     int
	glyphWidth, glyphHeight   int
	glyphsPerRow, glyphsPerCol, glyphsPerSheet int
	numSheets                                  int
	altIndex                                   int
}

// New returns an empty aggregate, ready to accumulate glyphs.
func New() *Font {
	return &Font{glyphs: NewGlyphStore()}
}

// Has reports whether code is already present in the aggregate.
func (f *Font) Has(code rune) bool { return f.glyphs.Has(code) }

// GlyphAt returns the glyph stored at code, or nil if absent.
func (f *Font) GlyphAt(code rune) *Glyph { return f.glyphs.Get(code) }

// IndexOf returns code's glyph index, or -1 if absent.
func (f *Font) IndexOf(code rune) int { return f.glyphs.IndexOf(code) }

// AltIndex returns the aggregate's current fallback glyph index.
func (f *Font) AltIndex() int { return f.altIndex }

// NumSheets returns the number of texture sheets the aggregate would
// serialize to at its current glyph count.
func (f *Font) NumSheets() int { return f.numSheets }

// GlyphsPerSheet returns how many glyphs fit on one texture sheet at the
// aggregate's current cell geometry.
func (f *Font) GlyphsPerSheet() int { return f.glyphsPerSheet }

// allowed mirrors bcfnt.cpp's allowed(): list semantics flip with the flag,
// a blacklist excludes members, a whitelist keeps only members.
func allowed(code uint16, list []uint16, isBlacklist bool) bool {
	return codepoints.Contains(list, code) != isBlacklist
}

// recomputeCellGeometry derives cell and sheet-grid dimensions from the
// aggregate's current maxWidth/ascent/descent, per spec.md §3.
func (f *Font) recomputeCellGeometry() {
	f.cellWidth = f.maxWidth + 1
	f.cellHeight = f.ascent - f.descent
	f.glyphWidth = f.cellWidth + 1
	f.glyphHeight = f.cellHeight + 1
	f.glyphsPerRow = sheet.Width / f.glyphWidth
	f.glyphsPerCol = sheet.Height / f.glyphHeight
	f.glyphsPerSheet = f.glyphsPerRow * f.glyphsPerCol
}

// resolveAltIndex picks the fallback glyph index in priority order
// 0xFFFD, '?', ' ', else 0 — the first present in the ordered glyph store.
func (f *Font) resolveAltIndex() {
	for _, code := range []rune{0xFFFD, '?', ' '} {
		if i := f.glyphs.IndexOf(code); i >= 0 {
			f.altIndex = i
			return
		}
	}
	f.altIndex = 0
}

// rebuildCMAPs re-derives the CMAP list from the current glyph store's
// ascending code order, then coalesces small Direct runs into Scan entries.
// Both addFont paths call this and both coalesce (an intentional unification
// of an inconsistency between the source's two merge paths — see DESIGN.md).
func (f *Font) rebuildCMAPs() {
	codes := f.glyphs.Codes()
	codes16 := make([]uint16, len(codes))
	for i, c := range codes {
		codes16[i] = uint16(c)
	}
	f.cmaps = cmap.Coalesce(cmap.Rebuild(codes16))
}

// recomputeNumSheets derives numSheets uniformly as ⌈|GlyphStore| / glyphsPerSheet⌉.
func (f *Font) recomputeNumSheets() {
	n := f.glyphs.Len()
	if n == 0 {
		f.numSheets = 0
		return
	}
	f.numSheets = (n-1)/f.glyphsPerSheet + 1
}

// Serialize writes the aggregate's wire bytes to w. It fails with
// ErrEmptyFont if no glyphs have been added.
func (f *Font) Serialize(w io.Writer) error {
	if f.glyphs.Len() == 0 {
		return ErrEmptyFont
	}

	doc := f.toDocument()
	data, err := container.Encode(doc)
	if err != nil {
		return err
	}

	for written := 0; written < len(data); {
		n, err := w.Write(data[written:])
		if n == 0 && err != nil {
			return &IOError{Op: "write", Err: err}
		}
		written += n
		if err != nil {
			return &IOError{Op: "write", Err: err}
		}
	}

	if closer, ok := w.(io.Closer); ok {
		if err := closer.Close(); err != nil {
			return &IOError{Op: "close", Err: err}
		}
	}
	return nil
}

// toDocument assembles a container.Document from the aggregate's current
// glyph store and geometry, packing every sheet's pixel data along the way.
func (f *Font) toDocument() *container.Document {
	codes := f.glyphs.Codes()
	widths := make([]container.CharWidthInfo, len(codes))
	for i, code := range codes {
		widths[i] = f.glyphs.Get(code).Info
	}

	sheets := f.sheetify(codes)

	return &container.Document{
		LineFeed:     uint8(f.lineFeed),
		AltIndex:     uint16(f.altIndex),
		DefaultWidth: f.defaultWidth,
		Height:       uint8(f.height),
		Width:        uint8(f.width),
		Ascent:       uint8(f.ascent),
		Sheet: container.SheetInfo{
			CellWidth: uint8(f.cellWidth), CellHeight: uint8(f.cellHeight), MaxWidth: uint8(f.maxWidth),
			SheetSize: sheet.Size, NumSheets: uint16(f.numSheets),
			GlyphsPerRow: uint16(f.glyphsPerRow), GlyphsPerCol: uint16(f.glyphsPerCol),
			SheetWidth: sheet.Width, SheetHeight: sheet.Height,
			Sheets: sheets,
		},
		Widths: widths,
		CMaps:  f.cmaps,
	}
}

// sheetify composites every glyph onto its grid cell across numSheets
// canvases and packs each to 4-bit-alpha sheet bytes. A glyph's full
// glyphWidth x glyphHeight bitmap (content already inset at (1,1)) is placed
// at the cell origin, shifted vertically by the aggregate's ascent relative
// to the glyph's own ascent at creation time.
func (f *Font) sheetify(codes []rune) [][]byte {
	sheets := make([][]byte, f.numSheets)
	for s := range sheets {
		canv := canvas.New(sheet.Width, sheet.Height)
		for i := 0; i < f.glyphsPerSheet; i++ {
			idx := s*f.glyphsPerSheet + i
			if idx >= len(codes) {
				break
			}
			g := f.glyphs.Get(codes[idx])
			x, y := i%f.glyphsPerRow, i/f.glyphsPerRow
			at := image.Pt(x*f.glyphWidth, y*f.glyphHeight+(f.ascent-g.Ascent))
			canvas.Composite(canv, g.Bitmap, at)
		}
		sheets[s] = sheet.PackBytes(canv)
	}
	return sheets
}

// Decode parses a complete BCFNT container byte stream into a new Font.
func Decode(data []byte) (*Font, error) {
	doc, err := container.Decode(data)
	if err != nil {
		return nil, translateContainerErr(err)
	}

	f := New()
	f.defaultWidth = doc.DefaultWidth
	f.lineFeed = int(doc.LineFeed)
	f.height = int(doc.Height)
	f.width = int(doc.Width)
	f.ascent = int(doc.Ascent)
	f.altIndex = int(doc.AltIndex)
	f.cellWidth = int(doc.Sheet.CellWidth)
	f.cellHeight = int(doc.Sheet.CellHeight)
	f.glyphWidth = f.cellWidth + 1
	f.glyphHeight = f.cellHeight + 1
	f.maxWidth = int(doc.Sheet.MaxWidth)
	f.glyphsPerRow = int(doc.Sheet.GlyphsPerRow)
	f.glyphsPerCol = int(doc.Sheet.GlyphsPerCol)
	f.glyphsPerSheet = f.glyphsPerRow * f.glyphsPerCol
	f.numSheets = int(doc.Sheet.NumSheets)
	f.descent = f.ascent - f.cellHeight
	f.cmaps = doc.CMaps

	for s, sheetBytes := range doc.Sheet.Sheets {
		img := sheet.UnpackBytes(sheetBytes, sheet.Width, sheet.Height)
		for i := 0; i < f.glyphsPerSheet; i++ {
			idx := s*f.glyphsPerSheet + i
			code := cmap.CodePointFromIndex(doc.CMaps, uint16(idx))
			if code == cmap.NoGlyph {
				continue
			}
			x, y := i%f.glyphsPerRow, i/f.glyphsPerRow
			bitmap := canvas.Crop(img, x*f.glyphWidth, y*f.glyphHeight, f.glyphWidth, f.glyphHeight)

			var info CharWidthInfo
			if idx < len(doc.Widths) {
				info = doc.Widths[idx]
			}
			f.glyphs.Put(rune(code), &Glyph{Bitmap: bitmap, Info: info, Ascent: f.ascent})
		}
	}

	return f, nil
}

// translateContainerErr maps a container.Err* sentinel to its bcfnt.Err*
// counterpart so callers of Decode can match errors.Is against this
// package's own sentinels instead of reaching into container. Wrapped
// context from err is preserved via %w.
func translateContainerErr(err error) error {
	switch {
	case errors.Is(err, container.ErrUnsupportedEndianness):
		return fmt.Errorf("%w: %v", ErrUnsupportedEndianness, err)
	case errors.Is(err, container.ErrUnsupportedPixelFormat):
		return fmt.Errorf("%w: %v", ErrUnsupportedPixelFormat, err)
	case errors.Is(err, container.ErrInvalidBlockSize):
		return fmt.Errorf("%w: %v", ErrInvalidBlockSize, err)
	case errors.Is(err, container.ErrTruncated):
		return fmt.Errorf("%w: %v", ErrTruncated, err)
	default:
		return err
	}
}

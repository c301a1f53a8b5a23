/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

// Package raster is the outline-font rasterizer collaborator: it parses a
// TrueType font with github.com/golang/freetype/truetype and scan-converts
// individual glyphs to 8-bit alpha bitmaps with github.com/golang/freetype/raster.
package raster

import (
	"errors"
	"image"

	"github.com/golang/freetype/raster"
	"github.com/golang/freetype/truetype"
)

// dpi matches mkbcfnt.cpp's FT_Set_Char_Size(face, size<<6, 0, 96, 0) call.
const dpi = 96

// ErrNegativeSizedGlyph is returned when a glyph's scaled bounding box is
// inverted; the caller skips the code point. An empty box is not an error.
var ErrNegativeSizedGlyph = errors.New("raster: negative sized glyph")

// Metrics holds a font's global, point-size-scaled vertical measurements.
type Metrics struct {
	LineFeed int
	Height   int
	Width    int
	Ascent   int
	Descent  int
}

// GlyphMetrics is one rasterized glyph: its alpha bitmap plus the metrics
// needed to place it relative to the pen position and cell baseline.
type GlyphMetrics struct {
	BitmapTop    int
	HoriBearingX int
	Width        int
	HoriAdvance  int
	Bitmap       *image.Alpha
}

// Face wraps a parsed TrueType font scaled to a fixed point size.
type Face struct {
	font  *truetype.Font
	upe   int
	scale int // FUnits -> 16.16 fixed-point pixels, per (pointSize*dpi*256*256)/(upe*72)
}

// OpenFace parses data as a TrueType font and scales it to points at 96 DPI.
func OpenFace(data []byte, points float64) (*Face, error) {
	font, err := truetype.Parse(data)
	if err != nil {
		return nil, err
	}
	upe := font.UnitsPerEm()
	scale := int(points * dpi * 256 * 256 / float64(upe) / 72)
	return &Face{font: font, upe: upe, scale: scale}, nil
}

// funitToPixel rounds an FUnit measurement to the nearest scaled pixel; the
// round-to-nearest counterpart of FUnitToPixelRD/FUnitToPixelRU.
func (f *Face) funitToPixel(x int) int {
	return (x*f.scale + 0x8000) >> 16
}

func (f *Face) funitToFix32(x int) raster.Fix32 {
	return raster.Fix32((x*f.scale + 128) >> 8)
}

// Metrics returns the font's scaled vertical metrics, derived from the
// head table's global bounding box (the only ascent/descent-shaped values
// this font's parse surface exposes). Descent follows FreeType's own sign
// convention: zero or negative, the depth of the lowest descender below the
// baseline, so Height == Ascent - Descent.
func (f *Face) Metrics() Metrics {
	b := f.font.Bounds()
	ascent := f.funitToPixel(int(b.YMax))
	descent := f.funitToPixel(int(b.YMin))
	width := f.funitToPixel(int(b.XMax) - int(b.XMin))
	return Metrics{
		LineFeed: ascent - descent,
		Height:   ascent - descent,
		Width:    width,
		Ascent:   ascent,
		Descent:  descent,
	}
}

// Codes walks the font's code point space in ascending order, yielding every
// rune the font's cmap subtable maps to a non-notdef glyph. This replaces
// FreeType's getFirstChar/getNextChar enumeration pair: the font.Index
// lookup gives no iteration API of its own, so Codes brute-forces the BMP.
func (f *Face) Codes() []rune {
	var codes []rune
	for r := rune(1); r <= 0xFFFF; r++ {
		if f.font.Index(r) != 0 {
			codes = append(codes, r)
		}
	}
	return codes
}

// LoadGlyph rasterizes the glyph for code to an 8-bit alpha bitmap. It
// returns an error, never panics, when the outline rasterizer cannot render
// the glyph; the aggregator skips the code point and continues.
func (f *Face) LoadGlyph(code rune) (*GlyphMetrics, error) {
	index := f.font.Index(code)
	if index == 0 {
		return nil, errors.New("raster: code point not present in font cmap")
	}

	glyphBuf := truetype.NewGlyphBuf()
	if err := glyphBuf.Load(f.font, index); err != nil {
		return nil, err
	}

	xmin := f.funitToPixel(int(glyphBuf.B.XMin))
	ymin := f.funitToPixel(-int(glyphBuf.B.YMax))
	xmax := f.funitToPixel(int(glyphBuf.B.XMax))
	ymax := f.funitToPixel(-int(glyphBuf.B.YMin))
	if xmin > xmax || ymin > ymax {
		return nil, ErrNegativeSizedGlyph
	}

	dx := raster.Fix32(-xmin << 8)
	dy := raster.Fix32(-ymin << 8)

	r := raster.NewRasterizer(xmax-xmin, ymax-ymin)
	r.Clear()
	e0 := 0
	for _, e1 := range glyphBuf.End {
		f.drawContour(r, glyphBuf.Point[e0:e1], dx, dy)
		e0 = e1
	}

	bitmap := image.NewAlpha(image.Rect(0, 0, xmax-xmin, ymax-ymin))
	r.Rasterize(raster.NewAlphaSrcPainter(bitmap))

	hmetric := f.font.HMetric(index)
	return &GlyphMetrics{
		BitmapTop:    -ymin,
		HoriBearingX: f.funitToPixel(int(hmetric.LeftSideBearing)),
		Width:        xmax - xmin,
		HoriAdvance:  f.funitToPixel(int(hmetric.AdvanceWidth)),
		Bitmap:       bitmap,
	}, nil
}

// drawContour walks one closed TrueType contour, converting its on/off
// curve points into rasterizer Add1 (line) and Add2 (quadratic Bezier)
// calls, closing the contour at the end.
func (f *Face) drawContour(r *raster.Rasterizer, ps []truetype.Point, dx, dy raster.Fix32) {
	if len(ps) == 0 {
		return
	}
	start := raster.Point{
		X: dx + f.funitToFix32(int(ps[0].X)),
		Y: dy + f.funitToFix32(-int(ps[0].Y)),
	}
	r.Start(start)
	q0, on0 := start, true
	for _, p := range ps[1:] {
		q := raster.Point{
			X: dx + f.funitToFix32(int(p.X)),
			Y: dy + f.funitToFix32(-int(p.Y)),
		}
		on := p.Flags&0x01 != 0
		switch {
		case on && on0:
			r.Add1(q)
		case on && !on0:
			r.Add2(q0, q)
		case !on && on0:
			// No-op; wait for the next point to pair with this control point.
		default:
			mid := raster.Point{X: (q0.X + q.X) / 2, Y: (q0.Y + q.Y) / 2}
			r.Add2(q0, mid)
		}
		q0, on0 = q, on
	}
	if on0 {
		r.Add1(start)
	} else {
		r.Add2(q0, start)
	}
}

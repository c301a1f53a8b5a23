/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package bcfnt

import (
	"image"
	"math"

	"github.com/zhimiaox/mkbcfnt/canvas"
)

// AddFontFromRaster merges glyphs rendered through an outline-font
// rasterizer into the aggregate, subject to an optional blacklist or
// whitelist of code points. Lower-priority sources (later calls) never
// replace a code point already present.
func (f *Font) AddFontFromRaster(face RasterSource, list []uint16, isBlacklist bool) {
	metrics := face.Metrics()

	descent := f.descent
	if f.glyphs.Len() == 0 {
		descent = math.MaxInt32
	}
	ascent := max(f.ascent, metrics.Ascent)
	descent = min(descent, metrics.Descent)
	lineFeed := max(f.lineFeed, metrics.LineFeed)
	height := max(f.height, metrics.Height)
	width := max(f.width, metrics.Width)
	maxWidth := f.maxWidth

	for _, code := range face.Codes() {
		// Only 16-bit code points are supported; 0xFFFF is reserved.
		if code >= 0xFFFF || f.glyphs.Has(code) {
			continue
		}
		if !allowed(uint16(code), list, isBlacklist) {
			continue
		}

		glyph, err := face.LoadGlyph(code)
		if err != nil {
			logger().Debug("skipping glyph the rasterizer could not load", "code", code, "err", err)
			continue
		}

		ascent = max(ascent, glyph.BitmapTop)
		descent = min(descent, glyph.BitmapTop-glyph.Bitmap.Bounds().Dy())
		maxWidth = max(maxWidth, glyph.Width)

		f.ascent, f.descent, f.maxWidth = ascent, descent, maxWidth
		f.recomputeCellGeometry()

		bitmap := canvas.New(f.glyphWidth, f.glyphHeight)
		canvas.Composite(bitmap, glyph.Bitmap, image.Pt(1, 1))

		f.glyphs.Put(code, &Glyph{
			Bitmap: bitmap,
			Info: CharWidthInfo{
				Left:       narrow[int8]("glyph.HoriBearingX", glyph.HoriBearingX),
				GlyphWidth: narrow[uint8]("glyph.Width", glyph.Width),
				CharWidth:  narrow[uint8]("glyph.HoriAdvance", glyph.HoriAdvance),
			},
			Ascent: f.ascent,
		})
	}

	if f.glyphs.Len() == 0 {
		return
	}

	f.lineFeed, f.height, f.width = lineFeed, height, width
	f.ascent, f.descent, f.maxWidth = ascent, descent, maxWidth
	f.recomputeCellGeometry()
	f.resolveAltIndex()
	f.rebuildCMAPs()
	f.recomputeNumSheets()
}

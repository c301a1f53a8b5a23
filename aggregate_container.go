/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package bcfnt

import "github.com/zhimiaox/mkbcfnt/sheet"

// AddFontFromContainer merges glyphs from another decoded aggregate into f,
// subject to an optional blacklist or whitelist of code points. Lower-
// priority sources (later calls) never replace a code point already
// present. Unlike the source this is modeled on, both merge paths coalesce
// their rebuilt CMAPs and recompute altIndex — see DESIGN.md.
func (f *Font) AddFontFromContainer(other *Font, list []uint16, isBlacklist bool) {
	newAscent := max(other.ascent, f.ascent)
	newCellHeight := newAscent + max(other.cellHeight-other.ascent, f.cellHeight-f.ascent)
	newCellWidth := max(other.cellWidth, f.cellWidth)

	for _, code := range other.glyphs.Codes() {
		if code == 0xFFFF || f.glyphs.Has(code) {
			continue
		}
		if !allowed(uint16(code), list, isBlacklist) {
			continue
		}
		f.glyphs.Put(code, other.glyphs.Get(code))
	}

	if f.glyphs.Len() == 0 {
		return
	}

	f.rebuildCMAPs()

	f.ascent = newAscent
	f.cellHeight = newCellHeight
	f.cellWidth = newCellWidth
	f.glyphHeight = f.cellHeight + 1
	f.glyphWidth = f.cellWidth + 1
	f.glyphsPerRow = sheet.Width / f.glyphWidth
	f.glyphsPerCol = sheet.Height / f.glyphHeight
	f.glyphsPerSheet = f.glyphsPerRow * f.glyphsPerCol
	f.lineFeed = max(f.lineFeed, other.lineFeed)
	f.height = max(f.height, other.height)
	f.width = max(f.width, other.width)
	f.maxWidth = f.cellWidth
	f.resolveAltIndex()
	f.recomputeNumSheets()
}

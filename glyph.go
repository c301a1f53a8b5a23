/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package bcfnt

import (
	"image"
	"sort"

	"github.com/zhimiaox/mkbcfnt/container"
)

// CharWidthInfo is one glyph's horizontal metrics, as stored in a CWDH block.
type CharWidthInfo = container.CharWidthInfo

// Glyph is a single rendered or decoded character: its bitmap (always sized
// glyphWidth x glyphHeight, real content inset at (1,1)), horizontal
// metrics, and the per-glyph ascent used to vertically place it on a sheet.
type Glyph struct {
	Bitmap *image.Alpha
	Info   CharWidthInfo
	Ascent int
}

// GlyphStore holds a font's merged glyph set, keyed by Unicode code point,
// with deterministic ascending iteration order.
type GlyphStore struct {
	codes  []rune
	glyphs map[rune]*Glyph
}

// NewGlyphStore returns an empty store.
func NewGlyphStore() *GlyphStore {
	return &GlyphStore{glyphs: make(map[rune]*Glyph)}
}

// Has reports whether code is already present.
func (s *GlyphStore) Has(code rune) bool {
	_, ok := s.glyphs[code]
	return ok
}

// Get returns the glyph stored for code, or nil if absent.
func (s *GlyphStore) Get(code rune) *Glyph {
	return s.glyphs[code]
}

// Put inserts or replaces the glyph at code, keeping codes in ascending
// order (teacher precedent: zhimiaox-subfont/lvgl/cmap.go operates on a
// pre-sorted []rune, and export.go rebuilds sort.Slice-ordered code lists
// before emitting wire data).
func (s *GlyphStore) Put(code rune, g *Glyph) {
	if _, exists := s.glyphs[code]; !exists {
		i := sort.Search(len(s.codes), func(i int) bool { return s.codes[i] >= code })
		s.codes = append(s.codes, 0)
		copy(s.codes[i+1:], s.codes[i:])
		s.codes[i] = code
	}
	s.glyphs[code] = g
}

// Codes returns every stored code point in ascending order.
func (s *GlyphStore) Codes() []rune {
	return s.codes
}

// IndexOf returns code's position in ascending order, or -1 if absent. This
// is a glyph's index into CWDH/sheet layout.
func (s *GlyphStore) IndexOf(code rune) int {
	i := sort.Search(len(s.codes), func(i int) bool { return s.codes[i] >= code })
	if i < len(s.codes) && s.codes[i] == code {
		return i
	}
	return -1
}

// Len returns the number of stored glyphs.
func (s *GlyphStore) Len() int {
	return len(s.codes)
}

/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

// Package canvas is the image-buffer collaborator: a thin wrapper around
// image.Alpha and golang.org/x/image/draw used to assemble glyph bitmaps
// onto a texture sheet.
package canvas

import (
	"image"

	"golang.org/x/image/draw"
)

// New returns a fully transparent w x h alpha canvas.
func New(w, h int) *image.Alpha {
	return image.NewAlpha(image.Rect(0, 0, w, h))
}

// Composite overlays src onto dst at at using normal "over" alpha blending,
// so previously placed glyphs are never clobbered by a later glyph's
// transparent margins.
func Composite(dst *image.Alpha, src *image.Alpha, at image.Point) {
	r := src.Bounds().Sub(src.Bounds().Min).Add(at)
	draw.Draw(dst, r, src, src.Bounds().Min, draw.Over)
}

// Crop returns a fresh w x h canvas holding the pixels of src found at
// offset (x, y), used to lift one glyph's slot back out of a decoded sheet.
func Crop(src *image.Alpha, x, y, w, h int) *image.Alpha {
	dst := New(w, h)
	draw.Draw(dst, dst.Bounds(), src, image.Pt(x, y), draw.Src)
	return dst
}

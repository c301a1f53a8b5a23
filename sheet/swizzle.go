/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

// Package sheet lays glyph pixels out on the fixed-size textures a BCFNT
// container stores: 8x8 Morton-order tiling plus 4-bit alpha packing.
package sheet

import "image"

// Tile is the Morton-order tile edge length the swizzler operates on.
const Tile = 8

// tileIndex maps a pixel position (tx, ty) within an 8x8 tile, both in
// [0, Tile), to the linear index produced by interleaving their low three
// bits in the order y0 x0 y1 x1 y2 x2 - a Z-order (Morton) curve.
func tileIndex(tx, ty int) int {
	x0, x1, x2 := tx&1, (tx>>1)&1, (tx>>2)&1
	y0, y1, y2 := ty&1, (ty>>1)&1, (ty>>2)&1
	return y0<<5 | x0<<4 | y1<<3 | x1<<2 | y2<<1 | x2
}

// Swizzle reorders the pixels of img, whose dimensions must be multiples of
// Tile, between linear row-major layout and 8x8 Morton-tiled layout. unpack
// selects the inverse direction: Swizzle(Swizzle(img, false), true)
// reproduces img exactly.
func Swizzle(img *image.Alpha, unpack bool) *image.Alpha {
	b := img.Bounds()
	out := image.NewAlpha(b)
	for by := b.Min.Y; by < b.Max.Y; by += Tile {
		for bx := b.Min.X; bx < b.Max.X; bx += Tile {
			for ty := 0; ty < Tile; ty++ {
				for tx := 0; tx < Tile; tx++ {
					m := tileIndex(tx, ty)
					mx, my := m%Tile, m/Tile
					if unpack {
						out.SetAlpha(bx+tx, by+ty, img.AlphaAt(bx+mx, by+my))
					} else {
						out.SetAlpha(bx+mx, by+my, img.AlphaAt(bx+tx, by+ty))
					}
				}
			}
		}
	}
	return out
}

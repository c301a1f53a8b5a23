package sheet

import (
	"image"
	"image/color"
)

// Width, Height and Size are the fixed geometry of a single BCFNT texture
// sheet: a 256x256 4-bit alpha image, two pixels per byte.
const (
	Width  = 256
	Height = 256
	Size   = Width * Height / 2
)

func quantizeTo4(v uint8) uint8 {
	return uint8((uint32(v)*15 + 127) / 255)
}

func expandFrom4(v4 uint8) uint8 {
	return v4 * 17
}

// PackBytes swizzles img and emits Size bytes of 4-bit alpha: each byte
// carries two adjacent pixels in Morton order, low nibble first.
func PackBytes(img *image.Alpha) []byte {
	tiled := Swizzle(img, false)
	b := tiled.Bounds()
	w, h := b.Dx(), b.Dy()
	out := make([]byte, 0, w*h/2)
	for by := 0; by < h; by += Tile {
		for bx := 0; bx < w; bx += Tile {
			for i := 0; i < Tile*Tile; i += 2 {
				x0, y0 := i%Tile, i/Tile
				x1, y1 := (i+1)%Tile, (i+1)/Tile
				lo := quantizeTo4(tiled.AlphaAt(bx+x0, by+y0).A)
				hi := quantizeTo4(tiled.AlphaAt(bx+x1, by+y1).A)
				out = append(out, hi<<4|lo)
			}
		}
	}
	return out
}

// UnpackBytes is the exact inverse of PackBytes for a w x h sheet.
func UnpackBytes(data []byte, w, h int) *image.Alpha {
	tiled := image.NewAlpha(image.Rect(0, 0, w, h))
	idx := 0
	for by := 0; by < h; by += Tile {
		for bx := 0; bx < w; bx += Tile {
			for i := 0; i < Tile*Tile; i += 2 {
				v := data[idx]
				idx++
				x0, y0 := i%Tile, i/Tile
				x1, y1 := (i+1)%Tile, (i+1)/Tile
				tiled.SetAlpha(bx+x0, by+y0, color.Alpha{A: expandFrom4(v & 0xF)})
				tiled.SetAlpha(bx+x1, by+y1, color.Alpha{A: expandFrom4((v >> 4) & 0xF)})
			}
		}
	}
	return Swizzle(tiled, true)
}

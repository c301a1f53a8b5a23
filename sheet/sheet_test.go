package sheet_test

import (
	"image"
	"image/color"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zhimiaox/mkbcfnt/sheet"
)

func TestSwizzleUnpackInvertsPack(t *testing.T) {
	img := image.NewAlpha(image.Rect(0, 0, sheet.Tile*4, sheet.Tile*3))
	rnd := rand.New(rand.NewSource(1))
	for y := img.Rect.Min.Y; y < img.Rect.Max.Y; y++ {
		for x := img.Rect.Min.X; x < img.Rect.Max.X; x++ {
			img.SetAlpha(x, y, color.Alpha{A: uint8(rnd.Intn(256))})
		}
	}

	packed := sheet.Swizzle(img, false)
	unpacked := sheet.Swizzle(packed, true)

	require.Equal(t, img.Pix, unpacked.Pix)
}

func TestPackUnpackBytesRoundTrip(t *testing.T) {
	img := image.NewAlpha(image.Rect(0, 0, sheet.Width, sheet.Height))
	rnd := rand.New(rand.NewSource(2))
	for y := 0; y < sheet.Height; y++ {
		for x := 0; x < sheet.Width; x++ {
			// Quantize to 4-bit-representable values up front so the
			// round trip is exact, not merely within the non-expansive
			// quantization error bound.
			v := uint8(rnd.Intn(16)) * 17
			img.SetAlpha(x, y, color.Alpha{A: v})
		}
	}

	packed := sheet.PackBytes(img)
	require.Len(t, packed, sheet.Size)

	unpacked := sheet.UnpackBytes(packed, sheet.Width, sheet.Height)
	for y := 0; y < sheet.Height; y++ {
		for x := 0; x < sheet.Width; x++ {
			assert.Equal(t, img.AlphaAt(x, y), unpacked.AlphaAt(x, y))
		}
	}
}

func TestQuantizationIsNonExpansive(t *testing.T) {
	img := image.NewAlpha(image.Rect(0, 0, sheet.Width, sheet.Height))
	for y := 0; y < sheet.Height; y++ {
		for x := 0; x < sheet.Width; x++ {
			img.SetAlpha(x, y, color.Alpha{A: uint8((y*sheet.Width + x) % 256)})
		}
	}

	packed := sheet.PackBytes(img)
	unpacked := sheet.UnpackBytes(packed, sheet.Width, sheet.Height)

	for y := 0; y < sheet.Height; y++ {
		for x := 0; x < sheet.Width; x++ {
			want := int(img.AlphaAt(x, y).A)
			got := int(unpacked.AlphaAt(x, y).A)
			diff := want - got
			if diff < 0 {
				diff = -diff
			}
			require.LessOrEqualf(t, diff, 8, "pixel (%d,%d): %d -> %d", x, y, want, got)
		}
	}
}

package canvas_test

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/zhimiaox/mkbcfnt/canvas"
)

func TestCompositeOver(t *testing.T) {
	dst := canvas.New(4, 4)
	dst.SetAlpha(0, 0, color.Alpha{A: 200})

	src := canvas.New(2, 2)
	src.SetAlpha(0, 0, color.Alpha{A: 100})
	src.SetAlpha(1, 1, color.Alpha{A: 0})

	canvas.Composite(dst, src, image.Pt(1, 1))

	assert.Equal(t, uint8(200), dst.AlphaAt(0, 0).A, "pixel outside src bounds is untouched")
	assert.Equal(t, uint8(100), dst.AlphaAt(1, 1).A)
}

func TestCropLiftsRegionToOrigin(t *testing.T) {
	src := canvas.New(6, 6)
	src.SetAlpha(2, 3, color.Alpha{A: 77})

	cropped := canvas.Crop(src, 2, 2, 3, 3)

	assert.Equal(t, uint8(77), cropped.AlphaAt(0, 1).A)
	assert.Equal(t, 3, cropped.Bounds().Dx())
	assert.Equal(t, 3, cropped.Bounds().Dy())
}

/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package bcfnt

import "github.com/zhimiaox/mkbcfnt/raster"

// RasterSource is the rasterizer collaborator interface the aggregator
// consumes (§6.2): scaled global metrics, an ascending code-point
// enumeration, and per-glyph loading that returns an alpha bitmap plus
// horizontal metrics. *raster.Face implements this against
// github.com/golang/freetype; tests substitute a fake.
type RasterSource interface {
	Metrics() raster.Metrics
	Codes() []rune
	LoadGlyph(code rune) (*raster.GlyphMetrics, error)
}

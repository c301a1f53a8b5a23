/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

// Package bcfnt builds and reads BCFNT/CFNT bitmap font containers: the
// binary format a handheld console loads its glyph sheets from. It ingests
// outline fonts through a rasterizer collaborator or existing container
// files, merges their glyphs under an optional code-point allow/deny list,
// lays the result out on fixed-size swizzled 4-bit-alpha texture sheets, and
// serializes or parses the container losslessly.
package bcfnt

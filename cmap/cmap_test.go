package cmap_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zhimiaox/mkbcfnt/cmap"
)

func TestRebuildContiguousRun(t *testing.T) {
	list := cmap.Rebuild([]uint16{10, 11, 12, 20})
	require.Len(t, list, 2)
	assert.Equal(t, cmap.Entry{CodeBegin: 10, CodeEnd: 12, Data: cmap.Direct{Offset: 0}}, list[0])
	assert.Equal(t, cmap.Entry{CodeBegin: 20, CodeEnd: 20, Data: cmap.Direct{Offset: 3}}, list[1])
}

func TestIndexFromCodeDirect(t *testing.T) {
	list := cmap.Rebuild([]uint16{10, 11, 12, 20})
	assert.Equal(t, uint16(1), cmap.IndexFromCode(list, 11))
	assert.Equal(t, uint16(3), cmap.IndexFromCode(list, 20))
	assert.Equal(t, cmap.NoGlyph, cmap.IndexFromCode(list, 15))
}

func TestCodePointFromIndexDirect(t *testing.T) {
	list := cmap.Rebuild([]uint16{10, 11, 12, 20})
	assert.Equal(t, uint16(11), cmap.CodePointFromIndex(list, 1))
	assert.Equal(t, uint16(20), cmap.CodePointFromIndex(list, 3))
	assert.Equal(t, cmap.NoGlyph, cmap.CodePointFromIndex(list, 4))
}

func TestCoalesceAbsorbsIsolatedRuns(t *testing.T) {
	// Each of these codes is isolated (span 1 < MinChars), so they all
	// collapse into a single trailing Scan entry.
	codes := []uint16{5, 50, 500, 5000, 50000}
	rebuilt := cmap.Rebuild(codes)
	require.Len(t, rebuilt, len(codes))

	coalesced := cmap.Coalesce(rebuilt)
	require.Len(t, coalesced, 1)
	scan, ok := coalesced[0].Data.(cmap.Scan)
	require.True(t, ok)
	require.Len(t, scan.Entries, len(codes))

	for i, code := range codes {
		assert.Equal(t, uint16(i), cmap.IndexFromCode(coalesced, code))
		assert.Equal(t, code, cmap.CodePointFromIndex(coalesced, uint16(i)))
	}
}

func TestCoalesceKeepsLongRuns(t *testing.T) {
	codes := make([]uint16, 0, 20)
	for c := uint16(100); c < 120; c++ {
		codes = append(codes, c)
	}
	rebuilt := cmap.Rebuild(codes)
	coalesced := cmap.Coalesce(rebuilt)
	require.Len(t, coalesced, 1)
	_, isDirect := coalesced[0].Data.(cmap.Direct)
	assert.True(t, isDirect)
}

func TestCoalesceMixedRuns(t *testing.T) {
	codes := []uint16{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 200}
	rebuilt := cmap.Rebuild(codes)
	require.Len(t, rebuilt, 2)

	coalesced := cmap.Coalesce(rebuilt)
	require.Len(t, coalesced, 2)
	for _, code := range codes {
		idx := cmap.IndexFromCode(coalesced, code)
		assert.NotEqual(t, cmap.NoGlyph, idx)
		assert.Equal(t, code, cmap.CodePointFromIndex(coalesced, idx))
	}
}

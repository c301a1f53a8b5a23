package bcfnt

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGlyphStoreKeepsAscendingOrder(t *testing.T) {
	s := NewGlyphStore()
	s.Put('c', &Glyph{})
	s.Put('a', &Glyph{})
	s.Put('b', &Glyph{})

	assert.Equal(t, []rune{'a', 'b', 'c'}, s.Codes())
	assert.Equal(t, 0, s.IndexOf('a'))
	assert.Equal(t, 2, s.IndexOf('c'))
	assert.Equal(t, -1, s.IndexOf('z'))
}

func TestGlyphStorePutReplacesWithoutReordering(t *testing.T) {
	s := NewGlyphStore()
	first := &Glyph{Ascent: 1}
	second := &Glyph{Ascent: 2}
	s.Put('a', first)
	s.Put('a', second)

	assert.Equal(t, []rune{'a'}, s.Codes())
	assert.Same(t, second, s.Get('a'))
}

func TestGlyphStoreHasAndLen(t *testing.T) {
	s := NewGlyphStore()
	assert.False(t, s.Has('a'))
	s.Put('a', &Glyph{})
	assert.True(t, s.Has('a'))
	assert.Equal(t, 1, s.Len())
}

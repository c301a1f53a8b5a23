package bcfnt

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConvNumberReportsOverflow(t *testing.T) {
	v, ok := convNumber[uint8](300)
	assert.False(t, ok)
	assert.Equal(t, uint8(44), v) // truncated value is still returned

	v2, ok2 := convNumber[uint8](200)
	assert.True(t, ok2)
	assert.Equal(t, uint8(200), v2)
}

func TestConvNumberRejectsSignMismatch(t *testing.T) {
	_, ok := convNumber[uint8](-1)
	assert.False(t, ok)
}

func TestNarrowReturnsTruncatedValue(t *testing.T) {
	assert.Equal(t, uint8(44), narrow[uint8]("test.field", 300))
}

package blend

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestDiv255 checks Alvy Ray Smith's formula against integer division
// over the whole blending range.
func TestDiv255(t *testing.T) {
	for x := 0; x <= 255*255; x++ {
		if got := int(div255(uint16(x))); got != x/255 {
			t.Fatalf("div255(%d) = %d, want %d", x, got, x/255)
		}
	}
}

func TestInv255(t *testing.T) {
	assert.Equal(t, byte(255), inv255(0))
	assert.Equal(t, byte(0), inv255(255))
	assert.Equal(t, byte(127), inv255(128))
}

package blend

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mixReference is the arithmetic Mix must reproduce bit for bit.
func mixReference(alpha, src, dst int) int {
	return (alpha*src + (255-alpha)*dst) / 255
}

func TestMixMatchesTruncatingDivision(t *testing.T) {
	for alpha := 0; alpha <= 255; alpha += 3 {
		for src := 0; src <= 255; src += 5 {
			for dst := 0; dst <= 255; dst += 7 {
				got := Mix(byte(alpha), byte(src), byte(dst))
				want := mixReference(alpha, src, dst)
				if int(got) != want {
					t.Fatalf("Mix(%d, %d, %d) = %d, want %d", alpha, src, dst, got, want)
				}
			}
		}
	}
}

func TestMixEndpoints(t *testing.T) {
	for s := 0; s <= 255; s++ {
		for d := 0; d <= 255; d += 15 {
			require.Equal(t, byte(d), Mix(0, byte(s), byte(d)), "Mix(0, %d, %d)", s, d)
			require.Equal(t, byte(s), Mix(255, byte(s), byte(d)), "Mix(255, %d, %d)", s, d)
		}
	}
}

func TestMixSameColor(t *testing.T) {
	for alpha := 0; alpha <= 255; alpha++ {
		for s := 0; s <= 255; s += 17 {
			require.Equal(t, byte(s), Mix(byte(alpha), byte(s), byte(s)))
		}
	}
}

func TestMixPixel(t *testing.T) {
	src := [4]byte{0, 0, 0, 255}
	dst := [4]byte{255, 255, 255, 255}
	assert.Equal(t, [4]byte{127, 127, 127, 255}, MixPixel(128, src, dst))
	assert.Equal(t, dst, MixPixel(0, src, dst))
	assert.Equal(t, src, MixPixel(255, src, dst))
}

func TestOver(t *testing.T) {
	tests := []struct {
		name   string
		src    [4]byte
		dst    [4]byte
		want   [4]byte
		wantOK bool
	}{
		{
			name:   "opaque source replaces",
			src:    [4]byte{10, 20, 30, 255},
			dst:    [4]byte{200, 200, 200, 255},
			want:   [4]byte{10, 20, 30, 255},
			wantOK: true,
		},
		{
			name:   "transparent source keeps destination",
			src:    [4]byte{10, 20, 30, 0},
			dst:    [4]byte{200, 100, 50, 255},
			want:   [4]byte{200, 100, 50, 255},
			wantOK: true,
		},
		{
			name: "half source over opaque destination",
			src:  [4]byte{0, 0, 0, 128},
			dst:  [4]byte{255, 255, 255, 255},
			// dw = 255*127/255 = 127, outA = 255, c = 255*127/255 = 127
			want:   [4]byte{127, 127, 127, 255},
			wantOK: true,
		},
		{
			name: "half source over transparent destination",
			src:  [4]byte{40, 80, 120, 128},
			dst:  [4]byte{255, 255, 255, 0},
			// dw = 0, outA = 128, c = srcC
			want:   [4]byte{40, 80, 120, 128},
			wantOK: true,
		},
		{
			name: "half over half",
			src:  [4]byte{255, 0, 0, 128},
			dst:  [4]byte{0, 0, 255, 128},
			// outA = 128 + 128*127/255 = 191
			// b = 255*128/191 = 170, r = (255*128*127/255)/191 = 85
			want:   [4]byte{170, 0, 85, 191},
			wantOK: true,
		},
		{
			name: "faint source over faint destination",
			src:  [4]byte{0, 0, 0, 1},
			dst:  [4]byte{51, 51, 51, 1},
			// outA = 1 + 254/255 = 1, c = (51*254/255)/1 = 50
			want:   [4]byte{50, 50, 50, 1},
			wantOK: true,
		},
		{
			name: "faint colors clamp",
			src:  [4]byte{255, 255, 0, 1},
			dst:  [4]byte{255, 0, 0, 1},
			// b = (255 + 255*254/255)/1 = 509, g = 255 + 0 = 255
			want:   [4]byte{255, 255, 0, 1},
			wantOK: true,
		},
		{
			name: "destination term keeps precision",
			src:  [4]byte{0, 0, 0, 100},
			dst:  [4]byte{200, 200, 200, 3},
			// outA = 100 + 3*155/255 = 101, c = (200*3*155/255)/101 = 364/101 = 3
			want:   [4]byte{3, 3, 3, 101},
			wantOK: true,
		},
		{
			name:   "both transparent leaves destination",
			src:    [4]byte{1, 2, 3, 0},
			dst:    [4]byte{4, 5, 6, 0},
			want:   [4]byte{4, 5, 6, 0},
			wantOK: false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Over(tt.src, tt.dst)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

// TestOverZeroAlphaNeverDivides runs every destination alpha against a
// transparent source; only the all-transparent case may report !ok.
func TestOverZeroAlphaNeverDivides(t *testing.T) {
	for da := 0; da <= 255; da++ {
		dst := [4]byte{9, 8, 7, byte(da)}
		got, ok := Over([4]byte{1, 2, 3, 0}, dst)
		assert.Equal(t, da != 0, ok)
		assert.Equal(t, dst, got)
	}
}

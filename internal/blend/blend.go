package blend

// Mix linearly interpolates between dst and src with weight alpha:
//
//	⌊(alpha·src + (255−alpha)·dst) / 255⌋
//
// Mix(0, s, d) == d, Mix(255, s, d) == s and Mix(a, s, s) == s.
func Mix(alpha, src, dst byte) byte {
	return byte(div255(uint16(alpha)*uint16(src) + uint16(inv255(alpha))*uint16(dst)))
}

// MixPixel applies Mix to the four channels of a B,G,R,A pixel.
func MixPixel(alpha byte, src, dst [4]byte) [4]byte {
	return [4]byte{
		Mix(alpha, src[0], dst[0]),
		Mix(alpha, src[1], dst[1]),
		Mix(alpha, src[2], dst[2]),
		Mix(alpha, src[3], dst[3]),
	}
}

// Over composites a straight-alpha source pixel over a straight-alpha
// destination pixel. Pixels are in B,G,R,A order.
//
//	outA = srcA + dstA·(255−srcA)/255
//	outC = (srcC·srcA + dstC·dstA·(255−srcA)/255) / outA
//
// Each division truncates. The destination term keeps its full precision
// before the division by outA, which can push outC past 255 when both alphas
// are tiny; it is clamped.
//
// When outA is zero (both pixels fully transparent) the color is undefined;
// Over reports ok == false and the caller must keep the destination as is.
func Over(src, dst [4]byte) (out [4]byte, ok bool) {
	srcA := uint32(src[3])
	dstW := uint32(dst[3]) * (255 - srcA)
	outA := srcA + dstW/255
	if outA == 0 {
		return dst, false
	}
	for i := 0; i < 3; i++ {
		c := (uint32(src[i])*srcA + uint32(dst[i])*dstW/255) / outA
		out[i] = byte(min(c, 255))
	}
	out[3] = byte(outA)
	return out, true
}

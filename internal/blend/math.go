// Package blend implements the 8-bit alpha arithmetic used by textrender.
//
// All operations work on straight (non-premultiplied) alpha values in the
// range 0-255 and truncate like integer division, so results are bit exact
// across platforms.
//
// References:
//   - Alvy Ray Smith's technical memos: http://alvyray.com/Memos/
//   - Porter-Duff: "Compositing Digital Images" (1984)
package blend

// div255 divides x by 255 exactly without using division.
//
// Formula: ((x + 1) + ((x + 1) >> 8)) >> 8
//
// This is Alvy Ray Smith's formula. It equals x / 255 (truncated) for all
// x in [0, 255*255].
func div255(x uint16) uint16 {
	t := x + 1
	return (t + (t >> 8)) >> 8
}

// inv255 computes 255 - x (inverse alpha).
func inv255(x byte) byte {
	return 255 - x
}

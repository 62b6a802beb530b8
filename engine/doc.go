// Package engine abstracts the font rasterization library used by textrender.
//
// The rendering core only needs four capabilities from a rasterizer:
//
//   - open a face from a font file
//   - select its Unicode character map
//   - set a pixel size and report the scaled line metrics
//   - load the glyph of a code point as an 8-bit coverage bitmap
//
// These are captured by the [Engine] and [Face] interfaces. Two engines are
// registered by default:
//
//   - "ximage": golang.org/x/image/font/opentype (default)
//   - "gotext": github.com/go-text/typesetting outlines rasterized with
//     golang.org/x/image/vector
//
// Custom engines can be registered with [Register] and selected by name:
//
//	engine.Register("myengine", func() (engine.Engine, error) {
//	    return newMyEngine(), nil
//	})
//
// Faces are not safe for concurrent use. The glyph returned by
// [Face.LoadGlyph] owns its bitmap and stays valid after later calls.
package engine

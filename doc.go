// Package textrender draws short runs of Unicode text into ARGB pixel
// buffers using an outline font.
//
// # Overview
//
// textrender is a small rendering core for labels and captions in image
// composition pipelines. It is not a layout engine: text is one line, laid
// out by per-glyph advance, without line breaking, bidi, ligatures or
// kerning.
//
// # Quick Start
//
//	import "github.com/gogpu/textrender"
//
//	s := textrender.NewSession()
//	if err := s.Init(); err != nil {
//	    return err
//	}
//	defer s.Release()
//
//	// Largest size whose line fits in 24 pixels
//	if err := s.SetFont("DejaVuSans.ttf", 24); err != nil {
//	    return err
//	}
//
//	w, _ := s.TextWidth("Hello")
//	dst := textrender.NewPixelBuffer(w, 24)
//	err := s.RenderText("Hello", textrender.White, textrender.Black, dst.Bounds(), dst)
//
// # Pixel Buffers
//
// A PixelBuffer stores 4 bytes per pixel in B, G, R, A order with straight
// (non-premultiplied) alpha. Colors are packed as 0xAARRGGBB.
//
// # Engines
//
// Fonts are parsed and rasterized by an engine from the engine package:
// "ximage" (golang.org/x/image, the default) or "gotext"
// (github.com/go-text/typesetting). Select one with WithEngine.
//
// # Concurrency
//
// A Session is not safe for concurrent use. Separate sessions may be used
// from separate goroutines.
package textrender

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)

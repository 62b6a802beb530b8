package engine

import "errors"

// Sentinel errors returned by engines.
var (
	// ErrUnknownFormat is returned by Open when the file is not a recognized
	// font container.
	ErrUnknownFormat = errors.New("engine: unknown font file format")

	// ErrNoUnicodeCharmap is returned when a face has no Unicode character map.
	ErrNoUnicodeCharmap = errors.New("engine: font has no unicode charmap")

	// ErrUnsupportedSize is returned by SetPixelSize for sizes the engine
	// cannot produce, and by LoadGlyph when no size has been set.
	ErrUnsupportedSize = errors.New("engine: unsupported pixel size")

	// ErrGlyphNotFound is returned by LoadGlyph for code points the face
	// does not map, or whose glyph cannot be loaded.
	ErrGlyphNotFound = errors.New("engine: glyph not found")

	// ErrClosed is returned when a closed face or engine is used.
	ErrClosed = errors.New("engine: closed")
)

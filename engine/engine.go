package engine

import (
	"sort"

	"golang.org/x/image/math/fixed"
)

// Engine is an instance of a font rasterization library.
// A session creates one Engine on init and closes it on release.
type Engine interface {
	// Open loads the face at index 0 of the font file at path.
	// Returns ErrUnknownFormat if the file is not a font container.
	Open(path string) (Face, error)

	// Close releases the engine. Faces opened from it become invalid.
	Close() error
}

// Face is a loaded font face. Exactly one pixel size is active at a time.
type Face interface {
	// Name returns the family name of the face, or "" if unknown.
	Name() string

	// SelectUnicodeCharmap makes the Unicode character map active.
	// Returns ErrNoUnicodeCharmap if the face has none.
	SelectUnicodeCharmap() error

	// SetPixelSize requests a nominal size of ppem pixels per em.
	SetPixelSize(ppem int) error

	// Metrics returns the line metrics at the current pixel size.
	Metrics() SizeMetrics

	// LoadGlyph loads and renders the glyph mapped to r.
	// Returns ErrGlyphNotFound if r has no mapping.
	LoadGlyph(r rune) (*Glyph, error)

	// Close releases the face.
	Close() error
}

// Factory creates an Engine.
type Factory func() (Engine, error)

// SizeMetrics holds the scaled metrics of a face, in 26.6 fixed-point pixels.
type SizeMetrics struct {
	// PixelSize is the nominal pixels per em the metrics were computed for.
	PixelSize int

	// Ascender is the distance from the baseline to the top of the face (positive).
	Ascender fixed.Int26_6

	// Descender is the distance from the baseline to the bottom of the
	// face. It is negative for faces extending below the baseline.
	Descender fixed.Int26_6

	// Height is the baseline-to-baseline distance.
	Height fixed.Int26_6
}

// PixelMode describes how the samples of a Bitmap are encoded.
type PixelMode uint8

const (
	// PixelModeNone is an empty or unrecognized bitmap.
	PixelModeNone PixelMode = iota

	// PixelModeGray stores one 8-bit coverage sample per pixel.
	PixelModeGray

	// PixelModeMono stores one bit per pixel.
	PixelModeMono

	// PixelModeBGRA stores color glyphs (emoji), 4 bytes per pixel.
	PixelModeBGRA
)

// String returns the name of the pixel mode.
func (m PixelMode) String() string {
	switch m {
	case PixelModeNone:
		return "none"
	case PixelModeGray:
		return "gray"
	case PixelModeMono:
		return "mono"
	case PixelModeBGRA:
		return "bgra"
	default:
		return "unknown"
	}
}

// Bitmap is the rendered image of a glyph.
type Bitmap struct {
	Width int // samples per row
	Rows  int
	Pitch int // bytes between the starts of consecutive rows
	Mode  PixelMode
	Pix   []byte
}

// Coverage returns the gray sample at row i, column j.
// The bitmap must be in PixelModeGray.
func (b *Bitmap) Coverage(i, j int) uint8 {
	return b.Pix[i*b.Pitch+j]
}

// Glyph is a loaded glyph.
type Glyph struct {
	// Advance is the horizontal pen movement after drawing the glyph.
	Advance fixed.Int26_6

	// Left is the horizontal offset from the pen to the bitmap's left column.
	Left int

	// Top is the vertical offset from the baseline up to the bitmap's top row.
	Top int

	Bitmap Bitmap
}

// DefaultName is the name of the default engine.
const DefaultName = "ximage"

// registry holds the registered engine factories.
var registry = map[string]Factory{
	"ximage": NewXImage,
	"gotext": NewGoText,
}

// Register makes an engine factory available under name, replacing any
// previous registration. Register is not safe for concurrent use.
func Register(name string, f Factory) {
	registry[name] = f
}

// Lookup returns the factory registered under name.
func Lookup(name string) (Factory, bool) {
	f, ok := registry[name]
	return f, ok
}

// Names returns the sorted names of all registered engines.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

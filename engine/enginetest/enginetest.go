// Package enginetest provides an in-memory engine.Engine for tests.
//
// Faces are registered by path; their metrics and glyphs are plain data, so
// tests can drive the size-fitting loop and the compositor pixel by pixel.
package enginetest

import (
	"fmt"

	"golang.org/x/image/math/fixed"

	"github.com/gogpu/textrender/engine"
)

// Engine is a fake engine serving the faces registered in Faces.
type Engine struct {
	// Faces maps a path to the face Open returns for it.
	Faces map[string]*Face

	// OpenErr, if set, is returned by Open for paths not in Faces.
	// The default is a wrapped engine.ErrUnknownFormat.
	OpenErr error

	// CloseErr is returned by Close.
	CloseErr error

	Opened []string // paths passed to Open, in order
	Closes int      // number of Close calls
}

// New returns an engine serving faces.
func New(faces map[string]*Face) *Engine {
	if faces == nil {
		faces = make(map[string]*Face)
	}
	return &Engine{Faces: faces}
}

// Factory returns an engine.Factory that always yields e and counts its calls.
func (e *Engine) Factory(calls *int) engine.Factory {
	return func() (engine.Engine, error) {
		if calls != nil {
			*calls++
		}
		return e, nil
	}
}

// Open implements engine.Engine.
func (e *Engine) Open(path string) (engine.Face, error) {
	e.Opened = append(e.Opened, path)
	f, ok := e.Faces[path]
	if !ok {
		if e.OpenErr != nil {
			return nil, e.OpenErr
		}
		return nil, fmt.Errorf("%w: %s", engine.ErrUnknownFormat, path)
	}
	f.Closed = false
	return f, nil
}

// Close implements engine.Engine.
func (e *Engine) Close() error {
	e.Closes++
	return e.CloseErr
}

// Face is a fake face.
type Face struct {
	Family string

	// CharmapErr is returned by SelectUnicodeCharmap.
	CharmapErr error

	// SizeErr, if set, is returned by SetPixelSize.
	SizeErr error

	// MetricsFunc computes the metrics for a pixel size. The default is
	// Linear(1, 0, 0).
	MetricsFunc func(ppem int) engine.SizeMetrics

	// Glyphs maps code points to glyphs. Unmapped code points fail with
	// engine.ErrGlyphNotFound.
	Glyphs map[rune]*engine.Glyph

	Sizes  []int // pixel sizes requested, in order
	Loads  int   // number of LoadGlyph calls
	Closed bool

	ppem int
}

// Name implements engine.Face.
func (f *Face) Name() string {
	return f.Family
}

// SelectUnicodeCharmap implements engine.Face.
func (f *Face) SelectUnicodeCharmap() error {
	return f.CharmapErr
}

// SetPixelSize implements engine.Face.
func (f *Face) SetPixelSize(ppem int) error {
	f.Sizes = append(f.Sizes, ppem)
	if f.SizeErr != nil {
		return f.SizeErr
	}
	f.ppem = ppem
	return nil
}

// Metrics implements engine.Face.
func (f *Face) Metrics() engine.SizeMetrics {
	fn := f.MetricsFunc
	if fn == nil {
		fn = Linear(1, 0, 0)
	}
	m := fn(f.ppem)
	m.PixelSize = f.ppem
	return m
}

// LoadGlyph implements engine.Face.
func (f *Face) LoadGlyph(r rune) (*engine.Glyph, error) {
	f.Loads++
	g, ok := f.Glyphs[r]
	if !ok {
		return nil, fmt.Errorf("%w: %U", engine.ErrGlyphNotFound, r)
	}
	return g, nil
}

// Close implements engine.Face.
func (f *Face) Close() error {
	f.Closed = true
	return nil
}

// Linear returns metrics where the ascender is ppem pixels, the descender
// is -desc pixels and the line height is ppem+desc+gap pixels.
func Linear(scale, desc, gap int) func(ppem int) engine.SizeMetrics {
	return func(ppem int) engine.SizeMetrics {
		asc := ppem * scale
		return engine.SizeMetrics{
			Ascender:  fixed.I(asc),
			Descender: fixed.I(-desc),
			Height:    fixed.I(asc + desc + gap),
		}
	}
}

// Fixed returns the same metrics for every pixel size.
func Fixed(asc, desc, height int) func(ppem int) engine.SizeMetrics {
	return func(int) engine.SizeMetrics {
		return engine.SizeMetrics{
			Ascender:  fixed.I(asc),
			Descender: fixed.I(-desc),
			Height:    fixed.I(height),
		}
	}
}

// Gray builds an 8-bit gray glyph from rows of coverage samples.
// Advance is in whole pixels; top is the distance from the baseline up to
// the first row.
func Gray(advance, left, top int, rows ...[]byte) *engine.Glyph {
	g := &engine.Glyph{
		Advance: fixed.I(advance),
		Left:    left,
		Top:     top,
		Bitmap:  engine.Bitmap{Mode: engine.PixelModeGray},
	}
	if len(rows) == 0 {
		return g
	}
	w := len(rows[0])
	pix := make([]byte, 0, w*len(rows))
	for _, row := range rows {
		if len(row) != w {
			panic("enginetest: ragged glyph rows")
		}
		pix = append(pix, row...)
	}
	g.Bitmap = engine.Bitmap{
		Width: w,
		Rows:  len(rows),
		Pitch: w,
		Mode:  engine.PixelModeGray,
		Pix:   pix,
	}
	return g
}

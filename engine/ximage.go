package engine

import (
	"fmt"
	"image"

	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
)

// ximageEngine implements Engine using golang.org/x/image/font/opentype.
// The library has no global state, so the engine only tracks its own lifetime.
type ximageEngine struct {
	closed bool
}

// NewXImage creates an engine backed by golang.org/x/image/font/opentype.
func NewXImage() (Engine, error) {
	return &ximageEngine{}, nil
}

// Open implements Engine.Open.
func (e *ximageEngine) Open(path string) (Face, error) {
	if e.closed {
		return nil, ErrClosed
	}
	data, format, err := readFont(path)
	if err != nil {
		return nil, err
	}

	var f *opentype.Font
	if format == FormatCollection {
		coll, err := opentype.ParseCollection(data)
		if err != nil {
			return nil, err
		}
		if f, err = coll.Font(0); err != nil {
			return nil, err
		}
	} else {
		if f, err = opentype.Parse(data); err != nil {
			return nil, err
		}
	}
	return &ximageFace{font: f}, nil
}

// Close implements Engine.Close.
func (e *ximageEngine) Close() error {
	e.closed = true
	return nil
}

// ximageFace implements Face on top of an sfnt.Font.
type ximageFace struct {
	font    *opentype.Font
	buf     sfnt.Buffer
	face    font.Face // scaled face for the current pixel size, nil until set
	ppem    int
	charmap bool
}

// Name implements Face.Name.
func (f *ximageFace) Name() string {
	if f.font == nil {
		return ""
	}
	if name, err := f.font.Name(&f.buf, sfnt.NameIDFamily); err == nil {
		return name
	}
	return ""
}

// SelectUnicodeCharmap implements Face.SelectUnicodeCharmap.
// sfnt picks a Unicode subtable while parsing and rejects fonts without one,
// so any parsed face has its Unicode mapping ready.
func (f *ximageFace) SelectUnicodeCharmap() error {
	if f.font == nil {
		return ErrClosed
	}
	f.charmap = true
	return nil
}

// SetPixelSize implements Face.SetPixelSize.
// A 72 DPI face makes one point equal one pixel.
func (f *ximageFace) SetPixelSize(ppem int) error {
	if f.font == nil {
		return ErrClosed
	}
	if ppem <= 0 {
		return fmt.Errorf("%w: %d", ErrUnsupportedSize, ppem)
	}
	face, err := opentype.NewFace(f.font, &opentype.FaceOptions{
		Size:    float64(ppem),
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnsupportedSize, err)
	}
	if f.face != nil {
		_ = f.face.Close()
	}
	f.face = face
	f.ppem = ppem
	return nil
}

// Metrics implements Face.Metrics.
func (f *ximageFace) Metrics() SizeMetrics {
	if f.face == nil {
		return SizeMetrics{}
	}
	m := f.face.Metrics()
	return SizeMetrics{
		PixelSize: f.ppem,
		Ascender:  m.Ascent,
		Descender: -m.Descent,
		Height:    m.Height,
	}
}

// LoadGlyph implements Face.LoadGlyph.
func (f *ximageFace) LoadGlyph(r rune) (*Glyph, error) {
	if f.face == nil {
		return nil, ErrUnsupportedSize
	}
	if !f.charmap {
		return nil, ErrNoUnicodeCharmap
	}
	idx, err := f.font.GlyphIndex(&f.buf, r)
	if err != nil || idx == 0 {
		return nil, fmt.Errorf("%w: %U", ErrGlyphNotFound, r)
	}

	dr, mask, maskp, advance, ok := f.face.Glyph(fixed.Point26_6{}, r)
	if !ok {
		return nil, fmt.Errorf("%w: %U", ErrGlyphNotFound, r)
	}

	g := &Glyph{
		Advance: advance,
		Left:    dr.Min.X,
		Top:     -dr.Min.Y,
	}
	w, h := dr.Dx(), dr.Dy()
	if w == 0 || h == 0 {
		g.Bitmap = Bitmap{Mode: PixelModeGray}
		return g, nil
	}

	// The face reuses its mask between calls, so the samples are copied out.
	alpha, ok := mask.(*image.Alpha)
	if !ok {
		g.Bitmap = Bitmap{Width: w, Rows: h, Mode: PixelModeNone}
		return g, nil
	}
	pix := make([]byte, w*h)
	for y := 0; y < h; y++ {
		off := alpha.PixOffset(maskp.X, maskp.Y+y)
		copy(pix[y*w:(y+1)*w], alpha.Pix[off:off+w])
	}
	g.Bitmap = Bitmap{Width: w, Rows: h, Pitch: w, Mode: PixelModeGray, Pix: pix}
	return g, nil
}

// Close implements Face.Close.
func (f *ximageFace) Close() error {
	var err error
	if f.face != nil {
		err = f.face.Close()
	}
	f.face = nil
	f.font = nil
	return err
}

package engine

import (
	"bytes"
	"fmt"
	"math"

	"github.com/go-text/typesetting/font"
	ot "github.com/go-text/typesetting/font/opentype"
	"golang.org/x/image/math/fixed"
)

// unicodeProbes are code points any Unicode-mapped text face is expected to
// cover. A face mapping none of them has no usable Unicode charmap.
var unicodeProbes = []rune{' ', '0', 'A', 'a', 'e', '.', 0x00A0, 0xFFFD}

// goTextEngine implements Engine using github.com/go-text/typesetting.
// Glyph outlines are rasterized with golang.org/x/image/vector.
type goTextEngine struct {
	closed bool
}

// NewGoText creates an engine backed by go-text/typesetting.
func NewGoText() (Engine, error) {
	return &goTextEngine{}, nil
}

// Open implements Engine.Open.
func (e *goTextEngine) Open(path string) (Face, error) {
	if e.closed {
		return nil, ErrClosed
	}
	data, format, err := readFont(path)
	if err != nil {
		return nil, err
	}

	var face *font.Face
	if format == FormatCollection {
		faces, err := font.ParseTTC(bytes.NewReader(data))
		if err != nil {
			return nil, err
		}
		if len(faces) == 0 {
			return nil, ErrUnknownFormat
		}
		face = faces[0]
	} else {
		if face, err = font.ParseTTF(bytes.NewReader(data)); err != nil {
			return nil, err
		}
	}
	return &goTextFace{face: face}, nil
}

// Close implements Engine.Close.
func (e *goTextEngine) Close() error {
	e.closed = true
	return nil
}

// goTextFace implements Face on top of a go-text font.Face.
// Metrics are quantized to whole pixels the way hinting rasterizers report
// them: ascender rounded up, descender rounded down, height rounded.
type goTextFace struct {
	face    *font.Face
	ppem    int
	scale   float32 // pixels per font unit
	charmap bool
}

// Name implements Face.Name.
func (f *goTextFace) Name() string {
	if f.face == nil {
		return ""
	}
	return f.face.Describe().Family
}

// SelectUnicodeCharmap implements Face.SelectUnicodeCharmap.
func (f *goTextFace) SelectUnicodeCharmap() error {
	if f.face == nil {
		return ErrClosed
	}
	for _, r := range unicodeProbes {
		if _, ok := f.face.NominalGlyph(r); ok {
			f.charmap = true
			return nil
		}
	}
	return ErrNoUnicodeCharmap
}

// SetPixelSize implements Face.SetPixelSize.
func (f *goTextFace) SetPixelSize(ppem int) error {
	if f.face == nil {
		return ErrClosed
	}
	upem := f.face.Upem()
	if ppem <= 0 || upem == 0 {
		return fmt.Errorf("%w: %d", ErrUnsupportedSize, ppem)
	}
	f.ppem = ppem
	f.scale = float32(ppem) / float32(upem)
	return nil
}

// Metrics implements Face.Metrics.
func (f *goTextFace) Metrics() SizeMetrics {
	if f.face == nil || f.ppem == 0 {
		return SizeMetrics{}
	}
	ext, _ := f.face.FontHExtents()
	asc := math.Ceil(float64(ext.Ascender * f.scale))
	desc := math.Floor(float64(ext.Descender * f.scale))
	height := math.Round(float64((ext.Ascender - ext.Descender + ext.LineGap) * f.scale))
	return SizeMetrics{
		PixelSize: f.ppem,
		Ascender:  fixed.I(int(asc)),
		Descender: fixed.I(int(desc)),
		Height:    fixed.I(int(height)),
	}
}

// LoadGlyph implements Face.LoadGlyph.
func (f *goTextFace) LoadGlyph(r rune) (*Glyph, error) {
	if f.face == nil || f.ppem == 0 {
		return nil, ErrUnsupportedSize
	}
	if !f.charmap {
		return nil, ErrNoUnicodeCharmap
	}
	gid, ok := f.face.NominalGlyph(r)
	if !ok || gid == 0 {
		return nil, fmt.Errorf("%w: %U", ErrGlyphNotFound, r)
	}

	advance := math.Round(float64(f.face.HorizontalAdvance(gid) * f.scale))
	g := &Glyph{Advance: fixed.I(int(advance))}

	switch data := f.face.GlyphData(gid).(type) {
	case font.GlyphOutline:
		g.Bitmap, g.Left, g.Top = rasterizeOutline(f.scaleOutline(data))
	case font.GlyphBitmap:
		g.Bitmap = Bitmap{Width: data.Width, Rows: data.Height, Mode: PixelModeBGRA}
	default:
		g.Bitmap = Bitmap{Mode: PixelModeNone}
	}
	return g, nil
}

// scaleOutline converts font-unit segments to pixel-space path segments.
func (f *goTextFace) scaleOutline(outline font.GlyphOutline) []pathSegment {
	segments := make([]pathSegment, 0, len(outline.Segments))
	for _, s := range outline.Segments {
		var seg pathSegment
		switch s.Op {
		case ot.SegmentOpMoveTo:
			seg.Op = opMoveTo
		case ot.SegmentOpLineTo:
			seg.Op = opLineTo
		case ot.SegmentOpQuadTo:
			seg.Op = opQuadTo
		case ot.SegmentOpCubeTo:
			seg.Op = opCubeTo
		default:
			continue
		}
		for i := 0; i < seg.nargs(); i++ {
			seg.Args[i] = pathPoint{X: s.Args[i].X * f.scale, Y: s.Args[i].Y * f.scale}
		}
		segments = append(segments, seg)
	}
	return segments
}

// Close implements Face.Close.
func (f *goTextFace) Close() error {
	f.face = nil
	return nil
}

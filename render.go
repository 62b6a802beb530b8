package textrender

import (
	"fmt"
	"image"

	"github.com/gogpu/textrender/engine"
	"github.com/gogpu/textrender/internal/blend"
)

// RenderText draws text with the active face into area of dst.
//
// The text is first laid out in a working buffer the size of area, filled
// with back and with the pen starting at the top-left corner plus the
// ascender. Each gray glyph pixel is blended from front and back by its
// coverage. The working buffer is then composited over dst with straight
// alpha. Parts of area outside dst are clipped; an area entirely outside dst
// succeeds without touching it.
//
// Characters without a glyph, and glyphs that are not 8-bit gray, are
// skipped without advancing the pen.
func (s *Session) RenderText(text string, front, back Color, area image.Rectangle, dst *PixelBuffer) error {
	if err := s.checkReady(); err != nil {
		return err
	}
	if area.Dx() <= 0 || area.Dy() <= 0 {
		return fmt.Errorf("%w: empty render area %v", ErrGeneric, area)
	}
	if dst == nil {
		return fmt.Errorf("%w: nil destination buffer", ErrGeneric)
	}

	runes, err := s.config.decode(text)
	if err != nil {
		return err
	}

	work, err := workingBuffers.Get(area.Dx(), area.Dy(), s.config.maxWorkingPixels)
	if err != nil {
		return err
	}
	defer workingBuffers.Put(work)

	work.Fill(back)
	fg, bg := front.bgra(), back.bgra()

	penX, penY := 0, pixels(s.metrics.Ascender)
	for _, r := range runes {
		g, err := s.glyph(r)
		if err != nil {
			s.logger().Debug("textrender: glyph skipped", "rune", r, "error", err)
			continue
		}
		if g.Bitmap.Mode != engine.PixelModeGray {
			s.logger().Warn("textrender: unsupported glyph pixel mode",
				"rune", r,
				"mode", g.Bitmap.Mode.String(),
			)
			continue
		}
		drawGlyph(work, g, penX, penY, fg, bg)
		penX += pixels(g.Advance)
	}

	compositeOver(dst, work, area.Min)
	return nil
}

// drawGlyph blends the coverage of g into work with the pen at (penX, penY).
// Samples falling outside work are dropped.
func drawGlyph(work *PixelBuffer, g *engine.Glyph, penX, penY int, fg, bg [4]byte) {
	bm := &g.Bitmap
	for i := 0; i < bm.Rows; i++ {
		y := penY - g.Top + i
		if y < 0 {
			continue
		}
		if y >= work.height {
			break
		}
		for j := 0; j < bm.Width; j++ {
			x := penX + g.Left + j
			if x < 0 {
				continue
			}
			if x >= work.width {
				break
			}
			switch c := bm.Coverage(i, j); c {
			case 0:
			case 0xFF:
				work.setPixel(x, y, fg)
			default:
				mixed := blend.MixPixel(c, fg, bg)
				work.setPixel(x, y, blend.MixPixel(mixed[3], mixed, work.pixel(x, y)))
			}
		}
	}
}

// compositeOver composites src over dst with its top-left corner at at.
// Destination pixels whose result alpha would be zero are left unchanged.
func compositeOver(dst, src *PixelBuffer, at image.Point) {
	r := src.Bounds().Add(at).Intersect(dst.Bounds())
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			if out, ok := blend.Over(src.pixel(x-at.X, y-at.Y), dst.pixel(x, y)); ok {
				dst.setPixel(x, y, out)
			}
		}
	}
}

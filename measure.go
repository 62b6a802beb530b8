package textrender

// TextWidth returns the width in pixels of text drawn with the active face:
// the sum of the glyph advances, each truncated to whole pixels.
//
// Characters without a glyph contribute nothing. The bitmap of the last
// glyph may extend past the returned width.
func (s *Session) TextWidth(text string) (int, error) {
	if err := s.checkReady(); err != nil {
		return 0, err
	}

	runes, err := s.config.decode(text)
	if err != nil {
		return 0, err
	}

	width := 0
	for _, r := range runes {
		g, err := s.glyph(r)
		if err != nil {
			s.logger().Debug("textrender: glyph skipped", "rune", r, "error", err)
			continue
		}
		width += pixels(g.Advance)
	}
	return width, nil
}

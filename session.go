package textrender

import (
	"errors"
	"fmt"
	"log/slog"

	"golang.org/x/image/math/fixed"

	"github.com/gogpu/textrender/engine"
	"github.com/gogpu/textrender/internal/cache"
)

// Session owns a font engine and the face text is rendered with.
//
// The lifecycle is Init, SetFont, any number of TextWidth and RenderText
// calls, then Release. A Session is not safe for concurrent use; callers
// must serialize access to it.
type Session struct {
	config sessionConfig

	engine      engine.Engine
	initialized bool

	face     engine.Face
	fontSet  bool
	fontPath string
	metrics  engine.SizeMetrics
	glyphs   *cache.Cache[rune, glyphEntry]
}

// glyphEntry is a cached glyph lookup. Failed lookups are cached too.
type glyphEntry struct {
	glyph *engine.Glyph
	err   error
}

// FaceMetrics describes the active face at the pixel size SetFont chose.
// All values are whole pixels.
type FaceMetrics struct {
	Name      string
	PixelSize int
	Ascender  int
	Descender int // negative below the baseline
	Height    int
}

// NewSession creates an uninitialized session.
func NewSession(opts ...Option) *Session {
	config := defaultConfig()
	for _, opt := range opts {
		opt(&config)
	}
	return &Session{
		config: config,
		glyphs: cache.New[rune, glyphEntry](config.glyphCacheSize),
	}
}

// logger returns the session logger.
func (s *Session) logger() *slog.Logger {
	if s.config.logger != nil {
		return s.config.logger
	}
	return Logger()
}

// Initialized reports whether Init has succeeded and Release has not been called since.
func (s *Session) Initialized() bool {
	return s.initialized
}

// FontSet reports whether a face is active.
func (s *Session) FontSet() bool {
	return s.fontSet
}

// Init creates the font engine. It does nothing if the session is already
// initialized. Fails with ErrInitializationFailed if the engine cannot start.
func (s *Session) Init() error {
	if s.initialized {
		return nil
	}

	factory := s.config.factory
	if factory == nil {
		f, ok := engine.Lookup(s.config.engineName)
		if !ok {
			return fmt.Errorf("%w: unknown engine %q", ErrInitializationFailed, s.config.engineName)
		}
		factory = f
	}

	e, err := factory()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInitializationFailed, err)
	}
	if e == nil {
		return fmt.Errorf("%w: engine factory returned nil", ErrInitializationFailed)
	}

	s.engine = e
	s.initialized = true
	s.logger().Info("textrender: engine started", "engine", s.config.engineName)
	return nil
}

// Release closes the active face and the engine. It does nothing if the
// session is not initialized. Close errors are logged, not returned.
func (s *Session) Release() error {
	if !s.initialized {
		return nil
	}

	s.dropFace()
	if err := s.engine.Close(); err != nil {
		s.logger().Warn("textrender: engine close failed", "error", err)
	}
	s.engine = nil
	s.initialized = false
	s.logger().Info("textrender: engine released")
	return nil
}

// dropFace closes the active face, if any.
func (s *Session) dropFace() {
	if s.face != nil {
		if err := s.face.Close(); err != nil {
			s.logger().Warn("textrender: face close failed", "path", s.fontPath, "error", err)
		}
	}
	s.face = nil
	s.fontSet = false
	s.fontPath = ""
	s.metrics = engine.SizeMetrics{}
	s.glyphs.Clear()
}

// SetFont loads the font file at path and picks the largest pixel size at
// most height whose ascender+|descender| and line height both fit in
// height pixels.
//
// On success the new face replaces the active one. On failure the active
// face, if any, stays in use.
func (s *Session) SetFont(path string, height int) error {
	if !s.initialized {
		return ErrNotInitialized
	}

	face, err := s.engine.Open(path)
	if err != nil {
		kind := ErrOpeningFont
		switch {
		case errors.Is(err, engine.ErrUnknownFormat):
			kind = ErrUnsupportedFontFormat
		case errors.Is(err, engine.ErrNoUnicodeCharmap):
			kind = ErrFontNotUnicode
		}
		return &FontError{Op: "open", Path: path, Kind: kind, Err: err}
	}

	if err := face.SelectUnicodeCharmap(); err != nil {
		_ = face.Close()
		return &FontError{Op: "charmap", Path: path, Kind: ErrFontNotUnicode, Err: err}
	}

	metrics, err := s.fitPixelSize(face, height)
	if err != nil {
		_ = face.Close()
		return &FontError{Op: "size", Path: path, Kind: ErrUnableToSetSize, Err: err}
	}

	s.dropFace()
	s.face = face
	s.fontSet = true
	s.fontPath = path
	s.metrics = metrics

	s.logger().Info("textrender: font set",
		"path", path,
		"family", face.Name(),
		"height", height,
		"pixel_size", metrics.PixelSize,
	)
	return nil
}

// fitPixelSize searches downwards from height for the first pixel size
// whose reported extents fit in height pixels. Engines may report a nominal
// size smaller than the extents they actually draw.
func (s *Session) fitPixelSize(face engine.Face, height int) (engine.SizeMetrics, error) {
	for trial := height; ; trial-- {
		if trial <= 0 {
			return engine.SizeMetrics{}, fmt.Errorf("no pixel size fits height %d", height)
		}
		if err := face.SetPixelSize(trial); err != nil {
			return engine.SizeMetrics{}, err
		}

		m := face.Metrics()
		extent := pixels(m.Ascender + absFixed(m.Descender))
		line := pixels(m.Height)
		if height >= extent && height >= line {
			return m, nil
		}
		s.logger().Debug("textrender: pixel size too large",
			"trial", trial,
			"extent", extent,
			"line_height", line,
		)
	}
}

// Metrics returns the metrics of the active face.
func (s *Session) Metrics() (FaceMetrics, error) {
	if err := s.checkReady(); err != nil {
		return FaceMetrics{}, err
	}
	return FaceMetrics{
		Name:      s.face.Name(),
		PixelSize: s.metrics.PixelSize,
		Ascender:  pixels(s.metrics.Ascender),
		Descender: pixels(s.metrics.Descender),
		Height:    pixels(s.metrics.Height),
	}, nil
}

// checkReady reports the first unmet precondition for using the face.
func (s *Session) checkReady() error {
	if !s.initialized {
		return ErrNotInitialized
	}
	if !s.fontSet {
		return ErrFontNotSet
	}
	return nil
}

// glyph returns the glyph for r at the active size, consulting the cache.
func (s *Session) glyph(r rune) (*engine.Glyph, error) {
	if e, ok := s.glyphs.Get(r); ok {
		return e.glyph, e.err
	}
	g, err := s.face.LoadGlyph(r)
	s.glyphs.Set(r, glyphEntry{glyph: g, err: err})
	return g, err
}

// pixels truncates a 26.6 value to whole pixels (arithmetic shift).
func pixels(v fixed.Int26_6) int {
	return int(v >> 6)
}

func absFixed(v fixed.Int26_6) fixed.Int26_6 {
	if v < 0 {
		return -v
	}
	return v
}

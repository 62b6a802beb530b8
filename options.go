package textrender

import (
	"log/slog"

	"golang.org/x/text/encoding"
	"golang.org/x/text/unicode/norm"

	"github.com/gogpu/textrender/engine"
)

// Option configures a Session during creation.
//
// Example:
//
//	// Default engine (golang.org/x/image), UTF-8 input
//	s := textrender.NewSession()
//
//	// go-text engine, Latin-1 input, NFC normalization
//	s := textrender.NewSession(
//	    textrender.WithEngine("gotext"),
//	    textrender.WithEncoding(charmap.ISO8859_1),
//	    textrender.WithNormalization(norm.NFC),
//	)
type Option func(*sessionConfig)

// sessionConfig holds optional configuration for a Session.
type sessionConfig struct {
	engineName       string
	factory          engine.Factory
	encoding         encoding.Encoding
	normalize        bool
	form             norm.Form
	glyphCacheSize   int
	maxWorkingPixels int
	logger           *slog.Logger
}

// DefaultMaxWorkingPixels bounds the working buffer of a single RenderText
// call (64 MiB of pixels).
const DefaultMaxWorkingPixels = 1 << 24

// defaultGlyphCacheSize is the number of glyphs kept per active face.
const defaultGlyphCacheSize = 256

// defaultConfig returns the default session configuration.
func defaultConfig() sessionConfig {
	return sessionConfig{
		engineName:       engine.DefaultName,
		glyphCacheSize:   defaultGlyphCacheSize,
		maxWorkingPixels: DefaultMaxWorkingPixels,
	}
}

// WithEngine selects a registered engine by name ("ximage" or "gotext").
// An unknown name makes Init fail with ErrInitializationFailed.
func WithEngine(name string) Option {
	return func(c *sessionConfig) {
		c.engineName = name
	}
}

// WithEngineFactory sets the function Init uses to create the engine.
// It takes precedence over WithEngine.
func WithEngineFactory(f engine.Factory) Option {
	return func(c *sessionConfig) {
		c.factory = f
	}
}

// WithEncoding sets the encoding of text passed to TextWidth and RenderText.
// The default is UTF-8.
func WithEncoding(enc encoding.Encoding) Option {
	return func(c *sessionConfig) {
		c.encoding = enc
	}
}

// WithNormalization applies a Unicode normalization form to text before
// glyph lookup, so that e.g. "e" + U+0301 is drawn as the single glyph "é"
// under norm.NFC.
func WithNormalization(form norm.Form) Option {
	return func(c *sessionConfig) {
		c.normalize = true
		c.form = form
	}
}

// WithGlyphCache sets how many loaded glyphs are kept for the active face.
// Zero disables the cache.
func WithGlyphCache(n int) Option {
	return func(c *sessionConfig) {
		c.glyphCacheSize = max(n, 0)
	}
}

// WithMaxWorkingPixels bounds the working buffer RenderText may allocate.
// Larger render areas fail with ErrOutOfMemory. Values n <= 0 keep
// DefaultMaxWorkingPixels.
func WithMaxWorkingPixels(n int) Option {
	return func(c *sessionConfig) {
		if n > 0 {
			c.maxWorkingPixels = n
		}
	}
}

// WithLogger sets the logger of the session. The default is the package
// logger (see SetLogger).
func WithLogger(l *slog.Logger) Option {
	return func(c *sessionConfig) {
		c.logger = l
	}
}

// Package cache provides the least-recently-used cache textrender keeps
// rendered glyphs in.
//
//	glyphs := cache.New[rune, *engine.Glyph](256)
//	glyphs.Set('A', g)
//	g, ok := glyphs.Get('A')
//
// # Thread Safety
//
// Cache is not safe for concurrent use. It lives inside a session, and
// sessions are serialized by their callers.
package cache

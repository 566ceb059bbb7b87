// Package flyweight shows the Flyweight pattern with "big characters":
// glyph art for a rune is loaded once and the same *BigChar is handed to
// every BigString that needs it.
//
// Factory owns the pool. Get loads a glyph from big<rune>.txt on first use
// and returns the pooled pointer afterwards; Loads counts how many times the
// file system was actually touched. By default the pool is unbounded and
// glyphs come from the embedded fonts/ directory (0-9 and '-'). WithFS
// points the factory at another fs.FS (os.DirFS for a directory on disk),
// and WithPoolSize bounds the pool with an ARC cache, trading the
// "same pointer forever" guarantee for a fixed memory ceiling.
//
// Shared returns the process-wide factory, created on first use.
//
// Errors:
//
//   - ErrGlyphNotFound: no big<rune>.txt for the requested rune.
package flyweight

package flyweight

import (
	"errors"
	"io/fs"

	"go.uber.org/zap"
)

// Sentinel errors for the flyweight package.
var (
	// ErrGlyphNotFound indicates that no font file exists for a rune.
	ErrGlyphNotFound = errors.New("flyweight: glyph not found")
)

// Options configures a Factory.
type Options struct {
	// FS holds the big<rune>.txt files.
	FS fs.FS
	// PoolSize bounds the pool; 0 means unbounded.
	PoolSize int
	Logger   *zap.Logger
}

// Option mutates Options.
type Option func(*Options)

// WithFS loads glyphs from fsys instead of the embedded fonts. Panics on nil.
func WithFS(fsys fs.FS) Option {
	if fsys == nil {
		panic("flyweight: WithFS(nil)")
	}
	return func(o *Options) {
		o.FS = fsys
	}
}

// WithPoolSize bounds the pool to n glyphs. Panics if n <= 0.
func WithPoolSize(n int) Option {
	if n <= 0 {
		panic("flyweight: WithPoolSize requires n > 0")
	}
	return func(o *Options) {
		o.PoolSize = n
	}
}

// WithLogger logs cache hits and loads at debug level. Panics on nil.
func WithLogger(l *zap.Logger) Option {
	if l == nil {
		panic("flyweight: WithLogger(nil)")
	}
	return func(o *Options) {
		o.Logger = l
	}
}

// DefaultOptions returns the embedded fonts, an unbounded pool and a no-op
// logger.
func DefaultOptions() Options {
	return Options{FS: embeddedFonts(), Logger: zap.NewNop()}
}

package flyweight

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"sync"

	"go.uber.org/zap"
)

// BigChar is the glyph art for one rune. It is immutable and shared.
type BigChar struct {
	r    rune
	data string
}

// Rune returns the character this glyph draws.
func (c *BigChar) Rune() rune { return c.r }

// String returns the glyph text, one line per row.
func (c *BigChar) String() string { return c.data }

// Print writes the glyph to w.
func (c *BigChar) Print(w io.Writer) error {
	_, err := io.WriteString(w, c.data)
	return err
}

// Factory loads and pools BigChars. It is safe for concurrent use.
type Factory struct {
	mu    sync.Mutex
	opts  Options
	pool  pool
	loads int
}

// NewFactory returns a Factory configured by opts.
func NewFactory(opts ...Option) (*Factory, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	f := &Factory{opts: cfg}
	if cfg.PoolSize > 0 {
		p, err := newARCPool(cfg.PoolSize)
		if err != nil {
			return nil, fmt.Errorf("flyweight: pool: %w", err)
		}
		f.pool = p
	} else {
		f.pool = make(mapPool)
	}
	return f, nil
}

// Get returns the pooled glyph for r, loading it if needed.
func (f *Factory) Get(r rune) (*BigChar, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if c, ok := f.pool.get(r); ok {
		f.opts.Logger.Debug("glyph cache hit", zap.String("rune", string(r)))
		return c, nil
	}

	data, err := fs.ReadFile(f.opts.FS, glyphFile(r))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %q", ErrGlyphNotFound, r)
		}
		return nil, fmt.Errorf("flyweight: load %q: %w", r, err)
	}

	c := &BigChar{r: r, data: string(data)}
	f.pool.add(r, c)
	f.loads++
	f.opts.Logger.Debug("glyph loaded",
		zap.String("rune", string(r)),
		zap.Int("pooled", f.pool.len()),
	)
	return c, nil
}

// Len returns the number of pooled glyphs.
func (f *Factory) Len() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.pool.len()
}

// Loads returns how many glyph files have been read.
func (f *Factory) Loads() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.loads
}

var (
	sharedOnce    sync.Once
	sharedFactory *Factory
)

// Shared returns the process-wide factory over the embedded fonts.
func Shared() *Factory {
	sharedOnce.Do(func() {
		// The default options never build an ARC pool, so this cannot fail.
		sharedFactory, _ = NewFactory()
	})
	return sharedFactory
}

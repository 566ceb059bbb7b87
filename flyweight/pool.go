package flyweight

import lru "github.com/hashicorp/golang-lru"

// pool stores glyphs by rune.
type pool interface {
	get(r rune) (*BigChar, bool)
	add(r rune, c *BigChar)
	len() int
}

type mapPool map[rune]*BigChar

func (p mapPool) get(r rune) (*BigChar, bool) { c, ok := p[r]; return c, ok }
func (p mapPool) add(r rune, c *BigChar)      { p[r] = c }
func (p mapPool) len() int                    { return len(p) }

// arcPool is a bounded pool backed by an adaptive replacement cache.
type arcPool struct {
	cache *lru.ARCCache
}

func newARCPool(size int) (*arcPool, error) {
	c, err := lru.NewARC(size)
	if err != nil {
		return nil, err
	}
	return &arcPool{cache: c}, nil
}

func (p *arcPool) get(r rune) (*BigChar, bool) {
	v, ok := p.cache.Get(r)
	if !ok {
		return nil, false
	}
	return v.(*BigChar), true
}

func (p *arcPool) add(r rune, c *BigChar) { p.cache.Add(r, c) }
func (p *arcPool) len() int               { return p.cache.Len() }
